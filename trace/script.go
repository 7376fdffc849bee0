package trace

import (
	"encoding/json"
	"fmt"
	"os"
)

// Script is a recorded trace as produced by an external tracer: one entry per
// step, each naming the line reached, the output lines it appended, and the
// variable event it observed, if any.
type Script struct {
	Steps []ScriptStep `json:"steps"`
}

// ScriptStep is one recorded trace step.
type ScriptStep struct {
	// Line is the 1-based source line the step stopped on.
	Line int `json:"line"`

	// Output lists the output lines this step appended to the log.
	Output []string `json:"output,omitempty"`

	// Vars is the variable event of this step, if any.
	Vars *VarState `json:"vars,omitempty"`

	// Exec carries optional per-line timing stats.
	Exec *ExecStats `json:"exec,omitempty"`
}

// LoadScript reads and decodes a JSON trace script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trace: read script: %w", err)
	}
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("trace: decode script %s: %w", path, err)
	}
	return &s, nil
}
