// Package trace defines the execution-state snapshots the compositor renders:
// tokenized source lines, the accumulated output log, and the variable history
// captured at each step. It also provides the chroma-based tokenizer and the
// JSON trace-script loader used to replay a recorded run.
package trace

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
)

// Token is one styled run of source text.
type Token struct {
	Type chroma.TokenType
	Text string
}

// Line is one source line as an ordered sequence of tokens.
// The newline terminating the line stays inside the last token.
type Line []Token

// Step is one trace snapshot, corresponding to one rendered content frame.
type Step struct {
	// Lines is the full tokenized source of the traced file.
	Lines []Line

	// CurrentLine is the 1-based line the tracer stopped on.
	CurrentLine int

	// Output is the program output accumulated so far, one string per line.
	Output []string

	// Vars is the variable state captured at this step, nil when the step
	// recorded no variable event.
	Vars *VarState

	// Exec carries per-line timing stats, nil when the tracer did not
	// measure them.
	Exec *ExecStats
}

// ExecStats describes how often and how long the current line executed.
// The durations arrive pre-formatted by the tracer.
type ExecStats struct {
	Count   int    `json:"count"`
	Current string `json:"current"`
	Average string `json:"average"`
	Total   string `json:"total"`
}

// Color is the semantic highlight color of a variable event: green for
// additions, blue for updates, red for removals.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	switch string(b) {
	case "red":
		*c = Red
	case "green":
		*c = Green
	case "blue":
		*c = Blue
	default:
		return fmt.Errorf("trace: unknown color %q", b)
	}
	return nil
}

// VarState is the variable event of one trace step.
type VarState struct {
	// Name and Action describe the event, e.g. "counter" "changed".
	Name   string `json:"name"`
	Action string `json:"action"`

	// Color is the semantic highlight color of the action.
	Color Color `json:"color"`

	// Text is the rendered value of the variable after the event.
	Text string `json:"text"`

	// Ref names another tracked variable whose most recent recorded value
	// is the source of this one. Empty when the event has no reference.
	Ref string `json:"ref,omitempty"`

	// History lists every tracked variable with its recorded values, in
	// declaration order.
	History []VarHistory `json:"history"`
}

// VarHistory is the recorded value sequence of one tracked variable.
type VarHistory struct {
	Name string `json:"name"`

	// Ignored excludes the whole variable from the other-variables panel.
	Ignored bool `json:"ignored,omitempty"`

	// Values holds the recorded values, oldest first.
	Values []VarValue `json:"values"`
}

// VarValue is one recorded value of a tracked variable.
type VarValue struct {
	Value any `json:"value"`

	// Ignored suppresses this value's bullet in the other-variables panel.
	Ignored bool `json:"ignored,omitempty"`
}
