package tracecast

import (
	"fmt"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/tracecast/tracecast/trace"
)

func numberedLines(n int) []trace.Line {
	lines := make([]trace.Line, n)
	for i := range lines {
		lines[i] = trace.Line{{Type: chroma.Text, Text: fmt.Sprintf("line %d\n", i)}}
	}
	return lines
}

func TestViewportWindow(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		cur       int // 0-based
		rowsF     float64
		wantStart int
		wantEnd   int
	}{
		// 50-line file, current line 25 (0-based 24), 11 rows: five lines
		// of context each side.
		{"centered", 50, 24, 11, 19, 29},
		// Near the top the window shifts down instead of going negative.
		{"near top", 50, 1, 11, 0, 10},
		{"first line", 50, 0, 11, 0, 10},
		// Near the bottom the window just comes up short.
		{"near bottom", 50, 49, 11, 44, 49},
		// Files shorter than the viewport display whole.
		{"short file", 5, 2, 11, 0, 4},
		{"single line", 1, 0, 11, 0, 0},
		// Even row counts still produce a full-height window.
		{"even rows", 50, 24, 10, 20, 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := viewportWindow(tt.total, tt.cur, tt.rowsF)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("viewportWindow(%d, %d, %v) = (%d, %d), want (%d, %d)",
					tt.total, tt.cur, tt.rowsF, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestViewportWindow_StartNeverNegative(t *testing.T) {
	for cur := 0; cur < 60; cur++ {
		start, _ := viewportWindow(50, cur, 11)
		if start < 0 {
			t.Fatalf("cur=%d: start = %d", cur, start)
		}
	}
}

func TestVisibleLines_WindowLength(t *testing.T) {
	tests := []struct {
		total, curLine int // curLine is 1-based
		rowsF          float64
		wantLen        int
	}{
		{50, 25, 11, 11},
		{50, 1, 11, 11},
		{50, 50, 11, 6},
		{5, 3, 11, 5},
		{0, 1, 11, 0},
	}
	for _, tt := range tests {
		got := visibleLines(numberedLines(tt.total), tt.curLine, tt.rowsF)
		if len(got) != tt.wantLen {
			t.Errorf("visibleLines(total=%d, cur=%d, rows=%v): len = %d, want %d",
				tt.total, tt.curLine, tt.rowsF, len(got), tt.wantLen)
		}
	}
}

func TestVisibleLines_CurrentFlag(t *testing.T) {
	lines := numberedLines(50)

	// Current line 25 (1-based) must be inside the window, flagged, and the
	// window must hold the lines unmodified.
	got := visibleLines(lines, 25, 11)
	flagged := -1
	for i, vl := range got {
		if vl.current {
			if flagged >= 0 {
				t.Fatal("more than one line flagged current")
			}
			flagged = i
		}
	}
	if flagged != 5 {
		t.Fatalf("current flag at window index %d, want 5", flagged)
	}
	if got[flagged].tokens[0].Text != "line 24\n" {
		t.Errorf("flagged line text = %q, want %q", got[flagged].tokens[0].Text, "line 24\n")
	}
	if got[0].tokens[0].Text != "line 19\n" {
		t.Errorf("window starts at %q, want %q", got[0].tokens[0].Text, "line 19\n")
	}
}
