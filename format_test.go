package tracecast

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestRepr(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, "nil"},
		{"string", "hi", `"hi"`},
		{"int", 42, "42"},
		{"float", 3.5, "3.5"},
		{"bool", true, "true"},
		{"slice", []any{1, "a", nil}, `[1, "a", nil]`},
		{"nested slice", []any{[]any{1, 2}, 3}, "[[1, 2], 3]"},
		{"map sorted by key", map[string]any{"b": 2, "a": 1}, `{"a": 1, "b": 2}`},
		{"empty slice", []any{}, "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repr(tt.v); got != tt.want {
				t.Errorf("repr(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestWriteValueHighlight(t *testing.T) {
	hl := writeStyle{bold: true, color: gg.RGBA{R: 1, A: 1}, hasColor: true}

	t.Run("element match anchors at element end", func(t *testing.T) {
		p := newTestPainter(t, 60, 10)
		start := p.pen()
		a := writeValueHighlight(p, []any{10, 20, 30}, "20", hl)

		// "[10, " is 5 cells, "20" 2 more: the anchor lands after "20",
		// not at the end of the whole value.
		wantX := start.X + 7*p.glyphW
		if a.X != wantX {
			t.Errorf("anchor.X = %v, want %v", a.X, wantX)
		}
		end := p.pen()
		if a.X >= end.X {
			t.Errorf("anchor %v not inside the value (pen end %v)", a.X, end.X)
		}
	})

	t.Run("whole-value match", func(t *testing.T) {
		p := newTestPainter(t, 60, 10)
		a := writeValueHighlight(p, 5, "5", hl)
		if a != p.pen() {
			t.Errorf("anchor = %+v, want pen position %+v", a, p.pen())
		}
	})

	t.Run("no match highlights whole value", func(t *testing.T) {
		p := newTestPainter(t, 60, 10)
		a := writeValueHighlight(p, []any{1, 2}, "99", hl)
		if a != p.pen() {
			t.Errorf("anchor = %+v, want pen position %+v", a, p.pen())
		}
	})

	t.Run("only first match anchors", func(t *testing.T) {
		p := newTestPainter(t, 60, 10)
		start := p.pen()
		a := writeValueHighlight(p, []any{7, 7}, "7", hl)
		wantX := start.X + 2*p.glyphW // after "[7"
		if a.X != wantX {
			t.Errorf("anchor.X = %v, want %v", a.X, wantX)
		}
	})
}

func TestNodeMatches(t *testing.T) {
	tests := []struct {
		name   string
		v      any
		target string
		want   bool
	}{
		{"root", 5, "5", true},
		{"element", []any{1, 2}, "2", true},
		{"nested", []any{[]any{"x"}}, `"x"`, true},
		{"map value", map[string]any{"k": 9}, "9", true},
		{"absent", []any{1, 2}, "3", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nodeMatches(tt.v, tt.target); got != tt.want {
				t.Errorf("nodeMatches(%v, %q) = %v, want %v", tt.v, tt.target, got, tt.want)
			}
		})
	}
}
