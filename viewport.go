package tracecast

import (
	"math"

	"github.com/tracecast/tracecast/trace"
)

// viewLine is one source line selected for display, flagged when it is the
// line currently executing.
type viewLine struct {
	tokens  trace.Line
	current bool
}

// viewportWindow computes the inclusive index range of lines to display for a
// viewport of rowsF rows centered on 0-based line cur.
//
// The window is symmetric around cur; when the file starts too close above,
// the whole window shifts down (extra context below) and start clamps to 0.
// The bottom edge clamps to the last line, so windows near the end of the
// file simply come up short.
func viewportWindow(total, cur int, rowsF float64) (start, end int) {
	side := (rowsF - 1) / 2
	start = int(math.Round(float64(cur) - side))
	end = int(math.Round(float64(cur) + side))
	if start < 0 {
		end += -start
		start = 0
	}
	if end > total-1 {
		end = total - 1
	}
	return start, end
}

// visibleLines windows lines around the 1-based current line and annotates
// the window with the current-line flag.
func visibleLines(lines []trace.Line, curLine int, rowsF float64) []viewLine {
	cur := curLine - 1
	start, end := viewportWindow(len(lines), cur, rowsF)

	var out []viewLine
	for i := start; i <= end; i++ {
		out = append(out, viewLine{tokens: lines[i], current: i == cur})
	}
	return out
}
