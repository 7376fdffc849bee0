package tracecast

import (
	"math"

	"github.com/tracecast/tracecast/config"
)

// Geometry is the immutable pixel layout of the three panels. It is computed
// once, on the first frame, from font metrics and config constants, and then
// passed unchanged into every drawing routine for the rest of the run.
//
// No lower bound is enforced: a degenerate config (tiny canvas, huge fonts)
// can yield zero or negative row and column counts, which render as empty
// panels.
type Geometry struct {
	// LineHeight is the vertical distance between text rows, in pixels.
	LineHeight float64

	// Code panel.
	BodyCols int
	BodyRows int
	// bodyRowsF keeps the fractional row count; the code viewport centers
	// its window on it rather than on the truncated BodyRows.
	bodyRowsF float64

	// Output panel.
	OutX, OutY float64
	OutCols    int
	OutRows    int

	// Last-variable panel.
	VarsX, VarsY float64
	VarsCols     int
	VarsRows     int

	// Other-variables panel.
	OvarsX, OvarsY float64
	OvarsCols      int
	OvarsRows      int
}

// computeGeometry derives the panel layout from glyph measurements and the
// configured splits. Column counts divide the panel's usable width by the
// body glyph width and round down, so a panel never claims a partial column:
//
//	cols*glyphW <= usable < (cols+1)*glyphW
func computeGeometry(cfg *config.Config, m Metrics) Geometry {
	w, h := float64(cfg.W), float64(cfg.H)
	lh := m.BodyH * cfg.LineHeight

	g := Geometry{LineHeight: lh}

	// Code panel: left of the vertical split, above the output divider,
	// with one caption row reserved at the bottom.
	g.BodyCols = int(math.Floor((cfg.VarX - cfg.SectPadding*2) / m.BodyW))
	g.bodyRowsF = (cfg.OutY - cfg.SectPadding*2 - m.CaptionH) / lh
	g.BodyRows = int(math.Floor(g.bodyRowsF))

	// Output panel: below its heading, spanning to the canvas bottom.
	g.OutX = cfg.SectPadding
	g.OutY = cfg.OutY + cfg.HeadPadding*2 + m.HeadH
	g.OutCols = g.BodyCols
	g.OutRows = int(math.Round((h - g.OutY) / lh))

	// Last-variable panel: right of the vertical split, above the
	// horizontal variable divider.
	g.VarsX = cfg.VarX + cfg.SectPadding
	g.VarsY = cfg.HeadPadding*2 + m.HeadH
	g.VarsCols = int(math.Floor((w - cfg.VarX - cfg.SectPadding*2) / m.BodyW))
	g.VarsRows = int(math.Floor((cfg.OvarY - cfg.HeadPadding*2 - m.HeadH) / lh))

	// Other-variables panel: same width, below the divider.
	g.OvarsX = g.VarsX
	g.OvarsY = cfg.OvarY + g.VarsY
	g.OvarsCols = g.VarsCols
	g.OvarsRows = int(math.Floor((h - cfg.OvarY - cfg.SectPadding*2) / lh))

	return g
}
