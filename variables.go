package tracecast

import (
	"github.com/gogpu/gg"

	"github.com/tracecast/tracecast/trace"
)

// drawLastVar redraws the last-variable panel from scratch: variable name, a
// space, the action label in bold semantic color, then the rendered value on
// the next line. The returned anchor marks where the action label's run
// ended; it is the source end of a reference connector.
func (r *Renderer) drawLastVar(vs *trace.VarState) Anchor {
	g := r.geom
	p := r.panelPainter(g.VarsX, g.VarsY, g.VarsCols, g.VarsRows)

	p.write(vs.Name+" ", writeStyle{})
	anchor := p.write(vs.Action+" ", writeStyle{
		bold:     true,
		color:    r.semanticColor(vs.Color),
		hasColor: true,
	})
	p.newLine()
	p.write(vs.Text, writeStyle{})

	return anchor
}

// drawOtherVars draws the history of every tracked variable in declaration
// order, one bullet per recorded value, oldest first. The last value of the
// variable named by vs.Ref renders highlighted; the anchor where that run
// ended is the destination end of the reference connector. The second return
// reports whether such an anchor was captured.
func (r *Renderer) drawOtherVars(vs *trace.VarState) (Anchor, bool) {
	g := r.geom
	p := r.panelPainter(g.OvarsX, g.OvarsY, g.OvarsCols, g.OvarsRows)
	// Histories can outgrow the panel; mark the cutoff instead of clipping
	// silently.
	p.showTruncate = true

	var (
		dst  Anchor
		have bool
	)
	first := true
	for _, h := range vs.History {
		if h.Ignored {
			continue
		}
		if !first {
			p.write("\n\n", writeStyle{})
		}
		first = false

		p.write(h.Name+":", writeStyle{})
		for i, val := range h.Values {
			if val.Ignored {
				continue
			}
			p.write("\n    • ", writeStyle{})

			if h.Name == vs.Ref && i == len(h.Values)-1 {
				dst = writeValueHighlight(p, val.Value, vs.Text, writeStyle{
					bold:     true,
					color:    r.semanticColor(vs.Color),
					hasColor: true,
				})
				have = true
			} else {
				writeValue(p, val.Value)
			}
		}
	}
	return dst, have
}

// semanticColor resolves a semantic color to the configured palette.
func (r *Renderer) semanticColor(c trace.Color) gg.RGBA {
	switch c {
	case trace.Red:
		return r.cfg.Red
	case trace.Green:
		return r.cfg.Green
	default:
		return r.cfg.Blue
	}
}

// panelPainter opens a text cursor over one panel's box.
func (r *Renderer) panelPainter(x, y float64, cols, rows int) *painter {
	return newPainter(r.dc, r.fonts, r.cfg.FG, x, y, cols, rows, r.geom.LineHeight, r.metrics.BodyW)
}
