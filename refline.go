package tracecast

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/tracecast/tracecast/config"
)

// refLineWidth is the stroke width of the reference connector.
const refLineWidth = 2

// railX picks the x coordinate the connector's vertical rail runs on: just
// right of both anchors, but never past the canvas edge.
func railX(srcX, dstX, sectPadding, canvasW float64) float64 {
	return math.Min(math.Max(srcX, dstX)+sectPadding, canvasW-sectPadding/2)
}

// drawRefLine routes a 3-segment orthogonal connector from the source anchor
// (the action label in the last-variable panel) to the destination anchor
// (the referenced value in the other-variables panel): out to the rail,
// down or up the rail, then back in to the destination. spaceH lifts the
// rail's far end one glyph above the destination row so the line enters from
// above instead of crossing the text.
func drawRefLine(dc *gg.Context, cfg *config.Config, src, dst Anchor, spaceH float64, col gg.RGBA) {
	x := railX(src.X, dst.X, cfg.SectPadding, float64(cfg.W))

	dc.SetColor(col)
	dc.SetLineWidth(refLineWidth)
	dc.MoveTo(src.X, src.Y)
	dc.LineTo(x, src.Y)
	dc.LineTo(x, dst.Y-spaceH)
	dc.LineTo(dst.X, dst.Y-spaceH)
	dc.LineTo(dst.X, dst.Y)
	_ = dc.Stroke()
}
