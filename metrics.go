package tracecast

import "github.com/gogpu/gg/text"

// Metrics holds the scalar glyph measurements panel geometry derives from.
// Widths assume the body face is monospaced: every glyph cell is BodyW wide.
type Metrics struct {
	// BodyW is the advance of one body glyph.
	BodyW float64

	// BodyH is the ascender-inclusive body glyph height (ascent + descent).
	BodyH float64

	// HeadH and CaptionH are the glyph heights of the heading and caption
	// faces.
	HeadH    float64
	CaptionH float64
}

// faceMetrics probes the loaded faces for the measurements geometry needs.
func faceMetrics(fonts *FontSet) Metrics {
	return Metrics{
		BodyW:    fonts.Body.Advance("A"),
		BodyH:    faceHeight(fonts.Body),
		HeadH:    faceHeight(fonts.Heading),
		CaptionH: faceHeight(fonts.Caption),
	}
}

func faceHeight(f text.Face) float64 {
	m := f.Metrics()
	return m.Ascent + m.Descent
}
