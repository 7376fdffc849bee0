package tracecast

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/gogpu/gg"
)

// textStyle is the visual rendition of one syntax token kind. The raster
// backend has no italic or underline faces, so both degrade to bold.
type textStyle struct {
	color    gg.RGBA
	hasColor bool
	bold     bool
}

// styleTable maps token kinds to text styles. It is built once from a chroma
// theme and consulted by plain key lookup for every token drawn.
type styleTable map[chroma.TokenType]textStyle

// newStyleTable flattens a chroma style into a lookup table. Entries are
// fully resolved here (chroma's style inheritance included), so rendering
// never touches the theme again.
func newStyleTable(style *chroma.Style) styleTable {
	types := style.Types()
	table := make(styleTable, len(types))
	for _, tt := range types {
		entry := style.Get(tt)
		st := textStyle{
			bold: entry.Bold == chroma.Yes ||
				entry.Italic == chroma.Yes ||
				entry.Underline == chroma.Yes,
		}
		if entry.Colour.IsSet() {
			st.color = gg.RGBA{
				R: float64(entry.Colour.Red()) / 255,
				G: float64(entry.Colour.Green()) / 255,
				B: float64(entry.Colour.Blue()) / 255,
				A: 1,
			}
			st.hasColor = true
		}
		table[tt] = st
	}
	return table
}

// lookup resolves a token kind, falling back through its sub-category and
// category. Unknown kinds render in the panel's default foreground.
func (t styleTable) lookup(tok chroma.TokenType) textStyle {
	if st, ok := t[tok]; ok {
		return st
	}
	if st, ok := t[tok.SubCategory()]; ok {
		return st
	}
	if st, ok := t[tok.Category()]; ok {
		return st
	}
	return textStyle{}
}
