package tracecast

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/gg"
)

// Anchor is the pixel position recorded immediately after drawing a text run.
// X is the pen position, Y the top of the run's row.
type Anchor struct {
	X, Y float64
}

// writeStyle is the styling of one write call.
type writeStyle struct {
	color      gg.RGBA
	hasColor   bool
	bold       bool
	background gg.RGBA
	hasBG      bool
}

// painter is a stateful text cursor confined to a column/row box on the
// canvas. It wraps at the column limit, drops everything past the row limit
// (optionally marking the truncation with an ellipsis), and fills background
// cells behind highlighted runs.
//
// A box with non-positive rows or columns accepts writes and draws nothing,
// which is how degenerate geometry degrades.
type painter struct {
	dc    *gg.Context
	fonts *FontSet
	fg    gg.RGBA

	x, y       float64
	cols, rows int
	lineHeight float64
	glyphW     float64

	// xEnd, when positive, is the pixel edge background highlights extend
	// to when a highlighted line breaks before the column limit.
	xEnd float64

	// showTruncate draws an ellipsis in the box's last cell when text is
	// dropped at the row limit.
	showTruncate bool

	col, row  int
	truncated bool
}

func newPainter(dc *gg.Context, fonts *FontSet, fg gg.RGBA, x, y float64, cols, rows int, lineHeight, glyphW float64) *painter {
	return &painter{
		dc:         dc,
		fonts:      fonts,
		fg:         fg,
		x:          x,
		y:          y,
		cols:       cols,
		rows:       rows,
		lineHeight: lineHeight,
		glyphW:     glyphW,
	}
}

// write draws s at the cursor and returns the pen position after the last
// run. Newlines in s break lines; long runs wrap at the column limit.
func (p *painter) write(s string, style writeStyle) Anchor {
	for i, seg := range strings.Split(s, "\n") {
		if i > 0 {
			p.breakLine(style)
		}
		p.writeSegment(seg, style)
	}
	return p.pen()
}

// newLine advances the cursor to the start of the next row.
func (p *painter) newLine() {
	p.col = 0
	p.row++
}

// pen returns the current cursor position in pixels.
func (p *painter) pen() Anchor {
	return Anchor{
		X: p.x + float64(p.col)*p.glyphW,
		Y: p.y + float64(p.row)*p.lineHeight,
	}
}

// breakLine ends the current row. A highlighted row's background extends to
// xEnd so the highlight covers the full line, not just its text.
func (p *painter) breakLine(style writeStyle) {
	if style.hasBG && p.xEnd > 0 && p.row >= 0 && p.row < p.rows {
		if x := p.pen().X; p.xEnd > x {
			p.fillCells(x, p.rowTop(), p.xEnd-x, style.background)
		}
	}
	p.newLine()
}

func (p *painter) writeSegment(seg string, style writeStyle) {
	runes := []rune(seg)
	for len(runes) > 0 {
		if p.row >= p.rows {
			p.markTruncated()
			return
		}
		space := p.cols - p.col
		if space <= 0 {
			p.newLine()
			continue
		}
		n := len(runes)
		if n > space {
			n = space
		}
		p.drawChunk(string(runes[:n]), style)
		runes = runes[n:]
	}
}

func (p *painter) drawChunk(chunk string, style writeStyle) {
	n := utf8.RuneCountInString(chunk)
	x := p.pen().X
	top := p.rowTop()

	if style.hasBG {
		p.fillCells(x, top, float64(n)*p.glyphW, style.background)
	}

	face := p.fonts.Body
	if style.bold {
		face = p.fonts.BodyBold
	}
	col := p.fg
	if style.hasColor {
		col = style.color
	}
	p.dc.SetFont(face)
	p.dc.SetColor(col)
	p.dc.DrawString(chunk, x, top+face.Metrics().Ascent)

	p.col += n
}

func (p *painter) rowTop() float64 {
	return p.y + float64(p.row)*p.lineHeight
}

func (p *painter) fillCells(x, y, w float64, col gg.RGBA) {
	p.dc.SetColor(col)
	p.dc.DrawRectangle(x, y, w, p.lineHeight)
	_ = p.dc.Fill()
}

// markTruncated records that text was dropped at the row limit and, when
// enabled, overwrites the box's last cell with an ellipsis.
func (p *painter) markTruncated() {
	if p.truncated {
		return
	}
	p.truncated = true
	if !p.showTruncate || p.rows <= 0 || p.cols <= 0 {
		return
	}
	x := p.x + float64(p.cols-1)*p.glyphW
	y := p.y + float64(p.rows-1)*p.lineHeight
	p.dc.SetFont(p.fonts.Body)
	p.dc.SetColor(p.fg)
	p.dc.DrawString("…", x, y+p.fonts.Body.Metrics().Ascent)
}
