package tracecast

import (
	"testing"

	"github.com/gogpu/gg"

	"github.com/tracecast/tracecast/config"
)

// testConfig returns a small but non-degenerate configuration using the
// embedded fallback fonts.
func testConfig() *config.Config {
	return &config.Config{
		W: 640, H: 360, FPS: 10,
		VarX: 427, OutY: 288, OvarY: 120,
		SectPadding: 8,
		HeadPadding: 5,
		LineHeight:  1.2,

		BG:          gg.RGBA{R: 0.19, G: 0.19, B: 0.19, A: 1},
		FG:          gg.RGBA{R: 0.97, G: 0.97, B: 0.95, A: 1},
		FGHeading:   gg.RGBA{R: 0.68, G: 0.51, B: 1, A: 1},
		Highlight:   gg.RGBA{R: 0.29, G: 0.28, B: 0.24, A: 1},
		FGWatermark: gg.RGBA{R: 0.46, G: 0.44, B: 0.37, A: 1},
		Red:         gg.RGBA{R: 0.98, G: 0.15, B: 0.45, A: 1},
		Green:       gg.RGBA{R: 0.65, G: 0.89, B: 0.18, A: 1},
		Blue:        gg.RGBA{R: 0.4, G: 0.85, B: 0.94, A: 1},

		FontBody:     config.FontSpec{Size: 12},
		FontBodyBold: config.FontSpec{Size: 12},
		FontCaption:  config.FontSpec{Size: 9},
		FontHeading:  config.FontSpec{Size: 14},
		FontIntro:    config.FontSpec{Size: 22},
	}
}

func newTestFonts(t *testing.T) *FontSet {
	t.Helper()
	fonts, err := loadFonts(testConfig())
	if err != nil {
		t.Fatalf("loadFonts: %v", err)
	}
	return fonts
}

func newTestPainter(t *testing.T, cols, rows int) *painter {
	t.Helper()
	dc := gg.NewContext(640, 360)
	fg := gg.RGBA{R: 1, G: 1, B: 1, A: 1}
	return newPainter(dc, newTestFonts(t), fg, 10, 20, cols, rows, 16, 8)
}

func TestPainter_CursorAdvance(t *testing.T) {
	p := newTestPainter(t, 40, 10)

	a := p.write("hello", writeStyle{})
	if p.col != 5 || p.row != 0 {
		t.Fatalf("cursor = (%d, %d), want (5, 0)", p.col, p.row)
	}
	// pen x = x + col*glyphW, y = top of the row
	if a.X != 10+5*8 || a.Y != 20 {
		t.Errorf("anchor = %+v, want {50 20}", a)
	}

	a = p.write(" world", writeStyle{})
	if p.col != 11 {
		t.Errorf("col = %d, want 11", p.col)
	}
	if a.X != 10+11*8 {
		t.Errorf("anchor.X = %v, want %v", a.X, 10.0+11*8)
	}
}

func TestPainter_NewlineAndWrap(t *testing.T) {
	t.Run("explicit newline", func(t *testing.T) {
		p := newTestPainter(t, 40, 10)
		a := p.write("ab\ncd", writeStyle{})
		if p.row != 1 || p.col != 2 {
			t.Fatalf("cursor = (%d, %d), want (2, 1)", p.col, p.row)
		}
		if a.Y != 20+16 {
			t.Errorf("anchor.Y = %v, want %v", a.Y, 20.0+16)
		}
	})

	t.Run("wrap at column limit", func(t *testing.T) {
		p := newTestPainter(t, 4, 10)
		p.write("abcdef", writeStyle{})
		if p.row != 1 || p.col != 2 {
			t.Errorf("cursor = (%d, %d), want (2, 1)", p.col, p.row)
		}
	})

	t.Run("newLine resets column", func(t *testing.T) {
		p := newTestPainter(t, 40, 10)
		p.write("abc", writeStyle{})
		p.newLine()
		if p.col != 0 || p.row != 1 {
			t.Errorf("cursor = (%d, %d), want (0, 1)", p.col, p.row)
		}
	})
}

func TestPainter_RowLimit(t *testing.T) {
	p := newTestPainter(t, 10, 2)
	p.write("one\ntwo\nthree\nfour", writeStyle{})
	if !p.truncated {
		t.Error("expected truncation past the row limit")
	}
	// The cursor does not advance past dropped rows' content.
	if p.row < 2 {
		t.Errorf("row = %d, want >= 2", p.row)
	}
}

func TestPainter_TruncationMark(t *testing.T) {
	p := newTestPainter(t, 10, 2)
	p.showTruncate = true
	p.write("one\ntwo\nthree", writeStyle{})
	if !p.truncated {
		t.Fatal("expected truncation past the row limit")
	}
	// Further writes past the limit stay dropped.
	p.write("four", writeStyle{})
	if p.col != 0 {
		t.Errorf("col = %d, want 0 after dropped write", p.col)
	}
}

// A degenerate box must swallow writes without drawing or panicking.
func TestPainter_DegenerateBox(t *testing.T) {
	for _, tt := range []struct {
		name       string
		cols, rows int
	}{
		{"zero rows", 10, 0},
		{"zero cols", 0, 5},
		{"negative", -3, -1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPainter(t, tt.cols, tt.rows)
			p.write("text\nmore", writeStyle{})
		})
	}
}

func TestPainter_BackgroundFill(t *testing.T) {
	dc := gg.NewContext(640, 360)
	dc.ClearWithColor(gg.RGBA{A: 1})
	fonts := newTestFonts(t)
	p := newPainter(dc, fonts, gg.RGBA{R: 1, G: 1, B: 1, A: 1}, 10, 20, 40, 10, 16, 8)

	bg := gg.RGBA{R: 1, G: 0, B: 0, A: 1}
	p.write("xx", writeStyle{background: bg, hasBG: true})

	// A pixel inside the written cells must be tinted by the background.
	img := dc.Image()
	r, _, _, _ := img.At(12, 28).RGBA()
	if r == 0 {
		t.Error("background fill did not reach the canvas")
	}
}
