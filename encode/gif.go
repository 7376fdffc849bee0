package encode

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
)

// GIF buffers palette-quantized frames and writes the animation when the run
// stops. GIF is the one container written natively; it needs no external
// tool.
type GIF struct {
	path  string
	delay int // per-frame delay in 100ths of a second

	anim gif.GIF
}

// NewGIF creates a GIF encoder writing to path at the given frame rate.
func NewGIF(path string, fps float64) *GIF {
	delay := 0
	if fps > 0 {
		delay = int(math.Round(100 / fps))
	}
	return &GIF{path: path, delay: delay}
}

// Write quantizes one frame onto a fixed 256-color palette with
// Floyd-Steinberg dithering and buffers it.
func (e *GIF) Write(frame image.Image) error {
	b := frame.Bounds()
	pm := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pm, b, frame, b.Min)

	e.anim.Image = append(e.anim.Image, pm)
	e.anim.Delay = append(e.anim.Delay, e.delay)
	return nil
}

// Stop encodes the buffered animation. With no frames buffered, nothing is
// written and no file is created.
func (e *GIF) Stop() error {
	if len(e.anim.Image) == 0 {
		return nil
	}
	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("encode: create gif: %w", err)
	}
	if err := gif.EncodeAll(f, &e.anim); err != nil {
		f.Close()
		return fmt.Errorf("encode: write gif: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("encode: close gif: %w", err)
	}
	return nil
}
