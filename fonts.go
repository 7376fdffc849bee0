package tracecast

import (
	"fmt"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmmonolt10bold"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/gogpu/gg/text"

	"github.com/tracecast/tracecast/config"
)

// FontSet holds the five faces every frame is drawn with.
type FontSet struct {
	Body     text.Face
	BodyBold text.Face
	Caption  text.Face
	Heading  text.Face
	Intro    text.Face
}

// loadFonts loads the configured faces. A FontSpec with an empty path falls
// back to an embedded Latin Modern face, so a config without font files still
// renders (and tests never touch the filesystem).
func loadFonts(cfg *config.Config) (*FontSet, error) {
	body, err := loadFace(cfg.FontBody, lmmono10regular.TTF)
	if err != nil {
		return nil, fmt.Errorf("tracecast: body font: %w", err)
	}
	bold, err := loadFace(cfg.FontBodyBold, lmmonolt10bold.TTF)
	if err != nil {
		return nil, fmt.Errorf("tracecast: body bold font: %w", err)
	}
	caption, err := loadFace(cfg.FontCaption, lmmono10regular.TTF)
	if err != nil {
		return nil, fmt.Errorf("tracecast: caption font: %w", err)
	}
	heading, err := loadFace(cfg.FontHeading, lmroman10bold.TTF)
	if err != nil {
		return nil, fmt.Errorf("tracecast: heading font: %w", err)
	}
	intro, err := loadFace(cfg.FontIntro, lmroman10bold.TTF)
	if err != nil {
		return nil, fmt.Errorf("tracecast: intro font: %w", err)
	}
	return &FontSet{
		Body:     body,
		BodyBold: bold,
		Caption:  caption,
		Heading:  heading,
		Intro:    intro,
	}, nil
}

func loadFace(spec config.FontSpec, fallback []byte) (text.Face, error) {
	var (
		src *text.FontSource
		err error
	)
	if spec.Path == "" {
		src, err = text.NewFontSource(fallback)
	} else {
		src, err = text.NewFontSourceFromFile(spec.Path)
	}
	if err != nil {
		return nil, err
	}
	return src.Face(spec.Size), nil
}
