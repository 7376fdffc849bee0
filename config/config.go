// Package config loads the compositor's TOML configuration: canvas size and
// frame rate, panel split ratios, paddings, the color palette, font
// specifications, and the intro/watermark settings.
//
// The package resolves split ratios into absolute pixel coordinates and parses
// hex color strings at load time, so the rest of the system only ever sees
// ready-to-use values. It applies no defaults: what the file says is what the
// compositor gets.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"
)

// FontSpec names a font file and the size to load it at, in points.
// An empty Path selects the embedded fallback face.
type FontSpec struct {
	Path string  `toml:"path"`
	Size float64 `toml:"size"`
}

// Config is the resolved, read-only configuration.
type Config struct {
	// Canvas size in pixels and output frame rate.
	W, H int
	FPS  float64

	// Resolved panel split coordinates: VarX is the vertical divider
	// between code and variables, OutY the top of the output panel, OvarY
	// the divider between the two variable panels.
	VarX, OutY, OvarY float64

	// Paddings in pixels and the line-height multiplier.
	SectPadding float64
	HeadPadding float64
	LineHeight  float64

	// Palette.
	BG, FG, FGHeading, Highlight, FGWatermark gg.RGBA
	Red, Green, Blue                          gg.RGBA

	// Fonts.
	FontBody, FontBodyBold, FontCaption, FontHeading, FontIntro FontSpec

	// Intro sequence: no frames are emitted unless both are nonzero.
	IntroText string
	IntroTime float64

	// Watermark toggles the overlay on every frame.
	Watermark bool
}

// fileConfig mirrors the TOML document layout.
type fileConfig struct {
	Video struct {
		Width  int     `toml:"width"`
		Height int     `toml:"height"`
		FPS    float64 `toml:"fps"`
	} `toml:"video"`
	Layout struct {
		VarSplit    float64 `toml:"var_split"`
		OutSplit    float64 `toml:"out_split"`
		OvarSplit   float64 `toml:"ovar_split"`
		SectPadding float64 `toml:"sect_padding"`
		HeadPadding float64 `toml:"head_padding"`
		LineHeight  float64 `toml:"line_height"`
	} `toml:"layout"`
	Colors struct {
		Background string `toml:"background"`
		Foreground string `toml:"foreground"`
		Heading    string `toml:"heading"`
		Highlight  string `toml:"highlight"`
		Watermark  string `toml:"watermark"`
		Red        string `toml:"red"`
		Green      string `toml:"green"`
		Blue       string `toml:"blue"`
	} `toml:"colors"`
	Fonts struct {
		Body     FontSpec `toml:"body"`
		BodyBold FontSpec `toml:"body_bold"`
		Caption  FontSpec `toml:"caption"`
		Heading  FontSpec `toml:"heading"`
		Intro    FontSpec `toml:"intro"`
	} `toml:"fonts"`
	Intro struct {
		Text     string  `toml:"text"`
		Duration float64 `toml:"duration"`
	} `toml:"intro"`
	Watermark struct {
		Enabled bool `toml:"enabled"`
	} `toml:"watermark"`
}

// Load reads and resolves a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a TOML document and resolves it into a Config.
func Parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	cfg := &Config{
		W:   fc.Video.Width,
		H:   fc.Video.Height,
		FPS: fc.Video.FPS,

		VarX:  math.Round(float64(fc.Video.Width) * fc.Layout.VarSplit),
		OutY:  math.Round(float64(fc.Video.Height) * fc.Layout.OutSplit),
		OvarY: math.Round(float64(fc.Video.Height) * fc.Layout.OvarSplit),

		SectPadding: fc.Layout.SectPadding,
		HeadPadding: fc.Layout.HeadPadding,
		LineHeight:  fc.Layout.LineHeight,

		FontBody:     fc.Fonts.Body,
		FontBodyBold: fc.Fonts.BodyBold,
		FontCaption:  fc.Fonts.Caption,
		FontHeading:  fc.Fonts.Heading,
		FontIntro:    fc.Fonts.Intro,

		IntroText: fc.Intro.Text,
		IntroTime: fc.Intro.Duration,
		Watermark: fc.Watermark.Enabled,
	}

	for _, c := range []struct {
		name string
		src  string
		dst  *gg.RGBA
	}{
		{"background", fc.Colors.Background, &cfg.BG},
		{"foreground", fc.Colors.Foreground, &cfg.FG},
		{"heading", fc.Colors.Heading, &cfg.FGHeading},
		{"highlight", fc.Colors.Highlight, &cfg.Highlight},
		{"watermark", fc.Colors.Watermark, &cfg.FGWatermark},
		{"red", fc.Colors.Red, &cfg.Red},
		{"green", fc.Colors.Green, &cfg.Green},
		{"blue", fc.Colors.Blue, &cfg.Blue},
	} {
		col, err := ParseHexColor(c.src)
		if err != nil {
			return nil, fmt.Errorf("config: color %s: %w", c.name, err)
		}
		*c.dst = col
	}

	return cfg, nil
}

// ParseHexColor parses an opaque "RRGGBB" color, with or without a leading
// '#'. Unlike gg.Hex it reports malformed values instead of zeroing them.
func ParseHexColor(s string) (gg.RGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return gg.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	return gg.RGBA{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, nil
}
