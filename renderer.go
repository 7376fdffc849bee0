package tracecast

import (
	"fmt"
	"math"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/tracecast/tracecast/config"
	"github.com/tracecast/tracecast/encode"
	"github.com/tracecast/tracecast/trace"
)

// watermarkText is the overlay drawn bottom-right when watermarking is on.
const watermarkText = "Generated by tracecast"

// frameState tracks where the renderer is in a frame's lifecycle.
type frameState int

const (
	// stateIdle: no open canvas. Finishing here is a no-op.
	stateIdle frameState = iota
	// stateOpen: canvas allocated, chrome drawn, content draws allowed.
	stateOpen
	// stateClosed: content complete, canvas on its way to the encoder.
	stateClosed
)

// Renderer turns trace steps into video frames. Create one with New, drive
// it with StartFrame / Draw* / FinishFrame once per step, and Close it when
// the trace ends.
//
// Renderer is single-threaded: one frame is fully composed and handed to the
// encoder before the next begins, and there is exactly one live canvas at
// any time.
type Renderer struct {
	cfg    *config.Config
	enc    encode.Encoder
	fonts  *FontSet
	styles styleTable

	// geom is computed once, on the first StartFrame, and reused.
	geom     Geometry
	metrics  Metrics
	haveGeom bool

	dc    *gg.Context
	state frameState
}

// Option configures a Renderer during creation.
type Option func(*rendererOptions)

type rendererOptions struct {
	enc   encode.Encoder
	style *chroma.Style
}

// WithEncoder injects a pre-built encoder, bypassing the output-path
// extension dispatch. Tests use this to capture frames in memory.
func WithEncoder(enc encode.Encoder) Option {
	return func(o *rendererOptions) {
		o.enc = enc
	}
}

// WithStyle overrides the syntax highlighting theme. The default is monokai.
func WithStyle(style *chroma.Style) Option {
	return func(o *rendererOptions) {
		o.style = style
	}
}

// New creates a Renderer writing to path. The output container is chosen by
// the path's extension; an unsupported extension fails here, before anything
// is written. When the config carries an intro text and duration, the intro
// frames are emitted immediately.
func New(path string, cfg *config.Config, opts ...Option) (*Renderer, error) {
	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}

	enc := o.enc
	if enc == nil {
		var err error
		enc, err = encode.ForPath(path, cfg.FPS, cfg.W, cfg.H)
		if err != nil {
			return nil, fmt.Errorf("tracecast: %w", err)
		}
	}

	fonts, err := loadFonts(cfg)
	if err != nil {
		return nil, err
	}

	style := o.style
	if style == nil {
		style = styles.Get("monokai")
	}

	r := &Renderer{
		cfg:    cfg,
		enc:    enc,
		fonts:  fonts,
		styles: newStyleTable(style),
	}
	Logger().Info("renderer ready", "output", path, "size", fmt.Sprintf("%dx%d", cfg.W, cfg.H), "fps", cfg.FPS)

	if cfg.IntroText != "" && cfg.IntroTime > 0 {
		if err := r.writeIntro(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// StartFrame opens a fresh canvas and draws the static chrome: the three
// panel dividers and their heading labels. Panel geometry is computed here,
// once, on the very first frame.
func (r *Renderer) StartFrame() {
	r.newCanvas()

	if !r.haveGeom {
		r.metrics = faceMetrics(r.fonts)
		r.geom = computeGeometry(r.cfg, r.metrics)
		r.haveGeom = true
		Logger().Debug("geometry computed",
			"lineHeight", r.geom.LineHeight,
			"bodyCols", r.geom.BodyCols, "bodyRows", r.geom.BodyRows,
			"outRows", r.geom.OutRows, "varsRows", r.geom.VarsRows, "ovarsRows", r.geom.OvarsRows)
	}

	r.drawChrome()
	r.state = stateOpen
}

// newCanvas allocates this frame's canvas and clears it to the background.
func (r *Renderer) newCanvas() {
	dc := gg.NewContext(r.cfg.W, r.cfg.H)
	dc.ClearWithColor(r.cfg.BG)
	r.dc = dc
}

func (r *Renderer) drawChrome() {
	dc, cfg := r.dc, r.cfg
	w, h := float64(cfg.W), float64(cfg.H)

	dc.SetColor(cfg.FG)
	dc.SetLineWidth(1)
	dc.DrawLine(0, cfg.OutY, cfg.VarX, cfg.OutY)
	dc.DrawLine(cfg.VarX, 0, cfg.VarX, h)
	dc.DrawLine(cfg.VarX, cfg.OvarY, w, cfg.OvarY)
	_ = dc.Stroke()

	varCenterX := cfg.VarX + (w-cfg.VarX)/2
	r.drawCentered("Output", cfg.VarX/2, cfg.OutY+cfg.HeadPadding, r.fonts.Heading, cfg.FGHeading)
	r.drawCentered("Last Variable", varCenterX, cfg.HeadPadding, r.fonts.Heading, cfg.FGHeading)
	r.drawCentered("Other Variables", varCenterX, cfg.OvarY+cfg.HeadPadding, r.fonts.Heading, cfg.FGHeading)
}

// drawCentered draws one line of text centered on (x, y).
func (r *Renderer) drawCentered(s string, x, y float64, face text.Face, col gg.RGBA) {
	r.dc.SetFont(face)
	r.dc.SetColor(col)
	w, h := r.dc.MeasureString(s)
	r.dc.DrawString(s, x-w/2, y-h/2+face.Metrics().Ascent)
}

// DrawCode renders the code panel: the source window around the 1-based
// current line, with the current line backed by the highlight color and
// every token styled from the theme table.
func (r *Renderer) DrawCode(lines []trace.Line, curLine int) {
	g := r.geom
	p := r.panelPainter(r.cfg.SectPadding, r.cfg.SectPadding+g.LineHeight, g.BodyCols, g.BodyRows)
	p.xEnd = r.cfg.VarX - r.cfg.SectPadding

	for _, vl := range visibleLines(lines, curLine, g.bodyRowsF) {
		var bg gg.RGBA
		hasBG := false
		if vl.current {
			bg, hasBG = r.cfg.Highlight, true
		}
		for _, tok := range vl.tokens {
			st := r.styles.lookup(tok.Type)
			p.write(tok.Text, writeStyle{
				color:      st.color,
				hasColor:   st.hasColor,
				bold:       st.bold,
				background: bg,
				hasBG:      hasBG,
			})
		}
	}
}

// DrawOutput renders the output panel with the most recent output lines that
// fit its rows.
func (r *Renderer) DrawOutput(lines []string) {
	g := r.geom
	if g.OutRows > 0 && len(lines) > g.OutRows {
		lines = lines[len(lines)-g.OutRows:]
	}
	p := r.panelPainter(g.OutX, g.OutY, g.OutCols, g.OutRows)
	p.write(strings.Join(lines, "\n"), writeStyle{})
}

// DrawExecCaption draws the per-line timing caption just above the output
// divider.
func (r *Renderer) DrawExecCaption(st *trace.ExecStats) {
	plural := "s"
	if st.Count == 1 {
		plural = ""
	}
	caption := fmt.Sprintf("Line executed %d time%s — current time elapsed: %s, average: %s, total: %s",
		st.Count, plural, st.Current, st.Average, st.Total)

	face := r.fonts.Caption
	x := r.cfg.SectPadding
	y := r.cfg.OutY - r.cfg.SectPadding - r.metrics.CaptionH
	r.dc.SetFont(face)
	r.dc.SetColor(r.cfg.FG)
	r.dc.DrawString(caption, x, y+face.Metrics().Ascent)
}

// FinishFrame completes the open frame: variable panels (when a state was
// captured), the reference connector (when the state names a reference and
// both anchors landed), the watermark, then the blocking hand-off to the
// encoder. The canvas is dropped afterwards. Finishing with no open frame is
// a no-op, so a defensive final call at trace end is safe.
func (r *Renderer) FinishFrame(vs *trace.VarState) error {
	if r.state == stateIdle || r.dc == nil {
		return nil
	}

	if vs != nil {
		r.drawVariables(vs)
	}
	if r.cfg.Watermark {
		r.drawWatermark()
	}
	r.state = stateClosed

	img := r.dc.Image()
	r.dc = nil
	r.state = stateIdle

	if err := r.enc.Write(img); err != nil {
		return fmt.Errorf("tracecast: encode frame: %w", err)
	}
	Logger().Debug("frame written")
	return nil
}

// drawVariables draws both variable panels and, when the state references
// another variable and both anchors were captured, the connector between
// them. The other-variables panel draws first so the last-variable panel and
// the connector always sit on top.
func (r *Renderer) drawVariables(vs *trace.VarState) {
	dst, haveDst := r.drawOtherVars(vs)
	src := r.drawLastVar(vs)

	if vs.Ref != "" && haveDst {
		drawRefLine(r.dc, r.cfg, src, dst, r.metrics.BodyH, r.semanticColor(vs.Color))
	}
}

// writeIntro emits the intro sequence: round(duration * fps) frames of the
// title string centered on an otherwise blank canvas, before any trace
// frame. Intro frames bypass chrome and geometry entirely.
func (r *Renderer) writeIntro() error {
	frames := int(math.Round(r.cfg.IntroTime * r.cfg.FPS))
	Logger().Debug("writing intro", "frames", frames)
	for i := 0; i < frames; i++ {
		r.newCanvas()
		r.state = stateOpen
		r.drawCentered(r.cfg.IntroText, float64(r.cfg.W)/2, float64(r.cfg.H)/2, r.fonts.Intro, r.cfg.FGHeading)
		if err := r.FinishFrame(nil); err != nil {
			return err
		}
	}
	return nil
}

// drawWatermark overlays the watermark, right/bottom aligned with the
// section padding. It draws after all panel content so it is never covered.
func (r *Renderer) drawWatermark() {
	face := r.fonts.Caption
	r.dc.SetFont(face)
	w, h := r.dc.MeasureString(watermarkText)

	x := float64(r.cfg.W) - r.cfg.SectPadding - w
	y := float64(r.cfg.H) - r.cfg.SectPadding - h
	r.dc.SetColor(r.cfg.FGWatermark)
	r.dc.DrawString(watermarkText, x, y+face.Metrics().Ascent)
}

// Close finishes any open frame, then finalizes the output container. Call
// it exactly once, after the last step.
func (r *Renderer) Close(vs *trace.VarState) error {
	err := r.FinishFrame(vs)
	if stopErr := r.enc.Stop(); stopErr != nil && err == nil {
		err = fmt.Errorf("tracecast: finalize output: %w", stopErr)
	}
	if err == nil {
		Logger().Info("run finished")
	}
	return err
}
