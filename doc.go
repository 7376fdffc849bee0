// Package tracecast composes execution-trace snapshots into raster video
// frames.
//
// # Overview
//
// Each frame shows three fixed panels: the source code windowed around the
// current execution line, the program output log, and the variable history
// (split into a "last variable" and an "other variables" section). When a
// variable event references another tracked variable, an orthogonal connector
// line is routed between the two text runs involved.
//
// # Quick Start
//
//	cfg, _ := config.Load("tracecast.toml")
//	r, _ := tracecast.New("out.mp4", cfg)
//
//	for _, step := range steps {
//		r.StartFrame()
//		r.DrawCode(step.Lines, step.CurrentLine)
//		r.DrawOutput(step.Output)
//		r.FinishFrame(step.Vars)
//	}
//	r.Close(nil)
//
// # Model
//
// Rendering is strictly single-threaded and stateless between frames except
// for the panel geometry, which is computed once from font metrics on the
// first frame and reused for the rest of the run. Every frame gets a fresh
// canvas; finishing a frame hands it to the encoder's blocking write and
// drops it.
//
// Frames are drawn with the gogpu/gg software renderer, syntax styles come
// from chroma themes, and output containers (MP4, GIF, WebP) are selected by
// the output path's extension.
package tracecast
