// Command tracecast renders a recorded execution trace into a video.
//
// It takes the traced source file, a JSON trace script, and a TOML config,
// and replays the script frame by frame into an MP4, GIF, or WebP chosen by
// the output path's extension:
//
//	tracecast -config tracecast.toml -source prog.py -trace trace.json -o out.mp4
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tracecast/tracecast"
	"github.com/tracecast/tracecast/config"
	"github.com/tracecast/tracecast/trace"
)

func main() {
	var (
		configPath = flag.String("config", "tracecast.toml", "config file (TOML)")
		sourcePath = flag.String("source", "", "traced source file")
		tracePath  = flag.String("trace", "", "recorded trace script (JSON)")
		output     = flag.String("o", "out.mp4", "output video (mp4, gif or webp)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *sourcePath == "" || *tracePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		tracecast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	src, err := os.ReadFile(*sourcePath)
	if err != nil {
		log.Fatalf("read source: %v", err)
	}
	lines, err := trace.Tokenize(filepath.Base(*sourcePath), string(src))
	if err != nil {
		log.Fatal(err)
	}

	script, err := trace.LoadScript(*tracePath)
	if err != nil {
		log.Fatal(err)
	}

	r, err := tracecast.New(*output, cfg)
	if err != nil {
		log.Fatal(err)
	}

	var out []string
	for _, step := range script.Steps {
		out = append(out, step.Output...)

		r.StartFrame()
		r.DrawCode(lines, step.Line)
		r.DrawOutput(out)
		if step.Exec != nil {
			r.DrawExecCaption(step.Exec)
		}
		if err := r.FinishFrame(step.Vars); err != nil {
			log.Fatal(err)
		}
	}
	if err := r.Close(nil); err != nil {
		log.Fatal(err)
	}

	log.Printf("Rendered %d frames to %s", len(script.Steps), *output)
}
