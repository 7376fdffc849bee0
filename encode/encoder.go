// Package encode writes composed frames into video containers. The container
// is selected by the output path's extension: MP4 (H.264 via an ffmpeg
// pipe), animated GIF (native), or animated WebP (ffmpeg again).
//
// Encoders are blocking sinks: Write must fully accept a frame before the
// compositor composes the next one, and Stop finalizes the container exactly
// once after the last Write.
package encode

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Encoder accepts fully composed frames, one per trace step (plus intro
// frames), and finalizes the container on Stop.
type Encoder interface {
	Write(frame image.Image) error
	Stop() error
}

// ForPath selects an encoder from path's extension. Unsupported extensions
// are rejected here, at construction, leaving no partial output behind.
func ForPath(path string, fps float64, width, height int) (Encoder, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "mp4":
		return NewFFmpeg(path, CodecH264, fps, width, height), nil
	case "gif":
		return NewGIF(path, fps), nil
	case "webp":
		return NewFFmpeg(path, CodecWebP, fps, width, height), nil
	default:
		return nil, fmt.Errorf("encode: unrecognized file extension %q", ext)
	}
}
