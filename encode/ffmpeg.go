package encode

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
	"strconv"
)

// Codec names an ffmpeg video codec the FFmpeg encoder can target.
type Codec string

const (
	CodecH264 Codec = "libx264"
	CodecWebP Codec = "libwebp"
)

// FFmpeg streams raw RGBA frames into an ffmpeg subprocess that encodes and
// containerizes them. The process starts lazily on the first Write, so
// constructing the encoder (and rejecting a bad config) costs nothing.
type FFmpeg struct {
	path  string
	codec Codec
	fps   float64
	w, h  int

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
}

// NewFFmpeg creates an encoder writing codec-compressed frames to path.
func NewFFmpeg(path string, codec Codec, fps float64, width, height int) *FFmpeg {
	return &FFmpeg{
		path:  path,
		codec: codec,
		fps:   fps,
		w:     width,
		h:     height,
	}
}

func (e *FFmpeg) start() error {
	args := []string{
		"-hide_banner", "-loglevel", "error", "-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", e.w, e.h),
		"-framerate", strconv.FormatFloat(e.fps, 'f', -1, 64),
		"-i", "-",
		"-c:v", string(e.codec),
	}
	// H.264 needs a player-friendly chroma layout.
	if e.codec == CodecH264 {
		args = append(args, "-pix_fmt", "yuv420p")
	}
	args = append(args, e.path)

	cmd := exec.Command("ffmpeg", args...)
	cmd.Stderr = &e.stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("encode: ffmpeg stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("encode: start ffmpeg: %w", err)
	}
	e.cmd = cmd
	e.stdin = stdin
	return nil
}

// Write streams one frame to the encoder, blocking until ffmpeg accepts it.
func (e *FFmpeg) Write(frame image.Image) error {
	if e.cmd == nil {
		if err := e.start(); err != nil {
			return err
		}
	}
	if _, err := e.stdin.Write(e.rawRGBA(frame)); err != nil {
		return fmt.Errorf("encode: write frame: %w%s", err, e.stderrTail())
	}
	return nil
}

// rawRGBA returns the frame's pixels as tightly packed RGBA bytes at the
// configured size, converting when the frame is not already laid out that
// way.
func (e *FFmpeg) rawRGBA(frame image.Image) []byte {
	b := frame.Bounds()
	if rgba, ok := frame.(*image.RGBA); ok &&
		b.Dx() == e.w && b.Dy() == e.h && rgba.Stride == 4*e.w {
		return rgba.Pix
	}
	dst := image.NewRGBA(image.Rect(0, 0, e.w, e.h))
	draw.Draw(dst, dst.Bounds(), frame, b.Min, draw.Src)
	return dst.Pix
}

// Stop closes the frame stream and waits for ffmpeg to finalize the
// container. Stopping an encoder that never wrote a frame is a no-op.
func (e *FFmpeg) Stop() error {
	if e.cmd == nil {
		return nil
	}
	if err := e.stdin.Close(); err != nil {
		return fmt.Errorf("encode: close ffmpeg stream: %w", err)
	}
	if err := e.cmd.Wait(); err != nil {
		return fmt.Errorf("encode: ffmpeg: %w%s", err, e.stderrTail())
	}
	e.cmd = nil
	return nil
}

func (e *FFmpeg) stderrTail() string {
	s := bytes.TrimSpace(e.stderr.Bytes())
	if len(s) == 0 {
		return ""
	}
	return " (" + string(s) + ")"
}
