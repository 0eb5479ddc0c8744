package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/icza/mjpeg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"epi-ca/internal/sims/epidemic"
)

// Recorder writes every observed generation of a run as a frame of an MJPEG
// AVI file.
type Recorder struct {
	aw      mjpeg.AviWriter
	scale   int
	palette []color.RGBA
	cells   []uint8
	buf     bytes.Buffer
	opts    jpeg.Options

	frames  int
	invalid int
	err     error
}

// NewRecorder creates the video file at path for a size x size grid. Frames are
// upscaled by scale.
func NewRecorder(path string, size, scale, fps int) (*Recorder, error) {
	if scale < 1 {
		scale = 1
	}
	if fps < 1 {
		fps = 5
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	side := int32(size * scale)
	aw, err := mjpeg.New(path, side, side, int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &Recorder{
		aw:      aw,
		scale:   scale,
		palette: epidemic.Palette(),
		opts:    jpeg.Options{Quality: 90},
	}, nil
}

// Observe renders the committed grid of m as the next frame.
func (r *Recorder) Observe(m *epidemic.Model) {
	if r.err != nil {
		return
	}
	r.cells = m.States(r.cells)
	img, invalid := Image(m.Size(), m.Size(), r.cells, r.palette)
	r.invalid += invalid
	frame := Upscale(img, r.scale)
	label(frame, fmt.Sprintf("gen %d  cases %d", m.Generation(), m.TotalCases()))

	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, frame, &r.opts); err != nil {
		r.err = fmt.Errorf("encode frame %d: %w", r.frames, err)
		return
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		r.err = fmt.Errorf("add frame %d: %w", r.frames, err)
		return
	}
	r.frames++
}

// Frames returns the number of frames written.
func (r *Recorder) Frames() int { return r.frames }

// Invalid returns the number of cells that had no palette entry.
func (r *Recorder) Invalid() int { return r.invalid }

// Close finalises the AVI file and reports the first error seen while
// recording.
func (r *Recorder) Close() error {
	cerr := r.aw.Close()
	if r.err != nil {
		return r.err
	}
	return cerr
}

func label(img *image.RGBA, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(3, 12),
	}
	d.DrawString(text)
}
