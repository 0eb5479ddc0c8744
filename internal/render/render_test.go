package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"epi-ca/internal/core"
	"epi-ca/internal/sims/epidemic"
)

func TestFillPaletteRGBACountsUnknownValues(t *testing.T) {
	palette := epidemic.Palette()
	cells := []uint8{uint8(epidemic.Sick), 9, uint8(epidemic.Immune)}
	buf := make([]byte, 4*len(cells))
	if got := FillPaletteRGBA(buf, cells, palette); got != 1 {
		t.Fatalf("expected one invalid cell, got %d", got)
	}
	if buf[0] != 255 || buf[1] != 0 || buf[3] != 255 {
		t.Fatalf("expected red first pixel, got %v", buf[:4])
	}
	if buf[4] != 0 || buf[7] != 0 {
		t.Fatalf("expected transparent invalid pixel, got %v", buf[4:8])
	}
	if buf[9] != 255 || buf[10] != 255 {
		t.Fatalf("expected cyan third pixel, got %v", buf[8:12])
	}
}

func TestImageOrientation(t *testing.T) {
	// 2 columns x 3 rows; the bottom-left cell is dead.
	cells := []uint8{0, 0, 0, 0, 4, 0}
	img, invalid := Image(2, 3, cells, epidemic.Palette())
	if invalid != 0 {
		t.Fatalf("unexpected invalid count %d", invalid)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 3 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if got := img.RGBAAt(0, 2); got != (color.RGBA{A: 255}) {
		t.Fatalf("expected dead pixel at column 0 row 2, got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("expected healthy pixel, got %v", got)
	}
}

func TestSavePNGCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DefaultDir)
	img, _ := Image(3, 3, []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}, epidemic.Palette())
	path, err := SavePNG(dir, FrameName(7), img)
	if err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if filepath.Base(path) != "gen7.png" || !filepath.IsAbs(path) {
		t.Fatalf("unexpected path %q", path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := decoded.At(1, 1).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Fatalf("expected red centre, got %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestUpscale(t *testing.T) {
	img, _ := Image(2, 1, []uint8{1, 0}, epidemic.Palette())
	big := Upscale(img, 3)
	if b := big.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if got := big.RGBAAt(2, 2); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("expected red block, got %v", got)
	}
	if got := big.RGBAAt(3, 0); got != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("expected green block, got %v", got)
	}
}

func TestRecorderWritesFrames(t *testing.T) {
	cfg := epidemic.DefaultConfig()
	cfg.Size = 16
	m, err := epidemic.New(cfg, core.NewRNG(3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path := filepath.Join(t.TempDir(), "run.avi")
	rec, err := NewRecorder(path, cfg.Size, 4, 5)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if err := m.Run(4, rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if rec.Frames() != 5 {
		t.Fatalf("expected 5 frames, got %d", rec.Frames())
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected a non-empty video file, got %v, %v", info, err)
	}
}
