package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// DefaultDir is where exported images are written.
const DefaultDir = "img"

// Image renders a w x h grid of cells, one pixel per cell with x = column and
// y = row. The second result counts cells without a palette entry.
func Image(w, h int, cells []uint8, palette []color.RGBA) (*image.RGBA, int) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	n := min(len(cells), w*h)
	invalid := FillPaletteRGBA(img.Pix, cells[:n], palette)
	return img, invalid
}

// Upscale enlarges img by an integer factor using nearest-neighbour sampling.
func Upscale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FrameName returns the file name used for the final grid of a run.
func FrameName(run int) string {
	return fmt.Sprintf("gen%d.png", run)
}

// SavePNG writes img to dir/name, creating dir if needed, and returns the
// absolute path of the file.
func SavePNG(dir, name string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
