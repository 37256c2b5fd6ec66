package surface

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// RGBA converts the framebuffer to an 8-bit RGBA image at native resolution.
func (fb *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.w, fb.h))
	for y := 0; y < fb.h; y++ {
		for x := 0; x < fb.w; x++ {
			r, g, b := RGB888(fb.pix[y*fb.w+x])
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}

// WritePNG encodes the framebuffer as a PNG at path, upscaled by scale with
// nearest-neighbor sampling so individual LED pixels stay crisp. Parent
// directories are created as needed.
func (fb *Framebuffer) WritePNG(path string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := fb.RGBA()
	out := src
	if scale > 1 {
		out = image.NewRGBA(image.Rect(0, 0, fb.w*scale, fb.h*scale))
		xdraw.NearestNeighbor.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
