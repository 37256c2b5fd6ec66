package render

import (
	"flightwall/internal/flight"
	"flightwall/internal/surface"
)

// DrawLogo blits a 32x32 RGB565 logo buffer with its top-left corner at
// (x, y). Pixels equal to the transparency sentinel are skipped so the
// background shows through; out-of-bounds pixels are clipped by the surface.
// Buffers of any other length are ignored entirely.
func DrawLogo(s surface.Surface, x, y int, pixels []uint16) {
	if len(pixels) != flight.LogoPixels {
		return
	}
	for row := 0; row < flight.LogoHeight; row++ {
		for col := 0; col < flight.LogoWidth; col++ {
			c := pixels[row*flight.LogoWidth+col]
			if c == flight.TransparentRGB565 {
				continue
			}
			s.SetPixel(x+col, y+row, c)
		}
	}
}

// airplaneIcon is the fallback artwork drawn when no logo is available: a
// top-down 32x32 silhouette, one uint32 row mask per pixel row, bit 31 being
// the leftmost column. Zero bits are left undrawn, same convention as the
// logo's transparency sentinel.
var airplaneIcon = [flight.LogoHeight]uint32{
	0x00018000,
	0x0003C000,
	0x0003C000,
	0x00018000,
	0x00018000,
	0x00018000,
	0x00018000,
	0x00018000,
	0x00018000,
	0x0007E000,
	0x001FF800,
	0x07FFFFE0,
	0x07FFFFE0,
	0x1FFFFFF8,
	0x07FFFFE0,
	0x07FFFFE0,
	0x001FF800,
	0x0007E000,
	0x00018000,
	0x00018000,
	0x00018000,
	0x00018000,
	0x00018000,
	0x00018000,
	0x0007E000,
	0x003FFC00,
	0x003FFC00,
	0x0007E000,
	0x00018000,
	0x00000000,
	0x00000000,
	0x00000000,
}

// DrawAirplaneIcon draws the builtin silhouette in a single accent color
// with its top-left corner at (x, y).
func DrawAirplaneIcon(s surface.Surface, x, y int, color uint16) {
	for row, bits := range airplaneIcon {
		for col := 0; col < flight.LogoWidth; col++ {
			if bits&(1<<uint(31-col)) == 0 {
				continue
			}
			s.SetPixel(x+col, y+row, color)
		}
	}
}
