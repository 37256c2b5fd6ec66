// Package surface defines the abstract pixel surface the render core draws
// through, plus a host-side RGB565 framebuffer implementation. Tile layout,
// serpentine addressing, channel order and brightness all live below this
// boundary, inside whatever driver consumes the flushed frame.
package surface

// Surface is the draw-primitive contract exposed to the render core. All
// coordinates are logical (x,y) with origin top-left; implementations clip
// out-of-bounds writes silently.
type Surface interface {
	// Size returns the logical pixel dimensions of the surface.
	Size() (w, h int)
	// SetPixel writes one pixel in RGB565.
	SetPixel(x, y int, color uint16)
	// FillRect fills a solid rectangle.
	FillRect(x, y, w, h int, color uint16)
	// DrawRect draws a 1px rectangle outline.
	DrawRect(x, y, w, h int, color uint16)
	// DrawText draws text whose glyph cells are 6x8 pixels at scale 1,
	// multiplied by scale. No wrapping; overflow is clipped.
	DrawText(x, y int, text string, color uint16, scale int)
	// Flush presents the composed frame to the underlying driver.
	Flush()
}

// Glyph cell metrics at scale 1 (classic 5x7 font in a 6x8 cell).
const (
	CharWidth  = 6
	CharHeight = 8
)

// RGB565 packs 8-bit RGB into a 16-bit 5-6-5 value.
func RGB565(r, g, b uint8) uint16 {
	return (uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F)
}

// RGB888 expands a 16-bit 5-6-5 value back to 8-bit channels, replicating
// the high bits into the low bits so full-scale values map to 255.
func RGB888(c uint16) (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}
