package surface

// Framebuffer is an in-memory RGB565 pixel grid implementing Surface. It is
// the host-side stand-in for an LED matrix driver: the render core composes
// into it, and whatever is hooked to OnFlush consumes the finished frame.
type Framebuffer struct {
	w, h int
	pix  []uint16

	// OnFlush, when set, is invoked once per Flush with the framebuffer in
	// its fully composed state.
	OnFlush func(*Framebuffer)

	flushes int
}

// NewFramebuffer creates a w x h framebuffer cleared to black.
func NewFramebuffer(w, h int) *Framebuffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Framebuffer{w: w, h: h, pix: make([]uint16, w*h)}
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (int, int) { return fb.w, fb.h }

// Pixel returns the stored color at (x,y), or 0 when out of bounds.
func (fb *Framebuffer) Pixel(x, y int) uint16 {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return 0
	}
	return fb.pix[y*fb.w+x]
}

// SetPixel writes one pixel, silently clipping out-of-bounds coordinates.
func (fb *Framebuffer) SetPixel(x, y int, color uint16) {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return
	}
	fb.pix[y*fb.w+x] = color
}

// FillRect fills a solid rectangle, clipped to the surface.
func (fb *Framebuffer) FillRect(x, y, w, h int, color uint16) {
	x0, y0, x1, y1 := clipRect(x, y, w, h, fb.w, fb.h)
	for yy := y0; yy < y1; yy++ {
		row := yy * fb.w
		for xx := x0; xx < x1; xx++ {
			fb.pix[row+xx] = color
		}
	}
}

// DrawRect draws a 1px rectangle outline, clipped to the surface.
func (fb *Framebuffer) DrawRect(x, y, w, h int, color uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	fb.FillRect(x, y, w, 1, color)
	fb.FillRect(x, y+h-1, w, 1, color)
	fb.FillRect(x, y, 1, h, color)
	fb.FillRect(x+w-1, y, 1, h, color)
}

// DrawText draws text left-to-right starting at (x,y) using the builtin
// 5x7 font in 6x8 cells, scaled by scale. Unknown runes render as '?'.
func (fb *Framebuffer) DrawText(x, y int, text string, color uint16, scale int) {
	if scale < 1 {
		scale = 1
	}
	cx := x
	for _, r := range text {
		fb.drawGlyph(cx, y, r, color, scale)
		cx += CharWidth * scale
	}
}

func (fb *Framebuffer) drawGlyph(x, y int, r rune, color uint16, scale int) {
	if r < fontFirst || r > fontLast {
		r = '?'
	}
	base := int(r-fontFirst) * fontBytesPerGlyph
	for col := 0; col < fontBytesPerGlyph; col++ {
		bits := font5x7[base+col]
		for row := 0; row < 7; row++ {
			if bits&(1<<uint(row)) == 0 {
				continue
			}
			if scale == 1 {
				fb.SetPixel(x+col, y+row, color)
			} else {
				fb.FillRect(x+col*scale, y+row*scale, scale, scale, color)
			}
		}
	}
}

// Flush hands the composed frame to the driver hook and counts the frame.
func (fb *Framebuffer) Flush() {
	fb.flushes++
	if fb.OnFlush != nil {
		fb.OnFlush(fb)
	}
}

// Flushes returns how many frames have been presented.
func (fb *Framebuffer) Flushes() int { return fb.flushes }

// clipRect intersects the rectangle with [0,bw) x [0,bh) and returns the
// half-open pixel bounds to iterate.
func clipRect(x, y, w, h, bw, bh int) (x0, y0, x1, y1 int) {
	x0, y0 = x, y
	x1, y1 = x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > bw {
		x1 = bw
	}
	if y1 > bh {
		y1 = bh
	}
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}
