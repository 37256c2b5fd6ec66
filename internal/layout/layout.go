// Package layout derives the flight-card geometry for a given panel size.
//
// Card layout (native 128x64 panel):
//
//	┌──────────────────────────────────────────────┐
//	│  ████████  Airline name        (size-1, 8px) │
//	│  ████████                                    │
//	│  32x32     TUS-LAX            (size-2, 16px) │
//	│  logo                                        │
//	│  ████████  CRJ700             (size-2, 16px) │
//	│  ████████                                    │
//	│  Alt:42,000|Spd:567    (size-1, full width)  │
//	│  Trk:263deg|Vr:-18     (size-1, full width)  │
//	└──────────────────────────────────────────────┘
//
// Outer border only: 1px white, 1px gap to all content. No inner box
// borders, no divider line.
package layout

import (
	"flightwall/internal/flight"
	"flightwall/internal/surface"
)

// Border, gap and logo column widths in pixels.
const (
	Border = 1
	Gap    = 1
	Inset  = Border + Gap

	// 1px gap between logo right edge and text, no box border.
	LogoGap      = 1
	LogoColWidth = flight.LogoWidth + LogoGap
)

// Font cell metrics for the two supported text scales.
const (
	CharW1 = surface.CharWidth      // 6
	CharH1 = surface.CharHeight     // 8
	CharW2 = 2 * surface.CharWidth  // 12
	CharH2 = 2 * surface.CharHeight // 16
)

// Native row offsets relative to the text top, for the 60px-high content
// rect of the 128x64 panel. Rows: airline (size-1), route (size-2),
// aircraft (size-2), telemetry 1 and 2 (size-1).
var nativeRowOffsets = [5]int{0, 9, 25, 43, 51}

const (
	nativeTopPad = 1
	// Native offset of the last row; the scale anchor for other sizes.
	nativeLastOffset = 51
)

// Layout holds the derived card geometry for one panel size. All
// coordinates are absolute surface positions.
type Layout struct {
	Width, Height int

	// Content rect inside the border and gap.
	ContentX, ContentY int
	ContentW, ContentH int

	// TextTop is the y of row 1; RowY are the absolute row positions.
	TextTop int
	RowY    [5]int

	// TextX/TextW bound rows 1-3, right of the logo column. Rows 4-5 use
	// the full content width.
	TextX, TextW int

	// LogoX/LogoY position the logo or fallback icon, vertically centered
	// within the airline + route + aircraft block.
	LogoX, LogoY int
}

// New derives the card geometry for a w x h panel. Row offsets scale from
// the native set so that the last pixel row of row 5 always lands exactly on
// the content rect's last row; at 128x64 the native offsets come back
// unchanged.
func New(w, h int) Layout {
	l := Layout{
		Width:    w,
		Height:   h,
		ContentX: Inset,
		ContentY: Inset,
		ContentW: w - 2*Inset,
		ContentH: h - 2*Inset,
	}
	l.TextTop = l.ContentY + nativeTopPad

	// Row 5 must end on the content rect's last row:
	// topPad + lastOffset + CharH1 == ContentH.
	lastOffset := l.ContentH - nativeTopPad - CharH1
	if lastOffset < 0 {
		lastOffset = 0
	}
	for i, off := range nativeRowOffsets {
		scaled := (off*lastOffset + nativeLastOffset/2) / nativeLastOffset
		l.RowY[i] = l.TextTop + scaled
	}

	l.TextX = l.ContentX + LogoColWidth
	l.TextW = l.ContentW - LogoColWidth

	// The top block spans rows 1-3; the logo centers against it.
	topBlockH := (l.RowY[2] - l.TextTop) + CharH2
	l.LogoX = l.ContentX
	l.LogoY = l.TextTop + (topBlockH-flight.LogoHeight)/2
	return l
}
