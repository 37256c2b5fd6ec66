package render

import (
	"time"

	"github.com/sirupsen/logrus"

	"flightwall/internal/flight"
	"flightwall/internal/layout"
	"flightwall/internal/surface"
)

// Cycler rotates the display across a sequence of flights on a timed
// interval. With no flights it renders a loading placeholder; with exactly
// one it pins to that flight without advancing the rotation clock. Every
// render clears the surface, composes the full frame and flushes once.
type Cycler struct {
	surface  surface.Surface
	card     *Card
	interval time.Duration
	logger   *logrus.Logger

	// now is the rotation clock; only monotonicity matters. Tests swap it.
	now func() time.Time

	index        int
	lastRotation time.Time
}

// NewCycler creates a cycler drawing through s with the given rotation
// interval. The rotation clock starts at construction time.
func NewCycler(s surface.Surface, card *Card, interval time.Duration, logger *logrus.Logger) *Cycler {
	c := &Cycler{
		surface:  s,
		card:     card,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
	c.lastRotation = c.now()
	return c
}

// Index returns the current rotation index.
func (c *Cycler) Index() int { return c.index }

// Show renders the active flight from the sequence, rotating when the
// interval has elapsed. An empty sequence is first-class input and renders
// the loading screen without touching the rotation state. The index is taken
// modulo the current length to tolerate the sequence shrinking between calls.
func (c *Cycler) Show(flights []flight.Record) {
	c.clear()

	if len(flights) == 0 {
		c.drawLoading()
		c.surface.Flush()
		return
	}

	if len(flights) == 1 {
		c.index = 0
	} else if now := c.now(); now.Sub(c.lastRotation) >= c.interval {
		c.lastRotation = now
		c.index = (c.index + 1) % len(flights)
		c.logger.WithFields(logrus.Fields{
			"index":   c.index,
			"flights": len(flights),
		}).Debug("Rotated to next flight")
	}

	rec := flights[c.index%len(flights)]
	c.card.Draw(c.surface, &rec)
	c.surface.Flush()
}

// ShowLoading renders the loading placeholder as a standalone frame.
func (c *Cycler) ShowLoading() {
	c.clear()
	c.drawLoading()
	c.surface.Flush()
}

// ShowMessage renders a single truncated text line, vertically centered,
// inside the outer border. Used for startup banners.
func (c *Cycler) ShowMessage(message string) {
	c.clear()
	c.card.drawBorder(c.surface)

	l := c.card.Layout
	text := c.card.text.Truncate(message, l.ContentW/layout.CharW1, layout.CharW1)
	y := l.ContentY + (l.ContentH-layout.CharH1)/2
	c.surface.DrawText(l.ContentX, y, text, c.card.TextColor, 1)
	c.surface.Flush()
}

func (c *Cycler) drawLoading() {
	c.card.drawBorder(c.surface)

	l := c.card.Layout
	const text = "..."
	x := l.ContentX + (l.ContentW-len(text)*layout.CharW1)/2
	y := l.ContentY + (l.ContentH-layout.CharH1)/2
	c.surface.DrawText(x, y, text, c.card.TextColor, 1)
}

func (c *Cycler) clear() {
	w, h := c.surface.Size()
	c.surface.FillRect(0, 0, w, h, 0)
}
