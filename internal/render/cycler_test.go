package render

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"flightwall/internal/flight"
	"flightwall/internal/layout"
	"flightwall/internal/surface"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestCycler builds a cycler over a 128x64 framebuffer with a controllable
// clock. Returned setter advances the fake time.
func newTestCycler(interval time.Duration) (*Cycler, *surface.Framebuffer, func(time.Duration)) {
	fb := surface.NewFramebuffer(128, 64)
	card := NewCard(layout.New(128, 64))
	c := NewCycler(fb, card, interval, testLogger())

	start := time.Unix(1000, 0)
	current := start
	c.now = func() time.Time { return current }
	c.lastRotation = start

	advance := func(d time.Duration) { current = start.Add(d) }
	return c, fb, advance
}

func testFlights(n int) []flight.Record {
	flights := make([]flight.Record, n)
	for i := range flights {
		flights[i] = testRecord()
	}
	return flights
}

// TestCycler_Rotation tests time-gated rotation across three flights
func TestCycler_Rotation(t *testing.T) {
	c, _, advance := newTestCycler(5 * time.Second)
	flights := testFlights(3)

	c.Show(flights)
	assert.Equal(t, 0, c.Index(), "first render keeps index 0")

	advance(4999 * time.Millisecond)
	c.Show(flights)
	assert.Equal(t, 0, c.Index(), "one tick before the interval must not advance")

	advance(5000 * time.Millisecond)
	c.Show(flights)
	assert.Equal(t, 1, c.Index(), "interval elapsed advances to next flight")

	// Rotation timestamp was re-recorded: another immediate call stays put.
	c.Show(flights)
	assert.Equal(t, 1, c.Index())

	advance(9999 * time.Millisecond)
	c.Show(flights)
	assert.Equal(t, 1, c.Index())

	advance(10 * time.Second)
	c.Show(flights)
	assert.Equal(t, 2, c.Index())

	// Wraps back to zero.
	advance(15 * time.Second)
	c.Show(flights)
	assert.Equal(t, 0, c.Index())
}

// TestCycler_SingleFlight tests that one record pins the index
func TestCycler_SingleFlight(t *testing.T) {
	c, _, advance := newTestCycler(5 * time.Second)
	flights := testFlights(1)

	for i, d := range []time.Duration{0, 6 * time.Second, 60 * time.Second} {
		advance(d)
		c.Show(flights)
		assert.Equal(t, 0, c.Index(), "call %d", i)
	}
}

// TestCycler_Empty tests the loading placeholder state
func TestCycler_Empty(t *testing.T) {
	c, fb, advance := newTestCycler(5 * time.Second)

	advance(10 * time.Second)
	c.Show(nil)

	assert.Equal(t, 0, c.Index(), "empty input leaves cycler state untouched")
	assert.Equal(t, 1, fb.Flushes(), "loading frame flushes exactly once")
	assert.Equal(t, ColorWhite, fb.Pixel(0, 0), "loading frame keeps the border")

	// The empty render did not touch the rotation clock, so the first
	// populated render sees the full 10s elapsed and rotates immediately.
	c.Show(testFlights(3))
	assert.Equal(t, 1, c.Index())
}

// TestCycler_ShrinkingSequence tests index modulo on shrink between calls
func TestCycler_ShrinkingSequence(t *testing.T) {
	c, _, advance := newTestCycler(5 * time.Second)

	advance(5 * time.Second)
	c.Show(testFlights(3))
	advance(10 * time.Second)
	c.Show(testFlights(3))
	assert.Equal(t, 2, c.Index())

	// Sequence shrinks to two records without the interval elapsing: the
	// render must not index out of range.
	assert.NotPanics(t, func() { c.Show(testFlights(2)) })
}

// TestCycler_FlushPerRender tests the one-clear-one-flush frame contract
func TestCycler_FlushPerRender(t *testing.T) {
	c, fb, _ := newTestCycler(5 * time.Second)

	c.Show(testFlights(2))
	c.Show(testFlights(2))
	c.Show(nil)
	c.ShowLoading()
	c.ShowMessage("WiFi OK")

	assert.Equal(t, 5, fb.Flushes())
}

// TestCycler_ShowMessage tests the startup banner screen
func TestCycler_ShowMessage(t *testing.T) {
	c, fb, _ := newTestCycler(5 * time.Second)

	c.ShowMessage("FlightWall")

	l := layout.New(128, 64)
	assert.Equal(t, ColorWhite, fb.Pixel(0, 0))
	y := l.ContentY + (l.ContentH-layout.CharH1)/2
	assert.True(t, regionHasColor(fb, l.ContentX, y, l.ContentW, layout.CharH1, ColorText))
}
