package render

import (
	"flightwall/internal/flight"
	"flightwall/internal/layout"
	"flightwall/internal/surface"
)

// Default card colors.
var (
	ColorWhite = surface.RGB565(255, 255, 255)
	ColorText  = surface.RGB565(255, 255, 255)
	// Icon accent: the blue used when an airline has no logo bundled.
	ColorAccent = surface.RGB565(0, 100, 255)
)

// Card renders one flight record as a bordered five-line card with a logo
// column. Missing optional fields degrade to fallback values; the card never
// fails to draw.
type Card struct {
	Layout layout.Layout

	BorderColor uint16
	TextColor   uint16
	AccentColor uint16

	text TextFormatter
}

// NewCard creates a card renderer for the given panel geometry.
func NewCard(l layout.Layout) *Card {
	return &Card{
		Layout:      l,
		BorderColor: ColorWhite,
		TextColor:   ColorText,
		AccentColor: ColorAccent,
		text:        TextFormatter{ContentWidth: l.ContentW},
	}
}

// Draw composes the record onto the surface: outer border, logo or fallback
// icon, then the five text rows. The surface is not cleared or flushed here;
// the cycler owns frame boundaries.
func (c *Card) Draw(s surface.Surface, rec *flight.Record) {
	l := c.Layout
	c.drawBorder(s)

	if rec.HasValidLogo() {
		DrawLogo(s, l.LogoX, l.LogoY, rec.Logo)
	} else {
		DrawAirplaneIcon(s, l.LogoX, l.LogoY, c.AccentColor)
	}

	// Rows 1-3 sit right of the logo column.
	airline := firstNonEmpty(rec.AirlineName, rec.OperatorIATA, rec.OperatorICAO, rec.OperatorCode)
	s.DrawText(l.TextX, l.RowY[0],
		c.text.Truncate(airline, l.TextW/layout.CharW1, layout.CharW1), c.TextColor, 1)

	route := routeCode(rec.Origin) + "-" + routeCode(rec.Destination)
	s.DrawText(l.TextX, l.RowY[1],
		c.text.Truncate(route, l.TextW/layout.CharW2, layout.CharW2), c.TextColor, 2)

	aircraft := firstNonEmpty(rec.AircraftName, rec.AircraftCode)
	s.DrawText(l.TextX, l.RowY[2],
		c.text.Truncate(aircraft, l.TextW/layout.CharW2, layout.CharW2), c.TextColor, 2)

	// Rows 4-5 span the full content width, under the logo column too.
	s.DrawText(l.ContentX, l.RowY[3],
		c.text.Truncate(TelemetryLine1(rec.Telemetry), l.ContentW/layout.CharW1, layout.CharW1), c.TextColor, 1)
	s.DrawText(l.ContentX, l.RowY[4],
		c.text.Truncate(TelemetryLine2(rec.Telemetry), l.ContentW/layout.CharW1, layout.CharW1), c.TextColor, 1)
}

func (c *Card) drawBorder(s surface.Surface) {
	for t := 0; t < layout.Border; t++ {
		s.DrawRect(t, t, c.Layout.Width-2*t, c.Layout.Height-2*t, c.BorderColor)
	}
}

// routeCode prefers the IATA airport code over ICAO for the route line.
func routeCode(a flight.Airport) string {
	if a.CodeIATA != "" {
		return a.CodeIATA
	}
	return a.CodeICAO
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
