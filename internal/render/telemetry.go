package render

import (
	"fmt"
	"math"
	"strconv"

	"flightwall/internal/flight"
)

// Display-unit conversion factors.
const (
	metersToFeet = 3.28084
	msToMph      = 2.23694
)

// TelemetryLine1 builds the altitude/speed line, e.g. "Alt:42,000|Spd:567".
// Absent fields are omitted; when both are absent the line reads
// "No telemetry".
func TelemetryLine1(t flight.Telemetry) string {
	s := ""
	if t.HasAltitude {
		ft := int(math.Round(t.BaroAltitude * metersToFeet))
		s += "Alt:" + formatFeet(ft)
	}
	if t.HasVelocity {
		if len(s) > 0 {
			s += "|"
		}
		mph := int(math.Round(t.Velocity * msToMph))
		s += "Spd:" + strconv.Itoa(mph)
	}
	if len(s) == 0 {
		return "No telemetry"
	}
	return s
}

// TelemetryLine2 builds the track/vertical-rate line, e.g. "Trk:263deg|Vr:-18".
// Absent fields are omitted; when both are absent the line is empty. The
// asymmetry with line 1's placeholder is deliberate: line 1 is the primary
// telemetry row, line 2 is supplemental.
func TelemetryLine2(t flight.Telemetry) string {
	s := ""
	if t.HasHeading {
		s += "Trk:" + strconv.Itoa(int(math.Round(t.Heading))) + "deg"
	}
	if t.HasVerticalRate {
		if len(s) > 0 {
			s += "|"
		}
		mph := int(math.Round(t.VerticalRate * msToMph))
		s += "Vr:" + strconv.Itoa(mph)
	}
	return s
}

// formatFeet renders feet with a thousands separator, e.g. 42000 -> "42,000".
func formatFeet(ft int) string {
	if ft >= 1000 {
		return fmt.Sprintf("%d,%03d", ft/1000, ft%1000)
	}
	return strconv.Itoa(ft)
}
