package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRecord_HasValidLogo tests the strict logo length rule
func TestRecord_HasValidLogo(t *testing.T) {
	tests := []struct {
		name     string
		pixels   int
		expected bool
	}{
		{"Exact pixel count", LogoPixels, true},
		{"Empty buffer", 0, false},
		{"Short buffer", 10, false},
		{"One pixel short", LogoPixels - 1, false},
		{"One pixel long", LogoPixels + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{}
			if tt.pixels > 0 {
				rec.Logo = make([]uint16, tt.pixels)
			}
			assert.Equal(t, tt.expected, rec.HasValidLogo())
		})
	}
}

// TestTelemetry_PresenceFlags tests that zero values with flags set count as present
func TestTelemetry_PresenceFlags(t *testing.T) {
	tel := Telemetry{BaroAltitude: 0, HasAltitude: true}
	assert.True(t, tel.HasAltitude)
	assert.False(t, tel.HasVelocity)

	// Absent fields carry no meaning in their value slot.
	absent := Telemetry{BaroAltitude: 9999}
	assert.False(t, absent.HasAltitude)
}
