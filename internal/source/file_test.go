package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightwall/internal/flight"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// stubStore serves canned logos keyed by ICAO code.
type stubStore struct {
	logos map[string][]uint16
}

func (s *stubStore) AirlineLogo(icao string) ([]uint16, bool) {
	pixels, ok := s.logos[icao]
	return pixels, ok
}

const flightsJSON = `[
  {
    "ident": "AAL123",
    "operator_code": "AAL",
    "operator_icao": "AAL",
    "operator_iata": "AA",
    "origin": {"code_icao": "KTUS", "code_iata": "TUS", "name": "Tucson Intl"},
    "destination": {"code_icao": "KLAX", "code_iata": "LAX", "name": "Los Angeles Intl"},
    "aircraft_code": "CRJ7",
    "airline_display_name_full": "American Airlines",
    "aircraft_display_name_short": "CRJ700",
    "telemetry": {
      "baro_altitude": 9326.4,
      "velocity": 140,
      "heading": 263,
      "has_altitude": true,
      "has_velocity": true,
      "has_heading": true
    }
  },
  {
    "ident": "SWA456",
    "operator_icao": "SWA"
  }
]`

func writeFlights(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flights.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestFileSource_Flights tests JSON replay parsing and logo enrichment
func TestFileSource_Flights(t *testing.T) {
	logo := make([]uint16, flight.LogoPixels)
	for i := range logo {
		logo[i] = 0xC618
	}
	store := &stubStore{logos: map[string][]uint16{"AAL": logo}}

	src := NewFileSource(writeFlights(t, flightsJSON), store, testLogger())
	flights, err := src.Flights(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 2)

	first := flights[0]
	assert.Equal(t, "AAL123", first.Ident)
	assert.Equal(t, "American Airlines", first.AirlineName)
	assert.Equal(t, "TUS", first.Origin.CodeIATA)
	assert.Equal(t, "LAX", first.Destination.CodeIATA)
	assert.True(t, first.Telemetry.HasAltitude)
	assert.False(t, first.Telemetry.HasVerticalRate)
	assert.True(t, first.HasValidLogo(), "logo attached from store")

	second := flights[1]
	assert.Equal(t, "SWA456", second.Ident)
	assert.False(t, second.HasValidLogo(), "absent logo stays absent")
}

// TestFileSource_EmptySequence tests that zero flights is first-class input
func TestFileSource_EmptySequence(t *testing.T) {
	src := NewFileSource(writeFlights(t, `[]`), nil, testLogger())
	flights, err := src.Flights(context.Background())
	require.NoError(t, err)
	assert.Empty(t, flights)
}

// TestFileSource_Errors tests fetch failure paths
func TestFileSource_Errors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		src := NewFileSource(filepath.Join(t.TempDir(), "nope.json"), nil, testLogger())
		_, err := src.Flights(context.Background())
		assert.Error(t, err)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		src := NewFileSource(writeFlights(t, `{not json`), nil, testLogger())
		_, err := src.Flights(context.Background())
		assert.Error(t, err)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		src := NewFileSource(writeFlights(t, `[]`), nil, testLogger())
		_, err := src.Flights(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// TestFileSource_LogoFallbackCodes tests the operator code lookup order
func TestFileSource_LogoFallbackCodes(t *testing.T) {
	logo := make([]uint16, flight.LogoPixels)
	store := &stubStore{logos: map[string][]uint16{"DAL": logo}}

	const dalJSON = `[{"ident": "DAL9", "operator_code": "DAL"}]`
	src := NewFileSource(writeFlights(t, dalJSON), store, testLogger())

	flights, err := src.Flights(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.True(t, flights[0].HasValidLogo(), "raw operator code used when ICAO is empty")
}
