// Package source supplies ordered flight records to the display loop. The
// render core never fetches anything itself; a Source hands it pre-fetched,
// already-enriched records each cycle.
package source

import (
	"context"

	"flightwall/internal/flight"
)

// Source yields the current ordered flight sequence. An empty slice is a
// valid result and puts the display into its loading state.
type Source interface {
	Flights(ctx context.Context) ([]flight.Record, error)
}
