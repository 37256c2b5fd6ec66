// Package logostore resolves airline codes to pre-converted RGB565 logo
// bitmaps. Missing logos are a normal outcome, never an error: the card
// renderer falls back to its builtin icon automatically.
package logostore

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"flightwall/internal/flight"
)

// Store resolves an airline ICAO code to a validated logo buffer. A nil
// buffer with ok=false means the airline has no logo available.
type Store interface {
	AirlineLogo(airlineICAO string) (pixels []uint16, ok bool)
}

// DirStore loads logos from a directory of {ICAO}.bin files. Each file is
// exactly flight.LogoPixels little-endian RGB565 values in row-major order,
// with transparent pixels encoded as the magenta sentinel. Files of any
// other length are rejected wholesale and reported as absent.
type DirStore struct {
	dir    string
	logger *logrus.Logger
}

// NewDirStore creates a store reading from dir. The directory is not
// required to exist; lookups simply report absent.
func NewDirStore(dir string, logger *logrus.Logger) *DirStore {
	return &DirStore{dir: dir, logger: logger}
}

// AirlineLogo loads the logo for the given airline ICAO code. The code is
// case-insensitive; filenames are uppercase.
func (s *DirStore) AirlineLogo(airlineICAO string) ([]uint16, bool) {
	if s.dir == "" || airlineICAO == "" {
		return nil, false
	}

	icao := strings.ToUpper(airlineICAO)
	path := filepath.Join(s.dir, icao+".bin")

	data, err := os.ReadFile(path)
	if err != nil {
		// Not an error: this airline simply has no logo bundled.
		s.logger.WithField("airline", icao).Debug("No logo file")
		return nil, false
	}

	const expected = flight.LogoPixels * 2
	if len(data) != expected {
		s.logger.WithFields(logrus.Fields{
			"airline":  icao,
			"size":     len(data),
			"expected": expected,
		}).Warn("Logo file size mismatch, treating as absent")
		return nil, false
	}

	pixels := make([]uint16, flight.LogoPixels)
	for i := range pixels {
		pixels[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return pixels, true
}
