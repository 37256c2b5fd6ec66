package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"flightwall/internal/flight"
	"flightwall/internal/logostore"
)

// FileSource replays flight records from a JSON file: an array of records
// using the field names in flight.Record. Each call re-reads the file, so
// the file can be rewritten by an external fetcher while the display runs.
// Logos are attached from the store per record operator code.
type FileSource struct {
	path   string
	logos  logostore.Store
	logger *logrus.Logger
}

// NewFileSource creates a source replaying records from path. logos may be
// nil, in which case logo lookup is skipped.
func NewFileSource(path string, logos logostore.Store, logger *logrus.Logger) *FileSource {
	return &FileSource{path: path, logos: logos, logger: logger}
}

// Flights reads, parses and enriches the current contents of the file.
func (s *FileSource) Flights(ctx context.Context) ([]flight.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flights file: %w", err)
	}

	var records []flight.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse flights file: %w", err)
	}

	for i := range records {
		s.attachLogo(&records[i])
	}

	s.logger.WithFields(logrus.Fields{
		"file":    s.path,
		"flights": len(records),
	}).Debug("Loaded flight records")
	return records, nil
}

// attachLogo resolves the airline logo for one record, trying the ICAO
// operator code first, then the raw operator code. Absence leaves the
// record logo-less; the renderer falls back to its icon.
func (s *FileSource) attachLogo(rec *flight.Record) {
	if s.logos == nil || rec.HasValidLogo() {
		return
	}
	for _, code := range []string{rec.OperatorICAO, rec.OperatorCode} {
		if code == "" {
			continue
		}
		if pixels, ok := s.logos.AirlineLogo(code); ok {
			rec.Logo = pixels
			return
		}
	}
}
