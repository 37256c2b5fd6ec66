package app

import "time"

// Default configuration constants
const (
	// Standard 32x32 WS2812B panels in a 4x2 grid = 128x64 pixels.
	DefaultTileSize = 32
	DefaultTilesX   = 4
	DefaultTilesY   = 2

	DefaultCycleInterval = 5 * time.Second
	DefaultFrameInterval = 1 * time.Second
	DefaultFetchInterval = 30 * time.Second

	DefaultSnapshotScale = 8
)

// Config holds application configuration
type Config struct {
	TileSize int
	TilesX   int
	TilesY   int

	CycleInterval time.Duration
	FrameInterval time.Duration
	FetchInterval time.Duration

	FlightsFile string
	LogoDir     string

	SnapshotDir   string
	SnapshotScale int

	// Frames > 0 renders that many frames and exits (replay/snapshot use).
	Frames int

	Verbose     bool
	ShowVersion bool
}

// PanelSize returns the logical display dimensions derived from the tile
// grid. The core never sees the tile arrangement itself.
func (c Config) PanelSize() (w, h int) {
	return c.TileSize * c.TilesX, c.TileSize * c.TilesY
}
