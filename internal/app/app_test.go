package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirupsen/logrus"
)

// TestConfig_PanelSize tests panel dimension derivation from the tile grid
func TestConfig_PanelSize(t *testing.T) {
	tests := []struct {
		name         string
		config       Config
		wantW, wantH int
	}{
		{
			name:   "Default 4x2 grid of 32px tiles",
			config: Config{TileSize: DefaultTileSize, TilesX: DefaultTilesX, TilesY: DefaultTilesY},
			wantW:  128,
			wantH:  64,
		},
		{
			name:   "Square 2x2 grid",
			config: Config{TileSize: 32, TilesX: 2, TilesY: 2},
			wantW:  64,
			wantH:  64,
		},
		{
			name:   "16px tiles",
			config: Config{TileSize: 16, TilesX: 8, TilesY: 4},
			wantW:  128,
			wantH:  64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.config.PanelSize()
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

// TestConstants tests the default configuration constants
func TestConstants(t *testing.T) {
	assert.Equal(t, 32, DefaultTileSize)
	assert.Equal(t, 4, DefaultTilesX)
	assert.Equal(t, 2, DefaultTilesY)
	assert.Equal(t, 5*time.Second, DefaultCycleInterval)
	assert.Equal(t, 1*time.Second, DefaultFrameInterval)
	assert.Equal(t, 30*time.Second, DefaultFetchInterval)
	assert.Equal(t, 8, DefaultSnapshotScale)
}

// TestNewApplication tests application construction
func TestNewApplication(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantLevel logrus.Level
	}{
		{"Default log level", false, logrus.InfoLevel},
		{"Verbose log level", true, logrus.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApplication(Config{Verbose: tt.verbose})
			require.NotNil(t, app)
			assert.Equal(t, tt.wantLevel, app.logger.GetLevel())
			assert.NotNil(t, app.ctx)
		})
	}
}

// TestApplication_InitializeComponents tests composition-root wiring
func TestApplication_InitializeComponents(t *testing.T) {
	t.Run("Default panel wires framebuffer and cycler", func(t *testing.T) {
		config := Config{
			TileSize:      DefaultTileSize,
			TilesX:        DefaultTilesX,
			TilesY:        DefaultTilesY,
			CycleInterval: DefaultCycleInterval,
		}
		app := NewApplication(config)

		require.NoError(t, app.initializeComponents())
		require.NotNil(t, app.framebuffer)
		require.NotNil(t, app.cycler)
		assert.Nil(t, app.source, "no flights file means no source")

		w, h := app.framebuffer.Size()
		assert.Equal(t, 128, w)
		assert.Equal(t, 64, h)
	})

	t.Run("Flights file wires a source", func(t *testing.T) {
		config := Config{
			TileSize:    DefaultTileSize,
			TilesX:      DefaultTilesX,
			TilesY:      DefaultTilesY,
			FlightsFile: "flights.json",
		}
		app := NewApplication(config)

		require.NoError(t, app.initializeComponents())
		assert.NotNil(t, app.source)
	})

	t.Run("Panel too small for the card layout", func(t *testing.T) {
		config := Config{TileSize: 32, TilesX: 1, TilesY: 1}
		app := NewApplication(config)

		err := app.initializeComponents()
		assert.Error(t, err)
	})
}
