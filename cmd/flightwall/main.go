package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flightwall/internal/app"
)

func main() {
	var config app.Config

	rootCmd := &cobra.Command{
		Use:   "flightwall",
		Short: "LED matrix flight display renderer",
		Long: `FlightWall renders enriched flight records as cards on a tiled LED
matrix: airline, route, aircraft type and live telemetry, with a 32x32
airline logo column and timed rotation across multiple flights.

Flight data is read from a JSON replay file that an external fetcher may
rewrite while the display runs. Rendered frames can be exported as scaled
PNG snapshots in place of a physical panel.

Example usage:
  flightwall --flights flights.json --logos ./logos --snapshots ./out --frames 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ShowVersion {
				app.ShowVersion()
				return nil
			}

			application := app.NewApplication(config)
			return application.Start()
		},
	}

	rootCmd.Flags().IntVar(&config.TileSize, "tile-size", app.DefaultTileSize, "Tile edge length in pixels")
	rootCmd.Flags().IntVar(&config.TilesX, "tiles-x", app.DefaultTilesX, "Tile columns")
	rootCmd.Flags().IntVar(&config.TilesY, "tiles-y", app.DefaultTilesY, "Tile rows")
	rootCmd.Flags().DurationVarP(&config.CycleInterval, "cycle", "c", app.DefaultCycleInterval, "Rotation interval between flights")
	rootCmd.Flags().DurationVar(&config.FrameInterval, "frame", app.DefaultFrameInterval, "Interval between rendered frames")
	rootCmd.Flags().DurationVar(&config.FetchInterval, "fetch", app.DefaultFetchInterval, "Interval between flight file reloads")
	rootCmd.Flags().StringVarP(&config.FlightsFile, "flights", "f", "", "JSON flight records file")
	rootCmd.Flags().StringVarP(&config.LogoDir, "logos", "l", "", "Directory of {ICAO}.bin logo bitmaps")
	rootCmd.Flags().StringVarP(&config.SnapshotDir, "snapshots", "o", "", "Directory for PNG frame snapshots")
	rootCmd.Flags().IntVar(&config.SnapshotScale, "scale", app.DefaultSnapshotScale, "Snapshot upscale factor")
	rootCmd.Flags().IntVarP(&config.Frames, "frames", "n", 0, "Render this many frames then exit (0 = run until signal)")
	rootCmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().BoolVar(&config.ShowVersion, "version", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
