package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"flightwall/internal/flight"
	"flightwall/internal/layout"
	"flightwall/internal/logostore"
	"flightwall/internal/render"
	"flightwall/internal/source"
	"flightwall/internal/surface"
)

// Application is the composition root: it constructs the framebuffer, logo
// store, flight source and cycler once, wires them together, and drives the
// render loop until shutdown.
type Application struct {
	config Config
	logger *logrus.Logger

	framebuffer *surface.Framebuffer
	cycler      *render.Cycler
	source      source.Source

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	snapshotSeq int
}

// NewApplication creates a new application instance
func NewApplication(config Config) *Application {
	ctx, cancel := context.WithCancel(context.Background())

	logger := logrus.New()
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Application{
		config: config,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start initializes all components and runs the render loop until a shutdown
// signal arrives or the configured frame count has been rendered.
func (app *Application) Start() error {
	app.logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("Starting FlightWall renderer")

	if err := app.initializeComponents(); err != nil {
		return fmt.Errorf("failed to initialize components: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	finished := make(chan struct{})
	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		defer close(finished)
		app.run()
	}()

	select {
	case <-sigChan:
		app.logger.Info("Received shutdown signal")
	case <-finished:
	}
	app.shutdown()
	return nil
}

// initializeComponents initializes all application components
func (app *Application) initializeComponents() error {
	w, h := app.config.PanelSize()
	if w < 2*layout.Inset+layout.LogoColWidth || h < 2*layout.Inset+layout.CharH1 {
		return fmt.Errorf("panel %dx%d is too small for the card layout", w, h)
	}

	app.framebuffer = surface.NewFramebuffer(w, h)
	if app.config.SnapshotDir != "" {
		app.framebuffer.OnFlush = app.writeSnapshot
	}

	card := render.NewCard(layout.New(w, h))
	app.cycler = render.NewCycler(app.framebuffer, card, app.config.CycleInterval, app.logger)

	if app.config.FlightsFile != "" {
		logos := logostore.NewDirStore(app.config.LogoDir, app.logger)
		app.source = source.NewFileSource(app.config.FlightsFile, logos, app.logger)
	} else {
		app.logger.Warn("No flights file configured, display will show the loading screen")
	}

	app.logger.WithFields(logrus.Fields{
		"panel":  fmt.Sprintf("%dx%d", w, h),
		"tiles":  fmt.Sprintf("%dx%d @ %dpx", app.config.TilesX, app.config.TilesY, app.config.TileSize),
		"cycle":  app.config.CycleInterval,
		"frames": app.config.Frames,
	}).Info("Display initialized")
	return nil
}

// run drives the frame loop: re-fetch flights at the fetch interval, render
// one frame per frame interval.
func (app *Application) run() {
	app.cycler.ShowMessage("FlightWall")

	ticker := time.NewTicker(app.config.FrameInterval)
	defer ticker.Stop()

	var flights []flight.Record
	var lastFetch time.Time
	frames := 0

	for {
		select {
		case <-app.ctx.Done():
			app.logger.Info("Render loop stopped")
			return
		case <-ticker.C:
			if app.source != nil && (lastFetch.IsZero() || time.Since(lastFetch) >= app.config.FetchInterval) {
				lastFetch = time.Now()
				flights = app.fetchFlights(flights)
			}

			app.cycler.Show(flights)
			frames++
			if app.config.Frames > 0 && frames >= app.config.Frames {
				app.logger.WithField("frames", frames).Info("Frame budget reached")
				return
			}
		}
	}
}

// fetchFlights pulls the current records from the source, keeping the
// previous sequence when the fetch fails so the display never blanks on a
// transient error.
func (app *Application) fetchFlights(previous []flight.Record) []flight.Record {
	flights, err := app.source.Flights(app.ctx)
	if err != nil {
		app.logger.WithError(err).Warn("Flight fetch failed, keeping previous records")
		return previous
	}
	app.logger.WithField("flights", len(flights)).Debug("Flight records updated")
	return flights
}

// writeSnapshot exports one flushed frame as a scaled PNG.
func (app *Application) writeSnapshot(fb *surface.Framebuffer) {
	path := filepath.Join(app.config.SnapshotDir, fmt.Sprintf("frame_%04d.png", app.snapshotSeq))
	app.snapshotSeq++
	if err := fb.WritePNG(path, app.config.SnapshotScale); err != nil {
		app.logger.WithError(err).Warn("Snapshot write failed")
	}
}

// shutdown gracefully stops the render loop
func (app *Application) shutdown() {
	app.logger.Info("Shutting down")
	app.cancel()

	finished := make(chan struct{})
	go func() {
		app.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		app.logger.Info("Shutdown completed")
	case <-time.After(5 * time.Second):
		app.logger.Warn("Shutdown timeout, forcing exit")
	}
}
