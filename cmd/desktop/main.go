package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/powerroids/internal/config"
	"github.com/tomz197/powerroids/internal/desktop"
	"github.com/tomz197/powerroids/internal/logging"
	lconfig "github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/telemetry"
)

func main() {
	settings, err := config.Load(os.Getenv(config.PathEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, settings.Log.Level, settings.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	metrics, err := telemetry.NewRecorder(telemetry.Meter())
	if err != nil {
		logger.Warn("metrics disabled", "err", err)
	}

	game := desktop.New(desktop.Options{
		Width:   settings.Desktop.Width,
		Height:  settings.Desktop.Height,
		Seed:    settings.Seed,
		Logger:  logger,
		Metrics: metrics,
	})

	ebiten.SetWindowSize(settings.Desktop.Width, settings.Desktop.Height)
	ebiten.SetWindowTitle("Powerroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(lconfig.TickRate)

	logger.Info("starting desktop game", "width", settings.Desktop.Width, "height", settings.Desktop.Height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game error", "err", err)
	}
}
