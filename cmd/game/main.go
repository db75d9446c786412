package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/powerroids/internal/config"
	"github.com/tomz197/powerroids/internal/logging"
	"github.com/tomz197/powerroids/internal/loop/client"
	"github.com/tomz197/powerroids/internal/telemetry"
)

func main() {
	settings, err := config.Load(os.Getenv(config.PathEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs only go to a file when one is configured.
	logger, closeLog, err := logging.NewFile(settings.Log.File, settings.Log.Level, settings.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	metrics, err := telemetry.NewRecorder(telemetry.Meter())
	if err != nil {
		logger.Warn("metrics disabled", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(bufio.NewReader(os.Stdin), os.Stdout, client.Options{
		Logger:  logger,
		Metrics: metrics,
		Seed:    settings.Seed,
	})
	if err := c.Run(ctx); err != nil {
		logger.Error("game error", "err", err)
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
