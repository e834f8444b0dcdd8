package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/terra-clan/trial-scorecard/internal/catalog"
	"github.com/terra-clan/trial-scorecard/internal/cli"
	"github.com/terra-clan/trial-scorecard/internal/config"
	"github.com/terra-clan/trial-scorecard/internal/render"
)

func main() {
	// Setup structured logging until the configured level is known
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.Log)

	// Load trial catalog
	trials := catalog.Default()
	if cfg.Catalog.File != "" {
		trials, err = catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			slog.Error("failed to load catalog", "error", err)
			os.Exit(1)
		}
	}

	renderer, err := render.NewRenderer(cfg.Render)
	if err != nil {
		slog.Error("failed to create renderer", "error", err)
		os.Exit(1)
	}

	// Cancel on interrupt so the interactive mode can exit cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(trials, renderer, cfg.Output.Dir, os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		slog.Error("command failed", "error", err)
		stop()
		if errors.Is(err, cli.ErrUsage) || errors.Is(err, cli.ErrUnknownCommand) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func setupLogging(cfg config.LogConfig) {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, opts)
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
