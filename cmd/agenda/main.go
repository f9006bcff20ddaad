package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/agenda/internal/cli"
	"github.com/dmitrijs2005/agenda/internal/config"
	"github.com/dmitrijs2005/agenda/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	log := logging.NewSlogLogger(slog.New(h))

	app := cli.NewApp(cfg, log)
	app.Run(context.Background())
}
