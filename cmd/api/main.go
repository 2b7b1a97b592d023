// Command api runs the reading list HTTP server. It serves until it
// receives SIGINT or SIGTERM, then drains in-flight requests within the
// configured shutdown timeout.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/readinglist-backend/internal/app"
	"github.com/heartmarshall/readinglist-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("application init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error("application stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
