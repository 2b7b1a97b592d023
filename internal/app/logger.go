package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/readinglist-backend/internal/config"
)

// NewLogger builds the process-wide *slog.Logger from LogConfig and
// installs it via slog.SetDefault.
//
// Format "text" adds source locations for local runs; anything else,
// including the configured default, produces JSON. Level accepts debug,
// info, warn, error in any case and falls back to info. Output goes to
// os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

// newHandler keeps handler construction in one place so tests can point
// it at a buffer.
func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	text := strings.EqualFold(cfg.Format, "text")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
