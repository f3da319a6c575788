package config

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger. Development gets readable text
// with source locations for tracing match decisions; every other
// environment emits JSON for aggregation. The service attribute tags
// every line so logs from the encoder sidecar can be told apart.
func NewLogger(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if env == "development" {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(slog.String("service", "face-recognition"))
}
