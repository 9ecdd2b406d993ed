// Package slogx configures structured logging for the PetPal services.
// Every process logs through slog with a shared field shape so the five
// services can be aggregated and filtered together.
package slogx

import (
	"log/slog"
	"os"
	"strings"
)

// Config describes the service identity stamped onto every log line.
type Config struct {
	Service string
	Version string
	Env     string // e.g. "dev", "prod"
	Level   string // e.g. "debug", "info", "warn", "error"
	Format  string // "json" (default) or "text"
}

// New returns a slog.Logger tagged with the service identity and sets it
// as the process default. Source locations are only attached in dev, where
// the extra volume is worth it.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.Env == "dev",
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With(
		slog.String("service", cfg.Service),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	slog.SetDefault(logger)
	return logger
}

// parseLevel resolves a level name, accepting the "warning" spelling and
// falling back to info for anything unrecognised.
func parseLevel(s string) slog.Level {
	if strings.EqualFold(s, "warning") {
		s = "warn"
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
