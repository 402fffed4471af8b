package telemetry

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog.Logger at the given level ("debug", "info",
// "warn", "error"; unknown values fall back to "info"), writing JSON when
// format is "json" and a human-readable console view otherwise.
func NewLogger(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var w = os.Stderr
	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	if format != "json" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger()
	}
	return logger
}
