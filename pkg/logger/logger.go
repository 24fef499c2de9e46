// Package logger builds the zerolog logger shared by the binaries.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level. Unknown levels fall back to
// info. With pretty set, output goes through the human-readable console
// writer instead of raw JSON.
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(lvl).With().Timestamp().Logger()
}
