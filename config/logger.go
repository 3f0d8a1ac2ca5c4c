package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName tags every log line.
const ServiceName = "product-filter-api"

// NewLogger builds the service logger. format "json" writes one JSON object
// per line; anything else uses the human console writer. Unknown levels fall
// back to info.
func NewLogger(level, format string, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if strings.EqualFold(format, "json") {
		zl = zerolog.New(out)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		})
	}

	return zl.Level(lvl).With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

// NewLoggerFromConfig is NewLogger driven by cfg.Logging.
func NewLoggerFromConfig(cfg *Config, out io.Writer) zerolog.Logger {
	return NewLogger(cfg.Logging.Level, cfg.Logging.Format, out)
}
