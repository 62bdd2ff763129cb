package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/wire"
	"github.com/trebuchet-org/subnetctl/internal/domain/config"
)

// LevelEnvVar selects the log level (debug, info, warn, error)
const LevelEnvVar = "SUBNETCTL_LOG_LEVEL"

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	return newLogger(os.Stderr, cfg != nil && cfg.Debug, os.Getenv(LevelEnvVar))
}

func newLogger(w io.Writer, debug bool, envLevel string) *slog.Logger {
	level := slog.LevelInfo

	switch strings.ToLower(strings.TrimSpace(envLevel)) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// unknown value, keep default
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time for cleaner CLI output
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}

	if debug {
		opts.Level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
