package cmd

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// parseLevel reads a log level name, defaulting to info.
func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// InitLogger installs the default logger: text on stderr, so that stdout only
// carries reports and exports.
func InitLogger(logLevel string) {
	level, ok := parseLevel(logLevel)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	if !ok {
		slog.Warn("invalid log level, defaulting to info", "configuredLevel", logLevel)
	}
	slog.Debug("logger initialized", "level", level.String())
}
