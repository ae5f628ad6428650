package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a textual level (debug, info, warn, error) to slog.Level.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// NewJSON returns a Logger writing JSON lines to w at the given level.
func NewJSON(w io.Writer, level slog.Level) Logger {
	return FromSlog(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
}
