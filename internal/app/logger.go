package app

import (
	"os"

	"service-rental/internal/logx"
)

// NewLogger builds the JSON stdout logger. An unknown level falls back to info.
func NewLogger(level string) logx.Logger {
	lvl, err := logx.ParseLevel(level)
	logger := logx.NewJSON(os.Stdout, lvl)
	if err != nil {
		logger.Warn("falling back to info log level", logx.Err(err))
	}
	return logger
}
