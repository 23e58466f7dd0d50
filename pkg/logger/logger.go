// Package logger holds the process-wide structured logger. Handlers,
// middleware and main log through logger.Log once Init has run.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

// Init installs a JSON handler on stdout. Debug output (token
// validation, websocket write errors) is opt-in via LOG_LEVEL=debug.
func Init() {
	level := slog.LevelInfo
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
