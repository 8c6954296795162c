package util

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func InitLogger() {
	// JSON handler for production; every line carries the service name
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Logger = slog.New(handler).With("service", "sopdocs")
	slog.SetDefault(Logger)
}

func GetLogger() *slog.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}
