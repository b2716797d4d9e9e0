package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"goldkeeper/internal/app/server/config"
	"goldkeeper/internal/utils/logger/slogpretty"
)

// New создает логгер с уровнем по умолчанию для окружения
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel создает логгер для окружения. Непустой level
// (debug, info, warn, error) переопределяет уровень окружения.
func NewWithLevel(env, level string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level, slog.LevelDebug)}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level, slog.LevelInfo)}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	if strings.TrimSpace(level) == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fallback
	}
	return l
}

// Err оборачивает ошибку в атрибут лога
func Err(err error) slog.Attr {
	return slog.Attr{Key: "error", Value: slog.StringValue(err.Error())}
}
