package logger

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// Logger middleware для логирования входящих HTTP запросов
type Logger struct {
	log *slog.Logger
}

// New создает новый экземпляр Logger middleware
func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "http_logger")),
	}
}

// Middleware возвращает middleware функцию для логирования HTTP запросов
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		// Получаем информацию о запросе до его обработки
		method := ctx.Method()
		path := ctx.URL().Path
		remoteAddr := ctx.RemoteAddr()

		requestID := ctx.Header(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.SetHeader(RequestIDHeader, requestID)
		ctx = huma.WithContext(ctx, context.WithValue(ctx.Context(), requestIDKey, requestID))

		next(ctx)

		// Логируем после обработки запроса
		duration := time.Since(start)
		status := ctx.Status()

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}
		l.log.Log(ctx.Context(), level, "HTTP request",
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", duration),
			slog.String("remote_addr", remoteAddr),
		)
	}
}

// RequestID возвращает идентификатор запроса из контекста
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
