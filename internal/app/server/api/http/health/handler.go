package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const pingTimeout = 2 * time.Second

// Pinger проверяет доступность базы
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(db Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	out := &Output{Body: Response{Status: "OK", Database: "OK"}}
	if h.db == nil {
		return out, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := h.db.Ping(pingCtx); err != nil {
		h.log.Error("database ping failed", slog.Any("error", err))
		return nil, huma.Error503ServiceUnavailable("database is unavailable")
	}
	return out, nil
}
