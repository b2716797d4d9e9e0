package settings

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/app/server/api/http/apierr"
	"goldkeeper/internal/app/server/api/http/middleware/auth"
	"goldkeeper/internal/domain/settings"
	"goldkeeper/internal/domain/user"
)

type Handler struct {
	service    settings.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service settings.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.replaceOp(), h.replace)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*output, error) {
	if _, err := auth.Require(ctx, user.RoleStaff); err != nil {
		return nil, err
	}

	s, err := h.service.Get(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: s}, nil
}

func (h *Handler) replace(ctx context.Context, input *replaceInput) (*output, error) {
	actor, err := auth.Require(ctx, user.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s, err := h.service.Replace(ctx, actor.Username, input.Body)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: s}, nil
}
