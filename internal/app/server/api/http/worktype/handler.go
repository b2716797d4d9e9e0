package worktype

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/app/server/api/http/apierr"
	"goldkeeper/internal/app/server/api/http/middleware/auth"
	"goldkeeper/internal/domain/user"
	"goldkeeper/internal/domain/worktype"
)

type Handler struct {
	service    worktype.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service worktype.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	if _, err := auth.Require(ctx, user.RoleStaff); err != nil {
		return nil, err
	}

	items, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: items}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	if _, err := auth.Require(ctx, user.RoleManager); err != nil {
		return nil, err
	}

	wt, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: wt}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	if _, err := auth.Require(ctx, user.RoleManager); err != nil {
		return nil, err
	}

	wt, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: wt}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*struct{}, error) {
	if _, err := auth.Require(ctx, user.RoleManager); err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return nil, nil
}
