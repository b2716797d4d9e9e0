package backup

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/app/server/api/http/apierr"
	"goldkeeper/internal/app/server/api/http/middleware/auth"
	"goldkeeper/internal/domain/backup"
	"goldkeeper/internal/domain/user"
)

// Все операции с резервными копиями доступны только администратору
type Handler struct {
	service    backup.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service backup.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.restoreOp(), h.restore)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.historyOp(), h.history)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	if _, err := auth.Require(ctx, user.RoleAdmin); err != nil {
		return nil, err
	}

	items, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: ListResponse{Backups: items}}, nil
}

func (h *Handler) create(ctx context.Context, _ *struct{}) (*createOutput, error) {
	actor, err := auth.Require(ctx, user.RoleAdmin)
	if err != nil {
		return nil, err
	}

	b, err := h.service.Create(ctx, actor.Username)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &createOutput{Body: CreateResponse{Message: "Backup created", Backup: b}}, nil
}

func (h *Handler) restore(ctx context.Context, input *restoreInput) (*messageOutput, error) {
	actor, err := auth.Require(ctx, user.RoleAdmin)
	if err != nil {
		return nil, err
	}

	h.log.Warn("restore requested",
		slog.String("file", input.BackupFile),
		slog.Bool("drop_existing", input.DropExisting),
		slog.String("by", actor.Username),
	)
	if err := h.service.Restore(ctx, input.BackupFile, input.DropExisting, actor.Username); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &messageOutput{Body: MessageResponse{Message: "Database restored from " + input.BackupFile}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*messageOutput, error) {
	actor, err := auth.Require(ctx, user.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, input.Filename, actor.Username); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &messageOutput{Body: MessageResponse{Message: "Backup deleted"}}, nil
}

func (h *Handler) history(ctx context.Context, input *historyInput) (*historyOutput, error) {
	if _, err := auth.Require(ctx, user.RoleAdmin); err != nil {
		return nil, err
	}

	events, err := h.service.History(ctx, input.Limit)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &historyOutput{Body: HistoryResponse{Events: events}}, nil
}
