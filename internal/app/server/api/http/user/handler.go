package user

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/app/server/api/http/apierr"
	"goldkeeper/internal/app/server/api/http/middleware/auth"
	"goldkeeper/internal/domain/session"
	"goldkeeper/internal/domain/user"
)

const tokenType = "bearer"

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	public     huma.Middlewares
	middleware huma.Middlewares
}

// NewHandler принимает два набора мидлварей: public для входа,
// middleware (с проверкой сессии) для остальных операций.
func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, public, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		public:     public,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.meOp(), h.me)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.changePasswordOp(), h.changePassword)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		return nil, apierr.From(h.log, fmt.Errorf("create session: %w", err))
	}

	return &loginOutput{
		Body: user.LoginResponse{Token: token, TokenType: tokenType, User: u},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*userOutput, error) {
	u, err := auth.Require(ctx, user.RoleStaff)
	if err != nil {
		return nil, err
	}
	return &userOutput{Body: u}, nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*messageOutput, error) {
	token, ok := auth.GetToken(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Not authenticated")
	}
	if err := h.session.Revoke(ctx, token); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &messageOutput{Body: MessageResponse{Message: "Logged out"}}, nil
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*userOutput, error) {
	actor, err := auth.Require(ctx, user.RoleManager)
	if err != nil {
		return nil, err
	}

	u, err := h.service.Register(ctx, actor, input.Body)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &userOutput{Body: u}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	if _, err := auth.Require(ctx, user.RoleStaff); err != nil {
		return nil, err
	}

	users, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: users}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*userOutput, error) {
	actor, err := auth.Require(ctx, user.RoleManager)
	if err != nil {
		return nil, err
	}

	u, err := h.service.Update(ctx, actor, input.ID, input.Body)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &userOutput{Body: u}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*messageOutput, error) {
	actor, err := auth.Require(ctx, user.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, actor, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &messageOutput{Body: MessageResponse{Message: "User deleted"}}, nil
}

// changePassword: менеджер и администратор меняют пароли другим, остальные только себе
func (h *Handler) changePassword(ctx context.Context, input *changePasswordInput) (*messageOutput, error) {
	actor, err := auth.Require(ctx, user.RoleStaff)
	if err != nil {
		return nil, err
	}
	if actor.ID != input.ID && !actor.CanManageUsers() {
		return nil, huma.Error403Forbidden("Not enough permissions")
	}

	if err := h.service.ChangePassword(ctx, actor, input.ID, input.Body.NewPassword); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &messageOutput{Body: MessageResponse{Message: "Password changed"}}, nil
}
