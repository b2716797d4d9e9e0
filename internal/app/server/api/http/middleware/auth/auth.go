package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/session"
	"goldkeeper/internal/domain/user"
)

// UserGetter загружает владельца сессии
type UserGetter interface {
	Get(ctx context.Context, id int) (user.User, error)
}

type Auth struct {
	api     huma.API
	session session.Servicer
	users   UserGetter
	log     *slog.Logger
}

func New(api huma.API, session session.Servicer, users UserGetter, log *slog.Logger) *Auth {
	return &Auth{
		api:     api,
		session: session,
		users:   users,
		log:     log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const (
	userKey  contextKey = "user"
	tokenKey contextKey = "token"
)

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token, ok := bearerToken(ctx.Header("Authorization"))
		if !ok {
			a.unauthorized(ctx, "Not authenticated")
			return
		}

		// Валидируем токен
		userID, err := a.session.Validate(ctx.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrInvalidSession) {
				a.log.Error("validate session", slog.Any("error", err))
			}
			a.unauthorized(ctx, "Could not validate credentials")
			return
		}

		u, err := a.users.Get(ctx.Context(), userID)
		if err != nil {
			a.log.Warn("session owner not found", slog.Int("user_id", userID), slog.Any("error", err))
			a.unauthorized(ctx, "Could not validate credentials")
			return
		}
		if !u.IsActive {
			_ = huma.WriteErr(a.api, ctx, http.StatusForbidden, "Inactive user")
			return
		}

		newCtx := WithToken(WithUser(ctx.Context(), u), token)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) unauthorized(ctx huma.Context, msg string) {
	ctx.SetHeader("WWW-Authenticate", "Bearer")
	if err := huma.WriteErr(a.api, ctx, http.StatusUnauthorized, msg); err != nil {
		a.log.Error("write unauthorized response", slog.Any("error", err))
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func GetUser(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userKey).(user.User)
	return u, ok
}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// Require возвращает текущего пользователя, если его роль не ниже min.
// Ошибки уже приведены к ответам huma (401/403).
func Require(ctx context.Context, min user.Role) (user.User, error) {
	u, ok := GetUser(ctx)
	if !ok {
		return user.User{}, huma.Error401Unauthorized("Not authenticated")
	}
	if !u.Role.AtLeast(min) {
		return user.User{}, huma.Error403Forbidden("Not enough permissions")
	}
	return u, nil
}
