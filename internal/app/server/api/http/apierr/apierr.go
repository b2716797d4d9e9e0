// Package apierr переводит доменные ошибки в ответы huma.
// Текст доменной ошибки уходит клиенту в поле detail без изменений.
package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/backup"
	"goldkeeper/internal/domain/session"
	"goldkeeper/internal/domain/settings"
	"goldkeeper/internal/domain/user"
	"goldkeeper/internal/domain/worktype"
)

// From возвращает huma-ошибку для err. Неизвестные ошибки логируются
// и превращаются в 500 без подробностей.
func From(log *slog.Logger, err error) error {
	if err == nil {
		return nil
	}

	var se huma.StatusError
	if errors.As(err, &se) {
		return err
	}

	msg := err.Error()
	switch {
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, worktype.ErrNotFound),
		errors.Is(err, settings.ErrNotFound),
		errors.Is(err, backup.ErrNotFound):
		return huma.Error404NotFound(msg)

	case errors.Is(err, user.ErrInvalidAuth),
		errors.Is(err, session.ErrInvalidSession):
		return huma.Error401Unauthorized(msg)

	case errors.Is(err, user.ErrForbidden),
		errors.Is(err, user.ErrInactive):
		return huma.Error403Forbidden(msg)

	case errors.Is(err, user.ErrUsernameTaken),
		errors.Is(err, worktype.ErrDuplicateName),
		errors.Is(err, backup.ErrBusy),
		errors.Is(err, backup.ErrExists):
		return huma.Error409Conflict(msg)

	case errors.Is(err, user.ErrInvalidInput),
		errors.Is(err, user.ErrSelfDelete),
		errors.Is(err, worktype.ErrInvalidInput),
		errors.Is(err, settings.ErrInvalidFactor),
		errors.Is(err, backup.ErrInvalidName):
		return huma.Error400BadRequest(msg)

	case errors.Is(err, backup.ErrCorrupted):
		return huma.Error422UnprocessableEntity(msg)
	}

	if log != nil {
		log.Error("unhandled error", slog.Any("error", err))
	}
	return huma.Error500InternalServerError("internal server error")
}
