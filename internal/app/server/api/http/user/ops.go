package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Вход по логину и паролю",
		Tags:        []string{"auth"},
		Middlewares: h.public,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/api/auth/me",
		Summary:     "Текущий пользователь",
		Tags:        []string{"auth"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-logout",
		Method:      http.MethodPost,
		Path:        "/api/auth/logout",
		Summary:     "Завершить сессию",
		Tags:        []string{"auth"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-register",
		Method:        http.MethodPost,
		Path:          "/api/auth/register",
		Summary:       "Создать пользователя",
		Description:   "Доступно менеджерам и администраторам. Роль admin выдает только администратор.",
		Tags:          []string{"users"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        "/api/users",
		Summary:     "Список пользователей",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-update",
		Method:      http.MethodPatch,
		Path:        "/api/users/{id}",
		Summary:     "Изменить пользователя",
		Description: "Частичное обновление: full_name, email, role, is_active. Логин и пароль не меняются.",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-delete",
		Method:      http.MethodDelete,
		Path:        "/api/users/{id}",
		Summary:     "Удалить пользователя",
		Description: "Только для администратора. Удалить собственную учетную запись нельзя.",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) changePasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-change-password",
		Method:      http.MethodPost,
		Path:        "/api/users/{id}/change-password",
		Summary:     "Сменить пароль пользователя",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
