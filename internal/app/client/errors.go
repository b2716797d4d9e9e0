package client

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrNotAuthenticated = errors.New("вход не выполнен, используйте команду auth login")

// APIError - ответ сервера со статусом 4xx/5xx.
// Detail содержит поле detail из тела ответа и показывается пользователю как есть.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("ошибка сервера: статус %d", e.StatusCode)
}

func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// AsAPIError извлекает *APIError из цепочки ошибок
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsForbidden сообщает, что сервер ответил 403
func IsForbidden(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsForbidden()
}

// IsUnauthorized сообщает, что сервер ответил 401
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsUnauthorized()
}
