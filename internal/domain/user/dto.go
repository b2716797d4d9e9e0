package user

import (
	"fmt"
	"strings"
)

// CreateRequest - тело POST /api/auth/register
type CreateRequest struct {
	Username string `json:"username" minLength:"1" doc:"Логин, после создания не меняется"`
	Password string `json:"password" minLength:"1"`
	FullName string `json:"full_name" minLength:"1"`
	Email    string `json:"email" minLength:"1"`
	Role     Role   `json:"role,omitempty" enum:"staff,manager,admin" doc:"По умолчанию staff"`
}

// Validate выполняет проверки присутствия полей и длины пароля
func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" || strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.FullName) == "" {
		return fmt.Errorf("%w: username, email and full name are required", ErrInvalidInput)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password is required for new users", ErrInvalidInput)
	}
	if len(r.Password) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLen)
	}
	if r.Role != "" && !r.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, r.Role)
	}
	return nil
}

// UpdateRequest - частичное обновление, тело PATCH /api/users/{id}.
// Логин и пароль здесь не меняются.
type UpdateRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *Role   `json:"role,omitempty" enum:"staff,manager,admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r UpdateRequest) Validate() error {
	if r.FullName != nil && strings.TrimSpace(*r.FullName) == "" {
		return fmt.Errorf("%w: full name cannot be empty", ErrInvalidInput)
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
	}
	if r.Role != nil && !r.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *r.Role)
	}
	return nil
}

// Apply переносит заданные поля запроса в пользователя
func (r UpdateRequest) Apply(u *User) {
	if r.FullName != nil {
		u.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		u.Email = strings.TrimSpace(*r.Email)
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}

// ChangePasswordRequest - тело POST /api/users/{id}/change-password
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" minLength:"1"`
}

func (r ChangePasswordRequest) Validate() error {
	if len(r.NewPassword) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLen)
	}
	return nil
}

// LoginRequest - тело POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" minLength:"1"`
	Password string `json:"password" minLength:"1"`
}

// LoginResponse - ответ на успешный вход
type LoginResponse struct {
	Token     string `json:"access_token"`
	TokenType string `json:"token_type"`
	User      User   `json:"user"`
}
