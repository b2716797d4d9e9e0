package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrInvalidAuth   = errors.New("invalid credentials")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUsernameTaken = errors.New("username already exists")
	ErrForbidden     = errors.New("insufficient privileges")
	ErrSelfDelete    = errors.New("you cannot delete your own account")
	ErrInactive      = errors.New("user account is disabled")
)
