package user

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 6
	// bcrypt игнорирует все, что длиннее 72 байт
	MaxPasswordLen = 72
)

// Validator - интерфейс для серверной валидации пользовательских данных
type Validator interface {
	ValidateUsername(username string) error
	ValidatePassword(password string) error
	ValidateEmail(email string) error
}

type AccountValidator struct {
	requireDigit  bool
	requireLetter bool
}

// NewAccountValidator создает валидатор с требованием букв и цифр в пароле
func NewAccountValidator() *AccountValidator {
	return &AccountValidator{
		requireDigit:  true,
		requireLetter: true,
	}
}

// ValidateUsername валидирует логин
func (v *AccountValidator) ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLen)
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return fmt.Errorf("username can only contain letters, digits, '_', '-', '.'")
		}
	}

	return nil
}

// ValidatePassword валидирует пароль
func (v *AccountValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordLen)
	}

	hasLetter := false
	hasDigit := false

	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if v.requireLetter && !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}

	if v.requireDigit && !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}

func (v *AccountValidator) ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Name != "" {
		return fmt.Errorf("email %q is not a valid address", email)
	}
	return nil
}
