package worktype

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxNameLen = 100

// CreateRequest - тело POST /api/work-types
type CreateRequest struct {
	Name        string `json:"name" minLength:"1" maxLength:"100"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty" doc:"По умолчанию true"`
}

func (r CreateRequest) Validate() error {
	return validateName(r.Name)
}

// UpdateRequest - тело PATCH /api/work-types/{id}
type UpdateRequest struct {
	Name        *string `json:"name,omitempty" maxLength:"100"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r UpdateRequest) Validate() error {
	if r.Name != nil {
		return validateName(*r.Name)
	}
	return nil
}

// Apply переносит заданные поля запроса в тип работ
func (r UpdateRequest) Apply(wt *WorkType) {
	if r.Name != nil {
		wt.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		wt.Description = strings.TrimSpace(*r.Description)
	}
	if r.IsActive != nil {
		wt.IsActive = *r.IsActive
	}
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, MaxNameLen)
	}
	return nil
}
