package worktype

import "errors"

var (
	ErrNotFound      = errors.New("work type not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicateName = errors.New("work type with this name already exists")
)
