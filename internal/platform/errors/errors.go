package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrEmptyCatalog  = errors.New("catalog is empty")
	ErrNotConfigured = errors.New("not configured")
)
