package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category
type ErrorCode int

const (
	ErrValidation ErrorCode = iota + 1000
	ErrConflict
	ErrNotFound
	ErrInvalidCredentials
	ErrPersistence
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewValidation(message string) *AppError {
	return &AppError{Code: ErrValidation, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Code: ErrConflict, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: ErrNotFound, Message: message}
}

func NewInvalidCredentials() *AppError {
	return &AppError{Code: ErrInvalidCredentials, Message: "credenciais inválidas"}
}

func NewPersistence(err error) *AppError {
	return &AppError{Code: ErrPersistence, Message: "erro interno do servidor", Err: err}
}

// CodeOf returns the error code of err when it wraps an AppError, zero otherwise.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// MessageOf returns the client-facing message for err. Persistence and unknown
// errors collapse to a generic message so internals never leak.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != ErrPersistence {
		return appErr.Message
	}
	return "erro interno do servidor"
}
