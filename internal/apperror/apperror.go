package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Sentinel kinds for the error taxonomy. Services wrap these with
// entity-specific messages; the HTTP layer maps them to status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("invalid request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrRateLimited  = errors.New("rate limited")
)

// Error carries a user-facing message alongside its taxonomy kind.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return newError(ErrNotFound, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newError(ErrConflict, format, args...)
}

func Validation(format string, args ...any) *Error {
	return newError(ErrValidation, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return newError(ErrUnauthorized, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return newError(ErrForbidden, format, args...)
}

func RateLimited(format string, args ...any) *Error {
	return newError(ErrRateLimited, format, args...)
}

// StatusCode maps an error to its transport status. Unrecognized errors are
// treated as internal faults.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrRateLimited):
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}

func IsNotFound(err error) bool    { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool    { return errors.Is(err, ErrConflict) }
func IsRateLimited(err error) bool { return errors.Is(err, ErrRateLimited) }
