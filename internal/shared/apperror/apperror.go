package apperror

import (
	"fmt"
	"net/http"
)

// Error is the application error carried from services up to the HTTP
// layer. Code and Details survive the trip so the boundary can render a
// precise message.
type Error struct {
	Status  int         `json:"-"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports a missing (or not-owned) entity. Ownership failures are
// deliberately indistinguishable from absence.
func NotFound(resource string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func BadRequest(message string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
}

func BadRequestWithDetails(message string, details interface{}) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
		Details: details,
	}
}

func Unauthorized(message string) *Error {
	return &Error{
		Status:  http.StatusUnauthorized,
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func Forbidden(message string) *Error {
	return &Error{
		Status:  http.StatusForbidden,
		Code:    "FORBIDDEN",
		Message: message,
	}
}

func Internal(message string) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
}
