package apperr

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeValidation      ErrorCode = "VALIDATION_FAILURE"
	ErrorCodeIllegalState    ErrorCode = "ILLEGAL_STATE"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

// AppError carries an HTTP status and a stable code so handlers can translate
// domain failures into transport responses without string matching.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{
		Status:  http.StatusNotFound,
		Code:    ErrorCodeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

func Validation(format string, args ...any) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    ErrorCodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

func IllegalState(format string, args ...any) *AppError {
	return &AppError{
		Status:  http.StatusConflict,
		Code:    ErrorCodeIllegalState,
		Message: fmt.Sprintf(format, args...),
	}
}
