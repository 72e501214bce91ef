package errors

import "fmt"

// ErrorCode represents a passmint error code.
type ErrorCode string

const (
	ErrInvalidCriteria ErrorCode = "INVALID_CRITERIA" // 422
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	ErrEmptyHistory    ErrorCode = "EMPTY_HISTORY"    // 409
	ErrFileNotFound    ErrorCode = "FILE_NOT_FOUND"   // 404
	ErrInvalidFormat   ErrorCode = "INVALID_FORMAT"   // 422
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// Error represents a structured error with code, status, and details.
type Error struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidCriteria creates a 422 error for generation criteria violations.
func NewInvalidCriteria(msg string) *Error {
	return &Error{
		Code:    ErrInvalidCriteria,
		Status:  422,
		Message: msg,
	}
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *Error {
	return &Error{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewEmptyHistory creates a 409 error for exporting with no records.
func NewEmptyHistory() *Error {
	return &Error{
		Code:    ErrEmptyHistory,
		Status:  409,
		Message: "no passwords to export",
	}
}

// NewFileNotFound creates a 404 error for a missing import path.
func NewFileNotFound(path string) *Error {
	return &Error{
		Code:    ErrFileNotFound,
		Status:  404,
		Message: fmt.Sprintf("file not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewInvalidFormat creates a 422 error for unsupported or malformed file content.
func NewInvalidFormat(msg string) *Error {
	return &Error{
		Code:    ErrInvalidFormat,
		Status:  422,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *Error {
	return &Error{
		Code:    ErrInternal,
		Status:  500,
		Message: err.Error(),
	}
}
