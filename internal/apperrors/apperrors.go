// Package apperrors defines the tagged error kinds of the load pipeline.
package apperrors

import (
    "errors"
    "fmt"
    "net/http"
)

// Code is a machine-readable error kind.
type Code string

const (
    ErrFileNotFound           Code = "FILE_NOT_FOUND"
    ErrEmptyDataset           Code = "EMPTY_DATASET"
    ErrMissingRequiredColumns Code = "MISSING_REQUIRED_COLUMNS"
    ErrInvalidDateColumn      Code = "INVALID_DATE_COLUMN"
)

// AppError carries a code plus a human-readable message. Structural load
// failures are surfaced as one of these; value-level coercion failures are
// recovered per-cell and never become an AppError.
type AppError struct {
    Code    Code
    Message string
}

func (e *AppError) Error() string {
    if e == nil { return "<nil>" }
    return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus maps the code onto a response status for the admin surface.
func (c Code) HTTPStatus() int {
    if s, ok := statusByCode[c]; ok { return s }
    return http.StatusInternalServerError
}

func (e *AppError) HTTPStatus() int { return e.Code.HTTPStatus() }

var statusByCode = map[Code]int{
    ErrFileNotFound:           http.StatusNotFound,
    ErrEmptyDataset:           http.StatusUnprocessableEntity,
    ErrMissingRequiredColumns: http.StatusUnprocessableEntity,
    ErrInvalidDateColumn:      http.StatusUnprocessableEntity,
}

// New creates an AppError with a formatted message.
func New(code Code, format string, args ...any) *AppError {
    return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the Code from err, or "" when err is not an AppError.
func CodeOf(err error) Code {
    var ae *AppError
    if errors.As(err, &ae) { return ae.Code }
    return ""
}

// Is reports whether err is an AppError with the given code.
func Is(err error, code Code) bool { return CodeOf(err) == code }
