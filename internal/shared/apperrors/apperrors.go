// Package apperrors defines the application error taxonomy shared by all
// components and mapped to HTTP statuses at the transport layer.
package apperrors

import (
	"errors"
	"fmt"
)

// Error codes surfaced to clients.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeDecryption         = "DECRYPTION_ERROR"
	CodeFormat             = "FORMAT_ERROR"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
	CodeBadRequest         = "BAD_REQUEST"
)

// AppError carries an error code alongside a human-readable message.
type AppError struct {
	Code    string // Error code for the client
	Message string // Human-readable message
	Err     error  // Underlying error, if any
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an error with a code and message
func Wrap(err error, code, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Validation creates a validation error
func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// ValidationWrap wraps a field-level sentinel error as a validation error
func ValidationWrap(err error) *AppError {
	return Wrap(err, CodeValidation, err.Error())
}

// NotFound creates a not found error
func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

// Decryption creates a decryption error. Wrong password and tampered
// ciphertext are deliberately indistinguishable.
func Decryption() *AppError {
	return New(CodeDecryption, "decryption failed: check password and file")
}

// Format creates a payload shape error
func Format(message string) *AppError {
	return New(CodeFormat, message)
}

// StorageUnavailable wraps a durable-storage failure
func StorageUnavailable(message string, err error) *AppError {
	return Wrap(err, CodeStorageUnavailable, message)
}

// Internal creates an internal error
func Internal(message string, err error) *AppError {
	return Wrap(err, CodeInternal, message)
}

// BadRequest creates a bad request error
func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

// Code extracts the error code from an error chain, or CodeInternal if the
// chain carries no AppError.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// IsCode reports whether the error chain carries an AppError with the code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
