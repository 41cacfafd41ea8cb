// Package errors defines the error values shared across the ledger service.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error classes. Every error the service surfaces belongs to exactly one
// of these, and the HTTP layer maps each class to a status code.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeValidation      = "VALIDATION_FAILED"
	CodeNotFound        = "NOT_FOUND"
	CodeRepository      = "REPOSITORY_ERROR"
	CodeCache           = "CACHE_ERROR"
)

// DomainError carries an error class code, a human-readable message and an
// optional underlying cause.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is makes two DomainErrors equal when their codes match, so callers can
// test the class with errors.Is regardless of the message.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if stderrors.As(target, &de) {
		return e.Code == de.Code
	}
	return false
}

func InvalidArgument(format string, args ...any) error {
	return &DomainError{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &DomainError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &DomainError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Repository(err error, format string, args ...any) error {
	return &DomainError{Code: CodeRepository, Message: fmt.Sprintf(format, args...), Err: err}
}

func Cache(err error, format string, args ...any) error {
	return &DomainError{Code: CodeCache, Message: fmt.Sprintf(format, args...), Err: err}
}

func codeOf(err error) string {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Code
	}
	return ""
}

func IsInvalidArgument(err error) bool { return codeOf(err) == CodeInvalidArgument }
func IsValidation(err error) bool      { return codeOf(err) == CodeValidation }
func IsNotFound(err error) bool        { return codeOf(err) == CodeNotFound }

// IsUnavailable reports whether err is a storage or cache access failure,
// retryable from the caller's perspective.
func IsUnavailable(err error) bool {
	code := codeOf(err)
	return code == CodeRepository || code == CodeCache
}
