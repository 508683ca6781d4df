package errors

import (
	"errors"
	"fmt"
)

// Code represents a domain-specific error code.
type Code string

// Error codes for menucli's failure scenarios.
const (
	// CodePermissionDenied indicates the process lacks Accessibility permission.
	CodePermissionDenied Code = "PERMISSION_DENIED"

	// CodeAppNotFound indicates no running process matched the --app identifier.
	CodeAppNotFound Code = "APP_NOT_FOUND"

	// CodeNotFound indicates the resolver found no matching menu item.
	CodeNotFound Code = "NOT_FOUND"

	// CodeAmbiguous indicates the resolver found more than one top candidate.
	CodeAmbiguous Code = "AMBIGUOUS"

	// CodeUnsupported indicates a requested AX attribute (typically extras) is absent.
	CodeUnsupported Code = "UNSUPPORTED"

	// CodeAxFailure indicates any other Accessibility API error.
	CodeAxFailure Code = "AX_FAILURE"

	// CodeInvalidInput indicates invalid CLI input parameters.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeInternal indicates an unclassified internal error.
	CodeInternal Code = "INTERNAL"
)

// Error represents a domain error with code, message, and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Context map[string]any
}

// New creates a new domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error matching for errors.Is.
func (e *Error) Is(target error) bool {
	targetErr, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Code == targetErr.Code
}

// WithContext attaches a key/value pair to the error for diagnostic output.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}

	e.Context[key] = value

	return e
}

// Wrap wraps an existing error with a domain error code and message.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// IsCode reports whether err is a domain error carrying the given code.
func IsCode(err error, code Code) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}

	return false
}

// GetCode extracts the error code from err, or CodeInternal if err is not a domain error.
func GetCode(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	return CodeInternal
}

// ExitCode maps a Code to its process exit status.
func ExitCode(code Code) int {
	switch code {
	case CodePermissionDenied:
		return 10
	case CodeAppNotFound, CodeNotFound:
		return 2
	case CodeAmbiguous:
		return 3
	case CodeUnsupported, CodeAxFailure, CodeInvalidInput, CodeInternal:
		return 1
	default:
		return 1
	}
}
