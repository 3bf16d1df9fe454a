package dof

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

// Error codes returned by this package and by the dofcalc CLI.
const (
	// ErrCodeInvalidLens marks a lens measurement that is zero, negative or not a number.
	ErrCodeInvalidLens Code = "INVALID_LENS"

	// ErrCodeNoApertures marks a lens whose maximum aperture is above every f-stop in the table.
	ErrCodeNoApertures Code = "NO_APERTURES"

	// ErrCodeInvalidFormat marks an unknown output format.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// ErrCodeInvalidConfig marks a CLI setting outside its allowed range.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// ErrCodeOutputFailed marks a failure to write the finished table.
	ErrCodeOutputFailed Code = "OUTPUT_FAILED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates an Error with the given code and formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error wrapping cause.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any error in err's chain is an *Error with the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from err, or "" if err carries none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsInputError reports whether err was caused by bad user input rather than
// by the environment.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidLens, ErrCodeNoApertures, ErrCodeInvalidFormat, ErrCodeInvalidConfig:
		return true
	}
	return false
}
