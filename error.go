package xpatlat

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECREDENTIAL = "credential"
	ELAUNCH     = "launch"
	ENAVIGATION = "navigation"
	EEXTRACT    = "extract"
	EINTERNAL   = "internal"
	EINVALID    = "invalid"
	ENOTFOUND   = "not_found"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string

	// err is the formatted error when format used %w, nil otherwise.
	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("xpatlat error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the formatted error carrying every %w cause, so errors.Is
// and errors.As see through it.
func (e *Error) Unwrap() error {
	return e.err
}

// Errorf is a helper function to return an Error with a given code and
// formatted message. Arguments of %w verbs, one or several, stay reachable
// via errors.Is and errors.As.
func Errorf(code string, format string, args ...any) *Error {
	wrapped := fmt.Errorf(format, args...)
	e := &Error{Code: code, Message: wrapped.Error()}
	switch wrapped.(type) {
	case interface{ Unwrap() error }, interface{ Unwrap() []error }:
		e.err = wrapped
	}
	return e
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
