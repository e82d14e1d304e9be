package tweetvoice

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"

	// ETIMEOUT is returned by a Renderer when a bounded wait expires.
	ETIMEOUT = "timeout"

	// Terminal extraction failures.
	ENAVTIMEOUT = "navigation_timeout"
	ENOCONTENT  = "no_content_found"
	EEMPTY      = "empty_content"
	EUPSTREAM   = "upstream_error"
)

// Error represents an application-specific error. Extraction failures carry
// the stage and variant that produced them so they can be logged meaningfully.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Pipeline stage and variant, set for extraction failures.
	Stage   Stage
	Variant Variant

	// Underlying cause, if any.
	Err error
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tweetvoice error: code=%s", e.Code)
	if e.Stage != "" {
		fmt.Fprintf(&b, " stage=%s", e.Stage)
	}
	if e.Variant != "" {
		fmt.Fprintf(&b, " variant=%s", e.Variant)
	}
	fmt.Fprintf(&b, " message=%s", e.Message)
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
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

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
