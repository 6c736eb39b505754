// Package errs defines the coded errors shared by the page objects and
// their locator/wait/action collaborators. Every failure that reaches a
// scenario carries one of these codes plus a message naming the semantic
// element and, where it applies, the expected vs actual value.
package errs

import (
	"errors"
	"fmt"
)

// Code is a suite error code.
type Code string

const (
	// ElementNotFound means a semantic reference resolved to nothing at
	// the time of the call.
	ElementNotFound Code = "element_not_found"
	// ElementNotInteractable means the element resolved but could not be
	// acted on (detached, hidden, or disabled).
	ElementNotInteractable Code = "element_not_interactable"
	// ConditionTimeout means a required state did not materialize within
	// the allotted time.
	ConditionTimeout Code = "condition_timeout"
	// AssertionMismatch means an observed value differs from the expected
	// one (count, text, order, computed total).
	AssertionMismatch Code = "assertion_mismatch"
	// NavigationUnexpected means a screen transition went to the wrong
	// place, or failed to happen where one was expected.
	NavigationUnexpected Code = "navigation_unexpected"
	// Internal covers driver failures that fit none of the above.
	Internal Code = "internal"
)

// Error is a coded suite error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a coded error with message.
func New(code Code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a coded error with a formatted message.
func Errorf(code Code, format string, args ...any) error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a coded error with message and cause.
func Wrap(code Code, message string, cause error) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// CodeOf returns the error code, defaulting to internal.
func CodeOf(err error) Code {
	if err == nil {
		return Internal
	}
	var coded *Error
	if errors.As(err, &coded) {
		if coded.Code == "" {
			return Internal
		}
		return coded.Code
	}
	return Internal
}

// MessageOf returns the diagnostic message for an error. Untyped errors
// fall back to their own text so raw driver failures stay readable in
// test output.
func MessageOf(err error) string {
	if err == nil {
		return string(Internal)
	}
	var coded *Error
	if errors.As(err, &coded) && coded.Message != "" {
		return coded.Message
	}
	return err.Error()
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code Code) bool {
	for err != nil {
		var coded *Error
		if !errors.As(err, &coded) {
			return false
		}
		if coded.Code == code {
			return true
		}
		err = coded.Err
	}
	return false
}
