package errors

import (
	"fmt"
)

// ValidationError reports a modifier parameter outside its documented range.
type ValidationError struct {
	Modifier string
	Param    string
	Message  string
	Err      error
}

// NewValidationError constructs a ValidationError for the named modifier parameter.
func NewValidationError(modifier, param, message string, err error) error {
	return &ValidationError{Modifier: modifier, Param: param, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Param != "" {
		return fmt.Sprintf("validation error: %s: %s: %s", e.Modifier, e.Param, e.Message)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Modifier, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TypeMismatchError reports a named style bound to a component of the wrong kind.
type TypeMismatchError struct {
	Style    string
	Expected string
	Actual   string
}

// NewTypeMismatchError constructs a TypeMismatchError.
func NewTypeMismatchError(style, expected, actual string) error {
	return &TypeMismatchError{Style: style, Expected: expected, Actual: actual}
}

func (e *TypeMismatchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("type mismatch: style %q targets %s, got %s", e.Style, e.Expected, e.Actual)
}

// MissingDefaultError reports an environment key read with neither a declared
// default nor an enclosing frame.
type MissingDefaultError struct {
	Key string
}

// NewMissingDefaultError constructs a MissingDefaultError for the named key.
func NewMissingDefaultError(key string) error {
	return &MissingDefaultError{Key: key}
}

func (e *MissingDefaultError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("environment key %q has no value in scope and no default", e.Key)
}
