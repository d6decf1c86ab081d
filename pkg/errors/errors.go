// Package errors defines the coded errors shared by treeview's packages.
//
// Every failure that callers may want to branch on carries a [Code]:
//
//	INVALID_INPUT   nil tree root, cyclic or shared nodes, bad labels,
//	                impossible render sizes
//	INVALID_FORMAT  unknown output format or undecodable tree file
//	INVALID_CONFIG  bad render config file or style colour
//	INVALID_ENGINE  unknown layout engine
//	INVALID_PATH    unusable output path
//	FILE_NOT_FOUND  missing tree or config file
//	UNSUPPORTED     valid options that cannot be combined
//	INTERNAL_ERROR  encoder and font failures
//
// The renderer reports a nil root as INVALID_INPUT; test for it with
// [IsInvalidInput]:
//
//	if err := render.Render(nil, s, cfg); errors.IsInvalidInput(err) {
//	    // ...
//	}
//
// Codes survive wrapping with fmt.Errorf("...: %w", err), so plumbing code
// adds context freely and callers still use [Is] or [GetCode].
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidEngine Code = "INVALID_ENGINE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeUnsupported   Code = "UNSUPPORTED"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Error carries a code, a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an *Error that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// InvalidInput is shorthand for New(ErrCodeInvalidInput, ...).
func InvalidInput(format string, args ...any) *Error {
	return New(ErrCodeInvalidInput, format, args...)
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// Is reports whether err's chain holds an *Error with the given code.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// IsInvalidInput reports whether err carries [ErrCodeInvalidInput].
func IsInvalidInput(err error) bool {
	return Is(err, ErrCodeInvalidInput)
}

// UserMessage formats err for terminal output: the message and cause of a
// coded error without the code prefix, or err.Error() otherwise.
func UserMessage(err error) string {
	e, ok := asError(err)
	if !ok {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}
