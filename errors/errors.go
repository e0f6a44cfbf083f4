// Package errors defines the error codes and error type reported by xmltree.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of xmltree failure.
type ErrorCode string

const (
	// ErrMalformed indicates the input is not a well-formed XML document:
	// the buffer does not begin with '<', a tag has no closing '>', a
	// comment is unterminated, or no root element could be built.
	ErrMalformed ErrorCode = "xml-malformed"
	// ErrAttributeNotFound indicates an attribute lookup by name failed.
	ErrAttributeNotFound ErrorCode = "xml-attribute-not-found"
	// ErrChildNotFound indicates a child lookup by name failed.
	ErrChildNotFound ErrorCode = "xml-child-not-found"
	// ErrIndexOutOfRange indicates an attribute or child index is out of range.
	ErrIndexOutOfRange ErrorCode = "xml-index-out-of-range"
	// ErrContentConflict indicates setting content on an element that has children.
	ErrContentConflict ErrorCode = "xml-content-conflict"
	// ErrChildConflict indicates adding a child to an element that has content.
	ErrChildConflict ErrorCode = "xml-child-conflict"
)

// Error describes an xmltree failure with a stable code and a
// human-readable message.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error formats the error for display, including the code and message.
func (e *Error) Error() string {
	if e == nil {
		return "xmltree <nil>"
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// New builds an Error with a code and message.
func New(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Newf formats a message and builds an Error.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	e, ok := AsError(err)
	return ok && e.Code == code
}
