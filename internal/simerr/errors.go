// Package simerr defines the error kinds surfaced by the simulation core.
//
// Every failure returned by the engine, quest and crafting packages carries a
// Kind so callers can branch on NotFound versus InvalidRequest without string
// matching. None of these errors are retried internally.
package simerr

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	KindInternal            Kind = "internal"
	KindNotFound            Kind = "not_found"
	KindInvalidRequest      Kind = "invalid_request"
	KindConfiguration       Kind = "configuration_error"
	KindUnsupportedCategory Kind = "unsupported_category"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Kind     Kind
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
	}
	return false
}

// With returns a copy of e carrying an extra metadata pair.
func (e *Error) With(key, value string) *Error {
	md := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	cp := *e
	cp.Metadata = md
	return &cp
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind around an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Sentinels usable with errors.Is to test only the kind.
var (
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrInvalidRequest      = &Error{Kind: KindInvalidRequest}
	ErrConfiguration       = &Error{Kind: KindConfiguration}
	ErrUnsupportedCategory = &Error{Kind: KindUnsupportedCategory}
)

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// NotFoundf is shorthand for Newf(KindNotFound, ...).
func NotFoundf(format string, args ...any) *Error {
	return Newf(KindNotFound, format, args...)
}

// InvalidRequestf is shorthand for Newf(KindInvalidRequest, ...).
func InvalidRequestf(format string, args ...any) *Error {
	return Newf(KindInvalidRequest, format, args...)
}
