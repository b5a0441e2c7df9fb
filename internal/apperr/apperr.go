// Package apperr defines the error kinds shared by the domain packages.
//
// A kind is a sentinel (ErrValidation, ErrPermission, ...). Domain code
// returns an *Error carrying one kind plus a human-readable message and an
// optional cause, so callers branch with errors.Is(err, apperr.ErrNotFound)
// and the transport layer picks a status code from the kind alone.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

var (
	// ErrValidation indicates bad input shape or value.
	ErrValidation Kind = kind{"validation error"}
	// ErrPermission indicates the actor is not allowed to perform the operation.
	ErrPermission Kind = kind{"permission denied"}
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound Kind = kind{"not found"}
	// ErrDuplicateSplit indicates a participant already has a split on an expense.
	ErrDuplicateSplit Kind = kind{"duplicate split"}
	// ErrConflict indicates a uniqueness or state conflict in the store.
	ErrConflict Kind = kind{"conflict"}
)

// Error is a kind plus message and optional cause.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// New returns an error of kind k with a formatted message.
func New(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of kind k that wraps cause.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...), err: cause}
}

// Validation is shorthand for New(ErrValidation, ...).
func Validation(format string, args ...any) *Error {
	return New(ErrValidation, format, args...)
}

// Permission is shorthand for New(ErrPermission, ...).
func Permission(format string, args ...any) *Error {
	return New(ErrPermission, format, args...)
}

// NotFound is shorthand for New(ErrNotFound, ...).
func NotFound(format string, args ...any) *Error {
	return New(ErrNotFound, format, args...)
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		return e.kind.Error()
	}
}

// Unwrap returns the cause, if any.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind or anything in the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	return e.err != nil && errors.Is(e.err, target)
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message without the cause.
func (e *Error) Message() string { return e.msg }

// KindOf returns the kind of the first *Error in err's chain, or nil.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return nil
}
