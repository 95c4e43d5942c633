// internal/app/system/apperr/apperr.go

// Package apperr defines the typed error taxonomy shared by the core
// components and mapped to HTTP status codes at the boundary.
//
// The four kinds mirror the operations' observable outcomes:
//   - NotFound:   the resource, or any link in its ownership chain, is absent
//   - Forbidden:  the resource exists but the subject lacks rights
//   - Validation: malformed or missing input
//   - Conflict:   uniqueness violation (duplicate email)
//
// Existence checks precede permission checks everywhere, so a caller can
// never learn about a missing resource through a Forbidden error.
package apperr

import (
	"errors"
	"fmt"
)

// Kind discriminates the error categories.
type Kind int

const (
	KindNotFound Kind = iota
	KindForbidden
	KindValidation
	KindConflict
)

// Error is a typed application error with a user-facing detail message.
type Error struct {
	Kind   Kind
	Detail string
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound returns a KindNotFound error with the given detail.
func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

// Forbidden returns a KindForbidden error with the given detail.
func Forbidden(detail string) *Error {
	return &Error{Kind: KindForbidden, Detail: detail}
}

// Validation returns a KindValidation error with the given detail.
func Validation(detail string) *Error {
	return &Error{Kind: KindValidation, Detail: detail}
}

// Conflict returns a KindConflict error with the given detail.
func Conflict(detail string) *Error {
	return &Error{Kind: KindConflict, Detail: detail}
}

// Wrap attaches an underlying cause, keeping the kind and detail.
func Wrap(err *Error, cause error) *Error {
	return &Error{Kind: err.Kind, Detail: err.Detail, Err: cause}
}

// IsNotFound reports whether err is (or wraps) a KindNotFound error.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsForbidden reports whether err is (or wraps) a KindForbidden error.
func IsForbidden(err error) bool { return isKind(err, KindForbidden) }

// IsValidation reports whether err is (or wraps) a KindValidation error.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsConflict reports whether err is (or wraps) a KindConflict error.
func IsConflict(err error) bool { return isKind(err, KindConflict) }

func isKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
