// Package errors augments the standard errors
// provided by fmt (https://golang.org/src/fmt/errors.go)
// with sentinel errors that may be derived with a cause,
// without resorting to fmt.Errorf("%w", err).
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New returns a new sentinel Error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error augments the standard error interface with a Wrap method.
//
// Unlike github.com/pkg/errors, wrapping starts from an error value,
// not from text: package-level sentinels are declared once and derived
// with a cause at the call site. Derivation never mutates the sentinel,
// so concurrent call sites may wrap the same sentinel safely.
type Error struct {
	msg  string
	err  error
	from *Error
}

// Error message, with the cause appended when present
func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

// Unwrap the cause of this error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap returns an error derived from e with the given cause.
// The result matches e with Is, and its cause chain continues into err.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, from: e.sentinel()}
}

// Is reports whether this error derives from target
func (e *Error) Is(target error) bool {
	return e == target || e.sentinel() == target
}

func (e *Error) sentinel() *Error {
	if e.from != nil {
		return e.from
	}
	return e
}

// As finds the first error in err's chain that matches target, and if so, sets target to that error value and returns true.
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
