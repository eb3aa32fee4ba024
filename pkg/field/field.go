// Package field models scalar patch fields with three states:
// unset (leave the target untouched), clear (explicitly null the
// target) and set (assign a concrete value).
//
// The three states are carried as a tagged variant rather than a
// process-wide CLEAR singleton, so a legitimate zero or nil value can
// never be mistaken for an instruction to clear.
package field

import "fmt"

type state uint8

const (
	unset state = iota
	cleared
	set
)

// Field is a tri-state scalar patch value.
// The zero Field is unset.
type Field[T any] struct {
	state state
	value T
}

// Unset returns a field that leaves the target untouched
func Unset[T any]() Field[T] {
	return Field[T]{}
}

// Clear returns a field that nulls the target
func Clear[T any]() Field[T] {
	return Field[T]{state: cleared}
}

// Of returns a field set to a concrete value
func Of[T any](value T) Field[T] {
	return Field[T]{state: set, value: value}
}

// IsUnset reports whether the field leaves the target untouched
func (f Field[T]) IsUnset() bool {
	return f.state == unset
}

// IsClear reports whether the field nulls the target
func (f Field[T]) IsClear() bool {
	return f.state == cleared
}

// IsSet reports whether the field holds a concrete value
func (f Field[T]) IsSet() bool {
	return f.state == set
}

// Value returns the concrete value and whether one is held
func (f Field[T]) Value() (T, bool) {
	return f.value, f.state == set
}

// Apply resolves the field against target in place: a clear field sets
// *target to nil, a set field sets it to the held value, an unset field
// leaves it untouched. Apply cannot fail.
func (f Field[T]) Apply(target **T) {
	switch f.state {
	case cleared:
		*target = nil
	case set:
		value := f.value
		*target = &value
	}
}

// String renders the field state for logs
func (f Field[T]) String() string {
	switch f.state {
	case cleared:
		return "<clear>"
	case set:
		return fmt.Sprintf("%v", f.value)
	default:
		return "<unset>"
	}
}
