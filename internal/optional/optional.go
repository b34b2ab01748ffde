package optional

import (
	"errors"
	"reflect"
)

// ErrNoValue is returned by Get on an empty Optional.
var ErrNoValue = errors.New("no value")

// Optional holds zero or one value of type T.
// The zero value is empty. An Optional never holds a nil value.
type Optional[T any] struct {
	value   T
	present bool
}

// Of wraps value. A nil value (untyped nil, or a nil pointer, map, slice, func,
// chan or interface) yields the empty Optional.
func Of[T any](value T) Optional[T] {
	if IsNil(value) {
		return Empty[T]()
	}
	return Optional[T]{value: value, present: true}
}

// Empty returns the absent Optional.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether the Optional holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the held value, or ErrNoValue if the Optional is empty.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoValue
	}
	return o.value, nil
}

// IfPresent calls consumer with the held value, if any.
func (o Optional[T]) IfPresent(consumer func(T)) {
	if o.present {
		consumer(o.value)
	}
}

// Filter returns o when it is present and predicate holds, otherwise empty.
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return Empty[T]()
}

// Map applies fn to the held value and rewraps the result with Of, so a nil
// result collapses to empty. fn is not called on an empty Optional.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	return Of(fn(o.value))
}

// IsNil reports whether v is nil or a typed nil of a nilable kind.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
