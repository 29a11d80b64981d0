package parsec

import "reflect"

// Monoid names the identity element and associative combine operation for
// an output type T. Through AppendWith, AtLeastOneWith and RepeatWith it
// lets Append, AtLeastOne and Repeat work over output types the library
// cannot infer a monoid for on its own (anything other than string or a
// slice).
type Monoid[T any] struct {
	Identity T
	Combine  func(a, b T) T
}

// StringMonoid is the monoid used for string-producing parsers.
func StringMonoid() Monoid[string] {
	return Monoid[string]{
		Identity: "",
		Combine:  func(a, b string) string { return a + b },
	}
}

// SliceMonoid is the monoid used for []E-producing parsers.
func SliceMonoid[E any]() Monoid[[]E] {
	return Monoid[[]E]{
		Identity: nil,
		Combine: func(a, b []E) []E {
			out := make([]E, 0, len(a)+len(b))
			out = append(out, a...)
			out = append(out, b...)
			return out
		},
	}
}

// defaultMonoid inspects T's runtime shape and returns the string or slice
// monoid for it. ok is false when T is neither, in which case callers must
// fall back to an explicit Monoid[T] (see Parser.AppendWith) or, for
// Optional, an explicit default value (see OptionalOr).
func defaultMonoid[T any]() (m Monoid[T], ok bool) {
	var zero T
	switch any(zero).(type) {
	case string:
		combine := func(a, b T) T {
			sa := any(a).(string)
			sb := any(b).(string)
			return any(sa + sb).(T)
		}
		return Monoid[T]{Identity: zero, Combine: combine}, true
	}

	rt := reflect.TypeOf(zero)
	if rt == nil {
		// T is an interface type, so zero is a nil interface with no
		// dynamic type we can recover; require an explicit monoid.
		return m, false
	}
	if rt.Kind() == reflect.Slice {
		combine := func(a, b T) T {
			va := reflect.ValueOf(a)
			vb := reflect.ValueOf(b)
			out := reflect.MakeSlice(rt, 0, va.Len()+vb.Len())
			out = reflect.AppendSlice(out, va)
			out = reflect.AppendSlice(out, vb)
			return out.Interface().(T)
		}
		return Monoid[T]{Identity: zero, Combine: combine}, true
	}
	return m, false
}
