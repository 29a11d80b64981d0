package parsec

// Parser is an immutable value wrapping a pure function from an Input to a
// ParseResult[T]. Combinators build new Parsers from existing ones;
// evaluation happens only when Run is called.
type Parser[T any] func(in Input) ParseResult[T]

// Run executes p against a complete input string and returns the outcome.
// It never panics on an ordinary parse failure; panics are reserved for
// programmer misuse (see errors.go).
func (p Parser[T]) Run(input string) ParseResult[T] {
	return p(NewInput(input))
}

// Label replaces the expected message of any failure p produces with name.
// A success is returned unchanged. Labels nest: only the outermost Label
// observed by the caller on failure takes effect, because an inner Label
// already rewrote "expected" by the time an outer one runs.
func (p Parser[T]) Label(name string) Parser[T] {
	return func(in Input) ParseResult[T] {
		r := p(in)
		if r.ok {
			return r
		}
		return Fail[T](name, r.got)
	}
}

// Or runs p; on success it returns that result. On failure it runs other
// against the ORIGINAL input (backtracking). If both fail, the returned
// failure's expected message is "<p's expected> or <other's expected>",
// except that a "<failure>" from Failure is the identity: the other
// side's failure is then returned unchanged.
func (p Parser[T]) Or(other Parser[T]) Parser[T] {
	return func(in Input) ParseResult[T] {
		r := p(in)
		if r.ok {
			return r
		}
		r2 := other(in)
		if r2.ok {
			return r2
		}
		if r.expected == "<failure>" {
			return r2
		}
		if r2.expected == "<failure>" {
			return r
		}
		return Fail[T](r.expected+" or "+r2.expected, r2.got)
	}
}

// Optional turns a failure of p into a success carrying the identity
// element of T's output monoid (empty string, nil slice). It panics with
// *IncompatibleAppendError immediately if T has neither shape; use
// OptionalOr for other output types.
func (p Parser[T]) Optional() Parser[T] {
	m, ok := defaultMonoid[T]()
	if !ok {
		panic(&IncompatibleAppendError{Reason: "Optional has no default identity for this output type; use OptionalOr"})
	}
	return p.OptionalOr(m.Identity)
}

// OptionalOr turns a failure of p into a success carrying zero, consuming
// nothing. It always succeeds.
func (p Parser[T]) OptionalOr(zero T) Parser[T] {
	return func(in Input) ParseResult[T] {
		r := p(in)
		if r.ok {
			return r
		}
		return Succeed(zero, in.String())
	}
}

// Append runs p, then other on the remainder, and combines the two
// outputs with T's default (string or slice) monoid. It panics with
// *IncompatibleAppendError if T has neither shape. If either side fails,
// it returns the first failure unchanged.
func (p Parser[T]) Append(other Parser[T]) Parser[T] {
	m, ok := defaultMonoid[T]()
	if !ok {
		panic(&IncompatibleAppendError{Reason: "Append has no default monoid for this output type; use AppendWith"})
	}
	return p.AppendWith(other, m)
}

// AppendWith is Append with an explicit Monoid, for output types the
// library cannot infer a monoid for on its own.
func (p Parser[T]) AppendWith(other Parser[T], m Monoid[T]) Parser[T] {
	return func(in Input) ParseResult[T] {
		r := p(in)
		if !r.ok {
			return r
		}
		r2 := continueWithResult(r, other)
		return appendResultWith(r, r2, m)
	}
}
