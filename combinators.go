package parsec

// This file holds the combinator layer: higher-order constructions defined
// purely in terms of Parser[T] and ParseResult[T]. Several combinators
// change the output type as they run (Map, Bind, Sequence, Apply,
// ThenIgnore, …) — Go does not allow a method to introduce a type
// parameter beyond its receiver's, so those are free functions taking the
// parser(s) as arguments, the shape the generics-adjacent standard packages
// (slices, maps) use for cross-type transforms. Combinators whose output
// type never changes (Or, Optional, Append, …) remain methods on Parser,
// see parser.go.

// Map transforms p's output on success; a failure passes through
// unchanged.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) ParseResult[U] {
		return mapResult(p(in), f)
	}
}

// Bind is the monadic bind: on success it applies f to the output and runs
// the resulting parser on the remainder; on failure it returns the
// original failure unchanged.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(in Input) ParseResult[U] {
		r := p(in)
		if !r.ok {
			return ParseResult[U]{ok: false, expected: r.expected, got: r.got}
		}
		return f(r.output)(NewInput(r.remainder))
	}
}

// Sequence runs a, then b on the remainder, and returns b's output. It is
// equivalent to Bind(a, func(_ T) Parser[U] { return b }).
func Sequence[T, U any](a Parser[T], b Parser[U]) Parser[U] {
	return Bind(a, func(T) Parser[U] { return b })
}

// KeepFirst runs a, then b on the remainder, and keeps a's output.
func KeepFirst[T, U any](a Parser[T], b Parser[U]) Parser[T] {
	return Bind(a, func(x T) Parser[T] {
		return Sequence(b, Pure(x))
	})
}

// KeepSecond runs a, then b on the remainder, and keeps b's output.
func KeepSecond[T, U any](a Parser[T], b Parser[U]) Parser[U] {
	return Sequence(a, b).Label("keepSecond")
}

// Either is a.Or(b).
func Either[T any](a, b Parser[T]) Parser[T] {
	return a.Or(b)
}

// Any tries each parser in order, backtracking to the original input
// between attempts, and returns the first success. With zero parsers it
// always fails.
func Any[T any](ps ...Parser[T]) Parser[T] {
	acc := Failure[T]()
	for _, p := range ps {
		acc = acc.Or(p)
	}
	return acc
}

// Choice is an alias for Any.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return Any(ps...)
}

// Append is the free-function form of Parser.Append.
func Append[T any](a, b Parser[T]) Parser[T] {
	return a.Append(b)
}

// Assemble left-folds Append over ps. It requires at least one parser and
// panics with *InvalidArgumentError otherwise.
func Assemble[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic(&InvalidArgumentError{Func: "Assemble", Reason: "requires at least one parser"})
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = acc.Append(p)
	}
	return acc
}

// Collect is like Assemble but each parser's output is first wrapped in a
// singleton slice, so the overall output is []T rather than a monoidal
// merge of T itself.
func Collect[T any](ps ...Parser[T]) Parser[[]T] {
	if len(ps) == 0 {
		panic(&InvalidArgumentError{Func: "Collect", Reason: "requires at least one parser"})
	}
	wrapped := make([]Parser[[]T], len(ps))
	for i, p := range ps {
		wrapped[i] = Map(p, func(x T) []T { return []T{x} })
	}
	acc := wrapped[0]
	for _, p := range wrapped[1:] {
		acc = acc.Append(p)
	}
	return acc
}

// Optional is the free-function form of Parser.Optional.
func Optional[T any](p Parser[T]) Parser[T] {
	return p.Optional()
}

// Many runs p zero or more times and returns the outputs as a slice. It
// never fails.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Some(p).Or(Pure([]T(nil)))
}

// Some runs p one or more times, iteratively (not via recursion) so long
// inputs do not grow the call stack, and returns the outputs as a slice.
// It fails if p does not match at least once. A second or later success
// of p that consumes no input makes Some (and thus Many) panic with
// *NonProgressingError rather than loop forever.
func Some[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ParseResult[[]T] {
		first := p(in)
		if !first.ok {
			return Fail[[]T](first.expected, first.got)
		}
		out := []T{first.output}
		cur := first.remainder
		for {
			r := p(NewInput(cur))
			if !r.ok {
				break
			}
			if r.remainder == cur {
				panic(&NonProgressingError{Combinator: "Some"})
			}
			out = append(out, r.output)
			cur = r.remainder
		}
		return Succeed(out, cur)
	}
}

// AtLeastOne runs p one or more times and merges the outputs with T's
// default monoid. Use AtLeastOneWith for output types without one.
func AtLeastOne[T any](p Parser[T]) Parser[T] {
	m, ok := defaultMonoid[T]()
	if !ok {
		panic(&IncompatibleAppendError{Reason: "AtLeastOne has no default monoid for this output type; use AtLeastOneWith"})
	}
	return AtLeastOneWith(p, m)
}

// AtLeastOneWith is AtLeastOne with an explicit Monoid.
func AtLeastOneWith[T any](p Parser[T], m Monoid[T]) Parser[T] {
	return func(in Input) ParseResult[T] {
		first := p(in)
		if !first.ok {
			return first
		}
		acc := first.output
		cur := first.remainder
		for {
			r := p(NewInput(cur))
			if !r.ok {
				break
			}
			if r.remainder == cur {
				panic(&NonProgressingError{Combinator: "AtLeastOne"})
			}
			acc = m.Combine(acc, r.output)
			cur = r.remainder
		}
		return Succeed(acc, cur)
	}
}

// Repeat runs p exactly n times, merging the outputs with T's default
// monoid. n must be >= 0; Repeat(0, p) is defined as Pure(identity) and
// consumes nothing.
func Repeat[T any](n int, p Parser[T]) Parser[T] {
	if n < 0 {
		panic(&InvalidArgumentError{Func: "Repeat", Reason: "n must be >= 0"})
	}
	m, ok := defaultMonoid[T]()
	if n == 0 {
		var zero T
		if ok {
			zero = m.Identity
		}
		return Pure(zero)
	}
	if !ok {
		panic(&IncompatibleAppendError{Reason: "Repeat has no default monoid for this output type; use RepeatWith"})
	}
	return RepeatWith(n, p, m)
}

// RepeatWith is Repeat with an explicit Monoid.
func RepeatWith[T any](n int, p Parser[T], m Monoid[T]) Parser[T] {
	if n < 0 {
		panic(&InvalidArgumentError{Func: "Repeat", Reason: "n must be >= 0"})
	}
	if n == 0 {
		return Pure(m.Identity)
	}
	return func(in Input) ParseResult[T] {
		r := p(in)
		if !r.ok {
			return r
		}
		acc := r.output
		cur := r.remainder
		for i := 1; i < n; i++ {
			r = p(NewInput(cur))
			if !r.ok {
				return r
			}
			acc = m.Combine(acc, r.output)
			cur = r.remainder
		}
		return Succeed(acc, cur)
	}
}

// RepeatList runs p exactly n times and returns the outputs as a slice.
// n must be >= 0; RepeatList(0, p) succeeds with an empty slice and
// consumes nothing.
func RepeatList[T any](n int, p Parser[T]) Parser[[]T] {
	if n < 0 {
		panic(&InvalidArgumentError{Func: "RepeatList", Reason: "n must be >= 0"})
	}
	return func(in Input) ParseResult[[]T] {
		out := make([]T, 0, n)
		cur := in.String()
		for i := 0; i < n; i++ {
			r := p(NewInput(cur))
			if !r.ok {
				return Fail[[]T](r.expected, r.got)
			}
			out = append(out, r.output)
			cur = r.remainder
		}
		return Succeed(out, cur)
	}
}

// Between parses open, then m, then close, and returns m's output.
func Between[O, M, C any](open Parser[O], m Parser[M], close Parser[C]) Parser[M] {
	return KeepSecond(open, KeepFirst(m, close))
}

// SepBy1 parses one or more p, separated by sep, and returns the p outputs
// as a slice. It fails if p does not match at least once.
func SepBy1[S, T any](sep Parser[S], p Parser[T]) Parser[[]T] {
	return func(in Input) ParseResult[[]T] {
		first := p(in)
		if !first.ok {
			return Fail[[]T](first.expected, first.got)
		}
		out := []T{first.output}
		cur := first.remainder
		for {
			afterSep := sep(NewInput(cur))
			if !afterSep.ok {
				break
			}
			next := p(NewInput(afterSep.remainder))
			if !next.ok {
				break
			}
			if next.remainder == cur {
				panic(&NonProgressingError{Combinator: "SepBy1"})
			}
			out = append(out, next.output)
			cur = next.remainder
		}
		return Succeed(out, cur)
	}
}

// SepBy parses zero or more p, separated by sep. It never fails.
func SepBy[S, T any](sep Parser[S], p Parser[T]) Parser[[]T] {
	return SepBy1(sep, p).Or(Pure([]T(nil)))
}

// NotFollowedBy succeeds with an empty string and consumes nothing iff p
// fails at the current position; if p succeeds, NotFollowedBy fails with
// expected "notFollowedBy".
func NotFollowedBy[T any](p Parser[T]) Parser[string] {
	return func(in Input) ParseResult[string] {
		r := p(in)
		if r.ok {
			got := in.String()
			if len(got) > 20 {
				got = got[:20]
			}
			return Fail[string]("notFollowedBy", got)
		}
		return Succeed("", in.String())
	}
}

// ThenIgnore sequences other after p but keeps p's output.
func ThenIgnore[T, U any](p Parser[T], other Parser[U]) Parser[T] {
	return KeepFirst(p, other)
}

// NotFollowedByAfter succeeds with p's output iff, after consuming p,
// other would fail at the new remainder. It never consumes what other
// would match — on success the remainder is always p's remainder, not
// other's.
func NotFollowedByAfter[T, U any](p Parser[T], other Parser[U]) Parser[T] {
	return func(in Input) ParseResult[T] {
		r := p(in)
		if !r.ok {
			return r
		}
		lookahead := other(NewInput(r.remainder))
		if lookahead.ok {
			return Fail[T]("notFollowedBy", r.remainder)
		}
		return r
	}
}

// Apply runs pf (a parser of a unary function), then pa on the remainder,
// and applies the parsed function to the parsed argument.
func Apply[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return Bind(pf, func(f func(A) B) Parser[B] {
		return Map(pa, f)
	})
}
