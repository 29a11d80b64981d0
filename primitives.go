package parsec

import "unicode/utf8"

// Unit is the output type of parsers that carry no meaningful value, such
// as EOF. Its zero value is its only value.
type Unit struct{}

// Pure always succeeds, consumes nothing, and its output is v.
func Pure[T any](v T) Parser[T] {
	return func(in Input) ParseResult[T] {
		return Succeed(v, in.String())
	}
}

// Failure always fails with expected "<failure>" and consumes nothing.
func Failure[T any]() Parser[T] {
	return func(in Input) ParseResult[T] {
		return Fail[T]("<failure>", "")
	}
}

// Satisfy succeeds with the input's first code point if pred accepts it,
// and fails otherwise. It fails with got "EOF" on empty input.
func Satisfy(pred Predicate) Parser[rune] {
	return func(in Input) ParseResult[rune] {
		s := in.String()
		if len(s) == 0 {
			return Fail[rune]("satisfy", "EOF")
		}
		r, size := utf8.DecodeRuneInString(s)
		if !pred(r) {
			return Fail[rune]("satisfy", string(r))
		}
		return Succeed(r, s[size:])
	}
}

// AnySingle matches any single code point; it fails only at EOF.
func AnySingle() Parser[rune] {
	return Satisfy(func(rune) bool { return true }).Label("anySingle")
}

// EOF succeeds with Unit{} iff no input remains; otherwise it fails with
// expected "EOF" and got the first code point.
func EOF() Parser[Unit] {
	return func(in Input) ParseResult[Unit] {
		s := in.String()
		if len(s) == 0 {
			return Succeed(Unit{}, s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		return Fail[Unit]("EOF", string(r))
	}
}

// Char matches exactly the rune c.
func Char(c rune) Parser[rune] {
	return Satisfy(IsEqual(c)).Label("char(" + string(c) + ")")
}

// CharI matches c case-insensitively; the output preserves the actual
// input's case.
func CharI(c rune) Parser[rune] {
	lower := toLower(c)
	upper := toUpper(c)
	return Satisfy(OrPred(IsEqual(lower), IsEqual(upper))).Label("charI(" + string(c) + ")")
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// String matches s verbatim, code-point by code-point, and consumes
// exactly len(s) bytes on success. s must be non-empty; an empty s panics
// with *InvalidArgumentError.
func String(s string) Parser[string] {
	if s == "" {
		panic(&InvalidArgumentError{Func: "String", Reason: "s must be non-empty"})
	}
	return func(in Input) ParseResult[string] {
		input := in.String()
		if len(input) < len(s) || input[:len(s)] != s {
			got := input
			if len(got) > len(s) {
				got = got[:len(s)]
			}
			return Fail[string]("\""+s+"\"", got)
		}
		return Succeed(s, input[len(s):])
	}
}

// Char(c) requires exactly one rune; Char accepts a rune directly so this
// constructor enforces the one-code-point contract when callers build one
// from a string instead.
func CharFromString(s string) Parser[rune] {
	if utf8.RuneCountInString(s) != 1 {
		panic(&InvalidArgumentError{Func: "CharFromString", Reason: "s must contain exactly one code point"})
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char(r)
}

// DigitChar matches a single ASCII decimal digit.
func DigitChar() Parser[rune] { return Satisfy(IsDigit).Label("digitChar") }

// AlphaChar matches a single ASCII letter.
func AlphaChar() Parser[rune] { return Satisfy(IsAlpha).Label("alphaChar") }

// AlphaNumChar matches a single ASCII letter or digit.
func AlphaNumChar() Parser[rune] { return Satisfy(IsAlphaNum).Label("alphaNumChar") }

// UpperChar matches a single ASCII uppercase letter.
func UpperChar() Parser[rune] { return Satisfy(IsUpper).Label("upperChar") }

// LowerChar matches a single ASCII lowercase letter.
func LowerChar() Parser[rune] { return Satisfy(IsLower).Label("lowerChar") }

// HexDigitChar matches a single ASCII hexadecimal digit.
func HexDigitChar() Parser[rune] { return Satisfy(IsHexDigit).Label("hexDigitChar") }

// OctDigitChar matches a single ASCII octal digit.
func OctDigitChar() Parser[rune] { return Satisfy(IsOctDigit).Label("octDigitChar") }

// BinDigitChar matches '0' or '1'.
func BinDigitChar() Parser[rune] { return Satisfy(IsBinDigit).Label("binDigitChar") }

// ControlChar matches a single ASCII control character.
func ControlChar() Parser[rune] { return Satisfy(IsControl).Label("controlChar") }

// PrintChar matches a single ASCII printable character.
func PrintChar() Parser[rune] { return Satisfy(IsPrintable).Label("printChar") }

// PunctuationChar matches a single ASCII punctuation character.
func PunctuationChar() Parser[rune] { return Satisfy(IsPunctuation).Label("punctuationChar") }
