package parsec

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// alphaNumTable merges the letter and number range tables once so
// IsUnicodeAlphaNum does not have to check two tables per call.
var alphaNumTable = rangetable.Merge(unicode.Letter, unicode.Number)

// IsUnicodeAlpha reports whether r is a letter under Unicode's General
// Category, not just the ASCII range IsAlpha covers.
func IsUnicodeAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

// IsUnicodeDigit reports whether r is a decimal digit under Unicode's
// General Category, not just the ASCII range IsDigit covers.
func IsUnicodeDigit(r rune) bool {
	return unicode.IsDigit(r)
}

// IsUnicodeAlphaNum reports whether r is a letter or number under
// Unicode's General Category.
func IsUnicodeAlphaNum(r rune) bool {
	return unicode.Is(alphaNumTable, r)
}

// UnicodeAlphaChar matches a single Unicode letter.
func UnicodeAlphaChar() Parser[rune] {
	return Satisfy(IsUnicodeAlpha).Label("unicodeAlphaChar")
}

// UnicodeDigitChar matches a single Unicode decimal digit.
func UnicodeDigitChar() Parser[rune] {
	return Satisfy(IsUnicodeDigit).Label("unicodeDigitChar")
}

// UnicodeAlphaNumChar matches a single Unicode letter or number.
func UnicodeAlphaNumChar() Parser[rune] {
	return Satisfy(IsUnicodeAlphaNum).Label("unicodeAlphaNumChar")
}
