// Package parsectest holds thin assertion helpers over *testing.T for
// checking a Parser's outcome against an input string.
package parsectest

import (
	"testing"

	"github.com/wbrookfield/parsec"
)

// AssertParse fails the test unless p.Run(input) succeeds with output
// equal to want.
func AssertParse[T comparable](t *testing.T, want T, p parsec.Parser[T], input string) {
	t.Helper()
	r := p.Run(input)
	if r.IsFail() {
		t.Fatalf("expected parse of %q to succeed with %v, but it failed: expected %q, got %q",
			input, want, r.Expected(), r.Got())
	}
	if got := r.Output(); got != want {
		t.Fatalf("parse of %q: got output %v, want %v", input, got, want)
	}
}

// AssertNotParse fails the test unless p.Run(input) fails.
func AssertNotParse[T any](t *testing.T, p parsec.Parser[T], input string) {
	t.Helper()
	r := p.Run(input)
	if r.IsSuccess() {
		t.Fatalf("expected parse of %q to fail, but it succeeded with %v and remainder %q",
			input, r.Output(), r.Remainder())
	}
}

// AssertRemainder fails the test unless p.Run(input) succeeds with a
// remainder equal to want.
func AssertRemainder[T any](t *testing.T, want string, p parsec.Parser[T], input string) {
	t.Helper()
	r := p.Run(input)
	if r.IsFail() {
		t.Fatalf("expected parse of %q to succeed, but it failed: expected %q, got %q",
			input, r.Expected(), r.Got())
	}
	if got := r.Remainder(); got != want {
		t.Fatalf("parse of %q: got remainder %q, want %q", input, got, want)
	}
}
