package parsec_test

import (
	"testing"

	"github.com/wbrookfield/parsec"
)

func TestSatisfyEOF(t *testing.T) {
	r := parsec.Satisfy(parsec.IsDigit).Run("")
	if r.IsSuccess() {
		t.Fatal("Satisfy on empty input should fail")
	}
	if r.Got() != "EOF" {
		t.Errorf("Got() = %q, want %q", r.Got(), "EOF")
	}
}

func TestSatisfyMismatch(t *testing.T) {
	r := parsec.Satisfy(parsec.IsDigit).Run("a1")
	if r.IsSuccess() {
		t.Fatal("expected failure")
	}
	if r.Got() != "a" {
		t.Errorf("Got() = %q, want %q", r.Got(), "a")
	}
}

func TestAnySingle(t *testing.T) {
	if r := parsec.AnySingle().Run("xyz"); r.IsFail() || r.Output() != 'x' || r.Remainder() != "yz" {
		t.Errorf("AnySingle: got %+v", r)
	}
	if r := parsec.AnySingle().Run(""); r.IsSuccess() {
		t.Error("AnySingle should fail at EOF")
	}
}

func TestEOFPrimitive(t *testing.T) {
	if r := parsec.EOF().Run(""); r.IsFail() {
		t.Errorf("EOF() on empty input should succeed, got fail: %s", r.Expected())
	}
	r := parsec.EOF().Run("x")
	if r.IsSuccess() {
		t.Fatal("EOF() on non-empty input should fail")
	}
	if r.Expected() != "EOF" || r.Got() != "x" {
		t.Errorf("EOF() failure = expected %q got %q, want expected \"EOF\" got \"x\"", r.Expected(), r.Got())
	}
}

func TestCharPrimitive(t *testing.T) {
	r := parsec.Char('a').Run("abc")
	if r.IsFail() || r.Output() != 'a' {
		t.Errorf("Char('a') on \"abc\" = %+v", r)
	}
}

func TestCharI(t *testing.T) {
	p := parsec.CharI('a')
	if r := p.Run("ABC"); r.IsFail() || r.Output() != 'A' {
		t.Errorf("CharI('a') on \"ABC\" should match and preserve case, got %+v", r)
	}
	if r := p.Run("abc"); r.IsFail() || r.Output() != 'a' {
		t.Errorf("CharI('a') on \"abc\" should match, got %+v", r)
	}
	if r := p.Run("xyz"); r.IsSuccess() {
		t.Errorf("CharI('a') on \"xyz\" should fail, got %+v", r)
	}
}

func TestStringPrimitive(t *testing.T) {
	r := parsec.String("hello").Run("hello, world")
	if r.IsFail() || r.Output() != "hello" || r.Remainder() != ", world" {
		t.Errorf("String(\"hello\"): got %+v", r)
	}
	if r := parsec.String("hello").Run("help"); r.IsSuccess() {
		t.Error("String(\"hello\") on \"help\" should fail")
	}
}

func TestStringEmptyPanics(t *testing.T) {
	defer func() {
		if rec := recover(); rec == nil {
			t.Fatal("expected String(\"\") to panic")
		} else if _, ok := rec.(*parsec.InvalidArgumentError); !ok {
			t.Fatalf("expected *parsec.InvalidArgumentError, got %T", rec)
		}
	}()
	parsec.String("")
}

func TestCharacterClassParsers(t *testing.T) {
	cases := []struct {
		name  string
		p     parsec.Parser[rune]
		input string
		want  rune
	}{
		{"DigitChar", parsec.DigitChar(), "5x", '5'},
		{"AlphaChar", parsec.AlphaChar(), "ax", 'a'},
		{"AlphaNumChar", parsec.AlphaNumChar(), "a1", 'a'},
		{"UpperChar", parsec.UpperChar(), "Ax", 'A'},
		{"LowerChar", parsec.LowerChar(), "ax", 'a'},
		{"HexDigitChar", parsec.HexDigitChar(), "fx", 'f'},
		{"OctDigitChar", parsec.OctDigitChar(), "7x", '7'},
		{"BinDigitChar", parsec.BinDigitChar(), "1x", '1'},
		{"PrintChar", parsec.PrintChar(), "!x", '!'},
		{"PunctuationChar", parsec.PunctuationChar(), "!x", '!'},
	}
	for _, c := range cases {
		r := c.p.Run(c.input)
		if r.IsFail() || r.Output() != c.want {
			t.Errorf("%s.Run(%q) = %+v, want output %q", c.name, c.input, r, c.want)
		}
	}
}

func TestCharFromString(t *testing.T) {
	p := parsec.CharFromString("q")
	if r := p.Run("qz"); r.IsFail() || r.Output() != 'q' {
		t.Errorf("CharFromString(\"q\"): got %+v", r)
	}
}

func TestCharFromStringRejectsMultiRune(t *testing.T) {
	defer func() {
		if rec := recover(); rec == nil {
			t.Fatal("expected CharFromString with multiple runes to panic")
		}
	}()
	parsec.CharFromString("ab")
}
