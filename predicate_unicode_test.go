package parsec_test

import (
	"testing"

	"github.com/wbrookfield/parsec"
)

func TestUnicodeAlphaChar(t *testing.T) {
	p := parsec.UnicodeAlphaChar()
	if r := p.Run("é"); r.IsFail() || r.Output() != 'é' {
		t.Errorf("UnicodeAlphaChar should accept 'é', got %+v", r)
	}
	if r := p.Run("Ω"); r.IsFail() || r.Output() != 'Ω' {
		t.Errorf("UnicodeAlphaChar should accept 'Ω', got %+v", r)
	}
	if r := p.Run("5"); r.IsSuccess() {
		t.Errorf("UnicodeAlphaChar should reject '5', got %+v", r)
	}
}

func TestUnicodeDigitChar(t *testing.T) {
	p := parsec.UnicodeDigitChar()
	if r := p.Run("٣"); r.IsFail() {
		t.Errorf("UnicodeDigitChar should accept Arabic-indic digit three, got fail: %s", r.Expected())
	}
}

func TestUnicodeAlphaNumChar(t *testing.T) {
	p := parsec.UnicodeAlphaNumChar()
	if r := p.Run("é"); r.IsFail() {
		t.Error("UnicodeAlphaNumChar should accept a letter")
	}
	if r := p.Run("5"); r.IsFail() {
		t.Error("UnicodeAlphaNumChar should accept a digit")
	}
	if r := p.Run(" "); r.IsSuccess() {
		t.Error("UnicodeAlphaNumChar should reject a space")
	}
}

func TestASCIIAlphaCharRejectsUnicode(t *testing.T) {
	r := parsec.AlphaChar().Run("é")
	if r.IsSuccess() {
		t.Errorf("ASCII AlphaChar must not accept non-ASCII letters, got %+v", r)
	}
}
