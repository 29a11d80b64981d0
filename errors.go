package parsec

import "fmt"

// Programmer errors. These are never returned from Run; they are raised by
// panic at construction or execution time when a caller misuses the API,
// following the same contract that the standard library's regexp.MustCompile
// or text/template.Must apply to malformed input that is a coding mistake,
// not a runtime condition.

// InvalidArgumentError reports a constructor called with an argument outside
// its documented domain (char with a multi-rune string, repeat with n<0,
// assemble with zero parsers, and so on).
type InvalidArgumentError struct {
	Func   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("parsec: %s: %s", e.Func, e.Reason)
}

// WrongVariantError reports a ParseResult accessor called on the variant
// that does not define it (Output/Remainder on a Fail). Expected/Got on a
// Succeed do not raise it; they return "".
type WrongVariantError struct {
	Accessor string
	Variant  string
}

func (e *WrongVariantError) Error() string {
	return fmt.Sprintf("parsec: %s called on a %s result", e.Accessor, e.Variant)
}

// IncompatibleAppendError reports an Append/append call whose two outputs
// are not combinable under any known output monoid.
type IncompatibleAppendError struct {
	Reason string
}

func (e *IncompatibleAppendError) Error() string {
	return fmt.Sprintf("parsec: incompatible append: %s", e.Reason)
}

// UnboundRecursionError reports a recursive parser run before Recurse bound
// its body.
type UnboundRecursionError struct{}

func (e *UnboundRecursionError) Error() string {
	return "parsec: recursive parser run before its body was bound"
}

// DoubleBindError reports a second call to Recurse on the same cell.
type DoubleBindError struct{}

func (e *DoubleBindError) Error() string {
	return "parsec: recurse called twice on the same recursive cell"
}

// NonProgressingError reports a repetition combinator (Many, Some,
// AtLeastOne, SepBy, SepBy1) whose inner parser, on a second or later
// repetition, succeeded without consuming any input, which would otherwise
// loop forever.
type NonProgressingError struct {
	Combinator string
}

func (e *NonProgressingError) Error() string {
	return fmt.Sprintf("parsec: %s: inner parser succeeded without consuming input", e.Combinator)
}
