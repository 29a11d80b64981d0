// Package parsec is a small parser-combinator toolkit: primitive parsers
// and the combinators (alternative, sequencing, binding, repetition,
// labelling, recursion) needed to assemble them into parsers for textual
// grammars — configuration formats, DSLs, protocol framing, expression
// languages.
//
// A Parser[T] wraps a pure function from an Input to a ParseResult[T].
// Combinators build new Parser values from existing ones; evaluation only
// happens when Run is called. Backtracking is universal: Or, Optional,
// Many and SepBy always retry an alternative against the original input at
// that combinator's call site, so there is no "cut" primitive in this
// package.
package parsec
