package parser

import (
	"fmt"
	"strings"

	"github.com/golangee/swizzle/token"
)

// SyntaxError is a grammar violation tied to the offending token's
// source position: a bad literal, an out-of-range bitfield, a
// duplicate declaration, an unresolved type reference.
type SyntaxError struct {
	File    token.FileInfo
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Error is an internal invariant violation — a stack-top precondition
// failed — distinguishable from a SyntaxError. It is also returned when
// the token stream ends inside an unfinished construct, where there is
// no offending token to carry a position.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "parser: " + e.Message
}

// UnexpectedTokenError is raised when a token appeared that no grammar
// rule at the current state accepted.
type UnexpectedTokenError struct {
	Got      token.Info
	Expected []token.Type
}

func newUnexpectedTokenError(got token.Info, expected ...token.Type) error {
	return &UnexpectedTokenError{Got: got, Expected: expected}
}

func (e *UnexpectedTokenError) Error() string {
	names := make([]string, len(e.Expected))
	for i, t := range e.Expected {
		names[i] = t.String()
	}

	return fmt.Sprintf("%s: unexpected %s %q, expected %s",
		e.Got.File, e.Got.Token.Type, e.Got.Token.Lexeme, strings.Join(names, " or "))
}

func syntaxErrorf(pos token.FileInfo, format string, args ...any) error {
	return &SyntaxError{File: pos, Message: fmt.Sprintf(format, args...)}
}

func bugf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
