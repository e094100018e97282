/*
File   : zlang/parser/errors.go
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/zlang/token"
)

// Error is a ParseError per spec §7: unexpected token, missing token, or
// invalid assignment target, carrying the position of the offending token.
type Error struct {
	Line     int
	Column   int
	Expected string
	Found    token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] parse error: expected %s, found %q", e.Line, e.Column, e.Expected, e.Found.Literal)
}

func newError(tok token.Token, expectedFormat string, a ...interface{}) *Error {
	return &Error{
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: fmt.Sprintf(expectedFormat, a...),
		Found:    tok,
	}
}
