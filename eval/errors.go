/*
File   : zlang/eval/errors.go
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/zlang/token"
)

// RuntimeError is spec §7's third error kind: unknown identifier, arity
// mismatch, type mismatch, index out of range, assignment to unbound name,
// member access on non-object, iteration over non-iterable. It carries the
// position of the statement/expression that triggered it.
type RuntimeError struct {
	Line    int
	Column  int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%d:%d] runtime error: %s", e.Line, e.Column, e.Message)
}

func newRuntimeError(tok token.Token, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{Line: tok.Line, Column: tok.Column, Message: fmt.Sprintf(format, a...)}
}
