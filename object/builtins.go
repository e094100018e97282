/*
File   : zlang/object/builtins.go
*/
package object

import "io"

// Runtime is the callback surface a Builtin needs from the evaluator: the
// ability to invoke a ZLang function value (not currently exercised by any
// built-in, but kept so future built-ins like a user-supplied comparator
// can call back into ZLang the way the teacher's std.Runtime lets
// csort_array do). The configured output writer is not part of Runtime; it
// is passed to each CallbackFunc as its own argument.
type Runtime interface {
	CallFunction(fn Value, args ...Value) (Value, error)
}

// CallbackFunc is a built-in function's implementation. It receives the
// Runtime (for callbacks), the configured output writer, and the already-
// evaluated argument list, and returns a Value or an error describing a
// runtime failure (arity/type mismatch, etc.) per spec §7.
type CallbackFunc func(rt Runtime, w io.Writer, args []Value) (Value, error)

// Builtin pairs a built-in's name with its implementation. Built-ins are
// registered into the root environment at startup and are shadowable, like
// any other binding (spec §6).
type Builtin struct {
	Name     string
	Callback CallbackFunc
}

func (b *Builtin) GetType() Type    { return BuiltinType }
func (b *Builtin) ToString() string { return "builtin(" + b.Name + ")" }
func (b *Builtin) ToObject() string { return "<builtin(" + b.Name + ")>" }

// Builtins collects every registered built-in function. Each builtins_*.go
// file appends its family to this slice from an init(), mirroring the
// teacher's std/*.go per-concern split (arrays.go, strings.go, math.go).
var Builtins []*Builtin

func register(name string, fn CallbackFunc) {
	Builtins = append(Builtins, &Builtin{Name: name, Callback: fn})
}
