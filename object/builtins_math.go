/*
File   : zlang/object/builtins_math.go
*/
package object

import (
	"fmt"
	"io"
	"math"
	"math/rand"
)

// mathMethods mirrors the teacher's std/math.go mathMethods slice, trimmed
// to ZLang's single Number type and extended per SPEC_FULL.md §1.3 with
// floor/ceil/round/min/max/pow alongside the core spec's sqrt/abs/random.
var mathMethods = []struct {
	name string
	fn   CallbackFunc
}{
	{"sqrt", builtinSqrt},
	{"abs", builtinAbs},
	{"random", builtinRandom},
	{"floor", builtinFloor},
	{"ceil", builtinCeil},
	{"round", builtinRound},
	{"min", builtinMin},
	{"max", builtinMax},
	{"pow", builtinPow},
}

func init() {
	for _, m := range mathMethods {
		register(m.name, m.fn)
	}
}

func number(v Value) (float64, bool) {
	n, ok := v.(*Number)
	if !ok {
		return 0, false
	}
	return n.Value, true
}

func builtinSqrt(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sqrt expects 1 argument, got %d", len(args))
	}
	n, ok := number(args[0])
	if !ok {
		return nil, fmt.Errorf("sqrt expects a number, got %s", args[0].GetType())
	}
	// Negative input yields NaN, not an error (spec §6: "NaN for negatives").
	return &Number{Value: math.Sqrt(n)}, nil
}

func builtinAbs(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("abs expects 1 argument, got %d", len(args))
	}
	n, ok := number(args[0])
	if !ok {
		return nil, fmt.Errorf("abs expects a number, got %s", args[0].GetType())
	}
	return &Number{Value: math.Abs(n)}, nil
}

func builtinRandom(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("random expects 0 arguments, got %d", len(args))
	}
	return &Number{Value: rand.Float64()}, nil
}

func builtinFloor(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("floor expects 1 argument, got %d", len(args))
	}
	n, ok := number(args[0])
	if !ok {
		return nil, fmt.Errorf("floor expects a number, got %s", args[0].GetType())
	}
	return &Number{Value: math.Floor(n)}, nil
}

func builtinCeil(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("ceil expects 1 argument, got %d", len(args))
	}
	n, ok := number(args[0])
	if !ok {
		return nil, fmt.Errorf("ceil expects a number, got %s", args[0].GetType())
	}
	return &Number{Value: math.Ceil(n)}, nil
}

func builtinRound(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("round expects 1 argument, got %d", len(args))
	}
	n, ok := number(args[0])
	if !ok {
		return nil, fmt.Errorf("round expects a number, got %s", args[0].GetType())
	}
	return &Number{Value: math.Round(n)}, nil
}

func builtinMin(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("min expects 2 arguments, got %d", len(args))
	}
	a, ok1 := number(args[0])
	b, ok2 := number(args[1])
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("min expects two numbers")
	}
	return &Number{Value: math.Min(a, b)}, nil
}

func builtinMax(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("max expects 2 arguments, got %d", len(args))
	}
	a, ok1 := number(args[0])
	b, ok2 := number(args[1])
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("max expects two numbers")
	}
	return &Number{Value: math.Max(a, b)}, nil
}

func builtinPow(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
	}
	base, ok1 := number(args[0])
	exp, ok2 := number(args[1])
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("pow expects two numbers")
	}
	return &Number{Value: math.Pow(base, exp)}, nil
}
