/*
File   : zlang/object/builtins_string.go
*/
package object

import (
	"fmt"
	"io"
	"strings"
)

// This file's init mirrors the teacher's std/strings.go stringMethods slice,
// trimmed to the core spec's uppercase/lowercase/split and extended per
// SPEC_FULL.md §1.3 with join, split's natural inverse.
func init() {
	register("uppercase", builtinUppercase)
	register("lowercase", builtinLowercase)
	register("split", builtinSplit)
	register("join", builtinJoin)
}

func builtinUppercase(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("uppercase expects 1 argument, got %d", len(args))
	}
	s, ok := args[0].(*String)
	if !ok {
		return nil, fmt.Errorf("uppercase expects a string, got %s", args[0].GetType())
	}
	return &String{Value: strings.ToUpper(s.Value)}, nil
}

func builtinLowercase(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("lowercase expects 1 argument, got %d", len(args))
	}
	s, ok := args[0].(*String)
	if !ok {
		return nil, fmt.Errorf("lowercase expects a string, got %s", args[0].GetType())
	}
	return &String{Value: strings.ToLower(s.Value)}, nil
}

func builtinSplit(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("split expects 2 arguments, got %d", len(args))
	}
	s, ok1 := args[0].(*String)
	sep, ok2 := args[1].(*String)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("split expects two strings")
	}
	parts := strings.Split(s.Value, sep.Value)
	elements := make([]Value, len(parts))
	for i, p := range parts {
		elements[i] = &String{Value: p}
	}
	return &Array{Elements: elements}, nil
}

func builtinJoin(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("join expects 2 arguments, got %d", len(args))
	}
	arr, ok1 := args[0].(*Array)
	sep, ok2 := args[1].(*String)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("join expects (array, string)")
	}
	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		parts[i] = el.ToString()
	}
	return &String{Value: strings.Join(parts, sep.Value)}, nil
}
