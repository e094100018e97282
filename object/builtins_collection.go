/*
File   : zlang/object/builtins_collection.go
*/
package object

import (
	"fmt"
	"io"
)

// This file's init registers the spec's length (shared across String/Array/
// Object) plus SPEC_FULL.md §1.3's supplemental type/push/pop/keys, which
// mirror the teacher's std/arrays.go family re-expressed over ZLang's
// single Array/Object pair instead of the teacher's Array/List/Tuple/Set
// split.
func init() {
	register("length", builtinLength)
	register("type", builtinType)
	register("push", builtinPush)
	register("pop", builtinPop)
	register("keys", builtinKeys)
}

func builtinLength(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("length expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *String:
		return &Number{Value: float64(len([]rune(v.Value)))}, nil
	case *Array:
		return &Number{Value: float64(len(v.Elements))}, nil
	case *Object:
		return &Number{Value: float64(len(v.Keys))}, nil
	default:
		return nil, fmt.Errorf("length expects a string, array, or object, got %s", args[0].GetType())
	}
}

func builtinType(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("type expects 1 argument, got %d", len(args))
	}
	return &String{Value: string(args[0].GetType())}, nil
}

func builtinPush(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("push expects 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return nil, fmt.Errorf("push expects an array, got %s", args[0].GetType())
	}
	arr.Elements = append(arr.Elements, args[1])
	return arr, nil
}

func builtinPop(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("pop expects 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return nil, fmt.Errorf("pop expects an array, got %s", args[0].GetType())
	}
	if len(arr.Elements) == 0 {
		return nil, fmt.Errorf("pop called on an empty array")
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last, nil
}

func builtinKeys(rt Runtime, w io.Writer, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("keys expects 1 argument, got %d", len(args))
	}
	obj, ok := args[0].(*Object)
	if !ok {
		return nil, fmt.Errorf("keys expects an object, got %s", args[0].GetType())
	}
	elements := make([]Value, len(obj.Keys))
	for i, k := range obj.Keys {
		elements[i] = &String{Value: k}
	}
	return &Array{Elements: elements}, nil
}
