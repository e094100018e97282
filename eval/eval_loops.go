/*
File   : zlang/eval/eval_loops.go
*/
package eval

import (
	"github.com/akashmaji946/zlang/ast"
	"github.com/akashmaji946/zlang/environment"
	"github.com/akashmaji946/zlang/object"
	"github.com/akashmaji946/zlang/token"
)

// execWhile implements `lowkey (c) { B }`: while c is truthy, execute B in a
// fresh child environment per iteration (spec §4.3).
func (e *Evaluator) execWhile(s *ast.While, env *environment.Environment) (object.Value, flow, error) {
	for {
		cond, err := e.evalExpr(s.Condition, env)
		if err != nil {
			return nil, flowNormal, err
		}
		if !object.Truthy(cond) {
			return object.NullValue, flowNormal, nil
		}
		val, f, err := e.execBlock(s.Body, environment.Enclose(env))
		if err != nil {
			return nil, flowNormal, err
		}
		if f == flowReturn {
			return val, flowReturn, nil
		}
	}
}

// execForEach implements `highkey (x in e) { B }`: iterate an Array's
// elements, an Object's values in insertion order, or a String's characters,
// binding x fresh each iteration (spec §4.3).
func (e *Evaluator) execForEach(s *ast.ForEach, env *environment.Environment) (object.Value, flow, error) {
	iterable, err := e.evalExpr(s.Iterable, env)
	if err != nil {
		return nil, flowNormal, err
	}
	items, err := iterableElements(s.Token, iterable)
	if err != nil {
		return nil, flowNormal, err
	}
	for _, item := range items {
		child := environment.Enclose(env)
		child.Bind(s.Name, item)
		val, f, err := e.execBlock(s.Body, child)
		if err != nil {
			return nil, flowNormal, err
		}
		if f == flowReturn {
			return val, flowReturn, nil
		}
	}
	return object.NullValue, flowNormal, nil
}

func iterableElements(tok token.Token, v object.Value) ([]object.Value, error) {
	switch x := v.(type) {
	case *object.Array:
		return x.Elements, nil
	case *object.Object:
		values := make([]object.Value, len(x.Keys))
		for i, k := range x.Keys {
			val, _ := x.Get(k)
			values[i] = val
		}
		return values, nil
	case *object.String:
		runes := []rune(x.Value)
		values := make([]object.Value, len(runes))
		for i, r := range runes {
			values[i] = &object.String{Value: string(r)}
		}
		return values, nil
	default:
		return nil, newRuntimeError(tok, "cannot iterate over value of type %s", v.GetType())
	}
}
