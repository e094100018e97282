/*
File   : zlang/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/zlang/ast"
	"github.com/akashmaji946/zlang/environment"
	"github.com/akashmaji946/zlang/function"
	"github.com/akashmaji946/zlang/object"
)

// execStatement dispatches on the statement's concrete type per spec §4.3.
// It returns the statement's value (the expression's value for expression
// statements, the last statement's value for blocks and if/else, Null
// otherwise, including for print), a flow discriminant, and an error.
func (e *Evaluator) execStatement(stmt ast.Stmt, env *environment.Environment) (object.Value, flow, error) {
	switch s := stmt.(type) {
	case *ast.Binding:
		val, err := e.evalExpr(s.Value, env)
		if err != nil {
			return nil, flowNormal, err
		}
		env.Bind(s.Name, val)
		return object.NullValue, flowNormal, nil

	case *ast.Assignment:
		return e.execAssignment(s, env)

	case *ast.ExpressionStatement:
		val, err := e.evalExpr(s.Expr, env)
		if err != nil {
			return nil, flowNormal, err
		}
		return val, flowNormal, nil

	case *ast.FunctionDeclaration:
		fn := &function.Function{Name: s.Name, Params: s.Params, Body: s.Body, Env: env}
		env.Bind(s.Name, fn)
		return object.NullValue, flowNormal, nil

	case *ast.Return:
		if s.Value == nil {
			return object.NullValue, flowReturn, nil
		}
		val, err := e.evalExpr(s.Value, env)
		if err != nil {
			return nil, flowNormal, err
		}
		return val, flowReturn, nil

	case *ast.Print:
		val, err := e.evalExpr(s.Value, env)
		if err != nil {
			return nil, flowNormal, err
		}
		fmt.Fprintln(e.Out, val.ToString())
		return object.NullValue, flowNormal, nil

	case *ast.Block:
		return e.execBlock(s, environment.Enclose(env))

	case *ast.If:
		return e.execIf(s, env)

	case *ast.While:
		return e.execWhile(s, env)

	case *ast.ForEach:
		return e.execForEach(s, env)

	default:
		return nil, flowNormal, newRuntimeError(stmt.Pos(), "unsupported statement")
	}
}

func (e *Evaluator) execAssignment(s *ast.Assignment, env *environment.Environment) (object.Value, flow, error) {
	val, err := e.evalExpr(s.Value, env)
	if err != nil {
		return nil, flowNormal, err
	}

	switch s.Target.Kind {
	case ast.LvalueIdent:
		if !env.Assign(s.Target.Name, val) {
			return nil, flowNormal, newRuntimeError(s.Token, "assignment to unbound name %q", s.Target.Name)
		}

	case ast.LvalueMember:
		target, err := e.evalExpr(s.Target.Object, env)
		if err != nil {
			return nil, flowNormal, err
		}
		o, ok := target.(*object.Object)
		if !ok {
			return nil, flowNormal, newRuntimeError(s.Token, "member assignment target is not an object, got %s", target.GetType())
		}
		o.Set(s.Target.Property, val)

	case ast.LvalueIndex:
		target, err := e.evalExpr(s.Target.Object, env)
		if err != nil {
			return nil, flowNormal, err
		}
		idx, err := e.evalExpr(s.Target.Index, env)
		if err != nil {
			return nil, flowNormal, err
		}
		if err := assignIndex(s.Token, target, idx, val); err != nil {
			return nil, flowNormal, err
		}
	}
	return object.NullValue, flowNormal, nil
}
