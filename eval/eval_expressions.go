/*
File   : zlang/eval/eval_expressions.go
*/
package eval

import (
	"math"

	"github.com/akashmaji946/zlang/ast"
	"github.com/akashmaji946/zlang/environment"
	"github.com/akashmaji946/zlang/function"
	"github.com/akashmaji946/zlang/object"
	"github.com/akashmaji946/zlang/token"
)

func (e *Evaluator) evalExpr(expr ast.Expr, env *environment.Environment) (object.Value, error) {
	switch ex := expr.(type) {
	case *ast.NumberLiteral:
		return &object.Number{Value: ex.Value}, nil

	case *ast.StringLiteral:
		return &object.String{Value: ex.Value}, nil

	case *ast.BoolLiteral:
		return &object.Bool{Value: ex.Value}, nil

	case *ast.Identifier:
		v, ok := env.LookUp(ex.Name)
		if !ok {
			return nil, newRuntimeError(ex.Token, "unbound identifier %q", ex.Name)
		}
		return v, nil

	case *ast.ArrayLiteral:
		elements := make([]object.Value, len(ex.Elements))
		for i, el := range ex.Elements {
			v, err := e.evalExpr(el, env)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return &object.Array{Elements: elements}, nil

	case *ast.ObjectLiteral:
		obj := object.NewObject()
		for _, f := range ex.Fields {
			v, err := e.evalExpr(f.Value, env)
			if err != nil {
				return nil, err
			}
			obj.Set(f.Key, v)
		}
		return obj, nil

	case *ast.Unary:
		return e.evalUnary(ex, env)

	case *ast.Binary:
		return e.evalBinary(ex, env)

	case *ast.Member:
		return e.evalMember(ex, env)

	case *ast.Index:
		return e.evalIndex(ex, env)

	case *ast.Call:
		return e.evalCall(ex, env)

	default:
		return nil, newRuntimeError(expr.Pos(), "unsupported expression")
	}
}

func (e *Evaluator) evalUnary(ex *ast.Unary, env *environment.Environment) (object.Value, error) {
	operand, err := e.evalExpr(ex.Operand, env)
	if err != nil {
		return nil, err
	}
	switch ex.Operator {
	case token.BANG:
		return &object.Bool{Value: !object.Truthy(operand)}, nil
	case token.MINUS:
		n, ok := operand.(*object.Number)
		if !ok {
			return nil, newRuntimeError(ex.Token, "unary '-' requires a number, got %s", operand.GetType())
		}
		return &object.Number{Value: -n.Value}, nil
	default:
		return nil, newRuntimeError(ex.Token, "unsupported unary operator %s", ex.Operator)
	}
}

func (e *Evaluator) evalBinary(ex *ast.Binary, env *environment.Environment) (object.Value, error) {
	// && and || short-circuit and return the determining operand, not
	// necessarily a Bool (spec §4.3).
	switch ex.Operator {
	case token.AND:
		left, err := e.evalExpr(ex.Left, env)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(left) {
			return left, nil
		}
		return e.evalExpr(ex.Right, env)
	case token.OR:
		left, err := e.evalExpr(ex.Left, env)
		if err != nil {
			return nil, err
		}
		if object.Truthy(left) {
			return left, nil
		}
		return e.evalExpr(ex.Right, env)
	}

	left, err := e.evalExpr(ex.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(ex.Right, env)
	if err != nil {
		return nil, err
	}

	switch ex.Operator {
	case token.PLUS:
		return evalPlus(ex.Token, left, right)
	case token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return evalArith(ex.Token, ex.Operator, left, right)
	case token.LT, token.LE, token.GT, token.GE:
		return evalCompare(ex.Token, ex.Operator, left, right)
	case token.EQ:
		return &object.Bool{Value: object.Equal(left, right)}, nil
	case token.NEQ:
		return &object.Bool{Value: !object.Equal(left, right)}, nil
	default:
		return nil, newRuntimeError(ex.Token, "unsupported binary operator %s", ex.Operator)
	}
}

// evalPlus implements spec §4.3's overload: numeric addition, or
// stringification-and-concatenation when either operand is a String.
func evalPlus(tok token.Token, left, right object.Value) (object.Value, error) {
	if ls, ok := left.(*object.String); ok {
		return &object.String{Value: ls.Value + right.ToString()}, nil
	}
	if rs, ok := right.(*object.String); ok {
		return &object.String{Value: left.ToString() + rs.Value}, nil
	}
	ln, ok1 := left.(*object.Number)
	rn, ok2 := right.(*object.Number)
	if !ok1 || !ok2 {
		return nil, newRuntimeError(tok, "'+' requires two numbers or a string operand, got %s and %s", left.GetType(), right.GetType())
	}
	return &object.Number{Value: ln.Value + rn.Value}, nil
}

// evalArith implements - * / % , all requiring Number operands. Division by
// zero follows IEEE-754 (±Inf/NaN), not a runtime error (spec §4.3).
func evalArith(tok token.Token, op token.Type, left, right object.Value) (object.Value, error) {
	ln, ok1 := left.(*object.Number)
	rn, ok2 := right.(*object.Number)
	if !ok1 || !ok2 {
		return nil, newRuntimeError(tok, "%s requires two numbers, got %s and %s", op, left.GetType(), right.GetType())
	}
	switch op {
	case token.MINUS:
		return &object.Number{Value: ln.Value - rn.Value}, nil
	case token.STAR:
		return &object.Number{Value: ln.Value * rn.Value}, nil
	case token.SLASH:
		return &object.Number{Value: ln.Value / rn.Value}, nil
	default: // token.PERCENT
		return &object.Number{Value: math.Mod(ln.Value, rn.Value)}, nil
	}
}

// evalCompare implements < <= > >=, requiring both operands Number or both
// String (lexicographic), per spec §4.3.
func evalCompare(tok token.Token, op token.Type, left, right object.Value) (object.Value, error) {
	if ln, ok := left.(*object.Number); ok {
		rn, ok2 := right.(*object.Number)
		if !ok2 {
			return nil, newRuntimeError(tok, "%s requires two numbers, got %s and %s", op, left.GetType(), right.GetType())
		}
		return compareOrdered(op, ln.Value < rn.Value, ln.Value == rn.Value, ln.Value > rn.Value), nil
	}
	if ls, ok := left.(*object.String); ok {
		rs, ok2 := right.(*object.String)
		if !ok2 {
			return nil, newRuntimeError(tok, "%s requires two strings, got %s and %s", op, left.GetType(), right.GetType())
		}
		return compareOrdered(op, ls.Value < rs.Value, ls.Value == rs.Value, ls.Value > rs.Value), nil
	}
	return nil, newRuntimeError(tok, "%s requires two numbers or two strings, got %s and %s", op, left.GetType(), right.GetType())
}

func compareOrdered(op token.Type, lt, eq, gt bool) *object.Bool {
	switch op {
	case token.LT:
		return &object.Bool{Value: lt}
	case token.LE:
		return &object.Bool{Value: lt || eq}
	case token.GT:
		return &object.Bool{Value: gt}
	default: // token.GE
		return &object.Bool{Value: gt || eq}
	}
}

// evalMember implements `e.k`: Null if the key is absent, runtime error on
// any receiver that isn't an Object (spec §4.3).
func (e *Evaluator) evalMember(ex *ast.Member, env *environment.Environment) (object.Value, error) {
	target, err := e.evalExpr(ex.Object, env)
	if err != nil {
		return nil, err
	}
	o, ok := target.(*object.Object)
	if !ok {
		return nil, newRuntimeError(ex.Token, "member access on non-object value of type %s", target.GetType())
	}
	v, ok := o.Get(ex.Property)
	if !ok {
		return object.NullValue, nil
	}
	return v, nil
}

// evalIndex implements `e[i]`: integer-valued Number index into an Array,
// String index into an Object (spec §4.3).
func (e *Evaluator) evalIndex(ex *ast.Index, env *environment.Environment) (object.Value, error) {
	target, err := e.evalExpr(ex.Object, env)
	if err != nil {
		return nil, err
	}
	idx, err := e.evalExpr(ex.Index, env)
	if err != nil {
		return nil, err
	}
	switch container := target.(type) {
	case *object.Array:
		i, err := arrayIndex(ex.Token, idx, len(container.Elements))
		if err != nil {
			return nil, err
		}
		return container.Elements[i], nil
	case *object.Object:
		key, ok := idx.(*object.String)
		if !ok {
			return nil, newRuntimeError(ex.Token, "object index must be a string, got %s", idx.GetType())
		}
		v, ok := container.Get(key.Value)
		if !ok {
			return object.NullValue, nil
		}
		return v, nil
	default:
		return nil, newRuntimeError(ex.Token, "cannot index into value of type %s", target.GetType())
	}
}

// arrayIndex validates idx is an integer-valued Number within [0, length).
func arrayIndex(tok token.Token, idx object.Value, length int) (int, error) {
	n, ok := idx.(*object.Number)
	if !ok {
		return 0, newRuntimeError(tok, "array index must be a number, got %s", idx.GetType())
	}
	i := int(n.Value)
	if float64(i) != n.Value || i < 0 || i >= length {
		return 0, newRuntimeError(tok, "array index %v out of range [0, %d)", n.Value, length)
	}
	return i, nil
}

// assignIndex implements the index-assignment half of `a[i] = e` / `o[k] = e`.
func assignIndex(tok token.Token, target, idx, value object.Value) error {
	switch container := target.(type) {
	case *object.Array:
		i, err := arrayIndex(tok, idx, len(container.Elements))
		if err != nil {
			return err
		}
		container.Elements[i] = value
		return nil
	case *object.Object:
		key, ok := idx.(*object.String)
		if !ok {
			return newRuntimeError(tok, "object index must be a string, got %s", idx.GetType())
		}
		container.Set(key.Value, value)
		return nil
	default:
		return newRuntimeError(tok, "cannot index into value of type %s", target.GetType())
	}
}

// evalCall implements call semantics: evaluate callee and arguments left to
// right, then dispatch to a user function or a built-in (spec §4.3).
func (e *Evaluator) evalCall(ex *ast.Call, env *environment.Environment) (object.Value, error) {
	callee, err := e.evalExpr(ex.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := e.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return e.callValue(ex.Token, callee, args)
}

func (e *Evaluator) callValue(tok token.Token, callee object.Value, args []object.Value) (object.Value, error) {
	switch fn := callee.(type) {
	case *function.Function:
		if len(args) != len(fn.Params) {
			return nil, newRuntimeError(tok, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
		}
		callEnv := environment.Enclose(fn.Env)
		for i, p := range fn.Params {
			callEnv.Bind(p, args[i])
		}
		val, f, err := e.execBlock(fn.Body, callEnv)
		if err != nil {
			return nil, err
		}
		if f == flowReturn {
			return val, nil
		}
		return object.NullValue, nil

	case *object.Builtin:
		v, err := fn.Callback(e, e.Out, args)
		if err != nil {
			return nil, newRuntimeError(tok, "%s", err)
		}
		return v, nil

	default:
		return nil, newRuntimeError(tok, "value of type %s is not callable", callee.GetType())
	}
}
