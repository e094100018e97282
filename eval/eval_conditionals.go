/*
File   : zlang/eval/eval_conditionals.go
*/
package eval

import (
	"github.com/akashmaji946/zlang/ast"
	"github.com/akashmaji946/zlang/environment"
	"github.com/akashmaji946/zlang/object"
)

// execIf implements `sus (c) { A } bussin { B }` (spec §4.3). The `bussin`
// branch is optional; an else-if is an ordinary nested `sus` the parser
// placed inside Else's block (spec §9's Open Question resolution).
func (e *Evaluator) execIf(s *ast.If, env *environment.Environment) (object.Value, flow, error) {
	cond, err := e.evalExpr(s.Condition, env)
	if err != nil {
		return nil, flowNormal, err
	}
	if object.Truthy(cond) {
		return e.execBlock(s.Then, environment.Enclose(env))
	}
	if s.Else != nil {
		return e.execBlock(s.Else, environment.Enclose(env))
	}
	return object.NullValue, flowNormal, nil
}
