/*
File   : zlang/function/function.go
*/
package function

import (
	"strings"

	"github.com/akashmaji946/zlang/ast"
	"github.com/akashmaji946/zlang/environment"
	"github.com/akashmaji946/zlang/object"
)

// Function lives in its own package, same as the teacher's function/function.go,
// because object and environment would otherwise import each other: a
// Function value is an object.Value but closes over an *environment.Environment,
// and Environment's binding table stores object.Value. Splitting Function out
// breaks the cycle.
type Function struct {
	Name   string
	Params []string
	Body   *ast.Block

	// Env is the live environment the function was declared in, captured by
	// pointer rather than copied. This is what makes a counter closure keep
	// incrementing the same binding across repeated calls instead of each
	// call seeing its own frozen snapshot.
	Env *environment.Environment
}

func (f *Function) GetType() object.Type { return object.FunctionType }

func (f *Function) ToString() string {
	return "function(" + f.Name + ")"
}

func (f *Function) ToObject() string {
	return "<function " + f.Name + "(" + strings.Join(f.Params, ", ") + ")>"
}
