/*
File   : zlang/eval/eval.go

Package eval implements the tree-walking evaluator, grounded on the
teacher's eval/evaluator.go (the Evaluator-holds-environment-and-writer
shape) and eval/eval_controls.go, eval/eval_loops.go,
eval/eval_conditionals.go for the per-concern statement split. Unlike the
teacher, which signals a return via panic/recover (executeWithRecovery),
statement execution here returns an explicit three-way result — a value, a
flow discriminant (normal/return), and an error — per spec §4.3 and the
design note in spec §9 favoring an explicit discriminant over stack
unwinding.
*/
package eval

import (
	"io"

	"github.com/akashmaji946/zlang/ast"
	"github.com/akashmaji946/zlang/environment"
	"github.com/akashmaji946/zlang/object"
	"github.com/akashmaji946/zlang/token"
)

// flow distinguishes a statement's control-flow outcome from its value.
type flow int

const (
	flowNormal flow = iota
	flowReturn
)

// Evaluator walks an ast.Program against a chain of environments. Global is
// seeded with object.Builtins and, in the REPL, persists across inputs
// (spec §3's "top-level environment persists across REPL inputs").
type Evaluator struct {
	Global *environment.Environment
	Out    io.Writer
}

// New builds an Evaluator with a fresh global environment seeded with every
// registered built-in, satisfying spec §3's "file execution uses a fresh
// top-level environment seeded with built-ins."
func New(out io.Writer) *Evaluator {
	root := environment.New()
	for _, b := range object.Builtins {
		root.Bind(b.Name, b)
	}
	return &Evaluator{Global: root, Out: out}
}

// Run executes every top-level statement in program against e.Global in
// order. A top-level `vibe` ends execution early with that value, per
// spec §4.3's "A vibe at top level ends program execution with that value."
func (e *Evaluator) Run(program *ast.Program) (object.Value, error) {
	var last object.Value = object.NullValue
	for _, stmt := range program.Statements {
		val, f, err := e.execStatement(stmt, e.Global)
		if err != nil {
			return nil, err
		}
		if f == flowReturn {
			return val, nil
		}
		last = val
	}
	return last, nil
}

// CallFunction implements object.Runtime so built-ins can invoke ZLang
// function values (no shipped built-in does yet, but e.g. a future sort
// comparator could, mirroring the teacher's std.Runtime contract).
func (e *Evaluator) CallFunction(fn object.Value, args ...object.Value) (object.Value, error) {
	return e.callValue(token.Token{}, fn, args)
}

// execBlock runs each statement of block against env in order, short-
// circuiting on the first error or return signal. Callers are responsible
// for passing an already-enclosed env when the block introduces a new scope
// (spec §3(d): "a new environment is pushed... for each block that
// introduces names").
func (e *Evaluator) execBlock(block *ast.Block, env *environment.Environment) (object.Value, flow, error) {
	var last object.Value = object.NullValue
	for _, stmt := range block.Statements {
		val, f, err := e.execStatement(stmt, env)
		if err != nil {
			return nil, flowNormal, err
		}
		if f == flowReturn {
			return val, flowReturn, nil
		}
		last = val
	}
	return last, flowNormal, nil
}
