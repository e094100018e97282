/*
File   : zlang/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/zlang/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	return prog
}

func TestParseBinding(t *testing.T) {
	prog := mustParse(t, `bet x = 2 + 3 * 4`)
	require.Len(t, prog.Statements, 1)
	b, ok := prog.Statements[0].(*ast.Binding)
	require.True(t, ok)
	assert.Equal(t, "x", b.Name)

	bin, ok := b.Value.(*ast.Binary)
	require.True(t, ok, "precedence should make + the outermost node")
	_, rightIsMul := bin.Right.(*ast.Binary)
	assert.True(t, rightIsMul)
}

func TestParsePrecedenceOfComparisonOverLogical(t *testing.T) {
	prog := mustParse(t, `bruh 1 < 2 && 3 > 2`)
	stmt := prog.Statements[0].(*ast.Print)
	top, ok := stmt.Value.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "&&", string(top.Operator))
}

func TestParseUnaryBindsTighterThanBinary(t *testing.T) {
	prog := mustParse(t, `bruh -1 + 2`)
	stmt := prog.Statements[0].(*ast.Print)
	top, ok := stmt.Value.(*ast.Binary)
	require.True(t, ok)
	_, unaryIsLeft := top.Left.(*ast.Unary)
	assert.True(t, unaryIsLeft)
}

func TestParseIfElse(t *testing.T) {
	prog := mustParse(t, `sus (n <= 1) { vibe 1 } bussin { vibe n }`)
	stmt, ok := prog.Statements[0].(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, stmt.Then)
	assert.NotNil(t, stmt.Else)
}

func TestParseIfWithoutElse(t *testing.T) {
	prog := mustParse(t, `sus (fr) { bruh 1 }`)
	stmt := prog.Statements[0].(*ast.If)
	assert.Nil(t, stmt.Else)
}

func TestParseFunctionDeclarationAndCall(t *testing.T) {
	prog := mustParse(t, `flex f(n) { vibe n * f(n-1) }`)
	fn, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, []string{"n"}, fn.Params)

	ret := fn.Body.Statements[0].(*ast.Return)
	_, ok = ret.Value.(*ast.Binary)
	assert.True(t, ok)
}

func TestParseForEach(t *testing.T) {
	prog := mustParse(t, `highkey (e in s) { bruh e }`)
	fe, ok := prog.Statements[0].(*ast.ForEach)
	require.True(t, ok)
	assert.Equal(t, "e", fe.Name)
}

func TestParseAssignmentTargets(t *testing.T) {
	prog := mustParse(t, `o.k = o.k + 41`)
	assign, ok := prog.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, ast.LvalueMember, assign.Target.Kind)
	assert.Equal(t, "k", assign.Target.Property)
}

func TestParseIndexAssignment(t *testing.T) {
	prog := mustParse(t, `a[0] = 1`)
	assign, ok := prog.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, ast.LvalueIndex, assign.Target.Kind)
}

func TestParseArrayAndObjectLiterals(t *testing.T) {
	prog := mustParse(t, `bet s = ["a","b","c"]`)
	b := prog.Statements[0].(*ast.Binding)
	arr, ok := b.Value.(*ast.ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)

	prog2 := mustParse(t, `bet o = {k: 1}`)
	b2 := prog2.Statements[0].(*ast.Binding)
	obj, ok := b2.Value.(*ast.ObjectLiteral)
	require.True(t, ok)
	require.Len(t, obj.Fields, 1)
	assert.Equal(t, "k", obj.Fields[0].Key)
}

func TestParseReturnWithoutExpression(t *testing.T) {
	prog := mustParse(t, `flex f() { vibe }`)
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	ret := fn.Body.Statements[0].(*ast.Return)
	assert.Nil(t, ret.Value)
}

func TestParseMissingExpressionIsParseError(t *testing.T) {
	_, err := ParseProgram(`bet x = `)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
}

func TestParseInvalidAssignmentTargetIsParseError(t *testing.T) {
	_, err := ParseProgram(`1 + 1 = 2`)
	require.Error(t, err)
}

func TestParseCallChainedOffMember(t *testing.T) {
	prog := mustParse(t, `bruh o.c()`)
	stmt := prog.Statements[0].(*ast.Print)
	_, ok := stmt.Value.(*ast.Call)
	assert.True(t, ok)
}
