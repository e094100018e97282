/*
File   : zlang/eval/eval_test.go
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/zlang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	var out bytes.Buffer
	ev := New(&out)
	_, err = ev.Run(prog)
	require.NoError(t, err)
	return out.String()
}

func TestScenario_ArithmeticPrecedence(t *testing.T) {
	assert.Equal(t, "14\n", run(t, `bet x = 2 + 3 * 4; bruh x`))
}

func TestScenario_RecursiveFactorial(t *testing.T) {
	src := `flex f(n) { sus (n <= 1) { vibe 1 } bussin { vibe n * f(n-1) } } bruh f(5)`
	assert.Equal(t, "120\n", run(t, src))
}

func TestScenario_ForEachOverArray(t *testing.T) {
	src := `bet s = ["a","b","c"]; highkey (e in s) { bruh e }`
	assert.Equal(t, "a\nb\nc\n", run(t, src))
}

func TestScenario_ObjectFieldMutation(t *testing.T) {
	src := `bet o = {k: 1}; o.k = o.k + 41; bruh o.k`
	assert.Equal(t, "42\n", run(t, src))
}

func TestScenario_ClosureCounterKeepsState(t *testing.T) {
	src := `flex mk() { bet i = 0; flex inc() { i = i + 1; vibe i } vibe inc } bet c = mk(); bruh c(); bruh c(); bruh c()`
	assert.Equal(t, "1\n2\n3\n", run(t, src))
}

func TestScenario_StringConcatAndBuiltins(t *testing.T) {
	assert.Equal(t, "hi 7\n", run(t, `bruh "hi " + 7`))
	assert.Equal(t, "3\n", run(t, `bruh length(split("a,b,c", ","))`))
}

func TestInvariant_Shadowing(t *testing.T) {
	src := `bet x = "a"; { bet x = "b"; bruh x } bruh x`
	assert.Equal(t, "b\na\n", run(t, src))
}

func TestInvariant_TruthinessZeroIsTruthy(t *testing.T) {
	src := `sus (0) { bruh "zero is truthy" } bussin { bruh "unreachable" }`
	assert.Equal(t, "zero is truthy\n", run(t, src))
}

func TestInvariant_FalseAndNullAreFalsy(t *testing.T) {
	assert.Equal(t, "no\n", run(t, `sus (cap) { bruh "yes" } bussin { bruh "no" }`))
	assert.Equal(t, "no\n", run(t, `bet o = {}; sus (o.missing) { bruh "yes" } bussin { bruh "no" }`))
}

func TestInvariant_EqualityByIdentityForArrays(t *testing.T) {
	src := `bet a = [1]; bet b = [1]; bruh a == b; bet c = a; bruh a == c`
	assert.Equal(t, "cap\nfr\n", run(t, src))
}

func TestInvariant_AliasingIsObservableThroughAllNames(t *testing.T) {
	src := `bet a = [1]; bet b = a; push(b, 2); bruh length(a)`
	assert.Equal(t, "2\n", run(t, src))
}

func TestErrorScenario_UnboundIdentifier(t *testing.T) {
	_, err := runErr(t, `bruh y`)
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestErrorScenario_ArityMismatch(t *testing.T) {
	_, err := runErr(t, `flex f(a,b){} f(1)`)
	require.Error(t, err)
}

func TestErrorScenario_MissingExpression(t *testing.T) {
	_, err := parser.ParseProgram(`bet x = `)
	require.Error(t, err)
}

func TestErrorScenario_UnterminatedString(t *testing.T) {
	_, err := parser.ParseProgram(`"abc`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "lex error"))
}

func runErr(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	var out bytes.Buffer
	ev := New(&out)
	_, err = ev.Run(prog)
	return out.String(), err
}
