/*
File   : zlang/repl/repl_test.go
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/zlang/eval"
	"github.com/stretchr/testify/assert"
)

func TestEvalLine_PrintsTrailingExpressionValue(t *testing.T) {
	var out bytes.Buffer
	r := New(defaultConfig())
	ev := eval.New(&out)

	r.evalLine(&out, ev, `1 + 2`)
	assert.Contains(t, out.String(), "3")
}

func TestEvalLine_BindingsPersistAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	r := New(defaultConfig())
	ev := eval.New(&out)

	r.evalLine(&out, ev, `bet x = 41`)
	out.Reset()
	r.evalLine(&out, ev, `x + 1`)
	assert.Contains(t, out.String(), "42")
}

func TestEvalLine_ErrorLeavesPriorBindingsIntact(t *testing.T) {
	var out bytes.Buffer
	r := New(defaultConfig())
	ev := eval.New(&out)

	r.evalLine(&out, ev, `bet x = 1`)
	out.Reset()
	r.evalLine(&out, ev, `bruh y`)
	assert.Contains(t, out.String(), "runtime error")

	out.Reset()
	r.evalLine(&out, ev, `bruh x`)
	assert.Contains(t, out.String(), "1")
}

func TestPrintEnv_ListsTopLevelBindings(t *testing.T) {
	var out bytes.Buffer
	r := New(defaultConfig())
	ev := eval.New(&out)
	r.evalLine(&out, ev, `bet answer = 42`)
	out.Reset()

	r.printEnv(&out, ev)
	assert.Contains(t, out.String(), "answer")
	assert.Contains(t, out.String(), "42")
}
