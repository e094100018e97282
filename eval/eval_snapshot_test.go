/*
File   : zlang/eval/eval_snapshot_test.go

Snapshot-tests the evaluator's stdout for a handful of representative
programs, grounded on the teacher-pack's snapshot-testing style (see
CWBudde-go-dws/internal/interp/fixture_test.go, which runs go-snaps over
fixture scripts) rather than asserting every character inline.
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/zlang/parser"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RepresentativePrograms(t *testing.T) {
	programs := map[string]string{
		"factorial":        `flex f(n) { sus (n <= 1) { vibe 1 } bussin { vibe n * f(n-1) } } bruh f(6)`,
		"array_foreach":    `bet s = ["a","b","c"]; highkey (e in s) { bruh e }`,
		"object_mutation":  `bet o = {k: 1}; o.k = o.k + 41; bruh o.k`,
		"closure_counters": `flex mk() { bet i = 0; flex inc() { i = i + 1; vibe i } vibe inc } bet c = mk(); bruh c(); bruh c(); bruh c()`,
		"mixed_builtins":   `bruh uppercase("zlang"); bruh join(split("a,b,c", ","), "-"); bruh sqrt(16)`,
	}

	for name, src := range programs {
		name, src := name, src
		t.Run(name, func(t *testing.T) {
			prog, err := parser.ParseProgram(src)
			require.NoError(t, err)

			var out bytes.Buffer
			ev := New(&out)
			_, err = ev.Run(prog)
			require.NoError(t, err)

			snaps.MatchSnapshot(t, out.String())
		})
	}
}
