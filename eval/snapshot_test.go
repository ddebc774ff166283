package eval

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/respectZ/exprimo/context"
)

// TestEvaluateSnapshots snapshots the to-string() result of a table of
// representative expressions, the way the teacher's fixture suite
// snapshots interpreter output per test case.
func TestEvaluateSnapshots(t *testing.T) {
	ctx := context.NewBuilder().
		SetVariable("user", mustEval(t, context.New(), `"Ada"`)).
		Build()

	cases := []string{
		`1 + 2 * 3`,
		`"foo" + "bar"`,
		`(1 + 2) * 3`,
		`true && false || true`,
		`1 < 2 ? "yes" : "no"`,
		`"Hello World".toLowerCase()`,
		`"a,b,c".split(",").join("-")`,
		`floor(3.7) + ceil(3.2)`,
		`semver("1.2.3") < semver("1.10.0")`,
		`semver(2, 0, 0)`,
	}

	for i, expr := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			v, err := New(ctx).Evaluate(expr)
			var out string
			if err != nil {
				out = "error: " + err.Error()
			} else {
				out = v.String()
			}
			snaps.MatchSnapshot(t, expr, out)
		})
	}
}
