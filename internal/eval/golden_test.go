package eval_test

import (
	"testing"

	"github.com/nox-lang/lazylambda/testutil"
)

// TestReductionGoldens snapshots input/output pairs for the worked scenarios
// through the shared golden-file helper, so a change that silently shifts
// an evaluation result shows up as a diff against testdata rather than only
// as a single assert failure.
func TestReductionGoldens(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no_reduction_under_lambda", `\x.(\y.y) x`},
		{"stuck_application", `(\x.a x) ((\x.x) b)`},
		{"arithmetic_precedence", `1 - 2 * 3 - 4`},
		{"curried_application", `(\x.\y. x + y) 3 4`},
		{"letrec_factorial", `letrec f = \n. if n == 0 then 1 else n * f (n - 1) in f 4`},
		{"sequencing", `1 ;; 2 ;; 3`},
		{"stacked_unary_minus", `(\x.x) (---2)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := map[string]string{
				"input":  tt.input,
				"output": run(t, tt.input),
			}
			testutil.CompareWithGolden(t, "reduction", tt.name, actual)
		})
	}
}
