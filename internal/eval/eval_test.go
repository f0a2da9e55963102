package eval_test

import (
	"testing"

	"github.com/nox-lang/lazylambda/internal/ast"
	"github.com/nox-lang/lazylambda/internal/eval"
	"github.com/nox-lang/lazylambda/internal/lexer"
	"github.com/nox-lang/lazylambda/internal/parser"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	l := lexer.New(string(lexer.Normalize([]byte(src))), "test.lam")
	p := parser.New(l, "test.lam")
	expr := p.Parse()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())
	return ast.Linearize(eval.Eval(expr))
}

// TestConcreteScenarios exercises the eight worked examples: a lambda term
// left untouched because nothing reduces under its binder, a stuck
// application that preserves its unevaluated argument, arithmetic
// precedence, curried application, recursive factorial and map via letrec,
// sequencing as a value constructor, and stacked unary minus.
func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no reduction under lambda", `\x.(\y.y) x`, `(\x.((\y.y) x))`},
		{"stuck application keeps argument unevaluated", `(\x.a x) ((\x.x) b)`, `(a ((\x.x) b))`},
		{"arithmetic precedence", `1 - 2 * 3 - 4`, `-9.0`},
		{"curried application", `(\x.\y. x + y) 3 4`, `7.0`},
		{"letrec factorial", `letrec f = \n. if n == 0 then 1 else n * f (n - 1) in f 4`, `24.0`},
		{
			"letrec map over a cons list",
			`letrec map = \f.\xs. if xs == # then # else (f (hd xs)) : (map f (tl xs)) in map (\x.x+1) (1:2:3:#)`,
			`(2.0 : (3.0 : (4.0 : #)))`,
		},
		{"sequencing forces both sides", `1 ;; 2 ;; 3`, `1.0 ;; 2.0 ;; 3.0`},
		{"stacked unary minus", `(\x.x) (---2)`, `-2.0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, run(t, tt.input))
		})
	}
}

func TestAlphaHygiene(t *testing.T) {
	// the bound y in the body must not capture the free y the argument
	// carries in; eval must rename the binder before substituting.
	got := run(t, `(\x.\y. x) y`)
	require.Regexp(t, `^\(\\Var\d+\.y\)$`, got)
}

func TestNoReductionUnderLambda(t *testing.T) {
	got := run(t, `\x.(\y.y) x`)
	require.Equal(t, `(\x.((\y.y) x))`, got)
}

func TestNormalOrderDoesNotForceUnusedArgument(t *testing.T) {
	// (\x.x x)(\x.x x) diverges if ever forced; normal order must not force
	// it since the argument is never used in the body.
	omega := `(\x.x x) (\x.x x)`
	got := run(t, `(\x.1) (`+omega+`)`)
	require.Equal(t, `1.0`, got)
}

func TestListEqualityOnFiniteLists(t *testing.T) {
	require.Equal(t, `1.0`, run(t, `let xs = 1:2:# in xs == xs`))
	require.Equal(t, `0.0`, run(t, `(1:#) == #`))
	require.Equal(t, `1.0`, run(t, `# == #`))
}

func TestValuesAreFixedPoints(t *testing.T) {
	for _, src := range []string{"3", `\x.x`, "#", "1:2:#"} {
		once := run(t, src)
		require.Equal(t, once, run(t, once), "eval(eval(%s)) should equal eval(%s)", src, src)
	}
}

func TestStuckTermsResidualizeRatherThanFault(t *testing.T) {
	require.Equal(t, `(hd #)`, run(t, `hd #`))
	require.Equal(t, `(tl #)`, run(t, `tl #`))
	require.Equal(t, `(x + 1.0)`, run(t, `x + 1`))
}

func TestLetDesugarsWithoutForcingTheBoundExpression(t *testing.T) {
	got := run(t, `let x = (\y.y y)(\y.y y) in 5`)
	require.Equal(t, `5.0`, got)
}
