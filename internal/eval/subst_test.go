package eval_test

import (
	"testing"

	"github.com/nox-lang/lazylambda/internal/ast"
	"github.com/nox-lang/lazylambda/internal/eval"
	"github.com/stretchr/testify/require"
)

func v(name string) *ast.Var { return &ast.Var{Name: name} }
func num(n float64) *ast.Num { return &ast.Num{Value: n} }

func TestSubstReplacesFreeOccurrence(t *testing.T) {
	got := eval.Subst(v("x"), "x", num(5))
	require.Equal(t, "5.0", ast.Linearize(got))
}

func TestSubstLeavesOtherVariablesAlone(t *testing.T) {
	got := eval.Subst(v("y"), "x", num(5))
	require.Equal(t, "y", ast.Linearize(got))
}

func TestSubstShadowedLamIsUntouched(t *testing.T) {
	// \x.x  with x substituted: the binder shadows, so the body must not
	// be touched at all, and the parameter name survives unrenamed.
	lam := &ast.Lam{Param: "x", Body: v("x")}
	got := eval.Subst(lam, "x", num(9))
	require.Equal(t, `(\x.x)`, ast.Linearize(got))
}

func TestSubstAlphaRenamesToAvoidCapture(t *testing.T) {
	// \y.x  with x := y  must not let the substituted y be captured by the
	// binder; the binder has to move to a fresh name.
	lam := &ast.Lam{Param: "y", Body: v("x")}
	got := eval.Subst(lam, "x", v("y"))
	require.Regexp(t, `^\(\\Var\d+\.y\)$`, ast.Linearize(got))
}

func TestSubstIntoLetBoundAlways(t *testing.T) {
	let := &ast.Let{Name: "y", Bound: v("x"), Body: v("y")}
	got := eval.Subst(let, "x", num(3))
	// y does not shadow x, so the binder is renamed like any Lam binder.
	gotLet := got.(*ast.Let)
	require.Regexp(t, `^Var\d+$`, gotLet.Name)
	require.Equal(t, "(let "+gotLet.Name+" = 3.0 in "+gotLet.Name+")", ast.Linearize(got))
}

func TestSubstLetRecShadowLeavesWholeNodeUntouched(t *testing.T) {
	letrec := &ast.LetRec{Name: "x", Bound: v("x"), Body: v("x")}
	got := eval.Subst(letrec, "x", num(1))
	require.Equal(t, "(letrec x = x in x)", ast.Linearize(got))
}

func TestSubstStructuralOverBinaryAndListNodes(t *testing.T) {
	bin := &ast.Bin{Op: ast.OpPlus, Lhs: v("x"), Rhs: v("x")}
	got := eval.Subst(bin, "x", num(2))
	require.Equal(t, "(2.0 + 2.0)", ast.Linearize(got))

	cons := &ast.Cons{Head: v("x"), Tail: &ast.Nil{}}
	gotCons := eval.Subst(cons, "x", num(7))
	require.Equal(t, "(7.0 : #)", ast.Linearize(gotCons))
}
