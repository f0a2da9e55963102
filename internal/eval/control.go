package eval

import "github.com/nox-lang/lazylambda/internal/ast"

// evalIf forces only the condition. 0.0 (or -0.0, since they compare equal
// as floats) takes the else branch; any other number takes the then branch.
// Neither branch is forced before the choice is made, and when the
// condition itself cannot be decided both branches are left untouched in
// the residual.
func evalIf(n *ast.If) ast.Expr {
	cond := Eval(n.Cond)
	if num, ok := cond.(*ast.Num); ok {
		if num.Value == 0 {
			return Eval(n.Else)
		}
		return Eval(n.Then)
	}
	return &ast.If{Cond: cond, Then: n.Then, Else: n.Else, Pos: n.Pos}
}
