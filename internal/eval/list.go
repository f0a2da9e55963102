package eval

import "github.com/nox-lang/lazylambda/internal/ast"

// evalDestruct forces the list and, if it has arrived at weak head normal
// form as a Cons, forces the requested component. Against Nil — or any
// stuck residual — the destructor itself becomes the residual.
func evalDestruct(n *ast.Destruct) ast.Expr {
	list := Eval(n.List)
	cons, ok := list.(*ast.Cons)
	if !ok {
		return &ast.Destruct{Op: n.Op, List: list, Pos: n.Pos}
	}
	if n.Op == ast.OpHd {
		return Eval(cons.Head)
	}
	return Eval(cons.Tail)
}
