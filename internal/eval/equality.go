package eval

import "github.com/nox-lang/lazylambda/internal/ast"

// evalEq decides == between two already-forced values. Numbers compare by
// value; lists (chains of Cons terminated by Nil) compare structurally,
// forcing elements as the walk reaches them; empty and non-empty are never
// equal. Anything else — mismatched kinds, or a list holding an
// undecidable element comparison — residualises rather than guessing.
func evalEq(lhs, rhs ast.Expr, pos ast.Pos) ast.Expr {
	ln, lok := lhs.(*ast.Num)
	rn, rok := rhs.(*ast.Num)
	if lok && rok {
		return boolNum(ln.Value == rn.Value, pos)
	}

	if isListShape(lhs) && isListShape(rhs) {
		if result, ok := listEq(lhs, rhs); ok {
			return boolNum(result, pos)
		}
	}

	return &ast.Bin{Op: ast.OpEq, Lhs: lhs, Rhs: rhs, Pos: pos}
}

func isListShape(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Nil, *ast.Cons:
		return true
	default:
		return false
	}
}

// listEq walks two forced list spines in lockstep. lhs and rhs must already
// be forced to WHNF by the caller. It reports ok=false when either spine
// reaches something other than Nil or Cons, or when an element comparison
// along the way is itself undecidable, signalling the caller to fall back to
// a residual rather than fabricate a boolean.
func listEq(lhs, rhs ast.Expr) (result bool, ok bool) {
	if !isListShape(lhs) || !isListShape(rhs) {
		return false, false
	}

	_, lNil := lhs.(*ast.Nil)
	_, rNil := rhs.(*ast.Nil)
	if lNil || rNil {
		return lNil && rNil, true
	}

	lc := lhs.(*ast.Cons)
	rc := rhs.(*ast.Cons)

	head := evalEq(Eval(lc.Head), Eval(rc.Head), lc.Pos)
	headNum, decided := head.(*ast.Num)
	if !decided {
		return false, false
	}
	if headNum.Value == 0 {
		return false, true
	}

	return listEq(Eval(lc.Tail), Eval(rc.Tail))
}
