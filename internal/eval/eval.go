package eval

import "github.com/nox-lang/lazylambda/internal/ast"

// Eval reduces e to a residual tree under normal-order (leftmost-outermost)
// strategy: it never reduces under a Lam, never forces an application's
// argument before substituting it, and keeps stepping the head of a stuck
// expression while leaving the rest of the term as output rather than
// faulting. Termination is the caller's problem — a divergent e diverges
// here too.
func Eval(e ast.Expr) ast.Expr {
	traceStep(e)
	switch n := e.(type) {
	case *ast.Var, *ast.Num, *ast.Nil, *ast.Lam:
		return e

	case *ast.App:
		fun := Eval(n.Fun)
		if lam, ok := fun.(*ast.Lam); ok {
			return Eval(Subst(lam.Body, lam.Param, n.Arg))
		}
		return &ast.App{Fun: fun, Arg: n.Arg, Pos: n.Pos}

	case *ast.Bin:
		return evalBin(n)

	case *ast.Neg:
		return evalNeg(n)

	case *ast.If:
		return evalIf(n)

	case *ast.Let:
		// let x = b in body  ≡  (\x.body) b, without pre-evaluating b.
		return Eval(Subst(n.Body, n.Name, n.Bound))

	case *ast.LetRec:
		return evalLetRec(n)

	case *ast.Seq:
		return &ast.Seq{Head: Eval(n.Head), Tail: Eval(n.Tail), Pos: n.Pos}

	case *ast.Cons:
		return &ast.Cons{Head: Eval(n.Head), Tail: Eval(n.Tail), Pos: n.Pos}

	case *ast.Destruct:
		return evalDestruct(n)

	default:
		panic(ast.Malformed{Node: e})
	}
}

// evalLetRec ties the recursive knot by substituting a fresh copy of the
// whole letrec for x inside b, so each occurrence of x that gets forced
// inside b's body unfolds into another copy of the same binding.
func evalLetRec(n *ast.LetRec) ast.Expr {
	unrolled := &ast.LetRec{
		Name:  n.Name,
		Bound: n.Bound,
		Body:  &ast.Var{Name: n.Name, Pos: n.Pos},
		Pos:   n.Pos,
	}
	boundStar := Subst(n.Bound, n.Name, unrolled)
	return Eval(Subst(n.Body, n.Name, boundStar))
}
