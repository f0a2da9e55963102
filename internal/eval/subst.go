// Package eval implements capture-avoiding substitution and the
// normal-order reduction engine: the evaluator's two collaborating halves.
package eval

import "github.com/nox-lang/lazylambda/internal/ast"

// Subst computes e[r/x]: replace every free occurrence of x in e with r.
// Every binder (Lam, Let, LetRec) that does not shadow x is unconditionally
// alpha-renamed to a fresh name before the substitution descends into it,
// which rules out variable capture without ever scanning for free variables.
func Subst(e ast.Expr, x string, r ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.Var:
		if n.Name == x {
			return r
		}
		return n

	case *ast.Num, *ast.Nil:
		return e

	case *ast.Lam:
		if n.Param == x {
			return n
		}
		z := ast.Fresh()
		body := Subst(n.Body, n.Param, &ast.Var{Name: z, Pos: n.Body.Position()})
		return &ast.Lam{Param: z, Body: Subst(body, x, r), Pos: n.Pos}

	case *ast.App:
		return &ast.App{Fun: Subst(n.Fun, x, r), Arg: Subst(n.Arg, x, r), Pos: n.Pos}

	case *ast.Bin:
		return &ast.Bin{Op: n.Op, Lhs: Subst(n.Lhs, x, r), Rhs: Subst(n.Rhs, x, r), Pos: n.Pos}

	case *ast.Neg:
		return &ast.Neg{Operand: Subst(n.Operand, x, r), Pos: n.Pos}

	case *ast.If:
		return &ast.If{
			Cond: Subst(n.Cond, x, r),
			Then: Subst(n.Then, x, r),
			Else: Subst(n.Else, x, r),
			Pos:  n.Pos,
		}

	case *ast.Let:
		bound := Subst(n.Bound, x, r)
		if n.Name == x {
			return &ast.Let{Name: n.Name, Bound: bound, Body: n.Body, Pos: n.Pos}
		}
		z := ast.Fresh()
		body := Subst(n.Body, n.Name, &ast.Var{Name: z, Pos: n.Body.Position()})
		return &ast.Let{Name: z, Bound: bound, Body: Subst(body, x, r), Pos: n.Pos}

	case *ast.LetRec:
		if n.Name == x {
			return n
		}
		z := ast.Fresh()
		zVar := &ast.Var{Name: z, Pos: n.Pos}
		bound := Subst(n.Bound, n.Name, zVar)
		body := Subst(n.Body, n.Name, zVar)
		return &ast.LetRec{Name: z, Bound: Subst(bound, x, r), Body: Subst(body, x, r), Pos: n.Pos}

	case *ast.Seq:
		return &ast.Seq{Head: Subst(n.Head, x, r), Tail: Subst(n.Tail, x, r), Pos: n.Pos}

	case *ast.Cons:
		return &ast.Cons{Head: Subst(n.Head, x, r), Tail: Subst(n.Tail, x, r), Pos: n.Pos}

	case *ast.Destruct:
		return &ast.Destruct{Op: n.Op, List: Subst(n.List, x, r), Pos: n.Pos}

	default:
		panic(ast.Malformed{Node: e})
	}
}
