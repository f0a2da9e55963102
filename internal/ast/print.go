package ast

import (
	"strconv"
	"strings"
)

// Linearize renders e as the canonical concrete-syntax string defined by the
// component E rendering table: the output is the exact text the CLI prints
// for a fully-reduced or stuck expression. Names produced by Fresh begin with
// an uppercase letter, which the lexer does not accept, so output that
// contains them does not parse back.
func Linearize(e Expr) string {
	var b strings.Builder
	linearize(&b, e)
	return b.String()
}

// linearize recursively writes e's canonical form into b, one Expr variant
// at a time; Linearize is the only entry point callers should use.
func linearize(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Var:
		b.WriteString(n.Name)

	case *Num:
		b.WriteString(formatNum(n.Value))

	case *Lam:
		b.WriteString("(\\")
		b.WriteString(n.Param)
		b.WriteByte('.')
		linearize(b, n.Body)
		b.WriteByte(')')

	case *App:
		b.WriteByte('(')
		linearize(b, n.Fun)
		b.WriteByte(' ')
		linearize(b, n.Arg)
		b.WriteByte(')')

	case *Bin:
		b.WriteByte('(')
		linearize(b, n.Lhs)
		b.WriteByte(' ')
		b.WriteString(n.Op.String())
		b.WriteByte(' ')
		linearize(b, n.Rhs)
		b.WriteByte(')')

	case *Neg:
		b.WriteString("(-")
		linearize(b, n.Operand)
		b.WriteByte(')')

	case *If:
		b.WriteString("(if ")
		linearize(b, n.Cond)
		b.WriteString(" then ")
		linearize(b, n.Then)
		b.WriteString(" else ")
		linearize(b, n.Else)
		b.WriteByte(')')

	case *Let:
		b.WriteString("(let ")
		b.WriteString(n.Name)
		b.WriteString(" = ")
		linearize(b, n.Bound)
		b.WriteString(" in ")
		linearize(b, n.Body)
		b.WriteByte(')')

	case *LetRec:
		b.WriteString("(letrec ")
		b.WriteString(n.Name)
		b.WriteString(" = ")
		linearize(b, n.Bound)
		b.WriteString(" in ")
		linearize(b, n.Body)
		b.WriteByte(')')

	case *Seq:
		linearize(b, n.Head)
		b.WriteString(" ;; ")
		linearize(b, n.Tail)

	case *Nil:
		b.WriteByte('#')

	case *Cons:
		b.WriteByte('(')
		linearize(b, n.Head)
		b.WriteString(" : ")
		linearize(b, n.Tail)
		b.WriteByte(')')

	case *Destruct:
		b.WriteByte('(')
		if n.Op == OpHd {
			b.WriteString("hd ")
		} else {
			b.WriteString("tl ")
		}
		linearize(b, n.List)
		b.WriteByte(')')

	default:
		panic(Malformed{Node: e})
	}
}

// formatNum renders a double using Go's shortest round-tripping decimal in
// positional notation (never an exponent), forcing a ".0" suffix when the
// value is mathematically integral so that "3" and "3.0" both print as "3.0"
// and 1000000 prints as "1000000.0" (spec §4.D).
func formatNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Malformed is the panic value raised by Linearize, and by the substitutor
// and evaluator in their own packages, when an Expr variant outside this
// package's closed set is encountered. It signals an internal invariant
// violation (spec §7(b)) — it can only fire on a bug in this program, never
// on user input, since the parser is the only producer of Expr trees besides
// substitution, and both only ever build the variants declared here.
type Malformed struct {
	Node Expr
}

func (m Malformed) Error() string {
	return "malformed AST: unknown expression variant reached evaluation"
}
