package eval

import (
	"fmt"
	"io"

	"github.com/nox-lang/lazylambda/internal/ast"
)

// tracer receives one line per Eval call when non-nil. It is a package
// global rather than a parameter threaded through every call because
// tracing is a whole-run diagnostic toggle, not a per-call option, and the
// evaluator is documented (spec §5) as single-threaded and non-reentrant
// across concurrent reductions of the same program.
var tracer io.Writer

// SetTracer installs w as the destination for per-step reduction
// diagnostics. Passing nil disables tracing; this is the default.
func SetTracer(w io.Writer) { tracer = w }

func traceStep(e ast.Expr) {
	if tracer == nil {
		return
	}
	fmt.Fprintf(tracer, "eval: %s\n", ast.Linearize(e))
}
