// Command lazylambda evaluates one lazylambda program to its linearized
// normal form. It takes a single positional argument: a path to a file, or,
// if that path does not name an existing regular file, the program text
// itself. On success it prints exactly one line to stdout and exits 0; any
// failure exits non-zero with no stdout output (spec §6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nox-lang/lazylambda/internal/ast"
	"github.com/nox-lang/lazylambda/internal/errors"
	"github.com/nox-lang/lazylambda/internal/eval"
	"github.com/nox-lang/lazylambda/internal/lexer"
	"github.com/nox-lang/lazylambda/internal/parser"
)

// version is overridable at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lazylambda", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	traceFlag := fs.Bool("trace", false, "emit per-step reduction diagnostics to stderr")
	versionFlag := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *versionFlag {
		fmt.Println(version)
		return 0
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, color.RedString("lazylambda: expected exactly one positional argument (file path or program text)"))
		return 1
	}

	if *traceFlag {
		eval.SetTracer(os.Stderr)
	}

	source, err := readProgram(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("lazylambda: %v", err))
		return 1
	}

	out, err := evaluate(source, fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("lazylambda: %v", err))
		return 1
	}

	fmt.Println(out)
	return 0
}

// readProgram treats path as a file if it names an existing regular file,
// otherwise it is the program text itself (spec §6).
func readProgram(path string) (string, error) {
	info, statErr := os.Stat(path)
	if statErr == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return path, nil
}

func evaluate(source, file string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			m, ok := r.(ast.Malformed)
			if !ok {
				panic(r)
			}
			err = errors.NewEvalError(errors.EVAL001, m.Node.Position(), m.Error())
		}
	}()

	l := lexer.New(string(lexer.Normalize([]byte(source))), file)
	p := parser.New(l, file)
	expr := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return "", errs[0]
	}

	return ast.Linearize(eval.Eval(expr)), nil
}
