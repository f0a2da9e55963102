// Package golden loads and runs the worked-example scenarios used both by
// package tests and by the standalone goldencheck binary: a named program
// plus the single line of output it must linearize to.
package golden

import (
	"fmt"
	"os"

	"github.com/nox-lang/lazylambda/internal/ast"
	"github.com/nox-lang/lazylambda/internal/eval"
	"github.com/nox-lang/lazylambda/internal/lexer"
	"github.com/nox-lang/lazylambda/internal/parser"
	"gopkg.in/yaml.v3"
)

// Scenario is one input program and the output it must reduce to.
type Scenario struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Expected string `yaml:"expected"`
}

// Suite is the collection of scenarios loaded from a single YAML file.
type Suite struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadSuite reads and parses a scenario suite from path.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	for i, s := range suite.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d missing required field: name", i)
		}
	}

	return &suite, nil
}

// Result is the outcome of running a single Scenario.
type Result struct {
	Scenario Scenario
	Got      string
	Err      error
}

// Passed reports whether the scenario reduced to its expected output.
func (r Result) Passed() bool {
	return r.Err == nil && r.Got == r.Scenario.Expected
}

// Run evaluates one scenario's Input and linearizes the result, recovering
// from an ast.Malformed panic (an internal invariant violation, never
// raised by well-formed input) into an error rather than crashing the
// caller — this is the one seam in this package where a panic is expected
// and deliberately converted, not suppressed.
func Run(s Scenario) (result Result) {
	result = Result{Scenario: s}
	defer func() {
		if r := recover(); r != nil {
			if m, ok := r.(ast.Malformed); ok {
				result.Err = m
				return
			}
			panic(r)
		}
	}()

	l := lexer.New(string(lexer.Normalize([]byte(s.Input))), s.Name)
	p := parser.New(l, s.Name)
	expr := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		result.Err = errs[0]
		return result
	}

	result.Got = ast.Linearize(eval.Eval(expr))
	return result
}

// RunSuite runs every scenario in s and returns one Result per scenario, in
// order.
func RunSuite(s *Suite) []Result {
	results := make([]Result, len(s.Scenarios))
	for i, sc := range s.Scenarios {
		results[i] = Run(sc)
	}
	return results
}
