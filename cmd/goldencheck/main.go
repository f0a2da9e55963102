// Command goldencheck runs the worked-example scenario suite and reports
// pass/fail for each one, exiting non-zero if any scenario regresses.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nox-lang/lazylambda/internal/golden"
)

func main() {
	suitePath := flag.String("suite", "internal/golden/testdata/scenarios.yaml", "path to the scenario suite YAML")
	flag.Parse()

	suite, err := golden.LoadSuite(*suitePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("goldencheck: %v", err))
		os.Exit(1)
	}

	results := golden.RunSuite(suite)
	failed := 0
	for _, r := range results {
		if r.Passed() {
			fmt.Fprintf(os.Stderr, "%s %s\n", color.GreenString("PASS"), r.Scenario.Name)
			continue
		}
		failed++
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("FAIL"), r.Scenario.Name)
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "       error: %v\n", r.Err)
			continue
		}
		fmt.Fprintf(os.Stderr, "       input:    %s\n", r.Scenario.Input)
		fmt.Fprintf(os.Stderr, "       expected: %s\n", r.Scenario.Expected)
		fmt.Fprintf(os.Stderr, "       got:      %s\n", r.Got)
	}

	fmt.Fprintf(os.Stderr, "%d/%d scenarios passed\n", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}
