// Command exprimo is a small CLI host for the exprimo expression
// evaluator library: it loads an optional context from a YAML or JSON
// file, evaluates an expression given on the command line, and prints
// the result.
package main

import (
	"fmt"
	"os"

	"github.com/respectZ/exprimo/cmd/exprimo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
