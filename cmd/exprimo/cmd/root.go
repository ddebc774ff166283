package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "exprimo",
	Short: "Embeddable expression evaluator",
	Long: `exprimo evaluates a single expression from a dynamically-typed, C-family
grammar against a context of named variables and functions.

It supports arithmetic and string concatenation, comparison and equality
(with a semantic-version override when both sides parse as one), ternary
conditionals, dotted member access, string/array/math builtin methods, and
UFCS-style free-call dispatch onto those same methods.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
