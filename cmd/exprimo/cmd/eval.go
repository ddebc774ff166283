package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/respectZ/exprimo/context"
	"github.com/respectZ/exprimo/eval"
	"github.com/respectZ/exprimo/jsonio"
)

var (
	varsFile  string
	jsonOut   bool
	indentOut int
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a single expression",
	Long: `Evaluate an expression against an optional context loaded from a YAML or
JSON file.

Examples:
  # Evaluate a literal expression
  exprimo eval "1 + 2 * 3"

  # Evaluate against a variable context
  exprimo eval --vars user.yaml "user.name + \" is \" + user.age"

  # Print the result as JSON
  exprimo eval --json "semver(\"1.2.3\") < semver(\"1.10.0\")"`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&varsFile, "vars", "", "YAML or JSON file of context variables")
	evalCmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	evalCmd.Flags().IntVar(&indentOut, "indent", 0, "indent width for --json output (0 for compact)")
}

func runEval(_ *cobra.Command, args []string) error {
	ctx, err := loadContext(varsFile)
	if err != nil {
		return err
	}

	result, err := eval.New(ctx).Evaluate(args[0])
	if err != nil {
		return err
	}

	if jsonOut {
		var out string
		if indentOut > 0 {
			out, err = jsonio.EncodeIndent(result, indentOut)
		} else {
			out, err = jsonio.Encode(result)
		}
		if err != nil {
			return fmt.Errorf("encoding result as JSON: %w", err)
		}
		fmt.Println(out)
		return nil
	}

	fmt.Println(result.String())
	return nil
}

// loadContext returns an empty Context when path is empty, otherwise
// loads it as YAML or JSON by file extension.
func loadContext(path string) (*context.Context, error) {
	if path == "" {
		return context.New(), nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return context.LoadYAML(path)
	case ".json":
		return context.LoadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported vars file extension %q (want .yaml, .yml, or .json)", ext)
	}
}
