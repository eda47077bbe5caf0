package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cwbudde/vexpr/internal/vexpr"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a vexpr program from a file or inline expression",
	Long: `Execute a program written in the S-expression demonstration syntax.

Examples:
  # Run a program file
  vexpr run program.vx

  # Evaluate an inline expression
  vexpr run -e "(+ (c 1 2 3) (c 10 20))"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runProgram(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s\n", filename)
	}

	in := vexpr.New()
	result, err := in.EvalSource(context.Background(), input)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	fmt.Println(result.String())
	return nil
}
