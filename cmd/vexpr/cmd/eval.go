package cmd

import (
	"context"
	"fmt"

	"github.com/cwbudde/vexpr/internal/vexpr"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate a single inline expression",
	Long: `Evaluate one expression against a fresh global environment and print
the result.

This is a one-shot convenience over "vexpr run -e": there is no
interactive REPL.`,
	Args: cobra.ExactArgs(1),
	RunE: evalExprArg,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func evalExprArg(_ *cobra.Command, args []string) error {
	in := vexpr.New()
	result, err := in.EvalSource(context.Background(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
