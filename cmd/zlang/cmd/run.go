/*
File   : zlang/cmd/zlang/cmd/run.go
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/akashmaji946/zlang/eval"
	"github.com/akashmaji946/zlang/parser"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a ZLang source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runFile executes the ZLang program at path against a fresh top-level
// environment seeded with built-ins (spec §3), exiting non-zero on the
// first lex/parse/runtime error (spec §6's "Exit code 0 on success,
// non-zero on lex/parse/runtime error").
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	program, err := parser.ParseProgram(string(src))
	if err != nil {
		return err
	}

	evaluator := eval.New(os.Stdout)
	_, err = evaluator.Run(program)
	return err
}
