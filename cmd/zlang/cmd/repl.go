/*
File   : zlang/cmd/zlang/cmd/repl.go
*/
package cmd

import (
	"os"

	"github.com/akashmaji946/zlang/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive ZLang read-eval-print loop",
	RunE: func(c *cobra.Command, args []string) error {
		return startRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// startRepl loads .zlangrc.yaml (if present) in the current directory and
// starts an interactive session over a single persistent environment
// (spec §3's "for the REPL, reuse a single persistent top-level
// environment across inputs").
func startRepl() error {
	cfg, err := repl.LoadConfig(".zlangrc.yaml")
	if err != nil {
		return err
	}
	return repl.New(cfg).Start(os.Stdout)
}
