/*
File   : zlang/cmd/zlang/cmd/root.go

Package cmd implements the ZLang CLI on github.com/spf13/cobra, grounded on
CWBudde-go-dws/cmd/dwscript/cmd/root.go's Use/Short/Long/Version shape and
opal-lang-opal's cobra command tree. It replaces the teacher's hand-rolled
os.Args switch in main/main.go with explicit `run`/`repl` subcommands plus a
bare-positional-arg fallback so `zlang script.zlang` still works without
typing `zlang run script.zlang` (parity with the teacher's single-arg file
mode, spec §6's CLI surface).
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is the ZLang CLI's version string, reported by `zlang --version`.
// The REPL banner shows repl.Config's Version field instead.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "zlang [file]",
	Short:   "The ZLang interpreter",
	Version: Version,
	Long: `zlang runs ZLang programs: a small dynamically-typed scripting
language whose keywords are re-skinned as slang (fr/cap, bet, sus/bussin,
lowkey, highkey, flex, vibe, bruh).

Invocation with no arguments starts an interactive REPL. Invocation with a
single file path argument executes that file.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runFile(args[0])
		}
		return startRepl()
	},
}

// Execute runs the root command; it's the sole export main.go calls.
func Execute() error {
	return rootCmd.Execute()
}
