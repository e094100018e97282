/*
File   : zlang/repl/repl.go

Package repl implements the Read-Eval-Print Loop for ZLang. Grounded on the
teacher's repl/repl.go: the teacher's Repl fields minus Line (Banner,
Version, Author, License, Prompt), same chzyer/readline + fatih/color usage, same persistent-
evaluator-across-inputs design, same panic-recovery wrapper around one line
of input.
*/
package repl

import (
	"io"
	"sort"
	"strings"

	"github.com/akashmaji946/zlang/ast"
	"github.com/akashmaji946/zlang/eval"
	"github.com/akashmaji946/zlang/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const separator = "--------------------------------------------------------"

// Repl is an interactive ZLang session. Its fields are populated from
// Config (see config.go), loaded from `.zlangrc.yaml` when present.
type Repl struct {
	Banner  string
	Version string
	Author  string
	License string
	Prompt  string
}

// New builds a Repl from cfg.
func New(cfg *Config) *Repl {
	return &Repl{Banner: cfg.Banner, Version: cfg.Version, Author: cfg.Author, License: cfg.License, Prompt: cfg.Prompt}
}

// PrintBanner shows the startup banner and usage hints.
func (r *Repl) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", separator)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", separator)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", separator)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to ZLang!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, '/env' to list top-level bindings.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", separator)
}

// Start runs the main read-eval-print loop until the user exits or input
// ends, evaluating every line against a single persistent Evaluator so
// bindings accumulate across inputs (spec §3).
func (r *Repl) Start(writer io.Writer) error {
	r.PrintBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return nil
		}
		if line == "/env" {
			r.printEnv(writer, evaluator)
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(writer, evaluator, line)
	}
}

// printEnv lists the evaluator's top-level bindings, sorted for stable
// output, supplementing the teacher's `/scope` command under ZLang's
// Environment terminology.
func (r *Repl) printEnv(writer io.Writer, evaluator *eval.Evaluator) {
	bindings := evaluator.Global.Bindings()
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cyanColor.Fprintf(writer, "%s = %s\n", name, bindings[name].ToString())
	}
}

// evalLine parses and evaluates one line of input, recovering from any
// panic so a single bad input can't take down the session, mirroring the
// teacher's executeWithRecovery.
func (r *Repl) evalLine(writer io.Writer, evaluator *eval.Evaluator, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[internal error] %v\n", recovered)
		}
	}()

	prog, err := parser.ParseProgram(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	result, err := evaluator.Run(prog)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	if len(prog.Statements) == 0 {
		return
	}
	if _, ok := prog.Statements[len(prog.Statements)-1].(*ast.ExpressionStatement); ok {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}

