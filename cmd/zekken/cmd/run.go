package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/internal/interp"
	"github.com/OzRAGEHarm/Zekken/internal/lexer"
	"github.com/OzRAGEHarm/Zekken/internal/parser"
	"github.com/OzRAGEHarm/Zekken/internal/procenv"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Interpret a Zekken source file",
	Long: `run interprets a .zk file and exits 0 on clean completion, or
non-zero if any error accumulated during the run (spec.md §6).`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	source := string(data)

	diag.Global.Reset()
	restore := procenv.SwapCurrentFile(filename)
	defer restore()
	_ = procenv.Set(procenv.SourceLines, source)

	tokens := lexer.Tokenize(source)
	prog, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			diag.Global.Add(e)
		}
		return reportAndExit()
	}

	root := interp.NewRoot()
	interp.RegisterBuiltins(root, os.Stdout, os.Stdin)
	interp.RunProgram(prog, root)

	return reportAndExit()
}

func reportAndExit() error {
	if diag.Global.Len() == 0 {
		return nil
	}
	var sb strings.Builder
	diag.Global.Drain(&sb)
	fmt.Fprint(os.Stderr, sb.String())
	os.Exit(1)
	return nil
}
