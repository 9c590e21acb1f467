package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/internal/interp"
	"github.com/OzRAGEHarm/Zekken/internal/lexer"
	"github.com/OzRAGEHarm/Zekken/internal/parser"
	"github.com/OzRAGEHarm/Zekken/internal/procenv"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Zekken session",
	Long: `repl reads lines, evaluates each as a standalone program against a
shared environment, and prints results (spec.md §6).`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	restore := procenv.SwapCurrentFile("<repl>")
	defer restore()

	root := interp.NewRoot()
	interp.RegisterBuiltins(root, os.Stdout, os.Stdin)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("zk> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			fmt.Print("zk> ")
			continue
		}

		diag.Global.Reset()
		_ = procenv.Set(procenv.SourceLines, line)

		tokens := lexer.Tokenize(line)
		prog, parseErrs := parser.Parse(tokens)
		if len(parseErrs) > 0 {
			for _, e := range parseErrs {
				fmt.Println(e.ReplString())
			}
			fmt.Print("zk> ")
			continue
		}

		result := interp.RunProgram(prog, root)
		for _, e := range diag.Global.Errors() {
			fmt.Println(e.ReplString())
		}
		if diag.Global.Len() == 0 && result.Kind != interp.VoidKind {
			fmt.Println(result.String())
		}
		fmt.Print("zk> ")
	}
	fmt.Println()
	return scanner.Err()
}
