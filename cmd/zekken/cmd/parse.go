package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/OzRAGEHarm/Zekken/internal/lexer"
	"github.com/OzRAGEHarm/Zekken/internal/parser"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Zekken source and print its AST",
	Long: `parse runs the lexer and parser over a file (or stdin, or -e
inline source) and prints the resulting AST's String() rendering,
useful for debugging the parser. That rendering is not source text:
type tags print by their diagnostic names and lambda bodies print
as "{ ... }".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	var source string
	switch {
	case parseEval != "":
		source = parseEval
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		source = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		source = string(data)
	}

	tokens := lexer.Tokenize(source)
	prog, errs := parser.Parse(tokens)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.ReplString())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	fmt.Println(prog.String())
	return nil
}
