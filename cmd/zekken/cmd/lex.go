package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OzRAGEHarm/Zekken/internal/lexer"
)

var (
	lexEval    string
	lexShowPos bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Zekken file or expression",
	Long: `lex tokenizes a Zekken program and prints the resulting tokens,
useful for debugging the lexer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(_ *cobra.Command, args []string) error {
	source, err := sourceFromArgOrFile(lexEval, args)
	if err != nil {
		return err
	}

	for _, tok := range lexer.Tokenize(source) {
		if lexShowPos {
			fmt.Printf("%-14s %q @%d:%d\n", tok.Kind, tok.Value, tok.Pos.Line, tok.Pos.Column)
		} else {
			fmt.Printf("%-14s %q\n", tok.Kind, tok.Value)
		}
	}
	return nil
}

func sourceFromArgOrFile(eval string, args []string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("provide a file path or use -e for inline code")
}
