package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OzRAGEHarm/Zekken/internal/lexer"
	"github.com/OzRAGEHarm/Zekken/internal/parser"
)

var (
	fmtWrite bool
	fmtList  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format Zekken source files",
	Long: `fmt reparses each file and reprints it via the AST's canonical
String() form, normalizing whitespace and punctuation the way the
parser expects them to read.`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to the source file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting would change")
}

func runFmt(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("fmt requires at least one file")
	}
	hadErr := false
	for _, path := range args {
		if err := formatOneFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			hadErr = true
		}
	}
	if hadErr {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func formatOneFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	original := string(data)

	tokens := lexer.Tokenize(original)
	prog, errs := parser.Parse(tokens)
	if len(errs) > 0 {
		return fmt.Errorf("parse error: %s", errs[0].ReplString())
	}
	formatted := prog.String()

	switch {
	case fmtList:
		if formatted != original {
			fmt.Println(path)
		}
	case fmtWrite:
		if formatted != original {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				return err
			}
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}
