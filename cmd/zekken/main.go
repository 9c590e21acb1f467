// Command zekken is the Zekken CLI: init/run/repl plus lex/parse/fmt
// debugging subcommands (spec.md §6's "Command-line surface").
package main

import (
	"fmt"
	"os"

	"github.com/OzRAGEHarm/Zekken/cmd/zekken/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
