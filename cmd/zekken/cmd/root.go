package cmd

import (
	"github.com/spf13/cobra"

	_ "github.com/OzRAGEHarm/Zekken/internal/interp/stdlib"
	_ "github.com/OzRAGEHarm/Zekken/pkg/platform/native"
)

var (
	// Version is set by build flags (-ldflags "-X ...Version=...").
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "zekken",
	Short: "Zekken interpreter",
	Long: `zekken runs and inspects programs written in Zekken, a small
dynamically-typed C-family scripting language.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
