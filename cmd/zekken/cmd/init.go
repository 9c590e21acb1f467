package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OzRAGEHarm/Zekken/internal/manifest"
)

var initDefault bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a Zekken.toml and entry-point file",
	Long: `init scaffolds a manifest and entry-point file for a new Zekken
project. With --default it accepts the directory name as the project
name and writes sensible defaults; otherwise it prompts for project
name, version, entry point, author, and description (spec.md §6).`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initDefault, "default", false, "scaffold with defaults, no prompts")
}

func runInit(_ *cobra.Command, _ []string) error {
	if manifest.Exists(manifest.Filename) {
		return fmt.Errorf("%s already exists", manifest.Filename)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	projectName := filepath.Base(cwd)

	var m *manifest.Manifest
	if initDefault {
		m = manifest.Default(projectName)
	} else {
		m = promptForManifest(projectName)
	}

	if err := manifest.Save(manifest.Filename, m); err != nil {
		return err
	}

	entryPath := m.Package.EntryPoint
	if _, statErr := os.Stat(entryPath); statErr != nil {
		if err := os.WriteFile(entryPath, []byte("println => |\"Hello from Zekken\"|;\n"), 0o644); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}

	fmt.Printf("Wrote %s and %s\n", manifest.Filename, entryPath)
	return nil
}

func promptForManifest(defaultName string) *manifest.Manifest {
	reader := bufio.NewReader(os.Stdin)
	ask := func(prompt, def string) string {
		fmt.Printf("%s [%s]: ", prompt, def)
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		return line
	}

	m := manifest.Default(defaultName)
	m.Package.Name = ask("Project name", m.Package.Name)
	m.Package.Version = ask("Version", m.Package.Version)
	m.Package.EntryPoint = ask("Entry point", m.Package.EntryPoint)
	m.Package.Author = ask("Author", m.Package.Author)
	m.Package.Description = ask("Description", m.Package.Description)
	return m
}
