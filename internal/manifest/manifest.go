// Package manifest reads and writes Zekken.toml, the project manifest
// `init` scaffolds (spec.md §6's keys-in-sections layout). `run` and
// `repl` do not read it.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Filename is the conventional manifest name looked for in a project's
// root directory.
const Filename = "Zekken.toml"

// Package describes the [package] section.
type Package struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	EntryPoint  string `toml:"entry_point"`
	Author      string `toml:"author"`
	Description string `toml:"description"`
}

// Manifest is the full decoded Zekken.toml (spec.md §6).
type Manifest struct {
	Package      Package           `toml:"package"`
	Dependencies map[string]string `toml:"dependencies"`
}

// Default builds the manifest `init --default` scaffolds: a bare
// project named after dir, versioned 0.1.0, entry point main.zk.
func Default(projectName string) *Manifest {
	return &Manifest{
		Package: Package{
			Name:        projectName,
			Version:     "0.1.0",
			EntryPoint:  "main.zk",
			Author:      "",
			Description: "",
		},
		Dependencies: map[string]string{},
	}
}

// Load reads and decodes a Zekken.toml from path.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if m.Dependencies == nil {
		m.Dependencies = map[string]string{}
	}
	return &m, nil
}

// Save encodes m as TOML and writes it to path, overwriting any
// existing file (the shape `init` writes on first run).
func Save(path string, m *Manifest) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	return nil
}

// Exists reports whether a manifest is already present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
