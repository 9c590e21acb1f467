// Package zekken is the embeddable entry point (spec.md §6's "Embedded
// interface", SPEC_FULL.md §4 point 6): RunSource parses and evaluates
// a whole program and returns the text an embedder should display,
// exactly the contract `run_zekken(source: text) -> text` describes.
package zekken

import (
	"bytes"
	"strings"

	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/internal/interp"
	_ "github.com/OzRAGEHarm/Zekken/internal/interp/stdlib"
	"github.com/OzRAGEHarm/Zekken/internal/lexer"
	"github.com/OzRAGEHarm/Zekken/internal/parser"
	"github.com/OzRAGEHarm/Zekken/internal/procenv"
)

// RunSource parses and evaluates source as a standalone program.
// println output is captured into the same buffer as the returned
// value so embedders see everything a terminal run would have printed
// (spec.md §6: "redirects the println builtin into an internal
// buffer included in the return value"). Source-line lookups for
// diagnostics are disabled for this call; embedders get error
// renderings without needing to expose the source to internal/diag's
// OS-environment-backed cache.
func RunSource(source string) (string, error) {
	diag.Global.Reset()
	restore := procenv.SwapCurrentFile("<embedded>")
	defer restore()
	prevLines := procenv.Get(procenv.SourceLines)
	_ = procenv.Set(procenv.SourceLines, "")
	defer func() { _ = procenv.Set(procenv.SourceLines, prevLines) }()

	tokens := lexer.Tokenize(source)
	prog, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		var sb strings.Builder
		for _, e := range parseErrs {
			sb.WriteString(e.ReplString())
			sb.WriteString("\n")
		}
		return sb.String(), nil
	}

	var out bytes.Buffer
	root := interp.NewRoot()
	interp.RegisterBuiltins(root, &out, strings.NewReader(""))

	result := interp.RunProgram(prog, root)

	if diag.Global.Len() > 0 {
		for _, e := range diag.Global.Errors() {
			out.WriteString(e.ReplString())
			out.WriteString("\n")
		}
		return out.String(), nil
	}

	if result.Kind != interp.VoidKind {
		out.WriteString(result.String())
	}
	return out.String(), nil
}
