package interp

import (
	"os"
	"path/filepath"

	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/internal/lexer"
	"github.com/OzRAGEHarm/Zekken/internal/parser"
	"github.com/OzRAGEHarm/Zekken/internal/procenv"
)

// evalUseStmt resolves `use IDENT` / `use { m1, ... } from IDENT`
// against the registered-library table (spec.md §4.5.5).
func evalUseStmt(u *ast.UseStmt, env *Environment) *diag.Error {
	lib, ok := lookupLibrary(u.Module)
	if !ok {
		return diag.NewRuntime(u.Position, "unknown library '"+u.Module+"'")
	}
	if u.Methods == nil {
		env.Declare(u.Module, lib, true)
		return nil
	}
	for _, m := range u.Methods {
		v, ok := lib.Object[m]
		if !ok {
			return diag.NewRuntime(u.Position, "library '"+u.Module+"' has no method '"+m+"'")
		}
		env.Declare(m, v, true)
	}
	return nil
}

// evalIncludeStmt resolves `include FILE` / `include { m1, ... } from
// FILE` (spec.md §4.5.5): the path is resolved relative to the
// directory of ZEKKEN_CURRENT_FILE, the file is parsed and evaluated
// in a child environment while that key is swapped to the included
// path, then the child's top-level scope is merged into env either
// wholesale or by the named methods only.
func evalIncludeStmt(i *ast.IncludeStmt, env *Environment) *diag.Error {
	baseDir := filepath.Dir(procenv.CurrentFileValue())
	path := i.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return diag.NewRuntime(i.Position, "cannot read included file '"+i.Path+"': "+readErr.Error())
	}

	restore := procenv.SwapCurrentFile(path)
	defer restore()

	tokens := lexer.Tokenize(string(data))
	prog, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		return parseErrs[0]
	}

	childEnv := NewChild(env)
	RunProgram(prog, childEnv)

	if i.Methods == nil {
		mergeEnvInto(env, childEnv)
		return nil
	}
	for _, m := range i.Methods {
		v, ok := childEnv.Lookup(m)
		if !ok {
			return diag.NewRuntime(i.Position, "included file has no member '"+m+"'")
		}
		env.Declare(m, v, false)
	}
	return nil
}

// mergeEnvInto copies every name the included file declared at its
// own top level into dst (spec.md §4.5.5 point 4: "merge the child's
// variables into the current scope"), preserving whether each name
// was declared const.
func mergeEnvInto(dst, src *Environment) {
	for name, v := range src.variables {
		dst.Declare(name, v, false)
	}
	for name, v := range src.constants {
		dst.Declare(name, v, true)
	}
}
