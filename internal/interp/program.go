package interp

import (
	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/internal/diag"
)

// RunProgram evaluates a parsed Program to completion (spec.md §4.5.1,
// §7): a declaration pre-pass hoists top-level function/lambda
// declarations so mutually-referring functions resolve regardless of
// source order, imports run next, then top-level content executes
// with catch-and-continue semantics, pushing every error into
// diag.Global rather than aborting the run. The return value is the
// last non-void top-level result (SPEC_FULL.md §4 point 6, the
// embedded RunSource contract).
func RunProgram(prog *ast.Program, env *Environment) Value {
	prepassHoist(prog, env)

	for _, imp := range prog.Imports {
		if _, err := EvalStatement(imp, env); err != nil {
			diag.Global.Add(err)
		}
	}

	last := Void()
	for _, c := range prog.Content {
		flow, err := EvalContent(c, env)
		if err != nil {
			diag.Global.Add(err)
			continue
		}
		if flow.HasValue {
			last = flow.Value
		}
	}
	return last
}

// prepassHoist declares every top-level function, named lambda,
// variable, and object ahead of execution (spec.md §4.5.1's
// declaration pre-pass / design notes' "allocate placeholder values
// keyed by declared type, populate with real definitions during
// execution"). Functions need no placeholder — their value is fully
// known at parse time — so hoisting them here is what actually lets
// two top-level functions call each other regardless of which one is
// declared first. Variables and objects get a type-shaped zero value;
// the real execution pass below overwrites them when it reaches their
// declaration.
func prepassHoist(prog *ast.Program, env *Environment) {
	for _, c := range prog.Content {
		if c.Stmt == nil {
			continue
		}
		switch st := c.Stmt.(type) {
		case *ast.FuncDecl:
			env.Declare(st.Name, functionValue(st.Name, st.Params, st.Body), true)
		case *ast.Lambda:
			if st.Name != "" {
				env.Declare(st.Name, functionValue(st.Name, st.Params, st.Body), st.Const)
			}
		case *ast.VarDecl:
			env.Declare(st.Name, ZeroValueFor(st.Type), st.Const)
		case *ast.ObjectDecl:
			env.Declare(st.Name, NewObject(nil, nil), true)
		}
	}
}

func functionValue(name string, params []ast.Param, body []ast.Content) Value {
	return Value{Kind: FunctionKind, Function: &Function{Name: name, Params: params, Body: body}}
}
