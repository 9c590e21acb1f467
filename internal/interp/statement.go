package interp

import (
	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// EvalContent evaluates one block-body element, dispatching to
// EvalStatement or EvalExpression depending on which half of the
// Content tagged-union is populated (spec.md §4.5).
func EvalContent(c ast.Content, env *Environment) (Flow, *diag.Error) {
	if c.IsExpression() {
		v, err := EvalExpression(c.Expr, env)
		if err != nil {
			return Flow{}, err
		}
		return value(v), nil
	}
	return EvalStatement(c.Stmt, env)
}

// EvalBody runs a sequence of Content in order inside env, stopping
// early the moment a `return` fires (Flow.Returned) and propagating
// that flow to the caller. The body's own result is the last
// content's flow (spec.md §4.5.3: "result is the last statement or
// expression value, or a return's value").
func EvalBody(body []ast.Content, env *Environment) (Flow, *diag.Error) {
	result := none()
	for _, c := range body {
		flow, err := EvalContent(c, env)
		if err != nil {
			return Flow{}, err
		}
		result = flow
		if flow.Returned {
			return flow, nil
		}
	}
	return result, nil
}

// EvalStatement evaluates a single Statement node (spec.md §4.5.3;
// grounded on original_source/src/eval/statement.rs's
// evaluate_statement dispatch, corrected to genuinely unwind on
// `return` via Flow.Returned rather than continuing the enclosing
// loop as the original does).
func EvalStatement(s ast.Statement, env *Environment) (Flow, *diag.Error) {
	switch st := s.(type) {
	case *ast.VarDecl:
		return evalVarDecl(st, env)
	case *ast.FuncDecl:
		env.Declare(st.Name, functionValue(st.Name, st.Params, st.Body), true)
		return none(), nil
	case *ast.Lambda:
		fn := functionValue(st.Name, st.Params, st.Body)
		if st.Name != "" {
			env.Declare(st.Name, fn, st.Const)
			return none(), nil
		}
		return value(fn), nil
	case *ast.ObjectDecl:
		return evalObjectDecl(st, env)
	case *ast.IfStmt:
		return evalIfStmt(st, env)
	case *ast.ForStmt:
		return evalForStmt(st, env)
	case *ast.WhileStmt:
		return evalWhileStmt(st, env)
	case *ast.TryCatchStmt:
		return evalTryCatchStmt(st, env)
	case *ast.Return:
		if st.Value == nil {
			return returned(Void()), nil
		}
		v, err := EvalExpression(st.Value, env)
		if err != nil {
			return Flow{}, err
		}
		return returned(v), nil
	case *ast.UseStmt:
		return none(), evalUseStmt(st, env)
	case *ast.IncludeStmt:
		return none(), evalIncludeStmt(st, env)
	case *ast.ExportStmt:
		// Evaluating an export is a no-op: the evaluator never reads
		// Names, and an include merges the included file's whole
		// top-level scope (or the selected names) regardless.
		return none(), nil
	case *ast.BlockStmt:
		return EvalBody(st.Body, NewBlockScope(env))
	case *ast.ExprStmt:
		v, err := EvalExpression(st.Expr, env)
		if err != nil {
			return Flow{}, err
		}
		return value(v), nil
	default:
		return Flow{}, diag.NewInternal(s.Pos(), "unsupported statement node")
	}
}

func evalVarDecl(v *ast.VarDecl, env *Environment) (Flow, *diag.Error) {
	var val Value
	if v.Init != nil {
		flow, err := EvalContent(*v.Init, env)
		if err != nil {
			return Flow{}, err
		}
		val = flow.Value
	} else {
		val = ZeroValueFor(v.Type)
	}
	if !val.MatchesType(v.Type) {
		return Flow{}, diag.NewType(v.Position, "initializer does not match declared type", tokenKindName(v.Type), val.TypeName())
	}
	env.Declare(v.Name, val, v.Const)
	return none(), nil
}

func evalObjectDecl(o *ast.ObjectDecl, env *Environment) (Flow, *diag.Error) {
	keys := make([]string, len(o.Properties))
	props := make(map[string]Value, len(o.Properties))
	for i, p := range o.Properties {
		v, err := EvalExpression(p.Value, env)
		if err != nil {
			return Flow{}, err
		}
		keys[i] = p.Key
		props[p.Key] = v
	}
	env.Declare(o.Name, NewObject(keys, props), true)
	return none(), nil
}

func evalIfStmt(i *ast.IfStmt, env *Environment) (Flow, *diag.Error) {
	cond, err := EvalExpression(i.Test, env)
	if err != nil {
		return Flow{}, err
	}
	if cond.Kind != BooleanKind {
		return Flow{}, diag.NewType(i.Position, "if condition must be a bool", "bool", cond.TypeName())
	}
	if cond.Bool {
		return EvalBody(i.Body, NewBlockScope(env))
	}
	if i.Alt != nil {
		return evalIfStmt(i.Alt, env)
	}
	if i.Else != nil {
		return EvalBody(i.Else.Body, NewBlockScope(env))
	}
	return none(), nil
}

func evalWhileStmt(w *ast.WhileStmt, env *Environment) (Flow, *diag.Error) {
	for {
		cond, err := EvalExpression(w.Test, env)
		if err != nil {
			return Flow{}, err
		}
		if cond.Kind != BooleanKind {
			return Flow{}, diag.NewType(w.Position, "while condition must be a bool", "bool", cond.TypeName())
		}
		if !cond.Bool {
			return none(), nil
		}
		flow, err := EvalBody(w.Body, NewBlockScope(env))
		if err != nil {
			return Flow{}, err
		}
		if flow.Returned {
			return flow, nil
		}
	}
}

func evalForStmt(f *ast.ForStmt, env *Environment) (Flow, *diag.Error) {
	coll, err := EvalExpression(f.Collection, env)
	if err != nil {
		return Flow{}, err
	}

	switch coll.Kind {
	case ArrayKind:
		if f.KeyName != "" {
			return Flow{}, diag.NewRuntime(f.Position, "for-in over an array takes a single binding")
		}
		for _, elem := range coll.Array {
			if f.ValueType != 0 && !elem.MatchesType(f.ValueType) {
				return Flow{}, diag.NewType(f.Position, "array element does not match loop binding type", tokenKindName(f.ValueType), elem.TypeName())
			}
			iterEnv := NewBlockScope(env)
			iterEnv.Declare(f.ValueName, elem, false)
			flow, err := EvalBody(f.Body, iterEnv)
			if err != nil {
				return Flow{}, err
			}
			if flow.Returned {
				return flow, nil
			}
		}
		return none(), nil

	case ObjectKind:
		keys := coll.OrderedKeys()
		if keys == nil {
			keys = sortedKeysFallback(coll.Object)
		}
		for _, k := range keys {
			v := coll.Object[k]
			iterEnv := NewBlockScope(env)
			if f.KeyName != "" {
				iterEnv.Declare(f.KeyName, String(k), false)
				iterEnv.Declare(f.ValueName, v, false)
			} else {
				iterEnv.Declare(f.ValueName, v, false)
			}
			flow, err := EvalBody(f.Body, iterEnv)
			if err != nil {
				return Flow{}, err
			}
			if flow.Returned {
				return flow, nil
			}
		}
		return none(), nil

	default:
		return Flow{}, diag.NewType(f.Position, "for-in requires an array or object", "arr or obj", coll.TypeName())
	}
}

func evalTryCatchStmt(t *ast.TryCatchStmt, env *Environment) (Flow, *diag.Error) {
	flow, err := EvalBody(t.TryBody, NewBlockScope(env))
	if err == nil {
		return flow, nil
	}

	catchEnv := NewBlockScope(env)
	catchEnv.Declare(t.CatchName, errorValue(err), false)
	return EvalBody(t.CatchBody, catchEnv)
}

// errorValue builds the object bound to a try/catch's error name:
// message/kind/line/column plus the synthetic __zekken_error__ marker
// catch blocks can test for (spec.md §4.5.3).
func errorValue(err *diag.Error) Value {
	keys := []string{"message", "kind", "line", "column", "__zekken_error__"}
	props := map[string]Value{
		"message":          String(err.Message),
		"kind":             String(string(err.Kind)),
		"line":             Int(int64(err.Context.Line)),
		"column":           Int(int64(err.Context.Column)),
		"__zekken_error__": Boolean(true),
	}
	return NewObject(keys, props)
}

func tokenKindName(k token.Kind) string {
	if k == 0 {
		return "any"
	}
	return k.String()
}
