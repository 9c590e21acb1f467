package interp

import (
	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// evalCall implements the call protocol of spec.md §4.5.4: a native
// call (`@name => |args|`), a method call (Callee is a MemberExpr),
// or a user function/lambda call (arity and type check, fresh call
// frame, sequential body evaluation honoring early return).
func evalCall(c *ast.CallExpr, env *Environment) (Value, *diag.Error) {
	args := make([]Value, len(c.Args))
	for i, a := range c.Args {
		v, err := EvalExpression(a, env)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	if member, ok := c.Callee.(*ast.MemberExpr); ok {
		return evalMethodCall(c, member, args, env)
	}

	if c.Native {
		ident, ok := c.Callee.(*ast.Identifier)
		if !ok {
			return Value{}, diag.NewRuntime(c.Position, "native call requires a bare name")
		}
		return callNative(c.Position, ident.Name, args, env)
	}

	callee, err := EvalExpression(c.Callee, env)
	if err != nil {
		return Value{}, err
	}
	return invokeFunction(c.Position, callee, args, env)
}

// invokeFunction runs a user function/lambda against already-evaluated
// args: arity check, per-param type check, a fresh call frame (cloning
// the environment active at the call site, per spec.md §9's
// captured-environment-by-copy semantics), then sequential body
// evaluation honoring an early `return`.
func invokeFunction(pos token.Position, callee Value, args []Value, callerEnv *Environment) (Value, *diag.Error) {
	if callee.Kind == NativeFunctionKind {
		v, err := callee.Native(args)
		if err != nil {
			return Value{}, diag.NewRuntime(pos, err.Error())
		}
		return v, nil
	}
	if callee.Kind != FunctionKind {
		return Value{}, diag.NewType(pos, "callee is not callable", "fn", callee.TypeName())
	}
	fn := callee.Function
	if len(args) != len(fn.Params) {
		return Value{}, diag.NewRuntimef(pos, "function %q expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	callEnv := NewChild(callerEnv)
	for i, p := range fn.Params {
		if !args[i].MatchesType(p.Type) {
			return Value{}, diag.NewType(pos, "argument does not match declared parameter type", p.Type.String(), args[i].TypeName())
		}
		callEnv.Declare(p.Name, args[i], false)
	}

	flow, err := EvalBody(fn.Body, callEnv)
	if err != nil {
		return Value{}, err
	}
	if !flow.HasValue {
		return Void(), nil
	}
	return flow.Value, nil
}

// evalMethodCall dispatches obj.name => |args| to the built-in method
// table, writing the (possibly mutated) receiver back into the
// environment when it is bound to a bare identifier (spec.md §4.5.2's
// push/pop write-back requirement; any other receiver expression is
// rejected for a mutating method since there is no variable to update).
func evalMethodCall(c *ast.CallExpr, member *ast.MemberExpr, args []Value, env *Environment) (Value, *diag.Error) {
	if member.Computed {
		return Value{}, diag.NewRuntime(c.Position, "method call requires a bare method name")
	}
	name, ok := member.Property.(*ast.Identifier)
	if !ok {
		return Value{}, diag.NewRuntime(c.Position, "method call requires a bare method name")
	}

	receiver, err := EvalExpression(member.Object, env)
	if err != nil {
		return Value{}, err
	}

	result, mutated, changed, merr := callMethod(c.Position, receiver, name.Name, args)
	if merr != nil {
		return Value{}, merr
	}

	if changed {
		root, ok := member.Object.(*ast.Identifier)
		if !ok {
			return Value{}, diag.NewRuntime(c.Position, "mutating method requires a bare variable receiver")
		}
		if aerr := env.Assign(root.Name, mutated); aerr != nil {
			return Value{}, diag.NewRuntime(c.Position, aerr.Error())
		}
	}
	return result, nil
}
