package interp

import (
	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// callNative resolves `@name` as a variable bound to a native or user
// function (spec.md §4.3: "`@name` lookups resolve as native
// functions"; §4.5.4: arguments are evaluated, then the host callable
// is invoked and its `Result<Value, text>` is lifted into a
// *diag.Error with location attached).
func callNative(pos token.Position, name string, args []Value, env *Environment) (Value, *diag.Error) {
	callee, ok := env.Lookup(name)
	if !ok {
		return Value{}, diag.NewReference(pos, name)
	}
	if callee.Kind != NativeFunctionKind && callee.Kind != FunctionKind {
		return Value{}, diag.NewType(pos, "'@' requires a native function", "fn", callee.TypeName())
	}
	return invokeFunction(pos, callee, args, env)
}
