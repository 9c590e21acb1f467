package interp

import (
	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// evalAssign handles `=` and the compound `+= -= *= /= %=` forms
// against an Identifier or MemberExpr target (spec.md §4.5.2).
func evalAssign(a *ast.AssignExpr, env *Environment) (Value, *diag.Error) {
	rhs, err := EvalExpression(a.Value, env)
	if err != nil {
		return Value{}, err
	}

	switch target := a.Target.(type) {
	case *ast.Identifier:
		newVal, err := combineForAssign(a.Position, a.Operator, env, target.Name, rhs)
		if err != nil {
			return Value{}, err
		}
		if aerr := env.Assign(target.Name, newVal); aerr != nil {
			return Value{}, diag.NewRuntime(a.Position, aerr.Error())
		}
		return newVal, nil

	case *ast.MemberExpr:
		return evalMemberAssign(a, target, rhs, env)

	default:
		return Value{}, diag.NewRuntime(a.Position, "invalid assignment target")
	}
}

// combineForAssign applies the compound-assignment operator (looking
// up the current value first) or returns rhs unchanged for plain `=`.
func combineForAssign(pos token.Position, op token.Kind, env *Environment, name string, rhs Value) (Value, *diag.Error) {
	if op == token.ASSIGN {
		return rhs, nil
	}
	current, ok := env.Lookup(name)
	if !ok {
		return Value{}, diag.NewReference(pos, name)
	}
	return evalBinary(pos, compoundToBinaryOp(op), current, rhs)
}

func compoundToBinaryOp(op token.Kind) token.Kind {
	switch op {
	case token.PLUS_ASSIGN:
		return token.PLUS
	case token.MINUS_ASSIGN:
		return token.MINUS
	case token.STAR_ASSIGN:
		return token.ASTERISK
	case token.SLASH_ASSIGN:
		return token.SLASH
	case token.PERCENT_ASSIGN:
		return token.PERCENT
	default:
		return op
	}
}

// evalMemberAssign writes into an object property or array index.
// Since Value is stored by copy, the mutated container is written
// back into the environment at the root identifier the member chain
// is rooted on (spec.md §9).
func evalMemberAssign(a *ast.AssignExpr, m *ast.MemberExpr, rhs Value, env *Environment) (Value, *diag.Error) {
	root, ok := m.Object.(*ast.Identifier)
	if !ok {
		return Value{}, diag.NewRuntime(a.Position, "assignment target must be rooted on a variable")
	}
	obj, err := EvalExpression(m.Object, env)
	if err != nil {
		return Value{}, err
	}

	key, idx, keyErr := resolveMemberKey(m, env)
	if keyErr != nil {
		return Value{}, keyErr
	}

	newVal, err := combineForMemberAssign(a.Position, a.Operator, obj, key, idx, rhs)
	if err != nil {
		return Value{}, err
	}

	switch obj.Kind {
	case ObjectKind:
		obj.Object[key] = newVal
	case ArrayKind:
		if idx < 0 || idx >= int64(len(obj.Array)) {
			return Value{}, diag.NewRuntimef(a.Position, "index %d out of bounds", idx)
		}
		obj.Array[idx] = newVal
	default:
		return Value{}, diag.NewRuntime(a.Position, "invalid assignment target")
	}

	if aerr := env.Assign(root.Name, obj); aerr != nil {
		return Value{}, diag.NewRuntime(a.Position, aerr.Error())
	}
	return newVal, nil
}

func resolveMemberKey(m *ast.MemberExpr, env *Environment) (string, int64, *diag.Error) {
	if !m.Computed {
		ident, ok := m.Property.(*ast.Identifier)
		if !ok {
			return "", 0, diag.NewRuntime(m.Position, "invalid property access")
		}
		return ident.Name, 0, nil
	}
	idx, err := EvalExpression(m.Property, env)
	if err != nil {
		return "", 0, err
	}
	if idx.Kind == StringKind {
		return idx.Str, 0, nil
	}
	return "", idx.Int, nil
}

func combineForMemberAssign(pos token.Position, op token.Kind, obj Value, key string, idx int64, rhs Value) (Value, *diag.Error) {
	if op == token.ASSIGN {
		return rhs, nil
	}
	var current Value
	var ok bool
	switch obj.Kind {
	case ObjectKind:
		current, ok = obj.Object[key]
	case ArrayKind:
		if idx >= 0 && idx < int64(len(obj.Array)) {
			current, ok = obj.Array[idx], true
		}
	}
	if !ok {
		return Value{}, diag.NewRuntime(pos, "cannot apply compound assignment to missing member")
	}
	return evalBinary(pos, compoundToBinaryOp(op), current, rhs)
}
