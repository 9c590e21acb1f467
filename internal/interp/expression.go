package interp

import (
	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// EvalExpression evaluates expr in env (spec.md §4.5.2; grounded on
// original_source/src/eval/expression.rs's evaluate_expression).
func EvalExpression(expr ast.Expression, env *Environment) (Value, *diag.Error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return Int(e.Value), nil
	case *ast.FloatLit:
		return Float(e.Value), nil
	case *ast.StringLit:
		return String(e.Value), nil
	case *ast.BoolLit:
		return Boolean(e.Value), nil
	case *ast.Identifier:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return Value{}, diag.NewReference(e.Position, e.Name)
		}
		return v, nil
	case *ast.ArrayLit:
		elems := make([]Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := EvalExpression(el, env)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return NewArray(elems), nil
	case *ast.ObjectLit:
		keys := make([]string, len(e.Properties))
		props := make(map[string]Value, len(e.Properties))
		for i, p := range e.Properties {
			v, err := EvalExpression(p.Value, env)
			if err != nil {
				return Value{}, err
			}
			keys[i] = p.Key
			props[p.Key] = v
		}
		return NewObject(keys, props), nil
	case *ast.BinaryExpr:
		left, err := EvalExpression(e.Left, env)
		if err != nil {
			return Value{}, err
		}
		right, err := EvalExpression(e.Right, env)
		if err != nil {
			return Value{}, err
		}
		return evalBinary(e.Position, e.Operator, left, right)
	case *ast.AssignExpr:
		return evalAssign(e, env)
	case *ast.MemberExpr:
		return evalMember(e, env)
	case *ast.CallExpr:
		return evalCall(e, env)
	default:
		return Value{}, diag.NewInternal(expr.Pos(), "unsupported expression node")
	}
}

func evalMember(m *ast.MemberExpr, env *Environment) (Value, *diag.Error) {
	obj, err := EvalExpression(m.Object, env)
	if err != nil {
		return Value{}, err
	}

	if !m.Computed {
		name, ok := m.Property.(*ast.Identifier)
		if !ok {
			return Value{}, diag.NewRuntime(m.Position, "invalid property access")
		}
		return memberGetByKey(m.Position, obj, name.Name)
	}

	idx, err := EvalExpression(m.Property, env)
	if err != nil {
		return Value{}, err
	}
	if idx.Kind == StringKind {
		return memberGetByKey(m.Position, obj, idx.Str)
	}
	return memberGetByIndex(m.Position, obj, idx)
}

// memberGetByKey resolves `object.key`: a string property lookup on
// an Object. Any other receiver is a runtime error; integer indices
// are handled by memberGetByIndex (spec.md §4.5.2).
func memberGetByKey(pos token.Position, obj Value, key string) (Value, *diag.Error) {
	switch obj.Kind {
	case ObjectKind:
		v, ok := obj.Object[key]
		if !ok {
			return Value{}, diag.NewReference(pos, key)
		}
		return v, nil
	default:
		return Value{}, diag.NewRuntime(pos, "invalid member access on "+obj.TypeName())
	}
}

// memberGetByIndex resolves `object[index]` / `array[index]` for an
// integer index: on an object it indexes __keys__; on an array it is
// bounds-checked (spec.md §4.5.2).
func memberGetByIndex(pos token.Position, obj Value, idx Value) (Value, *diag.Error) {
	if idx.Kind != IntKind {
		return Value{}, diag.NewType(pos, "index must be an integer", "int", idx.TypeName())
	}
	switch obj.Kind {
	case ArrayKind:
		if idx.Int < 0 || idx.Int >= int64(len(obj.Array)) {
			return Value{}, diag.NewRuntimef(pos, "index %d out of bounds", idx.Int)
		}
		return obj.Array[idx.Int], nil
	case ObjectKind:
		keys := obj.OrderedKeys()
		if idx.Int < 0 || idx.Int >= int64(len(keys)) {
			return Value{}, diag.NewRuntimef(pos, "index %d out of bounds", idx.Int)
		}
		return obj.Object[keys[idx.Int]], nil
	default:
		return Value{}, diag.NewRuntime(pos, "invalid member access on "+obj.TypeName())
	}
}
