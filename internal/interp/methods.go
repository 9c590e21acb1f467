package interp

import (
	"math"
	"sort"
	"strings"

	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// methodCaller invokes a built-in method on a receiver of a given
// Kind. Its boolean result is true only for mutating Array methods
// (push/pop), which need to replace the receiver's stored value when
// it is bound to a plain identifier (spec.md §4.5.2's method table).
type methodCaller func(pos token.Position, receiver Value, args []Value) (Value, Value, bool, *diag.Error)

// callMethod dispatches obj.name(args) to the built-in method table.
// It returns the method's result, the (possibly mutated) receiver, and
// whether the receiver changed and needs writing back into the
// environment at the call site.
func callMethod(pos token.Position, obj Value, name string, args []Value) (Value, Value, bool, *diag.Error) {
	switch obj.Kind {
	case StringKind:
		return callStringMethod(pos, obj, name, args)
	case ArrayKind:
		return callArrayMethod(pos, obj, name, args)
	case ObjectKind:
		return callObjectMethod(pos, obj, name, args)
	case IntKind:
		return callIntMethod(pos, obj, name, args)
	case FloatKind:
		return callFloatMethod(pos, obj, name, args)
	default:
		return Value{}, obj, false, diag.NewRuntime(pos, "type '"+obj.TypeName()+"' has no methods")
	}
}

func callStringMethod(pos token.Position, obj Value, name string, args []Value) (Value, Value, bool, *diag.Error) {
	switch name {
	case "length":
		return Int(int64(len([]rune(obj.Str)))), obj, false, nil
	case "toUpper":
		return String(upperCaser.String(obj.Str)), obj, false, nil
	case "toLower":
		return String(lowerCaser.String(obj.Str)), obj, false, nil
	case "trim":
		return String(strings.TrimSpace(obj.Str)), obj, false, nil
	case "split":
		if len(args) != 1 || args[0].Kind != StringKind {
			return Value{}, obj, false, diag.NewType(pos, "split expects a string delimiter", "string", argKindsOrNone(args))
		}
		parts := strings.Split(obj.Str, args[0].Str)
		elems := make([]Value, len(parts))
		for i, p := range parts {
			elems[i] = String(p)
		}
		return NewArray(elems), obj, false, nil
	default:
		return Value{}, obj, false, diag.NewRuntime(pos, "string has no method '"+name+"'")
	}
}

func callArrayMethod(pos token.Position, obj Value, name string, args []Value) (Value, Value, bool, *diag.Error) {
	switch name {
	case "length":
		return Int(int64(len(obj.Array))), obj, false, nil
	case "first":
		if len(obj.Array) == 0 {
			return Value{}, obj, false, diag.NewRuntime(pos, "first called on empty array")
		}
		return obj.Array[0], obj, false, nil
	case "last":
		if len(obj.Array) == 0 {
			return Value{}, obj, false, diag.NewRuntime(pos, "last called on empty array")
		}
		return obj.Array[len(obj.Array)-1], obj, false, nil
	case "push":
		if len(args) != 1 {
			return Value{}, obj, false, diag.NewRuntime(pos, "push expects exactly one argument")
		}
		mutated := NewArray(append(append([]Value{}, obj.Array...), args[0]))
		return mutated, mutated, true, nil
	case "pop":
		if len(obj.Array) == 0 {
			return Value{}, obj, false, diag.NewRuntime(pos, "pop called on empty array")
		}
		last := obj.Array[len(obj.Array)-1]
		mutated := NewArray(obj.Array[:len(obj.Array)-1])
		return last, mutated, true, nil
	case "join":
		if len(args) != 1 || args[0].Kind != StringKind {
			return Value{}, obj, false, diag.NewType(pos, "join expects a string delimiter", "string", argKindsOrNone(args))
		}
		parts := make([]string, len(obj.Array))
		for i, e := range obj.Array {
			parts[i] = e.String()
		}
		return String(strings.Join(parts, args[0].Str)), obj, false, nil
	default:
		return Value{}, obj, false, diag.NewRuntime(pos, "arr has no method '"+name+"'")
	}
}

func callObjectMethod(pos token.Position, obj Value, name string, args []Value) (Value, Value, bool, *diag.Error) {
	keys := obj.OrderedKeys()
	switch name {
	case "keys":
		elems := make([]Value, len(keys))
		for i, k := range keys {
			elems[i] = String(k)
		}
		return NewArray(elems), obj, false, nil
	case "values":
		elems := make([]Value, len(keys))
		for i, k := range keys {
			elems[i] = obj.Object[k]
		}
		return NewArray(elems), obj, false, nil
	case "entries":
		elems := make([]Value, len(keys))
		for i, k := range keys {
			elems[i] = NewArray([]Value{String(k), obj.Object[k]})
		}
		return NewArray(elems), obj, false, nil
	case "hasKey":
		if len(args) != 1 || args[0].Kind != StringKind {
			return Value{}, obj, false, diag.NewType(pos, "hasKey expects a string key", "string", argKindsOrNone(args))
		}
		_, ok := obj.Object[args[0].Str]
		return Boolean(ok), obj, false, nil
	case "get":
		if len(args) < 1 || args[0].Kind != StringKind {
			return Value{}, obj, false, diag.NewType(pos, "get expects a string key", "string", argKindsOrNone(args))
		}
		if v, ok := obj.Object[args[0].Str]; ok {
			return v, obj, false, nil
		}
		if len(args) >= 2 {
			return args[1], obj, false, nil
		}
		return Void(), obj, false, nil
	default:
		return Value{}, obj, false, diag.NewRuntime(pos, "obj has no method '"+name+"'")
	}
}

func callIntMethod(pos token.Position, obj Value, name string, args []Value) (Value, Value, bool, *diag.Error) {
	switch name {
	case "isEven":
		return Boolean(obj.Int%2 == 0), obj, false, nil
	case "isOdd":
		return Boolean(obj.Int%2 != 0), obj, false, nil
	default:
		return Value{}, obj, false, diag.NewRuntime(pos, "int has no method '"+name+"'")
	}
}

func callFloatMethod(pos token.Position, obj Value, name string, args []Value) (Value, Value, bool, *diag.Error) {
	switch name {
	case "round":
		return Float(roundHalfAwayFromZero(obj.Float)), obj, false, nil
	case "floor":
		return Float(floorFloat(obj.Float)), obj, false, nil
	case "ceil":
		return Float(ceilFloat(obj.Float)), obj, false, nil
	case "isEven":
		return Boolean(int64(obj.Float)%2 == 0), obj, false, nil
	case "isOdd":
		return Boolean(int64(obj.Float)%2 != 0), obj, false, nil
	default:
		return Value{}, obj, false, diag.NewRuntime(pos, "float has no method '"+name+"'")
	}
}

func argKindsOrNone(args []Value) string {
	if len(args) == 0 {
		return "none"
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.TypeName()
	}
	return strings.Join(parts, ", ")
}

// sortedKeysFallback is used when an object literal was built outside
// the normal NewObject path and lacks __keys__.
func sortedKeysFallback(obj map[string]Value) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		if k != "__keys__" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func roundHalfAwayFromZero(f float64) float64 { return math.Round(f) }
func floorFloat(f float64) float64            { return math.Floor(f) }
func ceilFloat(f float64) float64             { return math.Ceil(f) }
