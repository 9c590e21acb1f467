// Package interp implements the Zekken tree-walking evaluator: the
// runtime Value union, the lexically-nested Environment, and the
// two-pass (pre-pass/execute) program evaluator (spec.md §4.4,
// §4.5).
package interp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// ValueKind tags a Value's runtime representation.
type ValueKind int

const (
	VoidKind ValueKind = iota
	IntKind
	FloatKind
	StringKind
	BooleanKind
	ArrayKind
	ObjectKind
	FunctionKind
	NativeFunctionKind
	ComplexKind
	VectorKind
	MatrixKind
)

// NativeFunc is a host-provided callable: it receives already-evaluated
// arguments and returns a Value or an error message (spec.md §4.5.4).
type NativeFunc func(args []Value) (Value, error)

// Function is a user-defined function or lambda's runtime value.
type Function struct {
	Name   string
	Params []ast.Param
	Body   []ast.Content
}

// Complex is a complex number, part of the math library's supplemented
// surface (SPEC_FULL.md §4).
type Complex struct {
	Re, Im float64
}

// Value is the tagged union every Zekken runtime value is represented
// with. Exactly one field matching Kind is meaningful.
type Value struct {
	Kind     ValueKind
	Int      int64
	Float    float64
	Str      string
	Bool     bool
	Array    []Value
	Object   map[string]Value // includes the synthetic "__keys__" entry
	Function *Function
	Native   NativeFunc
	Complex  Complex
	Vector   []float64
	Matrix   [][]float64
}

func Void() Value                { return Value{Kind: VoidKind} }
func Int(v int64) Value          { return Value{Kind: IntKind, Int: v} }
func Float(v float64) Value      { return Value{Kind: FloatKind, Float: v} }
func String(v string) Value      { return Value{Kind: StringKind, Str: v} }
func Boolean(v bool) Value       { return Value{Kind: BooleanKind, Bool: v} }
func NewComplex(c Complex) Value { return Value{Kind: ComplexKind, Complex: c} }
func NewVector(v []float64) Value {
	return Value{Kind: VectorKind, Vector: append([]float64(nil), v...)}
}
func NewMatrix(m [][]float64) Value {
	cp := make([][]float64, len(m))
	for i, row := range m {
		cp[i] = append([]float64(nil), row...)
	}
	return Value{Kind: MatrixKind, Matrix: cp}
}

// NewArray builds an Array value, copying elems so later mutation of
// the caller's slice doesn't alias the Value (spec.md §9 copy
// semantics).
func NewArray(elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{Kind: ArrayKind, Array: cp}
}

// NewObject builds an Object value from ordered keys, materializing
// the synthetic "__keys__" property that preserves insertion order
// (spec.md §4.3, §7).
func NewObject(keys []string, props map[string]Value) Value {
	m := make(map[string]Value, len(props)+1)
	for k, v := range props {
		m[k] = v
	}
	keyVals := make([]Value, len(keys))
	for i, k := range keys {
		keyVals[i] = String(k)
	}
	m["__keys__"] = NewArray(keyVals)
	return Value{Kind: ObjectKind, Object: m}
}

// OrderedKeys returns an object's declared property order from its
// "__keys__" entry, skipping the synthetic entry itself. Non-objects
// and objects missing the entry return nil.
func (v Value) OrderedKeys() []string {
	if v.Kind != ObjectKind {
		return nil
	}
	keysVal, ok := v.Object["__keys__"]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(keysVal.Array))
	for _, kv := range keysVal.Array {
		out = append(out, kv.Str)
	}
	return out
}

// Clone deep-copies compound values: arrays and objects, recursively
// (spec.md §9).
func (v Value) Clone() Value {
	switch v.Kind {
	case ArrayKind:
		cp := make([]Value, len(v.Array))
		for i, el := range v.Array {
			cp[i] = el.Clone()
		}
		return Value{Kind: ArrayKind, Array: cp}
	case ObjectKind:
		cp := make(map[string]Value, len(v.Object))
		for k, val := range v.Object {
			cp[k] = val.Clone()
		}
		return Value{Kind: ObjectKind, Object: cp}
	default:
		return v
	}
}

// TypeName renders the value's runtime type for diagnostics as its
// bare source type name (e.g. "int", "arr").
func (v Value) TypeName() string {
	switch v.Kind {
	case VoidKind:
		return "void"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case BooleanKind:
		return "bool"
	case ArrayKind:
		return "arr"
	case ObjectKind:
		return "obj"
	case FunctionKind, NativeFunctionKind:
		return "fn"
	case ComplexKind:
		return "complex"
	case VectorKind:
		return "vector"
	case MatrixKind:
		return "matrix"
	default:
		return "unknown"
	}
}

// MatchesType reports whether v satisfies a declared type.Kind tag,
// where token.TYPE_ANY accepts anything (spec.md §4.5.3).
func (v Value) MatchesType(t token.Kind) bool {
	switch t {
	case token.TYPE_ANY, 0:
		return true
	case token.TYPE_INT:
		return v.Kind == IntKind
	case token.TYPE_FLOAT:
		return v.Kind == FloatKind
	case token.TYPE_STRING:
		return v.Kind == StringKind
	case token.TYPE_BOOL:
		return v.Kind == BooleanKind
	case token.TYPE_ARR:
		return v.Kind == ArrayKind
	case token.TYPE_OBJ:
		return v.Kind == ObjectKind
	case token.TYPE_FN:
		return v.Kind == FunctionKind || v.Kind == NativeFunctionKind
	default:
		return false
	}
}

// ZeroValueFor builds the pre-pass placeholder dummy value whose
// runtime type matches a declared type tag (spec.md §4.5.1 point 2).
func ZeroValueFor(t token.Kind) Value {
	switch t {
	case token.TYPE_INT:
		return Int(0)
	case token.TYPE_FLOAT:
		return Float(0)
	case token.TYPE_STRING:
		return String("")
	case token.TYPE_BOOL:
		return Boolean(false)
	case token.TYPE_ARR:
		return NewArray(nil)
	case token.TYPE_OBJ:
		return NewObject(nil, nil)
	case token.TYPE_FN:
		return Value{Kind: FunctionKind, Function: &Function{}}
	default:
		return Void()
	}
}

// String renders the value's display form, used by println and
// implicit string-concatenation coercion (spec.md §4.5.2).
func (v Value) String() string {
	switch v.Kind {
	case VoidKind:
		return "void"
	case IntKind:
		return strconv.FormatInt(v.Int, 10)
	case FloatKind:
		s := strconv.FormatFloat(v.Float, 'g', -1, 64)
		if !strings.Contains(s, ".") && !strings.Contains(s, "e") {
			s += ".0"
		}
		return s
	case StringKind:
		return v.Str
	case BooleanKind:
		return strconv.FormatBool(v.Bool)
	case ArrayKind:
		parts := make([]string, len(v.Array))
		for i, e := range v.Array {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ObjectKind:
		keys := v.OrderedKeys()
		if keys == nil {
			for k := range v.Object {
				if k != "__keys__" {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
		}
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, v.Object[k].String()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case FunctionKind:
		return "<function>"
	case NativeFunctionKind:
		return "<native function>"
	case ComplexKind:
		return fmt.Sprintf("%g+%gi", v.Complex.Re, v.Complex.Im)
	case VectorKind:
		parts := make([]string, len(v.Vector))
		for i, f := range v.Vector {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case MatrixKind:
		rows := make([]string, len(v.Matrix))
		for i, row := range v.Matrix {
			parts := make([]string, len(row))
			for j, f := range row {
				parts[j] = strconv.FormatFloat(f, 'g', -1, 64)
			}
			rows[i] = "[" + strings.Join(parts, ", ") + "]"
		}
		return "[" + strings.Join(rows, ", ") + "]"
	default:
		return ""
	}
}

// DeepEqual is spec.md §4.5.2's "deep structural comparison for
// scalars; heterogeneous types compare unequal".
func (v Value) DeepEqual(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case IntKind:
		return v.Int == other.Int
	case FloatKind:
		return v.Float == other.Float
	case StringKind:
		return norm.NFC.String(v.Str) == norm.NFC.String(other.Str)
	case BooleanKind:
		return v.Bool == other.Bool
	case VoidKind:
		return true
	case ArrayKind:
		if len(v.Array) != len(other.Array) {
			return false
		}
		for i := range v.Array {
			if !v.Array[i].DeepEqual(other.Array[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		if len(v.Object) != len(other.Object) {
			return false
		}
		for k, val := range v.Object {
			ov, ok := other.Object[k]
			if !ok || !val.DeepEqual(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
