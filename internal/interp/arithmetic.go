package interp

import (
	"fmt"

	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// evalBinary implements spec.md §4.5.2's operand-matching rules:
// mixed int/float is a hard TypeError (SPEC_FULL.md §6 decision 2),
// string concatenation coerces the other operand's display form,
// array concatenation appends, and && / || always evaluate both
// sides (decision 3) since the caller has already evaluated both
// operands before this function runs.
func evalBinary(pos token.Position, op token.Kind, left, right Value) (Value, *diag.Error) {
	if (left.Kind == IntKind && right.Kind == FloatKind) || (left.Kind == FloatKind && right.Kind == IntKind) {
		return Value{}, diag.NewType(pos,
			fmt.Sprintf("cannot perform '%s' between int and float", op), left.TypeName(), right.TypeName())
	}

	switch op {
	case token.PLUS:
		return addValues(pos, left, right)
	case token.MINUS:
		return arithNumeric(pos, op, left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case token.ASTERISK:
		return arithNumeric(pos, op, left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case token.SLASH:
		return divideValues(pos, left, right)
	case token.PERCENT:
		return moduloValues(pos, left, right)
	case token.EQ:
		return Boolean(left.DeepEqual(right)), nil
	case token.NOT_EQ:
		return Boolean(!left.DeepEqual(right)), nil
	case token.LESS:
		return compareNumeric(pos, left, right, func(a, b int64) bool { return a < b }, func(a, b float64) bool { return a < b })
	case token.GREATER:
		return compareNumeric(pos, left, right, func(a, b int64) bool { return a > b }, func(a, b float64) bool { return a > b })
	case token.LESS_EQ:
		return compareNumeric(pos, left, right, func(a, b int64) bool { return a <= b }, func(a, b float64) bool { return a <= b })
	case token.GREATER_EQ:
		return compareNumeric(pos, left, right, func(a, b int64) bool { return a >= b }, func(a, b float64) bool { return a >= b })
	case token.AND:
		if left.Kind != BooleanKind || right.Kind != BooleanKind {
			return Value{}, diag.NewType(pos, "'&&' requires two booleans", "bool", left.TypeName()+"/"+right.TypeName())
		}
		return Boolean(left.Bool && right.Bool), nil
	case token.OR:
		if left.Kind != BooleanKind || right.Kind != BooleanKind {
			return Value{}, diag.NewType(pos, "'||' requires two booleans", "bool", left.TypeName()+"/"+right.TypeName())
		}
		return Boolean(left.Bool || right.Bool), nil
	default:
		return Value{}, diag.NewInternal(pos, fmt.Sprintf("unknown binary operator %s", op))
	}
}

func addValues(pos token.Position, left, right Value) (Value, *diag.Error) {
	switch {
	case left.Kind == IntKind && right.Kind == IntKind:
		return Int(left.Int + right.Int), nil
	case left.Kind == FloatKind && right.Kind == FloatKind:
		return Float(left.Float + right.Float), nil
	case left.Kind == ArrayKind && right.Kind == ArrayKind:
		return NewArray(append(append([]Value{}, left.Array...), right.Array...)), nil
	case left.Kind == StringKind || right.Kind == StringKind:
		return String(left.String() + right.String()), nil
	case left.Kind == ComplexKind && right.Kind == ComplexKind:
		return NewComplex(Complex{Re: left.Complex.Re + right.Complex.Re, Im: left.Complex.Im + right.Complex.Im}), nil
	default:
		return Value{}, diag.NewType(pos, "invalid operand types for addition", "matching numeric/string/array types", left.TypeName()+"/"+right.TypeName())
	}
}

func arithNumeric(pos token.Position, op token.Kind, left, right Value, onInt func(int64, int64) int64, onFloat func(float64, float64) float64) (Value, *diag.Error) {
	switch {
	case left.Kind == IntKind && right.Kind == IntKind:
		return Int(onInt(left.Int, right.Int)), nil
	case left.Kind == FloatKind && right.Kind == FloatKind:
		return Float(onFloat(left.Float, right.Float)), nil
	case left.Kind == ComplexKind && right.Kind == ComplexKind:
		return complexArith(pos, op, left.Complex, right.Complex)
	default:
		return Value{}, diag.NewType(pos, fmt.Sprintf("invalid operand types for '%s'", op), "int/int or float/float", left.TypeName()+"/"+right.TypeName())
	}
}

// complexArith implements - and * on two Complex operands (+ is handled
// by addValues alongside string/array concatenation). Division on
// complex numbers is out of scope; spec only calls for + - *.
func complexArith(pos token.Position, op token.Kind, a, b Complex) (Value, *diag.Error) {
	switch op {
	case token.MINUS:
		return NewComplex(Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}), nil
	case token.ASTERISK:
		return NewComplex(Complex{Re: a.Re*b.Re - a.Im*b.Im, Im: a.Re*b.Im + a.Im*b.Re}), nil
	default:
		return Value{}, diag.NewType(pos, fmt.Sprintf("'%s' is not supported on complex numbers", op), "+, -, or *", "complex")
	}
}

func divideValues(pos token.Position, left, right Value) (Value, *diag.Error) {
	switch {
	case left.Kind == IntKind && right.Kind == IntKind:
		if right.Int == 0 {
			return Value{}, diag.NewRuntime(pos, "division by zero")
		}
		return Int(left.Int / right.Int), nil
	case left.Kind == FloatKind && right.Kind == FloatKind:
		if right.Float == 0 {
			return Value{}, diag.NewRuntime(pos, "division by zero")
		}
		return Float(left.Float / right.Float), nil
	default:
		return Value{}, diag.NewType(pos, "invalid operand types for division", "int/int or float/float", left.TypeName()+"/"+right.TypeName())
	}
}

func moduloValues(pos token.Position, left, right Value) (Value, *diag.Error) {
	if left.Kind != IntKind || right.Kind != IntKind {
		return Value{}, diag.NewType(pos, "modulo requires two integers", "int/int", left.TypeName()+"/"+right.TypeName())
	}
	if right.Int == 0 {
		return Value{}, diag.NewRuntime(pos, "modulo by zero")
	}
	return Int(left.Int % right.Int), nil
}

func compareNumeric(pos token.Position, left, right Value, onInt func(int64, int64) bool, onFloat func(float64, float64) bool) (Value, *diag.Error) {
	switch {
	case left.Kind == IntKind && right.Kind == IntKind:
		return Boolean(onInt(left.Int, right.Int)), nil
	case left.Kind == FloatKind && right.Kind == FloatKind:
		return Boolean(onFloat(left.Float, right.Float)), nil
	default:
		return Value{}, diag.NewType(pos, "comparison requires matching numeric types", "int/int or float/float", left.TypeName()+"/"+right.TypeName())
	}
}
