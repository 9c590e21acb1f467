// Package stdlib registers Zekken's three standard libraries — math,
// fs, and os — with internal/interp's library table (spec.md §4.5.5
// point 1), grounded on original_source/src/libraries/{math,fs,os}.rs.
// Each file's init() calls interp.RegisterLibrary so a blank import of
// this package is enough to make `use math;` / `use fs;` / `use os;`
// resolve.
package stdlib

import (
	"math"

	"github.com/OzRAGEHarm/Zekken/internal/interp"
)

func init() {
	interp.RegisterLibrary("math", buildMathLibrary)
}

func buildMathLibrary() interp.Value {
	keys := []string{"PI", "E", "I", "sqrt", "pow", "abs", "sin", "cos", "tan", "vector", "dot", "matrix", "matmul"}
	props := map[string]interp.Value{
		"PI":     interp.Float(math.Pi),
		"E":      interp.Float(math.E),
		"I":      interp.NewComplex(interp.Complex{Re: 0, Im: 1}),
		"sqrt":   nativeOf(mathSqrt),
		"pow":    nativeOf(mathPow),
		"abs":    nativeOf(mathAbs),
		"sin":    nativeOf(mathUnary(math.Sin)),
		"cos":    nativeOf(mathUnary(math.Cos)),
		"tan":    nativeOf(mathUnary(math.Tan)),
		"vector": nativeOf(mathVector),
		"dot":    nativeOf(mathDot),
		"matrix": nativeOf(mathMatrix),
		"matmul": nativeOf(mathMatmul),
	}
	return interp.NewObject(keys, props)
}

func nativeOf(fn interp.NativeFunc) interp.Value {
	return interp.Value{Kind: interp.NativeFunctionKind, Native: fn}
}

func numeric(v interp.Value) (float64, bool) {
	switch v.Kind {
	case interp.IntKind:
		return float64(v.Int), true
	case interp.FloatKind:
		return v.Float, true
	default:
		return 0, false
	}
}

func mathSqrt(args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Value{}, errf("sqrt expects exactly one argument")
	}
	n, ok := numeric(args[0])
	if !ok {
		return interp.Value{}, errf("sqrt expects a numeric argument")
	}
	return interp.Float(math.Sqrt(n)), nil
}

func mathPow(args []interp.Value) (interp.Value, error) {
	if len(args) != 2 {
		return interp.Value{}, errf("pow expects exactly two arguments")
	}
	base, ok1 := numeric(args[0])
	exp, ok2 := numeric(args[1])
	if !ok1 || !ok2 {
		return interp.Value{}, errf("pow expects numeric arguments")
	}
	return interp.Float(math.Pow(base, exp)), nil
}

func mathAbs(args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Value{}, errf("abs expects exactly one argument")
	}
	switch args[0].Kind {
	case interp.IntKind:
		x := args[0].Int
		if x < 0 {
			x = -x
		}
		return interp.Int(x), nil
	case interp.FloatKind:
		return interp.Float(math.Abs(args[0].Float)), nil
	default:
		return interp.Value{}, errf("abs expects a numeric argument")
	}
}

func mathUnary(fn func(float64) float64) interp.NativeFunc {
	return func(args []interp.Value) (interp.Value, error) {
		if len(args) != 1 {
			return interp.Value{}, errf("expects exactly one argument")
		}
		n, ok := numeric(args[0])
		if !ok {
			return interp.Value{}, errf("expects a numeric argument")
		}
		return interp.Float(fn(n)), nil
	}
}

func toFloatSlice(v interp.Value) ([]float64, error) {
	switch v.Kind {
	case interp.VectorKind:
		return append([]float64(nil), v.Vector...), nil
	case interp.ArrayKind:
		out := make([]float64, len(v.Array))
		for i, e := range v.Array {
			n, ok := numeric(e)
			if !ok {
				return nil, errf("array elements must be numbers")
			}
			out[i] = n
		}
		return out, nil
	default:
		return nil, errf("expects a vector or array of numbers")
	}
}

func mathVector(args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Value{}, errf("vector expects exactly one argument")
	}
	fs, err := toFloatSlice(args[0])
	if err != nil {
		return interp.Value{}, err
	}
	return interp.NewVector(fs), nil
}

func mathDot(args []interp.Value) (interp.Value, error) {
	if len(args) != 2 {
		return interp.Value{}, errf("dot expects exactly two arguments")
	}
	v1, err := toFloatSlice(args[0])
	if err != nil {
		return interp.Value{}, errf("dot expects two vectors or arrays")
	}
	v2, err := toFloatSlice(args[1])
	if err != nil {
		return interp.Value{}, errf("dot expects two vectors or arrays")
	}
	if len(v1) != len(v2) {
		return interp.Value{}, errf("dot: vectors must be the same length")
	}
	sum := 0.0
	for i := range v1 {
		sum += v1[i] * v2[i]
	}
	return interp.Float(sum), nil
}

func toFloatMatrix(v interp.Value) ([][]float64, error) {
	switch v.Kind {
	case interp.MatrixKind:
		cp := make([][]float64, len(v.Matrix))
		for i, row := range v.Matrix {
			cp[i] = append([]float64(nil), row...)
		}
		return cp, nil
	case interp.ArrayKind:
		rows := make([][]float64, len(v.Array))
		for i, rowVal := range v.Array {
			row, err := toFloatSlice(rowVal)
			if err != nil {
				return nil, errf("matrix expects an array of arrays")
			}
			rows[i] = row
		}
		return rows, nil
	default:
		return nil, errf("expects a matrix or array of arrays")
	}
}

func mathMatrix(args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Value{}, errf("matrix expects exactly one argument")
	}
	rows, err := toFloatMatrix(args[0])
	if err != nil {
		return interp.Value{}, err
	}
	return interp.NewMatrix(rows), nil
}

func mathMatmul(args []interp.Value) (interp.Value, error) {
	if len(args) != 2 {
		return interp.Value{}, errf("matmul expects exactly two arguments")
	}
	a, err := toFloatMatrix(args[0])
	if err != nil {
		return interp.Value{}, errf("matmul expects both arguments to be matrices")
	}
	b, err := toFloatMatrix(args[1])
	if err != nil {
		return interp.Value{}, errf("matmul expects both arguments to be matrices")
	}
	if len(a) == 0 || len(b) == 0 {
		return interp.Value{}, errf("matmul: matrix is empty")
	}
	aCols := len(a[0])
	bRows := len(b)
	if aCols != bRows {
		return interp.Value{}, errf("matmul: number of columns in first matrix must equal number of rows in second matrix")
	}
	bCols := len(b[0])
	result := make([][]float64, len(a))
	for i, aRow := range a {
		row := make([]float64, bCols)
		for j := 0; j < bCols; j++ {
			sum := 0.0
			for k := 0; k < aCols; k++ {
				sum += aRow[k] * b[k][j]
			}
			row[j] = sum
		}
		result[i] = row
	}
	return interp.NewMatrix(result), nil
}
