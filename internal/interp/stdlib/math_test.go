package stdlib

import (
	"testing"

	"github.com/OzRAGEHarm/Zekken/internal/interp"
)

func nativeFromObject(t *testing.T, obj interp.Value, name string) interp.NativeFunc {
	t.Helper()
	v, ok := obj.Object[name]
	if !ok {
		t.Fatalf("math library has no %q entry", name)
	}
	if v.Kind != interp.NativeFunctionKind {
		t.Fatalf("%q is not a native function: %+v", name, v)
	}
	return v.Native
}

func TestMathConstants(t *testing.T) {
	lib := buildMathLibrary()
	pi, ok := lib.Object["PI"]
	if !ok || pi.Kind != interp.FloatKind {
		t.Fatalf("want PI float constant, got %+v", pi)
	}
	if pi.Float < 3.14 || pi.Float > 3.15 {
		t.Errorf("PI = %v, want ~3.14159", pi.Float)
	}
	i, ok := lib.Object["I"]
	if !ok || i.Kind != interp.ComplexKind {
		t.Fatalf("want I complex constant, got %+v", i)
	}
	if i.Complex.Re != 0 || i.Complex.Im != 1 {
		t.Errorf("I = %+v, want 0+1i", i.Complex)
	}
}

func TestMathSqrtAndPow(t *testing.T) {
	lib := buildMathLibrary()
	sqrt := nativeFromObject(t, lib, "sqrt")
	result, err := sqrt([]interp.Value{interp.Int(9)})
	if err != nil {
		t.Fatalf("sqrt(9) errored: %v", err)
	}
	if result.Kind != interp.FloatKind || result.Float != 3 {
		t.Errorf("sqrt(9) = %+v, want Float(3)", result)
	}

	pow := nativeFromObject(t, lib, "pow")
	result, err = pow([]interp.Value{interp.Int(2), interp.Int(10)})
	if err != nil {
		t.Fatalf("pow(2, 10) errored: %v", err)
	}
	if result.Kind != interp.FloatKind || result.Float != 1024 {
		t.Errorf("pow(2, 10) = %+v, want Float(1024)", result)
	}
}

func TestMathAbsPreservesIntType(t *testing.T) {
	lib := buildMathLibrary()
	abs := nativeFromObject(t, lib, "abs")
	result, err := abs([]interp.Value{interp.Int(-7)})
	if err != nil {
		t.Fatalf("abs(-7) errored: %v", err)
	}
	if result.Kind != interp.IntKind || result.Int != 7 {
		t.Errorf("abs(-7) = %+v, want Int(7)", result)
	}
}

func TestMathVectorAndDot(t *testing.T) {
	lib := buildMathLibrary()
	vector := nativeFromObject(t, lib, "vector")
	v1, err := vector([]interp.Value{interp.NewArray([]interp.Value{interp.Int(1), interp.Int(2), interp.Int(3)})})
	if err != nil {
		t.Fatalf("vector([1,2,3]) errored: %v", err)
	}
	if v1.Kind != interp.VectorKind || len(v1.Vector) != 3 {
		t.Fatalf("want 3-element vector, got %+v", v1)
	}

	dot := nativeFromObject(t, lib, "dot")
	result, err := dot([]interp.Value{v1, v1})
	if err != nil {
		t.Fatalf("dot(v, v) errored: %v", err)
	}
	if result.Kind != interp.FloatKind || result.Float != 14 {
		t.Errorf("dot([1,2,3],[1,2,3]) = %+v, want Float(14)", result)
	}
}

func TestMathMatmul(t *testing.T) {
	lib := buildMathLibrary()
	matrix := nativeFromObject(t, lib, "matrix")
	identity, err := matrix([]interp.Value{interp.NewArray([]interp.Value{
		interp.NewArray([]interp.Value{interp.Int(1), interp.Int(0)}),
		interp.NewArray([]interp.Value{interp.Int(0), interp.Int(1)}),
	})})
	if err != nil {
		t.Fatalf("matrix(identity) errored: %v", err)
	}

	other, err := matrix([]interp.Value{interp.NewArray([]interp.Value{
		interp.NewArray([]interp.Value{interp.Int(5), interp.Int(6)}),
		interp.NewArray([]interp.Value{interp.Int(7), interp.Int(8)}),
	})})
	if err != nil {
		t.Fatalf("matrix(other) errored: %v", err)
	}

	matmul := nativeFromObject(t, lib, "matmul")
	result, err := matmul([]interp.Value{identity, other})
	if err != nil {
		t.Fatalf("matmul(identity, other) errored: %v", err)
	}
	if result.Kind != interp.MatrixKind {
		t.Fatalf("want matrix result, got %+v", result)
	}
	want := [][]float64{{5, 6}, {7, 8}}
	for i := range want {
		for j := range want[i] {
			if result.Matrix[i][j] != want[i][j] {
				t.Errorf("matmul(identity, other)[%d][%d] = %v, want %v", i, j, result.Matrix[i][j], want[i][j])
			}
		}
	}
}

func TestMathMatmulDimensionMismatch(t *testing.T) {
	lib := buildMathLibrary()
	matrix := nativeFromObject(t, lib, "matrix")
	a, _ := matrix([]interp.Value{interp.NewArray([]interp.Value{
		interp.NewArray([]interp.Value{interp.Int(1), interp.Int(2), interp.Int(3)}),
	})})
	b, _ := matrix([]interp.Value{interp.NewArray([]interp.Value{
		interp.NewArray([]interp.Value{interp.Int(1), interp.Int(2)}),
	})})

	matmul := nativeFromObject(t, lib, "matmul")
	if _, err := matmul([]interp.Value{a, b}); err == nil {
		t.Error("matmul with mismatched dimensions should error")
	}
}
