package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/internal/lexer"
	"github.com/OzRAGEHarm/Zekken/internal/parser"
)

// run parses and evaluates src end to end against a fresh root
// environment, failing the test on any parse error or accumulated
// runtime error.
func run(t *testing.T, src string) (Value, *Environment) {
	t.Helper()
	diag.Global.Reset()
	tokens := lexer.Tokenize(src)
	prog, errs := parser.Parse(tokens)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	root := NewRoot()
	var out bytes.Buffer
	RegisterBuiltins(root, &out, strings.NewReader(""))
	result := RunProgram(prog, root)
	if diag.Global.Len() != 0 {
		t.Fatalf("unexpected runtime errors for %q: %v", src, diag.Global.Errors())
	}
	return result, root
}

func TestWhileLoopMutationPersistsAcrossIterations(t *testing.T) {
	result, _ := run(t, `let i: int = 0; while (i < 5) { i = i + 1; } i;`)
	if result.Kind != IntKind || result.Int != 5 {
		t.Errorf("final i = %+v, want Int(5)", result)
	}
}

func TestForInArrayBindsValueName(t *testing.T) {
	result, _ := run(t, `
		let items: arr = [1, 2, 3];
		let sum: int = 0;
		for |item| in items { sum = sum + item; }
		sum;
	`)
	if result.Kind != IntKind || result.Int != 6 {
		t.Errorf("sum = %+v, want Int(6)", result)
	}
}

func TestForInObjectBindsKeyAndValue(t *testing.T) {
	result, _ := run(t, `
		let person: obj = { name: "a", role: "b" };
		let out: string = "";
		for |k, v| in person { out = out + k + "=" + v + ";"; }
		out;
	`)
	if result.Kind != StringKind {
		t.Fatalf("want string result, got %+v", result)
	}
	if result.Str != "name=a;role=b;" {
		t.Errorf("out = %q, want \"name=a;role=b;\"", result.Str)
	}
}

func TestFunctionCallDoesNotMutateCaller(t *testing.T) {
	result, _ := run(t, `
		let x: int = 1;
		func bump |n: int| { x = x + n; return x; }
		let inner: int = bump => |100|;
		x;
	`)
	if result.Kind != IntKind || result.Int != 1 {
		t.Errorf("caller's x = %+v, want Int(1) unmutated", result)
	}
}

func TestMixedIntFloatArithmeticIsTypeError(t *testing.T) {
	diag.Global.Reset()
	tokens := lexer.Tokenize(`1 + 1.5;`)
	prog, errs := parser.Parse(tokens)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	root := NewRoot()
	var out bytes.Buffer
	RegisterBuiltins(root, &out, strings.NewReader(""))
	RunProgram(prog, root)
	if diag.Global.Len() != 1 {
		t.Fatalf("want 1 accumulated error, got %d", diag.Global.Len())
	}
	if diag.Global.Errors()[0].Kind != diag.KindType {
		t.Errorf("want Type error, got %v", diag.Global.Errors()[0].Kind)
	}
}

func TestLogicalOperatorsDoNotShortCircuit(t *testing.T) {
	result, _ := run(t, `
		let calls: int = 0;
		try {
			let ignored: bool = false && (1 / 0 == 0);
		} catch |e| {
			calls = calls + 1;
		}
		calls;
	`)
	if result.Kind != IntKind || result.Int != 1 {
		t.Errorf("calls = %+v, want Int(1): && must evaluate both operands", result)
	}
}

func TestTryCatchBindsStructuredError(t *testing.T) {
	result, _ := run(t, `
		let caught: string = "";
		try {
			let bad: int = 1 + 1.5;
		} catch |e| {
			caught = e.kind;
		}
		caught;
	`)
	if result.Kind != StringKind || result.Str != string(diag.KindType) {
		t.Errorf("caught = %+v, want %q", result, diag.KindType)
	}
}

func TestCatchAndContinueAtTopLevel(t *testing.T) {
	diag.Global.Reset()
	tokens := lexer.Tokenize(`
		let a: int = 1 + 1.5;
		let b: int = 2;
		b;
	`)
	prog, errs := parser.Parse(tokens)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	root := NewRoot()
	var out bytes.Buffer
	RegisterBuiltins(root, &out, strings.NewReader(""))
	result := RunProgram(prog, root)
	if diag.Global.Len() != 1 {
		t.Fatalf("want exactly 1 accumulated error, got %d", diag.Global.Len())
	}
	if result.Kind != IntKind || result.Int != 2 {
		t.Errorf("result = %+v, want Int(2): b must still evaluate after a's error", result)
	}
}

func TestArrayMethodsLengthPushPop(t *testing.T) {
	result, _ := run(t, `
		let xs: arr = [1, 2];
		xs.push => |3|;
		let popped: int = xs.pop => ||;
		xs.length => ||;
	`)
	if result.Kind != IntKind || result.Int != 2 {
		t.Errorf("xs.length() = %+v, want Int(2) after push(3)+pop()", result)
	}
}

func TestStringToUpper(t *testing.T) {
	result, _ := run(t, `"Hello".toUpper => ||;`)
	if result.Kind != StringKind || result.Str != "HELLO" {
		t.Errorf("toUpper = %+v, want \"HELLO\"", result)
	}
}

func TestObjectKeysPreservesDeclarationOrder(t *testing.T) {
	result, _ := run(t, `
		let o: obj = { z: 1, a: 2, m: 3 };
		o.keys => ||;
	`)
	if result.Kind != ArrayKind || len(result.Array) != 3 {
		t.Fatalf("want 3-element array, got %+v", result)
	}
	want := []string{"z", "a", "m"}
	for i, w := range want {
		if result.Array[i].Str != w {
			t.Errorf("keys()[%d] = %q, want %q (declaration order)", i, result.Array[i].Str, w)
		}
	}
}

func TestComplexAdd(t *testing.T) {
	// stdlib imports this package, so its math library cannot be linked
	// in here; register a stand-in that carries only the I constant.
	RegisterLibrary("math", func() Value {
		return NewObject([]string{"I"}, map[string]Value{"I": NewComplex(Complex{Im: 1})})
	})
	result, _ := run(t, `
		use math;
		math.I + math.I;
	`)
	if result.Kind != ComplexKind {
		t.Fatalf("want complex result, got %+v", result)
	}
	if result.Complex.Im != 2 {
		t.Errorf("(I + I).Im = %v, want 2", result.Complex.Im)
	}
}
