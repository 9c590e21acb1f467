package parser

import (
	"testing"

	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/internal/lexer"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks := lexer.Tokenize(src)
	prog, errs := Parse(toks)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return prog
}

func TestParseVarDecl(t *testing.T) {
	prog := parse(t, `let x: int = 2 + 3 * 4;`)
	if len(prog.Content) != 1 {
		t.Fatalf("want 1 statement, got %d", len(prog.Content))
	}
	decl, ok := prog.Content[0].Stmt.(*ast.VarDecl)
	if !ok {
		t.Fatalf("want *ast.VarDecl, got %T", prog.Content[0].Stmt)
	}
	if decl.Name != "x" || decl.Const {
		t.Errorf("got %+v", decl)
	}
	bin, ok := decl.Init.Expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("want BinaryExpr init, got %T", decl.Init.Expr)
	}
	if bin.Operator.String() == "" {
		t.Error("expected non-empty operator rendering")
	}
}

func TestParseLambdaRewrite(t *testing.T) {
	prog := parse(t, `let add: fn = |a: int, b: int| { return a + b; };`)
	lambda, ok := prog.Content[0].Stmt.(*ast.Lambda)
	if !ok {
		t.Fatalf("want *ast.Lambda, got %T", prog.Content[0].Stmt)
	}
	if lambda.Name != "add" || len(lambda.Params) != 2 {
		t.Errorf("got %+v", lambda)
	}
}

func TestParseNativeCall(t *testing.T) {
	prog := parse(t, `@println => |"hi"|;`)
	stmt, ok := prog.Content[0].Stmt.(*ast.ExprStmt)
	if !ok {
		t.Fatalf("want *ast.ExprStmt, got %T", prog.Content[0].Stmt)
	}
	call, ok := stmt.Expr.(*ast.CallExpr)
	if !ok || !call.Native {
		t.Fatalf("want native CallExpr, got %+v", stmt.Expr)
	}
	ident, ok := call.Callee.(*ast.Identifier)
	if !ok || ident.Name != "println" {
		t.Errorf("callee = %+v, want println identifier", call.Callee)
	}
}

func TestParseMethodCall(t *testing.T) {
	prog := parse(t, `x.push => |1|;`)
	stmt := prog.Content[0].Stmt.(*ast.ExprStmt)
	call := stmt.Expr.(*ast.CallExpr)
	member, ok := call.Callee.(*ast.MemberExpr)
	if !ok {
		t.Fatalf("want MemberExpr callee, got %T", call.Callee)
	}
	if member.Computed {
		t.Error("dotted member should not be computed")
	}
}

func TestParseIfElseIfDesugars(t *testing.T) {
	prog := parse(t, `if (true) { return 1; } else if (false) { return 2; } else { return 3; }`)
	ifStmt := prog.Content[0].Stmt.(*ast.IfStmt)
	if ifStmt.Alt == nil {
		t.Fatal("expected else-if to desugar into Alt")
	}
	if ifStmt.Alt.Else == nil {
		t.Fatal("expected trailing else to land in Alt.Else")
	}
}

func TestParseForInArray(t *testing.T) {
	prog := parse(t, `for |item| in items { }`)
	forStmt := prog.Content[0].Stmt.(*ast.ForStmt)
	if forStmt.ValueName != "item" || forStmt.KeyName != "" {
		t.Errorf("got %+v", forStmt)
	}
}

func TestParseForInObject(t *testing.T) {
	prog := parse(t, `for |k, v| in record { }`)
	forStmt := prog.Content[0].Stmt.(*ast.ForStmt)
	if forStmt.KeyName != "k" || forStmt.ValueName != "v" {
		t.Errorf("got %+v", forStmt)
	}
}

func TestParseWhile(t *testing.T) {
	prog := parse(t, `while (x < 10) { x = x + 1; }`)
	w := prog.Content[0].Stmt.(*ast.WhileStmt)
	if w.Test == nil || len(w.Body) != 1 {
		t.Errorf("got %+v", w)
	}
}

func TestParseTryCatch(t *testing.T) {
	prog := parse(t, `try { risky => ||; } catch |e| { println => |e.message|; }`)
	tc := prog.Content[0].Stmt.(*ast.TryCatchStmt)
	if tc.CatchName != "e" {
		t.Errorf("got %+v", tc)
	}
}

func TestParseUseWholeLibrary(t *testing.T) {
	prog := parse(t, `use math;`)
	if len(prog.Imports) != 1 {
		t.Fatalf("want 1 import, got %d", len(prog.Imports))
	}
	u := prog.Imports[0].(*ast.UseStmt)
	if u.Module != "math" || u.Methods != nil {
		t.Errorf("got %+v", u)
	}
}

func TestParseUseSelective(t *testing.T) {
	prog := parse(t, `use { sqrt, pow } from math;`)
	u := prog.Imports[0].(*ast.UseStmt)
	if len(u.Methods) != 2 {
		t.Errorf("got %+v", u)
	}
}

func TestParseInclude(t *testing.T) {
	prog := parse(t, `include "lib.zk";`)
	inc := prog.Imports[0].(*ast.IncludeStmt)
	if inc.Path != "lib.zk" {
		t.Errorf("got %+v", inc)
	}
}

func TestParseExport(t *testing.T) {
	prog := parse(t, `export a, b;`)
	e := prog.Content[0].Stmt.(*ast.ExportStmt)
	if len(e.Names) != 2 {
		t.Errorf("got %+v", e)
	}
}

func TestParseObjectDecl(t *testing.T) {
	prog := parse(t, `obj point { x: 1, y: 2 };`)
	od := prog.Content[0].Stmt.(*ast.ObjectDecl)
	if od.Name != "point" || len(od.Properties) != 2 {
		t.Errorf("got %+v", od)
	}
}

func TestParseArrayLit(t *testing.T) {
	prog := parse(t, `let nums: arr = [1, 2, 3];`)
	decl := prog.Content[0].Stmt.(*ast.VarDecl)
	arr, ok := decl.Init.Expr.(*ast.ArrayLit)
	if !ok || len(arr.Elements) != 3 {
		t.Errorf("got %+v", decl.Init.Expr)
	}
}

func TestParseUnaryMinusDesugars(t *testing.T) {
	prog := parse(t, `let x: int = -y;`)
	decl := prog.Content[0].Stmt.(*ast.VarDecl)
	bin, ok := decl.Init.Expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("want BinaryExpr (0 - y), got %T", decl.Init.Expr)
	}
	lit, ok := bin.Left.(*ast.IntLit)
	if !ok || lit.Value != 0 {
		t.Errorf("left operand should be literal 0, got %+v", bin.Left)
	}
}

func TestParseAssignmentPrecedence(t *testing.T) {
	prog := parse(t, `x = y = 1;`)
	stmt := prog.Content[0].Stmt.(*ast.ExprStmt)
	outer, ok := stmt.Expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("want AssignExpr, got %T", stmt.Expr)
	}
	if _, ok := outer.Value.(*ast.AssignExpr); !ok {
		t.Errorf("assignment should be right-associative, got value %T", outer.Value)
	}
}

func TestParseCompoundAssignment(t *testing.T) {
	prog := parse(t, `x += 1;`)
	stmt := prog.Content[0].Stmt.(*ast.ExprStmt)
	assign := stmt.Expr.(*ast.AssignExpr)
	if assign.Operator.String() == "" {
		t.Error("expected operator rendering")
	}
}

func TestParseRecoversFromSyntaxError(t *testing.T) {
	toks := lexer.Tokenize(`let ; let y: int = 1;`)
	_, errs := Parse(toks)
	if len(errs) == 0 {
		t.Fatal("expected at least one syntax error")
	}
}
