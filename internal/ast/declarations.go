package ast

import (
	"fmt"
	"strings"

	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// VarDecl is `(let|const) IDENT : TYPE = EXPR ;`. If Type is
// token.TYPE_FN the parser never emits a VarDecl — it rewrites the
// declaration into a Lambda statement instead (spec.md §3, §4.3).
type VarDecl struct {
	Position token.Position
	Name     string
	Type     token.Kind
	Init     *Content // optional initializer
	Const    bool
}

func (v *VarDecl) statementNode()       {}
func (v *VarDecl) TokenLiteral() string { return "let" }
func (v *VarDecl) Pos() token.Position  { return v.Position }
func (v *VarDecl) String() string {
	kw := "let"
	if v.Const {
		kw = "const"
	}
	s := fmt.Sprintf("%s %s: %s", kw, v.Name, v.Type)
	if v.Init != nil {
		s += " = " + v.Init.String()
	}
	return s + ";"
}

// Param is one `name: type` entry in a pipe-delimited parameter list.
type Param struct {
	Position token.Position
	Name     string
	Type     token.Kind
}

func (p Param) String() string { return fmt.Sprintf("%s: %s", p.Name, p.Type) }

// FuncDecl is `func IDENT |params| { body }`.
type FuncDecl struct {
	Position token.Position
	Name     string
	Params   []Param
	Body     []Content
}

func (f *FuncDecl) statementNode()       {}
func (f *FuncDecl) TokenLiteral() string { return "func" }
func (f *FuncDecl) Pos() token.Position  { return f.Position }
func (f *FuncDecl) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	var body strings.Builder
	for _, c := range f.Body {
		body.WriteString(c.String())
		body.WriteString(" ")
	}
	return fmt.Sprintf("func %s |%s| { %s}", f.Name, strings.Join(params, ", "), body.String())
}

// Lambda is `|params| { body }`, bound to a name when it appears as
// the rewritten form of a `let x: fn = |...| {...}` declaration.
type Lambda struct {
	Position token.Position
	Name     string // bound name; empty for an anonymous lambda expression
	Params   []Param
	Body     []Content
	Const    bool
}

func (l *Lambda) statementNode()       {}
func (l *Lambda) TokenLiteral() string { return "fn" }
func (l *Lambda) Pos() token.Position  { return l.Position }
func (l *Lambda) String() string {
	params := make([]string, len(l.Params))
	for i, p := range l.Params {
		params[i] = p.String()
	}
	prefix := ""
	if l.Name != "" {
		kw := "let"
		if l.Const {
			kw = "const"
		}
		prefix = fmt.Sprintf("%s %s: fn = ", kw, l.Name)
	}
	return fmt.Sprintf("%s|%s| { ... }", prefix, strings.Join(params, ", "))
}

// Property is one `key: expr` entry of an object literal or
// declaration, in source order.
type Property struct {
	Position token.Position
	Key      string
	Value    Expression
}

// ObjectDecl is a named object declaration `obj IDENT { key: expr, ... };`,
// declaring IDENT as a constant object bound to the given properties
// (spec.md §3's ObjectDecl; grammar reconstructed from
// original_source/src/ast/mod.rs's ObjectDecl{ident, properties} shape,
// since spec.md's §4.3 grammar table is silent on it).
type ObjectDecl struct {
	Position   token.Position
	Name       string
	Properties []Property
}

func (o *ObjectDecl) statementNode()       {}
func (o *ObjectDecl) TokenLiteral() string { return "obj" }
func (o *ObjectDecl) Pos() token.Position  { return o.Position }
func (o *ObjectDecl) String() string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		parts[i] = fmt.Sprintf("%s: %s", p.Key, p.Value.String())
	}
	return fmt.Sprintf("obj %s { %s }", o.Name, strings.Join(parts, ", "))
}

// Return is `return EXPR? ;`.
type Return struct {
	Position token.Position
	Value    Expression // nil for a bare `return;`
}

func (r *Return) statementNode()       {}
func (r *Return) TokenLiteral() string { return "return" }
func (r *Return) Pos() token.Position  { return r.Position }
func (r *Return) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

// Use is `use IDENT;` or `use { m1, m2 } from IDENT;`.
type UseStmt struct {
	Position token.Position
	Module   string
	Methods  []string // nil for a whole-library import
}

func (u *UseStmt) statementNode()       {}
func (u *UseStmt) TokenLiteral() string { return "use" }
func (u *UseStmt) Pos() token.Position  { return u.Position }
func (u *UseStmt) String() string {
	if u.Methods == nil {
		return fmt.Sprintf("use %s;", u.Module)
	}
	return fmt.Sprintf("use { %s } from %s;", strings.Join(u.Methods, ", "), u.Module)
}

// Include is `include STRING;` or `include { m1, ... } from STRING;`.
type IncludeStmt struct {
	Position token.Position
	Path     string
	Methods  []string // nil for a whole-file merge
}

func (i *IncludeStmt) statementNode()       {}
func (i *IncludeStmt) TokenLiteral() string { return "include" }
func (i *IncludeStmt) Pos() token.Position  { return i.Position }
func (i *IncludeStmt) String() string {
	if i.Methods == nil {
		return fmt.Sprintf("include %q;", i.Path)
	}
	return fmt.Sprintf("include { %s } from %q;", strings.Join(i.Methods, ", "), i.Path)
}

// Export is `export a, b, c;`.
type ExportStmt struct {
	Position token.Position
	Names    []string
}

func (e *ExportStmt) statementNode()       {}
func (e *ExportStmt) TokenLiteral() string { return "export" }
func (e *ExportStmt) Pos() token.Position  { return e.Position }
func (e *ExportStmt) String() string {
	return fmt.Sprintf("export %s;", strings.Join(e.Names, ", "))
}

// ExprStmt adapts a bare expression into the Statement slot so an
// expression statement can sit directly in a Content sequence without
// the caller having to wrap it separately.
type ExprStmt struct {
	Position token.Position
	Expr     Expression
}

func (e *ExprStmt) statementNode()       {}
func (e *ExprStmt) TokenLiteral() string { return e.Expr.TokenLiteral() }
func (e *ExprStmt) Pos() token.Position  { return e.Position }
func (e *ExprStmt) String() string       { return e.Expr.String() + ";" }

// BlockStmt is a brace-delimited content sequence used as the `else`
// branch when no `else if` chain applies.
type BlockStmt struct {
	Position token.Position
	Body     []Content
}

func (b *BlockStmt) statementNode()       {}
func (b *BlockStmt) TokenLiteral() string { return "{" }
func (b *BlockStmt) Pos() token.Position  { return b.Position }
func (b *BlockStmt) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, c := range b.Body {
		sb.WriteString(c.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
