// Package ast defines the Zekken abstract syntax tree: the Statement
// and Expression node types listed in spec.md §3, plus Content, the
// tagged sum used wherever a block body may hold either sort.
package ast

import (
	"strings"

	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself
// producing a value.
type Statement interface {
	Node
	statementNode()
}

// Content is the universal block-body element: a block mixes
// statements and expressions, and Content is whichever one a given
// slot holds. Exactly one of Stmt/Expr is non-nil.
type Content struct {
	Stmt Statement
	Expr Expression
}

// FromStatement wraps a Statement as Content.
func FromStatement(s Statement) Content { return Content{Stmt: s} }

// FromExpression wraps an Expression as Content.
func FromExpression(e Expression) Content { return Content{Expr: e} }

// IsExpression reports whether this Content holds an expression.
func (c Content) IsExpression() bool { return c.Expr != nil }

// Pos returns the position of whichever node this Content wraps.
func (c Content) Pos() token.Position {
	if c.Expr != nil {
		return c.Expr.Pos()
	}
	if c.Stmt != nil {
		return c.Stmt.Pos()
	}
	return token.Position{}
}

// String renders whichever node this Content wraps.
func (c Content) String() string {
	if c.Expr != nil {
		return c.Expr.String()
	}
	if c.Stmt != nil {
		return c.Stmt.String()
	}
	return ""
}

// Program is the AST root. Imports (use/include) are kept separate
// from Content so the evaluator can always run them first (spec.md §3).
type Program struct {
	Imports []Statement // UseStmt | IncludeStmt, in source order
	Content []Content
}

func (p *Program) statementNode()       {}
func (p *Program) TokenLiteral() string { return "program" }
func (p *Program) Pos() token.Position {
	if len(p.Imports) > 0 {
		return p.Imports[0].Pos()
	}
	if len(p.Content) > 0 {
		return p.Content[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}
func (p *Program) String() string {
	var sb strings.Builder
	for _, imp := range p.Imports {
		sb.WriteString(imp.String())
		sb.WriteString("\n")
	}
	for _, c := range p.Content {
		sb.WriteString(c.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
