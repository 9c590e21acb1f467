package ast

import (
	"fmt"
	"strings"

	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// IfStmt is `if (test) { body } (else if (test) { body })* (else { alt })?`.
// An `else if` chain is desugared into a single nested IfStmt held in
// Alt, so the evaluator only ever has one shape to walk.
type IfStmt struct {
	Position token.Position
	Test     Expression
	Body     []Content
	Alt      *IfStmt    // non-nil for `else if`
	Else     *BlockStmt // non-nil for a trailing plain `else`
}

func (i *IfStmt) statementNode()       {}
func (i *IfStmt) TokenLiteral() string { return "if" }
func (i *IfStmt) Pos() token.Position  { return i.Position }
func (i *IfStmt) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("if (%s) { ", i.Test.String()))
	for _, c := range i.Body {
		sb.WriteString(c.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	if i.Alt != nil {
		sb.WriteString(" else " + i.Alt.String())
	} else if i.Else != nil {
		sb.WriteString(" else " + i.Else.String())
	}
	return sb.String()
}

// ForStmt is the for-in loop `for |IDENT(, IDENT)?| in EXPR { body }`
// (spec.md §4.3's actual grammar — not the C-style test/update shape
// original_source/src/ast/mod.rs's ForStmt carries, which belongs to
// the original's bytecode-compiled counted loop and has no Zekken
// equivalent). One bound name iterates an array's values; two bound
// names iterate an object's key/value pairs.
type ForStmt struct {
	Position   token.Position
	KeyName    string // set only when iterating key/value pairs
	ValueName  string
	ValueType  token.Kind // optional type tag on ValueName; 0 if absent
	Collection Expression
	Body       []Content
}

func (f *ForStmt) statementNode()       {}
func (f *ForStmt) TokenLiteral() string { return "for" }
func (f *ForStmt) Pos() token.Position  { return f.Position }
func (f *ForStmt) String() string {
	vars := f.ValueName
	if f.KeyName != "" {
		vars = f.KeyName + ", " + f.ValueName
	}
	var body strings.Builder
	for _, c := range f.Body {
		body.WriteString(c.String())
		body.WriteString(" ")
	}
	return fmt.Sprintf("for |%s| in %s { %s}", vars, f.Collection.String(), body.String())
}

// WhileStmt is `while (test) { body }`.
type WhileStmt struct {
	Position token.Position
	Test     Expression
	Body     []Content
}

func (w *WhileStmt) statementNode()       {}
func (w *WhileStmt) TokenLiteral() string { return "while" }
func (w *WhileStmt) Pos() token.Position  { return w.Position }
func (w *WhileStmt) String() string {
	var body strings.Builder
	for _, c := range w.Body {
		body.WriteString(c.String())
		body.WriteString(" ")
	}
	return fmt.Sprintf("while (%s) { %s}", w.Test.String(), body.String())
}

// TryCatchStmt is `try { block } catch |e| { block }`. CatchName binds
// the caught error object within CatchBody.
type TryCatchStmt struct {
	Position  token.Position
	TryBody   []Content
	CatchName string
	CatchBody []Content
}

func (t *TryCatchStmt) statementNode()       {}
func (t *TryCatchStmt) TokenLiteral() string { return "try" }
func (t *TryCatchStmt) Pos() token.Position  { return t.Position }
func (t *TryCatchStmt) String() string {
	var try, catch strings.Builder
	for _, c := range t.TryBody {
		try.WriteString(c.String())
		try.WriteString(" ")
	}
	for _, c := range t.CatchBody {
		catch.WriteString(c.String())
		catch.WriteString(" ")
	}
	return fmt.Sprintf("try { %s} catch |%s| { %s}", try.String(), t.CatchName, catch.String())
}
