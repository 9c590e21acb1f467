package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// Identifier is a bare name reference.
type Identifier struct {
	Position token.Position
	Name     string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Name }
func (i *Identifier) Pos() token.Position  { return i.Position }
func (i *Identifier) String() string       { return i.Name }

// IntLit is an integer literal. A leading unary minus on a literal is
// folded in here by the lexer/parser rather than wrapped in a separate
// prefix node (spec.md §4.2 point 3); a unary minus on a non-literal
// expression desugars to `0 - expr` (spec.md §4.3).
type IntLit struct {
	Position token.Position
	Value    int64
}

func (n *IntLit) expressionNode()      {}
func (n *IntLit) TokenLiteral() string { return strconv.FormatInt(n.Value, 10) }
func (n *IntLit) Pos() token.Position  { return n.Position }
func (n *IntLit) String() string       { return strconv.FormatInt(n.Value, 10) }

// FloatLit is a floating-point literal.
type FloatLit struct {
	Position token.Position
	Value    float64
}

func (n *FloatLit) expressionNode()      {}
func (n *FloatLit) TokenLiteral() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *FloatLit) Pos() token.Position  { return n.Position }
func (n *FloatLit) String() string       { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// StringLit is a single- or double-quoted string literal, already
// escape-decoded by the lexer.
type StringLit struct {
	Position token.Position
	Value    string
}

func (n *StringLit) expressionNode()      {}
func (n *StringLit) TokenLiteral() string { return n.Value }
func (n *StringLit) Pos() token.Position  { return n.Position }
func (n *StringLit) String() string       { return fmt.Sprintf("%q", n.Value) }

// BoolLit is `true` or `false`.
type BoolLit struct {
	Position token.Position
	Value    bool
}

func (n *BoolLit) expressionNode()      {}
func (n *BoolLit) TokenLiteral() string { return strconv.FormatBool(n.Value) }
func (n *BoolLit) Pos() token.Position  { return n.Position }
func (n *BoolLit) String() string       { return strconv.FormatBool(n.Value) }

// ArrayLit is `[ expr, expr, ... ]`.
type ArrayLit struct {
	Position token.Position
	Elements []Expression
}

func (a *ArrayLit) expressionNode()      {}
func (a *ArrayLit) TokenLiteral() string { return "[" }
func (a *ArrayLit) Pos() token.Position  { return a.Position }
func (a *ArrayLit) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectLit is `{ key: expr, ... }`. Properties preserve source order;
// the evaluator is responsible for materializing the synthetic
// __keys__ property that carries that order into the runtime Value
// (spec.md §5, §7 ordered-object invariant).
type ObjectLit struct {
	Position   token.Position
	Properties []Property
}

func (o *ObjectLit) expressionNode()      {}
func (o *ObjectLit) TokenLiteral() string { return "{" }
func (o *ObjectLit) Pos() token.Position  { return o.Position }
func (o *ObjectLit) String() string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		parts[i] = fmt.Sprintf("%s: %s", p.Key, p.Value.String())
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// BinaryExpr is `left OP right` for arithmetic, comparison, and
// logical operators. && and || always evaluate both operands
// (SPEC_FULL.md §6 open question decision: no short-circuiting);
// both sides are evaluated by the caller before this node's operator
// is applied.
type BinaryExpr struct {
	Position token.Position
	Left     Expression
	Operator token.Kind
	Right    Expression
}

func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) TokenLiteral() string { return b.Operator.String() }
func (b *BinaryExpr) Pos() token.Position  { return b.Position }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Operator, b.Right.String())
}

// AssignExpr is `target = value` or a compound form like `target += value`.
// Target is always an Identifier or MemberExpr.
type AssignExpr struct {
	Position token.Position
	Target   Expression
	Operator token.Kind // ASSIGN, PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN, PERCENT_ASSIGN
	Value    Expression
}

func (a *AssignExpr) expressionNode()      {}
func (a *AssignExpr) TokenLiteral() string { return a.Operator.String() }
func (a *AssignExpr) Pos() token.Position  { return a.Position }
func (a *AssignExpr) String() string {
	return fmt.Sprintf("%s %s %s", a.Target.String(), a.Operator, a.Value.String())
}

// MemberExpr is `object.property` or `object[index]`. Computed is true
// for the bracket form, where Property is an arbitrary Expression
// rather than a bare name.
type MemberExpr struct {
	Position token.Position
	Object   Expression
	Property Expression
	Computed bool
}

func (m *MemberExpr) expressionNode()      {}
func (m *MemberExpr) TokenLiteral() string { return "." }
func (m *MemberExpr) Pos() token.Position  { return m.Position }
func (m *MemberExpr) String() string {
	if m.Computed {
		return fmt.Sprintf("%s[%s]", m.Object.String(), m.Property.String())
	}
	return fmt.Sprintf("%s.%s", m.Object.String(), m.Property.String())
}

// CallExpr is `callee => |args|`: a user-function call, a method call
// (Callee is a MemberExpr), or the native-call form `@name => |args|`
// (Callee is an Identifier and Native is true — the `@` is dropped
// from the AST but the flag is kept so lint/evaluator can tell native
// calls from user-function calls, spec.md §4.3).
type CallExpr struct {
	Position token.Position
	Callee   Expression
	Args     []Expression
	Native   bool
}

func (c *CallExpr) expressionNode()      {}
func (c *CallExpr) TokenLiteral() string { return "=>" }
func (c *CallExpr) Pos() token.Position  { return c.Position }
func (c *CallExpr) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	prefix := ""
	if c.Native {
		prefix = "@"
	}
	return fmt.Sprintf("%s%s => |%s|", prefix, c.Callee.String(), strings.Join(parts, ", "))
}
