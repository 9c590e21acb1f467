// Package token defines the lexical token types shared by the lexer,
// parser, AST, and diagnostics packages.
package token

import "fmt"

// Position is a 1-based source location. It is attached to every
// token, every AST node, and every diagnostic.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position has been set to a real
// location (line 1 or greater).
func (p Position) IsValid() bool {
	return p.Line > 0
}
