// Package parser implements the Zekken parser: recursive-descent for
// statements with a hand-written Pratt expression parser embedded
// inside it (spec.md §4.3).
//
// The lexer runs to completion up front (internal/lexer.Tokenize), so
// the parser walks a fixed token slice rather than streaming from a
// live scanner; cur/peek are simple slice-index lookups.
package parser

import (
	"fmt"

	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// Precedence levels, lowest to highest (spec.md §4.3).
const (
	_ int = iota
	LOWEST
	ASSIGNMENT // = += -= *= /= %=
	LOGICAL    // && ||
	COMPARISON // == != < > <= >=
	SUM        // + -
	PRODUCT    // * / %
	CALL       // postfix =>|args|, ., [
)

var precedences = map[token.Kind]int{
	token.ASSIGN:         ASSIGNMENT,
	token.PLUS_ASSIGN:    ASSIGNMENT,
	token.MINUS_ASSIGN:   ASSIGNMENT,
	token.STAR_ASSIGN:    ASSIGNMENT,
	token.SLASH_ASSIGN:   ASSIGNMENT,
	token.PERCENT_ASSIGN: ASSIGNMENT,
	token.AND:            LOGICAL,
	token.OR:             LOGICAL,
	token.EQ:             COMPARISON,
	token.NOT_EQ:         COMPARISON,
	token.LESS:           COMPARISON,
	token.GREATER:        COMPARISON,
	token.LESS_EQ:        COMPARISON,
	token.GREATER_EQ:     COMPARISON,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.ASTERISK:       PRODUCT,
	token.SLASH:          PRODUCT,
	token.PERCENT:        PRODUCT,
	token.FAT_ARROW:      CALL,
	token.DOT:            CALL,
	token.LBRACKET:       CALL,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// BlockContext names the enclosing construct being parsed. The parser
// pushes one on entering each brace-delimited body and pops it on
// leaving; neither synchronize() nor the error messages read it.
type BlockContext struct {
	Kind string
	Pos  token.Position
}

// Parser walks a fixed token slice and builds a Program.
type Parser struct {
	tokens []token.Token
	pos    int

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn

	blockStack []BlockContext
	errors     []*diag.Error
}

// New creates a Parser over a token stream already produced by the lexer.
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	p.prefixFns = map[token.Kind]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseIntLit,
		token.FLOAT:    p.parseFloatLit,
		token.STRING:   p.parseStringLit,
		token.BOOLEAN:  p.parseBoolLit,
		token.MINUS:    p.parseUnaryMinus,
		token.LPAREN:   p.parseGroupedExpr,
		token.LBRACKET: p.parseArrayLit,
		token.LBRACE:   p.parseObjectLit,
		token.AT:       p.parseNativeCall,
	}
	p.infixFns = map[token.Kind]infixParseFn{
		token.PLUS:           p.parseBinaryExpr,
		token.MINUS:          p.parseBinaryExpr,
		token.ASTERISK:       p.parseBinaryExpr,
		token.SLASH:          p.parseBinaryExpr,
		token.PERCENT:        p.parseBinaryExpr,
		token.EQ:             p.parseBinaryExpr,
		token.NOT_EQ:         p.parseBinaryExpr,
		token.LESS:           p.parseBinaryExpr,
		token.GREATER:        p.parseBinaryExpr,
		token.LESS_EQ:        p.parseBinaryExpr,
		token.GREATER_EQ:     p.parseBinaryExpr,
		token.AND:            p.parseBinaryExpr,
		token.OR:             p.parseBinaryExpr,
		token.ASSIGN:         p.parseAssignExpr,
		token.PLUS_ASSIGN:    p.parseAssignExpr,
		token.MINUS_ASSIGN:   p.parseAssignExpr,
		token.STAR_ASSIGN:    p.parseAssignExpr,
		token.SLASH_ASSIGN:   p.parseAssignExpr,
		token.PERCENT_ASSIGN: p.parseAssignExpr,
		token.DOT:            p.parseMemberExpr,
		token.LBRACKET:       p.parseIndexExpr,
		token.FAT_ARROW:      p.parseCallExpr,
	}
	return p
}

// Parse tokenizes-and-parses is split: Parse takes already-scanned
// tokens and returns the Program plus any accumulated syntax errors.
func Parse(tokens []token.Token) (*ast.Program, []*diag.Error) {
	p := New(tokens)
	prog := p.ParseProgram()
	return prog, p.errors
}

// Errors returns the accumulated syntax diagnostics.
func (p *Parser) Errors() []*diag.Error { return p.errors }

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur().Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) atEnd() bool { return p.curIs(token.EOF) }

// expect advances past the current token if it matches kind, recording
// a Syntax error with the expected/found payload otherwise (spec.md §4.3).
func (p *Parser) expect(kind token.Kind) (token.Token, bool) {
	if p.curIs(kind) {
		return p.advance(), true
	}
	p.syntaxError(kind)
	return token.Token{}, false
}

func (p *Parser) syntaxError(expected token.Kind) {
	tok := p.cur()
	e := diag.NewSyntax(tok.Pos,
		fmt.Sprintf("unexpected token %s", tok.Kind),
		expected.String(), tok.Kind.String())
	p.errors = append(p.errors, e)
}

func (p *Parser) syntaxErrorf(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, diag.NewSyntax(pos, fmt.Sprintf(format, args...), "", ""))
}

func (p *Parser) precedence(k token.Kind) int {
	if prec, ok := precedences[k]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) pushBlock(kind string, pos token.Position) {
	p.blockStack = append(p.blockStack, BlockContext{Kind: kind, Pos: pos})
}

func (p *Parser) popBlock() {
	if len(p.blockStack) > 0 {
		p.blockStack = p.blockStack[:len(p.blockStack)-1]
	}
}

// synchronize recovers from a parse error by skipping to the next
// statement boundary: `;`, `}`, or a top-level keyword (spec.md §4.3).
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.curIs(token.SEMICOLON) {
			p.advance()
			return
		}
		if p.curIs(token.RBRACE) {
			return
		}
		switch p.cur().Kind {
		case token.LET, token.CONST, token.FUNC, token.IF, token.FOR,
			token.WHILE, token.USE, token.INCLUDE, token.EXPORT,
			token.RETURN, token.TRY:
			return
		}
		p.advance()
	}
}
