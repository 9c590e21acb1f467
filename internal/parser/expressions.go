package parser

import (
	"strconv"

	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// parseExpression is the Pratt precedence-climbing core: a prefix
// parse produces the left operand, then infix parse functions fold in
// operators whose precedence exceeds minPrec (spec.md §4.3).
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	prefix, ok := p.prefixFns[p.cur().Kind]
	if !ok {
		p.syntaxErrorf(p.cur().Pos, "no expression can start with %s", p.cur().Kind)
		p.advance()
		return nil
	}
	left := prefix()

	for !p.curIs(token.SEMICOLON) && minPrec < p.precedence(p.cur().Kind) {
		infix, ok := p.infixFns[p.cur().Kind]
		if !ok {
			return left
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.advance()
	return &ast.Identifier{Position: tok.Pos, Name: tok.Value}
}

func (p *Parser) parseIntLit() ast.Expression {
	tok := p.advance()
	v, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		p.syntaxErrorf(tok.Pos, "invalid integer literal %q", tok.Value)
	}
	return &ast.IntLit{Position: tok.Pos, Value: v}
}

func (p *Parser) parseFloatLit() ast.Expression {
	tok := p.advance()
	v, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		p.syntaxErrorf(tok.Pos, "invalid float literal %q", tok.Value)
	}
	return &ast.FloatLit{Position: tok.Pos, Value: v}
}

func (p *Parser) parseStringLit() ast.Expression {
	tok := p.advance()
	return &ast.StringLit{Position: tok.Pos, Value: tok.Value}
}

func (p *Parser) parseBoolLit() ast.Expression {
	tok := p.advance()
	return &ast.BoolLit{Position: tok.Pos, Value: tok.Value == "true"}
}

// parseUnaryMinus desugars `-expr` into `0 - expr` (spec.md §4.3), so
// the evaluator has a single BinaryExpr code path for subtraction
// rather than a separate unary-negation case. Negative numeric
// literals are folded by the lexer itself and never reach here.
func (p *Parser) parseUnaryMinus() ast.Expression {
	pos := p.advance().Pos // consume '-'
	operand := p.parseExpression(CALL)
	return &ast.BinaryExpr{
		Position: pos,
		Left:     &ast.IntLit{Position: pos, Value: 0},
		Operator: token.MINUS,
		Right:    operand,
	}
}

func (p *Parser) parseGroupedExpr() ast.Expression {
	p.advance() // (
	expr := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	return expr
}

func (p *Parser) parseArrayLit() ast.Expression {
	pos := p.advance().Pos // [
	var elems []ast.Expression
	for !p.curIs(token.RBRACKET) && !p.atEnd() {
		elems = append(elems, p.parseExpression(LOWEST))
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RBRACKET)
	return &ast.ArrayLit{Position: pos, Elements: elems}
}

// parseObjectLit parses `{ key: expr, ... }`. Property order is
// preserved in Properties; the synthetic __keys__ entry materializes
// at evaluation time, not here (spec.md §4.3).
func (p *Parser) parseObjectLit() ast.Expression {
	pos := p.advance().Pos // {
	var props []ast.Property
	for !p.curIs(token.RBRACE) && !p.atEnd() {
		keyTok := p.advance()
		p.expect(token.COLON)
		val := p.parseExpression(LOWEST)
		props = append(props, ast.Property{Position: keyTok.Pos, Key: keyTok.Value, Value: val})
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RBRACE)
	return &ast.ObjectLit{Position: pos, Properties: props}
}

// parseNativeCall parses `@IDENT => |args|`: the callee is the bare
// identifier with the `@` dropped from the AST, but Native stays set
// so lint/evaluator can tell it apart from a user-function call
// (spec.md §4.3).
func (p *Parser) parseNativeCall() ast.Expression {
	pos := p.advance().Pos // @
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	callee := &ast.Identifier{Position: nameTok.Pos, Name: nameTok.Value}
	if !p.curIs(token.FAT_ARROW) {
		p.syntaxError(token.FAT_ARROW)
		return callee
	}
	return p.finishCall(pos, callee, true)
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	opTok := p.advance()
	prec := p.precedence(opTok.Kind)
	right := p.parseExpression(prec)
	return &ast.BinaryExpr{Position: opTok.Pos, Left: left, Operator: opTok.Kind, Right: right}
}

// parseAssignExpr is right-associative: `a = b = c` assigns c to b
// then b to a, matching the precedence table's explicit
// right-associativity note (spec.md §4.3).
func (p *Parser) parseAssignExpr(left ast.Expression) ast.Expression {
	opTok := p.advance()
	value := p.parseExpression(ASSIGNMENT - 1)
	return &ast.AssignExpr{Position: opTok.Pos, Target: left, Operator: opTok.Kind, Value: value}
}

func (p *Parser) parseMemberExpr(left ast.Expression) ast.Expression {
	dotPos := p.advance().Pos // .
	nameTok := p.advance()
	return &ast.MemberExpr{
		Position: dotPos,
		Object:   left,
		Property: &ast.Identifier{Position: nameTok.Pos, Name: nameTok.Value},
		Computed: false,
	}
}

func (p *Parser) parseIndexExpr(left ast.Expression) ast.Expression {
	pos := p.advance().Pos // [
	idx := p.parseExpression(LOWEST)
	p.expect(token.RBRACKET)
	return &ast.MemberExpr{Position: pos, Object: left, Property: idx, Computed: true}
}

// parseCallExpr handles the postfix `=> |args|` call form, which
// applies uniformly to identifiers and member expressions so method
// calls and plain function calls share one code path (spec.md §4.3).
func (p *Parser) parseCallExpr(callee ast.Expression) ast.Expression {
	pos := p.cur().Pos
	return p.finishCall(pos, callee, false)
}

func (p *Parser) finishCall(pos token.Position, callee ast.Expression, native bool) ast.Expression {
	p.expect(token.FAT_ARROW)
	// The lexer reads an empty argument list `||` as a single OR token.
	if p.curIs(token.OR) {
		p.advance()
		return &ast.CallExpr{Position: pos, Callee: callee, Native: native}
	}
	p.expect(token.PIPE)
	var args []ast.Expression
	for !p.curIs(token.PIPE) && !p.atEnd() {
		args = append(args, p.parseExpression(LOWEST))
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.PIPE)
	return &ast.CallExpr{Position: pos, Callee: callee, Args: args, Native: native}
}
