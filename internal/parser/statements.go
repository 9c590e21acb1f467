package parser

import (
	"github.com/OzRAGEHarm/Zekken/internal/ast"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// ParseProgram parses the full token stream, collecting imports
// (use/include) separately from the body content in source order
// (spec.md §3, §4.3).
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.atEnd() {
		startPos := p.pos
		stmt := p.parseTopLevel()
		if stmt == nil {
			if p.pos == startPos {
				p.advance()
			}
			continue
		}
		switch stmt.(type) {
		case *ast.UseStmt, *ast.IncludeStmt:
			prog.Imports = append(prog.Imports, stmt)
		default:
			prog.Content = append(prog.Content, ast.FromStatement(stmt))
		}
	}
	return prog
}

func (p *Parser) parseTopLevel() ast.Statement {
	switch p.cur().Kind {
	case token.LET, token.CONST:
		return p.parseVarOrLambdaDecl()
	case token.FUNC:
		return p.parseFuncDecl()
	case token.USE:
		return p.parseUseStmt()
	case token.INCLUDE:
		return p.parseIncludeStmt()
	case token.EXPORT:
		return p.parseExportStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.TRY:
		return p.parseTryCatchStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.LBRACE:
		return p.parseBlockStmt()
	default:
		return p.parseExprOrObjectDecl()
	}
}

// parseBody parses a brace-delimited Content sequence: `{ ... }`.
func (p *Parser) parseBody(blockKind string) []ast.Content {
	start := p.cur().Pos
	p.pushBlock(blockKind, start)
	defer p.popBlock()

	if _, ok := p.expect(token.LBRACE); !ok {
		return nil
	}
	var body []ast.Content
	for !p.curIs(token.RBRACE) && !p.atEnd() {
		startPos := p.pos
		stmt := p.parseTopLevel()
		if stmt == nil {
			if p.pos == startPos {
				p.advance()
			}
			continue
		}
		body = append(body, ast.FromStatement(stmt))
	}
	p.expect(token.RBRACE)
	return body
}

func (p *Parser) parseBlockStmt() ast.Statement {
	pos := p.cur().Pos
	body := p.parseBody("block")
	return &ast.BlockStmt{Position: pos, Body: body}
}

// parseVarOrLambdaDecl parses `(let|const) IDENT : TYPE = EXPR ;`,
// rewriting a `fn`-typed declaration into a Lambda statement
// (spec.md §4.3).
func (p *Parser) parseVarOrLambdaDecl() ast.Statement {
	pos := p.cur().Pos
	isConst := p.curIs(token.CONST)
	p.advance() // let|const

	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		p.synchronize()
		return nil
	}
	p.expect(token.COLON)
	typeTok := p.advance()

	var init *ast.Content
	if p.curIs(token.ASSIGN) {
		p.advance()
		if typeTok.Kind == token.TYPE_FN {
			lambda := p.parseLambdaLiteral(nameTok.Value, isConst, pos)
			p.expect(token.SEMICOLON)
			return lambda
		}
		expr := p.parseExpression(LOWEST)
		c := ast.FromExpression(expr)
		init = &c
	}
	p.expect(token.SEMICOLON)

	return &ast.VarDecl{
		Position: pos,
		Name:     nameTok.Value,
		Type:     typeTok.Kind,
		Init:     init,
		Const:    isConst,
	}
}

// parseLambdaLiteral parses `|params| { body }`.
func (p *Parser) parseLambdaLiteral(name string, isConst bool, pos token.Position) *ast.Lambda {
	params := p.parseParamList()
	body := p.parseBody("func")
	return &ast.Lambda{Position: pos, Name: name, Params: params, Body: body, Const: isConst}
}

// parseParamList parses a pipe-delimited `|a: int, b: float|` list.
func (p *Parser) parseParamList() []ast.Param {
	p.expect(token.PIPE)
	var params []ast.Param
	for !p.curIs(token.PIPE) && !p.atEnd() {
		nameTok, ok := p.expect(token.IDENT)
		if !ok {
			break
		}
		p.expect(token.COLON)
		typeTok := p.advance()
		params = append(params, ast.Param{Position: nameTok.Pos, Name: nameTok.Value, Type: typeTok.Kind})
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.PIPE)
	return params
}

func (p *Parser) parseFuncDecl() ast.Statement {
	pos := p.cur().Pos
	p.advance() // func
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		p.synchronize()
		return nil
	}
	params := p.parseParamList()
	body := p.parseBody("func")
	return &ast.FuncDecl{Position: pos, Name: nameTok.Value, Params: params, Body: body}
}

// parseExprOrObjectDecl disambiguates `obj IDENT { ... }` from a plain
// expression statement — `obj` lexes as the TYPE_OBJ type tag rather
// than a statement keyword, so an object declaration is recognized by
// lookahead.
func (p *Parser) parseExprOrObjectDecl() ast.Statement {
	if p.curIs(token.TYPE_OBJ) && p.peekIs(token.IDENT) {
		return p.parseObjectDecl()
	}
	pos := p.cur().Pos
	expr := p.parseExpression(LOWEST)
	p.expect(token.SEMICOLON)
	return &ast.ExprStmt{Position: pos, Expr: expr}
}

func (p *Parser) parseObjectDecl() ast.Statement {
	pos := p.cur().Pos
	p.advance() // obj
	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		p.synchronize()
		return nil
	}
	p.expect(token.LBRACE)
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
	p.expect(token.SEMICOLON)
	return &ast.ObjectDecl{Position: pos, Name: nameTok.Value, Properties: props}
}

func (p *Parser) parseIfStmt() ast.Statement {
	pos := p.cur().Pos
	p.advance() // if
	p.expect(token.LPAREN)
	test := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	body := p.parseBody("if")

	stmt := &ast.IfStmt{Position: pos, Test: test, Body: body}
	if p.curIs(token.ELSE) {
		p.advance()
		if p.curIs(token.IF) {
			stmt.Alt = p.parseIfStmt().(*ast.IfStmt)
		} else {
			elseBody := p.parseBody("else")
			stmt.Else = &ast.BlockStmt{Position: pos, Body: elseBody}
		}
	}
	return stmt
}

// parseForStmt parses `for |IDENT(, IDENT)?(: TYPE)?| in EXPR { body }`
// (spec.md §4.3's for-in grammar).
func (p *Parser) parseForStmt() ast.Statement {
	pos := p.cur().Pos
	p.advance() // for
	p.expect(token.PIPE)

	firstTok, ok := p.expect(token.IDENT)
	if !ok {
		p.synchronize()
		return nil
	}
	var keyName, valueName string
	var valueType token.Kind
	if p.curIs(token.COMMA) {
		p.advance()
		secondTok, ok := p.expect(token.IDENT)
		if !ok {
			p.synchronize()
			return nil
		}
		keyName = firstTok.Value
		valueName = secondTok.Value
	} else {
		valueName = firstTok.Value
	}
	if p.curIs(token.COLON) {
		p.advance()
		valueType = p.advance().Kind
	}
	p.expect(token.PIPE)
	p.expect(token.IN)
	collection := p.parseExpression(LOWEST)
	body := p.parseBody("for")
	return &ast.ForStmt{
		Position:   pos,
		KeyName:    keyName,
		ValueName:  valueName,
		ValueType:  valueType,
		Collection: collection,
		Body:       body,
	}
}

func (p *Parser) parseWhileStmt() ast.Statement {
	pos := p.cur().Pos
	p.advance() // while
	p.expect(token.LPAREN)
	test := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	body := p.parseBody("while")
	return &ast.WhileStmt{Position: pos, Test: test, Body: body}
}

func (p *Parser) parseTryCatchStmt() ast.Statement {
	pos := p.cur().Pos
	p.advance() // try
	tryBody := p.parseBody("try")
	p.expect(token.CATCH)
	p.expect(token.PIPE)
	nameTok, _ := p.expect(token.IDENT)
	p.expect(token.PIPE)
	catchBody := p.parseBody("catch")
	return &ast.TryCatchStmt{
		Position:  pos,
		TryBody:   tryBody,
		CatchName: nameTok.Value,
		CatchBody: catchBody,
	}
}

func (p *Parser) parseReturnStmt() ast.Statement {
	pos := p.cur().Pos
	p.advance() // return
	if p.curIs(token.SEMICOLON) {
		p.advance()
		return &ast.Return{Position: pos}
	}
	val := p.parseExpression(LOWEST)
	p.expect(token.SEMICOLON)
	return &ast.Return{Position: pos, Value: val}
}

// parseNameList parses a comma-separated identifier list, used by
// export and the { m1, m2 } selective-import forms.
func (p *Parser) parseNameList() []string {
	var names []string
	for {
		tok, ok := p.expect(token.IDENT)
		if !ok {
			break
		}
		names = append(names, tok.Value)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return names
}

func (p *Parser) parseUseStmt() ast.Statement {
	pos := p.cur().Pos
	p.advance() // use
	if p.curIs(token.LBRACE) {
		p.advance()
		methods := p.parseNameList()
		p.expect(token.RBRACE)
		p.expect(token.FROM)
		moduleTok, _ := p.expect(token.IDENT)
		p.expect(token.SEMICOLON)
		return &ast.UseStmt{Position: pos, Module: moduleTok.Value, Methods: methods}
	}
	moduleTok, ok := p.expect(token.IDENT)
	if !ok {
		p.synchronize()
		return nil
	}
	p.expect(token.SEMICOLON)
	return &ast.UseStmt{Position: pos, Module: moduleTok.Value}
}

func (p *Parser) parseIncludeStmt() ast.Statement {
	pos := p.cur().Pos
	p.advance() // include
	if p.curIs(token.LBRACE) {
		p.advance()
		methods := p.parseNameList()
		p.expect(token.RBRACE)
		p.expect(token.FROM)
		pathTok, _ := p.expect(token.STRING)
		p.expect(token.SEMICOLON)
		return &ast.IncludeStmt{Position: pos, Path: pathTok.Value, Methods: methods}
	}
	pathTok, ok := p.expect(token.STRING)
	if !ok {
		p.synchronize()
		return nil
	}
	p.expect(token.SEMICOLON)
	return &ast.IncludeStmt{Position: pos, Path: pathTok.Value}
}

func (p *Parser) parseExportStmt() ast.Statement {
	pos := p.cur().Pos
	p.advance() // export
	names := p.parseNameList()
	p.expect(token.SEMICOLON)
	return &ast.ExportStmt{Position: pos, Names: names}
}
