package parser

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/token"
)

// sugarTokens maps the assignment-statement operator tokens to the
// sugar tag recorded on ast.AssignStmt (§4.3 desugaring).
var sugarTokens = map[token.Type]string{
	token.LARROW: "",
	token.SIM_L:  "<~",
	token.SIM:    "~",
	token.SIM_R:  "~>",
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.LBRACE:
		return p.parseBracesStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.DO:
		return p.parseDoWhileStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.YIELD:
		return p.parseYieldStmt()
	case token.ASSERT:
		return p.parseAssertStmt()
	case token.ASSUME:
		return p.parseAssumeStmt()
	case token.AT:
		return p.parseRawCodeStmt()
	case token.AUTO:
		return p.parseLocalVariableStmt(true)
	case token.IDENT:
		if p.peekTokenIs(token.COLON) {
			return p.parseLocalVariableStmt(false)
		}
		return p.parseSimpleStmt()
	default:
		return p.parseSimpleStmt()
	}
}

// parseBracesStmt assumes cur is on '{' and consumes through the
// matching '}'.
func (p *Parser) parseBracesStmt() *ast.BracesStmt {
	start := p.curLoc()
	p.nextToken() // consume '{'
	var stmts []ast.Statement
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		s := p.parseStatement()
		if s != nil {
			stmts = append(stmts, s)
		} else {
			p.skipToStatementBoundary()
			if p.curTokenIs(token.SEMICOLON) {
				p.nextToken()
			}
		}
	}
	if !p.curTokenIs(token.RBRACE) {
		p.errorf(p.cur, "expected '}' to close block")
		return ast.NewBracesStmt(p.spanTo(start), stmts)
	}
	loc := p.spanTo(start)
	p.nextToken() // consume '}'
	return ast.NewBracesStmt(loc, stmts)
}

func (p *Parser) parseIfStmt() ast.Statement {
	start := p.curLoc()
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	then := p.parseStatement()
	if then == nil {
		return nil
	}
	// parseStatement always leaves cur already advanced past its own
	// statement (unlike parseExpression, which leaves cur on the last
	// consumed token), so the trailing 'else' shows up on cur, not peek.
	var els ast.Statement
	if p.curTokenIs(token.ELSE) {
		p.nextToken() // consume 'else'
		els = p.parseStatement()
	}
	return ast.NewIfStmt(p.spanTo(start), cond, then, els)
}

func (p *Parser) parseForStmt() ast.Statement {
	start := p.curLoc()
	p.nextToken() // consume 'for'
	parallel := false
	if p.curTokenIs(token.PARALLEL) {
		parallel = true
		p.nextToken()
	}
	if !p.curTokenIs(token.IDENT) {
		p.errorf(p.cur, "expected a loop variable name, got %q", p.cur.Lexeme)
		return nil
	}
	varName := p.cur.Lexeme
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	iterable := p.parseExpression(LOWEST)
	if iterable == nil {
		return nil
	}
	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return ast.NewForStmt(p.spanTo(start), parallel, varName, iterable, body)
}

func (p *Parser) parseWhileStmt() ast.Statement {
	start := p.curLoc()
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return ast.NewWhileStmt(p.spanTo(start), cond, body)
}

func (p *Parser) parseDoWhileStmt() ast.Statement {
	start := p.curLoc()
	p.nextToken() // consume 'do'
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	// parseStatement leaves cur already advanced past body, so the
	// trailing 'while' is on cur, not peek.
	if !p.curTokenIs(token.WHILE) {
		p.errorf(p.cur, "expected 'while' after do-block, got %q", p.cur.Lexeme)
		return nil
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	loc := p.spanTo(start)
	p.nextToken()
	return ast.NewDoWhileStmt(loc, body, cond)
}

func (p *Parser) parseReturnStmt() ast.Statement {
	start := p.curLoc()
	var value ast.Expression
	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		value = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	loc := p.spanTo(start)
	p.nextToken()
	return ast.NewReturnStmt(loc, value)
}

func (p *Parser) parseYieldStmt() ast.Statement {
	start := p.curLoc()
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	loc := p.spanTo(start)
	p.nextToken()
	return ast.NewYieldStmt(loc, value)
}

func (p *Parser) parseAssertStmt() ast.Statement {
	start := p.curLoc()
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	loc := p.spanTo(start)
	p.nextToken()
	return ast.NewAssertStmt(loc, cond)
}

// parseAssumeStmt parses `assume Target <- Value;`, a probabilistic
// assumption statement.
func (p *Parser) parseAssumeStmt() ast.Statement {
	start := p.curLoc()
	p.nextToken()
	target := p.parseExpression(LOWEST)
	if target == nil {
		return nil
	}
	if !p.expectPeek(token.LARROW) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	loc := p.spanTo(start)
	p.nextToken()
	return ast.NewAssumeStmt(loc, target, value)
}

// parseRawCodeStmt parses `@ "verbatim target code" ;`.
func (p *Parser) parseRawCodeStmt() ast.Statement {
	start := p.curLoc()
	if !p.expectPeek(token.STRING) {
		return nil
	}
	code := p.cur.Lexeme
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	loc := p.spanTo(start)
	p.nextToken()
	return ast.NewRawCodeStmt(loc, code)
}

// parseLocalVariableStmt parses `auto Name [<- Init];` (no type
// annotation) or `Name: Type [<- Init];`, wrapping the resulting ast.LocalVariableDecl
// (an Expression) in an ExpressionStmt so it fits statement position.
func (p *Parser) parseLocalVariableStmt(auto bool) ast.Statement {
	start := p.curLoc()
	if auto {
		p.nextToken() // consume 'auto'
	}
	if !p.curTokenIs(token.IDENT) {
		p.errorf(p.cur, "expected a variable name, got %q", p.cur.Lexeme)
		return nil
	}
	name := p.cur.Lexeme

	var typeAnn ast.Type = ast.NewUnknownType(p.curLoc())
	if !auto {
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		typeAnn = p.parseType()
	}

	var init ast.Expression
	if p.peekTokenIs(token.LARROW) {
		p.nextToken()
		p.nextToken()
		init = p.parseExpression(LOWEST)
	}

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	loc := p.spanTo(start)
	decl := ast.NewLocalVariableDecl(loc, name, typeAnn, auto, init)
	p.nextToken()
	return ast.NewExpressionStmt(loc, decl)
}

// parseSimpleStmt parses an expression statement, recognizing a
// trailing assignment-sugar operator (`<-`, `<~`, `~`, `~>`) that turns
// it into an AssignStmt instead of a plain ExpressionStmt.
func (p *Parser) parseSimpleStmt() ast.Statement {
	start := p.curLoc()
	left := p.parseExpression(LOWEST)
	if left == nil {
		return nil
	}

	if sugar, ok := sugarTokens[p.peek.Type]; ok {
		tok := p.peek.Type
		p.nextToken() // consume left's last token
		p.nextToken() // consume the sugar operator
		right := p.parseExpression(LOWEST)
		if right == nil {
			return nil
		}
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		loc := p.spanTo(start)
		p.nextToken()
		stmt := ast.NewAssignStmt(loc, left, right)
		if tok != token.LARROW {
			stmt.Sugar = sugar
		}
		return stmt
	}

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	loc := p.spanTo(start)
	p.nextToken()
	return ast.NewExpressionStmt(loc, left)
}
