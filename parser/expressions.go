package parser

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/token"
)

// Precedence levels, low to high, for the Pratt parser table.
const (
	LOWEST int = iota
	ASSIGNP
	OR
	AND
	EQUALS
	COMPARE
	SUM
	PRODUCT
	PREFIX
	POSTFIX
)

var precedences = map[token.Type]int{
	token.ASSIGN:  ASSIGNP,
	token.OR:      OR,
	token.AND:     AND,
	token.EQ:      EQUALS,
	token.NEQ:     EQUALS,
	token.LT:      COMPARE,
	token.GT:      COMPARE,
	token.LE:      COMPARE,
	token.GE:      COMPARE,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.STAR:    PRODUCT,
	token.SLASH:   PRODUCT,
	token.PERCENT: PRODUCT,
	token.LPAREN:  POSTFIX, // call
	token.LBRACKET: POSTFIX, // index/slice/span
	token.DOT:     POSTFIX, // member
	token.QUESTION: POSTFIX, // query
	token.BANG:    POSTFIX, // get
	token.AS:      POSTFIX, // cast
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) registerExpressionParsers() {
	p.prefixParseFns[token.INT] = p.parseIntLiteral
	p.prefixParseFns[token.REAL] = p.parseRealLiteral
	p.prefixParseFns[token.STRING] = p.parseStringLiteral
	p.prefixParseFns[token.TRUE] = p.parseBoolLiteral
	p.prefixParseFns[token.FALSE] = p.parseBoolLiteral
	p.prefixParseFns[token.NIL] = p.parseNilLiteral
	p.prefixParseFns[token.IDENT] = p.parseIdentifierExpr
	p.prefixParseFns[token.THIS] = p.parseThisExpr
	p.prefixParseFns[token.SUPER] = p.parseSuperExpr
	p.prefixParseFns[token.GLOBAL] = p.parseGlobalExpr
	p.prefixParseFns[token.LPAREN] = p.parseParensExpr
	p.prefixParseFns[token.LBRACE] = p.parseBraceLiteral
	p.prefixParseFns[token.FUNCTION] = p.parseLambdaExpr
	p.prefixParseFns[token.FIBER] = p.parseLambdaExpr
	p.prefixParseFns[token.MINUS] = p.parseUnaryExpr
	p.prefixParseFns[token.BANG] = p.parseUnaryExpr
	p.prefixParseFns[token.PLUS] = p.parseUnaryExpr

	p.infixParseFns[token.PLUS] = p.parseBinaryExpr
	p.infixParseFns[token.MINUS] = p.parseBinaryExpr
	p.infixParseFns[token.STAR] = p.parseBinaryExpr
	p.infixParseFns[token.SLASH] = p.parseBinaryExpr
	p.infixParseFns[token.PERCENT] = p.parseBinaryExpr
	p.infixParseFns[token.EQ] = p.parseBinaryExpr
	p.infixParseFns[token.NEQ] = p.parseBinaryExpr
	p.infixParseFns[token.LT] = p.parseBinaryExpr
	p.infixParseFns[token.GT] = p.parseBinaryExpr
	p.infixParseFns[token.LE] = p.parseBinaryExpr
	p.infixParseFns[token.GE] = p.parseBinaryExpr
	p.infixParseFns[token.AND] = p.parseBinaryExpr
	p.infixParseFns[token.OR] = p.parseBinaryExpr
	p.infixParseFns[token.ASSIGN] = p.parseAssignExpr
	p.infixParseFns[token.LPAREN] = p.parseCallExpr
	p.infixParseFns[token.LBRACKET] = p.parseIndexLikeExpr
	p.infixParseFns[token.DOT] = p.parseMemberExpr
	p.infixParseFns[token.QUESTION] = p.parseQueryExpr
	p.infixParseFns[token.BANG] = p.parseGetExpr
	p.infixParseFns[token.AS] = p.parseCastExpr
}

func (p *Parser) noPrefixParseFnError(t token.Type) {
	p.errorf(p.cur, "unexpected token %q in expression position", p.cur.Lexeme)
}

// parseExpression is the Pratt-parser entry point.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxRecursionDepth {
		p.errorf(p.cur, "expression too complex: recursion depth limit exceeded")
		p.skipToStatementBoundary()
		return nil
	}

	prefix := p.prefixParseFns[p.cur.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.cur.Type)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peek.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// parseExpressionList parses a comma-separated expression list
// starting with cur on the opening delimiter and finishing with cur on
// the closing delimiter.
func (p *Parser) parseExpressionList(closer token.Type) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(closer) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(closer) {
		return list
	}
	return list
}

// --- literals & simple primaries ---

func (p *Parser) parseIntLiteral() ast.Expression {
	return ast.NewIntLiteral(p.curLoc(), parseBigInt(p.cur.Lexeme))
}

func (p *Parser) parseRealLiteral() ast.Expression {
	v, err := parseRealLexeme(p.cur.Lexeme)
	if err != nil {
		p.errorf(p.cur, "invalid real literal %q", p.cur.Lexeme)
		return nil
	}
	return ast.NewRealLiteral(p.curLoc(), v)
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return ast.NewStringLiteral(p.curLoc(), p.cur.Lexeme)
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return ast.NewBoolLiteral(p.curLoc(), p.cur.Type == token.TRUE)
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return ast.NewNilLiteral(p.curLoc())
}

func (p *Parser) parseThisExpr() ast.Expression {
	return ast.NewThisExpr(p.curLoc())
}

func (p *Parser) parseSuperExpr() ast.Expression {
	return ast.NewSuperExpr(p.curLoc())
}

// parseGlobalExpr parses `global::Name`.
func (p *Parser) parseGlobalExpr() ast.Expression {
	start := p.curLoc()
	if !p.expectPeek(token.SCOPE) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return ast.NewGlobalExpr(p.spanTo(start), p.cur.Lexeme)
}

// parseIdentifierExpr builds a plain Identifier, except when the
// identifier is immediately followed by what looks like a generic
// call (`f<Real>(x)`): that surface form is lexically ambiguous with
// `f < Real > (x)`, a chain of comparisons, so it's resolved here by a
// bounded speculative parse (tryParseGenericCall) rather than in the
// grammar -- if the speculative parse doesn't end in a '(' right after
// a matching '>', it's abandoned and the identifier is returned plain,
// letting the ordinary Pratt loop parse '<' as the comparison operator.
func (p *Parser) parseIdentifierExpr() ast.Expression {
	start := p.curLoc()
	name := p.cur.Lexeme
	if p.peekTokenIs(token.LT) {
		if call := p.tryParseGenericCall(start, name); call != nil {
			return call
		}
	}
	return ast.NewIdentifier(start, name)
}

func (p *Parser) parseParensExpr() ast.Expression {
	start := p.curLoc()
	p.nextToken() // consume '('
	inner := p.parseExpression(LOWEST)
	if inner == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return ast.NewParensExpr(p.spanTo(start), inner)
}

// parseBraceLiteral parses `{ e }` (BracesExpr, a single wrapped
// expression) or `{ e1, e2, ... }` (SequenceExpr).
func (p *Parser) parseBraceLiteral() ast.Expression {
	start := p.curLoc()
	p.nextToken() // consume '{'
	if p.curTokenIs(token.RBRACE) {
		return ast.NewSequenceExpr(p.spanTo(start), nil)
	}
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	if p.peekTokenIs(token.COMMA) {
		elems := []ast.Expression{first}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			elems = append(elems, p.parseExpression(LOWEST))
		}
		if !p.expectPeek(token.RBRACE) {
			return nil
		}
		return ast.NewSequenceExpr(p.spanTo(start), elems)
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return ast.NewBracesExpr(p.spanTo(start), first)
}

func (p *Parser) parseUnaryExpr() ast.Expression {
	start := p.curLoc()
	op := p.cur.Lexeme
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	return ast.NewUnaryCallExpr(p.spanTo(start), op, operand)
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	start := left.Loc()
	op := p.cur.Lexeme
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return ast.NewBinaryCallExpr(p.spanTo(start), op, left, right)
}

// parseAssignExpr handles expression-position `=` (distinct from the
// statement-level `<-`/`<~`/`~`/`~>` family, which AssignStmt parses
// directly without going through the Pratt table).
func (p *Parser) parseAssignExpr(left ast.Expression) ast.Expression {
	start := left.Loc()
	p.nextToken()
	right := p.parseExpression(ASSIGNP - 1) // right-associative
	if right == nil {
		return nil
	}
	return ast.NewAssignExpr(p.spanTo(start), left, right)
}

func (p *Parser) parseMemberExpr(left ast.Expression) ast.Expression {
	start := left.Loc()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return ast.NewMemberExpr(p.spanTo(start), left, p.cur.Lexeme)
}

func (p *Parser) parseQueryExpr(left ast.Expression) ast.Expression {
	return ast.NewQueryExpr(p.spanTo(left.Loc()), left)
}

func (p *Parser) parseGetExpr(left ast.Expression) ast.Expression {
	return ast.NewGetExpr(p.spanTo(left.Loc()), left)
}

func (p *Parser) parseCastExpr(left ast.Expression) ast.Expression {
	start := left.Loc()
	p.nextToken() // consume 'as'
	target := p.parseType()
	if target == nil {
		return nil
	}
	return ast.NewCastExpr(p.spanTo(start), left, target)
}

// parseCallExpr parses `callee(args)` with no type arguments. Generic
// calls (`f<Real>(x)`) never reach it: parseIdentifierExpr builds them
// directly through tryParseGenericCall in expressions_calls.go.
func (p *Parser) parseCallExpr(callee ast.Expression) ast.Expression {
	start := callee.Loc()
	args := p.parseExpressionList(token.RPAREN)
	return ast.NewCallExpr(p.spanTo(start), callee, args, nil)
}

// parseIndexLikeExpr handles `a[i]` (IndexExpr), `a[i, j, ...]`
// (SliceExpr, multi-dimensional indexing), and `a[lo..hi]` (SpanExpr).
func (p *Parser) parseIndexLikeExpr(left ast.Expression) ast.Expression {
	start := left.Loc()
	p.nextToken() // consume '[', move onto first index expr (or ']')
	if p.curTokenIs(token.RBRACKET) {
		p.errorf(p.cur, "expected an index expression")
		return nil
	}

	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}

	if p.peekTokenIs(token.DOTDOT) {
		p.nextToken() // cur: '..'
		var hi ast.Expression
		if !p.peekTokenIs(token.RBRACKET) {
			p.nextToken()
			hi = p.parseExpression(LOWEST)
		}
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		rng := ast.NewRangeExpr(p.spanTo(start), first, hi)
		return ast.NewSpanExpr(p.spanTo(start), left, rng)
	}

	if p.peekTokenIs(token.COMMA) {
		indices := []ast.Expression{first}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			indices = append(indices, p.parseExpression(LOWEST))
		}
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return ast.NewSliceExpr(p.spanTo(start), left, indices)
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return ast.NewIndexExpr(p.spanTo(start), left, first)
}

// parseLambdaExpr parses an anonymous `function(params) -> Ret {body}`
// or `fiber(params) -> Ret {body}` in expression position.
func (p *Parser) parseLambdaExpr() ast.Expression {
	start := p.curLoc()
	isFiber := p.curTokenIs(token.FIBER)
	params := p.parseParameterList()
	ret := p.parseReturnType()
	if isFiber {
		ret = ast.NewFiberTypeRef(ret.Loc(), ret)
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBracesStmt()
	if body == nil {
		return nil
	}
	return ast.NewLambdaExpr(p.spanTo(start), params, ret, body)
}
