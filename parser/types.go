package parser

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/token"
)

// basicTypeNames are the language's built-in scalar types. The parser
// special-cases them to BasicTypeRef; every other bare identifier
// becomes a ClassTypeRef, even when it actually names an in-scope
// generic parameter, since the parser alone cannot tell a class name
// from a generic parameter name. The resolve package resolves such a
// ClassTypeRef to types.GenericType once the parameter is in scope, and
// generic instantiation replaces it with the bound argument.
var basicTypeNames = map[string]bool{
	"Boolean": true,
	"Integer": true,
	"Real":    true,
	"String":  true,
}

// parseType parses one type expression, including the '?' (optional),
// '!' (fiber/yield) and '.member' postfix operators and the '~' (weak)
// prefix operator.
func (p *Parser) parseType() ast.Type {
	start := p.curLoc()

	var t ast.Type
	switch {
	case p.curTokenIs(token.SIM):
		p.nextToken()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		t = ast.NewWeakTypeRef(p.spanTo(start), inner)
	case p.curTokenIs(token.LPAREN):
		t = p.parseParenType(start)
	case p.curTokenIs(token.LBRACKET):
		t = p.parseArrayType(start)
	case p.curTokenIs(token.LBRACE):
		t = p.parseSequenceType(start)
	case p.curTokenIs(token.IDENT):
		t = p.parseNameType()
	default:
		p.errorf(p.cur, "expected a type, got %q", p.cur.Lexeme)
		return nil
	}
	if t == nil {
		return nil
	}

	for {
		switch {
		case p.peekTokenIs(token.QUESTION):
			p.nextToken()
			t = ast.NewOptionalTypeRef(p.spanTo(start), t)
		case p.peekTokenIs(token.BANG):
			p.nextToken()
			t = ast.NewFiberTypeRef(p.spanTo(start), t)
		case p.peekTokenIs(token.DOT):
			p.nextToken() // consume '.'
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			t = ast.NewMemberTypeRef(p.spanTo(start), t, p.cur.Lexeme)
		default:
			return t
		}
	}
}

func (p *Parser) parseNameType() ast.Type {
	name := p.cur.Lexeme
	loc := p.curLoc()

	var args []ast.Type
	if p.peekTokenIs(token.LT) {
		mk := p.mark()
		p.nextToken() // move onto '<'
		if a, ok := p.tryParseTypeArgList(); ok {
			args = a
		} else {
			p.reset(mk)
		}
	}

	if basicTypeNames[name] && len(args) == 0 {
		return ast.NewBasicTypeRef(p.spanTo(loc), name)
	}
	return ast.NewClassTypeRef(p.spanTo(loc), name, args)
}

// tryParseTypeArgList speculatively parses `< Type (',' Type)* >`
// starting with cur on '<'. On failure it returns ok=false; the
// caller must reset() to its own checkpoint before proceeding.
func (p *Parser) tryParseTypeArgList() ([]ast.Type, bool) {
	if !p.curTokenIs(token.LT) {
		return nil, false
	}
	p.nextToken()
	var args []ast.Type
	for {
		t := p.parseType()
		if t == nil {
			return nil, false
		}
		args = append(args, t)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	if !p.peekTokenIs(token.GT) {
		return nil, false
	}
	p.nextToken() // consume '>'
	return args, true
}

// parseParenType handles `(T)` (a parenthesized type), `(T, U)` (a
// tuple), and `(T, U) -> V` / `() -> V` (a function type).
func (p *Parser) parseParenType(start fernsrc.Location) ast.Type {
	p.nextToken() // consume '('

	var elems []ast.Type
	if !p.curTokenIs(token.RPAREN) {
		for {
			t := p.parseType()
			if t == nil {
				return nil
			}
			elems = append(elems, t)
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				continue
			}
			break
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if p.peekTokenIs(token.ARROW) {
		p.nextToken() // consume ')'
		p.nextToken() // consume '->'
		ret := p.parseType()
		if ret == nil {
			return nil
		}
		return ast.NewFunctionTypeRef(p.spanTo(start), paramsType(start, elems), ret)
	}

	switch len(elems) {
	case 0:
		return ast.NewEmptyType(p.spanTo(start))
	case 1:
		return elems[0]
	default:
		return ast.NewTupleTypeRef(p.spanTo(start), elems)
	}
}

// paramsType packs a function type's parameter list into the single
// ast.Type slot FunctionTypeRef.Params expects.
func paramsType(loc fernsrc.Location, elems []ast.Type) ast.Type {
	switch len(elems) {
	case 0:
		return ast.NewEmptyType(loc)
	case 1:
		return elems[0]
	default:
		return ast.NewTupleTypeRef(loc, elems)
	}
}

func (p *Parser) parseArrayType(start fernsrc.Location) ast.Type {
	p.nextToken() // consume '['
	elem := p.parseType()
	if elem == nil {
		return nil
	}
	ndims := 1
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken() // consume last elem token, cur now ';'
		if !p.expectPeek(token.INT) {
			return nil
		}
		n, err := parseIntLexeme(p.cur.Lexeme)
		if err != nil {
			p.errorf(p.cur, "expected an integer array dimension, got %q", p.cur.Lexeme)
			return nil
		}
		ndims = n
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return ast.NewArrayTypeRef(p.spanTo(start), elem, ndims)
}

func (p *Parser) parseSequenceType(start fernsrc.Location) ast.Type {
	p.nextToken() // consume '{'
	elem := p.parseType()
	if elem == nil {
		return nil
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return ast.NewSequenceTypeRef(p.spanTo(start), elem)
}
