package parser

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/token"
)

// tryParseGenericCall attempts `name '<' TypeList '>' '(' Args ')'`
// starting with cur on the identifier token and peek on '<'. It
// returns nil and restores the parser to its entry position if the
// input doesn't actually form a generic call (most commonly because
// it was really `name < x` / `name < x > y`, a comparison chain).
func (p *Parser) tryParseGenericCall(start fernsrc.Location, name string) ast.Expression {
	mk := p.mark()

	p.nextToken() // cur: '<'
	args, ok := p.tryParseTypeArgList()
	if !ok || !p.peekTokenIs(token.LPAREN) {
		p.reset(mk)
		return nil
	}
	p.nextToken() // cur: '('

	callee := ast.NewIdentifier(start, name)
	callArgs := p.parseExpressionList(token.RPAREN)
	return ast.NewCallExpr(p.spanTo(start), callee, callArgs, args)
}
