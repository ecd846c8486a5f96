// Package parser implements a recursive-descent, Pratt-style parser
// that turns a token.Token stream into an ast.Program. The overall
// shape -- a Parser struct holding cur/peek tokens plus prefix/infix
// parse-function tables keyed by token.Type, with parsing split across
// several files by concern (declarations, statements, expressions,
// types).
//
// fernc pre-tokenizes the whole input into a slice up front (rather
// than streaming from the lexer) and drops NEWLINE tokens entirely:
// Fern statements are always semicolon-terminated, so there is no
// significant-newline rule to reconstruct, and having the full token
// slice in hand lets the parser backtrack when disambiguating
// `f<Real>(x)` (a generic call) from `a < b` (a less-than comparison)
// -- see tryParseGenericCall in expressions_calls.go.
package parser

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/lexer"
	"github.com/fernvibe/fernc/token"
)

// MaxRecursionDepth guards against stack overflow on pathologically
// nested expressions.
const MaxRecursionDepth = 250

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

type Parser struct {
	file string
	toks []token.Token
	pos  int

	cur  token.Token
	peek token.Token

	Errors []*diagnostics.DiagnosticError

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn

	depth int
}

// New tokenizes src in full (dropping NEWLINE) and returns a Parser
// positioned at the first token.
func New(file, src string) *Parser {
	p := &Parser{file: file, pos: -2}

	l := lexer.New(src)
	for {
		t := l.NextToken()
		if t.Type == token.NEWLINE {
			continue
		}
		p.toks = append(p.toks, t)
		if t.Type == token.EOF {
			break
		}
	}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.infixParseFns = make(map[token.Type]infixParseFn)
	p.registerExpressionParsers()

	// Prime cur/peek: two advances from pos -2 leave cur on toks[0].
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.pos++
	p.peek = p.tokenAt(p.pos + 1)
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peek.Type == t }

// expectPeek advances past peek if it matches t, else records an error
// and leaves the cursor in place (caller aborts the current production).
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errorf(p.peek, "expected next token to be %v, got %v (%q) instead", t, p.peek.Type, p.peek.Lexeme)
}

func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) {
	p.Errors = append(p.Errors, diagnostics.New(diagnostics.Parse, p.locOf(tok), format, args...))
}

func (p *Parser) locOf(tok token.Token) fernsrc.Location {
	return fernsrc.Single(p.file, tok.Line, tok.Column)
}

func (p *Parser) curLoc() fernsrc.Location  { return p.locOf(p.cur) }
func (p *Parser) peekLoc() fernsrc.Location { return p.locOf(p.peek) }

// spanTo returns the smallest Location covering start through the
// current token, for use right after consuming a construct's last token.
func (p *Parser) spanTo(start fernsrc.Location) fernsrc.Location {
	return fernsrc.Span(start, p.curLoc())
}

// save/restore support the bounded speculative parse used to
// disambiguate `f<Real>(x)` from `a < b`.
type checkpoint struct{ pos int }

func (p *Parser) mark() checkpoint { return checkpoint{pos: p.pos} }

func (p *Parser) reset(c checkpoint) {
	p.pos = c.pos
	p.cur = p.tokenAt(p.pos)
	p.peek = p.tokenAt(p.pos + 1)
}

// skipToStatementBoundary discards tokens until a likely recovery point
// after a parse error, so the parser can keep collecting diagnostics.
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// ParseProgram parses the full token stream into an ast.Program.
func (p *Parser) ParseProgram() *ast.Program {
	prog := ast.NewProgram(p.file)

	if p.curTokenIs(token.PACKAGE) {
		prog.Package = p.parsePackageDecl()
	}

	for p.curTokenIs(token.IMPORT) {
		prog.Imports = append(prog.Imports, p.parseImportStmt())
	}

	for !p.curTokenIs(token.EOF) {
		decl := p.parseTopLevelDecl()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		} else {
			// Parse error already recorded; skip to the next
			// plausible declaration boundary so one bad
			// top-level form doesn't swallow the rest of the file.
			p.skipToStatementBoundary()
			if p.curTokenIs(token.SEMICOLON) || p.curTokenIs(token.RBRACE) {
				p.nextToken()
			}
		}
	}

	return prog
}
