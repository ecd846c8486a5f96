package parser

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/token"
)

// parsePackageDecl parses `package Name; [export ...;]*`.
func (p *Parser) parsePackageDecl() *ast.PackageDecl {
	start := p.curLoc() // 'package'
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	pkg := ast.NewPackageDecl(p.spanTo(start), p.cur.Lexeme)
	if !p.expectPeek(token.SEMICOLON) {
		return pkg
	}
	p.nextToken() // past ';'

	for p.curTokenIs(token.EXPORT) {
		p.parseExportSpec(pkg)
	}
	return pkg
}

// parseExportSpec parses one `export ...;` line, appending to pkg.
// Forms:
//
//	export *;
//	export a, b;
//	export * from "mod";
//	export a, b from "mod";
func (p *Parser) parseExportSpec(pkg *ast.PackageDecl) {
	p.nextToken() // consume 'export'

	if p.curTokenIs(token.STAR) {
		if p.peekTokenIs(token.FROM) {
			p.nextToken() // consume '*'
			p.nextToken() // consume 'from', cur now on the module string
			spec := ast.ExportSpec{ReexportAll: true}
			if p.curTokenIs(token.STRING) {
				spec.ModuleName = p.cur.Lexeme
			} else {
				p.errorf(p.cur, "expected a module name string after 'from', got %q", p.cur.Lexeme)
			}
			pkg.Exports = append(pkg.Exports, spec)
		} else {
			pkg.ExportAll = true
		}
	} else {
		var names []string
		for p.curTokenIs(token.IDENT) {
			names = append(names, p.cur.Lexeme)
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				continue
			}
			break
		}
		if p.peekTokenIs(token.FROM) {
			p.nextToken() // consume last ident
			p.nextToken() // consume 'from', cur now on the module string
			mod := ""
			if p.curTokenIs(token.STRING) {
				mod = p.cur.Lexeme
			} else {
				p.errorf(p.cur, "expected a module name string after 'from', got %q", p.cur.Lexeme)
			}
			pkg.Exports = append(pkg.Exports, ast.ExportSpec{Symbols: names, ModuleName: mod})
		} else {
			for _, n := range names {
				pkg.Exports = append(pkg.Exports, ast.ExportSpec{Symbol: n})
			}
		}
	}

	if !p.expectPeek(token.SEMICOLON) {
		return
	}
	p.nextToken()
}

func (p *Parser) parseImportStmt() *ast.ImportStmt {
	start := p.curLoc() // 'import'
	if !p.expectPeek(token.STRING) {
		return nil
	}
	path := p.cur.Lexeme
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	stmt := ast.NewImportStmt(p.spanTo(start), path)
	p.nextToken()
	return stmt
}

// modifiers collects the Annotated-mixin prefix keywords (`final`,
// `abstract`, `parallel`) that may precede a top-level declaration, in
// any order.
type modifiers struct {
	Final, Abstract, Parallel bool
}

func (p *Parser) parseModifiers() modifiers {
	var m modifiers
	for {
		switch p.cur.Type {
		case token.FINAL:
			m.Final = true
		case token.ABSTRACT:
			m.Abstract = true
		case token.PARALLEL:
			m.Parallel = true
		default:
			return m
		}
		p.nextToken()
	}
}

func applyModifiers(a *ast.Annotated, m modifiers) {
	a.Final = m.Final
	a.Abstract = m.Abstract
	a.Parallel = m.Parallel
}

// parseTopLevelDecl dispatches on the current token to one of the
// top-level declaration productions (§3.1: Program/Class/BasicType/
// Function/Fiber/Operator/GlobalVariable).
func (p *Parser) parseTopLevelDecl() ast.Statement {
	m := p.parseModifiers()

	switch p.cur.Type {
	case token.PROGRAM:
		return p.parseProgramDecl()
	case token.CLASS:
		return p.parseClassDecl(m)
	case token.TYPE:
		return p.parseBasicTypeDecl()
	case token.FUNCTION:
		return p.parseFunctionDecl(m, false)
	case token.FIBER:
		return p.parseFunctionDecl(m, true)
	case token.OPERATOR:
		return p.parseOperatorDecl(m)
	case token.GLOBAL:
		return p.parseGlobalVariableDecl(m)
	case token.INSTANTIATED:
		return p.parseInstantiatedStmt()
	default:
		p.errorf(p.cur, "expected a top-level declaration, got %q", p.cur.Lexeme)
		return nil
	}
}

// parseGenericParams parses an optional `<T, U: Bound>` list.
func (p *Parser) parseGenericParams() []*ast.GenericParamDecl {
	if !p.peekTokenIs(token.LT) {
		return nil
	}
	p.nextToken() // consume '<'
	var params []*ast.GenericParamDecl
	for {
		p.nextToken() // move onto the param name
		start := p.curLoc()
		if !p.curTokenIs(token.IDENT) {
			p.errorf(p.cur, "expected a generic parameter name, got %q", p.cur.Lexeme)
			return params
		}
		name := p.cur.Lexeme
		var bound ast.Type
		if p.peekTokenIs(token.COLON) {
			p.nextToken() // consume name
			p.nextToken() // consume ':'
			bound = p.parseType()
		}
		params = append(params, ast.NewGenericParamDecl(p.spanTo(start), name, bound))
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.GT) {
		return params
	}
	return params
}

// parseParameterList parses `( p1: T1 [= default], p2: T2, ... )`.
// The `: Type` annotation may be omitted, leaving the parameter's type
// as an UnknownType; the default is optional in either form.
func (p *Parser) parseParameterList() []*ast.ParameterDecl {
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	var params []*ast.ParameterDecl
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	for {
		p.nextToken()
		start := p.curLoc()
		if !p.curTokenIs(token.IDENT) {
			p.errorf(p.cur, "expected a parameter name, got %q", p.cur.Lexeme)
			return params
		}
		name := p.cur.Lexeme

		var typeAnn ast.Type = ast.NewUnknownType(p.curLoc())
		if p.peekTokenIs(token.COLON) {
			p.nextToken() // consume name
			p.nextToken() // consume ':'
			typeAnn = p.parseType()
		}

		var def ast.Expression
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken() // consume type/name
			p.nextToken() // consume '='
			def = p.parseExpression(LOWEST)
		}

		params = append(params, ast.NewParameterDecl(p.spanTo(start), name, typeAnn, def))
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseReturnType() ast.Type {
	if p.peekTokenIs(token.ARROW) {
		p.nextToken() // consume ')'
		p.nextToken() // consume '->'
		return p.parseType()
	}
	return ast.NewEmptyType(p.curLoc())
}

func (p *Parser) parseProgramDecl() *ast.ProgramDecl {
	start := p.curLoc() // 'program'
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.cur.Lexeme
	params := p.parseParameterList()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBracesStmt()
	if body == nil {
		return nil
	}
	return ast.NewProgramDecl(p.spanTo(start), name, params, body)
}

func (p *Parser) parseBasicTypeDecl() *ast.BasicTypeDecl {
	start := p.curLoc() // 'type'
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl := ast.NewBasicTypeDecl(p.spanTo(start), p.cur.Lexeme)
	if !p.expectPeek(token.SEMICOLON) {
		return decl
	}
	p.nextToken()
	return decl
}

func (p *Parser) parseFunctionDecl(m modifiers, isFiber bool) *ast.FunctionDecl {
	start := p.curLoc() // 'function'/'fiber'
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.cur.Lexeme
	generics := p.parseGenericParams()
	params := p.parseParameterList()
	ret := p.parseReturnType()

	var body ast.Statement
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		body = p.parseBracesStmt()
	} else if p.expectPeek(token.SEMICOLON) {
		p.nextToken()
	}

	decl := ast.NewFunctionDecl(p.spanTo(start), name, generics, params, ret, body, isFiber)
	applyModifiers(&decl.Annotated, m)
	return decl
}

// parseOperatorDecl parses `operator SYMBOL(params) -> Ret {body}` for
// binary/unary operators, `operator -> Type {body}` for a conversion
// operator, and `operator =(param) {body}` for a custom assignment
// operator. The operator's Kind is derived from the surface form, not
// declared explicitly, matching how the rest of the surface syntax
// infers Kind-like tags from shape (cf. ast.IdentKind).
func (p *Parser) parseOperatorDecl(m modifiers) *ast.OperatorDecl {
	start := p.curLoc() // 'operator'
	p.nextToken()        // move onto the symbol (or '->')

	if p.curTokenIs(token.ARROW) {
		p.nextToken() // consume '->'
		target := p.parseType()
		if target == nil {
			return nil
		}
		var body ast.Statement
		if p.peekTokenIs(token.LBRACE) {
			p.nextToken()
			body = p.parseBracesStmt()
		}
		decl := ast.NewOperatorDecl(p.spanTo(start), ast.OpConversion, "", nil, target, body)
		applyModifiers(&decl.Annotated, m)
		return decl
	}

	symbol := p.cur.Lexeme
	params := p.parseParameterList()
	ret := p.parseReturnType()

	var body ast.Statement
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		body = p.parseBracesStmt()
	} else if p.expectPeek(token.SEMICOLON) {
		p.nextToken()
	}

	kind := ast.OpBinary
	switch {
	case symbol == "=":
		kind = ast.OpAssignment
	case len(params) == 1:
		kind = ast.OpUnary
	}

	decl := ast.NewOperatorDecl(p.spanTo(start), kind, symbol, params, ret, body)
	applyModifiers(&decl.Annotated, m)
	return decl
}

func (p *Parser) parseGlobalVariableDecl(m modifiers) *ast.GlobalVariableDecl {
	start := p.curLoc() // 'global'
	p.nextToken()        // move onto 'auto' or the name

	auto := false
	if p.curTokenIs(token.AUTO) {
		auto = true
		p.nextToken()
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
	decl := ast.NewGlobalVariableDecl(p.spanTo(start), name, typeAnn, init)
	decl.Auto = auto
	applyModifiers(&decl.Annotated, m)
	p.nextToken()
	return decl
}

func (p *Parser) parseInstantiatedStmt() *ast.InstantiatedStmt {
	start := p.curLoc() // 'instantiated'
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.cur.Lexeme
	var typeArgs []ast.Type
	if p.peekTokenIs(token.LT) {
		p.nextToken()
		args, ok := p.tryParseTypeArgList()
		if !ok {
			p.errorf(p.cur, "expected a type argument list after %q", name)
			return nil
		}
		typeArgs = args
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	stmt := ast.NewInstantiatedStmt(p.spanTo(start), name, typeArgs)
	p.nextToken()
	return stmt
}

// --- class declarations ---

func (p *Parser) parseClassDecl(m modifiers) *ast.ClassDecl {
	start := p.curLoc() // 'class'
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.cur.Lexeme
	generics := p.parseGenericParams()

	var base ast.Type
	var baseArgs []ast.Expression
	if p.peekTokenIs(token.COLON) {
		p.nextToken() // consume name/'>'
		p.nextToken() // consume ':'
		base = p.parseType()
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			baseArgs = p.parseExpressionList(token.RPAREN)
		}
	}

	var body []ast.Statement
	switch {
	case p.peekTokenIs(token.SEMICOLON):
		p.nextToken() // consume ';'
		p.nextToken()
	case p.peekTokenIs(token.LBRACE):
		p.nextToken() // consume to '{'
		p.nextToken() // move past '{'
		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			stmt := p.parseClassMember()
			if stmt != nil {
				body = append(body, stmt)
			} else {
				p.skipToStatementBoundary()
				if p.curTokenIs(token.SEMICOLON) {
					p.nextToken()
				}
			}
		}
		if p.curTokenIs(token.RBRACE) {
			p.nextToken()
		}
	default:
		p.errorf(p.peek, "expected ';' or '{' after class header, got %q", p.peek.Lexeme)
	}

	decl := ast.NewClassDecl(p.spanTo(start), name, generics, base, baseArgs, body)
	applyModifiers(&decl.Annotated, m)
	return decl
}

// parseClassMember parses one member inside a class body: a member
// variable, member function/fiber, or operator declaration.
func (p *Parser) parseClassMember() ast.Statement {
	m := p.parseModifiers()

	switch p.cur.Type {
	case token.FUNCTION:
		return p.parseFunctionDecl(m, false)
	case token.FIBER:
		return p.parseFunctionDecl(m, true)
	case token.OPERATOR:
		return p.parseOperatorDecl(m)
	case token.AUTO, token.IDENT:
		return p.parseMemberVariableDecl(m)
	default:
		p.errorf(p.cur, "expected a class member, got %q", p.cur.Lexeme)
		return nil
	}
}

func (p *Parser) parseMemberVariableDecl(m modifiers) *ast.MemberVariableDecl {
	start := p.curLoc()
	auto := false
	if p.curTokenIs(token.AUTO) {
		auto = true
		p.nextToken()
	}
	if !p.curTokenIs(token.IDENT) {
		p.errorf(p.cur, "expected a member name, got %q", p.cur.Lexeme)
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
	decl := ast.NewMemberVariableDecl(p.spanTo(start), name, typeAnn, init)
	decl.Auto = auto
	applyModifiers(&decl.Annotated, m)
	p.nextToken()
	return decl
}
