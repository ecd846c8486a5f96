package emit

import (
	"fmt"
	"strings"

	"github.com/fernvibe/fernc/ast"
)

// paramList renders a parameter list as "Type name, Type name, ...".
func paramList(params []*ast.ParameterDecl) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = paramCType(p) + " " + Mangle(p.Name)
	}
	return strings.Join(parts, ", ")
}

func argNames(params []*ast.ParameterDecl) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = Mangle(p.Name)
	}
	return strings.Join(parts, ", ")
}

// FunctionSignature renders the declaration line for a free or member
// function/fiber, without a trailing body. A fiber's surface return
// type is always the FiberState<Yield> pointer wrapper; its own
// backing class is emitted separately by FiberDeclClass.
func FunctionSignature(decl *ast.FunctionDecl) string {
	ret := "void"
	if decl.ResolvedReturn != nil {
		ret = CType(decl.ResolvedReturn)
	}
	return fmt.Sprintf("%s %s(%s)", ret, Mangle(decl.Name), paramList(decl.Params))
}

// FunctionDefinition renders a full function/fiber definition. Fibers
// don't print their own statements inline -- the statements live in
// FiberDeclClass's query() method -- they instead construct and
// populate their backing state object and hand back a pointer to it.
func FunctionDefinition(decl *ast.FunctionDecl) string {
	if decl.IsFiber {
		return fiberFactory(decl)
	}
	p := newPrinter()
	body := "{}"
	if decl.Body != nil {
		body = p.stmt(decl.Body)
	}
	return FunctionSignature(decl) + " " + body + "\n"
}

func fiberFactory(decl *ast.FunctionDecl) string {
	className := fiberStateName(Mangle(decl.Name))
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", FunctionSignature(decl))
	fmt.Fprintf(&b, "    auto f_ = MakeShared<%s>();\n", className)
	for _, param := range decl.Params {
		fmt.Fprintf(&b, "    f_->%s = %s;\n", Mangle(param.Name), Mangle(param.Name))
	}
	b.WriteString("    return f_;\n")
	b.WriteString("}\n")
	return b.String()
}

// OperatorSignature renders an operator's method declaration line,
// as a member of its Owner class. Binary/unary operators use the
// native-or-mangled method name from MangleOperator; conversion
// operators have no Symbol and render as a conversion-to-T method.
func OperatorSignature(decl *ast.OperatorDecl) string {
	switch decl.Kind {
	case ast.OpConversion:
		target := "void"
		if decl.ResolvedReturn != nil {
			target = CType(decl.ResolvedReturn)
		}
		return fmt.Sprintf("%s %s()", target, Mangle("convert_to_"+target))
	case ast.OpAssignment:
		return fmt.Sprintf("void %s(%s)", Mangle("assign"), paramList(decl.Params))
	default:
		ret := "void"
		if decl.ResolvedReturn != nil {
			ret = CType(decl.ResolvedReturn)
		}
		return fmt.Sprintf("%s %s(%s)", ret, MangleOperator(decl.Symbol), paramList(decl.Params))
	}
}

func OperatorDefinition(decl *ast.OperatorDecl) string {
	p := newPrinter()
	body := "{}"
	if decl.Body != nil {
		body = p.stmt(decl.Body)
	}
	return OperatorSignature(decl) + " " + body + "\n"
}

// ClassDefinition renders the full class, including its constructor
// (built from CtorParams, populated by ResolverHeader), member
// variables, member functions/fibers, and operators.
func ClassDefinition(decl *ast.ClassDecl) string {
	var b strings.Builder
	name := Mangle(decl.Name)
	b.WriteString("class " + name)
	if decl.BaseType != nil && len(decl.Supers) > 0 {
		b.WriteString(" : public " + Mangle(decl.Supers[0].Name))
	}
	b.WriteString(" {\npublic:\n")

	ctorParams := make([]string, len(decl.CtorParams))
	for i, m := range decl.CtorParams {
		ctorParams[i] = CType(m.VarType) + " " + Mangle(m.Name)
	}
	b.WriteString("    " + name + "(" + strings.Join(ctorParams, ", ") + ")")
	if len(decl.CtorParams) > 0 {
		inits := make([]string, len(decl.CtorParams))
		for i, m := range decl.CtorParams {
			inits[i] = Mangle(m.Name) + "(" + Mangle(m.Name) + ")"
		}
		b.WriteString(" : " + strings.Join(inits, ", "))
	}
	b.WriteString(" {}\n\n")

	for _, stmt := range decl.Body {
		switch member := stmt.(type) {
		case *ast.MemberVariableDecl:
			init := ""
			if member.Init != nil {
				init = " = " + newPrinter().expr(member.Init)
			}
			fmt.Fprintf(&b, "    %s %s%s;\n", CType(member.VarType), Mangle(member.Name), init)
		case *ast.FunctionDecl:
			b.WriteString("    " + indentBody(FunctionDefinition(member)))
		case *ast.OperatorDecl:
			b.WriteString("    " + indentBody(OperatorDefinition(member)))
		}
	}
	b.WriteString("};\n")
	return b.String()
}

// indentBody is a light touch-up so nested member definitions don't
// all start flush against the class's left margin; the printer itself
// already indents each definition's own body.
func indentBody(s string) string {
	return strings.ReplaceAll(s, "\n", "\n    ")
}
