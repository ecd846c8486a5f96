package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/types"
)

// printer renders resolved expressions and statements into the target
// dialect as plain strings, grounded on resolveExpr's type-switch idiom
// in resolve/resolver_source.go rather than the Visitor interface: a
// code generator has a return value at every node (the printed text),
// which a read-only ast.Visitor can't carry back to its caller without
// an accumulator field, so a direct recursive function is the simpler,
// more idiomatic fit here.
type printer struct {
	indent int

	// localNames/yieldLabels are populated only when printing a fiber
	// body (see FiberDeclClass in fibergen.go): they redirect a local
	// variable's declaration/reference to its promoted member-field
	// name, and a yield statement to its state-machine label, so the
	// same recursive printer handles both ordinary bodies and fiber
	// bodies without duplicating the whole expr/stmt switch.
	localNames  map[*ast.LocalVariableDecl]string
	yieldLabels map[*ast.YieldStmt]int
}

func newPrinter() *printer { return &printer{} }

func (p *printer) pad() string { return strings.Repeat("    ", p.indent) }

// expr renders e as a target-language expression.
func (p *printer) expr(e ast.Expression) string {
	if e == nil {
		return ""
	}
	switch n := e.(type) {
	case *ast.BoolLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.IntLiteral:
		return n.Value.String()
	case *ast.RealLiteral:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *ast.StringLiteral:
		return strconv.Quote(n.Value)
	case *ast.NilLiteral:
		return "nullptr"
	case *ast.Identifier:
		return p.identifier(n)
	case *ast.OverloadedIdentifier:
		return p.overloadedIdentifier(n)
	case *ast.CallExpr:
		return p.call(n)
	case *ast.BinaryCallExpr:
		return p.binaryCall(n)
	case *ast.UnaryCallExpr:
		return p.unaryCall(n)
	case *ast.AssignExpr:
		return "(" + p.expr(n.Left) + " = " + p.expr(n.Right) + ")"
	case *ast.MemberExpr:
		return p.member(n)
	case *ast.GlobalExpr:
		return "Globals::" + Mangle(n.Name)
	case *ast.SuperExpr:
		return "this->super_"
	case *ast.ThisExpr:
		return "this"
	case *ast.SliceExpr:
		s := p.expr(n.Array)
		for _, idx := range n.Indices {
			s += "->at(" + p.expr(idx) + ")"
		}
		return s
	case *ast.RangeExpr:
		return "Range(" + p.expr(n.Lower) + ", " + p.expr(n.Upper) + ")"
	case *ast.IndexExpr:
		return p.expr(n.Array) + "->at(" + p.expr(n.Index) + ")"
	case *ast.SpanExpr:
		return p.expr(n.Array) + "->span(" + p.expr(n.Range.Lower) + ", " + p.expr(n.Range.Upper) + ")"
	case *ast.BracesExpr:
		return "(" + p.expr(n.Inner) + ")"
	case *ast.ParensExpr:
		return "(" + p.expr(n.Inner) + ")"
	case *ast.SequenceExpr:
		return p.sequence(n)
	case *ast.LambdaExpr:
		return p.lambda(n)
	case *ast.CastExpr:
		return "static_cast<" + CType(n.ResolvedType()) + ">(" + p.expr(n.Operand) + ")"
	case *ast.QueryExpr:
		return p.expr(n.Operand) + "->hasValue()"
	case *ast.GetExpr:
		return p.expr(n.Operand) + "->get()"
	case *ast.LocalVariableDecl:
		return p.localVarInit(n)
	case *ast.ExprList:
		parts := make([]string, 0, 4)
		for _, el := range n.Slice() {
			parts = append(parts, p.expr(el))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("/* unhandled expr %T */", e)
	}
}

func (p *printer) identifier(n *ast.Identifier) string {
	switch n.Kind {
	case ast.IdentMemberVariable:
		return "this->" + Mangle(n.Name)
	case ast.IdentGlobalVariable:
		return "Globals::" + Mangle(n.Name)
	case ast.IdentClassRef:
		return Mangle(n.Name)
	case ast.IdentLocalVariable:
		if p.localNames != nil {
			if lv, ok := n.Target.(*ast.LocalVariableDecl); ok {
				if member, ok := p.localNames[lv]; ok {
					return "this->" + member
				}
			}
		}
		return Mangle(n.Name)
	default:
		return Mangle(n.Name)
	}
}

func (p *printer) overloadedIdentifier(n *ast.OverloadedIdentifier) string {
	if n.Target != nil {
		return "&" + Mangle(n.Target.DeclName())
	}
	return "&" + Mangle(n.Name)
}

// call renders a CallExpr. Constructor calls (ConstructedClass set) go
// through MakeShared; member-function calls route through the callee
// MemberExpr's object; everything else calls the resolved target (or,
// failing resolution, the printed callee expression) directly.
func (p *printer) call(n *ast.CallExpr) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = p.expr(a)
	}
	joined := strings.Join(args, ", ")

	if n.ConstructedClass != nil {
		return "MakeShared<" + Mangle(n.ConstructedClass.DeclName()) + ">(" + joined + ")"
	}
	if me, ok := n.Callee.(*ast.MemberExpr); ok && me.Set != nil {
		return p.expr(me.Object) + "->" + Mangle(me.Name) + "(" + joined + ")"
	}
	if n.Target != nil {
		return Mangle(n.Target.DeclName()) + "(" + joined + ")"
	}
	return p.expr(n.Callee) + "(" + joined + ")"
}

func (p *printer) binaryCall(n *ast.BinaryCallExpr) string {
	if _, ok := nativeOperators[n.Operator]; ok {
		return "(" + p.expr(n.Left) + " " + n.Operator + " " + p.expr(n.Right) + ")"
	}
	return p.expr(n.Left) + "->" + MangleOperator(n.Operator) + "(" + p.expr(n.Right) + ")"
}

func (p *printer) unaryCall(n *ast.UnaryCallExpr) string {
	if _, ok := nativeOperators[n.Operator]; ok {
		return "(" + n.Operator + p.expr(n.Operand) + ")"
	}
	return p.expr(n.Operand) + "->" + MangleOperator(n.Operator) + "()"
}

func (p *printer) member(n *ast.MemberExpr) string {
	return p.expr(n.Object) + "->" + Mangle(n.Name)
}

func (p *printer) sequence(n *ast.SequenceExpr) string {
	elem := "auto"
	if st, ok := n.ResolvedType().(types.SequenceType); ok {
		elem = CType(st.Element)
	}
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = p.expr(e)
	}
	return "MakeSequence<" + elem + ">({" + strings.Join(parts, ", ") + "})"
}

func (p *printer) lambda(n *ast.LambdaExpr) string {
	params := make([]string, len(n.Params))
	for i, param := range n.Params {
		params[i] = paramCType(param) + " " + Mangle(param.Name)
	}
	var b strings.Builder
	b.WriteString("[=](")
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(") -> auto ")
	b.WriteString(p.stmt(n.Body))
	return b.String()
}

func (p *printer) localVarInit(n *ast.LocalVariableDecl) string {
	// Inside a fiber body this local has already been declared as a
	// member field of the backing state class (fibergen.go); a second
	// `auto x` here would shadow it and lose the value across
	// suspend/resume, so re-assign the member instead of redeclaring.
	if p.localNames != nil {
		if member, ok := p.localNames[n]; ok {
			if n.Init == nil {
				return ""
			}
			return "this->" + member + " = " + p.expr(n.Init)
		}
	}
	t := "auto"
	if rt := n.ResolvedType(); rt != nil {
		if _, unknown := rt.(types.UnknownType); !unknown {
			t = CType(rt)
		}
	}
	if n.Init == nil {
		return t + " " + Mangle(n.Name)
	}
	return t + " " + Mangle(n.Name) + " = " + p.expr(n.Init)
}

func paramCType(param *ast.ParameterDecl) string {
	if rt := param.ResolvedType(); rt != nil {
		if _, unknown := rt.(types.UnknownType); !unknown {
			return CType(rt)
		}
	}
	return "auto"
}

// stmt renders s as a braced or single target-language statement,
// indented to the printer's current depth.
func (p *printer) stmt(s ast.Statement) string {
	if s == nil {
		return "{}"
	}
	switch n := s.(type) {
	case *ast.BracesStmt:
		return p.block(n.Statements)
	case *ast.StmtList:
		return p.block(n.Slice())
	case *ast.ExpressionStmt:
		if lv, ok := n.Expr.(*ast.LocalVariableDecl); ok {
			return p.localVarInit(lv) + ";"
		}
		return p.expr(n.Expr) + ";"
	case *ast.IfStmt:
		return p.ifStmt(n)
	case *ast.ForStmt:
		return p.forStmt(n)
	case *ast.WhileStmt:
		return "while (" + p.expr(n.Cond) + ") " + p.stmt(n.Body)
	case *ast.DoWhileStmt:
		return "do " + p.stmt(n.Body) + " while (" + p.expr(n.Cond) + ");"
	case *ast.ReturnStmt:
		if n.Value == nil {
			return "return;"
		}
		return "return " + p.expr(n.Value) + ";"
	case *ast.YieldStmt:
		return p.yieldStmt(n)
	case *ast.AssertStmt:
		return "assert(" + p.expr(n.Cond) + ");"
	case *ast.AssumeStmt:
		return "Runtime::assume(" + p.expr(n.Target) + ", " + p.expr(n.Value) + ");"
	case *ast.RawCodeStmt:
		return n.Code
	case *ast.AssignStmt:
		return p.expr(n.Left) + " = " + p.expr(n.Right) + ";"
	case *ast.InstantiatedStmt:
		return "" // purely a compile-time directive, no runtime effect
	default:
		return fmt.Sprintf("/* unhandled stmt %T */", s)
	}
}

func (p *printer) block(stmts []ast.Statement) string {
	var b strings.Builder
	b.WriteString("{\n")
	p.indent++
	for _, s := range stmts {
		line := p.stmt(s)
		if line == "" {
			continue
		}
		b.WriteString(p.pad())
		b.WriteString(line)
		b.WriteString("\n")
	}
	p.indent--
	b.WriteString(p.pad())
	b.WriteString("}")
	return b.String()
}

func (p *printer) ifStmt(n *ast.IfStmt) string {
	s := "if (" + p.expr(n.Cond) + ") " + p.stmt(n.Then)
	if n.Else != nil {
		s += " else " + p.stmt(n.Else)
	}
	return s
}

// yieldStmt renders one suspend point of a fiber's state machine:
// store the yielded value, record where to resume, report a value is
// ready, and drop a label right after the return so a later query()
// jumping here continues with the statements that follow in source
// order.
func (p *printer) yieldStmt(n *ast.YieldStmt) string {
	label, ok := p.yieldLabels[n]
	if !ok {
		// No state machine in scope: a yield reached the generic
		// printer directly, which only happens if a fiber body is
		// printed without going through FiberDeclClass first.
		return fmt.Sprintf("/* unlowered yield */ return; // %s", p.expr(n.Value))
	}
	return fmt.Sprintf("this->value_ = %s;\n%sthis->label_ = %d;\n%sreturn true;\n%sLABEL_%d:;",
		p.expr(n.Value), p.pad(), label, p.pad(), p.pad(), label)
}

func (p *printer) forStmt(n *ast.ForStmt) string {
	prefix := ""
	if n.Parallel {
		prefix = "#pragma omp parallel for\n" + p.pad()
	}
	return prefix + "for (auto& " + Mangle(n.VarName) + " : *(" + p.expr(n.Iterable) + ")) " + p.stmt(n.Body)
}
