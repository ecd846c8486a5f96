package parser_test

import (
	"testing"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/parser"
)

// parseExpr parses src as a single expression statement and returns
// the expression, failing the test on any parse error.
func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	p := parser.New("t.fn", "x = "+src+";")
	prog := p.ParseProgram()
	if len(p.Errors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors)
	}
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}
	es, ok := prog.Decls[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("expected ExpressionStmt, got %T", prog.Decls[0])
	}
	assign, ok := es.Expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected AssignExpr, got %T", es.Expr)
	}
	return assign.Right
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.New("t.fn", src)
	prog := p.ParseProgram()
	if len(p.Errors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors)
	}
	return prog
}

func TestLiterals(t *testing.T) {
	if lit := parseExpr(t, "42").(*ast.IntLiteral); lit.Value.Int64() != 42 {
		t.Errorf("got %v, want 42", lit.Value)
	}
	if lit := parseExpr(t, "3.5").(*ast.RealLiteral); lit.Value != 3.5 {
		t.Errorf("got %v, want 3.5", lit.Value)
	}
	if lit := parseExpr(t, `"hi"`).(*ast.StringLiteral); lit.Value != "hi" {
		t.Errorf("got %q, want hi", lit.Value)
	}
	if lit := parseExpr(t, "true").(*ast.BoolLiteral); !lit.Value {
		t.Errorf("got false, want true")
	}
	if _, ok := parseExpr(t, "nil").(*ast.NilLiteral); !ok {
		t.Errorf("expected NilLiteral")
	}
}

func TestBinaryPrecedence(t *testing.T) {
	// 5 + 2 * 10  =>  5 + (2 * 10)
	bin := parseExpr(t, "5 + 2 * 10").(*ast.BinaryCallExpr)
	if bin.Operator != "+" {
		t.Fatalf("top operator = %q, want +", bin.Operator)
	}
	if _, ok := bin.Left.(*ast.IntLiteral); !ok {
		t.Errorf("left = %T, want IntLiteral", bin.Left)
	}
	rhs, ok := bin.Right.(*ast.BinaryCallExpr)
	if !ok {
		t.Fatalf("right = %T, want BinaryCallExpr", bin.Right)
	}
	if rhs.Operator != "*" {
		t.Errorf("right operator = %q, want *", rhs.Operator)
	}
}

func TestUnaryExpr(t *testing.T) {
	u := parseExpr(t, "-5").(*ast.UnaryCallExpr)
	if u.Operator != "-" {
		t.Errorf("operator = %q, want -", u.Operator)
	}
	if _, ok := u.Operand.(*ast.IntLiteral); !ok {
		t.Errorf("operand = %T, want IntLiteral", u.Operand)
	}
}

func TestMemberAndCall(t *testing.T) {
	call := parseExpr(t, "obj.method(1, 2)").(*ast.CallExpr)
	mem, ok := call.Callee.(*ast.MemberExpr)
	if !ok {
		t.Fatalf("callee = %T, want MemberExpr", call.Callee)
	}
	if mem.Name != "method" {
		t.Errorf("member name = %q, want method", mem.Name)
	}
	if len(call.Args) != 2 {
		t.Fatalf("args len = %d, want 2", len(call.Args))
	}
}

func TestGenericCallVsComparison(t *testing.T) {
	call := parseExpr(t, "f<Real>(x)").(*ast.CallExpr)
	ident, ok := call.Callee.(*ast.Identifier)
	if !ok || ident.Name != "f" {
		t.Fatalf("callee = %#v, want Identifier(f)", call.Callee)
	}
	if len(call.TypeArgs) != 1 {
		t.Fatalf("type args len = %d, want 1", len(call.TypeArgs))
	}

	// a < b is an ordinary comparison, not a generic call.
	cmp := parseExpr(t, "a < b").(*ast.BinaryCallExpr)
	if cmp.Operator != "<" {
		t.Errorf("operator = %q, want <", cmp.Operator)
	}

	// a < b > c is a chain of comparisons ((a < b) > c), not f<b>(c).
	chain := parseExpr(t, "a < b > c").(*ast.BinaryCallExpr)
	if chain.Operator != ">" {
		t.Errorf("top operator = %q, want >", chain.Operator)
	}
	if _, ok := chain.Left.(*ast.BinaryCallExpr); !ok {
		t.Errorf("left = %T, want BinaryCallExpr", chain.Left)
	}
}

func TestIndexSliceSpan(t *testing.T) {
	idx := parseExpr(t, "a[0]").(*ast.IndexExpr)
	if _, ok := idx.Index.(*ast.IntLiteral); !ok {
		t.Errorf("index = %T, want IntLiteral", idx.Index)
	}

	sl := parseExpr(t, "a[0, 1]").(*ast.SliceExpr)
	if len(sl.Indices) != 2 {
		t.Errorf("slice indices len = %d, want 2", len(sl.Indices))
	}

	span := parseExpr(t, "a[0..5]").(*ast.SpanExpr)
	if span.Range.Lower == nil || span.Range.Upper == nil {
		t.Errorf("expected both Lo and Hi set in span")
	}
}

func TestCastQueryGet(t *testing.T) {
	cast := parseExpr(t, "x as Integer").(*ast.CastExpr)
	if _, ok := cast.Target.(*ast.BasicTypeRef); !ok {
		t.Errorf("cast target = %T, want BasicTypeRef", cast.Target)
	}
	if _, ok := parseExpr(t, "x?").(*ast.QueryExpr); !ok {
		t.Errorf("expected QueryExpr")
	}
	if _, ok := parseExpr(t, "x!").(*ast.GetExpr); !ok {
		t.Errorf("expected GetExpr")
	}
}

func TestLambdaExpr(t *testing.T) {
	lam := parseExpr(t, "function(x: Integer) -> Integer { return x; }").(*ast.LambdaExpr)
	if len(lam.Params) != 1 || lam.Params[0].Name != "x" {
		t.Fatalf("params = %#v", lam.Params)
	}
	fiberLam := parseExpr(t, "fiber(x: Integer) -> Integer { yield x; }").(*ast.LambdaExpr)
	if _, ok := fiberLam.ReturnType.(*ast.FiberTypeRef); !ok {
		t.Errorf("ret = %T, want FiberTypeRef", fiberLam.ReturnType)
	}
}

func TestIfElseStatement(t *testing.T) {
	prog := mustParse(t, `
		program P() {
			if (a) { b = 1; } else { b = 2; }
		}
	`)
	pd := prog.Decls[0].(*ast.ProgramDecl)
	braces := pd.Body.(*ast.BracesStmt)
	ifs := braces.Statements[0].(*ast.IfStmt)
	if ifs.Else == nil {
		t.Fatal("expected an else branch")
	}
}

func TestDoWhileStatement(t *testing.T) {
	prog := mustParse(t, `
		program P() {
			do { x = x + 1; } while (x < 10);
		}
	`)
	pd := prog.Decls[0].(*ast.ProgramDecl)
	braces := pd.Body.(*ast.BracesStmt)
	if _, ok := braces.Statements[0].(*ast.DoWhileStmt); !ok {
		t.Fatalf("stmt = %T, want DoWhileStmt", braces.Statements[0])
	}
}

func TestForStatement(t *testing.T) {
	prog := mustParse(t, `
		program P() {
			for parallel i in items { print(i); }
		}
	`)
	pd := prog.Decls[0].(*ast.ProgramDecl)
	braces := pd.Body.(*ast.BracesStmt)
	fs := braces.Statements[0].(*ast.ForStmt)
	if !fs.Parallel {
		t.Error("expected Parallel = true")
	}
	if fs.VarName != "i" {
		t.Errorf("VarName = %q, want i", fs.VarName)
	}
}

func TestLocalVariableDecl(t *testing.T) {
	prog := mustParse(t, `
		program P() {
			auto x <- 5;
			y: Integer <- 10;
		}
	`)
	pd := prog.Decls[0].(*ast.ProgramDecl)
	braces := pd.Body.(*ast.BracesStmt)
	if len(braces.Statements) != 2 {
		t.Fatalf("stmts len = %d, want 2", len(braces.Statements))
	}
	d1 := braces.Statements[0].(*ast.ExpressionStmt).Expr.(*ast.LocalVariableDecl)
	if !d1.Auto || d1.Name != "x" {
		t.Errorf("first local = %#v", d1)
	}
	d2 := braces.Statements[1].(*ast.ExpressionStmt).Expr.(*ast.LocalVariableDecl)
	if d2.Auto || d2.Name != "y" {
		t.Errorf("second local = %#v", d2)
	}
}

func TestAssignStmtSugar(t *testing.T) {
	prog := mustParse(t, `
		program P() {
			x ~> y;
		}
	`)
	pd := prog.Decls[0].(*ast.ProgramDecl)
	braces := pd.Body.(*ast.BracesStmt)
	as := braces.Statements[0].(*ast.AssignStmt)
	if as.Sugar != "~>" {
		t.Errorf("Sugar = %q, want ~>", as.Sugar)
	}
}

func TestAssumeAndRawCodeStatements(t *testing.T) {
	prog := mustParse(t, `
		program P() {
			assume x <- guess();
			@ "int raw_val = 1;" ;
		}
	`)
	pd := prog.Decls[0].(*ast.ProgramDecl)
	braces := pd.Body.(*ast.BracesStmt)
	if _, ok := braces.Statements[0].(*ast.AssumeStmt); !ok {
		t.Errorf("stmt[0] = %T, want AssumeStmt", braces.Statements[0])
	}
	raw, ok := braces.Statements[1].(*ast.RawCodeStmt)
	if !ok {
		t.Fatalf("stmt[1] = %T, want RawCodeStmt", braces.Statements[1])
	}
	if raw.Code != "int raw_val = 1;" {
		t.Errorf("code = %q", raw.Code)
	}
}

func TestClassDeclWithMembers(t *testing.T) {
	prog := mustParse(t, `
		class Vec2 {
			x: Real <- 0.0;
			function length() -> Real { return x; }
		}
	`)
	cd := prog.Decls[0].(*ast.ClassDecl)
	if cd.Name != "Vec2" {
		t.Errorf("name = %q, want Vec2", cd.Name)
	}
	if len(cd.Body) != 2 {
		t.Fatalf("body len = %d, want 2", len(cd.Body))
	}
}

func TestClassForwardDecl(t *testing.T) {
	prog := mustParse(t, `class Vec2;`)
	cd := prog.Decls[0].(*ast.ClassDecl)
	if cd.Body != nil {
		t.Errorf("expected nil body for forward decl, got %v", cd.Body)
	}
}

func TestOperatorDeclKinds(t *testing.T) {
	prog := mustParse(t, `
		class Vec2 {
			operator +(other: Vec2) -> Vec2 { return this; }
			operator -(this_copy: Vec2) -> Vec2 { return this_copy; }
			operator -> Real { return 0.0; }
			operator =(other: Vec2) { x = other.x; }
		}
	`)
	cd := prog.Decls[0].(*ast.ClassDecl)
	binOp := cd.Body[0].(*ast.OperatorDecl)
	if binOp.Kind != ast.OpBinary {
		t.Errorf("binOp.Kind = %v, want OpBinary", binOp.Kind)
	}
	unOp := cd.Body[1].(*ast.OperatorDecl)
	if unOp.Kind != ast.OpUnary {
		t.Errorf("unOp.Kind = %v, want OpUnary", unOp.Kind)
	}
	convOp := cd.Body[2].(*ast.OperatorDecl)
	if convOp.Kind != ast.OpConversion {
		t.Errorf("convOp.Kind = %v, want OpConversion", convOp.Kind)
	}
	assignOp := cd.Body[3].(*ast.OperatorDecl)
	if assignOp.Kind != ast.OpAssignment {
		t.Errorf("assignOp.Kind = %v, want OpAssignment", assignOp.Kind)
	}
}

func TestGenericFunctionDecl(t *testing.T) {
	prog := mustParse(t, `
		function identity<T>(x: T) -> T {
			return x;
		}
	`)
	fd := prog.Decls[0].(*ast.FunctionDecl)
	if len(fd.Generics) != 1 || fd.Generics[0].Name != "T" {
		t.Fatalf("generics = %#v", fd.Generics)
	}
	if fd.IsFiber {
		t.Error("expected IsFiber = false")
	}
}

func TestFiberDeclWrapsReturnType(t *testing.T) {
	prog := mustParse(t, `
		fiber produce() -> Integer {
			yield 1;
		}
	`)
	fd := prog.Decls[0].(*ast.FunctionDecl)
	if !fd.IsFiber {
		t.Error("expected IsFiber = true")
	}
	if _, ok := fd.ReturnType.(*ast.FiberTypeRef); !ok {
		t.Errorf("Ret = %T, want FiberTypeRef (auto-wrapped)", fd.ReturnType)
	}
}

func TestTypeSyntax(t *testing.T) {
	prog := mustParse(t, `
		function f(
			a: Integer?,
			b: Integer!,
			c: ~Integer,
			d: [Integer],
			e: [Integer; 3],
			g: {Integer},
			h: (Integer, Real) -> Boolean
		) {}
	`)
	fd := prog.Decls[0].(*ast.FunctionDecl)
	if _, ok := fd.Params[0].TypeAnn.(*ast.OptionalTypeRef); !ok {
		t.Errorf("a type = %T, want OptionalTypeRef", fd.Params[0].TypeAnn)
	}
	if _, ok := fd.Params[1].TypeAnn.(*ast.FiberTypeRef); !ok {
		t.Errorf("b type = %T, want FiberTypeRef", fd.Params[1].TypeAnn)
	}
	if _, ok := fd.Params[2].TypeAnn.(*ast.WeakTypeRef); !ok {
		t.Errorf("c type = %T, want WeakTypeRef", fd.Params[2].TypeAnn)
	}
	arr, ok := fd.Params[3].TypeAnn.(*ast.ArrayTypeRef)
	if !ok || arr.Ndims != 1 {
		t.Errorf("d type = %#v, want ArrayTypeRef{Dims:1}", fd.Params[3].TypeAnn)
	}
	arr2, ok := fd.Params[4].TypeAnn.(*ast.ArrayTypeRef)
	if !ok || arr2.Ndims != 3 {
		t.Errorf("e type = %#v, want ArrayTypeRef{Dims:3}", fd.Params[4].TypeAnn)
	}
	if _, ok := fd.Params[5].TypeAnn.(*ast.SequenceTypeRef); !ok {
		t.Errorf("g type = %T, want SequenceTypeRef", fd.Params[5].TypeAnn)
	}
	if _, ok := fd.Params[6].TypeAnn.(*ast.FunctionTypeRef); !ok {
		t.Errorf("h type = %T, want FunctionTypeRef", fd.Params[6].TypeAnn)
	}
}

func TestPackageAndExports(t *testing.T) {
	prog := mustParse(t, `
		package geometry;
		export Vec2, Vec3;
		export * from "collections";

		class Vec2;
	`)
	if prog.Package == nil {
		t.Fatal("expected a package decl")
	}
	if prog.Package.Name != "geometry" {
		t.Errorf("package name = %q, want geometry", prog.Package.Name)
	}
	// "export Vec2, Vec3;" expands to one ExportSpec per name, plus one
	// more for the "export * from ...;" re-export line.
	if len(prog.Package.Exports) != 3 {
		t.Fatalf("exports len = %d, want 3", len(prog.Package.Exports))
	}
	if prog.Package.Exports[2].ModuleName != "collections" {
		t.Errorf("last export module = %q, want collections", prog.Package.Exports[2].ModuleName)
	}
}

func TestImportStmt(t *testing.T) {
	prog := mustParse(t, `import "collections";`)
	if len(prog.Imports) != 1 || prog.Imports[0].Path != "collections" {
		t.Fatalf("imports = %#v", prog.Imports)
	}
}

func TestGlobalVariableDecl(t *testing.T) {
	prog := mustParse(t, `global auto counter <- 0;`)
	gd := prog.Decls[0].(*ast.GlobalVariableDecl)
	if !gd.Auto || gd.Name != "counter" {
		t.Fatalf("global = %#v", gd)
	}
}

func TestInstantiatedStmt(t *testing.T) {
	prog := mustParse(t, `instantiated Stack<Integer>;`)
	is := prog.Decls[0].(*ast.InstantiatedStmt)
	if is.Name != "Stack" || len(is.TypeArgs) != 1 {
		t.Fatalf("instantiated = %#v", is)
	}
}

func TestBasicTypeDecl(t *testing.T) {
	prog := mustParse(t, `type Meters;`)
	bt := prog.Decls[0].(*ast.BasicTypeDecl)
	if bt.Name != "Meters" {
		t.Errorf("name = %q, want Meters", bt.Name)
	}
}

func TestSequenceAndBracesLiteral(t *testing.T) {
	seq := parseExpr(t, "{1, 2, 3}").(*ast.SequenceExpr)
	if len(seq.Elements) != 3 {
		t.Fatalf("elems len = %d, want 3", len(seq.Elements))
	}
	br := parseExpr(t, "{1}").(*ast.BracesExpr)
	if _, ok := br.Inner.(*ast.IntLiteral); !ok {
		t.Errorf("inner = %T, want IntLiteral", br.Inner)
	}
}

func TestModifiers(t *testing.T) {
	prog := mustParse(t, `final abstract class Shape;`)
	cd := prog.Decls[0].(*ast.ClassDecl)
	if !cd.Final || !cd.Abstract {
		t.Errorf("Annotated = %#v, want Final+Abstract", cd.Annotated)
	}
}
