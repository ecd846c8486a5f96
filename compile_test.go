// End-to-end tests exercising the full pipeline -- parse, all four
// resolver passes, generic instantiation, fiber lowering, and emission
// -- against representative compiler scenarios (duplicate declarations,
// overload specialization, ambiguous calls, generic instantiation,
// fiber lowering).
package fernc_test

import (
	"strings"
	"testing"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/emit"
	"github.com/fernvibe/fernc/generics"
	"github.com/fernvibe/fernc/parser"
	"github.com/fernvibe/fernc/resolve"
	"github.com/fernvibe/fernc/scope"
)

// compileResult bundles the resolved AST and every diagnostic collected
// across all four passes for one source file.
type compileResult struct {
	prog *ast.Program
	errs []*diagnostics.DiagnosticError
}

// compileSource runs the full parse+resolve pipeline over src against a
// fresh global scope, mirroring cmd/fernc's compileFiles but returning
// results instead of printing/exiting, so tests can assert on them.
func compileSource(t *testing.T, src string) *compileResult {
	t.Helper()
	p := parser.New("t.bi", src)
	prog := p.ParseProgram()
	res := &compileResult{prog: prog}
	res.errs = append(res.errs, p.Errors...)
	if len(p.Errors) > 0 {
		return res
	}

	global := scope.New(nil, scope.KindGlobal)
	inst := generics.New()
	inst.Bind(global)

	typer := resolve.NewTyper(global)
	typer.Run(prog)
	res.errs = append(res.errs, typer.Errors...)

	super := resolve.NewResolverSuper(global, nil)
	super.Instantiator = inst
	super.Run(prog)
	res.errs = append(res.errs, super.Errors...)

	header := resolve.NewResolverHeader(global, nil)
	header.Instantiator = inst
	header.Run(prog)
	res.errs = append(res.errs, header.Errors...)

	source := resolve.NewResolverSource(global, nil)
	source.Instantiator = inst
	source.Run(prog)
	res.errs = append(res.errs, source.Errors...)

	return res
}

func expectNoErrors(t *testing.T, src string) *compileResult {
	t.Helper()
	res := compileSource(t, src)
	if len(res.errs) > 0 {
		t.Fatalf("unexpected errors for %q:\n%v", src, res.errs)
	}
	return res
}

func expectError(t *testing.T, src string, code diagnostics.ErrorCode) *compileResult {
	t.Helper()
	res := compileSource(t, src)
	for _, e := range res.errs {
		if e.Code == code {
			return res
		}
	}
	t.Fatalf("expected error %s for %q, got: %v", code, src, res.errs)
	return res
}

// Scenario 1: trivial type check.
func TestScenario_TrivialTypeCheck(t *testing.T) {
	res := expectNoErrors(t, `
		function f() -> Integer { return 1; }
	`)
	em := emit.New(nil)
	out := em.EmitProgram(res.prog)
	src, ok := out["t.cpp"]
	if !ok {
		t.Fatalf("expected a t.cpp output, got keys: %v", keys(out))
	}
	if !strings.Contains(string(src), "f_") {
		t.Errorf("expected mangled function name f_ in emitted source, got:\n%s", src)
	}
	if !strings.Contains(string(src), "1") {
		t.Errorf("expected literal 1 in emitted source, got:\n%s", src)
	}
}

// Scenario 2: duplicate declaration.
func TestScenario_DuplicateDeclaration(t *testing.T) {
	expectError(t, `
		class C;
		class C;
	`, diagnostics.PreviousDeclaration)
}

// Scenario 3: overload resolution picks the most specific match.
func TestScenario_OverloadSpecialization(t *testing.T) {
	res := expectNoErrors(t, `
		function g(x: Real) -> Real { return x; }
		function g(x: Integer) -> Integer { return x; }
		function caller() -> Integer { return g(1); }
	`)
	caller := res.prog.Decls[2].(*ast.FunctionDecl)
	body := caller.Body.(*ast.BracesStmt)
	ret := body.Statements[0].(*ast.ReturnStmt)
	call := ret.Value.(*ast.CallExpr)
	target, ok := call.Target.(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("target = %T, want *ast.FunctionDecl", call.Target)
	}
	if len(target.Params) != 1 || target.Params[0].TypeAnn.(*ast.BasicTypeRef).Name != "Integer" {
		t.Fatalf("expected the Integer overload to win, got params %#v", target.Params)
	}
}

// Scenario 4: ambiguous call.
func TestScenario_AmbiguousCall(t *testing.T) {
	expectError(t, `
		function h(x: Integer, y: Real) -> Integer { return x; }
		function h(x: Real, y: Integer) -> Integer { return y; }
		function caller() -> Integer { return h(1, 1); }
	`, diagnostics.AmbiguousCall)
}

// Scenario 5: generic instantiation idempotence.
func TestScenario_GenericInstantiationIdempotent(t *testing.T) {
	res := expectNoErrors(t, `
		class Box<T> { x: T; }
		function useOne() -> Integer { auto b1 <- Box<Integer>(1); return b1.x; }
		function useTwo() -> Integer { auto b2 <- Box<Integer>(2); return b2.x; }
	`)
	box := res.prog.Decls[0].(*ast.ClassDecl)
	if len(box.Instantiations) != 1 {
		t.Fatalf("expected exactly 1 instantiation of Box, got %d", len(box.Instantiations))
	}

	em := emit.New(nil)
	out := em.EmitProgram(res.prog)
	src := string(out["t.cpp"])
	if n := strings.Count(src, "class Box_"); n != 1 {
		t.Errorf("expected exactly one emitted Box instantiation, found %d in:\n%s", n, src)
	}
}

// Scenario 6: fiber lowering.
func TestScenario_FiberLowering(t *testing.T) {
	res := expectNoErrors(t, `
		fiber counter() -> Integer {
			auto i <- 0;
			while (true) {
				yield i;
				i <- i + 1;
			}
		}
	`)
	fd := res.prog.Decls[0].(*ast.FunctionDecl)
	if !fd.IsFiber {
		t.Fatal("expected counter to be a fiber")
	}

	em := emit.New(nil)
	out := em.EmitProgram(res.prog)
	src := string(out["t.cpp"])
	for _, want := range []string{"label_", "value_", "query("} {
		if !strings.Contains(src, want) {
			t.Errorf("expected emitted fiber source to contain %q, got:\n%s", want, src)
		}
	}
	// Exactly one yield statement means 3 labels: pre-start (0), the
	// one yield (1), finished (2) -- §4.5 / §8's "N+2 labels" property.
	if n := strings.Count(src, "case 0:"); n != 1 {
		t.Errorf("expected one dispatch case for label 0, found %d", n)
	}
	if n := strings.Count(src, "case 1:"); n != 1 {
		t.Errorf("expected one dispatch case for label 1, found %d", n)
	}
}

// Scenario 7: a registered conversion operator widens assignability and
// castability to its declared target, even without a reverse direction.
func TestScenario_ConversionOperatorAssignability(t *testing.T) {
	res := expectNoErrors(t, `
		class Feet;
		class Meters {
			operator -> Feet { return Feet(); }
		}
		function toFeet() -> Feet {
			auto m <- Meters();
			f: Feet <- m;
			return f as Feet;
		}
	`)
	meters := res.prog.Decls[1].(*ast.ClassDecl)
	if len(meters.Conversions) != 1 {
		t.Fatalf("expected Meters to register exactly one conversion, got %d", len(meters.Conversions))
	}
}

// The reverse direction -- assigning a Feet to a Meters-typed variable --
// is not granted by a one-way conversion operator.
func TestScenario_ConversionOperatorIsOneDirectional(t *testing.T) {
	expectError(t, `
		class Feet;
		class Meters {
			operator -> Feet { return Feet(); }
		}
		function backwards() -> Integer {
			f: Feet <- Feet();
			m: Meters <- f;
			return 0;
		}
	`, diagnostics.NotAssignable)
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
