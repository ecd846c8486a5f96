package resolve_test

import (
	"testing"

	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/generics"
	"github.com/fernvibe/fernc/parser"
	"github.com/fernvibe/fernc/resolve"
	"github.com/fernvibe/fernc/scope"
)

// runPasses drives the full Typer -> ResolverSuper -> ResolverHeader ->
// ResolverSource pipeline over src against one fresh global scope,
// mirroring resolve.Processor.Process without going through the
// pipeline package, so these tests can inspect the resolver passes in
// isolation.
func runPasses(t *testing.T, src string) []*diagnostics.DiagnosticError {
	t.Helper()
	p := parser.New("r.bi", src)
	prog := p.ParseProgram()
	if len(p.Errors) > 0 {
		t.Fatalf("parse errors: %v", p.Errors)
	}

	global := scope.New(nil, scope.KindGlobal)
	inst := generics.New()
	inst.Bind(global)

	var errs []*diagnostics.DiagnosticError

	typer := resolve.NewTyper(global)
	typer.Run(prog)
	errs = append(errs, typer.Errors...)

	super := resolve.NewResolverSuper(global, nil)
	super.Instantiator = inst
	super.Run(prog)
	errs = append(errs, super.Errors...)

	header := resolve.NewResolverHeader(global, nil)
	header.Instantiator = inst
	header.Run(prog)
	errs = append(errs, header.Errors...)

	source := resolve.NewResolverSource(global, nil)
	source.Instantiator = inst
	source.Run(prog)
	errs = append(errs, source.Errors...)

	return errs
}

func hasCode(errs []*diagnostics.DiagnosticError, code diagnostics.ErrorCode) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}

func TestResolverSource_UnresolvedReferenceIsReported(t *testing.T) {
	errs := runPasses(t, `
		function f() -> Integer { return undefinedName; }
	`)
	if !hasCode(errs, diagnostics.UnresolvedReference) {
		t.Fatalf("expected an unresolved-reference error, got: %v", errs)
	}
}

func TestTyper_DuplicateClassIsReported(t *testing.T) {
	errs := runPasses(t, `
		class Shape;
		class Shape;
	`)
	if !hasCode(errs, diagnostics.PreviousDeclaration) {
		t.Fatalf("expected a previous-declaration error, got: %v", errs)
	}
}

func TestResolverSource_AmbiguousOverloadIsReported(t *testing.T) {
	errs := runPasses(t, `
		function h(x: Integer, y: Real) -> Integer { return x; }
		function h(x: Real, y: Integer) -> Integer { return y; }
		function caller() -> Integer { return h(1, 1); }
	`)
	if !hasCode(errs, diagnostics.AmbiguousCall) {
		t.Fatalf("expected an ambiguous-call error, got: %v", errs)
	}
}

func TestResolverSource_ReturnTypeMismatchIsReported(t *testing.T) {
	errs := runPasses(t, `
		function f() -> Integer { return "not an integer"; }
	`)
	if !hasCode(errs, diagnostics.ReturnType) {
		t.Fatalf("expected a return-type error, got: %v", errs)
	}
}

func TestResolverSource_GenericConstructorAcceptsConcreteArgument(t *testing.T) {
	errs := runPasses(t, `
		class Box<T> { x: T; }
		function useIt() -> Integer { auto b <- Box<Integer>(1); return b.x; }
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors constructing a generic class with a concrete argument: %v", errs)
	}
}

func TestResolverSource_IntegerWidensToReal(t *testing.T) {
	errs := runPasses(t, `
		function f() -> Real { return 1; }
	`)
	if len(errs) != 0 {
		t.Fatalf("expected Integer to widen to Real with no errors, got: %v", errs)
	}
}
