package generics_test

import (
	"testing"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/generics"
	"github.com/fernvibe/fernc/parser"
	"github.com/fernvibe/fernc/resolve"
	"github.com/fernvibe/fernc/scope"
)

// resolveProgram runs the full four-pass pipeline over src and fails
// the test on any diagnostic, returning the resolved program and the
// Instantiator bound to it so tests can inspect its instantiation
// cache directly.
func resolveProgram(t *testing.T, src string) (*ast.Program, *generics.Instantiator) {
	t.Helper()
	p := parser.New("g.bi", src)
	prog := p.ParseProgram()
	if len(p.Errors) > 0 {
		t.Fatalf("parse errors: %v", p.Errors)
	}

	global := scope.New(nil, scope.KindGlobal)
	inst := generics.New()
	inst.Bind(global)

	typer := resolve.NewTyper(global)
	typer.Run(prog)

	super := resolve.NewResolverSuper(global, nil)
	super.Instantiator = inst
	super.Run(prog)

	header := resolve.NewResolverHeader(global, nil)
	header.Instantiator = inst
	header.Run(prog)

	source := resolve.NewResolverSource(global, nil)
	source.Instantiator = inst
	source.Run(prog)

	var errs []error
	for _, e := range append(append(append(typer.Errors, super.Errors...), header.Errors...), source.Errors...) {
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	return prog, inst
}

func TestInstantiateClass_SameArgumentsShareOneInstantiation(t *testing.T) {
	prog, _ := resolveProgram(t, `
		class Pair<T> { a: T; b: T; }
		function useA() -> Integer { auto p1 <- Pair<Integer>(1, 2); return p1.a; }
		function useB() -> Integer { auto p2 <- Pair<Integer>(3, 4); return p2.b; }
	`)
	pair := prog.Decls[0].(*ast.ClassDecl)
	if len(pair.Instantiations) != 1 {
		t.Fatalf("expected exactly 1 instantiation of Pair<Integer>, got %d", len(pair.Instantiations))
	}
}

func TestInstantiateClass_DifferentArgumentsGetSeparateInstantiations(t *testing.T) {
	prog, _ := resolveProgram(t, `
		class Box<T> { x: T; }
		function useInt() -> Integer { auto b1 <- Box<Integer>(1); return b1.x; }
		function useReal() -> Real { auto b2 <- Box<Real>(1.0); return b2.x; }
	`)
	box := prog.Decls[0].(*ast.ClassDecl)
	if len(box.Instantiations) != 2 {
		t.Fatalf("expected 2 distinct instantiations of Box, got %d", len(box.Instantiations))
	}
}

func TestInstantiateFunction_ExplicitCallGetsOneInstantiation(t *testing.T) {
	prog, _ := resolveProgram(t, `
		function identity<T>(x: T) -> T { return x; }
		function caller() -> Integer { return identity<Integer>(1); }
	`)
	identity := prog.Decls[0].(*ast.FunctionDecl)
	if len(identity.Instantiations) != 1 {
		t.Fatalf("expected exactly 1 instantiation of identity, got %d", len(identity.Instantiations))
	}
}
