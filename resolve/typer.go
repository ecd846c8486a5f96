package resolve

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/scope"
)

// Typer is pass 1: registers every named type declaration (class,
// basic) in the root scope, without resolving base types, parameters,
// or bodies. Raises PreviousDeclaration on a name collision. Walks a
// module's top-level declarations before any cross-reference resolution
// begins.
type Typer struct {
	*Walker
}

func NewTyper(global *scope.Scope) *Typer {
	w := NewWalker()
	w.pushScope(global)
	return &Typer{Walker: w}
}

// Run registers every top-level class/basic-type declaration in prog
// into the walker's current (global) scope.
func (t *Typer) Run(prog *ast.Program) {
	for _, d := range prog.Decls {
		t.declareTop(d)
	}
}

func (t *Typer) declareTop(s ast.Statement) {
	sc := t.currentScope()
	switch n := s.(type) {
	case *ast.ClassDecl:
		t.define(sc, n)
	case *ast.BasicTypeDecl:
		t.define(sc, n)
	case *ast.ProgramDecl:
		t.defineProgram(sc, n)
	case *ast.StmtList:
		for _, item := range n.Slice() {
			t.declareTop(item)
		}
	}
}

func (t *Typer) define(sc *scope.Scope, d ast.Decl) {
	if existing, ok := sc.Types[d.DeclName()]; ok {
		t.errorf(diagnostics.PreviousDeclaration, d.Loc(),
			"redeclaration of type %q", d.DeclName()).
			WithCandidates(existing.Loc())
		return
	}
	sc.DefineType(d)
}

func (t *Typer) defineProgram(sc *scope.Scope, d ast.Decl) {
	if existing, ok := sc.Programs[d.DeclName()]; ok {
		t.errorf(diagnostics.PreviousDeclaration, d.Loc(),
			"redeclaration of program %q", d.DeclName()).
			WithCandidates(existing.Loc())
		return
	}
	sc.DefineProgram(d)
}
