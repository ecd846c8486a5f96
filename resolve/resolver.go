// Package resolve implements the four-pass semantic analysis pipeline:
// Typer, ResolverSuper, ResolverHeader, ResolverSource. Each pass embeds
// one Walker struct that threads a scope stack, a return-type-expected
// stack, a yield-type-expected stack, and an enclosing-class stack
// through the traversal. Typer, ResolverSuper and ResolverHeader
// dispatch on declarations with type switches; ResolverSource
// implements ast.Modifier over every node kind. The three resolver
// passes record their progress in ast.DeclState (ResolverSuper per
// class; ResolverHeader and ResolverSource per class, function and
// operator) and skip declarations already past their stage, so a
// module's headers and bodies can be staged independently across
// passes.
package resolve

import (
	"fmt"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/scope"
	"github.com/fernvibe/fernc/types"
)

// yieldFrame lets a lambda nested inside a fiber push a "no fiber"
// sentinel, resolving the Open Question in DESIGN.md: yield inside a
// nested lambda targets nothing and is rejected (§9 open question 1).
type yieldFrame struct {
	typ       types.Type
	isLambda  bool // true = opaque boundary, yield here is always an error
}

// Walker carries cross-pass state common to all four resolver passes.
// Each pass embeds *Walker; see the package comment for how each one
// traverses the tree.
type Walker struct {
	Errors []*diagnostics.DiagnosticError

	scopes      []*scope.Scope
	returnTypes []types.Type // nil entry = no enclosing function
	yieldFrames []yieldFrame
	classes     []*ast.ClassDecl
	tmpCounter  int

	// Instantiator is consulted by ResolverSource when a call resolves
	// to a generic declaration (§4.4); nil-safe (no-op) if unset, so
	// tests of the four passes alone need not construct one.
	Instantiator Instantiator
}

// Instantiator is the minimal view of generics.Instantiator that
// resolve needs, kept as an interface so resolve never imports
// generics (generics imports resolve, to stage instantiated clones
// through the four passes -- importing back would cycle).
type Instantiator interface {
	InstantiateFunction(decl *ast.FunctionDecl, args []types.Type) *ast.FunctionDecl
	InstantiateOperator(decl *ast.OperatorDecl, args []types.Type) *ast.OperatorDecl
	InstantiateClass(decl *ast.ClassDecl, args []types.Type) *ast.ClassDecl

	// Bind gives the Instantiator the program's global scope, so that a
	// freshly-cloned-and-substituted declaration can be staged through
	// ResolverSuper/ResolverHeader/ResolverSource on its own (§4.4 step
	// 3). Processor.Process calls this once, before running the four
	// passes.
	Bind(global *scope.Scope)
}

func NewWalker() *Walker {
	return &Walker{}
}

func (w *Walker) pushScope(s *scope.Scope)  { w.scopes = append(w.scopes, s) }
func (w *Walker) popScope()                 { w.scopes = w.scopes[:len(w.scopes)-1] }
func (w *Walker) currentScope() *scope.Scope {
	if len(w.scopes) == 0 {
		return nil
	}
	return w.scopes[len(w.scopes)-1]
}

func (w *Walker) pushReturnType(t types.Type) { w.returnTypes = append(w.returnTypes, t) }
func (w *Walker) popReturnType()              { w.returnTypes = w.returnTypes[:len(w.returnTypes)-1] }
func (w *Walker) currentReturnType() (types.Type, bool) {
	if len(w.returnTypes) == 0 {
		return nil, false
	}
	t := w.returnTypes[len(w.returnTypes)-1]
	return t, t != nil
}

func (w *Walker) pushYield(t types.Type)   { w.yieldFrames = append(w.yieldFrames, yieldFrame{typ: t}) }
func (w *Walker) pushLambdaYieldBoundary() { w.yieldFrames = append(w.yieldFrames, yieldFrame{isLambda: true}) }
func (w *Walker) popYield()                { w.yieldFrames = w.yieldFrames[:len(w.yieldFrames)-1] }
func (w *Walker) currentYieldType() (types.Type, bool) {
	if len(w.yieldFrames) == 0 {
		return nil, false
	}
	f := w.yieldFrames[len(w.yieldFrames)-1]
	if f.isLambda {
		return nil, false
	}
	return f.typ, true
}

// freshName mints a collision-free local-variable name for a synthesized
// statement (e.g. the fiber-call-in-statement-position desugaring, §4.3).
func (w *Walker) freshName(prefix string) string {
	w.tmpCounter++
	return fmt.Sprintf("__%s%d", prefix, w.tmpCounter)
}

func (w *Walker) pushClass(c *ast.ClassDecl) { w.classes = append(w.classes, c) }
func (w *Walker) popClass()                  { w.classes = w.classes[:len(w.classes)-1] }
func (w *Walker) currentClass() *ast.ClassDecl {
	if len(w.classes) == 0 {
		return nil
	}
	return w.classes[len(w.classes)-1]
}

// errorf builds a diagnostic, appends it to w.Errors, and returns it so
// callers can chain WithCandidates/WithNote before the call returns
// (the append already captured the pointer, so later mutation through
// the returned value is still visible).
func (w *Walker) errorf(code diagnostics.ErrorCode, loc fernsrc.Location, format string, args ...interface{}) *diagnostics.DiagnosticError {
	e := diagnostics.New(code, loc, format, args...)
	w.Errors = append(w.Errors, e)
	return e
}

// bodyScope type-asserts ClassDecl.BodyScope/InitScope back from the
// interface{} slot ast uses to avoid an ast<->scope import cycle.
func bodyScope(c *ast.ClassDecl) *scope.Scope {
	if c.BodyScope == nil {
		return nil
	}
	return c.BodyScope.(*scope.Scope)
}
func initScope(c *ast.ClassDecl) *scope.Scope {
	if c.InitScope == nil {
		return nil
	}
	return c.InitScope.(*scope.Scope)
}
