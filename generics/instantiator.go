// Package generics implements instantiation of generic functions,
// fibers, operators, and classes: clone the generic declaration,
// substitute its type parameters with concrete arguments, and stage the
// clone through the four resolver passes so it comes out fully
// resolved, exactly like any other declaration.
//
// Instantiator reuses resolve.Walker's DeclState machinery
// (ast.Stateful) and the very same ResolverSuper/ResolverHeader/
// ResolverSource passes the main pipeline runs over the whole program,
// just pointed at a one-declaration synthetic ast.Program instead.
package generics

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/resolve"
	"github.com/fernvibe/fernc/scope"
	"github.com/fernvibe/fernc/types"
)

type cacheKey struct {
	decl uuid.UUID
	sig  string
}

// Instantiator implements resolve.Instantiator. It is nil-safe to
// construct (New) but must be Bind-ed to the program's global scope --
// done once by resolve.Processor.Process -- before any Instantiate*
// call can stage a clone.
type Instantiator struct {
	global *scope.Scope

	classes   map[cacheKey]*ast.ClassDecl
	functions map[cacheKey]*ast.FunctionDecl
	operators map[cacheKey]*ast.OperatorDecl
}

func New() *Instantiator {
	return &Instantiator{
		classes:   map[cacheKey]*ast.ClassDecl{},
		functions: map[cacheKey]*ast.FunctionDecl{},
		operators: map[cacheKey]*ast.OperatorDecl{},
	}
}

func (in *Instantiator) Bind(global *scope.Scope) { in.global = global }

// signature renders an argument tuple as a cache key. Every argument
// reaching an Instantiate* call is already a fully resolved types.Type,
// and String() is a faithful, position-sensitive rendering of one (no
// two distinct concrete types print identically), so a string key is
// sufficient for the "exactly one instantiation per (generic, argument
// tuple)" property (§4.4) without a pairwise Definitely comparison
// against every cached entry.
func signature(args []types.Type) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

func bindGenerics(generics []*ast.GenericParamDecl, args []types.Type) map[string]types.Type {
	out := make(map[string]types.Type, len(generics))
	for i, g := range generics {
		if i >= len(args) {
			break
		}
		out[g.Name] = args[i]
	}
	return out
}

func substitute(n ast.Node, bindings map[string]types.Type) ast.Node {
	return n.AcceptModifier(newSubstitutingModifier(bindings))
}

func bodyScopeOf(c *ast.ClassDecl) *scope.Scope {
	if c.BodyScope == nil {
		return nil
	}
	sc, _ := c.BodyScope.(*scope.Scope)
	return sc
}

// InstantiateClass clones decl, substitutes its generic parameters with
// args, and stages the clone through ResolverSuper/ResolverHeader/
// ResolverSource against the bound global scope. Returns nil if decl
// isn't generic or the Instantiator hasn't been Bind-ed yet.
func (in *Instantiator) InstantiateClass(decl *ast.ClassDecl, args []types.Type) *ast.ClassDecl {
	if in.global == nil || !decl.IsGeneric() {
		return nil
	}
	key := cacheKey{decl: decl.NodeUUID(), sig: signature(args)}
	if existing, ok := in.classes[key]; ok {
		return existing
	}

	clone := decl.AcceptCloner(&ast.StructuralCloner{}).(*ast.ClassDecl)
	bindings := bindGenerics(decl.Generics, args)
	clone = substitute(clone, bindings).(*ast.ClassDecl)
	clone.Generics = nil

	// Reserve the cache slot before staging: a member function's own
	// body can reference this class by name (direct recursion), and
	// staging re-enters ResolverSource, which must see the
	// in-progress instantiation rather than recurse forever.
	in.classes[key] = clone
	decl.Instantiations = append(decl.Instantiations, &ast.Instantiation{Args: typesToASTTypes(args, decl.Loc()), Decl: clone})

	in.stageClass(clone)
	return clone
}

// InstantiateFunction clones decl, substitutes its generic parameters
// with args, and stages the clone through ResolverSuper (signature
// only) and ResolverSource (body). ResolverHeader is deliberately
// skipped: it inserts a declaration into its enclosing overload set,
// and an instantiation must never become independently callable by
// name -- only the call site that triggered it (and the cached lookup
// above) ever sees it (§4.4: "instantiations are not inserted into any
// scope").
func (in *Instantiator) InstantiateFunction(decl *ast.FunctionDecl, args []types.Type) *ast.FunctionDecl {
	if in.global == nil || !decl.IsGeneric() {
		return nil
	}
	key := cacheKey{decl: decl.NodeUUID(), sig: signature(args)}
	if existing, ok := in.functions[key]; ok {
		return existing
	}

	clone := decl.AcceptCloner(&ast.StructuralCloner{}).(*ast.FunctionDecl)
	bindings := bindGenerics(decl.Generics, args)
	clone = substitute(clone, bindings).(*ast.FunctionDecl)
	clone.Generics = nil
	clone.Owner = decl.Owner

	in.functions[key] = clone
	decl.Instantiations = append(decl.Instantiations, &ast.Instantiation{Args: typesToASTTypes(args, decl.Loc()), Decl: clone})

	in.stageFunction(clone)
	return clone
}

// InstantiateOperator mirrors InstantiateFunction for generic operators
// (conversion/assignment operators can't carry their own generics, so
// in practice this fires only for member operators nested in a generic
// class's already-instantiated body).
func (in *Instantiator) InstantiateOperator(decl *ast.OperatorDecl, args []types.Type) *ast.OperatorDecl {
	if in.global == nil || len(decl.Generics) == 0 {
		return nil
	}
	key := cacheKey{decl: decl.NodeUUID(), sig: signature(args)}
	if existing, ok := in.operators[key]; ok {
		return existing
	}

	clone := decl.AcceptCloner(&ast.StructuralCloner{}).(*ast.OperatorDecl)
	bindings := bindGenerics(decl.Generics, args)
	clone = substitute(clone, bindings).(*ast.OperatorDecl)
	clone.Generics = nil
	clone.Owner = decl.Owner

	in.operators[key] = clone
	decl.Instantiations = append(decl.Instantiations, &ast.Instantiation{Args: typesToASTTypes(args, decl.Loc()), Decl: clone})

	in.stageOperator(clone)
	return clone
}

// stageClass runs a cloned, substituted class through all three
// remaining passes against the bound global scope: nothing in
// SPEC_FULL.md's surface language lets anything look up an
// instantiation by name, so ResolverHeader's scope insertions land in
// the clone's own fresh BodyScope (built by ResolverSuper.resolveClass)
// rather than polluting the shared global scope.
func (in *Instantiator) stageClass(clone *ast.ClassDecl) {
	prog := ast.NewProgram("<instantiation>")
	prog.Decls = []ast.Statement{clone}

	// Each pass gets its own Walker, exactly like Processor.Process:
	// every NewResolverXxx constructor pushes global once and nothing
	// ever pops it, so sharing one Walker across passes here would
	// leave global on the scope stack multiple times over.
	super := resolve.NewResolverSuper(in.global, nil)
	super.Instantiator = in
	super.Run(prog)

	header := resolve.NewResolverHeader(in.global, nil)
	header.Instantiator = in
	header.Run(prog)

	source := resolve.NewResolverSource(in.global, nil)
	source.Instantiator = in
	source.Run(prog)
}

// stageFunction resolves a free or member function's signature and
// body without inserting it into any scope. Member-function
// instantiations resolve against their owner's body scope (so sibling
// members stay visible), which is what the owner's BodyScope's Outer
// chain already reaches the true global scope through.
func (in *Instantiator) stageFunction(clone *ast.FunctionDecl) {
	scopeIn := in.global
	if clone.Owner != nil {
		if bs := bodyScopeOf(clone.Owner); bs != nil {
			scopeIn = bs
		}
	}
	prog := ast.NewProgram("<instantiation>")
	prog.Decls = []ast.Statement{clone}

	super := resolve.NewResolverSuper(scopeIn, nil)
	super.Instantiator = in
	super.Run(prog)

	clone.Advance(ast.ResolvedHeader)

	source := resolve.NewResolverSource(scopeIn, nil)
	source.Instantiator = in
	source.Run(prog)
}

func (in *Instantiator) stageOperator(clone *ast.OperatorDecl) {
	scopeIn := in.global
	if clone.Owner != nil {
		if bs := bodyScopeOf(clone.Owner); bs != nil {
			scopeIn = bs
		}
	}
	prog := ast.NewProgram("<instantiation>")
	prog.Decls = []ast.Statement{clone}

	super := resolve.NewResolverSuper(scopeIn, nil)
	super.Instantiator = in
	super.Run(prog)

	clone.Advance(ast.ResolvedHeader)

	source := resolve.NewResolverSource(scopeIn, nil)
	source.Instantiator = in
	source.Run(prog)
}
