package resolve

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/scope"
	"github.com/fernvibe/fernc/types"
)

// ResolverHeader is pass 3: resolves member function/fiber/operator
// signatures (free-declaration signatures were already resolved by
// ResolverSuper), inserts every function/fiber/operator into the
// appropriate overloaded-dictionary (duplicate detection via exact
// parameter-type-tuple equality), builds each class's canonical
// constructor parameter list, and resolves member-variable initializers
// in the class's initializer sub-scope. Populates the symbol table's
// callable entries before any body is type-checked.
type ResolverHeader struct {
	*Walker
	cmp comparator
}

func NewResolverHeader(global *scope.Scope, w *Walker) *ResolverHeader {
	if w == nil {
		w = NewWalker()
	}
	w.pushScope(global)
	return &ResolverHeader{Walker: w}
}

func (r *ResolverHeader) Run(prog *ast.Program) {
	for _, d := range prog.Decls {
		r.resolveTop(d)
	}
}

func (r *ResolverHeader) resolveTop(s ast.Statement) {
	sc := r.currentScope()
	switch n := s.(type) {
	case *ast.FunctionDecl:
		r.insertFunction(sc, n)
	case *ast.OperatorDecl:
		r.insertOperator(sc, n)
	case *ast.ClassDecl:
		r.resolveClassHeader(n)
	case *ast.StmtList:
		for _, item := range n.Slice() {
			r.resolveTop(item)
		}
	}
}

func (r *ResolverHeader) insertFunction(sc *scope.Scope, n *ast.FunctionDecl) {
	if n.AtLeast(ast.ResolvedHeader) {
		return
	}
	set := sc.DefineFunction(n.Name, n, r.cmp)
	if dup := exactDuplicate(set, n); dup != nil {
		r.errorf(diagnostics.PreviousDeclaration, n.Loc(), "redeclaration of %q with identical parameter types", n.Name).
			WithCandidates(dup.Loc())
	}
	n.Advance(ast.ResolvedHeader)
}

func (r *ResolverHeader) insertOperator(sc *scope.Scope, n *ast.OperatorDecl) {
	if n.AtLeast(ast.ResolvedHeader) {
		return
	}
	key := n.Symbol
	if key == "" {
		key = "->"
	}
	set := sc.DefineOperator(key, n, r.cmp)
	if dup := exactDuplicate(set, n); dup != nil {
		r.errorf(diagnostics.PreviousDeclaration, n.Loc(), "redeclaration of operator %q with identical parameter types", key).
			WithCandidates(dup.Loc())
	}
	n.Advance(ast.ResolvedHeader)
}

func exactDuplicate(set *scope.Overloaded, self ast.Decl) ast.Decl {
	for _, other := range set.All() {
		if other == self {
			continue
		}
		if sameParams(other, self) {
			return other
		}
	}
	return nil
}

func (r *ResolverHeader) resolveClassHeader(c *ast.ClassDecl) {
	if c.AtLeast(ast.ResolvedHeader) {
		return
	}
	body := bodyScope(c)
	r.pushScope(body)
	r.pushClass(c)
	for _, stmt := range c.Body {
		switch m := stmt.(type) {
		case *ast.FunctionDecl:
			m.Owner = c
			r.resolveMemberSignature(body, m.Generics, m.Params, m.ReturnType, m.IsFiber, func(ret types.Type) { m.ResolvedReturn = ret })
			r.insertFunction(body, m)
		case *ast.OperatorDecl:
			m.Owner = c
			r.resolveMemberSignature(body, m.Generics, m.Params, m.ReturnType, false, func(ret types.Type) { m.ResolvedReturn = ret })
			r.insertOperator(body, m)
		}
	}
	r.popClass()
	r.popScope()

	for _, stmt := range c.Body {
		if mv, ok := stmt.(*ast.MemberVariableDecl); ok && mv.Init == nil {
			c.CtorParams = append(c.CtorParams, mv)
		}
	}

	r.resolveMemberInitializers(c)
	c.Advance(ast.ResolvedHeader)
}

func (r *ResolverHeader) resolveMemberSignature(classScope *scope.Scope, generics []*ast.GenericParamDecl, params []*ast.ParameterDecl, ret ast.Type, isFiber bool, setReturn func(types.Type)) {
	sc := classScope
	if len(generics) > 0 {
		sc = scope.New(classScope, scope.KindFunction)
		for _, g := range generics {
			sc.DefineType(g)
		}
	}
	for _, p := range params {
		p.SetResolvedType(r.resolveTypeExpr(sc, p.TypeAnn))
	}
	if isFiber {
		if fr, ok := ret.(*ast.FiberTypeRef); ok {
			setReturn(types.FiberType{Yield: r.resolveTypeExpr(sc, fr.Yield)})
			return
		}
	}
	setReturn(r.resolveTypeExpr(sc, ret))
}

// resolveMemberInitializers walks c's member variables in declaration
// order, resolving each Init expression in the initializer sub-scope
// before adding that member to the sub-scope -- so a later initializer
// can reference an earlier sibling member but never a later one (§4.3
// Pass 3: "forbids references to other not-yet-declared members").
func (r *ResolverHeader) resolveMemberInitializers(c *ast.ClassDecl) {
	init := initScope(c)
	rs := &ResolverSource{Walker: r.Walker}
	r.pushScope(init)
	r.pushClass(c)
	for _, stmt := range c.Body {
		mv, ok := stmt.(*ast.MemberVariableDecl)
		if !ok {
			continue
		}
		if mv.Init != nil {
			mv.Init = rs.resolveExpr(mv.Init)
			if !types.Definitely(mv.Init.ResolvedType(), mv.VarType) && !classAssignable(mv.VarType, mv.Init.ResolvedType()) {
				r.errorf(diagnostics.InitialValue, mv.Loc(), "initializer type %s does not match declared type %s", mv.Init.ResolvedType(), mv.VarType)
			}
		}
		init.DefineVariable(mv)
	}
	r.popClass()
	r.popScope()
}

func classAssignable(declared, from types.Type) bool {
	if ct, ok := declared.(types.ClassType); ok {
		if cd, ok := ct.Decl.(classAdapter); ok {
			for _, a := range cd.d.Assignable {
				if types.Definitely(from, a) {
					return true
				}
			}
		}
	}
	// A conversion operator declared on the source class (`operator -> U
	// { ... }`) makes it assignable/castable to U even without a
	// matching `assign` overload on the destination.
	if ft, ok := from.(types.ClassType); ok {
		if cd, ok := ft.Decl.(classAdapter); ok {
			for _, c := range cd.d.Conversions {
				if types.Definitely(c, declared) {
					return true
				}
			}
		}
	}
	return false
}
