package resolve

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/scope"
	"github.com/fernvibe/fernc/types"
)

// ResolverSuper is pass 2: resolves each class's base-type reference,
// records the transitive super-edge, imports the base's scope, walks
// the class body (skipping function bodies) to register
// conversion/assignment operators, resolves generic parameters, and
// resolves member-variable types (not initializers). For free
// functions/fibers/operators it resolves parameter and return types.
// Runs as a dedicated pass before header resolution, so that a class's
// bases are fully known before any signature referencing it is
// type-checked.
type ResolverSuper struct {
	*Walker
}

func NewResolverSuper(global *scope.Scope, w *Walker) *ResolverSuper {
	if w == nil {
		w = NewWalker()
	}
	w.pushScope(global)
	return &ResolverSuper{Walker: w}
}

func (r *ResolverSuper) Run(prog *ast.Program) {
	for _, d := range prog.Decls {
		r.resolveTop(d)
	}
}

func (r *ResolverSuper) resolveTop(s ast.Statement) {
	switch n := s.(type) {
	case *ast.ClassDecl:
		r.resolveClass(n)
	case *ast.FunctionDecl:
		r.resolveSignature(n.Generics, n.Params, n.ReturnType, n.IsFiber, func(ret types.Type) { n.ResolvedReturn = ret })
	case *ast.OperatorDecl:
		r.resolveSignature(n.Generics, n.Params, n.ReturnType, false, func(ret types.Type) { n.ResolvedReturn = ret })
	case *ast.GlobalVariableDecl:
		n.VarType = r.resolveTypeExpr(r.currentScope(), n.TypeAnn)
	case *ast.StmtList:
		for _, item := range n.Slice() {
			r.resolveTop(item)
		}
	}
}

// resolveClass implements the steps of §4.3 Pass 2 in order: generics
// first (the base type may reference them), then the base-type edge
// (conservative Open Question choice, DESIGN.md), then the body walk
// for conversions/assignments, then member-variable types.
func (r *ResolverSuper) resolveClass(c *ast.ClassDecl) {
	if c.AtLeast(ast.ResolvedSuper) {
		return
	}
	global := r.currentScope()
	body := scope.New(global, scope.KindClassBody)
	init := scope.New(body, scope.KindClassInit)
	c.BodyScope = body
	c.InitScope = init

	for _, g := range c.Generics {
		body.DefineType(g)
		if g.Bound != nil {
			g.SetResolvedType(r.resolveTypeExpr(body, g.Bound))
		}
	}

	if c.BaseType != nil {
		switch bt := c.BaseType.(type) {
		case *ast.ClassTypeRef:
			baseDeclRaw, ok := global.LookupType(bt.Name)
			if !ok {
				r.errorf(diagnostics.Base, bt.Loc(), "unresolved base type %q", bt.Name)
			} else if baseDecl, ok := baseDeclRaw.(*ast.ClassDecl); ok {
				bt.Target = baseDecl
				r.resolveClass(baseDecl) // bases must be fully resolved first
				c.Supers = append([]*ast.ClassDecl{baseDecl}, baseDecl.Supers...)
				body.AddBase(bodyScope(baseDecl))
				init.AddBase(initScope(baseDecl))
			} else {
				r.errorf(diagnostics.Base, bt.Loc(), "base type %q is not a class", bt.Name)
			}
		default:
			r.errorf(diagnostics.Base, c.BaseType.Loc(), "base type must be a class type")
		}
	}

	for _, stmt := range c.Body {
		r.registerConversionsAndAssignments(c, stmt)
	}

	for _, stmt := range c.Body {
		if mv, ok := stmt.(*ast.MemberVariableDecl); ok {
			mv.VarType = r.resolveTypeExpr(body, mv.TypeAnn)
		}
	}

	c.Advance(ast.ResolvedSuper)
}

// registerConversionsAndAssignments skips every node except conversion/
// assignment operators -- §4.3 Pass 2 step 3 explicitly "walks C's body
// (but skip function bodies)": ordinary function/fiber/member-variable
// bodies and initializers are left untouched here.
func (r *ResolverSuper) registerConversionsAndAssignments(c *ast.ClassDecl, stmt ast.Statement) {
	op, ok := stmt.(*ast.OperatorDecl)
	if !ok {
		return
	}
	op.Owner = c
	body := bodyScope(c)
	switch op.Kind {
	case ast.OpConversion:
		target := r.resolveTypeExpr(body, op.ReturnType)
		op.ResolvedReturn = target
		c.Conversions = append(c.Conversions, target)
	case ast.OpAssignment:
		if len(op.Params) > 0 {
			src := r.resolveTypeExpr(body, op.Params[0].TypeAnn)
			op.Params[0].SetResolvedType(src)
			c.Assignable = append(c.Assignable, src)
		}
	}
}

// resolveSignature resolves a parameter list plus return type in a
// scope extended with the declaration's own generic parameters (if
// any), sharing the logic between free functions, fibers, and
// operators (all three carry Generics/Params/ReturnType).
func (r *ResolverSuper) resolveSignature(generics []*ast.GenericParamDecl, params []*ast.ParameterDecl, ret ast.Type, isFiber bool, setReturn func(types.Type)) {
	sc := r.currentScope()
	if len(generics) > 0 {
		sc = scope.New(sc, scope.KindFunction)
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
