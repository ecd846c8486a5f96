package resolve

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/scope"
	"github.com/fernvibe/fernc/types"
)

// ResolverSource is pass 4: the full body resolver. It implements
// ast.Modifier over every node kind, resolving identifiers, member
// access, call targets (constructor, overloaded function/fiber/operator,
// or a plain function-typed value), desugaring the `<~`/`~`/`~>`
// assignment-sugar statements, and checking return/yield types against
// the enclosing function/fiber. The final phase, walking every
// statement and expression now that every name is known.
type ResolverSource struct {
	*Walker
}

func NewResolverSource(global *scope.Scope, w *Walker) *ResolverSource {
	if w == nil {
		w = NewWalker()
	}
	w.pushScope(global)
	return &ResolverSource{Walker: w}
}

func (r *ResolverSource) Run(prog *ast.Program) {
	prog.AcceptModifier(r)
}

func (r *ResolverSource) resolveExpr(e ast.Expression) ast.Expression {
	if e == nil {
		return nil
	}
	return e.AcceptModifier(r).(ast.Expression)
}

// --- top-level / declarations ---

func (r *ResolverSource) ModifyProgram(n *ast.Program) ast.Node {
	for i, d := range n.Decls {
		n.Decls[i] = d.AcceptModifier(r).(ast.Statement)
	}
	return n
}

func (r *ResolverSource) ModifyStmtList(n *ast.StmtList) ast.Node {
	if n.Head != nil {
		n.Head = n.Head.AcceptModifier(r).(ast.Statement)
	}
	if n.Tail != nil {
		n.Tail = n.Tail.AcceptModifier(r).(*ast.StmtList)
	}
	return n
}

func (r *ResolverSource) ModifyGlobalVariableDecl(n *ast.GlobalVariableDecl) ast.Node {
	if n.Init != nil {
		n.Init = r.resolveExpr(n.Init)
		if !types.Definitely(n.Init.ResolvedType(), n.VarType) {
			r.errorf(diagnostics.InitialValue, n.Loc(), "initializer type %s does not match declared type %s", n.Init.ResolvedType(), n.VarType)
		}
	}
	return n
}

func (r *ResolverSource) ModifyMemberVariableDecl(n *ast.MemberVariableDecl) ast.Node { return n }

func (r *ResolverSource) ModifyBasicTypeDecl(n *ast.BasicTypeDecl) ast.Node { return n }

func (r *ResolverSource) ModifyFunctionDecl(n *ast.FunctionDecl) ast.Node {
	if n.AtLeast(ast.ResolvedSource) {
		return n
	}
	sc := scope.New(r.currentScope(), scope.KindFunction)
	for _, g := range n.Generics {
		sc.DefineType(g)
	}
	for _, p := range n.Params {
		sc.DefineVariable(p)
	}
	r.pushScope(sc)
	if n.Owner != nil {
		r.pushClass(n.Owner)
	}
	if n.IsFiber {
		ft, _ := n.ResolvedReturn.(types.FiberType)
		r.pushYield(ft.Yield)
	} else {
		r.pushReturnType(n.ResolvedReturn)
	}
	if n.Body != nil {
		n.Body = n.Body.AcceptModifier(r).(ast.Statement)
	}
	if n.IsFiber {
		r.popYield()
	} else {
		r.popReturnType()
	}
	if n.Owner != nil {
		r.popClass()
	}
	r.popScope()
	n.Advance(ast.ResolvedSource)
	return n
}

func (r *ResolverSource) ModifyOperatorDecl(n *ast.OperatorDecl) ast.Node {
	if n.AtLeast(ast.ResolvedSource) {
		return n
	}
	sc := scope.New(r.currentScope(), scope.KindFunction)
	for _, g := range n.Generics {
		sc.DefineType(g)
	}
	for _, p := range n.Params {
		sc.DefineVariable(p)
	}
	r.pushScope(sc)
	if n.Owner != nil {
		r.pushClass(n.Owner)
	}
	r.pushReturnType(n.ResolvedReturn)
	if n.Body != nil {
		n.Body = n.Body.AcceptModifier(r).(ast.Statement)
	}
	r.popReturnType()
	if n.Owner != nil {
		r.popClass()
	}
	r.popScope()
	n.Advance(ast.ResolvedSource)
	return n
}

func (r *ResolverSource) ModifyClassDecl(n *ast.ClassDecl) ast.Node {
	if n.AtLeast(ast.ResolvedSource) {
		return n
	}
	body := bodyScope(n)
	r.pushScope(body)
	for _, stmt := range n.Body {
		switch m := stmt.(type) {
		case *ast.FunctionDecl:
			m.AcceptModifier(r)
		case *ast.OperatorDecl:
			m.AcceptModifier(r)
		}
	}
	r.popScope()
	n.Advance(ast.ResolvedSource)
	return n
}

func (r *ResolverSource) ModifyProgramDecl(n *ast.ProgramDecl) ast.Node {
	sc := scope.New(r.currentScope(), scope.KindFunction)
	for _, p := range n.Params {
		p.SetResolvedType(r.resolveTypeExpr(sc, p.TypeAnn))
		sc.DefineVariable(p)
	}
	r.pushScope(sc)
	r.pushReturnType(types.EmptyType{})
	if n.Body != nil {
		n.Body = n.Body.AcceptModifier(r).(ast.Statement)
	}
	r.popReturnType()
	r.popScope()
	return n
}

func (r *ResolverSource) ModifyParameterDecl(n *ast.ParameterDecl) ast.Node {
	if n.Default != nil {
		n.Default = r.resolveExpr(n.Default)
	}
	return n
}

func (r *ResolverSource) ModifyGenericParamDecl(n *ast.GenericParamDecl) ast.Node { return n }

func (r *ResolverSource) ModifyLocalVariableDecl(n *ast.LocalVariableDecl) ast.Node {
	sc := r.currentScope()
	if n.Init != nil {
		n.Init = r.resolveExpr(n.Init)
	}
	if n.Auto {
		if n.Init != nil {
			n.SetResolvedType(n.Init.ResolvedType())
		} else {
			r.errorf(diagnostics.InitialValue, n.Loc(), "auto-typed variable %q needs an initializer", n.Name)
			n.SetResolvedType(types.UnknownType{})
		}
	} else {
		declared := r.resolveTypeExpr(sc, n.TypeAnn)
		if n.Init != nil && !types.Definitely(n.Init.ResolvedType(), declared) && !classAssignable(declared, n.Init.ResolvedType()) {
			r.errorf(diagnostics.InitialValue, n.Loc(), "initializer type %s does not match declared type %s", n.Init.ResolvedType(), declared)
		}
		n.SetResolvedType(declared)
	}
	if !sc.DefineVariable(n) {
		r.errorf(diagnostics.PreviousDeclaration, n.Loc(), "redeclaration of %q", n.Name)
	}
	return n
}

func (r *ResolverSource) ModifyImportStmt(n *ast.ImportStmt) ast.Node   { return n }
func (r *ResolverSource) ModifyPackageDecl(n *ast.PackageDecl) ast.Node { return n }
func (r *ResolverSource) ModifyRawCodeStmt(n *ast.RawCodeStmt) ast.Node { return n }

func (r *ResolverSource) ModifyInstantiatedStmt(n *ast.InstantiatedStmt) ast.Node {
	sc := r.currentScope()
	args := r.resolveTypeList(sc, n.TypeArgs)
	if r.Instantiator == nil {
		return n
	}
	if d, ok := sc.LookupType(n.Name); ok {
		if c, ok := d.(*ast.ClassDecl); ok {
			r.Instantiator.InstantiateClass(c, args)
			return n
		}
	}
	if set, ok := sc.LookupFunction(n.Name); ok {
		for _, d := range set.All() {
			switch fd := d.(type) {
			case *ast.FunctionDecl:
				if fd.IsGeneric() {
					r.Instantiator.InstantiateFunction(fd, args)
				}
			case *ast.OperatorDecl:
				if len(fd.Generics) > 0 {
					r.Instantiator.InstantiateOperator(fd, args)
				}
			}
		}
		return n
	}
	r.errorf(diagnostics.UnresolvedReference, n.Loc(), "unresolved instantiation target %q", n.Name)
	return n
}

// --- statements ---

func (r *ResolverSource) ModifyExpressionStmt(n *ast.ExpressionStmt) ast.Node {
	if n.Expr != nil {
		n.Expr = r.resolveExpr(n.Expr)
	}
	if _, inFiber := r.currentYieldType(); inFiber {
		if ft, ok := n.Expr.ResolvedType().(types.FiberType); ok {
			return r.desugarFiberCallStmt(n, ft)
		}
	}
	return n
}

// desugarFiberCallStmt rewrites a fiber call discarded in statement
// position inside another fiber's body into a drain loop that re-yields
// every value the callee produces (§4.3 fiber-call-in-statement-position).
//
//	auto __fiberN = <expr>
//	while __fiberN.query() { yield __fiberN.value }
func (r *ResolverSource) desugarFiberCallStmt(n *ast.ExpressionStmt, ft types.FiberType) ast.Node {
	name := r.freshName("fiber")
	decl := ast.NewLocalVariableDecl(n.Loc(), name, ast.NewUnknownType(n.Loc()), true, n.Expr)
	decl.SetResolvedType(ft)
	r.currentScope().DefineVariable(decl)

	ident := ast.NewIdentifier(n.Loc(), name)
	ident.Target = decl
	ident.Kind = ast.IdentLocalVariable
	ident.SetResolvedType(ft)

	query := ast.NewMemberExpr(n.Loc(), ident, "query")
	query.SetResolvedType(types.FunctionType{Returns: types.BasicType{Kind: types.Boolean}})
	cond := ast.NewCallExpr(n.Loc(), query, nil, nil)
	cond.SetResolvedType(types.BasicType{Kind: types.Boolean})

	value := ast.NewMemberExpr(n.Loc(), ident, "value")
	value.SetResolvedType(ft.Yield)
	if outer, _ := r.currentYieldType(); !types.Definitely(ft.Yield, outer) {
		r.errorf(diagnostics.YieldType, n.Loc(), "cannot re-yield %s as %s", ft.Yield, outer)
	}
	body := ast.NewYieldStmt(n.Loc(), value)

	loop := ast.NewWhileStmt(n.Loc(), cond, body)
	return ast.NewBracesStmt(n.Loc(), []ast.Statement{
		ast.NewExpressionStmt(n.Loc(), decl),
		loop,
	})
}

func (r *ResolverSource) checkBoolean(e ast.Expression, loc fernsrc.Location) {
	if bt, ok := e.ResolvedType().(types.BasicType); !ok || bt.Kind != types.Boolean {
		if _, unknown := e.ResolvedType().(types.UnknownType); !unknown {
			r.errorf(diagnostics.Condition, loc, "condition must be Boolean, got %s", e.ResolvedType())
		}
	}
}

func (r *ResolverSource) ModifyIfStmt(n *ast.IfStmt) ast.Node {
	n.Cond = r.resolveExpr(n.Cond)
	r.checkBoolean(n.Cond, n.Loc())
	if n.Then != nil {
		n.Then = n.Then.AcceptModifier(r).(ast.Statement)
	}
	if n.Else != nil {
		n.Else = n.Else.AcceptModifier(r).(ast.Statement)
	}
	return n
}

func (r *ResolverSource) ModifyWhileStmt(n *ast.WhileStmt) ast.Node {
	n.Cond = r.resolveExpr(n.Cond)
	r.checkBoolean(n.Cond, n.Loc())
	if n.Body != nil {
		n.Body = n.Body.AcceptModifier(r).(ast.Statement)
	}
	return n
}

func (r *ResolverSource) ModifyDoWhileStmt(n *ast.DoWhileStmt) ast.Node {
	if n.Body != nil {
		n.Body = n.Body.AcceptModifier(r).(ast.Statement)
	}
	n.Cond = r.resolveExpr(n.Cond)
	r.checkBoolean(n.Cond, n.Loc())
	return n
}

func (r *ResolverSource) forElementType(t types.Type, loc fernsrc.Location) types.Type {
	switch it := t.(type) {
	case types.ArrayType:
		if it.Ndims > 1 {
			return types.ArrayType{Element: it.Element, Ndims: it.Ndims - 1}
		}
		return it.Element
	case types.SequenceType:
		return it.Element
	case types.UnknownType:
		return types.UnknownType{}
	default:
		r.errorf(diagnostics.Sequence, loc, "cannot iterate over %s", t)
		return types.UnknownType{}
	}
}

func (r *ResolverSource) ModifyForStmt(n *ast.ForStmt) ast.Node {
	n.Iterable = r.resolveExpr(n.Iterable)
	elemType := r.forElementType(n.Iterable.ResolvedType(), n.Loc())
	sc := scope.New(r.currentScope(), scope.KindBlock)
	loopVar := ast.NewLocalVariableDecl(n.Loc(), n.VarName, ast.NewUnknownType(n.Loc()), true, nil)
	loopVar.SetResolvedType(elemType)
	sc.DefineVariable(loopVar)
	r.pushScope(sc)
	if n.Body != nil {
		n.Body = n.Body.AcceptModifier(r).(ast.Statement)
	}
	r.popScope()
	return n
}

func (r *ResolverSource) ModifyReturnStmt(n *ast.ReturnStmt) ast.Node {
	if _, inFiber := r.currentYieldType(); inFiber {
		if n.Value != nil {
			n.Value = r.resolveExpr(n.Value)
			r.errorf(diagnostics.Return, n.Loc(), "return inside a fiber cannot carry a value; use yield")
		}
		return n
	}
	want, ok := r.currentReturnType()
	if !ok {
		r.errorf(diagnostics.Return, n.Loc(), "return outside a function body")
		return n
	}
	if n.Value == nil {
		if _, empty := want.(types.EmptyType); !empty {
			r.errorf(diagnostics.ReturnType, n.Loc(), "missing return value, expected %s", want)
		}
		return n
	}
	n.Value = r.resolveExpr(n.Value)
	if _, empty := want.(types.EmptyType); empty {
		r.errorf(diagnostics.ReturnType, n.Loc(), "function has no return value, got %s", n.Value.ResolvedType())
		return n
	}
	if !types.Definitely(n.Value.ResolvedType(), want) && !classAssignable(want, n.Value.ResolvedType()) {
		r.errorf(diagnostics.ReturnType, n.Loc(), "cannot return %s as %s", n.Value.ResolvedType(), want)
	}
	return n
}

func (r *ResolverSource) ModifyYieldStmt(n *ast.YieldStmt) ast.Node {
	yt, ok := r.currentYieldType()
	if !ok {
		r.errorf(diagnostics.Yield, n.Loc(), "yield outside a fiber body")
		return n
	}
	n.Value = r.resolveExpr(n.Value)
	if !types.Definitely(n.Value.ResolvedType(), yt) {
		r.errorf(diagnostics.YieldType, n.Loc(), "cannot yield %s as %s", n.Value.ResolvedType(), yt)
	}
	return n
}

func (r *ResolverSource) ModifyAssertStmt(n *ast.AssertStmt) ast.Node {
	n.Cond = r.resolveExpr(n.Cond)
	r.checkBoolean(n.Cond, n.Loc())
	return n
}

func (r *ResolverSource) ModifyAssumeStmt(n *ast.AssumeStmt) ast.Node {
	n.Target = r.resolveExpr(n.Target)
	n.Value = r.resolveExpr(n.Value)
	return n
}

func (r *ResolverSource) ModifyBracesStmt(n *ast.BracesStmt) ast.Node {
	sc := scope.New(r.currentScope(), scope.KindBlock)
	r.pushScope(sc)
	for i, stmt := range n.Statements {
		n.Statements[i] = stmt.AcceptModifier(r).(ast.Statement)
	}
	r.popScope()
	return n
}

func (r *ResolverSource) checkAssignableTarget(e ast.Expression, loc fernsrc.Location) {
	switch e.(type) {
	case *ast.Identifier, *ast.MemberExpr, *ast.IndexExpr, *ast.SliceExpr, *ast.GlobalExpr:
		return
	default:
		r.errorf(diagnostics.Assignment, loc, "left-hand side of assignment is not assignable")
	}
}

func (r *ResolverSource) ModifyAssignStmt(n *ast.AssignStmt) ast.Node {
	switch n.Sugar {
	case "<~":
		return r.desugarSimulate(n)
	case "~":
		return r.desugarAssumeObserve(n)
	case "~>":
		return r.desugarObserve(n)
	default:
		n.Left = r.resolveExpr(n.Left)
		n.Right = r.resolveExpr(n.Right)
		r.checkAssignableTarget(n.Left, n.Loc())
		if !types.Definitely(n.Right.ResolvedType(), n.Left.ResolvedType()) && !classAssignable(n.Left.ResolvedType(), n.Right.ResolvedType()) {
			r.errorf(diagnostics.NotAssignable, n.Loc(), "cannot assign %s to %s", n.Right.ResolvedType(), n.Left.ResolvedType())
		}
		return n
	}
}

// desugarSimulate rewrites `x <~ d` into `x <- d.simulate()` (§4.3
// assignment sugar): d is sampled and the result stored into x.
func (r *ResolverSource) desugarSimulate(n *ast.AssignStmt) ast.Node {
	call := ast.NewCallExpr(n.Loc(), ast.NewMemberExpr(n.Loc(), n.Right, "simulate"), nil, nil)
	rewritten := ast.NewAssignStmt(n.Loc(), n.Left, call)
	return rewritten.AcceptModifier(r)
}

// desugarObserve rewrites `x ~> d` into `d.observe(x)`, or
// `yield d.observe(x)` when the statement sits inside a fiber body.
func (r *ResolverSource) desugarObserve(n *ast.AssignStmt) ast.Node {
	call := ast.NewCallExpr(n.Loc(), ast.NewMemberExpr(n.Loc(), n.Right, "observe"), []ast.Expression{n.Left}, nil)
	if _, inFiber := r.currentYieldType(); inFiber {
		rewritten := ast.NewYieldStmt(n.Loc(), call)
		return rewritten.AcceptModifier(r)
	}
	rewritten := ast.NewExpressionStmt(n.Loc(), call)
	return rewritten.AcceptModifier(r)
}

// desugarAssumeObserve rewrites `x ~ d` into a runtime conditional: if x
// already carries a value, treat it as evidence and observe it against
// d via `d.observe(x)`; otherwise call `d.assume(x)` to let d bind x
// itself. The left/right operands are borrowed across both generated
// branches rather than cloned, since this pass never duplicates source
// positions for diagnostics.
func (r *ResolverSource) desugarAssumeObserve(n *ast.AssignStmt) ast.Node {
	_, inFiber := r.currentYieldType()
	wrap := func(call *ast.CallExpr) ast.Statement {
		if inFiber {
			return ast.NewYieldStmt(n.Loc(), call)
		}
		return ast.NewExpressionStmt(n.Loc(), call)
	}

	cond := ast.NewQueryExpr(n.Loc(), n.Left)
	observeCall := ast.NewCallExpr(n.Loc(), ast.NewMemberExpr(n.Loc(), n.Right, "observe"), []ast.Expression{ast.NewGetExpr(n.Loc(), n.Left)}, nil)
	thenStmt := wrap(observeCall)

	assumeCall := ast.NewCallExpr(n.Loc(), ast.NewMemberExpr(n.Loc(), n.Right, "assume"), []ast.Expression{n.Left}, nil)
	elseStmt := wrap(assumeCall)

	rewritten := ast.NewIfStmt(n.Loc(), cond, thenStmt, elseStmt)
	return rewritten.AcceptModifier(r)
}

// --- expressions: identifiers, member/global/this/super access ---

func kindOfVariable(d ast.Decl) ast.IdentKind {
	switch d.(type) {
	case *ast.ParameterDecl:
		return ast.IdentParameter
	case *ast.LocalVariableDecl:
		return ast.IdentLocalVariable
	case *ast.MemberVariableDecl:
		return ast.IdentMemberVariable
	case *ast.GlobalVariableDecl:
		return ast.IdentGlobalVariable
	default:
		return ast.IdentUnresolved
	}
}

func resolvedTypeOfVariable(d ast.Decl) types.Type {
	switch n := d.(type) {
	case *ast.ParameterDecl:
		return n.ResolvedType()
	case *ast.LocalVariableDecl:
		return n.ResolvedType()
	case *ast.MemberVariableDecl:
		return n.VarType
	case *ast.GlobalVariableDecl:
		return n.VarType
	default:
		return types.UnknownType{}
	}
}

func (r *ResolverSource) ModifyIdentifier(n *ast.Identifier) ast.Node {
	sc := r.currentScope()
	if d, ok := sc.LookupVariable(n.Name); ok {
		n.Target = d
		n.Kind = kindOfVariable(d)
		n.SetResolvedType(resolvedTypeOfVariable(d))
		return n
	}
	if set, ok := sc.LookupFunction(n.Name); ok {
		oi := ast.NewOverloadedIdentifier(n.Loc(), n.Name, ast.OverloadFunction)
		oi.Set = set
		return oi
	}
	if td, ok := sc.LookupType(n.Name); ok {
		n.Target = td
		n.Kind = ast.IdentClassRef
		return n
	}
	r.errorf(diagnostics.UnresolvedReference, n.Loc(), "unresolved reference %q", n.Name)
	n.SetResolvedType(types.UnknownType{})
	return n
}

func (r *ResolverSource) ModifyOverloadedIdentifier(n *ast.OverloadedIdentifier) ast.Node { return n }

func (r *ResolverSource) ModifyGlobalExpr(n *ast.GlobalExpr) ast.Node {
	global := r.scopes[0]
	if d, ok := global.LookupVariable(n.Name); ok {
		n.Target = d
		n.SetResolvedType(resolvedTypeOfVariable(d))
		return n
	}
	r.errorf(diagnostics.UnresolvedReference, n.Loc(), "unresolved global %q", n.Name)
	n.SetResolvedType(types.UnknownType{})
	return n
}

func (r *ResolverSource) ModifyThisExpr(n *ast.ThisExpr) ast.Node {
	c := r.currentClass()
	if c == nil {
		r.errorf(diagnostics.This, n.Loc(), "this outside a class body")
		n.SetResolvedType(types.UnknownType{})
		return n
	}
	args := make([]types.Type, len(c.Generics))
	for i, g := range c.Generics {
		args[i] = types.GenericType{Name: g.Name}
	}
	n.SetResolvedType(classType(c, args))
	return n
}

func (r *ResolverSource) ModifySuperExpr(n *ast.SuperExpr) ast.Node {
	c := r.currentClass()
	if c == nil || len(c.Supers) == 0 {
		r.errorf(diagnostics.SuperBase, n.Loc(), "super used outside a derived class")
		n.SetResolvedType(types.UnknownType{})
		return n
	}
	n.SetResolvedType(classType(c.Supers[0], nil))
	return n
}

func lookupMemberVariable(sc *scope.Scope, name string) (ast.Decl, bool) {
	if sc == nil {
		return nil, false
	}
	if d, ok := sc.Variables[name]; ok {
		return d, true
	}
	for _, b := range sc.Bases {
		if d, ok := lookupMemberVariable(b, name); ok {
			return d, true
		}
	}
	return nil, false
}

func lookupMemberFunction(sc *scope.Scope, name string) (*scope.Overloaded, bool) {
	if sc == nil {
		return nil, false
	}
	if set, ok := sc.Functions[name]; ok {
		return set, true
	}
	for _, b := range sc.Bases {
		if set, ok := lookupMemberFunction(b, name); ok {
			return set, true
		}
	}
	return nil, false
}

func lookupMemberOperator(sc *scope.Scope, symbol string) (*scope.Overloaded, bool) {
	if sc == nil {
		return nil, false
	}
	if set, ok := sc.Operators[symbol]; ok {
		return set, true
	}
	for _, b := range sc.Bases {
		if set, ok := lookupMemberOperator(b, symbol); ok {
			return set, true
		}
	}
	return nil, false
}

func (r *ResolverSource) ModifyMemberExpr(n *ast.MemberExpr) ast.Node {
	n.Object = r.resolveExpr(n.Object)
	if ft, ok := n.Object.ResolvedType().(types.FiberType); ok {
		switch n.Name {
		case "value":
			n.SetResolvedType(ft.Yield)
		case "query":
			n.SetResolvedType(types.FunctionType{Returns: types.BasicType{Kind: types.Boolean}})
		default:
			r.errorf(diagnostics.Member, n.Loc(), "fiber has no member %q", n.Name)
			n.SetResolvedType(types.UnknownType{})
		}
		return n
	}
	ct, ok := n.Object.ResolvedType().(types.ClassType)
	if !ok {
		if _, unknown := n.Object.ResolvedType().(types.UnknownType); !unknown {
			r.errorf(diagnostics.Member, n.Loc(), "member access on non-class type %s", n.Object.ResolvedType())
		}
		n.SetResolvedType(types.UnknownType{})
		return n
	}
	cd, ok := ct.Decl.(classAdapter)
	if !ok {
		n.SetResolvedType(types.UnknownType{})
		return n
	}
	body := bodyScope(cd.d)
	if d, ok := lookupMemberVariable(body, n.Name); ok {
		n.Target = d
		n.SetResolvedType(resolvedTypeOfVariable(d))
		return n
	}
	if set, ok := lookupMemberFunction(body, n.Name); ok {
		n.Set = set
		return n
	}
	r.errorf(diagnostics.Member, n.Loc(), "class %q has no member %q", cd.d.Name, n.Name)
	n.SetResolvedType(types.UnknownType{})
	return n
}

// --- calls ---

func returnTypeOf(d ast.Decl) types.Type {
	switch n := d.(type) {
	case *ast.FunctionDecl:
		return n.ResolvedReturn
	case *ast.OperatorDecl:
		return n.ResolvedReturn
	default:
		return types.UnknownType{}
	}
}

func needsInstantiation(d ast.Decl) bool {
	switch n := d.(type) {
	case *ast.FunctionDecl:
		return n.IsGeneric()
	case *ast.OperatorDecl:
		return len(n.Generics) > 0
	default:
		return false
	}
}

func (r *ResolverSource) instantiate(d ast.Decl, explicit []ast.Type) ast.Decl {
	if r.Instantiator == nil {
		return d
	}
	args := make([]types.Type, len(explicit))
	for i, t := range explicit {
		args[i] = r.resolveTypeExpr(r.currentScope(), t)
	}
	switch n := d.(type) {
	case *ast.FunctionDecl:
		if inst := r.Instantiator.InstantiateFunction(n, args); inst != nil {
			return inst
		}
	case *ast.OperatorDecl:
		if inst := r.Instantiator.InstantiateOperator(n, args); inst != nil {
			return inst
		}
	}
	return d
}

func (r *ResolverSource) resolveOverloadCall(n *ast.CallExpr, set *scope.Overloaded, argTypes []types.Type, loc fernsrc.Location, name string, bind func(ast.Decl)) {
	if set == nil {
		r.errorf(diagnostics.Call, loc, "%q has no overload accepting these arguments", name)
		n.SetResolvedType(types.UnknownType{})
		return
	}
	applicable := func(d ast.Decl) bool {
		params := paramTypes(d)
		if len(params) != len(argTypes) {
			return false
		}
		for i := range params {
			if !types.Possibly(argTypes[i], params[i]) {
				return false
			}
		}
		return true
	}
	winner, ambiguous := set.Resolve(applicable)
	switch {
	case winner != nil:
		target := winner
		if needsInstantiation(target) {
			target = r.instantiate(target, n.TypeArgs)
		}
		bind(target)
		n.SetResolvedType(returnTypeOf(target))
	case len(ambiguous) > 0:
		locs := make([]fernsrc.Location, len(ambiguous))
		for i, a := range ambiguous {
			locs[i] = a.Loc()
		}
		r.errorf(diagnostics.AmbiguousCall, loc, "call to %q is ambiguous", name).WithCandidates(locs...)
		n.SetResolvedType(types.UnknownType{})
	default:
		r.errorf(diagnostics.Call, loc, "no overload of %q applies to these arguments", name)
		n.SetResolvedType(types.UnknownType{})
	}
}

func (r *ResolverSource) checkArgs(loc fernsrc.Location, what string, got, want []types.Type) {
	if len(got) != len(want) {
		r.errorf(diagnostics.Call, loc, "%s expects %d argument(s), got %d", what, len(want), len(got))
		return
	}
	for i := range got {
		if !types.Definitely(got[i], want[i]) {
			r.errorf(diagnostics.Call, loc, "argument %d: cannot pass %s as %s", i+1, got[i], want[i])
		}
	}
}

// resolveConstructorCall type-checks a class constructor call and, for
// a generic class, infers the binding (generic parameter -> concrete
// type argument) from the argument tuple before checking argument
// types, then triggers instantiation (§4.4: "the resolver computes the
// substitution ... from the argument tuple (class constructor calls)
// or from explicit type arguments").
func (r *ResolverSource) resolveConstructorCall(n *ast.CallExpr, cd *ast.ClassDecl, argTypes []types.Type) {
	n.ConstructedClass = cd

	args := make([]types.Type, len(cd.Generics))
	bound := make([]bool, len(cd.Generics))
	for i, t := range n.TypeArgs {
		if i < len(args) {
			args[i] = r.resolveTypeExpr(r.currentScope(), t)
			bound[i] = true
		}
	}
	genericIndex := make(map[string]int, len(cd.Generics))
	for i, g := range cd.Generics {
		genericIndex[g.Name] = i
	}
	if len(argTypes) == len(cd.CtorParams) {
		for i, p := range cd.CtorParams {
			if gt, ok := p.VarType.(types.GenericType); ok {
				if idx, ok := genericIndex[gt.Name]; ok && !bound[idx] {
					args[idx] = argTypes[i]
					bound[idx] = true
				}
			}
		}
	}
	for i, g := range cd.Generics {
		if !bound[i] {
			args[i] = types.GenericType{Name: g.Name}
		}
	}

	bindings := make(map[string]types.Type, len(cd.Generics))
	for i, g := range cd.Generics {
		bindings[g.Name] = args[i]
	}

	if len(argTypes) != len(cd.CtorParams) {
		r.errorf(diagnostics.Constructor, n.Loc(), "%s constructor expects %d argument(s), got %d", cd.Name, len(cd.CtorParams), len(argTypes))
	} else {
		for i, p := range cd.CtorParams {
			expected := types.Substitute(p.VarType, bindings)
			if !types.Definitely(argTypes[i], expected) {
				r.errorf(diagnostics.Constructor, n.Loc(), "%s constructor argument %d: cannot pass %s as %s", cd.Name, i+1, argTypes[i], expected)
			}
		}
	}

	target := cd
	if cd.IsGeneric() && r.Instantiator != nil {
		if inst := r.Instantiator.InstantiateClass(cd, args); inst != nil {
			target = inst
		}
	}
	n.Target = target
	n.SetResolvedType(classType(target, args))
}

func (r *ResolverSource) ModifyCallExpr(n *ast.CallExpr) ast.Node {
	n.Callee = r.resolveExpr(n.Callee)
	for i, a := range n.Args {
		n.Args[i] = r.resolveExpr(a)
	}
	argTypes := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		argTypes[i] = a.ResolvedType()
	}

	if id, ok := n.Callee.(*ast.Identifier); ok && id.Kind == ast.IdentClassRef {
		cd, ok := id.Target.(*ast.ClassDecl)
		if !ok {
			r.errorf(diagnostics.Constructor, n.Loc(), "%q is not a class", id.Name)
			n.SetResolvedType(types.UnknownType{})
			return n
		}
		r.resolveConstructorCall(n, cd, argTypes)
		return n
	}

	if oi, ok := n.Callee.(*ast.OverloadedIdentifier); ok {
		r.resolveOverloadCall(n, setAsOverloaded(oi.Set), argTypes, oi.Loc(), oi.Name, func(d ast.Decl) {
			oi.Target = d
			n.Target = d
		})
		return n
	}

	if me, ok := n.Callee.(*ast.MemberExpr); ok && me.Set != nil {
		r.resolveOverloadCall(n, setAsOverloaded(me.Set), argTypes, me.Loc(), me.Name, func(d ast.Decl) {
			me.Target = d
			n.Target = d
		})
		return n
	}

	switch ct := n.Callee.ResolvedType().(type) {
	case types.FunctionType:
		r.checkArgs(n.Loc(), "call", argTypes, ct.Params)
		n.SetResolvedType(ct.Returns)
	case types.FiberType:
		n.SetResolvedType(ct)
	case types.UnknownType:
		n.SetResolvedType(types.UnknownType{})
	default:
		r.errorf(diagnostics.Call, n.Loc(), "value of type %s is not callable", ct)
		n.SetResolvedType(types.UnknownType{})
	}
	return n
}

// setAsOverloaded narrows an ast.OverloadSet (kept abstract to avoid an
// ast<->scope import cycle) back to the concrete *scope.Overloaded that
// resolve itself always constructs it from.
func setAsOverloaded(s ast.OverloadSet) *scope.Overloaded {
	if s == nil {
		return nil
	}
	o, _ := s.(*scope.Overloaded)
	return o
}

func (r *ResolverSource) ModifyBinaryCallExpr(n *ast.BinaryCallExpr) ast.Node {
	n.Left = r.resolveExpr(n.Left)
	n.Right = r.resolveExpr(n.Right)
	lt, rt := n.Left.ResolvedType(), n.Right.ResolvedType()

	if bt, ok := lt.(types.BasicType); ok {
		if result, ok := builtinBinaryOp(bt, n.Operator, rt); ok {
			n.SetResolvedType(result)
			return n
		}
	}
	if ct, ok := lt.(types.ClassType); ok {
		if cd, ok := ct.Decl.(classAdapter); ok {
			if set, ok := lookupMemberOperator(bodyScope(cd.d), n.Operator); ok {
				applicable := func(d ast.Decl) bool {
					params := paramTypes(d)
					return len(params) == 1 && types.Possibly(rt, params[0])
				}
				winner, ambiguous := set.Resolve(applicable)
				switch {
				case winner != nil:
					n.Target = winner
					n.SetResolvedType(returnTypeOf(winner))
					return n
				case len(ambiguous) > 0:
					r.errorf(diagnostics.AmbiguousCall, n.Loc(), "operator %q is ambiguous", n.Operator)
					n.SetResolvedType(types.UnknownType{})
					return n
				}
			}
		}
	}
	if _, unknown := lt.(types.UnknownType); unknown {
		n.SetResolvedType(types.UnknownType{})
		return n
	}
	if _, unknown := rt.(types.UnknownType); unknown {
		n.SetResolvedType(types.UnknownType{})
		return n
	}
	r.errorf(diagnostics.Call, n.Loc(), "no operator %q applies to %s and %s", n.Operator, lt, rt)
	n.SetResolvedType(types.UnknownType{})
	return n
}

func (r *ResolverSource) ModifyUnaryCallExpr(n *ast.UnaryCallExpr) ast.Node {
	n.Operand = r.resolveExpr(n.Operand)
	t := n.Operand.ResolvedType()
	if bt, ok := t.(types.BasicType); ok {
		if result, ok := builtinUnaryOp(bt, n.Operator); ok {
			n.SetResolvedType(result)
			return n
		}
	}
	if ct, ok := t.(types.ClassType); ok {
		if cd, ok := ct.Decl.(classAdapter); ok {
			if set, ok := lookupMemberOperator(bodyScope(cd.d), n.Operator); ok {
				applicable := func(d ast.Decl) bool { return len(paramTypes(d)) == 0 }
				if winner, _ := set.Resolve(applicable); winner != nil {
					n.Target = winner
					n.SetResolvedType(returnTypeOf(winner))
					return n
				}
			}
		}
	}
	if _, unknown := t.(types.UnknownType); unknown {
		n.SetResolvedType(types.UnknownType{})
		return n
	}
	r.errorf(diagnostics.Call, n.Loc(), "no operator %q applies to %s", n.Operator, t)
	n.SetResolvedType(types.UnknownType{})
	return n
}

// --- assignment expression, cast/query/get ---

func (r *ResolverSource) ModifyAssignExpr(n *ast.AssignExpr) ast.Node {
	n.Left = r.resolveExpr(n.Left)
	n.Right = r.resolveExpr(n.Right)
	r.checkAssignableTarget(n.Left, n.Loc())
	if !types.Definitely(n.Right.ResolvedType(), n.Left.ResolvedType()) && !classAssignable(n.Left.ResolvedType(), n.Right.ResolvedType()) {
		r.errorf(diagnostics.NotAssignable, n.Loc(), "cannot assign %s to %s", n.Right.ResolvedType(), n.Left.ResolvedType())
	}
	n.SetResolvedType(n.Left.ResolvedType())
	return n
}

func (r *ResolverSource) ModifyCastExpr(n *ast.CastExpr) ast.Node {
	n.Operand = r.resolveExpr(n.Operand)
	target := r.resolveTypeExpr(r.currentScope(), n.Target)
	from := n.Operand.ResolvedType()
	if !types.Possibly(from, target) && !classAssignable(target, from) {
		r.errorf(diagnostics.Cast, n.Loc(), "cannot cast %s to %s", from, target)
	}
	n.SetResolvedType(target)
	return n
}

func (r *ResolverSource) ModifyQueryExpr(n *ast.QueryExpr) ast.Node {
	n.Operand = r.resolveExpr(n.Operand)
	switch n.Operand.ResolvedType().(type) {
	case types.OptionalType, types.FiberType, types.UnknownType:
	default:
		r.errorf(diagnostics.Query, n.Loc(), "? requires an optional or fiber operand, got %s", n.Operand.ResolvedType())
	}
	n.SetResolvedType(types.BasicType{Kind: types.Boolean})
	return n
}

func (r *ResolverSource) ModifyGetExpr(n *ast.GetExpr) ast.Node {
	n.Operand = r.resolveExpr(n.Operand)
	switch t := n.Operand.ResolvedType().(type) {
	case types.OptionalType:
		n.SetResolvedType(t.Element)
	case types.FiberType:
		n.SetResolvedType(t.Yield)
	case types.UnknownType:
		n.SetResolvedType(types.UnknownType{})
	default:
		r.errorf(diagnostics.Get, n.Loc(), "! requires an optional or fiber operand, got %s", t)
		n.SetResolvedType(types.UnknownType{})
	}
	return n
}

// --- array / index / range / span ---

func (r *ResolverSource) checkIntegerIndex(e ast.Expression, loc fernsrc.Location) {
	if bt, ok := e.ResolvedType().(types.BasicType); !ok || bt.Kind != types.Integer {
		if _, unknown := e.ResolvedType().(types.UnknownType); !unknown {
			r.errorf(diagnostics.Index, loc, "index must be Integer, got %s", e.ResolvedType())
		}
	}
}

func (r *ResolverSource) ModifyIndexExpr(n *ast.IndexExpr) ast.Node {
	n.Array = r.resolveExpr(n.Array)
	n.Index = r.resolveExpr(n.Index)
	r.checkIntegerIndex(n.Index, n.Loc())
	switch t := n.Array.ResolvedType().(type) {
	case types.ArrayType:
		if t.Ndims > 1 {
			n.SetResolvedType(types.ArrayType{Element: t.Element, Ndims: t.Ndims - 1})
		} else {
			n.SetResolvedType(t.Element)
		}
	case types.SequenceType:
		n.SetResolvedType(t.Element)
	case types.UnknownType:
		n.SetResolvedType(types.UnknownType{})
	default:
		r.errorf(diagnostics.Index, n.Loc(), "cannot index %s", t)
		n.SetResolvedType(types.UnknownType{})
	}
	return n
}

func (r *ResolverSource) ModifySliceExpr(n *ast.SliceExpr) ast.Node {
	n.Array = r.resolveExpr(n.Array)
	for i, idx := range n.Indices {
		n.Indices[i] = r.resolveExpr(idx)
		r.checkIntegerIndex(n.Indices[i], n.Loc())
	}
	if t, ok := n.Array.ResolvedType().(types.ArrayType); ok {
		remaining := t.Ndims - len(n.Indices)
		if remaining <= 0 {
			n.SetResolvedType(t.Element)
		} else {
			n.SetResolvedType(types.ArrayType{Element: t.Element, Ndims: remaining})
		}
		return n
	}
	if _, unknown := n.Array.ResolvedType().(types.UnknownType); unknown {
		n.SetResolvedType(types.UnknownType{})
		return n
	}
	r.errorf(diagnostics.Index, n.Loc(), "cannot index %s", n.Array.ResolvedType())
	n.SetResolvedType(types.UnknownType{})
	return n
}

func (r *ResolverSource) ModifyRangeExpr(n *ast.RangeExpr) ast.Node {
	if n.Lower != nil {
		n.Lower = r.resolveExpr(n.Lower)
	}
	if n.Upper != nil {
		n.Upper = r.resolveExpr(n.Upper)
	}
	n.SetResolvedType(types.SequenceType{Element: types.BasicType{Kind: types.Integer}})
	return n
}

func (r *ResolverSource) ModifySpanExpr(n *ast.SpanExpr) ast.Node {
	n.Array = r.resolveExpr(n.Array)
	if n.Range != nil {
		n.Range = n.Range.AcceptModifier(r).(*ast.RangeExpr)
	}
	n.SetResolvedType(n.Array.ResolvedType())
	return n
}

// --- wrappers, sequence, lambda ---

func (r *ResolverSource) ModifyBracesExpr(n *ast.BracesExpr) ast.Node {
	n.Inner = r.resolveExpr(n.Inner)
	n.SetResolvedType(n.Inner.ResolvedType())
	return n
}

func (r *ResolverSource) ModifyParensExpr(n *ast.ParensExpr) ast.Node {
	n.Inner = r.resolveExpr(n.Inner)
	n.SetResolvedType(n.Inner.ResolvedType())
	return n
}

func (r *ResolverSource) ModifySequenceExpr(n *ast.SequenceExpr) ast.Node {
	var common types.Type
	for i, e := range n.Elements {
		n.Elements[i] = r.resolveExpr(e)
		if common == nil {
			common = n.Elements[i].ResolvedType()
			continue
		}
		if c, ok := types.Common(common, n.Elements[i].ResolvedType()); ok {
			common = c
		} else {
			r.errorf(diagnostics.Sequence, n.Loc(), "element %d of type %s has no common type with %s", i+1, n.Elements[i].ResolvedType(), common)
		}
	}
	if common == nil {
		common = types.UnknownType{}
	}
	n.SetResolvedType(types.SequenceType{Element: common})
	return n
}

func paramTypesOf(params []*ast.ParameterDecl) []types.Type {
	out := make([]types.Type, len(params))
	for i, p := range params {
		out[i] = p.ResolvedType()
	}
	return out
}

func (r *ResolverSource) ModifyLambdaExpr(n *ast.LambdaExpr) ast.Node {
	sc := scope.New(r.currentScope(), scope.KindFunction)
	for _, p := range n.Params {
		p.SetResolvedType(r.resolveTypeExpr(sc, p.TypeAnn))
		sc.DefineVariable(p)
	}
	ret := r.resolveTypeExpr(sc, n.ReturnType)
	r.pushScope(sc)
	r.pushReturnType(ret)
	r.pushLambdaYieldBoundary()
	if n.Body != nil {
		n.Body = n.Body.AcceptModifier(r).(ast.Statement)
	}
	r.popYield()
	r.popReturnType()
	r.popScope()
	n.SetResolvedType(types.FunctionType{Params: paramTypesOf(n.Params), Returns: ret})
	return n
}

func (r *ResolverSource) ModifyExprList(n *ast.ExprList) ast.Node {
	if n.Head != nil {
		n.Head = r.resolveExpr(n.Head)
	}
	if n.Tail != nil {
		n.Tail = n.Tail.AcceptModifier(r).(*ast.ExprList)
	}
	elems := n.Slice()
	elemTypes := make([]types.Type, len(elems))
	for i, e := range elems {
		elemTypes[i] = e.ResolvedType()
	}
	n.SetResolvedType(types.TupleType{Elements: elemTypes})
	return n
}

// --- literals ---

func (r *ResolverSource) ModifyBoolLiteral(n *ast.BoolLiteral) ast.Node {
	n.SetResolvedType(types.BasicType{Kind: types.Boolean})
	return n
}
func (r *ResolverSource) ModifyIntLiteral(n *ast.IntLiteral) ast.Node {
	n.SetResolvedType(types.BasicType{Kind: types.Integer})
	return n
}
func (r *ResolverSource) ModifyRealLiteral(n *ast.RealLiteral) ast.Node {
	n.SetResolvedType(types.BasicType{Kind: types.Real})
	return n
}
func (r *ResolverSource) ModifyStringLiteral(n *ast.StringLiteral) ast.Node {
	n.SetResolvedType(types.BasicType{Kind: types.String})
	return n
}
func (r *ResolverSource) ModifyNilLiteral(n *ast.NilLiteral) ast.Node {
	n.SetResolvedType(types.OptionalType{Element: types.UnknownType{}})
	return n
}

// --- syntactic type nodes: untouched by body resolution, which reaches
// resolved types through resolveTypeExpr instead of Modifier recursion ---

func (r *ResolverSource) ModifyArrayTypeRef(n *ast.ArrayTypeRef) ast.Node       { return n }
func (r *ResolverSource) ModifyBasicTypeRef(n *ast.BasicTypeRef) ast.Node       { return n }
func (r *ResolverSource) ModifyClassTypeRef(n *ast.ClassTypeRef) ast.Node      { return n }
func (r *ResolverSource) ModifyEmptyType(n *ast.EmptyType) ast.Node            { return n }
func (r *ResolverSource) ModifyFiberTypeRef(n *ast.FiberTypeRef) ast.Node      { return n }
func (r *ResolverSource) ModifyFunctionTypeRef(n *ast.FunctionTypeRef) ast.Node { return n }
func (r *ResolverSource) ModifyGenericTypeRef(n *ast.GenericTypeRef) ast.Node  { return n }
func (r *ResolverSource) ModifyMemberTypeRef(n *ast.MemberTypeRef) ast.Node    { return n }
func (r *ResolverSource) ModifyOptionalTypeRef(n *ast.OptionalTypeRef) ast.Node { return n }
func (r *ResolverSource) ModifySequenceTypeRef(n *ast.SequenceTypeRef) ast.Node { return n }
func (r *ResolverSource) ModifyTupleTypeRef(n *ast.TupleTypeRef) ast.Node      { return n }
func (r *ResolverSource) ModifyTypeListRef(n *ast.TypeListRef) ast.Node        { return n }
func (r *ResolverSource) ModifyUnknownType(n *ast.UnknownType) ast.Node        { return n }
func (r *ResolverSource) ModifyWeakTypeRef(n *ast.WeakTypeRef) ast.Node        { return n }
