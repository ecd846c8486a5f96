package ast

import "math/big"

// StructuralCloner is the sole implementation of Cloner: a pure deep
// copy that mints a fresh Num/UUID for every node via the existing New*
// constructors (§4.4). Resolved-only state -- ResolvedType, Target,
// Owner, Supers/Conversions/Assignable, BodyScope/InitScope,
// Instantiations -- is deliberately NOT copied: a clone always starts
// at DeclState Cloned and is re-run through the four resolver passes,
// which is what actually repoints those fields for the substituted
// type arguments (a stale Target copied from the template would be
// wrong as often as it was right).
type StructuralCloner struct{}

func cloneExpr(c Cloner, e Expression) Expression {
	if e == nil {
		return nil
	}
	return e.AcceptCloner(c).(Expression)
}

func cloneStmt(c Cloner, s Statement) Statement {
	if s == nil {
		return nil
	}
	return s.AcceptCloner(c).(Statement)
}

func cloneType(c Cloner, t Type) Type {
	if t == nil {
		return nil
	}
	return t.AcceptCloner(c).(Type)
}

func cloneExprs(c Cloner, es []Expression) []Expression {
	if es == nil {
		return nil
	}
	out := make([]Expression, len(es))
	for i, e := range es {
		out[i] = cloneExpr(c, e)
	}
	return out
}

func cloneStmts(c Cloner, ss []Statement) []Statement {
	if ss == nil {
		return nil
	}
	out := make([]Statement, len(ss))
	for i, s := range ss {
		out[i] = cloneStmt(c, s)
	}
	return out
}

func cloneTypes(c Cloner, ts []Type) []Type {
	if ts == nil {
		return nil
	}
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = cloneType(c, t)
	}
	return out
}

func cloneParams(c Cloner, ps []*ParameterDecl) []*ParameterDecl {
	if ps == nil {
		return nil
	}
	out := make([]*ParameterDecl, len(ps))
	for i, p := range ps {
		out[i] = p.AcceptCloner(c).(*ParameterDecl)
	}
	return out
}

func cloneGenerics(c Cloner, gs []*GenericParamDecl) []*GenericParamDecl {
	if gs == nil {
		return nil
	}
	out := make([]*GenericParamDecl, len(gs))
	for i, g := range gs {
		out[i] = g.AcceptCloner(c).(*GenericParamDecl)
	}
	return out
}

// --- types ---

func (c *StructuralCloner) CloneUnknownType(n *UnknownType) Node { return NewUnknownType(n.Loc()) }
func (c *StructuralCloner) CloneEmptyType(n *EmptyType) Node     { return NewEmptyType(n.Loc()) }
func (c *StructuralCloner) CloneBasicTypeRef(n *BasicTypeRef) Node {
	return NewBasicTypeRef(n.Loc(), n.Name)
}
func (c *StructuralCloner) CloneClassTypeRef(n *ClassTypeRef) Node {
	return NewClassTypeRef(n.Loc(), n.Name, cloneTypes(c, n.Args))
}
func (c *StructuralCloner) CloneGenericTypeRef(n *GenericTypeRef) Node {
	return NewGenericTypeRef(n.Loc(), n.Name)
}
func (c *StructuralCloner) CloneMemberTypeRef(n *MemberTypeRef) Node {
	return NewMemberTypeRef(n.Loc(), cloneType(c, n.Qualifier), n.Name)
}
func (c *StructuralCloner) CloneArrayTypeRef(n *ArrayTypeRef) Node {
	return NewArrayTypeRef(n.Loc(), cloneType(c, n.Element), n.Ndims)
}
func (c *StructuralCloner) CloneTupleTypeRef(n *TupleTypeRef) Node {
	return NewTupleTypeRef(n.Loc(), cloneTypes(c, n.Elements))
}
func (c *StructuralCloner) CloneSequenceTypeRef(n *SequenceTypeRef) Node {
	return NewSequenceTypeRef(n.Loc(), cloneType(c, n.Element))
}
func (c *StructuralCloner) CloneFunctionTypeRef(n *FunctionTypeRef) Node {
	return NewFunctionTypeRef(n.Loc(), cloneType(c, n.Params), cloneType(c, n.Returns))
}
func (c *StructuralCloner) CloneFiberTypeRef(n *FiberTypeRef) Node {
	return NewFiberTypeRef(n.Loc(), cloneType(c, n.Yield))
}
func (c *StructuralCloner) CloneOptionalTypeRef(n *OptionalTypeRef) Node {
	return NewOptionalTypeRef(n.Loc(), cloneType(c, n.Element))
}
func (c *StructuralCloner) CloneWeakTypeRef(n *WeakTypeRef) Node {
	return NewWeakTypeRef(n.Loc(), cloneType(c, n.Element))
}
func (c *StructuralCloner) CloneTypeListRef(n *TypeListRef) Node {
	return NewTypeListRef(n.Loc(), cloneTypes(c, n.Items))
}

// --- literals ---

func (c *StructuralCloner) CloneBoolLiteral(n *BoolLiteral) Node {
	return NewBoolLiteral(n.Loc(), n.Value)
}
func (c *StructuralCloner) CloneIntLiteral(n *IntLiteral) Node {
	v := n.Value
	if v != nil {
		v = new(big.Int).Set(v)
	}
	return NewIntLiteral(n.Loc(), v)
}
func (c *StructuralCloner) CloneRealLiteral(n *RealLiteral) Node {
	return NewRealLiteral(n.Loc(), n.Value)
}
func (c *StructuralCloner) CloneStringLiteral(n *StringLiteral) Node {
	return NewStringLiteral(n.Loc(), n.Value)
}
func (c *StructuralCloner) CloneNilLiteral(n *NilLiteral) Node { return NewNilLiteral(n.Loc()) }

// --- identifiers ---

func (c *StructuralCloner) CloneIdentifier(n *Identifier) Node {
	out := NewIdentifier(n.Loc(), n.Name)
	out.Kind = n.Kind
	return out
}
func (c *StructuralCloner) CloneOverloadedIdentifier(n *OverloadedIdentifier) Node {
	return NewOverloadedIdentifier(n.Loc(), n.Name, n.Kind)
}

// --- calls ---

func (c *StructuralCloner) CloneCallExpr(n *CallExpr) Node {
	return NewCallExpr(n.Loc(), cloneExpr(c, n.Callee), cloneExprs(c, n.Args), cloneTypes(c, n.TypeArgs))
}
func (c *StructuralCloner) CloneBinaryCallExpr(n *BinaryCallExpr) Node {
	return NewBinaryCallExpr(n.Loc(), n.Operator, cloneExpr(c, n.Left), cloneExpr(c, n.Right))
}
func (c *StructuralCloner) CloneUnaryCallExpr(n *UnaryCallExpr) Node {
	return NewUnaryCallExpr(n.Loc(), n.Operator, cloneExpr(c, n.Operand))
}

// --- assignment, member/global access, this/super ---

func (c *StructuralCloner) CloneAssignExpr(n *AssignExpr) Node {
	return NewAssignExpr(n.Loc(), cloneExpr(c, n.Left), cloneExpr(c, n.Right))
}
func (c *StructuralCloner) CloneMemberExpr(n *MemberExpr) Node {
	return NewMemberExpr(n.Loc(), cloneExpr(c, n.Object), n.Name)
}
func (c *StructuralCloner) CloneGlobalExpr(n *GlobalExpr) Node {
	return NewGlobalExpr(n.Loc(), n.Name)
}
func (c *StructuralCloner) CloneSuperExpr(n *SuperExpr) Node { return NewSuperExpr(n.Loc()) }
func (c *StructuralCloner) CloneThisExpr(n *ThisExpr) Node   { return NewThisExpr(n.Loc()) }

// --- array/index/range/span ---

func (c *StructuralCloner) CloneSliceExpr(n *SliceExpr) Node {
	return NewSliceExpr(n.Loc(), cloneExpr(c, n.Array), cloneExprs(c, n.Indices))
}
func (c *StructuralCloner) CloneRangeExpr(n *RangeExpr) Node {
	return NewRangeExpr(n.Loc(), cloneExpr(c, n.Lower), cloneExpr(c, n.Upper))
}
func (c *StructuralCloner) CloneIndexExpr(n *IndexExpr) Node {
	return NewIndexExpr(n.Loc(), cloneExpr(c, n.Array), cloneExpr(c, n.Index))
}
func (c *StructuralCloner) CloneSpanExpr(n *SpanExpr) Node {
	var r *RangeExpr
	if n.Range != nil {
		r = n.Range.AcceptCloner(c).(*RangeExpr)
	}
	return NewSpanExpr(n.Loc(), cloneExpr(c, n.Array), r)
}

// --- wrappers ---

func (c *StructuralCloner) CloneBracesExpr(n *BracesExpr) Node {
	return NewBracesExpr(n.Loc(), cloneExpr(c, n.Inner))
}
func (c *StructuralCloner) CloneParensExpr(n *ParensExpr) Node {
	return NewParensExpr(n.Loc(), cloneExpr(c, n.Inner))
}
func (c *StructuralCloner) CloneSequenceExpr(n *SequenceExpr) Node {
	return NewSequenceExpr(n.Loc(), cloneExprs(c, n.Elements))
}

// --- lambda ---

func (c *StructuralCloner) CloneLambdaExpr(n *LambdaExpr) Node {
	return NewLambdaExpr(n.Loc(), cloneParams(c, n.Params), cloneType(c, n.ReturnType), cloneStmt(c, n.Body))
}

// --- cast / query / get ---

func (c *StructuralCloner) CloneCastExpr(n *CastExpr) Node {
	return NewCastExpr(n.Loc(), cloneExpr(c, n.Operand), cloneType(c, n.Target))
}
func (c *StructuralCloner) CloneQueryExpr(n *QueryExpr) Node {
	return NewQueryExpr(n.Loc(), cloneExpr(c, n.Operand))
}
func (c *StructuralCloner) CloneGetExpr(n *GetExpr) Node {
	return NewGetExpr(n.Loc(), cloneExpr(c, n.Operand))
}

// --- parameter / local-variable / generic-param declarations ---

func (c *StructuralCloner) CloneParameterDecl(n *ParameterDecl) Node {
	return NewParameterDecl(n.Loc(), n.Name, cloneType(c, n.TypeAnn), cloneExpr(c, n.Default))
}
func (c *StructuralCloner) CloneLocalVariableDecl(n *LocalVariableDecl) Node {
	return NewLocalVariableDecl(n.Loc(), n.Name, cloneType(c, n.TypeAnn), n.Auto, cloneExpr(c, n.Init))
}
func (c *StructuralCloner) CloneGenericParamDecl(n *GenericParamDecl) Node {
	return NewGenericParamDecl(n.Loc(), n.Name, cloneType(c, n.Bound))
}

// --- comma-separated lists ---

func (c *StructuralCloner) CloneExprList(n *ExprList) Node {
	var tail *ExprList
	if n.Tail != nil {
		tail = n.Tail.AcceptCloner(c).(*ExprList)
	}
	return NewExprList(n.Loc(), cloneExpr(c, n.Head), tail)
}
func (c *StructuralCloner) CloneStmtList(n *StmtList) Node {
	var tail *StmtList
	if n.Tail != nil {
		tail = n.Tail.AcceptCloner(c).(*StmtList)
	}
	return NewStmtList(n.Loc(), cloneStmt(c, n.Head), tail)
}

// --- global / member variable declarations ---

func (c *StructuralCloner) CloneGlobalVariableDecl(n *GlobalVariableDecl) Node {
	out := NewGlobalVariableDecl(n.Loc(), n.Name, cloneType(c, n.TypeAnn), cloneExpr(c, n.Init))
	out.Annotated = n.Annotated
	return out
}
func (c *StructuralCloner) CloneMemberVariableDecl(n *MemberVariableDecl) Node {
	out := NewMemberVariableDecl(n.Loc(), n.Name, cloneType(c, n.TypeAnn), cloneExpr(c, n.Init))
	out.Annotated = n.Annotated
	return out
}

// --- function / fiber / operator declarations ---

func (c *StructuralCloner) CloneFunctionDecl(n *FunctionDecl) Node {
	ret := n.ReturnType
	if n.IsFiber {
		if fr, ok := ret.(*FiberTypeRef); ok {
			ret = fr.Yield
		}
	}
	out := NewFunctionDecl(n.Loc(), n.Name, cloneGenerics(c, n.Generics), cloneParams(c, n.Params), cloneType(c, ret), cloneStmt(c, n.Body), n.IsFiber)
	out.Annotated = n.Annotated
	return out
}
func (c *StructuralCloner) CloneOperatorDecl(n *OperatorDecl) Node {
	out := NewOperatorDecl(n.Loc(), n.Kind, n.Symbol, cloneParams(c, n.Params), cloneType(c, n.ReturnType), cloneStmt(c, n.Body))
	out.Annotated = n.Annotated
	out.Generics = cloneGenerics(c, n.Generics)
	return out
}

// --- class / basic type / program declarations ---

func (c *StructuralCloner) CloneClassDecl(n *ClassDecl) Node {
	out := NewClassDecl(n.Loc(), n.Name, cloneGenerics(c, n.Generics), cloneType(c, n.BaseType), cloneExprs(c, n.BaseArgs), cloneStmts(c, n.Body))
	out.Annotated = n.Annotated
	return out
}
func (c *StructuralCloner) CloneBasicTypeDecl(n *BasicTypeDecl) Node {
	return NewBasicTypeDecl(n.Loc(), n.Name)
}
func (c *StructuralCloner) CloneProgramDecl(n *ProgramDecl) Node {
	return NewProgramDecl(n.Loc(), n.Name, cloneParams(c, n.Params), cloneStmt(c, n.Body))
}

// --- control flow ---

func (c *StructuralCloner) CloneExpressionStmt(n *ExpressionStmt) Node {
	return NewExpressionStmt(n.Loc(), cloneExpr(c, n.Expr))
}
func (c *StructuralCloner) CloneIfStmt(n *IfStmt) Node {
	return NewIfStmt(n.Loc(), cloneExpr(c, n.Cond), cloneStmt(c, n.Then), cloneStmt(c, n.Else))
}
func (c *StructuralCloner) CloneForStmt(n *ForStmt) Node {
	return NewForStmt(n.Loc(), n.Parallel, n.VarName, cloneExpr(c, n.Iterable), cloneStmt(c, n.Body))
}
func (c *StructuralCloner) CloneWhileStmt(n *WhileStmt) Node {
	return NewWhileStmt(n.Loc(), cloneExpr(c, n.Cond), cloneStmt(c, n.Body))
}
func (c *StructuralCloner) CloneDoWhileStmt(n *DoWhileStmt) Node {
	return NewDoWhileStmt(n.Loc(), cloneStmt(c, n.Body), cloneExpr(c, n.Cond))
}
func (c *StructuralCloner) CloneReturnStmt(n *ReturnStmt) Node {
	return NewReturnStmt(n.Loc(), cloneExpr(c, n.Value))
}
func (c *StructuralCloner) CloneYieldStmt(n *YieldStmt) Node {
	return NewYieldStmt(n.Loc(), cloneExpr(c, n.Value))
}
func (c *StructuralCloner) CloneAssertStmt(n *AssertStmt) Node {
	return NewAssertStmt(n.Loc(), cloneExpr(c, n.Cond))
}
func (c *StructuralCloner) CloneAssumeStmt(n *AssumeStmt) Node {
	return NewAssumeStmt(n.Loc(), cloneExpr(c, n.Target), cloneExpr(c, n.Value))
}
func (c *StructuralCloner) CloneImportStmt(n *ImportStmt) Node {
	return NewImportStmt(n.Loc(), n.Path)
}
func (c *StructuralCloner) ClonePackageDecl(n *PackageDecl) Node {
	out := NewPackageDecl(n.Loc(), n.Name)
	out.Exports = append([]ExportSpec(nil), n.Exports...)
	out.ExportAll = n.ExportAll
	return out
}
func (c *StructuralCloner) CloneBracesStmt(n *BracesStmt) Node {
	return NewBracesStmt(n.Loc(), cloneStmts(c, n.Statements))
}
func (c *StructuralCloner) CloneRawCodeStmt(n *RawCodeStmt) Node {
	return NewRawCodeStmt(n.Loc(), n.Code)
}
func (c *StructuralCloner) CloneAssignStmt(n *AssignStmt) Node {
	out := NewAssignStmt(n.Loc(), cloneExpr(c, n.Left), cloneExpr(c, n.Right))
	out.Sugar = n.Sugar
	return out
}
func (c *StructuralCloner) CloneInstantiatedStmt(n *InstantiatedStmt) Node {
	return NewInstantiatedStmt(n.Loc(), n.Name, cloneTypes(c, n.TypeArgs))
}

func (c *StructuralCloner) CloneProgram(n *Program) Node {
	out := NewProgram(n.File)
	if n.Package != nil {
		out.Package = n.Package.AcceptCloner(c).(*PackageDecl)
	}
	for _, imp := range n.Imports {
		out.Imports = append(out.Imports, imp.AcceptCloner(c).(*ImportStmt))
	}
	out.Decls = cloneStmts(c, n.Decls)
	return out
}
