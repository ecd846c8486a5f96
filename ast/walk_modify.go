package ast

// WalkModify performs the default structural recursion for a Modifier
// pass: every child of n is rewritten through its own AcceptModifier
// dispatch (so a pass's overrides still fire on descendants), and n
// itself is returned. A pass that wants the default behavior for a
// given node kind implements that ModifyXxx method as
// `{ return ast.WalkModify(m, n) }`; a pass that wants to transform a
// node overrides it instead, calling WalkModify internally first only
// if it still wants n's immediate children visited before the
// transform runs.
//
// Target/Owner/Set fields (resolved declaration references) are borrows,
// not owners (§3.3), and are left untouched here -- a pass that needs to
// re-point one does so explicitly, not through default recursion.
func WalkModify(m Modifier, n Node) Node {
	switch n := n.(type) {
	case *UnknownType:
		return n
	case *EmptyType:
		return n
	case *BasicTypeRef:
		return n
	case *ClassTypeRef:
		for i, c := range n.Args { if c != nil { n.Args[i] = c.AcceptModifier(m).(Type) } }
		return n
	case *GenericTypeRef:
		return n
	case *MemberTypeRef:
		if n.Qualifier != nil { n.Qualifier = n.Qualifier.AcceptModifier(m).(Type) }
		return n
	case *ArrayTypeRef:
		if n.Element != nil { n.Element = n.Element.AcceptModifier(m).(Type) }
		return n
	case *TupleTypeRef:
		for i, c := range n.Elements { if c != nil { n.Elements[i] = c.AcceptModifier(m).(Type) } }
		return n
	case *SequenceTypeRef:
		if n.Element != nil { n.Element = n.Element.AcceptModifier(m).(Type) }
		return n
	case *FunctionTypeRef:
		if n.Params != nil { n.Params = n.Params.AcceptModifier(m).(Type) }
		if n.Returns != nil { n.Returns = n.Returns.AcceptModifier(m).(Type) }
		return n
	case *FiberTypeRef:
		if n.Yield != nil { n.Yield = n.Yield.AcceptModifier(m).(Type) }
		return n
	case *OptionalTypeRef:
		if n.Element != nil { n.Element = n.Element.AcceptModifier(m).(Type) }
		return n
	case *WeakTypeRef:
		if n.Element != nil { n.Element = n.Element.AcceptModifier(m).(Type) }
		return n
	case *TypeListRef:
		for i, c := range n.Items { if c != nil { n.Items[i] = c.AcceptModifier(m).(Type) } }
		return n
	case *BoolLiteral:
		return n
	case *IntLiteral:
		return n
	case *RealLiteral:
		return n
	case *StringLiteral:
		return n
	case *NilLiteral:
		return n
	case *Identifier:
		return n
	case *OverloadedIdentifier:
		return n
	case *CallExpr:
		if n.Callee != nil { n.Callee = n.Callee.AcceptModifier(m).(Expression) }
		for i, c := range n.Args { if c != nil { n.Args[i] = c.AcceptModifier(m).(Expression) } }
		for i, c := range n.TypeArgs { if c != nil { n.TypeArgs[i] = c.AcceptModifier(m).(Type) } }
		return n
	case *BinaryCallExpr:
		if n.Left != nil { n.Left = n.Left.AcceptModifier(m).(Expression) }
		if n.Right != nil { n.Right = n.Right.AcceptModifier(m).(Expression) }
		return n
	case *UnaryCallExpr:
		if n.Operand != nil { n.Operand = n.Operand.AcceptModifier(m).(Expression) }
		return n
	case *AssignExpr:
		if n.Left != nil { n.Left = n.Left.AcceptModifier(m).(Expression) }
		if n.Right != nil { n.Right = n.Right.AcceptModifier(m).(Expression) }
		return n
	case *MemberExpr:
		if n.Object != nil { n.Object = n.Object.AcceptModifier(m).(Expression) }
		return n
	case *GlobalExpr:
		return n
	case *SuperExpr:
		return n
	case *ThisExpr:
		return n
	case *SliceExpr:
		if n.Array != nil { n.Array = n.Array.AcceptModifier(m).(Expression) }
		for i, c := range n.Indices { if c != nil { n.Indices[i] = c.AcceptModifier(m).(Expression) } }
		return n
	case *RangeExpr:
		if n.Lower != nil { n.Lower = n.Lower.AcceptModifier(m).(Expression) }
		if n.Upper != nil { n.Upper = n.Upper.AcceptModifier(m).(Expression) }
		return n
	case *IndexExpr:
		if n.Array != nil { n.Array = n.Array.AcceptModifier(m).(Expression) }
		if n.Index != nil { n.Index = n.Index.AcceptModifier(m).(Expression) }
		return n
	case *SpanExpr:
		if n.Array != nil { n.Array = n.Array.AcceptModifier(m).(Expression) }
		if n.Range != nil { n.Range = n.Range.AcceptModifier(m).(*RangeExpr) }
		return n
	case *BracesExpr:
		if n.Inner != nil { n.Inner = n.Inner.AcceptModifier(m).(Expression) }
		return n
	case *ParensExpr:
		if n.Inner != nil { n.Inner = n.Inner.AcceptModifier(m).(Expression) }
		return n
	case *SequenceExpr:
		for i, c := range n.Elements { if c != nil { n.Elements[i] = c.AcceptModifier(m).(Expression) } }
		return n
	case *LambdaExpr:
		for i, c := range n.Params { if c != nil { n.Params[i] = c.AcceptModifier(m).(*ParameterDecl) } }
		if n.ReturnType != nil { n.ReturnType = n.ReturnType.AcceptModifier(m).(Type) }
		if n.Body != nil { n.Body = n.Body.AcceptModifier(m).(Statement) }
		return n
	case *CastExpr:
		if n.Operand != nil { n.Operand = n.Operand.AcceptModifier(m).(Expression) }
		if n.Target != nil { n.Target = n.Target.AcceptModifier(m).(Type) }
		return n
	case *QueryExpr:
		if n.Operand != nil { n.Operand = n.Operand.AcceptModifier(m).(Expression) }
		return n
	case *GetExpr:
		if n.Operand != nil { n.Operand = n.Operand.AcceptModifier(m).(Expression) }
		return n
	case *ParameterDecl:
		if n.TypeAnn != nil { n.TypeAnn = n.TypeAnn.AcceptModifier(m).(Type) }
		if n.Default != nil { n.Default = n.Default.AcceptModifier(m).(Expression) }
		return n
	case *LocalVariableDecl:
		if n.TypeAnn != nil { n.TypeAnn = n.TypeAnn.AcceptModifier(m).(Type) }
		if n.Init != nil { n.Init = n.Init.AcceptModifier(m).(Expression) }
		return n
	case *GenericParamDecl:
		if n.Bound != nil { n.Bound = n.Bound.AcceptModifier(m).(Type) }
		return n
	case *ExprList:
		if n.Head != nil { n.Head = n.Head.AcceptModifier(m).(Expression) }
		if n.Tail != nil { n.Tail = n.Tail.AcceptModifier(m).(*ExprList) }
		return n
	case *GlobalVariableDecl:
		if n.TypeAnn != nil { n.TypeAnn = n.TypeAnn.AcceptModifier(m).(Type) }
		if n.Init != nil { n.Init = n.Init.AcceptModifier(m).(Expression) }
		return n
	case *MemberVariableDecl:
		if n.TypeAnn != nil { n.TypeAnn = n.TypeAnn.AcceptModifier(m).(Type) }
		if n.Init != nil { n.Init = n.Init.AcceptModifier(m).(Expression) }
		return n
	case *FunctionDecl:
		for i, c := range n.Generics { if c != nil { n.Generics[i] = c.AcceptModifier(m).(*GenericParamDecl) } }
		for i, c := range n.Params { if c != nil { n.Params[i] = c.AcceptModifier(m).(*ParameterDecl) } }
		if n.ReturnType != nil { n.ReturnType = n.ReturnType.AcceptModifier(m).(Type) }
		if n.Body != nil { n.Body = n.Body.AcceptModifier(m).(Statement) }
		return n
	case *OperatorDecl:
		for i, c := range n.Generics { if c != nil { n.Generics[i] = c.AcceptModifier(m).(*GenericParamDecl) } }
		for i, c := range n.Params { if c != nil { n.Params[i] = c.AcceptModifier(m).(*ParameterDecl) } }
		if n.ReturnType != nil { n.ReturnType = n.ReturnType.AcceptModifier(m).(Type) }
		if n.Body != nil { n.Body = n.Body.AcceptModifier(m).(Statement) }
		return n
	case *ClassDecl:
		for i, c := range n.Generics { if c != nil { n.Generics[i] = c.AcceptModifier(m).(*GenericParamDecl) } }
		if n.BaseType != nil { n.BaseType = n.BaseType.AcceptModifier(m).(Type) }
		for i, c := range n.BaseArgs { if c != nil { n.BaseArgs[i] = c.AcceptModifier(m).(Expression) } }
		for i, c := range n.Body { if c != nil { n.Body[i] = c.AcceptModifier(m).(Statement) } }
		return n
	case *BasicTypeDecl:
		return n
	case *ProgramDecl:
		for i, c := range n.Params { if c != nil { n.Params[i] = c.AcceptModifier(m).(*ParameterDecl) } }
		if n.Body != nil { n.Body = n.Body.AcceptModifier(m).(Statement) }
		return n
	case *ExpressionStmt:
		if n.Expr != nil { n.Expr = n.Expr.AcceptModifier(m).(Expression) }
		return n
	case *IfStmt:
		if n.Cond != nil { n.Cond = n.Cond.AcceptModifier(m).(Expression) }
		if n.Then != nil { n.Then = n.Then.AcceptModifier(m).(Statement) }
		if n.Else != nil { n.Else = n.Else.AcceptModifier(m).(Statement) }
		return n
	case *ForStmt:
		if n.Iterable != nil { n.Iterable = n.Iterable.AcceptModifier(m).(Expression) }
		if n.Body != nil { n.Body = n.Body.AcceptModifier(m).(Statement) }
		return n
	case *WhileStmt:
		if n.Cond != nil { n.Cond = n.Cond.AcceptModifier(m).(Expression) }
		if n.Body != nil { n.Body = n.Body.AcceptModifier(m).(Statement) }
		return n
	case *DoWhileStmt:
		if n.Body != nil { n.Body = n.Body.AcceptModifier(m).(Statement) }
		if n.Cond != nil { n.Cond = n.Cond.AcceptModifier(m).(Expression) }
		return n
	case *ReturnStmt:
		if n.Value != nil { n.Value = n.Value.AcceptModifier(m).(Expression) }
		return n
	case *YieldStmt:
		if n.Value != nil { n.Value = n.Value.AcceptModifier(m).(Expression) }
		return n
	case *AssertStmt:
		if n.Cond != nil { n.Cond = n.Cond.AcceptModifier(m).(Expression) }
		return n
	case *AssumeStmt:
		if n.Target != nil { n.Target = n.Target.AcceptModifier(m).(Expression) }
		if n.Value != nil { n.Value = n.Value.AcceptModifier(m).(Expression) }
		return n
	case *ImportStmt:
		return n
	case *PackageDecl:
		return n
	case *BracesStmt:
		for i, c := range n.Statements { if c != nil { n.Statements[i] = c.AcceptModifier(m).(Statement) } }
		return n
	case *RawCodeStmt:
		return n
	case *AssignStmt:
		if n.Left != nil { n.Left = n.Left.AcceptModifier(m).(Expression) }
		if n.Right != nil { n.Right = n.Right.AcceptModifier(m).(Expression) }
		return n
	case *InstantiatedStmt:
		for i, c := range n.TypeArgs { if c != nil { n.TypeArgs[i] = c.AcceptModifier(m).(Type) } }
		return n
	case *StmtList:
		if n.Head != nil { n.Head = n.Head.AcceptModifier(m).(Statement) }
		if n.Tail != nil { n.Tail = n.Tail.AcceptModifier(m).(*StmtList) }
		return n
	case *Program:
		if n.Package != nil { n.Package = n.Package.AcceptModifier(m).(*PackageDecl) }
		for i, c := range n.Imports { if c != nil { n.Imports[i] = c.AcceptModifier(m).(*ImportStmt) } }
		for i, c := range n.Decls { if c != nil { n.Decls[i] = c.AcceptModifier(m).(Statement) } }
		return n
	}
	panic("ast: WalkModify: unhandled node type")
}
