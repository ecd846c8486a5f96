package ast

// WalkVisit performs the default read-only structural recursion for a
// Visitor pass: every child of n is visited through its own Accept
// dispatch (so a pass's overrides still fire on descendants). A pass
// that wants the default behavior for a given node kind implements that
// VisitXxx method as `{ ast.WalkVisit(v, n) }`.
//
// As with WalkModify, Target/Owner/Set borrow fields are not descended
// into here.
func WalkVisit(v Visitor, n Node) {
	switch n := n.(type) {
	case *UnknownType:
		_ = n
	case *EmptyType:
		_ = n
	case *BasicTypeRef:
		_ = n
	case *ClassTypeRef:
		for _, c := range n.Args { if c != nil { c.Accept(v) } }
	case *GenericTypeRef:
		_ = n
	case *MemberTypeRef:
		if n.Qualifier != nil { n.Qualifier.Accept(v) }
	case *ArrayTypeRef:
		if n.Element != nil { n.Element.Accept(v) }
	case *TupleTypeRef:
		for _, c := range n.Elements { if c != nil { c.Accept(v) } }
	case *SequenceTypeRef:
		if n.Element != nil { n.Element.Accept(v) }
	case *FunctionTypeRef:
		if n.Params != nil { n.Params.Accept(v) }
		if n.Returns != nil { n.Returns.Accept(v) }
	case *FiberTypeRef:
		if n.Yield != nil { n.Yield.Accept(v) }
	case *OptionalTypeRef:
		if n.Element != nil { n.Element.Accept(v) }
	case *WeakTypeRef:
		if n.Element != nil { n.Element.Accept(v) }
	case *TypeListRef:
		for _, c := range n.Items { if c != nil { c.Accept(v) } }
	case *BoolLiteral:
		_ = n
	case *IntLiteral:
		_ = n
	case *RealLiteral:
		_ = n
	case *StringLiteral:
		_ = n
	case *NilLiteral:
		_ = n
	case *Identifier:
		_ = n
	case *OverloadedIdentifier:
		_ = n
	case *CallExpr:
		if n.Callee != nil { n.Callee.Accept(v) }
		for _, c := range n.Args { if c != nil { c.Accept(v) } }
		for _, c := range n.TypeArgs { if c != nil { c.Accept(v) } }
	case *BinaryCallExpr:
		if n.Left != nil { n.Left.Accept(v) }
		if n.Right != nil { n.Right.Accept(v) }
	case *UnaryCallExpr:
		if n.Operand != nil { n.Operand.Accept(v) }
	case *AssignExpr:
		if n.Left != nil { n.Left.Accept(v) }
		if n.Right != nil { n.Right.Accept(v) }
	case *MemberExpr:
		if n.Object != nil { n.Object.Accept(v) }
	case *GlobalExpr:
		_ = n
	case *SuperExpr:
		_ = n
	case *ThisExpr:
		_ = n
	case *SliceExpr:
		if n.Array != nil { n.Array.Accept(v) }
		for _, c := range n.Indices { if c != nil { c.Accept(v) } }
	case *RangeExpr:
		if n.Lower != nil { n.Lower.Accept(v) }
		if n.Upper != nil { n.Upper.Accept(v) }
	case *IndexExpr:
		if n.Array != nil { n.Array.Accept(v) }
		if n.Index != nil { n.Index.Accept(v) }
	case *SpanExpr:
		if n.Array != nil { n.Array.Accept(v) }
		if n.Range != nil { n.Range.Accept(v) }
	case *BracesExpr:
		if n.Inner != nil { n.Inner.Accept(v) }
	case *ParensExpr:
		if n.Inner != nil { n.Inner.Accept(v) }
	case *SequenceExpr:
		for _, c := range n.Elements { if c != nil { c.Accept(v) } }
	case *LambdaExpr:
		for _, c := range n.Params { if c != nil { c.Accept(v) } }
		if n.ReturnType != nil { n.ReturnType.Accept(v) }
		if n.Body != nil { n.Body.Accept(v) }
	case *CastExpr:
		if n.Operand != nil { n.Operand.Accept(v) }
		if n.Target != nil { n.Target.Accept(v) }
	case *QueryExpr:
		if n.Operand != nil { n.Operand.Accept(v) }
	case *GetExpr:
		if n.Operand != nil { n.Operand.Accept(v) }
	case *ParameterDecl:
		if n.TypeAnn != nil { n.TypeAnn.Accept(v) }
		if n.Default != nil { n.Default.Accept(v) }
	case *LocalVariableDecl:
		if n.TypeAnn != nil { n.TypeAnn.Accept(v) }
		if n.Init != nil { n.Init.Accept(v) }
	case *GenericParamDecl:
		if n.Bound != nil { n.Bound.Accept(v) }
	case *ExprList:
		if n.Head != nil { n.Head.Accept(v) }
		if n.Tail != nil { n.Tail.Accept(v) }
	case *GlobalVariableDecl:
		if n.TypeAnn != nil { n.TypeAnn.Accept(v) }
		if n.Init != nil { n.Init.Accept(v) }
	case *MemberVariableDecl:
		if n.TypeAnn != nil { n.TypeAnn.Accept(v) }
		if n.Init != nil { n.Init.Accept(v) }
	case *FunctionDecl:
		for _, c := range n.Generics { if c != nil { c.Accept(v) } }
		for _, c := range n.Params { if c != nil { c.Accept(v) } }
		if n.ReturnType != nil { n.ReturnType.Accept(v) }
		if n.Body != nil { n.Body.Accept(v) }
	case *OperatorDecl:
		for _, c := range n.Generics { if c != nil { c.Accept(v) } }
		for _, c := range n.Params { if c != nil { c.Accept(v) } }
		if n.ReturnType != nil { n.ReturnType.Accept(v) }
		if n.Body != nil { n.Body.Accept(v) }
	case *ClassDecl:
		for _, c := range n.Generics { if c != nil { c.Accept(v) } }
		if n.BaseType != nil { n.BaseType.Accept(v) }
		for _, c := range n.BaseArgs { if c != nil { c.Accept(v) } }
		for _, c := range n.Body { if c != nil { c.Accept(v) } }
	case *BasicTypeDecl:
		_ = n
	case *ProgramDecl:
		for _, c := range n.Params { if c != nil { c.Accept(v) } }
		if n.Body != nil { n.Body.Accept(v) }
	case *ExpressionStmt:
		if n.Expr != nil { n.Expr.Accept(v) }
	case *IfStmt:
		if n.Cond != nil { n.Cond.Accept(v) }
		if n.Then != nil { n.Then.Accept(v) }
		if n.Else != nil { n.Else.Accept(v) }
	case *ForStmt:
		if n.Iterable != nil { n.Iterable.Accept(v) }
		if n.Body != nil { n.Body.Accept(v) }
	case *WhileStmt:
		if n.Cond != nil { n.Cond.Accept(v) }
		if n.Body != nil { n.Body.Accept(v) }
	case *DoWhileStmt:
		if n.Body != nil { n.Body.Accept(v) }
		if n.Cond != nil { n.Cond.Accept(v) }
	case *ReturnStmt:
		if n.Value != nil { n.Value.Accept(v) }
	case *YieldStmt:
		if n.Value != nil { n.Value.Accept(v) }
	case *AssertStmt:
		if n.Cond != nil { n.Cond.Accept(v) }
	case *AssumeStmt:
		if n.Target != nil { n.Target.Accept(v) }
		if n.Value != nil { n.Value.Accept(v) }
	case *ImportStmt:
		_ = n
	case *PackageDecl:
		_ = n
	case *BracesStmt:
		for _, c := range n.Statements { if c != nil { c.Accept(v) } }
	case *RawCodeStmt:
		_ = n
	case *AssignStmt:
		if n.Left != nil { n.Left.Accept(v) }
		if n.Right != nil { n.Right.Accept(v) }
	case *InstantiatedStmt:
		for _, c := range n.TypeArgs { if c != nil { c.Accept(v) } }
	case *StmtList:
		if n.Head != nil { n.Head.Accept(v) }
		if n.Tail != nil { n.Tail.Accept(v) }
	case *Program:
		if n.Package != nil { n.Package.Accept(v) }
		for _, c := range n.Imports { if c != nil { c.Accept(v) } }
		for _, c := range n.Decls { if c != nil { c.Accept(v) } }
	}
}
