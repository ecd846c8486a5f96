package ast

// Visitor is the read-only traversal species of the triple accept
// dispatch. Each node kind gets its own method -- true double dispatch,
// generalizing a single plain Accept(v Visitor) idiom into three
// visitor species.
type Visitor interface {
	VisitArrayTypeRef(n *ArrayTypeRef)
	VisitAssertStmt(n *AssertStmt)
	VisitAssignExpr(n *AssignExpr)
	VisitAssignStmt(n *AssignStmt)
	VisitAssumeStmt(n *AssumeStmt)
	VisitBasicTypeDecl(n *BasicTypeDecl)
	VisitBasicTypeRef(n *BasicTypeRef)
	VisitBinaryCallExpr(n *BinaryCallExpr)
	VisitBoolLiteral(n *BoolLiteral)
	VisitBracesExpr(n *BracesExpr)
	VisitBracesStmt(n *BracesStmt)
	VisitCallExpr(n *CallExpr)
	VisitCastExpr(n *CastExpr)
	VisitClassDecl(n *ClassDecl)
	VisitClassTypeRef(n *ClassTypeRef)
	VisitDoWhileStmt(n *DoWhileStmt)
	VisitEmptyType(n *EmptyType)
	VisitExprList(n *ExprList)
	VisitExpressionStmt(n *ExpressionStmt)
	VisitFiberTypeRef(n *FiberTypeRef)
	VisitForStmt(n *ForStmt)
	VisitFunctionDecl(n *FunctionDecl)
	VisitFunctionTypeRef(n *FunctionTypeRef)
	VisitGenericParamDecl(n *GenericParamDecl)
	VisitGenericTypeRef(n *GenericTypeRef)
	VisitGetExpr(n *GetExpr)
	VisitGlobalExpr(n *GlobalExpr)
	VisitGlobalVariableDecl(n *GlobalVariableDecl)
	VisitIdentifier(n *Identifier)
	VisitIfStmt(n *IfStmt)
	VisitImportStmt(n *ImportStmt)
	VisitIndexExpr(n *IndexExpr)
	VisitInstantiatedStmt(n *InstantiatedStmt)
	VisitIntLiteral(n *IntLiteral)
	VisitLambdaExpr(n *LambdaExpr)
	VisitLocalVariableDecl(n *LocalVariableDecl)
	VisitMemberExpr(n *MemberExpr)
	VisitMemberTypeRef(n *MemberTypeRef)
	VisitMemberVariableDecl(n *MemberVariableDecl)
	VisitNilLiteral(n *NilLiteral)
	VisitOperatorDecl(n *OperatorDecl)
	VisitOptionalTypeRef(n *OptionalTypeRef)
	VisitOverloadedIdentifier(n *OverloadedIdentifier)
	VisitPackageDecl(n *PackageDecl)
	VisitParameterDecl(n *ParameterDecl)
	VisitParensExpr(n *ParensExpr)
	VisitProgram(n *Program)
	VisitProgramDecl(n *ProgramDecl)
	VisitQueryExpr(n *QueryExpr)
	VisitRangeExpr(n *RangeExpr)
	VisitRawCodeStmt(n *RawCodeStmt)
	VisitRealLiteral(n *RealLiteral)
	VisitReturnStmt(n *ReturnStmt)
	VisitSequenceExpr(n *SequenceExpr)
	VisitSequenceTypeRef(n *SequenceTypeRef)
	VisitSliceExpr(n *SliceExpr)
	VisitSpanExpr(n *SpanExpr)
	VisitStmtList(n *StmtList)
	VisitStringLiteral(n *StringLiteral)
	VisitSuperExpr(n *SuperExpr)
	VisitThisExpr(n *ThisExpr)
	VisitTupleTypeRef(n *TupleTypeRef)
	VisitTypeListRef(n *TypeListRef)
	VisitUnaryCallExpr(n *UnaryCallExpr)
	VisitUnknownType(n *UnknownType)
	VisitWeakTypeRef(n *WeakTypeRef)
	VisitWhileStmt(n *WhileStmt)
	VisitYieldStmt(n *YieldStmt)
}

// Modifier rewrites a node in place, returning its (possibly new)
// replacement. Used by the resolver passes and by rewrite-then-resolve
// desugarings (§4.3).
type Modifier interface {
	ModifyArrayTypeRef(n *ArrayTypeRef) Node
	ModifyAssertStmt(n *AssertStmt) Node
	ModifyAssignExpr(n *AssignExpr) Node
	ModifyAssignStmt(n *AssignStmt) Node
	ModifyAssumeStmt(n *AssumeStmt) Node
	ModifyBasicTypeDecl(n *BasicTypeDecl) Node
	ModifyBasicTypeRef(n *BasicTypeRef) Node
	ModifyBinaryCallExpr(n *BinaryCallExpr) Node
	ModifyBoolLiteral(n *BoolLiteral) Node
	ModifyBracesExpr(n *BracesExpr) Node
	ModifyBracesStmt(n *BracesStmt) Node
	ModifyCallExpr(n *CallExpr) Node
	ModifyCastExpr(n *CastExpr) Node
	ModifyClassDecl(n *ClassDecl) Node
	ModifyClassTypeRef(n *ClassTypeRef) Node
	ModifyDoWhileStmt(n *DoWhileStmt) Node
	ModifyEmptyType(n *EmptyType) Node
	ModifyExprList(n *ExprList) Node
	ModifyExpressionStmt(n *ExpressionStmt) Node
	ModifyFiberTypeRef(n *FiberTypeRef) Node
	ModifyForStmt(n *ForStmt) Node
	ModifyFunctionDecl(n *FunctionDecl) Node
	ModifyFunctionTypeRef(n *FunctionTypeRef) Node
	ModifyGenericParamDecl(n *GenericParamDecl) Node
	ModifyGenericTypeRef(n *GenericTypeRef) Node
	ModifyGetExpr(n *GetExpr) Node
	ModifyGlobalExpr(n *GlobalExpr) Node
	ModifyGlobalVariableDecl(n *GlobalVariableDecl) Node
	ModifyIdentifier(n *Identifier) Node
	ModifyIfStmt(n *IfStmt) Node
	ModifyImportStmt(n *ImportStmt) Node
	ModifyIndexExpr(n *IndexExpr) Node
	ModifyInstantiatedStmt(n *InstantiatedStmt) Node
	ModifyIntLiteral(n *IntLiteral) Node
	ModifyLambdaExpr(n *LambdaExpr) Node
	ModifyLocalVariableDecl(n *LocalVariableDecl) Node
	ModifyMemberExpr(n *MemberExpr) Node
	ModifyMemberTypeRef(n *MemberTypeRef) Node
	ModifyMemberVariableDecl(n *MemberVariableDecl) Node
	ModifyNilLiteral(n *NilLiteral) Node
	ModifyOperatorDecl(n *OperatorDecl) Node
	ModifyOptionalTypeRef(n *OptionalTypeRef) Node
	ModifyOverloadedIdentifier(n *OverloadedIdentifier) Node
	ModifyPackageDecl(n *PackageDecl) Node
	ModifyParameterDecl(n *ParameterDecl) Node
	ModifyParensExpr(n *ParensExpr) Node
	ModifyProgram(n *Program) Node
	ModifyProgramDecl(n *ProgramDecl) Node
	ModifyQueryExpr(n *QueryExpr) Node
	ModifyRangeExpr(n *RangeExpr) Node
	ModifyRawCodeStmt(n *RawCodeStmt) Node
	ModifyRealLiteral(n *RealLiteral) Node
	ModifyReturnStmt(n *ReturnStmt) Node
	ModifySequenceExpr(n *SequenceExpr) Node
	ModifySequenceTypeRef(n *SequenceTypeRef) Node
	ModifySliceExpr(n *SliceExpr) Node
	ModifySpanExpr(n *SpanExpr) Node
	ModifyStmtList(n *StmtList) Node
	ModifyStringLiteral(n *StringLiteral) Node
	ModifySuperExpr(n *SuperExpr) Node
	ModifyThisExpr(n *ThisExpr) Node
	ModifyTupleTypeRef(n *TupleTypeRef) Node
	ModifyTypeListRef(n *TypeListRef) Node
	ModifyUnaryCallExpr(n *UnaryCallExpr) Node
	ModifyUnknownType(n *UnknownType) Node
	ModifyWeakTypeRef(n *WeakTypeRef) Node
	ModifyWhileStmt(n *WhileStmt) Node
	ModifyYieldStmt(n *YieldStmt) Node
}

// Cloner produces a deep copy with fresh node identity. Used by generic
// instantiation (§4.4).
type Cloner interface {
	CloneArrayTypeRef(n *ArrayTypeRef) Node
	CloneAssertStmt(n *AssertStmt) Node
	CloneAssignExpr(n *AssignExpr) Node
	CloneAssignStmt(n *AssignStmt) Node
	CloneAssumeStmt(n *AssumeStmt) Node
	CloneBasicTypeDecl(n *BasicTypeDecl) Node
	CloneBasicTypeRef(n *BasicTypeRef) Node
	CloneBinaryCallExpr(n *BinaryCallExpr) Node
	CloneBoolLiteral(n *BoolLiteral) Node
	CloneBracesExpr(n *BracesExpr) Node
	CloneBracesStmt(n *BracesStmt) Node
	CloneCallExpr(n *CallExpr) Node
	CloneCastExpr(n *CastExpr) Node
	CloneClassDecl(n *ClassDecl) Node
	CloneClassTypeRef(n *ClassTypeRef) Node
	CloneDoWhileStmt(n *DoWhileStmt) Node
	CloneEmptyType(n *EmptyType) Node
	CloneExprList(n *ExprList) Node
	CloneExpressionStmt(n *ExpressionStmt) Node
	CloneFiberTypeRef(n *FiberTypeRef) Node
	CloneForStmt(n *ForStmt) Node
	CloneFunctionDecl(n *FunctionDecl) Node
	CloneFunctionTypeRef(n *FunctionTypeRef) Node
	CloneGenericParamDecl(n *GenericParamDecl) Node
	CloneGenericTypeRef(n *GenericTypeRef) Node
	CloneGetExpr(n *GetExpr) Node
	CloneGlobalExpr(n *GlobalExpr) Node
	CloneGlobalVariableDecl(n *GlobalVariableDecl) Node
	CloneIdentifier(n *Identifier) Node
	CloneIfStmt(n *IfStmt) Node
	CloneImportStmt(n *ImportStmt) Node
	CloneIndexExpr(n *IndexExpr) Node
	CloneInstantiatedStmt(n *InstantiatedStmt) Node
	CloneIntLiteral(n *IntLiteral) Node
	CloneLambdaExpr(n *LambdaExpr) Node
	CloneLocalVariableDecl(n *LocalVariableDecl) Node
	CloneMemberExpr(n *MemberExpr) Node
	CloneMemberTypeRef(n *MemberTypeRef) Node
	CloneMemberVariableDecl(n *MemberVariableDecl) Node
	CloneNilLiteral(n *NilLiteral) Node
	CloneOperatorDecl(n *OperatorDecl) Node
	CloneOptionalTypeRef(n *OptionalTypeRef) Node
	CloneOverloadedIdentifier(n *OverloadedIdentifier) Node
	ClonePackageDecl(n *PackageDecl) Node
	CloneParameterDecl(n *ParameterDecl) Node
	CloneParensExpr(n *ParensExpr) Node
	CloneProgram(n *Program) Node
	CloneProgramDecl(n *ProgramDecl) Node
	CloneQueryExpr(n *QueryExpr) Node
	CloneRangeExpr(n *RangeExpr) Node
	CloneRawCodeStmt(n *RawCodeStmt) Node
	CloneRealLiteral(n *RealLiteral) Node
	CloneReturnStmt(n *ReturnStmt) Node
	CloneSequenceExpr(n *SequenceExpr) Node
	CloneSequenceTypeRef(n *SequenceTypeRef) Node
	CloneSliceExpr(n *SliceExpr) Node
	CloneSpanExpr(n *SpanExpr) Node
	CloneStmtList(n *StmtList) Node
	CloneStringLiteral(n *StringLiteral) Node
	CloneSuperExpr(n *SuperExpr) Node
	CloneThisExpr(n *ThisExpr) Node
	CloneTupleTypeRef(n *TupleTypeRef) Node
	CloneTypeListRef(n *TypeListRef) Node
	CloneUnaryCallExpr(n *UnaryCallExpr) Node
	CloneUnknownType(n *UnknownType) Node
	CloneWeakTypeRef(n *WeakTypeRef) Node
	CloneWhileStmt(n *WhileStmt) Node
	CloneYieldStmt(n *YieldStmt) Node
}

