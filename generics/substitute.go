package generics

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/types"
)

// substitutingModifier rewrites every reference to a generic parameter
// bound in bindings -- an *ast.GenericTypeRef, or an argument-less
// *ast.ClassTypeRef, which is how the parser spells one -- into the
// concrete ast.Type denoting its argument (§4.4 step 2). It implements
// ast.Modifier in full, delegating every other node kind to
// ast.WalkModify for the default structural recursion.
type substitutingModifier struct {
	bindings map[string]types.Type
}

func newSubstitutingModifier(bindings map[string]types.Type) *substitutingModifier {
	return &substitutingModifier{bindings: bindings}
}

func (m *substitutingModifier) ModifyGenericTypeRef(n *ast.GenericTypeRef) ast.Node {
	if t, ok := m.bindings[n.Name]; ok {
		return typeToASTType(t, n.Loc())
	}
	return n
}

func (m *substitutingModifier) ModifyArrayTypeRef(n *ast.ArrayTypeRef) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyAssertStmt(n *ast.AssertStmt) ast.Node     { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyAssignExpr(n *ast.AssignExpr) ast.Node     { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyAssignStmt(n *ast.AssignStmt) ast.Node     { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyAssumeStmt(n *ast.AssumeStmt) ast.Node     { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyBasicTypeDecl(n *ast.BasicTypeDecl) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyBasicTypeRef(n *ast.BasicTypeRef) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyBinaryCallExpr(n *ast.BinaryCallExpr) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyBoolLiteral(n *ast.BoolLiteral) ast.Node   { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyBracesExpr(n *ast.BracesExpr) ast.Node     { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyBracesStmt(n *ast.BracesStmt) ast.Node     { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyCallExpr(n *ast.CallExpr) ast.Node         { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyCastExpr(n *ast.CastExpr) ast.Node        { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyClassDecl(n *ast.ClassDecl) ast.Node      { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyClassTypeRef(n *ast.ClassTypeRef) ast.Node {
	if t, ok := m.bindings[n.Name]; ok && len(n.Args) == 0 {
		return typeToASTType(t, n.Loc())
	}
	return ast.WalkModify(m, n)
}
func (m *substitutingModifier) ModifyDoWhileStmt(n *ast.DoWhileStmt) ast.Node  { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyEmptyType(n *ast.EmptyType) ast.Node      { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyExprList(n *ast.ExprList) ast.Node        { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyExpressionStmt(n *ast.ExpressionStmt) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyFiberTypeRef(n *ast.FiberTypeRef) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyForStmt(n *ast.ForStmt) ast.Node          { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyFunctionDecl(n *ast.FunctionDecl) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyFunctionTypeRef(n *ast.FunctionTypeRef) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyGenericParamDecl(n *ast.GenericParamDecl) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyGetExpr(n *ast.GetExpr) ast.Node          { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyGlobalExpr(n *ast.GlobalExpr) ast.Node    { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyGlobalVariableDecl(n *ast.GlobalVariableDecl) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyIdentifier(n *ast.Identifier) ast.Node    { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyIfStmt(n *ast.IfStmt) ast.Node            { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyImportStmt(n *ast.ImportStmt) ast.Node    { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyIndexExpr(n *ast.IndexExpr) ast.Node      { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyInstantiatedStmt(n *ast.InstantiatedStmt) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyIntLiteral(n *ast.IntLiteral) ast.Node    { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyLambdaExpr(n *ast.LambdaExpr) ast.Node    { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyLocalVariableDecl(n *ast.LocalVariableDecl) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyMemberExpr(n *ast.MemberExpr) ast.Node    { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyMemberTypeRef(n *ast.MemberTypeRef) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyMemberVariableDecl(n *ast.MemberVariableDecl) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyNilLiteral(n *ast.NilLiteral) ast.Node    { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyOperatorDecl(n *ast.OperatorDecl) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyOptionalTypeRef(n *ast.OptionalTypeRef) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyOverloadedIdentifier(n *ast.OverloadedIdentifier) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyPackageDecl(n *ast.PackageDecl) ast.Node  { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyParameterDecl(n *ast.ParameterDecl) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyParensExpr(n *ast.ParensExpr) ast.Node    { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyProgram(n *ast.Program) ast.Node          { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyProgramDecl(n *ast.ProgramDecl) ast.Node  { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyQueryExpr(n *ast.QueryExpr) ast.Node      { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyRangeExpr(n *ast.RangeExpr) ast.Node      { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyRawCodeStmt(n *ast.RawCodeStmt) ast.Node  { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyRealLiteral(n *ast.RealLiteral) ast.Node  { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyReturnStmt(n *ast.ReturnStmt) ast.Node    { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifySequenceExpr(n *ast.SequenceExpr) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifySequenceTypeRef(n *ast.SequenceTypeRef) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifySliceExpr(n *ast.SliceExpr) ast.Node      { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifySpanExpr(n *ast.SpanExpr) ast.Node        { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyStmtList(n *ast.StmtList) ast.Node        { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyStringLiteral(n *ast.StringLiteral) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifySuperExpr(n *ast.SuperExpr) ast.Node      { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyThisExpr(n *ast.ThisExpr) ast.Node        { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyTupleTypeRef(n *ast.TupleTypeRef) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyTypeListRef(n *ast.TypeListRef) ast.Node  { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyUnaryCallExpr(n *ast.UnaryCallExpr) ast.Node { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyUnknownType(n *ast.UnknownType) ast.Node  { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyWeakTypeRef(n *ast.WeakTypeRef) ast.Node  { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyWhileStmt(n *ast.WhileStmt) ast.Node      { return ast.WalkModify(m, n) }
func (m *substitutingModifier) ModifyYieldStmt(n *ast.YieldStmt) ast.Node      { return ast.WalkModify(m, n) }
