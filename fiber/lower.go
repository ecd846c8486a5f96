// Package fiber computes the state-machine shape of a fiber declaration:
// which local variables become persistent member slots, how many
// suspend points ("labels") its body contains, and in what order they
// occur. The emit package consumes a *StateMachine to generate the
// fiber's backing class; fiber itself never prints target code, since
// the label/goto/switch constructs it models have no equivalent
// ast.Statement kind of their own (the fern surface language has no
// goto) -- only the emitted target language does.
package fiber

import (
	"fmt"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/types"
)

// LocalSlot is one renamed local variable promoted to a member field of
// the fiber's backing state class, so its value survives across a
// suspend/resume pair.
type LocalSlot struct {
	Name   string // unique member name, e.g. "i_1"
	Source *ast.LocalVariableDecl
	Type   types.Type
}

// YieldPoint is one `yield` statement in the fiber's body, numbered in
// the order it appears in source (§4.5: "each yield statement is
// assigned a label, in source order").
type YieldPoint struct {
	Label int
	Stmt  *ast.YieldStmt
}

// StateMachine is the lowering result for one fiber declaration.
type StateMachine struct {
	Decl       *ast.FunctionDecl
	Params     []*ast.ParameterDecl
	Locals     []*LocalSlot
	LocalNames map[*ast.LocalVariableDecl]string
	YieldType  types.Type
	Yields     []*YieldPoint
	// FinalLabel is the label the query() dispatch switches to once the
	// body runs off the end without another yield -- §4.5 "the state
	// machine's terminal label, after which every further query()
	// returns false".
	FinalLabel int
}

// Lower walks decl's body (already fully resolved -- ResolverSource has
// run) and computes its StateMachine. decl must have IsFiber set; the
// caller is expected to have checked that already (its caller,
// emit.FiberDeclClass, is only invoked for fiber declarations).
func Lower(decl *ast.FunctionDecl) *StateMachine {
	yt, _ := decl.ResolvedReturn.(types.FiberType)
	sm := &StateMachine{
		Decl:       decl,
		Params:     decl.Params,
		LocalNames: map[*ast.LocalVariableDecl]string{},
		YieldType:  yt.Yield,
	}
	v := &collector{sm: sm, counts: map[string]int{}}
	if decl.Body != nil {
		decl.Body.Accept(v)
	}
	sm.FinalLabel = len(sm.Yields) + 1
	return sm
}

// collector is a read-only ast.Visitor collecting yield points (in
// source order) and local-variable declarations (renamed on first
// occurrence) across a fiber body. It does not descend into nested
// lambda bodies: a lambda is an opaque yield boundary (DESIGN.md open
// question 1), and its own locals live on its closure, not the fiber's
// state object.
type collector struct {
	sm     *StateMachine
	counts map[string]int
}

func (c *collector) VisitYieldStmt(n *ast.YieldStmt) {
	label := len(c.sm.Yields) + 1
	c.sm.Yields = append(c.sm.Yields, &YieldPoint{Label: label, Stmt: n})
	if n.Value != nil {
		n.Value.Accept(c)
	}
}

func (c *collector) VisitLocalVariableDecl(n *ast.LocalVariableDecl) {
	c.counts[n.Name]++
	name := fmt.Sprintf("%s_%d", n.Name, c.counts[n.Name])
	c.sm.LocalNames[n] = name
	c.sm.Locals = append(c.sm.Locals, &LocalSlot{Name: name, Source: n, Type: n.ResolvedType()})
	if n.Init != nil {
		n.Init.Accept(c)
	}
}

func (c *collector) VisitLambdaExpr(n *ast.LambdaExpr) {}

func (c *collector) VisitArrayTypeRef(n *ast.ArrayTypeRef)       { ast.WalkVisit(c, n) }
func (c *collector) VisitAssertStmt(n *ast.AssertStmt)           { ast.WalkVisit(c, n) }
func (c *collector) VisitAssignExpr(n *ast.AssignExpr)           { ast.WalkVisit(c, n) }
func (c *collector) VisitAssignStmt(n *ast.AssignStmt)           { ast.WalkVisit(c, n) }
func (c *collector) VisitAssumeStmt(n *ast.AssumeStmt)           { ast.WalkVisit(c, n) }
func (c *collector) VisitBasicTypeDecl(n *ast.BasicTypeDecl)     { ast.WalkVisit(c, n) }
func (c *collector) VisitBasicTypeRef(n *ast.BasicTypeRef)       { ast.WalkVisit(c, n) }
func (c *collector) VisitBinaryCallExpr(n *ast.BinaryCallExpr)   { ast.WalkVisit(c, n) }
func (c *collector) VisitBoolLiteral(n *ast.BoolLiteral)         { ast.WalkVisit(c, n) }
func (c *collector) VisitBracesExpr(n *ast.BracesExpr)           { ast.WalkVisit(c, n) }
func (c *collector) VisitBracesStmt(n *ast.BracesStmt)           { ast.WalkVisit(c, n) }
func (c *collector) VisitCallExpr(n *ast.CallExpr)               { ast.WalkVisit(c, n) }
func (c *collector) VisitCastExpr(n *ast.CastExpr)               { ast.WalkVisit(c, n) }
func (c *collector) VisitClassDecl(n *ast.ClassDecl)             { ast.WalkVisit(c, n) }
func (c *collector) VisitClassTypeRef(n *ast.ClassTypeRef)       { ast.WalkVisit(c, n) }
func (c *collector) VisitDoWhileStmt(n *ast.DoWhileStmt)         { ast.WalkVisit(c, n) }
func (c *collector) VisitEmptyType(n *ast.EmptyType)             { ast.WalkVisit(c, n) }
func (c *collector) VisitExprList(n *ast.ExprList)               { ast.WalkVisit(c, n) }
func (c *collector) VisitExpressionStmt(n *ast.ExpressionStmt)   { ast.WalkVisit(c, n) }
func (c *collector) VisitFiberTypeRef(n *ast.FiberTypeRef)       { ast.WalkVisit(c, n) }
func (c *collector) VisitForStmt(n *ast.ForStmt)                 { ast.WalkVisit(c, n) }
func (c *collector) VisitFunctionDecl(n *ast.FunctionDecl)       { ast.WalkVisit(c, n) }
func (c *collector) VisitFunctionTypeRef(n *ast.FunctionTypeRef) { ast.WalkVisit(c, n) }
func (c *collector) VisitGenericParamDecl(n *ast.GenericParamDecl) { ast.WalkVisit(c, n) }
func (c *collector) VisitGenericTypeRef(n *ast.GenericTypeRef)   { ast.WalkVisit(c, n) }
func (c *collector) VisitGetExpr(n *ast.GetExpr)                 { ast.WalkVisit(c, n) }
func (c *collector) VisitGlobalExpr(n *ast.GlobalExpr)           { ast.WalkVisit(c, n) }
func (c *collector) VisitGlobalVariableDecl(n *ast.GlobalVariableDecl) { ast.WalkVisit(c, n) }
func (c *collector) VisitIdentifier(n *ast.Identifier)           { ast.WalkVisit(c, n) }
func (c *collector) VisitIfStmt(n *ast.IfStmt)                   { ast.WalkVisit(c, n) }
func (c *collector) VisitImportStmt(n *ast.ImportStmt)           { ast.WalkVisit(c, n) }
func (c *collector) VisitIndexExpr(n *ast.IndexExpr)             { ast.WalkVisit(c, n) }
func (c *collector) VisitInstantiatedStmt(n *ast.InstantiatedStmt) { ast.WalkVisit(c, n) }
func (c *collector) VisitIntLiteral(n *ast.IntLiteral)           { ast.WalkVisit(c, n) }
func (c *collector) VisitMemberExpr(n *ast.MemberExpr)           { ast.WalkVisit(c, n) }
func (c *collector) VisitMemberTypeRef(n *ast.MemberTypeRef)     { ast.WalkVisit(c, n) }
func (c *collector) VisitMemberVariableDecl(n *ast.MemberVariableDecl) { ast.WalkVisit(c, n) }
func (c *collector) VisitNilLiteral(n *ast.NilLiteral)           { ast.WalkVisit(c, n) }
func (c *collector) VisitOperatorDecl(n *ast.OperatorDecl)       { ast.WalkVisit(c, n) }
func (c *collector) VisitOptionalTypeRef(n *ast.OptionalTypeRef) { ast.WalkVisit(c, n) }
func (c *collector) VisitOverloadedIdentifier(n *ast.OverloadedIdentifier) { ast.WalkVisit(c, n) }
func (c *collector) VisitPackageDecl(n *ast.PackageDecl)         { ast.WalkVisit(c, n) }
func (c *collector) VisitParameterDecl(n *ast.ParameterDecl)     { ast.WalkVisit(c, n) }
func (c *collector) VisitParensExpr(n *ast.ParensExpr)           { ast.WalkVisit(c, n) }
func (c *collector) VisitProgram(n *ast.Program)                 { ast.WalkVisit(c, n) }
func (c *collector) VisitProgramDecl(n *ast.ProgramDecl)         { ast.WalkVisit(c, n) }
func (c *collector) VisitQueryExpr(n *ast.QueryExpr)             { ast.WalkVisit(c, n) }
func (c *collector) VisitRangeExpr(n *ast.RangeExpr)             { ast.WalkVisit(c, n) }
func (c *collector) VisitRawCodeStmt(n *ast.RawCodeStmt)         { ast.WalkVisit(c, n) }
func (c *collector) VisitRealLiteral(n *ast.RealLiteral)         { ast.WalkVisit(c, n) }
func (c *collector) VisitReturnStmt(n *ast.ReturnStmt)           { ast.WalkVisit(c, n) }
func (c *collector) VisitSequenceExpr(n *ast.SequenceExpr)       { ast.WalkVisit(c, n) }
func (c *collector) VisitSequenceTypeRef(n *ast.SequenceTypeRef) { ast.WalkVisit(c, n) }
func (c *collector) VisitSliceExpr(n *ast.SliceExpr)             { ast.WalkVisit(c, n) }
func (c *collector) VisitSpanExpr(n *ast.SpanExpr)               { ast.WalkVisit(c, n) }
func (c *collector) VisitStmtList(n *ast.StmtList)               { ast.WalkVisit(c, n) }
func (c *collector) VisitStringLiteral(n *ast.StringLiteral)     { ast.WalkVisit(c, n) }
func (c *collector) VisitSuperExpr(n *ast.SuperExpr)             { ast.WalkVisit(c, n) }
func (c *collector) VisitThisExpr(n *ast.ThisExpr)               { ast.WalkVisit(c, n) }
func (c *collector) VisitTupleTypeRef(n *ast.TupleTypeRef)       { ast.WalkVisit(c, n) }
func (c *collector) VisitTypeListRef(n *ast.TypeListRef)         { ast.WalkVisit(c, n) }
func (c *collector) VisitUnaryCallExpr(n *ast.UnaryCallExpr)     { ast.WalkVisit(c, n) }
func (c *collector) VisitUnknownType(n *ast.UnknownType)         { ast.WalkVisit(c, n) }
func (c *collector) VisitWeakTypeRef(n *ast.WeakTypeRef)         { ast.WalkVisit(c, n) }
func (c *collector) VisitWhileStmt(n *ast.WhileStmt)             { ast.WalkVisit(c, n) }
