package ast

import (
	"math/big"

	"github.com/fernvibe/fernc/fernsrc"
)

// --- literals ---

type BoolLiteral struct {
	exprBase
	Value bool
}

func NewBoolLiteral(loc fernsrc.Location, v bool) *BoolLiteral {
	return &BoolLiteral{exprBase: newExprBase(loc), Value: v}
}
func (e *BoolLiteral) Accept(v Visitor)              { v.VisitBoolLiteral(e) }
func (e *BoolLiteral) AcceptModifier(m Modifier) Node { return m.ModifyBoolLiteral(e) }
func (e *BoolLiteral) AcceptCloner(c Cloner) Node     { return c.CloneBoolLiteral(e) }

type IntLiteral struct {
	exprBase
	Value *big.Int
}

func NewIntLiteral(loc fernsrc.Location, v *big.Int) *IntLiteral {
	return &IntLiteral{exprBase: newExprBase(loc), Value: v}
}
func (e *IntLiteral) Accept(v Visitor)              { v.VisitIntLiteral(e) }
func (e *IntLiteral) AcceptModifier(m Modifier) Node { return m.ModifyIntLiteral(e) }
func (e *IntLiteral) AcceptCloner(c Cloner) Node     { return c.CloneIntLiteral(e) }

type RealLiteral struct {
	exprBase
	Value float64
}

func NewRealLiteral(loc fernsrc.Location, v float64) *RealLiteral {
	return &RealLiteral{exprBase: newExprBase(loc), Value: v}
}
func (e *RealLiteral) Accept(v Visitor)              { v.VisitRealLiteral(e) }
func (e *RealLiteral) AcceptModifier(m Modifier) Node { return m.ModifyRealLiteral(e) }
func (e *RealLiteral) AcceptCloner(c Cloner) Node     { return c.CloneRealLiteral(e) }

type StringLiteral struct {
	exprBase
	Value string
}

func NewStringLiteral(loc fernsrc.Location, v string) *StringLiteral {
	return &StringLiteral{exprBase: newExprBase(loc), Value: v}
}
func (e *StringLiteral) Accept(v Visitor)              { v.VisitStringLiteral(e) }
func (e *StringLiteral) AcceptModifier(m Modifier) Node { return m.ModifyStringLiteral(e) }
func (e *StringLiteral) AcceptCloner(c Cloner) Node     { return c.CloneStringLiteral(e) }

type NilLiteral struct{ exprBase }

func NewNilLiteral(loc fernsrc.Location) *NilLiteral { return &NilLiteral{newExprBase(loc)} }
func (e *NilLiteral) Accept(v Visitor)                { v.VisitNilLiteral(e) }
func (e *NilLiteral) AcceptModifier(m Modifier) Node   { return m.ModifyNilLiteral(e) }
func (e *NilLiteral) AcceptCloner(c Cloner) Node       { return c.CloneNilLiteral(e) }

// --- identifiers ---

// IdentKind tags what an Identifier resolves to. Rather than five
// distinct node types (Identifier<Param>, Identifier<LocalVariable>,
// ...), fernc uses one struct with a Kind tag and a nilable Target: a
// tagged struct is the idiomatic Go equivalent of five near-identical
// resolved variants and avoids the duplication.
type IdentKind int

const (
	IdentUnresolved IdentKind = iota
	IdentParameter
	IdentLocalVariable
	IdentMemberVariable
	IdentGlobalVariable
	// IdentClassRef marks an identifier that resolved to a class/basic
	// type name rather than a value -- the constructor-call position
	// (§4.3: `ClassName(args)`), distinguished from a value-producing
	// identifier so CallExpr resolution can route it to constructor
	// checking instead of overload resolution.
	IdentClassRef
)

type Identifier struct {
	exprBase
	Name   string
	Kind   IdentKind
	Target Decl // nil until ResolverSource resolves it
}

func NewIdentifier(loc fernsrc.Location, name string) *Identifier {
	return &Identifier{exprBase: newExprBase(loc), Name: name, Kind: IdentUnresolved}
}
func (e *Identifier) Accept(v Visitor)              { v.VisitIdentifier(e) }
func (e *Identifier) AcceptModifier(m Modifier) Node { return m.ModifyIdentifier(e) }
func (e *Identifier) AcceptCloner(c Cloner) Node     { return c.CloneIdentifier(e) }

// OverloadedKind tags which overloaded-dictionary category an
// OverloadedIdentifier refers to.
type OverloadedKind int

const (
	OverloadFunction OverloadedKind = iota
	OverloadFiber
	OverloadMemberFunction
	OverloadMemberFiber
	OverloadBinaryOperator
	OverloadUnaryOperator
)

// OverloadedIdentifier names an overloaded-set member reference; its
// Set is resolved by ResolverSource and narrowed to a single Target by
// call resolution (§4.3).
type OverloadedIdentifier struct {
	exprBase
	Name   string
	Kind   OverloadedKind
	Set    OverloadSet
	Target Decl // the single most-specific match, once a call resolves it
}

func NewOverloadedIdentifier(loc fernsrc.Location, name string, kind OverloadedKind) *OverloadedIdentifier {
	return &OverloadedIdentifier{exprBase: newExprBase(loc), Name: name, Kind: kind}
}
func (e *OverloadedIdentifier) Accept(v Visitor)              { v.VisitOverloadedIdentifier(e) }
func (e *OverloadedIdentifier) AcceptModifier(m Modifier) Node { return m.ModifyOverloadedIdentifier(e) }
func (e *OverloadedIdentifier) AcceptCloner(c Cloner) Node     { return c.CloneOverloadedIdentifier(e) }

// --- calls ---

type CallExpr struct {
	exprBase
	Callee Expression
	Args   []Expression
	// TypeArgs holds explicit generic type arguments, e.g. `f<Real>(x)`.
	TypeArgs []Type

	// ConstructedClass is set by call resolution when Callee names a
	// class type (§4.3: `ClassName(args)` is a constructor call, not an
	// overload-set call).
	ConstructedClass *ClassDecl
	// Target is set when Callee resolves to a single overloaded
	// function/fiber/member-function/member-fiber declaration.
	Target Decl
}

func NewCallExpr(loc fernsrc.Location, callee Expression, args []Expression, typeArgs []Type) *CallExpr {
	return &CallExpr{exprBase: newExprBase(loc), Callee: callee, Args: args, TypeArgs: typeArgs}
}
func (e *CallExpr) Accept(v Visitor)              { v.VisitCallExpr(e) }
func (e *CallExpr) AcceptModifier(m Modifier) Node { return m.ModifyCallExpr(e) }
func (e *CallExpr) AcceptCloner(c Cloner) Node     { return c.CloneCallExpr(e) }

type BinaryCallExpr struct {
	exprBase
	Operator string
	Left     Expression
	Right    Expression
	Target   Decl // resolved OperatorDecl
}

func NewBinaryCallExpr(loc fernsrc.Location, op string, l, r Expression) *BinaryCallExpr {
	return &BinaryCallExpr{exprBase: newExprBase(loc), Operator: op, Left: l, Right: r}
}
func (e *BinaryCallExpr) Accept(v Visitor)              { v.VisitBinaryCallExpr(e) }
func (e *BinaryCallExpr) AcceptModifier(m Modifier) Node { return m.ModifyBinaryCallExpr(e) }
func (e *BinaryCallExpr) AcceptCloner(c Cloner) Node     { return c.CloneBinaryCallExpr(e) }

type UnaryCallExpr struct {
	exprBase
	Operator string
	Operand  Expression
	Target   Decl
}

func NewUnaryCallExpr(loc fernsrc.Location, op string, operand Expression) *UnaryCallExpr {
	return &UnaryCallExpr{exprBase: newExprBase(loc), Operator: op, Operand: operand}
}
func (e *UnaryCallExpr) Accept(v Visitor)              { v.VisitUnaryCallExpr(e) }
func (e *UnaryCallExpr) AcceptModifier(m Modifier) Node { return m.ModifyUnaryCallExpr(e) }
func (e *UnaryCallExpr) AcceptCloner(c Cloner) Node     { return c.CloneUnaryCallExpr(e) }

// --- assignment, member/global access, this/super ---

type AssignExpr struct {
	exprBase
	Left  Expression
	Right Expression
}

func NewAssignExpr(loc fernsrc.Location, l, r Expression) *AssignExpr {
	return &AssignExpr{exprBase: newExprBase(loc), Left: l, Right: r}
}
func (e *AssignExpr) Accept(v Visitor)              { v.VisitAssignExpr(e) }
func (e *AssignExpr) AcceptModifier(m Modifier) Node { return m.ModifyAssignExpr(e) }
func (e *AssignExpr) AcceptCloner(c Cloner) Node     { return c.CloneAssignExpr(e) }

type MemberExpr struct {
	exprBase
	Object Expression
	Name   string
	Target Decl
	// Set is non-nil when Name names a member-function/member-fiber
	// overload set rather than a single member variable (§4.1); a
	// CallExpr whose Callee is such a MemberExpr resolves against Set
	// instead of treating the MemberExpr itself as a value.
	Set OverloadSet
}

func NewMemberExpr(loc fernsrc.Location, obj Expression, name string) *MemberExpr {
	return &MemberExpr{exprBase: newExprBase(loc), Object: obj, Name: name}
}
func (e *MemberExpr) Accept(v Visitor)              { v.VisitMemberExpr(e) }
func (e *MemberExpr) AcceptModifier(m Modifier) Node { return m.ModifyMemberExpr(e) }
func (e *MemberExpr) AcceptCloner(c Cloner) Node     { return c.CloneMemberExpr(e) }

type GlobalExpr struct {
	exprBase
	Name   string
	Target Decl
}

func NewGlobalExpr(loc fernsrc.Location, name string) *GlobalExpr {
	return &GlobalExpr{exprBase: newExprBase(loc), Name: name}
}
func (e *GlobalExpr) Accept(v Visitor)              { v.VisitGlobalExpr(e) }
func (e *GlobalExpr) AcceptModifier(m Modifier) Node { return m.ModifyGlobalExpr(e) }
func (e *GlobalExpr) AcceptCloner(c Cloner) Node     { return c.CloneGlobalExpr(e) }

type SuperExpr struct{ exprBase }

func NewSuperExpr(loc fernsrc.Location) *SuperExpr { return &SuperExpr{newExprBase(loc)} }
func (e *SuperExpr) Accept(v Visitor)               { v.VisitSuperExpr(e) }
func (e *SuperExpr) AcceptModifier(m Modifier) Node  { return m.ModifySuperExpr(e) }
func (e *SuperExpr) AcceptCloner(c Cloner) Node      { return c.CloneSuperExpr(e) }

type ThisExpr struct{ exprBase }

func NewThisExpr(loc fernsrc.Location) *ThisExpr { return &ThisExpr{newExprBase(loc)} }
func (e *ThisExpr) Accept(v Visitor)               { v.VisitThisExpr(e) }
func (e *ThisExpr) AcceptModifier(m Modifier) Node  { return m.ModifyThisExpr(e) }
func (e *ThisExpr) AcceptCloner(c Cloner) Node      { return c.CloneThisExpr(e) }

// --- array/index/range/span ---

type SliceExpr struct {
	exprBase
	Array   Expression
	Indices []Expression
}

func NewSliceExpr(loc fernsrc.Location, array Expression, indices []Expression) *SliceExpr {
	return &SliceExpr{exprBase: newExprBase(loc), Array: array, Indices: indices}
}
func (e *SliceExpr) Accept(v Visitor)              { v.VisitSliceExpr(e) }
func (e *SliceExpr) AcceptModifier(m Modifier) Node { return m.ModifySliceExpr(e) }
func (e *SliceExpr) AcceptCloner(c Cloner) Node     { return c.CloneSliceExpr(e) }

type RangeExpr struct {
	exprBase
	Lower Expression
	Upper Expression
}

func NewRangeExpr(loc fernsrc.Location, lo, hi Expression) *RangeExpr {
	return &RangeExpr{exprBase: newExprBase(loc), Lower: lo, Upper: hi}
}
func (e *RangeExpr) Accept(v Visitor)              { v.VisitRangeExpr(e) }
func (e *RangeExpr) AcceptModifier(m Modifier) Node { return m.ModifyRangeExpr(e) }
func (e *RangeExpr) AcceptCloner(c Cloner) Node     { return c.CloneRangeExpr(e) }

type IndexExpr struct {
	exprBase
	Array Expression
	Index Expression
}

func NewIndexExpr(loc fernsrc.Location, array, index Expression) *IndexExpr {
	return &IndexExpr{exprBase: newExprBase(loc), Array: array, Index: index}
}
func (e *IndexExpr) Accept(v Visitor)              { v.VisitIndexExpr(e) }
func (e *IndexExpr) AcceptModifier(m Modifier) Node { return m.ModifyIndexExpr(e) }
func (e *IndexExpr) AcceptCloner(c Cloner) Node     { return c.CloneIndexExpr(e) }

type SpanExpr struct {
	exprBase
	Array Expression
	Range *RangeExpr
}

func NewSpanExpr(loc fernsrc.Location, array Expression, r *RangeExpr) *SpanExpr {
	return &SpanExpr{exprBase: newExprBase(loc), Array: array, Range: r}
}
func (e *SpanExpr) Accept(v Visitor)              { v.VisitSpanExpr(e) }
func (e *SpanExpr) AcceptModifier(m Modifier) Node { return m.ModifySpanExpr(e) }
func (e *SpanExpr) AcceptCloner(c Cloner) Node     { return c.CloneSpanExpr(e) }

// --- wrappers ---

type BracesExpr struct {
	exprBase
	Inner Expression
}

func NewBracesExpr(loc fernsrc.Location, inner Expression) *BracesExpr {
	return &BracesExpr{exprBase: newExprBase(loc), Inner: inner}
}
func (e *BracesExpr) Accept(v Visitor)              { v.VisitBracesExpr(e) }
func (e *BracesExpr) AcceptModifier(m Modifier) Node { return m.ModifyBracesExpr(e) }
func (e *BracesExpr) AcceptCloner(c Cloner) Node     { return c.CloneBracesExpr(e) }

type ParensExpr struct {
	exprBase
	Inner Expression
}

func NewParensExpr(loc fernsrc.Location, inner Expression) *ParensExpr {
	return &ParensExpr{exprBase: newExprBase(loc), Inner: inner}
}
func (e *ParensExpr) Accept(v Visitor)              { v.VisitParensExpr(e) }
func (e *ParensExpr) AcceptModifier(m Modifier) Node { return m.ModifyParensExpr(e) }
func (e *ParensExpr) AcceptCloner(c Cloner) Node     { return c.CloneParensExpr(e) }

// SequenceExpr is a `{a, b, c}` sequence literal; its element type is
// the `common` least-upper-bound of its elements (§4.2, CastException/
// SequenceException cases).
type SequenceExpr struct {
	exprBase
	Elements []Expression
}

func NewSequenceExpr(loc fernsrc.Location, elems []Expression) *SequenceExpr {
	return &SequenceExpr{exprBase: newExprBase(loc), Elements: elems}
}
func (e *SequenceExpr) Accept(v Visitor)              { v.VisitSequenceExpr(e) }
func (e *SequenceExpr) AcceptModifier(m Modifier) Node { return m.ModifySequenceExpr(e) }
func (e *SequenceExpr) AcceptCloner(c Cloner) Node     { return c.CloneSequenceExpr(e) }

// --- lambda ---

type LambdaExpr struct {
	exprBase
	Params     []*ParameterDecl
	ReturnType Type
	Body       Statement
}

func NewLambdaExpr(loc fernsrc.Location, params []*ParameterDecl, ret Type, body Statement) *LambdaExpr {
	return &LambdaExpr{exprBase: newExprBase(loc), Params: params, ReturnType: ret, Body: body}
}
func (e *LambdaExpr) Accept(v Visitor)              { v.VisitLambdaExpr(e) }
func (e *LambdaExpr) AcceptModifier(m Modifier) Node { return m.ModifyLambdaExpr(e) }
func (e *LambdaExpr) AcceptCloner(c Cloner) Node     { return c.CloneLambdaExpr(e) }

// --- cast / query / get ---

type CastExpr struct {
	exprBase
	Operand Expression
	Target  Type
}

func NewCastExpr(loc fernsrc.Location, operand Expression, target Type) *CastExpr {
	return &CastExpr{exprBase: newExprBase(loc), Operand: operand, Target: target}
}
func (e *CastExpr) Accept(v Visitor)              { v.VisitCastExpr(e) }
func (e *CastExpr) AcceptModifier(m Modifier) Node { return m.ModifyCastExpr(e) }
func (e *CastExpr) AcceptCloner(c Cloner) Node     { return c.CloneCastExpr(e) }

// QueryExpr is the `e?` has-value test on an optional or fiber.
type QueryExpr struct {
	exprBase
	Operand Expression
}

func NewQueryExpr(loc fernsrc.Location, operand Expression) *QueryExpr {
	return &QueryExpr{exprBase: newExprBase(loc), Operand: operand}
}
func (e *QueryExpr) Accept(v Visitor)              { v.VisitQueryExpr(e) }
func (e *QueryExpr) AcceptModifier(m Modifier) Node { return m.ModifyQueryExpr(e) }
func (e *QueryExpr) AcceptCloner(c Cloner) Node     { return c.CloneQueryExpr(e) }

// GetExpr is the `e!` force-unwrap on an optional or fiber.
type GetExpr struct {
	exprBase
	Operand Expression
}

func NewGetExpr(loc fernsrc.Location, operand Expression) *GetExpr {
	return &GetExpr{exprBase: newExprBase(loc), Operand: operand}
}
func (e *GetExpr) Accept(v Visitor)              { v.VisitGetExpr(e) }
func (e *GetExpr) AcceptModifier(m Modifier) Node { return m.ModifyGetExpr(e) }
func (e *GetExpr) AcceptCloner(c Cloner) Node     { return c.CloneGetExpr(e) }

// --- parameter / local-variable declarations (expression-position) ---

type ParameterDecl struct {
	exprBase
	Name    string
	TypeAnn Type
	Default Expression // optional default value
}

func NewParameterDecl(loc fernsrc.Location, name string, typeAnn Type, def Expression) *ParameterDecl {
	return &ParameterDecl{exprBase: newExprBase(loc), Name: name, TypeAnn: typeAnn, Default: def}
}
func (e *ParameterDecl) Accept(v Visitor)              { v.VisitParameterDecl(e) }
func (e *ParameterDecl) AcceptModifier(m Modifier) Node { return m.ModifyParameterDecl(e) }
func (e *ParameterDecl) AcceptCloner(c Cloner) Node     { return c.CloneParameterDecl(e) }
func (e *ParameterDecl) DeclName() string               { return e.Name }

type LocalVariableDecl struct {
	exprBase
	Name    string
	TypeAnn Type // may be UnknownType when declared with `auto`
	Auto    bool
	Init    Expression
}

func NewLocalVariableDecl(loc fernsrc.Location, name string, typeAnn Type, auto bool, init Expression) *LocalVariableDecl {
	return &LocalVariableDecl{exprBase: newExprBase(loc), Name: name, TypeAnn: typeAnn, Auto: auto, Init: init}
}
func (e *LocalVariableDecl) Accept(v Visitor)              { v.VisitLocalVariableDecl(e) }
func (e *LocalVariableDecl) AcceptModifier(m Modifier) Node { return m.ModifyLocalVariableDecl(e) }
func (e *LocalVariableDecl) AcceptCloner(c Cloner) Node     { return c.CloneLocalVariableDecl(e) }
func (e *LocalVariableDecl) DeclName() string               { return e.Name }

// --- generic type parameter (expression-position, e.g. trailing in a
// class's parameter list before bodies are resolved) ---

type GenericParamDecl struct {
	exprBase
	Name  string
	Bound Type // optional upper-bound type
}

func NewGenericParamDecl(loc fernsrc.Location, name string, bound Type) *GenericParamDecl {
	return &GenericParamDecl{exprBase: newExprBase(loc), Name: name, Bound: bound}
}
func (e *GenericParamDecl) Accept(v Visitor)              { v.VisitGenericParamDecl(e) }
func (e *GenericParamDecl) AcceptModifier(m Modifier) Node { return m.ModifyGenericParamDecl(e) }
func (e *GenericParamDecl) AcceptCloner(c Cloner) Node     { return c.CloneGenericParamDecl(e) }
func (e *GenericParamDecl) DeclName() string               { return e.Name }

// --- comma-separated lists (linked head/tail pairs, §3.1) ---

// ExprList is a cons-style list node used for comma-separated expression
// sequences (e.g. multi-value tuple construction, argument packs before
// they're flattened into a Go slice at the call site). Most of the
// compiler works directly with []Expression; ExprList exists so the
// parser can represent the surface-syntax List form exactly and the
// emitter can reproduce it for diagnostics quoting raw source.
type ExprList struct {
	exprBase
	Head Expression
	Tail *ExprList // nil at the end of the list
}

func NewExprList(loc fernsrc.Location, head Expression, tail *ExprList) *ExprList {
	return &ExprList{exprBase: newExprBase(loc), Head: head, Tail: tail}
}
func (e *ExprList) Accept(v Visitor)              { v.VisitExprList(e) }
func (e *ExprList) AcceptModifier(m Modifier) Node { return m.ModifyExprList(e) }
func (e *ExprList) AcceptCloner(c Cloner) Node     { return c.CloneExprList(e) }

// Slice flattens the cons-list into a plain slice for callers that don't
// care about the linked-list shape.
func (e *ExprList) Slice() []Expression {
	var out []Expression
	for n := e; n != nil; n = n.Tail {
		out = append(out, n.Head)
	}
	return out
}
