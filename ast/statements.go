package ast

import (
	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/types"
)

// Annotated mixes in the modifier flags shared by several declaration
// kinds (§3.1: Named/Numbered/Scoped/Annotated/Parameterised/
// ReturnTyped/Braced mix-ins).
type Annotated struct {
	Auto     bool
	Parallel bool
	Final    bool
	Abstract bool
}

// --- global / member variable declarations ---

type GlobalVariableDecl struct {
	stmtBase
	Annotated
	Name    string
	TypeAnn Type
	Init    Expression
	// VarType is the resolved lattice type (§4.3 Pass 2/3); GlobalVariableDecl
	// is a Statement, not an Expression, so it has no exprBase.ResolvedType
	// slot of its own -- this is its equivalent.
	VarType types.Type
}

func NewGlobalVariableDecl(loc fernsrc.Location, name string, typeAnn Type, init Expression) *GlobalVariableDecl {
	return &GlobalVariableDecl{stmtBase: newStmtBase(loc), Name: name, TypeAnn: typeAnn, Init: init}
}
func (s *GlobalVariableDecl) Accept(v Visitor)              { v.VisitGlobalVariableDecl(s) }
func (s *GlobalVariableDecl) AcceptModifier(m Modifier) Node { return m.ModifyGlobalVariableDecl(s) }
func (s *GlobalVariableDecl) AcceptCloner(c Cloner) Node     { return c.CloneGlobalVariableDecl(s) }
func (s *GlobalVariableDecl) DeclName() string                { return s.Name }

type MemberVariableDecl struct {
	stmtBase
	Annotated
	Name    string
	TypeAnn Type
	Init    Expression // resolved in the class's initializer sub-scope (§4.3 Pass 3)
	VarType types.Type // resolved lattice type, see GlobalVariableDecl.VarType
}

func NewMemberVariableDecl(loc fernsrc.Location, name string, typeAnn Type, init Expression) *MemberVariableDecl {
	return &MemberVariableDecl{stmtBase: newStmtBase(loc), Name: name, TypeAnn: typeAnn, Init: init}
}
func (s *MemberVariableDecl) Accept(v Visitor)              { v.VisitMemberVariableDecl(s) }
func (s *MemberVariableDecl) AcceptModifier(m Modifier) Node { return m.ModifyMemberVariableDecl(s) }
func (s *MemberVariableDecl) AcceptCloner(c Cloner) Node     { return c.CloneMemberVariableDecl(s) }
func (s *MemberVariableDecl) DeclName() string                { return s.Name }

// --- function / fiber declarations ---

// FunctionDecl covers both free functions and member functions; Owner is
// non-nil for a member function (set by ResolverHeader when it walks a
// class body). IsFiber marks fiber declarations, unifying
// Function/Fiber/MemberFunction/MemberFiber into one overloaded-
// identifier kind at the identifier level.
type FunctionDecl struct {
	stmtBase
	Annotated
	Stateful
	Name       string
	Generics   []*GenericParamDecl
	Params     []*ParameterDecl
	ReturnType Type
	Body       Statement // nil for abstract/declaration-only
	IsFiber    bool
	Owner      *ClassDecl // non-nil for member functions/fibers

	// ResolvedReturn is the resolved lattice type of ReturnType,
	// already fiber-wrapped when IsFiber (§3.2), stamped by
	// ResolverSuper/ResolverHeader.
	ResolvedReturn types.Type

	// Instantiations holds the instantiation cache for a generic
	// declaration (§4.4): one entry per distinct argument tuple.
	Instantiations []*Instantiation
}

// Instantiation records one materialized generic instantiation: the
// concrete type arguments it was built for and the cloned declaration.
type Instantiation struct {
	Args []Type
	Decl Decl
}

func NewFunctionDecl(loc fernsrc.Location, name string, generics []*GenericParamDecl, params []*ParameterDecl, ret Type, body Statement, isFiber bool) *FunctionDecl {
	if isFiber {
		ret = NewFiberTypeRef(loc, ret)
	}
	return &FunctionDecl{stmtBase: newStmtBase(loc), Name: name, Generics: generics, Params: params, ReturnType: ret, Body: body, IsFiber: isFiber}
}
func (s *FunctionDecl) Accept(v Visitor)              { v.VisitFunctionDecl(s) }
func (s *FunctionDecl) AcceptModifier(m Modifier) Node { return m.ModifyFunctionDecl(s) }
func (s *FunctionDecl) AcceptCloner(c Cloner) Node     { return c.CloneFunctionDecl(s) }
func (s *FunctionDecl) DeclName() string                { return s.Name }
func (s *FunctionDecl) IsGeneric() bool                 { return len(s.Generics) > 0 }
func (s *FunctionDecl) IsMember() bool                  { return s.Owner != nil }

// OperatorKind distinguishes the several operator-declaration flavors
// (§3.1: "declarations ... operators").
type OperatorKind int

const (
	OpBinary OperatorKind = iota
	OpUnary
	OpConversion // `operator -> T { ... }`, registers a conversion target
	OpAssignment // custom `=` overload, registers an assignable-from type
)

type OperatorDecl struct {
	stmtBase
	Annotated
	Stateful
	Kind       OperatorKind
	Symbol     string // e.g. "+", "-", "=" (assignment); empty for conversion operators
	Generics   []*GenericParamDecl
	Params     []*ParameterDecl
	ReturnType Type // for OpConversion, the conversion target type
	Body       Statement
	Owner      *ClassDecl

	ResolvedReturn types.Type // see FunctionDecl.ResolvedReturn

	Instantiations []*Instantiation
}

func NewOperatorDecl(loc fernsrc.Location, kind OperatorKind, symbol string, params []*ParameterDecl, ret Type, body Statement) *OperatorDecl {
	return &OperatorDecl{stmtBase: newStmtBase(loc), Kind: kind, Symbol: symbol, Params: params, ReturnType: ret, Body: body}
}
func (s *OperatorDecl) Accept(v Visitor)              { v.VisitOperatorDecl(s) }
func (s *OperatorDecl) AcceptModifier(m Modifier) Node { return m.ModifyOperatorDecl(s) }
func (s *OperatorDecl) AcceptCloner(c Cloner) Node     { return c.CloneOperatorDecl(s) }
func (s *OperatorDecl) DeclName() string {
	switch s.Kind {
	case OpConversion:
		return "operator->" + s.ReturnType.Loc().String()
	default:
		return "operator" + s.Symbol
	}
}

// --- class / basic type / program declarations ---

type ClassDecl struct {
	stmtBase
	Annotated
	Stateful
	Name     string
	Generics []*GenericParamDecl

	BaseType Type // nil if no explicit base
	BaseArgs []Expression

	Body []Statement // member variable/function/fiber/operator declarations

	// Populated by ResolverSuper:
	Supers      []*ClassDecl  // transitive closure of base classes
	Conversions []types.Type  // registered conversion-operator targets
	Assignable  []types.Type  // registered assignment-operator source types

	// Two scopes: the body scope (members) and the initializer
	// sub-scope used for member default values. Typed as
	// interface{} here to avoid an ast<->scope import cycle; the
	// resolver populates them with *scope.Scope.
	BodyScope interface{}
	InitScope interface{}

	// CtorParams is the canonical constructor parameter list (§4.3 Pass
	// 3): one entry per member variable with no default initializer, in
	// declaration order, populated by ResolverHeader.
	CtorParams []*MemberVariableDecl

	Instantiations []*Instantiation
}

func NewClassDecl(loc fernsrc.Location, name string, generics []*GenericParamDecl, base Type, baseArgs []Expression, body []Statement) *ClassDecl {
	return &ClassDecl{stmtBase: newStmtBase(loc), Name: name, Generics: generics, BaseType: base, BaseArgs: baseArgs, Body: body}
}
func (s *ClassDecl) Accept(v Visitor)              { v.VisitClassDecl(s) }
func (s *ClassDecl) AcceptModifier(m Modifier) Node { return m.ModifyClassDecl(s) }
func (s *ClassDecl) AcceptCloner(c Cloner) Node     { return c.CloneClassDecl(s) }
func (s *ClassDecl) DeclName() string                { return s.Name }
func (s *ClassDecl) IsGeneric() bool                 { return len(s.Generics) > 0 }

type BasicTypeDecl struct {
	stmtBase
	Name string
}

func NewBasicTypeDecl(loc fernsrc.Location, name string) *BasicTypeDecl {
	return &BasicTypeDecl{stmtBase: newStmtBase(loc), Name: name}
}
func (s *BasicTypeDecl) Accept(v Visitor)              { v.VisitBasicTypeDecl(s) }
func (s *BasicTypeDecl) AcceptModifier(m Modifier) Node { return m.ModifyBasicTypeDecl(s) }
func (s *BasicTypeDecl) AcceptCloner(c Cloner) Node     { return c.CloneBasicTypeDecl(s) }
func (s *BasicTypeDecl) DeclName() string                { return s.Name }

type ProgramDecl struct {
	stmtBase
	Name   string
	Params []*ParameterDecl
	Body   Statement
}

func NewProgramDecl(loc fernsrc.Location, name string, params []*ParameterDecl, body Statement) *ProgramDecl {
	return &ProgramDecl{stmtBase: newStmtBase(loc), Name: name, Params: params, Body: body}
}
func (s *ProgramDecl) Accept(v Visitor)              { v.VisitProgramDecl(s) }
func (s *ProgramDecl) AcceptModifier(m Modifier) Node { return m.ModifyProgramDecl(s) }
func (s *ProgramDecl) AcceptCloner(c Cloner) Node     { return c.CloneProgramDecl(s) }
func (s *ProgramDecl) DeclName() string                { return s.Name }

// --- control flow ---

type ExpressionStmt struct {
	stmtBase
	Expr Expression
}

func NewExpressionStmt(loc fernsrc.Location, e Expression) *ExpressionStmt {
	return &ExpressionStmt{stmtBase: newStmtBase(loc), Expr: e}
}
func (s *ExpressionStmt) Accept(v Visitor)              { v.VisitExpressionStmt(s) }
func (s *ExpressionStmt) AcceptModifier(m Modifier) Node { return m.ModifyExpressionStmt(s) }
func (s *ExpressionStmt) AcceptCloner(c Cloner) Node     { return c.CloneExpressionStmt(s) }

type IfStmt struct {
	stmtBase
	Cond Expression
	Then Statement
	Else Statement // nil if no else-branch
}

func NewIfStmt(loc fernsrc.Location, cond Expression, then, els Statement) *IfStmt {
	return &IfStmt{stmtBase: newStmtBase(loc), Cond: cond, Then: then, Else: els}
}
func (s *IfStmt) Accept(v Visitor)              { v.VisitIfStmt(s) }
func (s *IfStmt) AcceptModifier(m Modifier) Node { return m.ModifyIfStmt(s) }
func (s *IfStmt) AcceptCloner(c Cloner) Node     { return c.CloneIfStmt(s) }

// ForStmt covers both `for x in seq { ... }` and a parallel variant
// (Parallel flag), collapsing separate For/Parallel statement kinds
// into one node with a modifier flag (Annotated.Parallel is not reused
// here since For's "parallel" applies to the loop, not the declaration
// it contains; ForStmt carries its own flag for clarity).
type ForStmt struct {
	stmtBase
	Parallel bool
	VarName  string
	Iterable Expression
	Body     Statement
}

func NewForStmt(loc fernsrc.Location, parallel bool, varName string, iterable Expression, body Statement) *ForStmt {
	return &ForStmt{stmtBase: newStmtBase(loc), Parallel: parallel, VarName: varName, Iterable: iterable, Body: body}
}
func (s *ForStmt) Accept(v Visitor)              { v.VisitForStmt(s) }
func (s *ForStmt) AcceptModifier(m Modifier) Node { return m.ModifyForStmt(s) }
func (s *ForStmt) AcceptCloner(c Cloner) Node     { return c.CloneForStmt(s) }

type WhileStmt struct {
	stmtBase
	Cond Expression
	Body Statement
}

func NewWhileStmt(loc fernsrc.Location, cond Expression, body Statement) *WhileStmt {
	return &WhileStmt{stmtBase: newStmtBase(loc), Cond: cond, Body: body}
}
func (s *WhileStmt) Accept(v Visitor)              { v.VisitWhileStmt(s) }
func (s *WhileStmt) AcceptModifier(m Modifier) Node { return m.ModifyWhileStmt(s) }
func (s *WhileStmt) AcceptCloner(c Cloner) Node     { return c.CloneWhileStmt(s) }

type DoWhileStmt struct {
	stmtBase
	Body Statement
	Cond Expression
}

func NewDoWhileStmt(loc fernsrc.Location, body Statement, cond Expression) *DoWhileStmt {
	return &DoWhileStmt{stmtBase: newStmtBase(loc), Body: body, Cond: cond}
}
func (s *DoWhileStmt) Accept(v Visitor)              { v.VisitDoWhileStmt(s) }
func (s *DoWhileStmt) AcceptModifier(m Modifier) Node { return m.ModifyDoWhileStmt(s) }
func (s *DoWhileStmt) AcceptCloner(c Cloner) Node     { return c.CloneDoWhileStmt(s) }

type ReturnStmt struct {
	stmtBase
	Value Expression // nil for a bare `return`
}

func NewReturnStmt(loc fernsrc.Location, value Expression) *ReturnStmt {
	return &ReturnStmt{stmtBase: newStmtBase(loc), Value: value}
}
func (s *ReturnStmt) Accept(v Visitor)              { v.VisitReturnStmt(s) }
func (s *ReturnStmt) AcceptModifier(m Modifier) Node { return m.ModifyReturnStmt(s) }
func (s *ReturnStmt) AcceptCloner(c Cloner) Node     { return c.CloneReturnStmt(s) }

type YieldStmt struct {
	stmtBase
	Value Expression
}

func NewYieldStmt(loc fernsrc.Location, value Expression) *YieldStmt {
	return &YieldStmt{stmtBase: newStmtBase(loc), Value: value}
}
func (s *YieldStmt) Accept(v Visitor)              { v.VisitYieldStmt(s) }
func (s *YieldStmt) AcceptModifier(m Modifier) Node { return m.ModifyYieldStmt(s) }
func (s *YieldStmt) AcceptCloner(c Cloner) Node     { return c.CloneYieldStmt(s) }

type AssertStmt struct {
	stmtBase
	Cond Expression
}

func NewAssertStmt(loc fernsrc.Location, cond Expression) *AssertStmt {
	return &AssertStmt{stmtBase: newStmtBase(loc), Cond: cond}
}
func (s *AssertStmt) Accept(v Visitor)              { v.VisitAssertStmt(s) }
func (s *AssertStmt) AcceptModifier(m Modifier) Node { return m.ModifyAssertStmt(s) }
func (s *AssertStmt) AcceptCloner(c Cloner) Node     { return c.CloneAssertStmt(s) }

type AssumeStmt struct {
	stmtBase
	Target Expression // the random variable / distribution name being assumed
	Value  Expression
}

func NewAssumeStmt(loc fernsrc.Location, target, value Expression) *AssumeStmt {
	return &AssumeStmt{stmtBase: newStmtBase(loc), Target: target, Value: value}
}
func (s *AssumeStmt) Accept(v Visitor)              { v.VisitAssumeStmt(s) }
func (s *AssumeStmt) AcceptModifier(m Modifier) Node { return m.ModifyAssumeStmt(s) }
func (s *AssumeStmt) AcceptCloner(c Cloner) Node     { return c.CloneAssumeStmt(s) }

type ImportStmt struct {
	stmtBase
	Path string
}

func NewImportStmt(loc fernsrc.Location, path string) *ImportStmt {
	return &ImportStmt{stmtBase: newStmtBase(loc), Path: path}
}
func (s *ImportStmt) Accept(v Visitor)              { v.VisitImportStmt(s) }
func (s *ImportStmt) AcceptModifier(m Modifier) Node { return m.ModifyImportStmt(s) }
func (s *ImportStmt) AcceptCloner(c Cloner) Node     { return c.CloneImportStmt(s) }

// ExportSpec describes one entry of a package's export list, supporting
// module re-exports as well as local symbol exports (see SPEC_FULL.md
// §3).
type ExportSpec struct {
	Symbol      string
	ModuleName  string
	Symbols     []string
	ReexportAll bool
}

func (es ExportSpec) IsReexport() bool { return es.ModuleName != "" }

type PackageDecl struct {
	stmtBase
	Name      string
	Exports   []ExportSpec
	ExportAll bool
}

func NewPackageDecl(loc fernsrc.Location, name string) *PackageDecl {
	return &PackageDecl{stmtBase: newStmtBase(loc), Name: name}
}
func (s *PackageDecl) Accept(v Visitor)              { v.VisitPackageDecl(s) }
func (s *PackageDecl) AcceptModifier(m Modifier) Node { return m.ModifyPackageDecl(s) }
func (s *PackageDecl) AcceptCloner(c Cloner) Node     { return c.ClonePackageDecl(s) }

type BracesStmt struct {
	stmtBase
	Statements []Statement
}

func NewBracesStmt(loc fernsrc.Location, stmts []Statement) *BracesStmt {
	return &BracesStmt{stmtBase: newStmtBase(loc), Statements: stmts}
}
func (s *BracesStmt) Accept(v Visitor)              { v.VisitBracesStmt(s) }
func (s *BracesStmt) AcceptModifier(m Modifier) Node { return m.ModifyBracesStmt(s) }
func (s *BracesStmt) AcceptCloner(c Cloner) Node     { return c.CloneBracesStmt(s) }

// RawCodeStmt passes target-language code through verbatim (an escape
// hatch for runtime-library glue); the emitter writes RawCodeStmt.Code
// unmodified into the generated source.
type RawCodeStmt struct {
	stmtBase
	Code string
}

func NewRawCodeStmt(loc fernsrc.Location, code string) *RawCodeStmt {
	return &RawCodeStmt{stmtBase: newStmtBase(loc), Code: code}
}
func (s *RawCodeStmt) Accept(v Visitor)              { v.VisitRawCodeStmt(s) }
func (s *RawCodeStmt) AcceptModifier(m Modifier) Node { return m.ModifyRawCodeStmt(s) }
func (s *RawCodeStmt) AcceptCloner(c Cloner) Node     { return c.CloneRawCodeStmt(s) }

type AssignStmt struct {
	stmtBase
	Left  Expression
	Right Expression
	// Sugar marks which desugaring (if any) produced this statement, for
	// diagnostics quoting the original surface form (§4.3: `<~`, `~`, `~>`).
	Sugar string
}

func NewAssignStmt(loc fernsrc.Location, l, r Expression) *AssignStmt {
	return &AssignStmt{stmtBase: newStmtBase(loc), Left: l, Right: r}
}
func (s *AssignStmt) Accept(v Visitor)              { v.VisitAssignStmt(s) }
func (s *AssignStmt) AcceptModifier(m Modifier) Node { return m.ModifyAssignStmt(s) }
func (s *AssignStmt) AcceptCloner(c Cloner) Node     { return c.CloneAssignStmt(s) }

// InstantiatedStmt is the explicit `instantiated f<Integer>;` directive
// that forces eager generic instantiation (useful for emitting a symbol
// even when no call site in this file triggers it).
type InstantiatedStmt struct {
	stmtBase
	Name     string
	TypeArgs []Type
}

func NewInstantiatedStmt(loc fernsrc.Location, name string, typeArgs []Type) *InstantiatedStmt {
	return &InstantiatedStmt{stmtBase: newStmtBase(loc), Name: name, TypeArgs: typeArgs}
}
func (s *InstantiatedStmt) Accept(v Visitor)              { v.VisitInstantiatedStmt(s) }
func (s *InstantiatedStmt) AcceptModifier(m Modifier) Node { return m.ModifyInstantiatedStmt(s) }
func (s *InstantiatedStmt) AcceptCloner(c Cloner) Node     { return c.CloneInstantiatedStmt(s) }

// StmtList is the statement-position analog of ExprList (§3.1).
type StmtList struct {
	stmtBase
	Head Statement
	Tail *StmtList
}

func NewStmtList(loc fernsrc.Location, head Statement, tail *StmtList) *StmtList {
	return &StmtList{stmtBase: newStmtBase(loc), Head: head, Tail: tail}
}
func (s *StmtList) Accept(v Visitor)              { v.VisitStmtList(s) }
func (s *StmtList) AcceptModifier(m Modifier) Node { return m.ModifyStmtList(s) }
func (s *StmtList) AcceptCloner(c Cloner) Node     { return c.CloneStmtList(s) }

func (s *StmtList) Slice() []Statement {
	var out []Statement
	for n := s; n != nil; n = n.Tail {
		out = append(out, n.Head)
	}
	return out
}

// Program is the parser's root node for one input file.
type Program struct {
	base
	File    string
	Package *PackageDecl
	Imports []*ImportStmt
	Decls   []Statement
}

func NewProgram(file string) *Program {
	return &Program{base: newBase(fernsrc.Location{File: file}), File: file}
}
func (p *Program) Accept(v Visitor)              { v.VisitProgram(p) }
func (p *Program) AcceptModifier(m Modifier) Node { return m.ModifyProgram(p) }
func (p *Program) AcceptCloner(c Cloner) Node     { return c.CloneProgram(p) }
