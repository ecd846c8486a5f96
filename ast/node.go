// Package ast defines the untyped-then-typed syntax tree produced by the
// parser and consumed by every later pass. Every node carries an
// immutable Location and a process-unique identity (both a monotonic
// Num and a uuid.UUID), with a Node/Statement/Expression interface
// split and three visitor species (Cloner / Modifier / Visitor) instead
// of a single plain Visitor.
package ast

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/types"
)

// Node is the base interface implemented by every AST entity: every
// Expression, Statement, and Type.
type Node interface {
	Loc() fernsrc.Location
	NodeNum() uint64
	NodeUUID() uuid.UUID

	// Accept dispatches to a read-only Visitor.
	Accept(v Visitor)
	// AcceptModifier dispatches to a Modifier, which may replace the
	// node; the returned Node is the (possibly identical) replacement.
	AcceptModifier(m Modifier) Node
	// AcceptCloner dispatches to a Cloner, producing a deep copy with a
	// fresh identity.
	AcceptCloner(c Cloner) Node
}

// Expression is a Node that yields a value. ResolvedType is filled in by
// the resolver; every expression starts with a nil resolved type. It
// holds a types.Type lattice value, not a syntactic Type node -- the
// two are deliberately distinct interfaces (see the Type interface
// below).
type Expression interface {
	Node
	expressionNode()
	ResolvedType() types.Type
	SetResolvedType(types.Type)
}

// Statement is a Node executed for effect.
type Statement interface {
	Node
	statementNode()
}

// Type is a Node describing a type expression in source (as opposed to
// the resolved types.Type lattice value it denotes once resolved).
type Type interface {
	Node
	typeNode()
}

var nodeCounter uint64

func nextNum() uint64 {
	return atomic.AddUint64(&nodeCounter, 1)
}

// base is embedded by every concrete node. It is never referenced
// through an interface by callers; each concrete type forwards Loc/
// NodeNum/NodeUUID to it.
type base struct {
	num  uint64
	id   uuid.UUID
	loc  fernsrc.Location
}

func newBase(loc fernsrc.Location) base {
	return base{num: nextNum(), id: uuid.New(), loc: loc}
}

func (b base) Loc() fernsrc.Location { return b.loc }
func (b base) NodeNum() uint64       { return b.num }
func (b base) NodeUUID() uuid.UUID   { return b.id }

// exprBase adds the resolved-type slot shared by every Expression.
type exprBase struct {
	base
	typ types.Type
}

func newExprBase(loc fernsrc.Location) exprBase { return exprBase{base: newBase(loc)} }

func (e *exprBase) expressionNode()                {}
func (e *exprBase) ResolvedType() types.Type       { return e.typ }
func (e *exprBase) SetResolvedType(t types.Type)   { e.typ = t }

// stmtBase is embedded by every Statement.
type stmtBase struct{ base }

func newStmtBase(loc fernsrc.Location) stmtBase { return stmtBase{base: newBase(loc)} }

func (s *stmtBase) statementNode() {}

// typeBase is embedded by every Type (the syntactic, pre-resolution
// kind, e.g. ast.ClassTypeRef; see types.Type for the resolved lattice
// value produced from it).
type typeBase struct{ base }

func newTypeBase(loc fernsrc.Location) typeBase { return typeBase{base: newBase(loc)} }

func (t *typeBase) typeNode() {}
