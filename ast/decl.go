package ast

// Decl is implemented by every node that can be the Target of a resolved
// Identifier or the element of a Scope's Dictionary/OverloadedDictionary:
// parameters, local variables, member variables, global variables,
// functions, fibers, classes, basic types, and operators.
type Decl interface {
	Node
	DeclName() string
}

// OverloadSet is the minimal view of scope.Overloaded that ast needs, to
// avoid an ast<->scope import cycle (scope indexes ast.Decl nodes, so ast
// cannot import scope).
type OverloadSet interface {
	SetName() string
}

// DeclState tracks how far a declaration has progressed through the
// four-pass pipeline, making every pass idempotent and letting a
// late-triggered generic instantiation catch up without re-resolving
// already-resolved declarations. It generalizes a per-module headers-
// analyzed/headers-analyzing/bodies-analyzed/bodies-analyzing staging
// flag down to the per-declaration granularity generic instantiation
// needs.
type DeclState int

const (
	Cloned DeclState = iota
	ResolvedTyper
	ResolvedSuper
	ResolvedHeader
	ResolvedSource
)

// Stateful is embedded by declarations that participate in the
// idempotent pipeline: classes, functions, fibers, operators.
type Stateful struct {
	State DeclState
}

func (s *Stateful) AtLeast(want DeclState) bool { return s.State >= want }
func (s *Stateful) Advance(to DeclState) {
	if to > s.State {
		s.State = to
	}
}
