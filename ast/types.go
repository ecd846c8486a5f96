package ast

import "github.com/fernvibe/fernc/fernsrc"

// The Type nodes below are the *syntactic* type expressions the parser
// produces (§3.1). Once resolved they denote a value of types.Type (the
// resolved lattice, package `types`); the two are deliberately distinct
// so the parser never needs to import the type lattice.

// UnknownType is the parser's placeholder for a type that has not been
// written out, or has not yet been resolved.
type UnknownType struct{ typeBase }

func NewUnknownType(loc fernsrc.Location) *UnknownType { return &UnknownType{newTypeBase(loc)} }
func (t *UnknownType) Accept(v Visitor)                { v.VisitUnknownType(t) }
func (t *UnknownType) AcceptModifier(m Modifier) Node   { return m.ModifyUnknownType(t) }
func (t *UnknownType) AcceptCloner(c Cloner) Node       { return c.CloneUnknownType(t) }

// EmptyType is the unit type (functions/fibers with no return value).
type EmptyType struct{ typeBase }

func NewEmptyType(loc fernsrc.Location) *EmptyType { return &EmptyType{newTypeBase(loc)} }
func (t *EmptyType) Accept(v Visitor)               { v.VisitEmptyType(t) }
func (t *EmptyType) AcceptModifier(m Modifier) Node  { return m.ModifyEmptyType(t) }
func (t *EmptyType) AcceptCloner(c Cloner) Node      { return c.CloneEmptyType(t) }

// BasicTypeRef names a basic type (Boolean, Integer, Real, String, ...).
type BasicTypeRef struct {
	typeBase
	Name string
}

func NewBasicTypeRef(loc fernsrc.Location, name string) *BasicTypeRef {
	return &BasicTypeRef{typeBase: newTypeBase(loc), Name: name}
}
func (t *BasicTypeRef) Accept(v Visitor)              { v.VisitBasicTypeRef(t) }
func (t *BasicTypeRef) AcceptModifier(m Modifier) Node { return m.ModifyBasicTypeRef(t) }
func (t *BasicTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneBasicTypeRef(t) }

// ClassTypeRef names a class type, with optional generic type arguments
// (e.g. `Box<Integer>`).
type ClassTypeRef struct {
	typeBase
	Name    string
	Args    []Type
	Target  Decl // resolved declaration, set by the resolver passes' type lookups
}

func NewClassTypeRef(loc fernsrc.Location, name string, args []Type) *ClassTypeRef {
	return &ClassTypeRef{typeBase: newTypeBase(loc), Name: name, Args: args}
}
func (t *ClassTypeRef) Accept(v Visitor)              { v.VisitClassTypeRef(t) }
func (t *ClassTypeRef) AcceptModifier(m Modifier) Node { return m.ModifyClassTypeRef(t) }
func (t *ClassTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneClassTypeRef(t) }

// GenericTypeRef refers to a generic type parameter in scope (e.g. `T`
// inside `class Box<T>`).
type GenericTypeRef struct {
	typeBase
	Name   string
	Target Decl // resolved generic-parameter declaration
}

func NewGenericTypeRef(loc fernsrc.Location, name string) *GenericTypeRef {
	return &GenericTypeRef{typeBase: newTypeBase(loc), Name: name}
}
func (t *GenericTypeRef) Accept(v Visitor)              { v.VisitGenericTypeRef(t) }
func (t *GenericTypeRef) AcceptModifier(m Modifier) Node { return m.ModifyGenericTypeRef(t) }
func (t *GenericTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneGenericTypeRef(t) }

// MemberTypeRef is a qualified type `X.Y` (Y is a nested type of X).
type MemberTypeRef struct {
	typeBase
	Qualifier Type
	Name      string
}

func NewMemberTypeRef(loc fernsrc.Location, qual Type, name string) *MemberTypeRef {
	return &MemberTypeRef{typeBase: newTypeBase(loc), Qualifier: qual, Name: name}
}
func (t *MemberTypeRef) Accept(v Visitor)              { v.VisitMemberTypeRef(t) }
func (t *MemberTypeRef) AcceptModifier(m Modifier) Node { return m.ModifyMemberTypeRef(t) }
func (t *MemberTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneMemberTypeRef(t) }

// ArrayTypeRef is an element type plus a fixed dimension count.
type ArrayTypeRef struct {
	typeBase
	Element Type
	Ndims   int
}

func NewArrayTypeRef(loc fernsrc.Location, elem Type, ndims int) *ArrayTypeRef {
	return &ArrayTypeRef{typeBase: newTypeBase(loc), Element: elem, Ndims: ndims}
}
func (t *ArrayTypeRef) Accept(v Visitor)              { v.VisitArrayTypeRef(t) }
func (t *ArrayTypeRef) AcceptModifier(m Modifier) Node { return m.ModifyArrayTypeRef(t) }
func (t *ArrayTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneArrayTypeRef(t) }

// TupleTypeRef is a fixed-arity tuple of element types.
type TupleTypeRef struct {
	typeBase
	Elements []Type
}

func NewTupleTypeRef(loc fernsrc.Location, elems []Type) *TupleTypeRef {
	return &TupleTypeRef{typeBase: newTypeBase(loc), Elements: elems}
}
func (t *TupleTypeRef) Accept(v Visitor)              { v.VisitTupleTypeRef(t) }
func (t *TupleTypeRef) AcceptModifier(m Modifier) Node { return m.ModifyTupleTypeRef(t) }
func (t *TupleTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneTupleTypeRef(t) }

// SequenceTypeRef is an arbitrary-length homogeneous sequence.
type SequenceTypeRef struct {
	typeBase
	Element Type
}

func NewSequenceTypeRef(loc fernsrc.Location, elem Type) *SequenceTypeRef {
	return &SequenceTypeRef{typeBase: newTypeBase(loc), Element: elem}
}
func (t *SequenceTypeRef) Accept(v Visitor)              { v.VisitSequenceTypeRef(t) }
func (t *SequenceTypeRef) AcceptModifier(m Modifier) Node { return m.ModifySequenceTypeRef(t) }
func (t *SequenceTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneSequenceTypeRef(t) }

// FunctionTypeRef is a params-type plus a return type.
type FunctionTypeRef struct {
	typeBase
	Params  Type
	Returns Type
}

func NewFunctionTypeRef(loc fernsrc.Location, params, ret Type) *FunctionTypeRef {
	return &FunctionTypeRef{typeBase: newTypeBase(loc), Params: params, Returns: ret}
}
func (t *FunctionTypeRef) Accept(v Visitor)              { v.VisitFunctionTypeRef(t) }
func (t *FunctionTypeRef) AcceptModifier(m Modifier) Node { return m.ModifyFunctionTypeRef(t) }
func (t *FunctionTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneFunctionTypeRef(t) }

// FiberTypeRef wraps a yield-element type; every fiber's return type is
// always wrapped this way.
type FiberTypeRef struct {
	typeBase
	Yield Type
}

func NewFiberTypeRef(loc fernsrc.Location, yield Type) *FiberTypeRef {
	return &FiberTypeRef{typeBase: newTypeBase(loc), Yield: yield}
}
func (t *FiberTypeRef) Accept(v Visitor)              { v.VisitFiberTypeRef(t) }
func (t *FiberTypeRef) AcceptModifier(m Modifier) Node { return m.ModifyFiberTypeRef(t) }
func (t *FiberTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneFiberTypeRef(t) }

// OptionalTypeRef is the nullable wrapper `T?`.
type OptionalTypeRef struct {
	typeBase
	Element Type
}

func NewOptionalTypeRef(loc fernsrc.Location, elem Type) *OptionalTypeRef {
	return &OptionalTypeRef{typeBase: newTypeBase(loc), Element: elem}
}
func (t *OptionalTypeRef) Accept(v Visitor)              { v.VisitOptionalTypeRef(t) }
func (t *OptionalTypeRef) AcceptModifier(m Modifier) Node { return m.ModifyOptionalTypeRef(t) }
func (t *OptionalTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneOptionalTypeRef(t) }

// WeakTypeRef is the weak-pointer wrapper.
type WeakTypeRef struct {
	typeBase
	Element Type
}

func NewWeakTypeRef(loc fernsrc.Location, elem Type) *WeakTypeRef {
	return &WeakTypeRef{typeBase: newTypeBase(loc), Element: elem}
}
func (t *WeakTypeRef) Accept(v Visitor)              { v.VisitWeakTypeRef(t) }
func (t *WeakTypeRef) AcceptModifier(m Modifier) Node { return m.ModifyWeakTypeRef(t) }
func (t *WeakTypeRef) AcceptCloner(c Cloner) Node     { return c.CloneWeakTypeRef(t) }

// TypeListRef is a comma-separated list of type expressions, used for
// explicit generic type arguments (`f<Real, Integer>`).
type TypeListRef struct {
	typeBase
	Items []Type
}

func NewTypeListRef(loc fernsrc.Location, items []Type) *TypeListRef {
	return &TypeListRef{typeBase: newTypeBase(loc), Items: items}
}
func (t *TypeListRef) Accept(v Visitor)              { v.VisitTypeListRef(t) }
func (t *TypeListRef) AcceptModifier(m Modifier) Node { return m.ModifyTypeListRef(t) }
func (t *TypeListRef) AcceptCloner(c Cloner) Node     { return c.CloneTypeListRef(t) }
