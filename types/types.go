// Package types is the resolved type lattice every expression's
// ResolvedType ultimately points into, as opposed to the parser's
// syntactic ast.Type nodes: a Type interface, one concrete struct per
// kind, String() methods, over a closed, nominal+structural
// subtyping lattice. There is no type variable here, only concrete
// resolved types, because fernc resolves generics by instantiation
// rather than by inference.
package types

import (
	"fmt"
	"strings"
)

// Type is the resolved-type interface. Every concrete kind below
// implements the three double-dispatch lattice operations directly
// (definitelyOver/possiblyOver/commonOver), each doing a type switch on
// its argument -- the first dispatch is the ordinary method call on the
// receiver, the second is the type switch inside it.
type Type interface {
	String() string

	definitelyOver(other Type) bool
	possiblyOver(other Type) bool
	commonOver(other Type) Type
}

// BasicKind enumerates the built-in scalar kinds (§3.2).
type BasicKind int

const (
	Boolean BasicKind = iota
	Integer
	Real
	String
)

func (k BasicKind) String() string {
	switch k {
	case Boolean:
		return "Boolean"
	case Integer:
		return "Integer"
	case Real:
		return "Real"
	case String:
		return "String"
	default:
		return "?"
	}
}

// BasicType is one of the four built-in scalars. Integer definitely
// widens to Real (numeric promotion, §4.2); Real is only possibly
// compatible with Integer.
type BasicType struct{ Kind BasicKind }

func (t BasicType) String() string { return t.Kind.String() }

// ClassDecl is the minimal view of ast.ClassDecl that the type lattice
// needs (identity, the resolved base-class chain, and registered
// conversion-operator targets), kept as an interface to avoid a
// types<->ast import cycle in the other direction (ast already avoids
// importing types; types avoiding importing ast keeps the dependency
// strictly one-way, resolved by `resolve` wiring concrete
// *ast.ClassDecl values in via this interface at call sites).
type ClassDecl interface {
	DeclName() string
	Supers() []ClassDecl
	Conversions() []Type
}

// ClassType names a (possibly generic-instantiated) class.
type ClassType struct {
	Decl ClassDecl
	Args []Type // resolved generic type arguments, parallel to Decl's Generics
}

func (t ClassType) String() string {
	if len(t.Args) == 0 {
		return t.Decl.DeclName()
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Decl.DeclName() + "<" + strings.Join(parts, ", ") + ">"
}

// GenericType is an unbound generic type parameter, as seen while
// resolving a generic declaration's own body before instantiation
// substitutes it away (§4.4).
type GenericType struct{ Name string }

func (t GenericType) String() string { return t.Name }

// OptionalType is the nullable wrapper `T?`.
type OptionalType struct{ Element Type }

func (t OptionalType) String() string { return t.Element.String() + "?" }

// WeakType is the weak-reference wrapper.
type WeakType struct{ Element Type }

func (t WeakType) String() string { return "weak " + t.Element.String() }

// ArrayType is a fixed-dimension array of Element.
type ArrayType struct {
	Element Type
	Ndims   int
}

func (t ArrayType) String() string {
	return fmt.Sprintf("%s[%s]", t.Element.String(), strings.Repeat(",", t.Ndims-1))
}

// TupleType is a fixed-arity heterogeneous tuple.
type TupleType struct{ Elements []Type }

func (t TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// SequenceType is an arbitrary-length homogeneous sequence.
type SequenceType struct{ Element Type }

func (t SequenceType) String() string { return "{" + t.Element.String() + "}" }

// FunctionType is a parameter-types tuple plus a return type.
type FunctionType struct {
	Params  []Type
	Returns Type
}

func (t FunctionType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	ret := "()"
	if t.Returns != nil {
		ret = t.Returns.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + ret
}

// FiberType wraps the yield-element type (§3.2: every fiber's return
// type is always wrapped this way).
type FiberType struct{ Yield Type }

func (t FiberType) String() string { return "fiber<" + t.Yield.String() + ">" }

// MemberType is a type nested under an owning class (`Outer.Inner`).
type MemberType struct {
	Owner Type
	Name  string
}

func (t MemberType) String() string { return t.Owner.String() + "." + t.Name }

// UnknownType is the not-yet-resolved placeholder; it is both possibly
// and definitely compatible with everything, so a comparison involving
// it never reports a mismatch of its own.
type UnknownType struct{}

func (t UnknownType) String() string { return "<unknown>" }

// EmptyType is the unit type (a function/fiber with no return value).
type EmptyType struct{}

func (t EmptyType) String() string { return "()" }
