package types

// Definitely, Possibly and Common are the three lattice operations every
// later pass (resolve, generics, fiber, emit) uses to reason about
// resolved types (§4.2):
//
//   - Definitely(from, to) reports whether a value of type from is
//     guaranteed assignable where a to is expected (implicit widening,
//     optional-wrapping, nominal subtyping). Used for assignment and
//     parameter-binding checks.
//   - Possibly(a, b) reports whether a and b could ever denote
//     compatible values, used to prune inapplicable overloads before
//     the scope.Overloaded poset search runs, and for cast checks.
//   - Common(a, b) computes the least specific type that both a and b
//     are Definitely assignable to, used for sequence-literal
//     element-type inference; ok is false when no common type exists
//     in the lattice.
//
// The cross-cutting rules (Unknown absorbs everything, T widens to T?)
// are handled once here rather than duplicated in every concrete kind's
// methods; the concrete per-kind comparisons are the double-dispatch
// part (definitelyOver/possiblyOver/commonOver): a dynamic method call
// stands in for the first dispatch and a type switch for the second.
func Definitely(from, to Type) bool {
	if isUnknown(from) || isUnknown(to) {
		return true
	}
	if toOpt, ok := to.(OptionalType); ok {
		if _, ok := from.(OptionalType); ok {
			return from.definitelyOver(to)
		}
		return Definitely(from, toOpt.Element)
	}
	if toWeak, ok := to.(WeakType); ok {
		if fromWeak, ok := from.(WeakType); ok {
			return Definitely(fromWeak.Element, toWeak.Element)
		}
		return Definitely(from, toWeak.Element)
	}
	return from.definitelyOver(to)
}

// Possibly reports whether a and b might ever compare/unify, used to
// admit a candidate into overload applicability before a definite check.
func Possibly(a, b Type) bool {
	if isUnknown(a) || isUnknown(b) {
		return true
	}
	if aOpt, ok := a.(OptionalType); ok {
		if bOpt, ok := b.(OptionalType); ok {
			return Possibly(aOpt.Element, bOpt.Element)
		}
		return Possibly(aOpt.Element, b)
	}
	if bOpt, ok := b.(OptionalType); ok {
		return Possibly(a, bOpt.Element)
	}
	if aWeak, ok := a.(WeakType); ok {
		return Possibly(aWeak.Element, b)
	}
	if bWeak, ok := b.(WeakType); ok {
		return Possibly(a, bWeak.Element)
	}
	return a.possiblyOver(b) || b.possiblyOver(a)
}

// Common computes the least common supertype of a and b, or reports ok
// = false when the lattice has none.
func Common(a, b Type) (Type, bool) {
	if isUnknown(a) {
		return b, true
	}
	if isUnknown(b) {
		return a, true
	}
	if Definitely(a, b) {
		return b, true
	}
	if Definitely(b, a) {
		return a, true
	}
	if aOpt, ok := a.(OptionalType); ok {
		if inner, ok := Common(aOpt.Element, unwrapOptional(b)); ok {
			return OptionalType{Element: inner}, true
		}
	} else if bOpt, ok := b.(OptionalType); ok {
		if inner, ok := Common(a, bOpt.Element); ok {
			return OptionalType{Element: inner}, true
		}
	}
	c := a.commonOver(b)
	if c != nil {
		return c, true
	}
	c = b.commonOver(a)
	if c != nil {
		return c, true
	}
	return nil, false
}

func isUnknown(t Type) bool {
	_, ok := t.(UnknownType)
	return ok
}

func unwrapOptional(t Type) Type {
	if o, ok := t.(OptionalType); ok {
		return o.Element
	}
	return t
}

// --- BasicType ---

func (t BasicType) definitelyOver(other Type) bool {
	o, ok := other.(BasicType)
	if !ok {
		return false
	}
	if t.Kind == o.Kind {
		return true
	}
	// Integer widens to Real unconditionally; the reverse needs an
	// explicit narrowing cast, so it is only ever Possibly.
	return t.Kind == Integer && o.Kind == Real
}

func (t BasicType) possiblyOver(other Type) bool {
	o, ok := other.(BasicType)
	if !ok {
		return false
	}
	if t.Kind == o.Kind {
		return true
	}
	numeric := func(k BasicKind) bool { return k == Integer || k == Real }
	return numeric(t.Kind) && numeric(o.Kind)
}

func (t BasicType) commonOver(other Type) Type {
	o, ok := other.(BasicType)
	if !ok {
		return nil
	}
	if t.Kind == o.Kind {
		return t
	}
	if (t.Kind == Integer && o.Kind == Real) || (t.Kind == Real && o.Kind == Integer) {
		return BasicType{Kind: Real}
	}
	return nil
}

// --- ClassType ---

func (t ClassType) definitelyOver(other Type) bool {
	if o, ok := other.(ClassType); ok && t.isOrExtends(o.Decl.DeclName()) {
		return true
	}
	// A registered conversion operator widens the lattice: C is
	// definitely U if C declared `operator -> U { ... }` (or a type U
	// is definitely reachable from the conversion's declared target).
	for _, conv := range t.Decl.Conversions() {
		if Definitely(conv, other) {
			return true
		}
	}
	return false
}

func (t ClassType) isOrExtends(name string) bool {
	if t.Decl.DeclName() == name {
		return true
	}
	for _, s := range t.Decl.Supers() {
		if s.DeclName() == name {
			return true
		}
	}
	return false
}

func (t ClassType) possiblyOver(other Type) bool {
	o, ok := other.(ClassType)
	if !ok {
		return false
	}
	return t.isOrExtends(o.Decl.DeclName()) || o.isOrExtends(t.Decl.DeclName())
}

func (t ClassType) commonOver(other Type) Type {
	o, ok := other.(ClassType)
	if !ok {
		return nil
	}
	// Walk t's own chain (itself + supers) for the first ancestor o also
	// extends; Supers is stored as a transitive closure (most specific
	// first, per ResolverSuper), so this finds the nearest common
	// ancestor along t's chain.
	candidates := append([]ClassDecl{t.Decl}, t.Decl.Supers()...)
	for _, c := range candidates {
		if o.isOrExtends(c.DeclName()) {
			return ClassType{Decl: c}
		}
	}
	return nil
}

// --- GenericType ---

func (t GenericType) definitelyOver(other Type) bool {
	o, ok := other.(GenericType)
	return ok && o.Name == t.Name
}
func (t GenericType) possiblyOver(other Type) bool { return t.definitelyOver(other) }
func (t GenericType) commonOver(other Type) Type {
	if t.definitelyOver(other) {
		return t
	}
	return nil
}

// --- OptionalType ---

func (t OptionalType) definitelyOver(other Type) bool {
	o, ok := other.(OptionalType)
	if !ok {
		return false
	}
	return Definitely(t.Element, o.Element)
}
func (t OptionalType) possiblyOver(other Type) bool {
	o, ok := other.(OptionalType)
	if !ok {
		return Possibly(t.Element, other)
	}
	return Possibly(t.Element, o.Element)
}
func (t OptionalType) commonOver(other Type) Type {
	if c, ok := Common(t.Element, unwrapOptional(other)); ok {
		return OptionalType{Element: c}
	}
	return nil
}

// --- WeakType ---

func (t WeakType) definitelyOver(other Type) bool {
	o, ok := other.(WeakType)
	return ok && Definitely(t.Element, o.Element)
}
func (t WeakType) possiblyOver(other Type) bool {
	o, ok := other.(WeakType)
	if !ok {
		return false
	}
	return Possibly(t.Element, o.Element)
}
func (t WeakType) commonOver(other Type) Type {
	o, ok := other.(WeakType)
	if !ok {
		return nil
	}
	if c, ok := Common(t.Element, o.Element); ok {
		return WeakType{Element: c}
	}
	return nil
}

// --- ArrayType ---

func (t ArrayType) definitelyOver(other Type) bool {
	o, ok := other.(ArrayType)
	return ok && t.Ndims == o.Ndims && Definitely(t.Element, o.Element)
}
func (t ArrayType) possiblyOver(other Type) bool {
	o, ok := other.(ArrayType)
	return ok && t.Ndims == o.Ndims && Possibly(t.Element, o.Element)
}
func (t ArrayType) commonOver(other Type) Type {
	o, ok := other.(ArrayType)
	if !ok || t.Ndims != o.Ndims {
		return nil
	}
	if c, ok := Common(t.Element, o.Element); ok {
		return ArrayType{Element: c, Ndims: t.Ndims}
	}
	return nil
}

// --- SequenceType ---

func (t SequenceType) definitelyOver(other Type) bool {
	o, ok := other.(SequenceType)
	return ok && Definitely(t.Element, o.Element)
}
func (t SequenceType) possiblyOver(other Type) bool {
	o, ok := other.(SequenceType)
	return ok && Possibly(t.Element, o.Element)
}
func (t SequenceType) commonOver(other Type) Type {
	o, ok := other.(SequenceType)
	if !ok {
		return nil
	}
	if c, ok := Common(t.Element, o.Element); ok {
		return SequenceType{Element: c}
	}
	return nil
}

// --- TupleType ---

func (t TupleType) definitelyOver(other Type) bool {
	o, ok := other.(TupleType)
	if !ok || len(t.Elements) != len(o.Elements) {
		return false
	}
	for i := range t.Elements {
		if !Definitely(t.Elements[i], o.Elements[i]) {
			return false
		}
	}
	return true
}
func (t TupleType) possiblyOver(other Type) bool {
	o, ok := other.(TupleType)
	if !ok || len(t.Elements) != len(o.Elements) {
		return false
	}
	for i := range t.Elements {
		if !Possibly(t.Elements[i], o.Elements[i]) {
			return false
		}
	}
	return true
}
func (t TupleType) commonOver(other Type) Type {
	o, ok := other.(TupleType)
	if !ok || len(t.Elements) != len(o.Elements) {
		return nil
	}
	out := make([]Type, len(t.Elements))
	for i := range t.Elements {
		c, ok := Common(t.Elements[i], o.Elements[i])
		if !ok {
			return nil
		}
		out[i] = c
	}
	return TupleType{Elements: out}
}

// --- FunctionType ---
// Functions are contravariant in parameters, covariant in return type.

func (t FunctionType) definitelyOver(other Type) bool {
	o, ok := other.(FunctionType)
	if !ok || len(t.Params) != len(o.Params) {
		return false
	}
	for i := range t.Params {
		if !Definitely(o.Params[i], t.Params[i]) {
			return false
		}
	}
	return definitelyReturn(t.Returns, o.Returns)
}
func (t FunctionType) possiblyOver(other Type) bool {
	o, ok := other.(FunctionType)
	return ok && len(t.Params) == len(o.Params)
}
func (t FunctionType) commonOver(other Type) Type {
	o, ok := other.(FunctionType)
	if !ok {
		return nil
	}
	if t.definitelyOver(o) {
		return t
	}
	if o.definitelyOver(t) {
		return o
	}
	return nil
}

func definitelyReturn(a, b Type) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return Definitely(a, b)
}

// --- FiberType ---

func (t FiberType) definitelyOver(other Type) bool {
	o, ok := other.(FiberType)
	return ok && Definitely(t.Yield, o.Yield)
}
func (t FiberType) possiblyOver(other Type) bool {
	o, ok := other.(FiberType)
	return ok && Possibly(t.Yield, o.Yield)
}
func (t FiberType) commonOver(other Type) Type {
	o, ok := other.(FiberType)
	if !ok {
		return nil
	}
	if c, ok := Common(t.Yield, o.Yield); ok {
		return FiberType{Yield: c}
	}
	return nil
}

// --- MemberType ---

func (t MemberType) definitelyOver(other Type) bool {
	o, ok := other.(MemberType)
	return ok && t.Name == o.Name && Definitely(t.Owner, o.Owner)
}
func (t MemberType) possiblyOver(other Type) bool {
	o, ok := other.(MemberType)
	return ok && t.Name == o.Name && Possibly(t.Owner, o.Owner)
}
func (t MemberType) commonOver(other Type) Type {
	if t.definitelyOver(other) {
		return t
	}
	return nil
}

// --- UnknownType ---
// Handled entirely by the exported Definitely/Possibly/Common wrappers;
// these exist only to satisfy the Type interface.

func (t UnknownType) definitelyOver(Type) bool { return true }
func (t UnknownType) possiblyOver(Type) bool   { return true }
func (t UnknownType) commonOver(other Type) Type {
	return other
}

// --- EmptyType ---

func (t EmptyType) definitelyOver(other Type) bool {
	_, ok := other.(EmptyType)
	return ok
}
func (t EmptyType) possiblyOver(other Type) bool { return t.definitelyOver(other) }
func (t EmptyType) commonOver(other Type) Type {
	if t.definitelyOver(other) {
		return t
	}
	return nil
}
