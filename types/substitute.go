package types

// Substitute rewrites every GenericType occurrence in t according to
// bindings (generic parameter name -> concrete type argument),
// recursing through every composite kind. Used by constructor-call
// resolution (§4.4) to check an argument against a generic class's
// declared member type once the type argument is known, instead of
// against the bare unbound parameter.
func Substitute(t Type, bindings map[string]Type) Type {
	switch v := t.(type) {
	case GenericType:
		if bound, ok := bindings[v.Name]; ok {
			return bound
		}
		return v
	case OptionalType:
		return OptionalType{Element: Substitute(v.Element, bindings)}
	case WeakType:
		return WeakType{Element: Substitute(v.Element, bindings)}
	case ArrayType:
		return ArrayType{Element: Substitute(v.Element, bindings), Ndims: v.Ndims}
	case SequenceType:
		return SequenceType{Element: Substitute(v.Element, bindings)}
	case TupleType:
		elems := make([]Type, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = Substitute(e, bindings)
		}
		return TupleType{Elements: elems}
	case FunctionType:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = Substitute(p, bindings)
		}
		return FunctionType{Params: params, Returns: Substitute(v.Returns, bindings)}
	case FiberType:
		return FiberType{Yield: Substitute(v.Yield, bindings)}
	case MemberType:
		return MemberType{Owner: Substitute(v.Owner, bindings), Name: v.Name}
	case ClassType:
		if len(v.Args) == 0 {
			return v
		}
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = Substitute(a, bindings)
		}
		return ClassType{Decl: v.Decl, Args: args}
	default:
		return t
	}
}
