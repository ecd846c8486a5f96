package generics

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/types"
)

// typeToASTType converts a resolved types.Type back into a syntactic
// ast.Type, so a generic argument can be spliced into a cloned
// declaration's type annotations and re-run through the four passes
// (§4.4 step 2: "substitutes every occurrence of the generic parameter
// with the concrete type node"). loc is stamped onto every produced
// node; the clone is discarded after staging, so the exact span doesn't
// matter, only that diagnostics raised against it point somewhere
// sensible.
func typeToASTType(t types.Type, loc fernsrc.Location) ast.Type {
	switch n := t.(type) {
	case types.BasicType:
		return ast.NewBasicTypeRef(loc, n.Kind.String())
	case types.ClassType:
		args := make([]ast.Type, len(n.Args))
		for i, a := range n.Args {
			args[i] = typeToASTType(a, loc)
		}
		return ast.NewClassTypeRef(loc, n.Decl.DeclName(), args)
	case types.GenericType:
		return ast.NewGenericTypeRef(loc, n.Name)
	case types.OptionalType:
		return ast.NewOptionalTypeRef(loc, typeToASTType(n.Element, loc))
	case types.WeakType:
		return ast.NewWeakTypeRef(loc, typeToASTType(n.Element, loc))
	case types.ArrayType:
		return ast.NewArrayTypeRef(loc, typeToASTType(n.Element, loc), n.Ndims)
	case types.TupleType:
		elems := make([]ast.Type, len(n.Elements))
		for i, e := range n.Elements {
			elems[i] = typeToASTType(e, loc)
		}
		return ast.NewTupleTypeRef(loc, elems)
	case types.SequenceType:
		return ast.NewSequenceTypeRef(loc, typeToASTType(n.Element, loc))
	case types.FunctionType:
		var params ast.Type
		switch len(n.Params) {
		case 0:
			params = ast.NewEmptyType(loc)
		case 1:
			params = typeToASTType(n.Params[0], loc)
		default:
			elems := make([]ast.Type, len(n.Params))
			for i, p := range n.Params {
				elems[i] = typeToASTType(p, loc)
			}
			params = ast.NewTupleTypeRef(loc, elems)
		}
		return ast.NewFunctionTypeRef(loc, params, typeToASTType(n.Returns, loc))
	case types.FiberType:
		return ast.NewFiberTypeRef(loc, typeToASTType(n.Yield, loc))
	case types.MemberType:
		return ast.NewMemberTypeRef(loc, typeToASTType(n.Owner, loc), n.Name)
	case types.EmptyType:
		return ast.NewEmptyType(loc)
	default:
		return ast.NewUnknownType(loc)
	}
}

func typesToASTTypes(ts []types.Type, loc fernsrc.Location) []ast.Type {
	out := make([]ast.Type, len(ts))
	for i, t := range ts {
		out[i] = typeToASTType(t, loc)
	}
	return out
}
