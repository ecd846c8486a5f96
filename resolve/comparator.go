package resolve

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/types"
)

// paramTypes extracts the resolved parameter-type tuple of a
// declaration that can sit in an overloaded set: FunctionDecl or
// OperatorDecl. ResolverHeader stamps each ParameterDecl's
// ResolvedType before insertion, so this is always populated by the
// time the poset needs it.
func paramTypes(d ast.Decl) []types.Type {
	var params []*ast.ParameterDecl
	switch n := d.(type) {
	case *ast.FunctionDecl:
		params = n.Params
	case *ast.OperatorDecl:
		params = n.Params
	default:
		return nil
	}
	out := make([]types.Type, len(params))
	for i, p := range params {
		out[i] = p.ResolvedType()
	}
	return out
}

// comparator implements scope.Comparator on top of
// types.MoreSpecificParams (§4.1), kept free of an ast<->types cycle by
// living in resolve, which already imports both.
type comparator struct{}

func (comparator) MoreSpecific(a, b ast.Decl) bool {
	return types.MoreSpecificParams(paramTypes(a), paramTypes(b))
}

// sameParams reports exact-duplicate parameter-type tuples (§4.1 Add:
// "detect exact duplicate... raise previous declaration").
func sameParams(a, b ast.Decl) bool {
	pa, pb := paramTypes(a), paramTypes(b)
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if !types.Definitely(pa[i], pb[i]) || !types.Definitely(pb[i], pa[i]) {
			return false
		}
	}
	return true
}
