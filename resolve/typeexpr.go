package resolve

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/scope"
	"github.com/fernvibe/fernc/types"
)

// basicTypeTable is the fixed set of built-in scalar names (§4.6 "Basic
// types map to a fixed table"); resolved here at the source-name level
// rather than duplicated per emitter entry.
var basicTypeTable = map[string]types.BasicKind{
	"Boolean": types.Boolean,
	"Integer": types.Integer,
	"Real":    types.Real,
	"String":  types.String,
}

// classAdapter wraps an *ast.ClassDecl so it satisfies types.ClassDecl
// without types importing ast (§4.2 DESIGN.md note).
type classAdapter struct{ d *ast.ClassDecl }

func (a classAdapter) DeclName() string { return a.d.Name }
func (a classAdapter) Supers() []types.ClassDecl {
	out := make([]types.ClassDecl, len(a.d.Supers))
	for i, s := range a.d.Supers {
		out[i] = classAdapter{s}
	}
	return out
}
func (a classAdapter) Conversions() []types.Type { return a.d.Conversions }

func classType(d *ast.ClassDecl, args []types.Type) types.ClassType {
	return types.ClassType{Decl: classAdapter{d}, Args: args}
}

// resolveTypeExpr converts a syntactic ast.Type into a resolved
// types.Type, looking up class/basic names in sc. Errors are recorded
// on w and types.UnknownType{} is returned so callers can keep walking
// without nil-checking everywhere (§3.2: UnknownType absorbs everything
// until resolution completes).
func (w *Walker) resolveTypeExpr(sc *scope.Scope, t ast.Type) types.Type {
	if t == nil {
		return types.EmptyType{}
	}
	switch n := t.(type) {
	case *ast.UnknownType:
		return types.UnknownType{}
	case *ast.EmptyType:
		return types.EmptyType{}
	case *ast.BasicTypeRef:
		if k, ok := basicTypeTable[n.Name]; ok {
			return types.BasicType{Kind: k}
		}
		w.errorf(diagnostics.UnresolvedReference, n.Loc(), "unknown basic type %q", n.Name)
		return types.UnknownType{}
	case *ast.ClassTypeRef:
		d, ok := sc.LookupType(n.Name)
		if !ok {
			w.errorf(diagnostics.UnresolvedReference, n.Loc(), "unresolved type %q", n.Name)
			return types.UnknownType{}
		}
		n.Target = d
		switch decl := d.(type) {
		case *ast.ClassDecl:
			args := make([]types.Type, len(n.Args))
			for i, a := range n.Args {
				args[i] = w.resolveTypeExpr(sc, a)
			}
			if len(args) > 0 && w.Instantiator != nil {
				inst := w.Instantiator.InstantiateClass(decl, args)
				if inst != nil {
					decl = inst
				}
			}
			return classType(decl, args)
		case *ast.BasicTypeDecl:
			if k, ok := basicTypeTable[decl.Name]; ok {
				return types.BasicType{Kind: k}
			}
			return types.UnknownType{}
		case *ast.GenericParamDecl:
			return types.GenericType{Name: n.Name}
		default:
			w.errorf(diagnostics.UnresolvedReference, n.Loc(), "%q does not name a type", n.Name)
			return types.UnknownType{}
		}
	case *ast.GenericTypeRef:
		if d, ok := sc.LookupType(n.Name); ok {
			n.Target = d
		}
		return types.GenericType{Name: n.Name}
	case *ast.MemberTypeRef:
		owner := w.resolveTypeExpr(sc, n.Qualifier)
		return types.MemberType{Owner: owner, Name: n.Name}
	case *ast.ArrayTypeRef:
		return types.ArrayType{Element: w.resolveTypeExpr(sc, n.Element), Ndims: n.Ndims}
	case *ast.TupleTypeRef:
		elems := make([]types.Type, len(n.Elements))
		for i, e := range n.Elements {
			elems[i] = w.resolveTypeExpr(sc, e)
		}
		return types.TupleType{Elements: elems}
	case *ast.SequenceTypeRef:
		return types.SequenceType{Element: w.resolveTypeExpr(sc, n.Element)}
	case *ast.FunctionTypeRef:
		var params []types.Type
		if pl, ok := n.Params.(*ast.TupleTypeRef); ok {
			for _, p := range pl.Elements {
				params = append(params, w.resolveTypeExpr(sc, p))
			}
		} else if n.Params != nil {
			if _, empty := n.Params.(*ast.EmptyType); !empty {
				params = append(params, w.resolveTypeExpr(sc, n.Params))
			}
		}
		return types.FunctionType{Params: params, Returns: w.resolveTypeExpr(sc, n.Returns)}
	case *ast.FiberTypeRef:
		return types.FiberType{Yield: w.resolveTypeExpr(sc, n.Yield)}
	case *ast.OptionalTypeRef:
		return types.OptionalType{Element: w.resolveTypeExpr(sc, n.Element)}
	case *ast.WeakTypeRef:
		return types.WeakType{Element: w.resolveTypeExpr(sc, n.Element)}
	default:
		return types.UnknownType{}
	}
}

func (w *Walker) resolveTypeList(sc *scope.Scope, ts []ast.Type) []types.Type {
	out := make([]types.Type, len(ts))
	for i, t := range ts {
		out[i] = w.resolveTypeExpr(sc, t)
	}
	return out
}
