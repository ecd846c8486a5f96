package emit

import (
	"fmt"
	"strings"

	"github.com/fernvibe/fernc/types"
)

// basicTable is the fixed basic-type emission table.
var basicTable = map[types.BasicKind]string{
	types.Boolean: "unsigned char",
	types.Integer: "int64_t",
	types.Real:    "double",
	types.String:  "std::string",
}

// CType renders t in the target dialect. Class types emit as a
// pointer wrapper (SharedPtr/WeakPtr), array types as a fixed-
// dimension wrapper template, function/fiber types as function-object
// wrappers.
func CType(t types.Type) string {
	switch n := t.(type) {
	case types.BasicType:
		return basicTable[n.Kind]
	case types.ClassType:
		name := Mangle(n.Decl.DeclName())
		if len(n.Args) == 0 {
			return "SharedPtr<" + name + ">"
		}
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = CType(a)
		}
		return "SharedPtr<" + name + "<" + strings.Join(parts, ", ") + ">>"
	case types.GenericType:
		return Mangle(n.Name)
	case types.OptionalType:
		return "Optional<" + CType(n.Element) + ">"
	case types.WeakType:
		if ct, ok := n.Element.(types.ClassType); ok {
			name := Mangle(ct.Decl.DeclName())
			return "WeakPtr<" + name + ">"
		}
		return "WeakPtr<" + CType(n.Element) + ">"
	case types.ArrayType:
		return fmt.Sprintf("Array<%s, %d>", CType(n.Element), n.Ndims)
	case types.TupleType:
		parts := make([]string, len(n.Elements))
		for i, e := range n.Elements {
			parts[i] = CType(e)
		}
		return "std::tuple<" + strings.Join(parts, ", ") + ">"
	case types.SequenceType:
		return "Sequence<" + CType(n.Element) + ">"
	case types.FunctionType:
		parts := make([]string, len(n.Params))
		for i, p := range n.Params {
			parts[i] = CType(p)
		}
		ret := "void"
		if n.Returns != nil {
			if _, empty := n.Returns.(types.EmptyType); !empty {
				ret = CType(n.Returns)
			}
		}
		return "Function<" + ret + "(" + strings.Join(parts, ", ") + ")>"
	case types.FiberType:
		// Structural, not nominal: any fiber declaration yielding the
		// same element type is one fiber<T> value type, so the value
		// representation is a pointer to the common FiberState<T>
		// interface rather than to any one declaration's concrete
		// backing class (see FiberDeclClass for the concrete side).
		return "SharedPtr<FiberState<" + CType(n.Yield) + ">>"
	case types.MemberType:
		return CType(n.Owner) + "::" + Mangle(n.Name)
	case types.EmptyType:
		return "void"
	default:
		return "void*"
	}
}
