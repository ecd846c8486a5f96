package resolve

import "github.com/fernvibe/fernc/types"

// builtinBinaryOp implements the operators every basic scalar supports
// without a user-declared operator overload: arithmetic on
// Integer/Real with Integer-widens-to-Real promotion, equality on any
// matching pair, and comparison/logical operators over the closed
// Boolean/Integer/Real/String set of basic kinds.
func builtinBinaryOp(lt types.BasicType, op string, rt types.Type) (types.Type, bool) {
	rb, ok := rt.(types.BasicType)
	if !ok {
		return nil, false
	}
	numeric := lt.Kind == types.Integer || lt.Kind == types.Real
	sameNumeric := numeric && (rb.Kind == types.Integer || rb.Kind == types.Real)
	switch op {
	case "+", "-", "*", "/", "%":
		if !sameNumeric {
			if lt.Kind == types.String && rb.Kind == types.String && op == "+" {
				return types.BasicType{Kind: types.String}, true
			}
			return nil, false
		}
		if lt.Kind == types.Real || rb.Kind == types.Real {
			return types.BasicType{Kind: types.Real}, true
		}
		return types.BasicType{Kind: types.Integer}, true
	case "==", "!=":
		if lt.Kind == rb.Kind || sameNumeric {
			return types.BasicType{Kind: types.Boolean}, true
		}
		return nil, false
	case "<", "<=", ">", ">=":
		if !sameNumeric && !(lt.Kind == types.String && rb.Kind == types.String) {
			return nil, false
		}
		return types.BasicType{Kind: types.Boolean}, true
	case "&&", "||":
		if lt.Kind != types.Boolean || rb.Kind != types.Boolean {
			return nil, false
		}
		return types.BasicType{Kind: types.Boolean}, true
	default:
		return nil, false
	}
}

// builtinUnaryOp covers `-x` (numeric negation) and `!x` (boolean not).
func builtinUnaryOp(t types.BasicType, op string) (types.Type, bool) {
	switch op {
	case "-":
		if t.Kind == types.Integer || t.Kind == types.Real {
			return t, true
		}
	case "!":
		if t.Kind == types.Boolean {
			return t, true
		}
	}
	return nil, false
}

// operatorKey maps a binary/unary operator's source symbol to its entry
// in a class body scope's Operators dictionary; user-declared operator
// overloads are keyed by Symbol directly (ResolverHeader.insertOperator).
func operatorKey(symbol string) string { return symbol }
