package types

// MoreSpecificParams reports whether candidate a's parameter types are a
// strict refinement of candidate b's (§4.1 overload specialization): a
// refines b when every one of a's parameters is Definitely assignable to
// b's corresponding parameter (a accepts no more than b does) and at
// least one parameter is a strict narrowing (not also true the other
// way), so that two overloads with identical signatures never rank each
// other as more specific.
//
// This is a pure function over parameter-type slices, with no
// dependency on ast.Decl, so that resolve (which does know how to pull
// parameter types out of an ast.FunctionDecl/OperatorDecl) can implement
// scope.Comparator by extracting both candidates' parameter types and
// calling this, keeping types free of an import cycle back to ast.
func MoreSpecificParams(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	aFitsB := true
	bFitsA := true
	for i := range a {
		if !Definitely(a[i], b[i]) {
			aFitsB = false
		}
		if !Definitely(b[i], a[i]) {
			bFitsA = false
		}
	}
	return aFitsB && !bFitsA
}
