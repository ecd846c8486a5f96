package scope

import (
	"testing"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/fernsrc"
)

func decl(name string) ast.Decl {
	return ast.NewLocalVariableDecl(fernsrc.Location{}, name, ast.NewUnknownType(fernsrc.Location{}), true, nil)
}

func TestScope_DefineAndLookupVariable(t *testing.T) {
	s := New(nil, KindBlock)
	x := decl("x")
	if !s.DefineVariable(x) {
		t.Fatal("expected first definition of x to succeed")
	}
	if s.DefineVariable(decl("x")) {
		t.Fatal("expected redefinition of x in the same scope to fail")
	}
	got, ok := s.LookupVariable("x")
	if !ok || got != x {
		t.Fatalf("expected to find x, got %v, %v", got, ok)
	}
}

func TestScope_VariableShadowsOuter(t *testing.T) {
	outer := New(nil, KindFunction)
	outerX := decl("x")
	outer.DefineVariable(outerX)

	inner := New(outer, KindBlock)
	innerX := decl("x")
	inner.DefineVariable(innerX)

	got, ok := inner.LookupVariable("x")
	if !ok || got != innerX {
		t.Fatalf("expected inner x to shadow outer, got %v", got)
	}
	got, ok = outer.LookupVariable("x")
	if !ok || got != outerX {
		t.Fatalf("expected outer scope to still see its own x, got %v", got)
	}
}

func TestScope_BaseClassComposition(t *testing.T) {
	base := New(nil, KindClassBody)
	member := decl("field")
	base.DefineVariable(member)

	derived := New(nil, KindClassBody)
	derived.AddBase(base)

	got, ok := derived.LookupVariable("field")
	if !ok || got != member {
		t.Fatalf("expected derived class to inherit base member, got %v, %v", got, ok)
	}
}

func TestScope_ImportComposition(t *testing.T) {
	pkg := New(nil, KindGlobal)
	prog := decl("main")
	pkg.DefineProgram(prog)

	importer := New(nil, KindGlobal)
	importer.AddImport(pkg)

	got, ok := importer.LookupProgram("main")
	if !ok || got != prog {
		t.Fatalf("expected importer to see imported program, got %v, %v", got, ok)
	}
}

// --- Overloaded poset ---

// rankComparator is a toy Comparator for tests: specificity is encoded
// directly via a rank map (a higher rank is more specific), matching how the resolve package supplies real
// parameter-type-based comparators without scope needing to know about
// types.Type.
type rankComparator map[string]int

func (r rankComparator) MoreSpecific(a, b ast.Decl) bool {
	ra, oka := r[a.DeclName()]
	rb, okb := r[b.DeclName()]
	return oka && okb && ra > rb
}

func TestOverloaded_UniqueMostSpecificWins(t *testing.T) {
	// diamond: base <- {left, right} <- most (most refines both siblings)
	base := decl("base")
	left := decl("left")
	right := decl("right")
	most := decl("most")
	cmp := rankComparator{"base": 0, "left": 1, "right": 1, "most": 2}

	o := NewOverloaded("f")
	o.Add(base, cmp)
	o.Add(left, cmp)
	o.Add(right, cmp)
	o.Add(most, cmp)

	winner, ambiguous := o.Resolve(func(ast.Decl) bool { return true })
	if ambiguous != nil {
		t.Fatalf("expected a unique winner, got ambiguous set %v", ambiguous)
	}
	if winner != most {
		t.Fatalf("expected most-specific candidate to win, got %v", winner)
	}
}

func TestOverloaded_IncomparableCandidatesAreAmbiguous(t *testing.T) {
	left := decl("left")
	right := decl("right")
	cmp := rankComparator{"left": 1, "right": 1}

	o := NewOverloaded("f")
	o.Add(left, cmp)
	o.Add(right, cmp)

	winner, ambiguous := o.Resolve(func(ast.Decl) bool { return true })
	if winner != nil {
		t.Fatalf("expected no unique winner, got %v", winner)
	}
	if len(ambiguous) != 2 {
		t.Fatalf("expected both incomparable candidates reported, got %v", ambiguous)
	}
}

func TestOverloaded_NoApplicableCandidate(t *testing.T) {
	only := decl("only")
	cmp := rankComparator{"only": 0}

	o := NewOverloaded("f")
	o.Add(only, cmp)

	winner, ambiguous := o.Resolve(func(ast.Decl) bool { return false })
	if winner != nil || ambiguous != nil {
		t.Fatalf("expected no match at all, got winner=%v ambiguous=%v", winner, ambiguous)
	}
}

func TestOverloaded_ApplicabilityPrunesLessSpecificMatches(t *testing.T) {
	// most refines base, but only base is applicable to this particular
	// call -- the DFS should still surface base as the winner since
	// "most" isn't a candidate for this call at all.
	base := decl("base")
	most := decl("most")
	cmp := rankComparator{"base": 0, "most": 1}

	o := NewOverloaded("f")
	o.Add(base, cmp)
	o.Add(most, cmp)

	winner, ambiguous := o.Resolve(func(d ast.Decl) bool { return d.DeclName() == "base" })
	if ambiguous != nil {
		t.Fatalf("expected a unique winner, got ambiguous %v", ambiguous)
	}
	if winner != base {
		t.Fatalf("expected base to win when most isn't applicable, got %v", winner)
	}
}
