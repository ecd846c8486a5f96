package types

import "testing"

type fakeClass struct {
	name        string
	supers      []ClassDecl
	conversions []Type
}

func (f *fakeClass) DeclName() string    { return f.name }
func (f *fakeClass) Supers() []ClassDecl { return f.supers }
func (f *fakeClass) Conversions() []Type { return f.conversions }

func TestDefinitely_BasicWidening(t *testing.T) {
	integer := BasicType{Kind: Integer}
	real := BasicType{Kind: Real}
	if !Definitely(integer, real) {
		t.Fatal("expected Integer to definitely widen to Real")
	}
	if Definitely(real, integer) {
		t.Fatal("expected Real to NOT definitely narrow to Integer")
	}
	if !Possibly(real, integer) {
		t.Fatal("expected Real and Integer to be possibly compatible")
	}
}

func TestDefinitely_OptionalWrapping(t *testing.T) {
	str := BasicType{Kind: String}
	opt := OptionalType{Element: BasicType{Kind: String}}
	if !Definitely(str, opt) {
		t.Fatal("expected T to definitely widen to T?")
	}
	if Definitely(opt, str) {
		t.Fatal("expected T? to NOT definitely narrow to T")
	}
}

func TestDefinitely_ClassSubtyping(t *testing.T) {
	base := &fakeClass{name: "Animal"}
	derived := &fakeClass{name: "Dog", supers: []ClassDecl{base}}

	dogType := ClassType{Decl: derived}
	animalType := ClassType{Decl: base}

	if !Definitely(dogType, animalType) {
		t.Fatal("expected Dog to definitely be an Animal")
	}
	if Definitely(animalType, dogType) {
		t.Fatal("expected Animal to NOT definitely be a Dog")
	}
}

func TestDefinitely_ClassConversionOperator(t *testing.T) {
	meters := &fakeClass{name: "Meters"}
	feet := &fakeClass{name: "Feet"}
	meters.conversions = []Type{ClassType{Decl: feet}}

	metersType := ClassType{Decl: meters}
	feetType := ClassType{Decl: feet}

	if !Definitely(metersType, feetType) {
		t.Fatal("expected Meters to definitely convert to Feet via its registered conversion operator")
	}
	if Definitely(feetType, metersType) {
		t.Fatal("expected Feet to NOT definitely convert to Meters (conversion is one-directional)")
	}
}

func TestCommon_ClassSiblingsShareAncestor(t *testing.T) {
	base := &fakeClass{name: "Animal"}
	dog := &fakeClass{name: "Dog", supers: []ClassDecl{base}}
	cat := &fakeClass{name: "Cat", supers: []ClassDecl{base}}

	common, ok := Common(ClassType{Decl: dog}, ClassType{Decl: cat})
	if !ok {
		t.Fatal("expected a common ancestor to be found")
	}
	ct, ok := common.(ClassType)
	if !ok || ct.Decl.DeclName() != "Animal" {
		t.Fatalf("expected Animal as the common ancestor, got %v", common)
	}
}

func TestCommon_NumericPromotion(t *testing.T) {
	common, ok := Common(BasicType{Kind: Integer}, BasicType{Kind: Real})
	if !ok {
		t.Fatal("expected a common numeric type")
	}
	if common.(BasicType).Kind != Real {
		t.Fatalf("expected Real as the common numeric type, got %v", common)
	}
}

func TestCommon_Unrelated(t *testing.T) {
	_, ok := Common(BasicType{Kind: String}, BasicType{Kind: Boolean})
	if ok {
		t.Fatal("expected no common type between String and Boolean")
	}
}

func TestUnknown_AbsorbsEverything(t *testing.T) {
	if !Definitely(UnknownType{}, BasicType{Kind: Integer}) {
		t.Fatal("expected Unknown to definitely-match anything while resolution is pending")
	}
	if !Possibly(BasicType{Kind: String}, UnknownType{}) {
		t.Fatal("expected Unknown to possibly-match anything")
	}
}

func TestFunctionType_ContravariantParams(t *testing.T) {
	narrow := FunctionType{Params: []Type{ClassType{Decl: &fakeClass{name: "Dog"}}}, Returns: BasicType{Kind: Boolean}}
	base := &fakeClass{name: "Animal"}
	dog := &fakeClass{name: "Dog", supers: []ClassDecl{base}}
	wide := FunctionType{Params: []Type{ClassType{Decl: base}}, Returns: BasicType{Kind: Boolean}}
	narrow.Params[0] = ClassType{Decl: dog}

	// A function accepting the wider Animal param is definitely usable
	// anywhere a function accepting the narrower Dog param is expected.
	if !Definitely(wide, narrow) {
		t.Fatal("expected contravariant parameter widening to hold")
	}
	if Definitely(narrow, wide) {
		t.Fatal("expected the reverse direction to fail")
	}
}

func TestMoreSpecificParams(t *testing.T) {
	base := &fakeClass{name: "Animal"}
	dog := &fakeClass{name: "Dog", supers: []ClassDecl{base}}

	dogParams := []Type{ClassType{Decl: dog}}
	animalParams := []Type{ClassType{Decl: base}}

	if !MoreSpecificParams(dogParams, animalParams) {
		t.Fatal("expected Dog overload to be more specific than Animal overload")
	}
	if MoreSpecificParams(animalParams, dogParams) {
		t.Fatal("expected Animal overload to NOT be more specific than Dog overload")
	}
	if MoreSpecificParams(dogParams, dogParams) {
		t.Fatal("expected identical signatures to never rank as more specific than each other")
	}
}
