package fiber

import (
	"testing"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/types"
)

// buildFiber assembles a FunctionDecl shaped like:
//
//	fiber counter() -> Integer {
//	    auto i <- 0;
//	    yield i;
//	    auto j <- i;
//	    yield j;
//	}
//
// already resolved (ResolvedReturn stamped, as ResolverSuper/Header
// would leave it) so Lower can run against it directly, without going
// through the parser or resolver passes.
func buildFiber() *ast.FunctionDecl {
	loc := fernsrc.Location{}
	i := ast.NewLocalVariableDecl(loc, "i", nil, true, ast.NewIntLiteral(loc, nil))
	yieldI := ast.NewYieldStmt(loc, ast.NewIdentifier(loc, "i"))
	j := ast.NewLocalVariableDecl(loc, "j", nil, true, ast.NewIdentifier(loc, "i"))
	yieldJ := ast.NewYieldStmt(loc, ast.NewIdentifier(loc, "j"))
	body := ast.NewBracesStmt(loc, []ast.Statement{
		ast.NewExpressionStmt(loc, i),
		yieldI,
		ast.NewExpressionStmt(loc, j),
		yieldJ,
	})

	decl := ast.NewFunctionDecl(loc, "counter", nil, nil, nil, body, true)
	decl.ResolvedReturn = types.FiberType{Yield: types.BasicType{Kind: types.Integer}}
	return decl
}

func TestLower_YieldPointsNumberedInSourceOrder(t *testing.T) {
	sm := Lower(buildFiber())
	if len(sm.Yields) != 2 {
		t.Fatalf("expected 2 yield points, got %d", len(sm.Yields))
	}
	if sm.Yields[0].Label != 1 || sm.Yields[1].Label != 2 {
		t.Fatalf("expected labels 1, 2 in source order, got %d, %d", sm.Yields[0].Label, sm.Yields[1].Label)
	}
	if sm.FinalLabel != 3 {
		t.Fatalf("FinalLabel = %d, want 3 (len(Yields)+1)", sm.FinalLabel)
	}
}

func TestLower_YieldTypeComesFromFiberReturn(t *testing.T) {
	sm := Lower(buildFiber())
	if sm.YieldType != (types.BasicType{Kind: types.Integer}) {
		t.Fatalf("YieldType = %v, want Integer", sm.YieldType)
	}
}

func TestLower_LocalsRenamedBySourceOccurrence(t *testing.T) {
	sm := Lower(buildFiber())
	if len(sm.Locals) != 2 {
		t.Fatalf("expected 2 locals, got %d", len(sm.Locals))
	}
	if sm.Locals[0].Name != "i_1" || sm.Locals[1].Name != "j_1" {
		t.Fatalf("unexpected local names: %v, %v", sm.Locals[0].Name, sm.Locals[1].Name)
	}
}

func TestLower_RepeatedDeclarationGetsDistinctSuffix(t *testing.T) {
	loc := fernsrc.Location{}
	first := ast.NewLocalVariableDecl(loc, "x", nil, true, ast.NewIntLiteral(loc, nil))
	second := ast.NewLocalVariableDecl(loc, "x", nil, true, ast.NewIntLiteral(loc, nil))
	body := ast.NewBracesStmt(loc, []ast.Statement{
		ast.NewExpressionStmt(loc, first),
		ast.NewYieldStmt(loc, ast.NewIdentifier(loc, "x")),
		ast.NewExpressionStmt(loc, second),
		ast.NewYieldStmt(loc, ast.NewIdentifier(loc, "x")),
	})
	decl := ast.NewFunctionDecl(loc, "twice", nil, nil, nil, body, true)
	decl.ResolvedReturn = types.FiberType{Yield: types.BasicType{Kind: types.Integer}}

	sm := Lower(decl)
	if sm.LocalNames[first] == sm.LocalNames[second] {
		t.Fatalf("expected distinct member names for two same-named locals, both got %q", sm.LocalNames[first])
	}
}

func TestLower_LambdaBodyIsOpaqueYieldBoundary(t *testing.T) {
	loc := fernsrc.Location{}
	// the lambda's own local ("hidden") must not be collected; only the
	// fiber's own local ("fn") and top-level yield count.
	lambdaBody := ast.NewBracesStmt(loc, []ast.Statement{
		ast.NewExpressionStmt(loc, ast.NewLocalVariableDecl(loc, "hidden", nil, true, ast.NewIntLiteral(loc, nil))),
	})
	lambda := ast.NewLambdaExpr(loc, nil, nil, lambdaBody)
	capture := ast.NewLocalVariableDecl(loc, "fn", nil, true, lambda)
	body := ast.NewBracesStmt(loc, []ast.Statement{
		ast.NewExpressionStmt(loc, capture),
		ast.NewYieldStmt(loc, ast.NewIntLiteral(loc, nil)),
	})
	decl := ast.NewFunctionDecl(loc, "f", nil, nil, nil, body, true)
	decl.ResolvedReturn = types.FiberType{Yield: types.BasicType{Kind: types.Integer}}

	sm := Lower(decl)
	if len(sm.Yields) != 1 {
		t.Fatalf("expected 1 yield point, got %d", len(sm.Yields))
	}
	if len(sm.Locals) != 1 {
		t.Fatalf("expected only the fiber's own local (%q), got %d locals", "fn", len(sm.Locals))
	}
}
