package scope

import "github.com/fernvibe/fernc/ast"

// Kind enumerates the scope kinds: global, program, function and
// block scopes, plus the two kinds the class model needs (class body
// and class initializer).
type Kind int

const (
	KindGlobal Kind = iota
	KindProgram
	KindClassBody
	KindClassInit
	KindFunction
	KindBlock
)

// Scope is one lexical name-resolution scope: five declaration
// categories (§3.1), an outer-scope chain for ordinary shadowing, a
// Bases chain for class inheritance (a derived class's scope composes
// its base classes' scopes, checked after its own members and before
// Outer), and an Imports chain for package-level composition (an
// imported package's exported scope is checked after Bases).
type Scope struct {
	Outer *Scope
	Kind  Kind

	Variables map[string]ast.Decl
	Types     map[string]ast.Decl
	Functions map[string]*Overloaded // keyed by function/fiber name
	Operators map[string]*Overloaded // keyed by operator symbol ("+", "==", ...) or "->"/"=" for conversion/assignment
	Programs  map[string]ast.Decl

	Bases   []*Scope
	Imports []*Scope
}

// New creates a scope enclosed by outer (nil for the root/global scope).
func New(outer *Scope, kind Kind) *Scope {
	return &Scope{
		Outer:     outer,
		Kind:      kind,
		Variables: make(map[string]ast.Decl),
		Types:     make(map[string]ast.Decl),
		Functions: make(map[string]*Overloaded),
		Operators: make(map[string]*Overloaded),
		Programs:  make(map[string]ast.Decl),
	}
}

// AddBase composes a base class's body scope into this one for member
// lookup (§4.1: Supers resolved by ResolverSuper).
func (s *Scope) AddBase(base *Scope) { s.Bases = append(s.Bases, base) }

// AddImport composes an imported package's exported scope into this
// one (§6 import resolution).
func (s *Scope) AddImport(imp *Scope) { s.Imports = append(s.Imports, imp) }

// DefineVariable inserts d into Variables, returning false if the name
// is already defined in this scope (not an outer one -- shadowing an
// outer variable is legal, redefining in the same scope is not).
func (s *Scope) DefineVariable(d ast.Decl) bool {
	if _, exists := s.Variables[d.DeclName()]; exists {
		return false
	}
	s.Variables[d.DeclName()] = d
	return true
}

// DefineType inserts d into Types.
func (s *Scope) DefineType(d ast.Decl) bool {
	if _, exists := s.Types[d.DeclName()]; exists {
		return false
	}
	s.Types[d.DeclName()] = d
	return true
}

// DefineProgram inserts d into Programs.
func (s *Scope) DefineProgram(d ast.Decl) bool {
	if _, exists := s.Programs[d.DeclName()]; exists {
		return false
	}
	s.Programs[d.DeclName()] = d
	return true
}

// DefineFunction adds d to the named overload set, creating the set on
// first use.
func (s *Scope) DefineFunction(name string, d ast.Decl, cmp Comparator) *Overloaded {
	set, ok := s.Functions[name]
	if !ok {
		set = NewOverloaded(name)
		s.Functions[name] = set
	}
	set.Add(d, cmp)
	return set
}

// DefineOperator adds d to the named (by symbol) operator overload set.
func (s *Scope) DefineOperator(symbol string, d ast.Decl, cmp Comparator) *Overloaded {
	set, ok := s.Operators[symbol]
	if !ok {
		set = NewOverloaded(symbol)
		s.Operators[symbol] = set
	}
	set.Add(d, cmp)
	return set
}

// LookupVariable walks this scope, then Bases, then Imports, then Outer.
func (s *Scope) LookupVariable(name string) (ast.Decl, bool) {
	if d, ok := s.Variables[name]; ok {
		return d, true
	}
	return s.lookupChain(name, func(sc *Scope) (ast.Decl, bool) { return sc.LookupVariable(name) })
}

// LookupType walks this scope, then Bases, then Imports, then Outer.
func (s *Scope) LookupType(name string) (ast.Decl, bool) {
	if d, ok := s.Types[name]; ok {
		return d, true
	}
	return s.lookupChain(name, func(sc *Scope) (ast.Decl, bool) { return sc.LookupType(name) })
}

// LookupProgram walks this scope, then Imports, then Outer (programs
// don't participate in class inheritance).
func (s *Scope) LookupProgram(name string) (ast.Decl, bool) {
	if d, ok := s.Programs[name]; ok {
		return d, true
	}
	for _, imp := range s.Imports {
		if d, ok := imp.LookupProgram(name); ok {
			return d, true
		}
	}
	if s.Outer != nil {
		return s.Outer.LookupProgram(name)
	}
	return nil, false
}

// LookupFunction returns the nearest named overload set: this scope's
// own, else the first found in Bases, then Imports, then Outer. Sets
// are not merged, so a derived class's overload set for a name hides
// its bases' overloads of the same name.
func (s *Scope) LookupFunction(name string) (*Overloaded, bool) {
	set, ok := s.Functions[name]
	if ok {
		return set, true
	}
	return s.lookupOverloadChain(name, func(sc *Scope) (*Overloaded, bool) { return sc.LookupFunction(name) })
}

// LookupOperator returns the named (by symbol) operator overload set.
func (s *Scope) LookupOperator(symbol string) (*Overloaded, bool) {
	set, ok := s.Operators[symbol]
	if ok {
		return set, true
	}
	return s.lookupOverloadChain(symbol, func(sc *Scope) (*Overloaded, bool) { return sc.LookupOperator(symbol) })
}

func (s *Scope) lookupChain(_ string, look func(*Scope) (ast.Decl, bool)) (ast.Decl, bool) {
	for _, base := range s.Bases {
		if d, ok := look(base); ok {
			return d, true
		}
	}
	for _, imp := range s.Imports {
		if d, ok := look(imp); ok {
			return d, true
		}
	}
	if s.Outer != nil {
		return look(s.Outer)
	}
	return nil, false
}

func (s *Scope) lookupOverloadChain(_ string, look func(*Scope) (*Overloaded, bool)) (*Overloaded, bool) {
	for _, base := range s.Bases {
		if set, ok := look(base); ok {
			return set, true
		}
	}
	for _, imp := range s.Imports {
		if set, ok := look(imp); ok {
			return set, true
		}
	}
	if s.Outer != nil {
		return look(s.Outer)
	}
	return nil, false
}
