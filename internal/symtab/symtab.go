// Package symtab implements the lexically scoped symbol table used by
// the semantic analyzer: a scope chain with local-vs-inherited lookup.
package symtab

import (
	"github.com/cwbudde/go-pyjs/internal/ast"
	"github.com/cwbudde/go-pyjs/internal/token"
)

// Kind classifies what a Symbol names.
type Kind int

const (
	KindVariable Kind = iota
	KindFunction
	KindParameter
)

// Symbol is a declared name with its kind, declared type and the
// position of its declaration.
type Symbol struct {
	Name string
	Kind Kind
	Type ast.TypeMarker
	Pos  token.Position

	// ReturnType is only meaningful for KindFunction symbols.
	ReturnType ast.TypeMarker
	ParamTypes []ast.TypeMarker
}

// Scope owns a name→symbol map and a parent link.
type Scope struct {
	symbols map[string]*Symbol
	parent  *Scope
}

func newScope(parent *Scope) *Scope {
	return &Scope{symbols: make(map[string]*Symbol), parent: parent}
}

// declare adds name to this scope. It reports false without mutating
// anything if name already exists in this scope.
func (s *Scope) declare(sym *Symbol) bool {
	if _, exists := s.symbols[sym.Name]; exists {
		return false
	}
	s.symbols[sym.Name] = sym
	return true
}

// lookupLocal searches this scope only.
func (s *Scope) lookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// lookup searches this scope, then its ancestors.
func (s *Scope) lookup(name string) (*Symbol, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if sym, ok := sc.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Table is a stack of scopes; the bottom scope is the module scope
// and is pre-populated with builtins.
type Table struct {
	current *Scope
	module  *Scope
}

// New creates a table with the module scope populated with builtins:
// `print`, plus `range` and `str`, the two runtime shims the emitter
// knows how to synthesize. Without the latter two the analyzer would
// reject `for i in range(10):` as a call to an undefined function even
// though codegen supports it. The string variable `__name__` is
// declared too, so the `if __name__ == "__main__":` guard analyzes.
func New() *Table {
	module := newScope(nil)
	module.declare(&Symbol{
		Name:       "print",
		Kind:       KindFunction,
		Type:       ast.NONE,
		ReturnType: ast.NONE,
		ParamTypes: []ast.TypeMarker{ast.ANY},
	})
	module.declare(&Symbol{
		Name:       "range",
		Kind:       KindFunction,
		Type:       ast.LIST,
		ReturnType: ast.LIST,
		ParamTypes: []ast.TypeMarker{ast.INT, ast.INT, ast.INT},
	})
	module.declare(&Symbol{
		Name:       "str",
		Kind:       KindFunction,
		Type:       ast.STRING,
		ReturnType: ast.STRING,
		ParamTypes: []ast.TypeMarker{ast.ANY},
	})
	module.declare(&Symbol{
		Name: "__name__",
		Kind: KindVariable,
		Type: ast.STRING,
	})
	return &Table{current: module, module: module}
}

// PushScope enters a new scope whose parent is the current scope.
// The analyzer pushes on entering a function or for-loop body.
func (t *Table) PushScope() {
	t.current = newScope(t.current)
}

// PopScope returns to the parent of the current scope. Popping the
// module scope is a programming error in the caller.
func (t *Table) PopScope() {
	if t.current.parent != nil {
		t.current = t.current.parent
	}
}

// Declare adds a symbol to the current scope. It returns false if the
// name is already declared locally.
func (t *Table) Declare(sym *Symbol) bool {
	return t.current.declare(sym)
}

// Lookup searches the current scope and its ancestors.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	return t.current.lookup(name)
}

// LookupLocal searches only the current scope.
func (t *Table) LookupLocal(name string) (*Symbol, bool) {
	return t.current.lookupLocal(name)
}

// InModuleScope reports whether the current scope is the module
// (top-level) scope.
func (t *Table) InModuleScope() bool {
	return t.current == t.module
}
