// File: symbols.go
// Title: Symbol Table
// Description: Flat set of declared variable names that remembers the
//              declaration order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package semantic

// SymbolTable is the set of declared names of one program
type SymbolTable struct {
	order []string
	index map[string]struct{}
}

// NewSymbolTable returns an empty table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]struct{})}
}

// Declare adds name and reports whether it was new. Declaring a name twice
// leaves the table unchanged.
func (s *SymbolTable) Declare(name string) bool {
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.order = append(s.order, name)
	return true
}

// Has reports whether name is declared
func (s *SymbolTable) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns the declared names in declaration order
func (s *SymbolTable) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of distinct declared names
func (s *SymbolTable) Len() int {
	return len(s.order)
}
