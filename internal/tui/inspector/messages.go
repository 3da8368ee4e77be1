// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     inspector
// Description: Message types for async operations in the inspector
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package inspector

import (
	"github.com/msto63/minilang/foundation/minilang"
)

// Tab identifies a view of the compilation result
type Tab int

const (
	TabTokens Tab = iota
	TabAST
	TabDiagnostics
	TabSymbols
	tabCount
)

// String returns the tab label
func (t Tab) String() string {
	switch t {
	case TabTokens:
		return "Tokens"
	case TabAST:
		return "AST"
	case TabDiagnostics:
		return "Diagnostics"
	case TabSymbols:
		return "Symbols"
	default:
		return "?"
	}
}

// compiledMsg is sent when a compilation finished
type compiledMsg struct {
	result *minilang.Result
	err    error
}

// reloadMsg requests a new compilation, e.g. after the file changed
type reloadMsg struct{}
