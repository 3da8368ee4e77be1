// File: doc.go
// Title: minilang Semantic Analysis Package Documentation
// Description: Declaration and use checking over a parsed program.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package semantic checks that every variable a program uses was declared.
//
// minilang has a single flat namespace: all declarations come first, and a
// declared name is visible in every block, nested or not. The Analyzer makes
// one pass over the tree. It reports duplicate declarations (the first one
// wins), uses of undeclared names in expressions and Read statements of
// undeclared names. Optionally it warns about declared names that are never
// referenced. The tree is never modified.
package semantic
