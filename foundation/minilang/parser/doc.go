// File: doc.go
// Title: minilang Parser Package Documentation
// Description: Lexical analyzer and recursive descent parser for minilang.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser turns minilang source text into a syntax tree.

The work is split into two strictly sequential steps. The Lexer produces the
complete token sequence first; the Parser then consumes that slice with one
token of lookahead:

	sink := diag.NewList()
	tokens := parser.Tokenize(src, sink)
	prog := parser.Parse(tokens, sink)

Neither step stops at the first problem. The lexer turns unknown characters
into ERROR tokens and truncates over-long identifiers with a warning. The
parser reports an unmet expectation and drops the production it was building;
a statement list simply omits the dropped statement, while a dropped block or
program header makes the enclosing production absent as well. A nil Program
means the input was malformed at the top level.

Identifiers keep their first five characters by default, see
WithIdentifierWidth. The keywords If, Iteration and Put are reserved: they are
recognized by the lexer but no grammar rule accepts them.
*/
package parser
