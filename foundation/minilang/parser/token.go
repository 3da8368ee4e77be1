// File: token.go
// Title: minilang Token Definitions
// Description: Defines the closed set of token kinds, their canonical names
//              and the keyword table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token definitions

package parser

import (
	"fmt"
)

// TokenType represents the kind of a lexical token
type TokenType int

const (
	// Keywords
	TokenProgram TokenType = iota
	TokenVar
	TokenStart
	TokenEnd
	TokenPrint
	TokenRead
	TokenIf        // reserved
	TokenIteration // reserved
	TokenPut       // reserved

	// Operators
	TokenPlus       // +
	TokenMinus      // -
	TokenLess       // <
	TokenGreater    // >
	TokenEqualEqual // ==
	TokenAssign     // =

	// Delimiters
	TokenLeftBrace  // {
	TokenRightBrace // }
	TokenLeftParen  // (
	TokenRightParen // )
	TokenSemicolon  // ;

	// Literals
	TokenIdentifier
	TokenInteger

	// Special
	TokenEOF
	TokenError
)

// String returns the canonical name of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenProgram:
		return "KW_PROGRAM"
	case TokenVar:
		return "KW_VAR"
	case TokenStart:
		return "KW_START"
	case TokenEnd:
		return "KW_END"
	case TokenPrint:
		return "KW_PRINT"
	case TokenRead:
		return "KW_READ"
	case TokenIf:
		return "KW_IF"
	case TokenIteration:
		return "KW_ITERATION"
	case TokenPut:
		return "KW_PUT"
	case TokenPlus:
		return "OP_PLUS"
	case TokenMinus:
		return "OP_MINUS"
	case TokenLess:
		return "OP_LT"
	case TokenGreater:
		return "OP_GT"
	case TokenEqualEqual:
		return "OP_EQEQ"
	case TokenAssign:
		return "OP_ASSIGN"
	case TokenLeftBrace:
		return "DELIM_LBRACE"
	case TokenRightBrace:
		return "DELIM_RBRACE"
	case TokenLeftParen:
		return "DELIM_LPAREN"
	case TokenRightParen:
		return "DELIM_RPAREN"
	case TokenSemicolon:
		return "DELIM_SEMICOLON"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenInteger:
		return "INTEGER"
	case TokenEOF:
		return "EOF"
	default:
		return "ERROR"
	}
}

// IsKeyword reports whether the token type is one of the nine keywords
func (tt TokenType) IsKeyword() bool {
	return tt >= TokenProgram && tt <= TokenPut
}

// IsOperator reports whether the token type is an operator
func (tt TokenType) IsOperator() bool {
	return tt >= TokenPlus && tt <= TokenAssign
}

// IsDelimiter reports whether the token type is a delimiter
func (tt TokenType) IsDelimiter() bool {
	return tt >= TokenLeftBrace && tt <= TokenSemicolon
}

// Token is a classified, located piece of source text. Tokens are values and
// are never modified after the lexer produced them.
type Token struct {
	Type   TokenType
	Value  string // lexeme
	Line   int    // 1-based
	Column int    // 0-based
}

// String renders the token the way the driver lists it:
// Token(KW_PROGRAM, "Program", line: 1, col: 0). The lexeme is printed
// raw, without escaping.
func (t Token) String() string {
	return fmt.Sprintf("Token(%s, \"%s\", line: %d, col: %d)", t.Type, t.Value, t.Line, t.Column)
}

// eofLexeme is the lexeme of the end-of-input token
const eofLexeme = "EOF"

var keywords = map[string]TokenType{
	"Program":   TokenProgram,
	"Var":       TokenVar,
	"Start":     TokenStart,
	"End":       TokenEnd,
	"Print":     TokenPrint,
	"Read":      TokenRead,
	"If":        TokenIf,
	"Iteration": TokenIteration,
	"Put":       TokenPut,
}

// IsKeyword reports whether s is a reserved word. Matching is case-sensitive.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// lookupKeyword returns the keyword type for s
func lookupKeyword(s string) (TokenType, bool) {
	tt, ok := keywords[s]
	return tt, ok
}
