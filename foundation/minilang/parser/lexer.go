// File: lexer.go
// Title: minilang Lexical Analyzer (Tokenizer)
// Description: Converts source text into a token sequence terminated by a
//              single EOF token. Lexical problems (unknown characters,
//              over-long identifiers) are reported to a diagnostic sink and
//              never stop the scan.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

package parser

import (
	"unicode/utf8"

	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang/diag"
	mdwstringx "github.com/msto63/minilang/foundation/utils/stringx"
)

// DefaultIdentifierWidth is the number of characters an identifier keeps
const DefaultIdentifierWidth = 5

// Lexer performs lexical analysis of minilang source text. A Lexer is used
// once: NextToken advances a single cursor and keeps returning EOF at the end.
type Lexer struct {
	input  string
	pos    int // byte offset of the next unread character
	line   int // 1-based
	column int // 0-based

	width  int
	sink   diag.Sink
	logger *mdwlog.Logger
}

// LexerOption configures a Lexer
type LexerOption func(*Lexer)

// WithIdentifierWidth sets how many characters of an identifier are kept.
// Values below 1 select DefaultIdentifierWidth.
func WithIdentifierWidth(n int) LexerOption {
	return func(l *Lexer) {
		if n < 1 {
			n = DefaultIdentifierWidth
		}
		l.width = n
	}
}

// WithLexerLogger enables trace logging of every produced token
func WithLexerLogger(logger *mdwlog.Logger) LexerOption {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLexer creates a lexer for input. Diagnostics go to sink; a nil sink
// discards them.
func NewLexer(input string, sink diag.Sink, opts ...LexerOption) *Lexer {
	if sink == nil {
		sink = diag.Discard
	}
	l := &Lexer{
		input:  input,
		line:   1,
		width:  DefaultIdentifierWidth,
		sink:   sink,
		logger: mdwlog.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans input with default options and returns the full token
// sequence, always terminated by exactly one EOF token.
func Tokenize(input string, sink diag.Sink) []Token {
	return NewLexer(input, sink).Tokenize()
}

// Tokenize returns all remaining tokens including the terminating EOF token
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	var tok Token
	switch ch := l.peek(); {
	case l.atEnd():
		tok = Token{Type: TokenEOF, Value: eofLexeme, Line: l.line, Column: l.column}
	case isLetter(ch):
		tok = l.readIdentifier()
	case isDigit(ch):
		tok = l.readInteger()
	default:
		tok = l.readSymbol()
	}

	if l.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		l.logger.Trace("token", mdwlog.Fields{
			"type":   tok.Type.String(),
			"value":  tok.Value,
			"line":   tok.Line,
			"column": tok.Column,
		})
	}
	return tok
}

// readIdentifier reads an identifier or keyword. Keywords keep their full
// text; identifiers are cut to the configured width.
func (l *Lexer) readIdentifier() Token {
	line, column := l.line, l.column
	start := l.pos
	for !l.atEnd() && isIdentChar(l.peek()) {
		l.advance()
	}
	text := l.input[start:l.pos]

	if tt, ok := lookupKeyword(text); ok {
		return Token{Type: tt, Value: text, Line: line, Column: column}
	}

	name, cut := mdwstringx.Head(text, l.width)
	if cut {
		l.sink.Report(diag.Warningf(diag.PhaseLexical, line, column,
			"Identifier '%s' truncated to '%s'", text, name))
	}
	return Token{Type: TokenIdentifier, Value: name, Line: line, Column: column}
}

// readInteger reads a run of digits. No sign, no normalization.
func (l *Lexer) readInteger() Token {
	line, column := l.line, l.column
	start := l.pos
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
	return Token{Type: TokenInteger, Value: l.input[start:l.pos], Line: line, Column: column}
}

// readSymbol reads an operator or delimiter. Anything else becomes an error
// token carrying the single offending character.
func (l *Lexer) readSymbol() Token {
	line, column := l.line, l.column
	tok := func(tt TokenType, value string) Token {
		return Token{Type: tt, Value: value, Line: line, Column: column}
	}

	ch := l.peek()
	switch ch {
	case '+':
		l.advance()
		return tok(TokenPlus, "+")
	case '-':
		l.advance()
		return tok(TokenMinus, "-")
	case '<':
		l.advance()
		return tok(TokenLess, "<")
	case '>':
		l.advance()
		return tok(TokenGreater, ">")
	case '=':
		l.advance()
		if !l.atEnd() && l.peek() == '=' {
			l.advance()
			return tok(TokenEqualEqual, "==")
		}
		return tok(TokenAssign, "=")
	case '{':
		l.advance()
		return tok(TokenLeftBrace, "{")
	case '}':
		l.advance()
		return tok(TokenRightBrace, "}")
	case '(':
		l.advance()
		return tok(TokenLeftParen, "(")
	case ')':
		l.advance()
		return tok(TokenRightParen, ")")
	case ';':
		l.advance()
		return tok(TokenSemicolon, ";")
	}

	// one character, which may span several bytes
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	text := l.input[l.pos : l.pos+size]
	l.pos += size
	l.column++

	l.sink.Report(diag.Errorf(diag.PhaseLexical, line, column, "Unexpected character '%s'", text))
	return tok(TokenError, text)
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// peek returns the current byte, 0 at the end of input
func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.input[l.pos]
}

// advance consumes one byte. A newline starts a new line at column 0.
func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.pos++
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
