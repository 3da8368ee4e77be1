// File: parser.go
// Title: minilang Recursive Descent Parser
// Description: Builds a syntax tree from a materialized token sequence using
//              one token of lookahead and no backtracking. An unmet
//              expectation is reported to the diagnostic sink and aborts the
//              enclosing production; only the statement loop resynchronizes,
//              by skipping one unexpected token.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang/ast"
	"github.com/msto63/minilang/foundation/minilang/diag"
)

// Parser implements recursive descent parsing for minilang.
//
// Grammar:
//
//	Program   := 'Program' VarDecl* Block 'End'
//	VarDecl   := 'Var' IDENTIFIER ';'
//	Block     := 'Start' Statement* 'End'
//	Statement := PrintStmt | ReadStmt | Block
//	PrintStmt := 'Print' '(' Expr ')' ';'
//	ReadStmt  := 'Read' '(' IDENTIFIER ')' ';'
//	Expr      := Term ( ('+' | '-') Term )*
//	Term      := IDENTIFIER | INTEGER
type Parser struct {
	tokens  []Token
	current int
	sink    diag.Sink
	logger  *mdwlog.Logger
	errors  int
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the logger used for debug output
func WithLogger(logger *mdwlog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a parser over tokens. A sequence that does not end in an
// EOF token gets one appended, so the parser always has a terminator to stop
// at. Diagnostics go to sink; a nil sink discards them.
func NewParser(tokens []Token, sink diag.Sink, opts ...Option) *Parser {
	if sink == nil {
		sink = diag.Discard
	}
	if n := len(tokens); n == 0 || tokens[n-1].Type != TokenEOF {
		eof := Token{Type: TokenEOF, Value: eofLexeme, Line: 1}
		if n > 0 {
			eof.Line, eof.Column = tokens[n-1].Line, tokens[n-1].Column
		}
		tokens = append(tokens[:n:n], eof)
	}

	p := &Parser{
		tokens: tokens,
		sink:   sink,
		logger: mdwlog.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.WithField("component", "minilang-parser")
	return p
}

// Parse parses tokens into a Program. It returns nil when the program is
// malformed at the top level; the reasons are in sink.
func Parse(tokens []Token, sink diag.Sink) *ast.Program {
	return NewParser(tokens, sink).ParseProgram()
}

// ParseProgram parses a complete program. The result is nil if the program
// header, the root block or the final End is malformed.
func (p *Parser) ParseProgram() *ast.Program {
	p.logger.Debug("Starting parse", mdwlog.Fields{"tokens": len(p.tokens)})

	prog := p.parseProgram()

	p.logger.Debug("Parse finished", mdwlog.Fields{
		"syntax_errors": p.errors,
		"tree":          prog != nil,
	})
	return prog
}

// Errors returns the number of syntax errors reported so far
func (p *Parser) Errors() int {
	return p.errors
}

func (p *Parser) parseProgram() *ast.Program {
	start := p.peek()
	if !p.match(TokenProgram) {
		p.error("Expected 'Program' at start")
		return nil
	}

	decls := p.parseVarDecls()

	block := p.parseBlock()
	if block == nil {
		return nil
	}

	if !p.match(TokenEnd) {
		p.error("Expected final 'End'")
		return nil
	}

	return &ast.Program{Decls: decls, Block: block, Pos: position(start)}
}

// parseVarDecls consumes declarations while 'Var' is seen. A malformed
// declaration is dropped and ends the declaration list.
func (p *Parser) parseVarDecls() []*ast.VarDecl {
	decls := []*ast.VarDecl{}
	for p.check(TokenVar) {
		varTok := p.advance()

		if !p.check(TokenIdentifier) {
			p.error("Expected identifier after Var")
			break
		}
		name := p.advance()

		if !p.match(TokenSemicolon) {
			p.error("Expected ; after variable")
			break
		}

		decls = append(decls, &ast.VarDecl{Name: name.Value, Pos: position(varTok)})
	}
	return decls
}

func (p *Parser) parseBlock() *ast.Block {
	start := p.peek()
	if !p.match(TokenStart) {
		p.error("Expected Start")
		return nil
	}

	stmts := []ast.Stmt{}
	for !p.check(TokenEnd) && !p.atEnd() {
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if !p.match(TokenEnd) {
		p.error("Expected End")
		return nil
	}

	return &ast.Block{Statements: stmts, Pos: position(start)}
}

// parseStatement returns nil for a malformed statement. A token that cannot
// start a statement is reported and skipped.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.peek().Type {
	case TokenPrint:
		if stmt := p.parsePrint(); stmt != nil {
			return stmt
		}
	case TokenRead:
		if stmt := p.parseRead(); stmt != nil {
			return stmt
		}
	case TokenStart:
		if block := p.parseBlock(); block != nil {
			return block
		}
	default:
		p.error("Unexpected statement")
		p.advance()
	}
	return nil
}

func (p *Parser) parsePrint() *ast.Print {
	start := p.advance() // 'Print'

	if !p.match(TokenLeftParen) {
		p.error("Expected ( after Print")
		return nil
	}

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if !p.match(TokenRightParen) {
		p.error("Expected ) after expression")
		return nil
	}
	if !p.match(TokenSemicolon) {
		p.error("Expected ; after Print")
		return nil
	}

	return &ast.Print{Expr: expr, Pos: position(start)}
}

func (p *Parser) parseRead() *ast.Read {
	start := p.advance() // 'Read'

	if !p.match(TokenLeftParen) {
		p.error("Expected ( after Read")
		return nil
	}

	if !p.check(TokenIdentifier) {
		p.error("Expected identifier in Read")
		return nil
	}
	name := p.advance()

	if !p.match(TokenRightParen) {
		p.error("Expected ) after identifier")
		return nil
	}
	if !p.match(TokenSemicolon) {
		p.error("Expected ; after Read")
		return nil
	}

	return &ast.Read{Name: name.Value, Pos: position(start)}
}

// parseExpr parses a left-associative chain of '+' and '-'. A missing
// operand aborts the whole expression.
func (p *Parser) parseExpr() ast.Expr {
	left := p.parseTerm()
	if left == nil {
		return nil
	}

	for p.check(TokenPlus) || p.check(TokenMinus) {
		op := p.advance()
		right := p.parseTerm()
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpr{Op: op.Value, Left: left, Right: right, Pos: left.Position()}
	}
	return left
}

func (p *Parser) parseTerm() ast.Expr {
	switch {
	case p.check(TokenIdentifier):
		tok := p.advance()
		return &ast.Identifier{Name: tok.Value, Pos: position(tok)}
	case p.check(TokenInteger):
		tok := p.advance()
		return &ast.IntLiteral{Value: tok.Value, Pos: position(tok)}
	}
	p.error("Expected identifier or number")
	return nil
}

// Utility methods

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == TokenEOF
}

// advance consumes the current token and returns it. EOF is never consumed.
func (p *Parser) advance() Token {
	tok := p.peek()
	if !p.atEnd() {
		p.current++
	}
	return tok
}

// check never matches at EOF
func (p *Parser) check(tt TokenType) bool {
	return !p.atEnd() && p.peek().Type == tt
}

func (p *Parser) match(tt TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

// error reports a syntax error at the current token
func (p *Parser) error(message string) {
	tok := p.peek()
	p.errors++
	p.sink.Report(diag.Errorf(diag.PhaseSyntax, tok.Line, tok.Column, "%s (found '%s')", message, tok.Value))
}

func position(tok Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}
