// File: analyzer.go
// Title: Semantic Analyzer
// Description: Single pass over a Program that fills the symbol table from
//              the declarations and checks every use against it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package semantic

import (
	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang/ast"
	"github.com/msto63/minilang/foundation/minilang/diag"
)

// Analyzer checks declarations and uses. It implements ast.Visitor; use
// Analyze rather than calling the visit methods directly.
type Analyzer struct {
	sink       diag.Sink
	logger     *mdwlog.Logger
	warnUnused bool

	symbols  *SymbolTable
	declared map[string]ast.Position // first declaration
	used     map[string]bool
	errors   int
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithUnusedWarnings enables a warning for every declared name that is never
// referenced
func WithUnusedWarnings(enabled bool) Option {
	return func(a *Analyzer) {
		a.warnUnused = enabled
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *mdwlog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an analyzer reporting to sink; a nil sink discards
// diagnostics.
func NewAnalyzer(sink diag.Sink, opts ...Option) *Analyzer {
	if sink == nil {
		sink = diag.Discard
	}
	a := &Analyzer{
		sink:    sink,
		logger:  mdwlog.NewNop(),
		symbols: NewSymbolTable(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.WithField("component", "minilang-semantic")
	return a
}

// Analyze checks prog and returns the resulting symbol table
func Analyze(prog *ast.Program, sink diag.Sink) *SymbolTable {
	a := NewAnalyzer(sink)
	a.Analyze(prog)
	return a.Symbols()
}

// Analyze runs the pass over prog. Every call starts with an empty symbol
// table. A nil program is accepted and yields no diagnostics.
func (a *Analyzer) Analyze(prog *ast.Program) {
	a.symbols = NewSymbolTable()
	a.declared = make(map[string]ast.Position)
	a.used = make(map[string]bool)
	a.errors = 0

	if prog == nil {
		return
	}
	prog.Accept(a)

	a.logger.Debug("Semantic analysis finished", mdwlog.Fields{
		"symbols":         a.symbols.Len(),
		"semantic_errors": a.errors,
	})
}

// Symbols returns the symbol table of the last Analyze call
func (a *Analyzer) Symbols() *SymbolTable {
	return a.symbols
}

// Errors returns the number of semantic errors of the last Analyze call
func (a *Analyzer) Errors() int {
	return a.errors
}

func (a *Analyzer) VisitProgram(n *ast.Program) {
	for _, d := range n.Decls {
		if d == nil {
			continue
		}
		if !a.symbols.Declare(d.Name) {
			a.error(d.Pos, "Duplicate variable '%s'", d.Name)
			continue
		}
		a.declared[d.Name] = d.Pos
	}

	if n.Block != nil {
		n.Block.Accept(a)
	}

	if a.warnUnused {
		for _, name := range a.symbols.Names() {
			if !a.used[name] {
				pos := a.declared[name]
				a.sink.Report(diag.Warningf(diag.PhaseSemantic, pos.Line, pos.Column,
					"Variable '%s' declared but never used", name))
			}
		}
	}
}

// VisitVarDecl has nothing to check; declarations are handled by VisitProgram
func (a *Analyzer) VisitVarDecl(*ast.VarDecl) {}

func (a *Analyzer) VisitBlock(n *ast.Block) {
	for _, s := range n.Statements {
		if s != nil {
			s.Accept(a)
		}
	}
}

func (a *Analyzer) VisitPrint(n *ast.Print) {
	if n.Expr != nil {
		n.Expr.Accept(a)
	}
}

func (a *Analyzer) VisitRead(n *ast.Read) {
	a.used[n.Name] = true
	if !a.symbols.Has(n.Name) {
		a.error(n.Pos, "Reading undeclared variable '%s'", n.Name)
	}
}

func (a *Analyzer) VisitBinaryExpr(n *ast.BinaryExpr) {
	if n.Left != nil {
		n.Left.Accept(a)
	}
	if n.Right != nil {
		n.Right.Accept(a)
	}
}

func (a *Analyzer) VisitIdentifier(n *ast.Identifier) {
	a.used[n.Name] = true
	if !a.symbols.Has(n.Name) {
		a.error(n.Pos, "Undeclared variable '%s'", n.Name)
	}
}

func (a *Analyzer) VisitIntLiteral(*ast.IntLiteral) {}

func (a *Analyzer) error(pos ast.Position, format string, args ...interface{}) {
	a.errors++
	a.sink.Report(diag.Errorf(diag.PhaseSemantic, pos.Line, pos.Column, format, args...))
}

var _ ast.Visitor = (*Analyzer)(nil)
