// File: minilang.go
// Title: minilang Compiler Pipeline
// Description: Sequences tokenizer, parser and semantic analyzer over one
//              source text and collects tokens, tree and diagnostics into a
//              Result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package minilang

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang/ast"
	"github.com/msto63/minilang/foundation/minilang/diag"
	"github.com/msto63/minilang/foundation/minilang/parser"
	"github.com/msto63/minilang/foundation/minilang/semantic"
)

// Options configures a Compiler
type Options struct {
	// Logger receives operational debug output. Nil disables logging.
	Logger *mdwlog.Logger

	// IdentifierWidth is the number of significant identifier characters.
	// Zero or less selects parser.DefaultIdentifierWidth.
	IdentifierWidth int

	// WarnUnused enables warnings for declared but unused variables
	WarnUnused bool

	// Sink additionally receives every diagnostic at the moment it is
	// reported, e.g. to echo diagnostics while the phases run.
	Sink diag.Sink
}

// Compiler runs the front end phases. A Compiler holds no per-run state and
// may be used for any number of compilations, also concurrently.
type Compiler struct {
	opts   Options
	logger *mdwlog.Logger
}

// Result holds everything one compilation produced
type Result struct {
	Name        string
	Source      string
	Tokens      []parser.Token
	Program     *ast.Program // nil when parsing failed
	Symbols     *semantic.SymbolTable
	Diagnostics *diag.List
	RunID       string
	Duration    time.Duration

	completed bool
}

// New creates a compiler
func New(opts Options) *Compiler {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.NewNop()
	}
	if opts.IdentifierWidth < 1 {
		opts.IdentifierWidth = parser.DefaultIdentifierWidth
	}
	return &Compiler{
		opts:   opts,
		logger: logger.WithField("component", "minilang-compiler"),
	}
}

// Compile runs all phases over src. name is only used for logging and the
// Result. Diagnostics never stop the pipeline: the tokenizer always runs to
// the end, the parser always consumes the whole token sequence and the
// analyzer runs whenever a program was produced.
//
// ctx is checked between phases. A cancelled context stops the run before
// the next phase and its error is returned together with the partial Result.
func (c *Compiler) Compile(ctx context.Context, name, src string) (*Result, error) {
	start := time.Now()
	res := &Result{
		Name:        name,
		Source:      src,
		Diagnostics: diag.NewList(),
		RunID:       uuid.NewString(),
	}
	defer func() { res.Duration = time.Since(start) }()

	logger := c.logger.WithCorrelationID(res.RunID).WithField("source", name)
	sink := diag.Tee(res.Diagnostics, c.opts.Sink)

	logger.Debug("Compilation started", mdwlog.Fields{"bytes": len(src)})

	if err := ctx.Err(); err != nil {
		return res, c.cancelled(logger, err, "tokenize")
	}
	timer := logger.StartTimer("tokenize")
	lexer := parser.NewLexer(src, sink,
		parser.WithIdentifierWidth(c.opts.IdentifierWidth),
		parser.WithLexerLogger(logger))
	res.Tokens = lexer.Tokenize()
	timer.StopWithCount("tokens", len(res.Tokens))

	if err := ctx.Err(); err != nil {
		return res, c.cancelled(logger, err, "parse")
	}
	timer = logger.StartTimer("parse")
	p := parser.NewParser(res.Tokens, sink, parser.WithLogger(logger))
	res.Program = p.ParseProgram()
	timer.StopWithCount("syntax_errors", p.Errors())

	if res.Program != nil {
		if err := ctx.Err(); err != nil {
			return res, c.cancelled(logger, err, "analyze")
		}
		timer = logger.StartTimer("analyze")
		a := semantic.NewAnalyzer(sink,
			semantic.WithUnusedWarnings(c.opts.WarnUnused),
			semantic.WithLogger(logger))
		a.Analyze(res.Program)
		res.Symbols = a.Symbols()
		timer.StopWithCount("semantic_errors", a.Errors())
	}

	res.completed = true
	logger.Debug("Compilation completed", mdwlog.Fields{
		"diagnostics": res.Diagnostics.Len(),
		"errors":      len(res.Diagnostics.Errors()),
	})
	return res, nil
}

func (c *Compiler) cancelled(logger *mdwlog.Logger, err error, phase string) error {
	logger.Debug("Compilation cancelled", mdwlog.Fields{"phase": phase})
	return mdwerror.Wrap(err, "compilation cancelled").
		WithCode(mdwerror.CodeInternal).
		WithSeverity(mdwerror.SeverityLow).
		WithOperation("minilang.Compile").
		WithDetail("phase", phase)
}

// Compile runs a compilation with default options
func Compile(src string) *Result {
	res, _ := New(Options{}).Compile(context.Background(), "", src)
	return res
}

// Completed reports whether every applicable phase ran. It is false only for
// runs stopped by their context.
func (r *Result) Completed() bool {
	return r.completed
}

// HasErrors reports whether any phase reported an error diagnostic
func (r *Result) HasErrors() bool {
	return r.Diagnostics.HasErrors()
}

// Err returns a COMPILATION_FAILED error when error diagnostics were
// reported, nil otherwise. Warnings never produce an error.
func (r *Result) Err() error {
	err := r.Diagnostics.Err()
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.WithDetail("run_id", r.RunID).WithOperation("minilang.Compile")
	}
	return err
}
