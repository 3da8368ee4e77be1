// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     driver
// Description: Runs the compiler front end on a source file and prints the
//              token, AST and semantic sections
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package driver

import (
	"context"
	"fmt"
	"io"
	"os"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang"
	"github.com/msto63/minilang/foundation/minilang/ast"
	"github.com/msto63/minilang/foundation/minilang/diag"
	"github.com/msto63/minilang/pkg/core/cache"
	"github.com/msto63/minilang/pkg/core/config"
)

// Exit statuses
const (
	ExitOK     = 0
	ExitFatal  = 1
	ExitFailed = 2
)

// Mode selects what a run prints
type Mode int

const (
	// ModeCompile prints all enabled sections, like the plain mlc command
	ModeCompile Mode = iota
	// ModeTokens prints the token list only
	ModeTokens
	// ModeAST prints the tree only
	ModeAST
	// ModeCheck prints diagnostics and a summary only
	ModeCheck
)

// Section headers of ModeCompile
const (
	HeaderTokens    = "=== Tokens ==="
	HeaderAST       = "=== AST ==="
	HeaderSemantic  = "=== Semantic Analysis ==="
	MsgCompleted    = "Compilation completed."
	MsgCompletedErr = "Compilation completed with errors."
)

// Options configures a Driver
type Options struct {
	Settings *config.Settings
	Logger   *mdwlog.Logger
	Mode     Mode
	JSON     bool // ModeAST: print the tree as JSON
	Stdout   io.Writer
	Stderr   io.Writer

	// Cache, if set, reuses results for unchanged sources
	Cache *cache.Cache[*minilang.Result]
}

// Driver runs compilations for the command line
type Driver struct {
	settings *config.Settings
	logger   *mdwlog.Logger
	mode     Mode
	json     bool
	stdout   io.Writer
	stderr   io.Writer
	styles   Styles
	compiler *minilang.Compiler
	cache    *cache.Cache[*minilang.Result]
}

// New creates a driver. Missing options fall back to default settings, a
// no-op logger and the process streams.
func New(opts Options) *Driver {
	settings := opts.Settings
	if settings == nil {
		settings = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.NewNop()
	}
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Driver{
		settings: settings,
		logger:   logger.WithField("component", "driver"),
		mode:     opts.Mode,
		json:     opts.JSON,
		stdout:   stdout,
		stderr:   stderr,
		styles:   NewStyles(stderr, settings.Output.Color),
		cache:    opts.Cache,
		compiler: minilang.New(minilang.Options{
			Logger:          logger,
			IdentifierWidth: settings.Lexer.IdentifierWidth,
			WarnUnused:      settings.Compile.WarnUnused,
		}),
	}
}

// Run compiles the file at path, prints the output of the configured mode
// and returns the process exit status. The error is non-nil only for fatal
// conditions such as an unreadable source file.
func (d *Driver) Run(ctx context.Context, path string) (int, error) {
	res, err := d.CompileFile(ctx, path)
	if err != nil {
		return mdwerror.GetCode(err).ExitStatus(), err
	}
	if err := d.Report(res); err != nil {
		return ExitFatal, err
	}

	status := d.ExitStatus(res)
	d.logger.Debug("Run finished", mdwlog.Fields{
		"path":   path,
		"status": status,
		"run_id": res.RunID,
	})
	return status, nil
}

// CompileFile loads and compiles one source file
func (d *Driver) CompileFile(ctx context.Context, path string) (*minilang.Result, error) {
	src, err := LoadSource(path)
	if err != nil {
		d.logger.LogError(err)
		return nil, err
	}
	if d.cache == nil {
		return d.compiler.Compile(ctx, path, src)
	}

	key := cache.Key(path, src)
	res, hit, err := d.cache.GetOrSet(key, func() (*minilang.Result, error) {
		return d.compiler.Compile(ctx, path, src)
	})
	if hit {
		d.logger.Debug("Source unchanged, reusing result", mdwlog.Fields{"path": path, "run_id": res.RunID})
	}
	return res, err
}

// Report prints res according to the mode. Diagnostics go to stderr, all
// other output to stdout. Each phase's diagnostics are written just before
// the section that phase produced, which keeps both streams in discovery
// order on a shared terminal.
func (d *Driver) Report(res *minilang.Result) error {
	out := &errWriter{w: d.stdout}

	switch d.mode {
	case ModeTokens:
		d.diagnostics(res, diag.PhaseLexical)
		d.tokens(out, res)

	case ModeAST:
		d.diagnostics(res, diag.PhaseLexical, diag.PhaseSyntax)
		if res.Program != nil {
			if d.json {
				out.check(ast.FprintJSON(out, res.Program))
			} else {
				out.check(ast.Fprint(out, res.Program))
			}
		}

	case ModeCheck:
		d.diagnostics(res, diag.PhaseLexical, diag.PhaseSyntax, diag.PhaseSemantic)
		out.printf("%s: %d error(s), %d warning(s)\n", res.Name,
			len(res.Diagnostics.Errors()), len(res.Diagnostics.Warnings()))

	default:
		d.diagnostics(res, diag.PhaseLexical)
		if d.settings.Output.Tokens {
			out.printf("%s\n", HeaderTokens)
			d.tokens(out, res)
		}
		d.diagnostics(res, diag.PhaseSyntax)
		if res.Program != nil {
			if d.settings.Output.AST {
				out.printf("\n%s\n", HeaderAST)
				out.check(ast.Fprint(out, res.Program))
			}
			out.printf("\n%s\n", HeaderSemantic)
			d.diagnostics(res, diag.PhaseSemantic)
		}
		if d.ExitStatus(res) == ExitFailed {
			out.printf("\n%s\n", MsgCompletedErr)
		} else {
			out.printf("\n%s\n", MsgCompleted)
		}
	}

	if out.err != nil {
		return mdwerror.Wrap(out.err, "cannot write output").
			WithCode(mdwerror.CodeInternal).
			WithOperation("driver.Report")
	}
	return nil
}

// ExitStatus applies the exit policy. Diagnostics do not fail a run unless
// strict mode is on; check always fails on errors and ast fails when no tree
// was built.
func (d *Driver) ExitStatus(res *minilang.Result) int {
	switch d.mode {
	case ModeCheck:
		if res.HasErrors() {
			return ExitFailed
		}
	case ModeAST:
		if res.Program == nil {
			return ExitFailed
		}
	}
	if d.settings.Compile.Strict && res.HasErrors() {
		return ExitFailed
	}
	return ExitOK
}

func (d *Driver) tokens(out *errWriter, res *minilang.Result) {
	for _, tok := range res.Tokens {
		out.printf("%s\n", tok)
	}
}

// diagnostics writes the diagnostics of the given phases in report order
func (d *Driver) diagnostics(res *minilang.Result, phases ...diag.Phase) {
	want := make(map[diag.Phase]bool, len(phases))
	for _, p := range phases {
		want[p] = true
	}
	for _, dg := range res.Diagnostics.Diagnostics() {
		if want[dg.Phase] {
			fmt.Fprintln(d.stderr, d.styles.Diagnostic(dg))
		}
	}
}

func fmtPosition(d diag.Diagnostic) string {
	return fmt.Sprintf("line %d, col %d", d.Line, d.Column)
}

// errWriter remembers the first write error and drops later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(e, format, args...)
}

func (e *errWriter) check(err error) {
	if e.err == nil {
		e.err = err
	}
}
