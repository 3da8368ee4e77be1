// File: minilang_test.go
// Title: minilang Compiler Pipeline Tests
// Description: Tests for phase sequencing, diagnostic order, cancellation,
//              options and logging of the compiler facade.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial pipeline tests

package minilang

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
	mdwlog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang/ast"
	"github.com/msto63/minilang/foundation/minilang/diag"
	"github.com/msto63/minilang/foundation/minilang/parser"
)

func TestCompile_CleanProgram(t *testing.T) {
	res := Compile("Program Var abcd; Start Print(abcd); End End")

	if !res.Completed() {
		t.Fatal("expected a completed run")
	}
	if res.Program == nil {
		t.Fatal("expected a program")
	}
	if res.Diagnostics.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Diagnostics.Diagnostics())
	}
	if err := res.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
	if n := len(res.Tokens); n != 13 {
		t.Errorf("tokens = %d, want 13", n)
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Type != parser.TokenEOF {
		t.Errorf("last token = %v, want EOF", last)
	}
	if res.Symbols == nil || !res.Symbols.Has("abcd") {
		t.Error("expected abcd in the symbol table")
	}
	if res.RunID == "" {
		t.Error("expected a run id")
	}
}

func TestCompile_DiagnosticsInPhaseOrder(t *testing.T) {
	res := Compile("Program Var abcdefgh; Var x; Var x; Start Print(abcde); Read(q); End End")

	var got []string
	for _, d := range res.Diagnostics.Diagnostics() {
		got = append(got, d.Phase.String()+" "+d.Severity.String())
	}
	want := []string{"Lexical Warning", "Semantic Error", "Semantic Error"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("diagnostics = %v, want %v", got, want)
	}
	if res.Program == nil {
		t.Fatal("semantic errors must not discard the tree")
	}
}

func TestCompile_SyntaxErrorSkipsAnalysis(t *testing.T) {
	res := Compile("Program Var y; Print(y); End End")

	if !res.Completed() {
		t.Error("a syntax error must not stop the run")
	}
	if res.Program != nil {
		t.Error("expected no program")
	}
	if res.Symbols != nil {
		t.Error("analysis must not run without a program")
	}
	if res.Diagnostics.Count(diag.PhaseSemantic) != 0 {
		t.Error("unexpected semantic diagnostics")
	}
	if res.Diagnostics.Count(diag.PhaseSyntax) == 0 {
		t.Error("expected a syntax diagnostic")
	}

	err := res.Err()
	if !mdwerror.HasCode(err, mdwerror.CodeCompilationFailed) {
		t.Fatalf("Err() code = %v, want COMPILATION_FAILED", mdwerror.GetCode(err))
	}
	var mdwErr *mdwerror.Error
	if e, ok := err.(*mdwerror.Error); ok {
		mdwErr = e
	}
	if v, _ := mdwErr.Detail("run_id"); v != res.RunID {
		t.Errorf("run_id detail = %v, want %s", v, res.RunID)
	}
}

func TestCompile_MissingBlockSkipsAnalysis(t *testing.T) {
	res := Compile("Program Var a; Var a; End")

	if res.Program != nil {
		t.Fatal("a Program without its root block must not be built")
	}
	if res.Symbols != nil {
		t.Error("semantic analysis ran without a tree")
	}
	if n := res.Diagnostics.Count(diag.PhaseSemantic); n != 0 {
		t.Errorf("semantic diagnostics = %d, want 0", n)
	}
	if n := res.Diagnostics.Count(diag.PhaseSyntax); n != 1 {
		t.Errorf("syntax diagnostics = %d, want 1", n)
	}
}

func TestCompile_FailedProgramWithTreeHelpers(t *testing.T) {
	res := Compile("Program Start")
	if res.Program != nil {
		t.Fatalf("Program = %v, want nil", res.Program)
	}

	if got := ast.Render(res.Program); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
	var buf bytes.Buffer
	if err := ast.Fprint(&buf, res.Program); err != nil || buf.Len() != 0 {
		t.Errorf("Fprint() wrote %q, err %v", buf.String(), err)
	}
	buf.Reset()
	if err := ast.FprintJSON(&buf, res.Program); err != nil {
		t.Errorf("FprintJSON() error = %v", err)
	}
	if got := ast.Count(res.Program); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
	if got := ast.Depth(res.Program); got != 0 {
		t.Errorf("Depth() = %d, want 0", got)
	}
	if got := ast.Uses(res.Program); len(got) != 0 {
		t.Errorf("Uses() = %v, want none", got)
	}
	if got := ast.Declared(res.Program); len(got) != 0 {
		t.Errorf("Declared() = %v, want none", got)
	}
}

func TestCompile_WarningsAreNotErrors(t *testing.T) {
	res := Compile("Program Var longname; Start Print(longn); End End")
	if len(res.Diagnostics.Warnings()) != 1 {
		t.Fatalf("warnings = %v", res.Diagnostics.Warnings())
	}
	if res.HasErrors() || res.Err() != nil {
		t.Error("warnings must not make the run fail")
	}
}

func TestCompiler_Options(t *testing.T) {
	var echoed []diag.Diagnostic
	c := New(Options{
		IdentifierWidth: 3,
		WarnUnused:      true,
		Sink:            diag.SinkFunc(func(d diag.Diagnostic) { echoed = append(echoed, d) }),
	})

	res, err := c.Compile(context.Background(), "opts.ml", "Program Var abcd; Var zz; Start Print(abc); End End")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	var msgs []string
	for _, d := range res.Diagnostics.Diagnostics() {
		msgs = append(msgs, d.Message)
	}
	want := []string{
		"Identifier 'abcd' truncated to 'abc'",
		"Variable 'zz' declared but never used",
	}
	if strings.Join(msgs, "|") != strings.Join(want, "|") {
		t.Errorf("messages = %q, want %q", msgs, want)
	}
	if len(echoed) != len(msgs) {
		t.Errorf("echo sink got %d diagnostics, want %d", len(echoed), len(msgs))
	}
	if res.Name != "opts.ml" {
		t.Errorf("Name = %q", res.Name)
	}
}

func TestCompiler_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New(Options{}).Compile(ctx, "x.ml", "Program Start End End")
	if err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
	if res == nil || res.Completed() {
		t.Error("expected an incomplete result")
	}
	if len(res.Tokens) != 0 {
		t.Error("no phase should have run")
	}
	if v, _ := err.(*mdwerror.Error).Detail("phase"); v != "tokenize" {
		t.Errorf("phase detail = %v, want tokenize", v)
	}
}

func TestCompiler_RunIDsDiffer(t *testing.T) {
	c := New(Options{})
	a, _ := c.Compile(context.Background(), "", "Program Start End End")
	b, _ := c.Compile(context.Background(), "", "Program Start End End")
	if a.RunID == b.RunID {
		t.Errorf("run ids should differ, both %s", a.RunID)
	}
}

func TestCompiler_LogsPhasesWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	})

	res, err := New(Options{Logger: logger}).Compile(context.Background(), "log.ml", "Program Var a; Start Print(a); End End")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	messages := map[string]bool{}
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var entry map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", scanner.Text(), err)
		}
		if entry["correlation_id"] != res.RunID {
			t.Errorf("correlation_id = %v, want %s", entry["correlation_id"], res.RunID)
		}
		messages[entry["message"].(string)] = true
	}

	for _, m := range []string{"tokenize completed", "parse completed", "analyze completed"} {
		if !messages[m] {
			t.Errorf("missing log message %q in %v", m, messages)
		}
	}
}
