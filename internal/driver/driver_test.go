package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
	"github.com/msto63/minilang/foundation/minilang"
	"github.com/msto63/minilang/pkg/core/cache"
	"github.com/msto63/minilang/pkg/core/config"
)

const cleanSource = "Program Var abcd; Start Print(abcd); End End"

// writeSource writes src to a temporary file and returns its path
func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.ml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}
	return path
}

// run executes a driver over src and returns status, stdout and stderr
func run(t *testing.T, src string, opts Options) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts.Stdout = &stdout
	opts.Stderr = &stderr

	status, err := New(opts).Run(context.Background(), writeSource(t, src))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return status, stdout.String(), stderr.String()
}

func TestRun_CompileOutput(t *testing.T) {
	status, stdout, stderr := run(t, cleanSource, Options{})

	want := `=== Tokens ===
Token(KW_PROGRAM, "Program", line: 1, col: 0)
Token(KW_VAR, "Var", line: 1, col: 8)
Token(IDENTIFIER, "abcd", line: 1, col: 12)
Token(DELIM_SEMICOLON, ";", line: 1, col: 16)
Token(KW_START, "Start", line: 1, col: 18)
Token(KW_PRINT, "Print", line: 1, col: 24)
Token(DELIM_LPAREN, "(", line: 1, col: 29)
Token(IDENTIFIER, "abcd", line: 1, col: 30)
Token(DELIM_RPAREN, ")", line: 1, col: 34)
Token(DELIM_SEMICOLON, ";", line: 1, col: 35)
Token(KW_END, "End", line: 1, col: 37)
Token(KW_END, "End", line: 1, col: 41)
Token(EOF, "EOF", line: 1, col: 44)

=== AST ===
Program
  Variables:
    VarDecl: abcd
  Block:
    Block
      Print
        Identifier: abcd

=== Semantic Analysis ===

Compilation completed.
`
	if stdout != want {
		t.Errorf("stdout:\n%s\nwant:\n%s", stdout, want)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
	if status != ExitOK {
		t.Errorf("status = %d, want %d", status, ExitOK)
	}
}

func TestRun_SyntaxErrorOmitsTreeSections(t *testing.T) {
	status, stdout, stderr := run(t, "Program Var x; Print(x); End End", Options{})

	if strings.Contains(stdout, HeaderAST) || strings.Contains(stdout, HeaderSemantic) {
		t.Errorf("tree sections printed without a tree:\n%s", stdout)
	}
	if !strings.HasSuffix(stdout, "\n"+MsgCompleted+"\n") {
		t.Errorf("missing completion line:\n%s", stdout)
	}
	if want := "Syntax Error at line 1, col 15: Expected Start (found 'Print')\n"; stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
	if status != ExitOK {
		t.Errorf("status = %d, want %d without strict mode", status, ExitOK)
	}
}

func TestRun_DiagnosticsInDiscoveryOrder(t *testing.T) {
	_, _, stderr := run(t, "Program Var abcdefgh; Start Print(q); End End", Options{})

	want := "Lexical Warning at line 1, col 12: Identifier 'abcdefgh' truncated to 'abcde'\n" +
		"Semantic Error at line 1, col 34: Undeclared variable 'q'\n"
	if stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestRun_StrictMode(t *testing.T) {
	s := config.Default()
	s.Compile.Strict = true

	tests := []struct {
		name       string
		src        string
		wantStatus int
		wantLast   string
	}{
		{"clean", cleanSource, ExitOK, MsgCompleted},
		{"warning only", "Program Var abcdefgh; Start End End", ExitOK, MsgCompleted},
		{"semantic error", "Program Start Read(z); End End", ExitFailed, MsgCompletedErr},
		{"lexical error", "Program Start End End $", ExitFailed, MsgCompletedErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, stdout, _ := run(t, tt.src, Options{Settings: s})
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if !strings.HasSuffix(stdout, tt.wantLast+"\n") {
				t.Errorf("stdout does not end with %q:\n%s", tt.wantLast, stdout)
			}
		})
	}
}

func TestRun_OutputSettings(t *testing.T) {
	s := config.Default()
	s.Output.Tokens = false
	s.Output.AST = false

	_, stdout, _ := run(t, cleanSource, Options{Settings: s})

	want := "\n" + HeaderSemantic + "\n\n" + MsgCompleted + "\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_Modes(t *testing.T) {
	t.Run("tokens", func(t *testing.T) {
		_, stdout, _ := run(t, "Program", Options{Mode: ModeTokens})
		want := "Token(KW_PROGRAM, \"Program\", line: 1, col: 0)\nToken(EOF, \"EOF\", line: 1, col: 7)\n"
		if stdout != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
	})

	t.Run("ast text", func(t *testing.T) {
		status, stdout, _ := run(t, "Program Start End End", Options{Mode: ModeAST})
		want := "Program\n  Variables:\n  Block:\n    Block\n"
		if stdout != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
		if status != ExitOK {
			t.Errorf("status = %d", status)
		}
	})

	t.Run("ast json", func(t *testing.T) {
		_, stdout, _ := run(t, cleanSource, Options{Mode: ModeAST, JSON: true})
		var tree map[string]interface{}
		if err := json.Unmarshal([]byte(stdout), &tree); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, stdout)
		}
		if tree["type"] != "Program" {
			t.Errorf("type = %v, want Program", tree["type"])
		}
	})

	t.Run("ast without tree", func(t *testing.T) {
		status, stdout, stderr := run(t, "Start End", Options{Mode: ModeAST})
		if stdout != "" || stderr == "" {
			t.Errorf("stdout = %q, stderr = %q", stdout, stderr)
		}
		if status != ExitFailed {
			t.Errorf("status = %d, want %d", status, ExitFailed)
		}
	})

	t.Run("check", func(t *testing.T) {
		status, stdout, stderr := run(t, "Program Var abcdefgh; Start Print(q); End End", Options{Mode: ModeCheck})
		if !strings.HasSuffix(stdout, ": 1 error(s), 1 warning(s)\n") {
			t.Errorf("stdout = %q", stdout)
		}
		if strings.Count(stderr, "\n") != 2 {
			t.Errorf("stderr = %q, want two diagnostics", stderr)
		}
		if status != ExitFailed {
			t.Errorf("status = %d, want %d", status, ExitFailed)
		}
	})
}

func TestRun_UnreadableSource(t *testing.T) {
	var stdout, stderr bytes.Buffer
	d := New(Options{Stdout: &stdout, Stderr: &stderr})

	path := filepath.Join(t.TempDir(), "missing.ml")
	status, err := d.Run(context.Background(), path)

	if err == nil {
		t.Fatal("Run() should fail for a missing file")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeSourceUnreadable) {
		t.Errorf("code = %v, want SOURCE_UNREADABLE", mdwerror.GetCode(err))
	}
	if status != ExitFatal {
		t.Errorf("status = %d, want %d", status, ExitFatal)
	}
	if stdout.Len() != 0 {
		t.Errorf("nothing should be printed, got %q", stdout.String())
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) || mdwErr.Message() != "Could not open file: "+path {
		t.Errorf("message = %v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := New(Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}).Run(ctx, writeSource(t, cleanSource))
	if err == nil {
		t.Fatal("expected an error")
	}
	if status != ExitFatal {
		t.Errorf("status = %d, want %d", status, ExitFatal)
	}
}

func TestCompileFile_Cache(t *testing.T) {
	c := cache.New[*minilang.Result](cache.DefaultConfig())
	d := New(Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Cache: c})
	path := writeSource(t, cleanSource)

	first, err := d.CompileFile(context.Background(), path)
	if err != nil {
		t.Fatalf("CompileFile() error = %v", err)
	}
	second, err := d.CompileFile(context.Background(), path)
	if err != nil {
		t.Fatalf("CompileFile() error = %v", err)
	}
	if first != second {
		t.Error("unchanged source was compiled again")
	}

	if err := os.WriteFile(path, []byte("Program Start End End"), 0644); err != nil {
		t.Fatal(err)
	}
	third, err := d.CompileFile(context.Background(), path)
	if err != nil {
		t.Fatalf("CompileFile() error = %v", err)
	}
	if third == first || third.RunID == first.RunID {
		t.Error("changed source reused the cached result")
	}
	if hits, misses, _ := c.Stats(); hits != 1 || misses != 2 {
		t.Errorf("Stats() = %d hits, %d misses; want 1, 2", hits, misses)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReport_WriteError(t *testing.T) {
	d := New(Options{Stdout: failingWriter{}, Stderr: &bytes.Buffer{}})
	err := d.Report(minilang.Compile(cleanSource))
	if !mdwerror.HasCode(err, mdwerror.CodeInternal) {
		t.Errorf("Report() error = %v, want INTERNAL", err)
	}
}

func TestStyles_Diagnostic(t *testing.T) {
	res := minilang.Compile("Program Start Print(y); End End")
	d := res.Diagnostics.Diagnostics()[0]

	// A buffer is not a terminal, so even colored styles render plain text.
	for _, color := range []bool{true, false} {
		if got := NewStyles(&bytes.Buffer{}, color).Diagnostic(d); got != d.String() {
			t.Errorf("color=%v: %q, want %q", color, got, d.String())
		}
	}
}
