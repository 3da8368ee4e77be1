package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	cleanSource      = "Program Var abcd; Start Print(abcd); End End"
	undeclaredSource = "Program Start Print(x); End End"
)

// resetFlags restores every flag of the command tree to its default so that
// tests do not see each other's values
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execCmd runs the command line in an empty working directory and returns
// the exit status, stdout and stderr
func execCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("MINILANG_CONFIG", "")

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	status := execute(context.Background(), args)
	return status, stdout.String(), stderr.String()
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.ml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}
	return path
}

func TestRoot_Compile(t *testing.T) {
	path := writeSource(t, cleanSource)
	status, stdout, stderr := execCmd(t, path)

	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
	for _, want := range []string{"=== Tokens ===", "=== AST ===", "=== Semantic Analysis ===", "Compilation completed."} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestRoot_Usage(t *testing.T) {
	status, stdout, stderr := execCmd(t)

	if status != 1 {
		t.Errorf("status = %d, want 1", status)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.HasPrefix(stderr, "Usage: mlc") {
		t.Errorf("stderr = %q, want usage line", stderr)
	}
}

func TestRoot_UnreadableFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ml")
	status, _, stderr := execCmd(t, missing)

	if status != 1 {
		t.Errorf("status = %d, want 1", status)
	}
	want := "Error: Could not open file: " + missing
	if !strings.Contains(stderr, want) {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestRoot_Strict(t *testing.T) {
	path := writeSource(t, undeclaredSource)

	tests := []struct {
		name   string
		args   []string
		status int
		final  string
	}{
		{"default", []string{path}, 0, "Compilation completed."},
		{"strict", []string{"--strict", path}, 2, "Compilation completed with errors."},
		{"strict off", []string{"--strict=false", path}, 0, "Compilation completed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, stdout, stderr := execCmd(t, tt.args...)
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if !strings.HasSuffix(stdout, "\n"+tt.final+"\n") {
				t.Errorf("stdout does not end with %q:\n%s", tt.final, stdout)
			}
			if !strings.Contains(stderr, "Undeclared variable 'x'") {
				t.Errorf("stderr = %q, want undeclared diagnostic", stderr)
			}
		})
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	path := writeSource(t, undeclaredSource)
	cfg := filepath.Join(t.TempDir(), "mlc.toml")
	content := "[compile]\nstrict = true\n\n[output]\ntokens = false\n"
	if err := os.WriteFile(cfg, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	status, stdout, _ := execCmd(t, "--config", cfg, path)
	if status != 2 {
		t.Errorf("status = %d, want 2", status)
	}
	if strings.Contains(stdout, "=== Tokens ===") {
		t.Errorf("tokens printed although output.tokens = false:\n%s", stdout)
	}
}

func TestRoot_InvalidFlag(t *testing.T) {
	path := writeSource(t, cleanSource)
	status, _, stderr := execCmd(t, "--width", "0", path)

	if status != 1 {
		t.Errorf("status = %d, want 1", status)
	}
	if !strings.Contains(stderr, "lexer.identifier_width") {
		t.Errorf("stderr = %q, want config error", stderr)
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, cleanSource)
	status, stdout, _ := execCmd(t, "tokens", path)

	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 13 {
		t.Fatalf("got %d lines, want 13:\n%s", len(lines), stdout)
	}
	if lines[12] != `Token(EOF, "EOF", line: 1, col: 44)` {
		t.Errorf("last line = %q", lines[12])
	}
}

func TestTokensCommand_Width(t *testing.T) {
	path := writeSource(t, "Program Var abcdefgh; Start End End")
	_, stdout, _ := execCmd(t, "tokens", "--width", "3", path)

	if !strings.Contains(stdout, `Token(IDENTIFIER, "abc", line: 1, col: 12)`) {
		t.Errorf("identifier not truncated to 3 characters:\n%s", stdout)
	}
}

func TestASTCommand(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		args   []string
		status int
		want   string
	}{
		{"text", cleanSource, nil, 0, "    VarDecl: abcd\n"},
		{"json", cleanSource, []string{"--json"}, 0, `"type": "Program"`},
		{"no tree", "Var x;", nil, 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSource(t, tt.src)
			args := append([]string{"ast"}, tt.args...)
			status, stdout, _ := execCmd(t, append(args, path)...)

			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("stdout missing %q:\n%s", tt.want, stdout)
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		args   []string
		status int
		want   string
	}{
		{"clean", cleanSource, nil, 0, "0 error(s), 0 warning(s)"},
		{"undeclared", undeclaredSource, nil, 2, "1 error(s), 0 warning(s)"},
		{"unused warning", "Program Var idle; Start End End", []string{"--warn-unused"}, 0, "0 error(s), 1 warning(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSource(t, tt.src)
			args := append(append([]string{"check"}, tt.args...), path)
			status, stdout, _ := execCmd(t, args...)

			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	status, stdout, _ := execCmd(t, "version")

	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
	if !strings.HasPrefix(stdout, "mlc v") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestConfigCommand(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"toml", "identifier_width = 5"},
		{"yaml", "identifier_width: 5"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			status, stdout, _ := execCmd(t, "config", "--format", tt.format)
			if status != 0 {
				t.Errorf("status = %d, want 0", status)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("stdout missing %q:\n%s", tt.want, stdout)
			}
		})
	}

	status, _, stderr := execCmd(t, "config", "--format", "ini")
	if status != 1 {
		t.Errorf("unknown format: status = %d, want 1", status)
	}
	if !strings.Contains(stderr, "unknown settings format") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestWatchCommand_Cancelled(t *testing.T) {
	path := writeSource(t, cleanSource)
	t.Chdir(t.TempDir())
	t.Setenv("MINILANG_CONFIG", "")
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	// the initial run happens before the cancelled context is observed
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	execute(ctx, []string{"watch", path})

	if !strings.Contains(stdout.String(), path) {
		t.Errorf("stdout missing run header:\n%s", stdout.String())
	}
}
