// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formatters, context propagation
//              and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial tests
// - 2026-10-19 v0.2.0: Rewritten for the reduced logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/minilang/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "console", "logfmt"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q) unexpected error: %v", name, err)
		}
		if f.String() != name {
			t.Errorf("ParseFormat(%q).String() = %q", name, f.String())
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were written: %q", out)
	}
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestLogger_NopDiscardsEverything(t *testing.T) {
	logger := NewNop()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("nop logger should not enable any level")
	}
	logger.Error("nothing")
}

func TestLogger_WithFieldDoesNotAffectParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	child := parent.WithField("phase", "lex")

	parent.Info("from parent")
	if strings.Contains(buf.String(), "phase=") {
		t.Errorf("parent picked up child field: %q", buf.String())
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), `phase="lex"`) {
		t.Errorf("child field missing: %q", buf.String())
	}
}

func TestJSONFormatter_Fields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithName("compiler").WithCorrelationID("run-1").Debug("tokens", Int("count", 7))

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	checks := map[string]interface{}{
		"level":          "debug",
		"message":        "tokens",
		"logger":         "compiler",
		"correlation_id": "run-1",
		"count":          float64(7),
	}
	for k, want := range checks {
		if got[k] != want {
			t.Errorf("field %s = %v, want %v", k, got[k], want)
		}
	}
}

func TestLogger_ErrorWithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)
	logger.ErrorWithErr("watching stopped", errors.New("file vanished"), String("path", "prog.ml"))

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	checks := map[string]interface{}{
		"level":   "error",
		"message": "watching stopped",
		"error":   "file vanished",
		"path":    "prog.ml",
	}
	for k, want := range checks {
		if got[k] != want {
			t.Errorf("field %s = %v, want %v", k, got[k], want)
		}
	}
}

func TestLogfmtFormatter_SortedFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	logger.Info("x", Fields{"zeta": 1, "alpha": 2, "mid": 3})

	out := buf.String()
	a, m, z := strings.Index(out, "alpha="), strings.Index(out, "mid="), strings.Index(out, "zeta=")
	if a < 0 || m < 0 || z < 0 || !(a < m && m < z) {
		t.Errorf("fields not in lexical order: %q", out)
	}
}

func TestConsoleFormatter_Colors(t *testing.T) {
	entry := NewEntry(LevelError, "boom")

	colored, _ := NewConsoleFormatter().Format(entry)
	if !strings.HasPrefix(string(colored), LevelError.Color()) {
		t.Errorf("expected color prefix, got %q", colored)
	}

	plain := NewConsoleFormatter()
	plain.DisableColors = true
	out, _ := plain.Format(entry)
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors not disabled: %q", out)
	}
}

func TestLogger_LogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"low severity", mdwerror.New("bad token").WithCode(mdwerror.CodeLexical), "info"},
		{"high severity", mdwerror.New("bad config").WithCode(mdwerror.CodeConfigError), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var got map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if got["level"] != tt.level {
				t.Errorf("level = %v, want %s", got["level"], tt.level)
			}
		})
	}
}

func TestTimer_StopOnce(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("parse")
	if !timer.IsRunning() {
		t.Fatal("new timer should be running")
	}
	timer.StopWithCount("nodes", 4)
	if timer.IsRunning() {
		t.Error("timer still running after stop")
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop returned %v, want 0", d)
	}

	out := buf.String()
	if strings.Count(out, "parse completed") != 1 {
		t.Errorf("expected exactly one completion line, got %q", out)
	}
	if !strings.Contains(out, "nodes=4") {
		t.Errorf("count field missing: %q", out)
	}
}

func TestTimer_StopWithErrorRaisesLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.StartTimer("lex").StopWithError(errors.New("unreadable"))

	if !strings.Contains(buf.String(), "lex failed") {
		t.Errorf("failure not logged at warn: %q", buf.String())
	}
}
