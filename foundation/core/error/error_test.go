// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severities and
//              detail handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Compiler codes, exit status mapping

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error",
			err:      New("no such file").WithCode(CodeSourceUnreadable),
			message:  "cannot load source",
			wantMsg:  "cannot load source: no such file",
			wantCode: CodeSourceUnreadable,
		},
		{
			name:     "wrap fmt-wrapped structured error",
			err:      fmt.Errorf("outer: %w", New("bad config").WithCode(CodeInvalidConfig)),
			message:  "startup",
			wantMsg:  "startup: outer: bad config",
			wantCode: CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}

	if rootCause := top.RootCause(); rootCause != original {
		t.Errorf("RootCause() = %v, want %v", rootCause, original)
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		code         Code
		wantSeverity Severity
	}{
		{CodeSourceUnreadable, SeverityCritical},
		{CodeUsage, SeverityHigh},
		{CodeCompilationFailed, SeverityMedium},
		{CodeSyntax, SeverityLow},
		{CodeSemantic, SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("test error").WithCode(tt.code)
			if err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.code)
			}
			if err.Severity() != tt.wantSeverity {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.wantSeverity)
			}
		})
	}
}

func TestWithCode_ExplicitSeverityWins(t *testing.T) {
	err := New("test error").WithSeverity(SeverityCritical).WithCode(CodeSyntax)

	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetail(t *testing.T) {
	err := New("test error").
		WithDetail("line", 3).
		WithDetail("lexeme", "abc")

	details := err.Details()
	if len(details) != 2 {
		t.Errorf("Details() length = %d, want 2", len(details))
	}
	if details["line"] != 3 {
		t.Errorf("Details()[\"line\"] = %v, want 3", details["line"])
	}

	// Details must be a copy
	details["line"] = 99
	if v, _ := err.Detail("line"); v != 3 {
		t.Errorf("Detail(\"line\") = %v after mutating copy, want 3", v)
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"line":   1,
		"column": 7,
		"phase":  "Syntax",
	}

	err := New("test error").WithDetails(details)

	errDetails := err.Details()
	if len(errDetails) != 3 {
		t.Errorf("Details() length = %d, want 3", len(errDetails))
	}
	for k, v := range details {
		if errDetails[k] != v {
			t.Errorf("Details()[%q] = %v, want %v", k, errDetails[k], v)
		}
	}
}

func TestString(t *testing.T) {
	err := New("cannot read").
		WithCode(CodeSourceUnreadable).
		WithOperation("driver.LoadSource").
		WithDetail("path", "x.ml").
		WithDetail("attempt", 1)

	s := err.String()
	for _, want := range []string{
		"Error: cannot read",
		"Code: SOURCE_UNREADABLE",
		"Severity: critical",
		"Operation: driver.LoadSource",
		"Details: {attempt=1, path=x.ml}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "read failed").
		WithCode(CodeSourceUnreadable).
		WithOperation("driver.LoadSource")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "SOURCE_UNREADABLE" {
		t.Errorf("code = %v, want SOURCE_UNREADABLE", decoded["code"])
	}
	if decoded["cause"] != "eof" {
		t.Errorf("cause = %v, want eof", decoded["cause"])
	}
	if decoded["operation"] != "driver.LoadSource" {
		t.Errorf("operation = %v, want driver.LoadSource", decoded["operation"])
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	err := fmt.Errorf("context: %w", New("x").WithCode(CodeUsage))

	if !HasCode(err, CodeUsage) {
		t.Error("HasCode() should see through fmt wrapping")
	}
	if HasCode(err, CodeSyntax) {
		t.Error("HasCode() reported wrong code")
	}
	if GetCode(err) != CodeUsage {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeUsage)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() on a plain error should be SeverityMedium")
	}
}

func TestCode_IsValidAndCategory(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
	}{
		{CodeUnknown, true, "generic"},
		{CodeUsage, true, "driver"},
		{CodeSourceUnreadable, true, "driver"},
		{CodeWatchFailed, true, "driver"},
		{CodeInvalidConfig, true, "configuration"},
		{CodeLexical, true, "compiler"},
		{CodeSyntax, true, "compiler"},
		{CodeSemantic, true, "compiler"},
		{Code("NOPE"), false, "generic"},
		{Code(""), false, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
		})
	}
}

func TestCode_ExitStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeCompilationFailed, 2},
		{CodeSyntax, 2},
		{CodeUsage, 1},
		{CodeSourceUnreadable, 1},
		{CodeUnknown, 1},
	}

	for _, tt := range tests {
		if got := tt.code.ExitStatus(); got != tt.want {
			t.Errorf("%s.ExitStatus() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
		fatal    bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", false},
		{SeverityCritical, "critical", true},
		{Severity(42), "unknown", false},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.severity.IsFatal(); got != tt.fatal {
			t.Errorf("%s.IsFatal() = %v, want %v", tt.want, got, tt.fatal)
		}
	}
}
