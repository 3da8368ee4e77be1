// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the minilang tool chain,
//              grouped into infrastructure, configuration and compiler
//              categories.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with platform error codes
// - 2026-10-19 v0.2.0: Replaced platform codes with compiler codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Driver and I/O
	CodeUsage            Code = "USAGE"
	CodeSourceUnreadable Code = "SOURCE_UNREADABLE"
	CodeWatchFailed      Code = "WATCH_FAILED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Compiler phases
	CodeLexical           Code = "MINILANG_LEXICAL"
	CodeSyntax            Code = "MINILANG_SYNTAX"
	CodeSemantic          Code = "MINILANG_SEMANTIC"
	CodeCompilationFailed Code = "COMPILATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeUsage, CodeSourceUnreadable, CodeWatchFailed,
		CodeConfigError, CodeInvalidConfig,
		CodeLexical, CodeSyntax, CodeSemantic, CodeCompilationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUsage, CodeSourceUnreadable, CodeWatchFailed:
		return "driver"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeLexical, CodeSyntax, CodeSemantic, CodeCompilationFailed:
		return "compiler"
	default:
		return "generic"
	}
}

// ExitStatus returns the process exit status a command should use when it
// terminates because of an error with this code.
func (c Code) ExitStatus() int {
	switch c {
	case CodeCompilationFailed, CodeLexical, CodeSyntax, CodeSemantic:
		return 2
	default:
		return 1
	}
}
