// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the mapping from error
//              codes to their default severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for compiler codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem in user input that does not stop the tool
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects the current operation only
	SeverityMedium

	// SeverityHigh indicates an error that stops the current command
	SeverityHigh

	// SeverityCritical indicates an error that terminates the process
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// IsFatal returns true if this severity should terminate the process
func (s Severity) IsFatal() bool {
	return s == SeverityCritical
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeSourceUnreadable:
		return SeverityCritical

	case CodeInternal, CodeUsage, CodeConfigError, CodeInvalidConfig, CodeWatchFailed:
		return SeverityHigh

	case CodeCompilationFailed:
		return SeverityMedium

	case CodeLexical, CodeSyntax, CodeSemantic, CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
