// Package error provides structured error handling for the minilang tool chain.
//
// Package: error
// Title: minilang Error Handling
// Description: Implements an error type that carries a code, a severity, an
//              operation name and key/value details. Compiler diagnostics are
//              converted into these errors when they must leave the pipeline
//              (exit status decisions, logging), and infrastructure failures such
//              as an unreadable source file are reported with them directly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Compiler error codes, trimmed localization support
//
// Usage:
//
//	err := error.New("cannot read source file").
//		WithCode(error.CodeSourceUnreadable).
//		WithOperation("driver.LoadSource").
//		WithDetail("path", path)
//
//	if error.HasCode(err, error.CodeSourceUnreadable) {
//		// fatal
//	}
package error
