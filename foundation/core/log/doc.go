// Package log provides structured logging for the minilang tool chain.
//
// Package: log
// Title: minilang Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. Loggers are immutable: every With* method
//              returns a configured copy, so a component can derive its own
//              logger (component name, run correlation id) without affecting
//              the parent. Timers measure compiler phases.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Dropped async and request/user tracing, deterministic field order
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Output: os.Stderr,
//	}).WithField("component", "minilang-compiler")
//
//	timer := logger.StartTimer("parse")
//	defer timer.Stop()
//
// Compiler diagnostics are not log entries. They are reported through the
// diagnostic sink of the minilang packages; the logger records what the tool
// itself is doing.
package log
