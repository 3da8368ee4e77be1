// File: doc.go
// Title: minilang Diagnostics Package Documentation
// Description: Diagnostic model shared by the lexer, parser and semantic
//              analyzer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

/*
Package diag defines compiler diagnostics and the sinks they are reported to.

A Diagnostic carries the phase that found the problem (Lexical, Syntax,
Semantic), a severity (Warning or Error), the 1-based line and 0-based column
of the offending token and a message. Phases never stop on a diagnostic; they
report it to a Sink and continue.

List is the append-only sink used by the pipeline. It keeps diagnostics in
the order they were reported, which follows token order within a phase.
WriterSink echoes each diagnostic as one line to an io.Writer, and Tee fans a
report out to several sinks.
*/
package diag
