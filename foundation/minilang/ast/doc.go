// File: doc.go
// Title: minilang Abstract Syntax Tree Package Documentation
// Description: Node definitions, visitor, renderers and traversal helpers for
//              parsed minilang programs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST implementation

/*
Package ast defines the syntax tree of a minilang program.

The node set is closed. Node carries an unexported marker method, so only
the eight kinds declared here can be nodes:

	Program     VarDecl*, Block
	VarDecl     name
	Block       Stmt*
	Print       Expr            (Stmt)
	Read        name            (Stmt)
	BinaryExpr  op, Expr, Expr  (Expr)
	Identifier  name            (Expr)
	IntLiteral  digits          (Expr)

Block is also a Stmt, which is how nested Start ... End blocks appear inside
a block.

Every traversal implements Visitor, which has exactly one method per node
kind. Adding a node kind therefore breaks the build of every traversal until
it handles the new kind.

The tree is a strict ownership tree: every child is referenced from exactly
one parent and nodes hold no references upward. The parser builds it, later
phases only read it.
*/
package ast
