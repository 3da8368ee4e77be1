// File: visitor.go
// Title: minilang AST Visitor
// Description: The Visitor interface with one method per node kind, and a
//              generic depth-first Inspect built on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor implementation

package ast

// Visitor is implemented by every traversal of the tree. Visitors decide
// themselves whether and in which order to descend into children.
type Visitor interface {
	VisitProgram(n *Program)
	VisitVarDecl(n *VarDecl)
	VisitBlock(n *Block)
	VisitPrint(n *Print)
	VisitRead(n *Read)
	VisitBinaryExpr(n *BinaryExpr)
	VisitIdentifier(n *Identifier)
	VisitIntLiteral(n *IntLiteral)
}

// Inspect traverses the tree rooted at node in source order, calling fn for
// each node. If fn returns false, the children of that node are skipped.
// Absent nodes, nil pointers included, are not visited.
func Inspect(node Node, fn func(Node) bool) {
	if IsNil(node) || fn == nil {
		return
	}
	node.Accept(&inspector{fn: fn})
}

type inspector struct {
	fn func(Node) bool
}

func (in *inspector) visit(n Node) {
	if !IsNil(n) {
		n.Accept(in)
	}
}

func (in *inspector) VisitProgram(n *Program) {
	if !in.fn(n) {
		return
	}
	for _, d := range n.Decls {
		if d != nil {
			in.visit(d)
		}
	}
	if n.Block != nil {
		in.visit(n.Block)
	}
}

func (in *inspector) VisitVarDecl(n *VarDecl) {
	in.fn(n)
}

func (in *inspector) VisitBlock(n *Block) {
	if !in.fn(n) {
		return
	}
	for _, s := range n.Statements {
		in.visit(s)
	}
}

func (in *inspector) VisitPrint(n *Print) {
	if in.fn(n) {
		in.visit(n.Expr)
	}
}

func (in *inspector) VisitRead(n *Read) {
	in.fn(n)
}

func (in *inspector) VisitBinaryExpr(n *BinaryExpr) {
	if !in.fn(n) {
		return
	}
	in.visit(n.Left)
	in.visit(n.Right)
}

func (in *inspector) VisitIdentifier(n *Identifier) {
	in.fn(n)
}

func (in *inspector) VisitIntLiteral(n *IntLiteral) {
	in.fn(n)
}
