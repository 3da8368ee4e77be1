// File: nodes.go
// Title: minilang AST Node Definitions
// Description: Defines the eight node kinds of the minilang syntax tree and
//              the Node, Stmt and Expr interfaces that close the set.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
)

// Position is the source location of the token a node starts with
type Position struct {
	Line   int // 1-based
	Column int // 0-based
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is implemented by all AST nodes
type Node interface {
	// Position returns the source position of the node
	Position() Position

	// Accept calls the visitor method for the node's kind
	Accept(v Visitor)

	node()
}

// Stmt is a node that may appear in a Block
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a node that may appear as an operand
type Expr interface {
	Node
	exprNode()
}

// Program is the root: variable declarations followed by one block
type Program struct {
	Decls []*VarDecl
	Block *Block
	Pos   Position
}

// VarDecl declares one variable
type VarDecl struct {
	Name string
	Pos  Position
}

// Block is a Start ... End statement list, possibly empty
type Block struct {
	Statements []Stmt
	Pos        Position
}

// Print outputs the value of an expression
type Print struct {
	Expr Expr
	Pos  Position
}

// Read reads into a variable. The target is a bare name, not an expression.
type Read struct {
	Name string
	Pos  Position
}

// BinaryExpr is Left Op Right with Op "+" or "-"
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
	Pos   Position
}

// Identifier is a use of a variable
type Identifier struct {
	Name string
	Pos  Position
}

// IntLiteral is an integer numeral kept as written
type IntLiteral struct {
	Value string
	Pos   Position
}

func (n *Program) Position() Position    { return n.Pos }
func (n *VarDecl) Position() Position    { return n.Pos }
func (n *Block) Position() Position      { return n.Pos }
func (n *Print) Position() Position      { return n.Pos }
func (n *Read) Position() Position       { return n.Pos }
func (n *BinaryExpr) Position() Position { return n.Pos }
func (n *Identifier) Position() Position { return n.Pos }
func (n *IntLiteral) Position() Position { return n.Pos }

func (n *Program) Accept(v Visitor)    { v.VisitProgram(n) }
func (n *VarDecl) Accept(v Visitor)    { v.VisitVarDecl(n) }
func (n *Block) Accept(v Visitor)      { v.VisitBlock(n) }
func (n *Print) Accept(v Visitor)      { v.VisitPrint(n) }
func (n *Read) Accept(v Visitor)       { v.VisitRead(n) }
func (n *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(n) }
func (n *Identifier) Accept(v Visitor) { v.VisitIdentifier(n) }
func (n *IntLiteral) Accept(v Visitor) { v.VisitIntLiteral(n) }

func (*Program) node()    {}
func (*VarDecl) node()    {}
func (*Block) node()      {}
func (*Print) node()      {}
func (*Read) node()       {}
func (*BinaryExpr) node() {}
func (*Identifier) node() {}
func (*IntLiteral) node() {}

func (*Block) stmtNode() {}
func (*Print) stmtNode() {}
func (*Read) stmtNode()  {}

func (*BinaryExpr) exprNode() {}
func (*Identifier) exprNode() {}
func (*IntLiteral) exprNode() {}

// IsNil reports whether node is absent: a nil interface or a typed nil
// pointer such as the *Program of a failed parse
func IsNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Program:
		return n == nil
	case *VarDecl:
		return n == nil
	case *Block:
		return n == nil
	case *Print:
		return n == nil
	case *Read:
		return n == nil
	case *BinaryExpr:
		return n == nil
	case *Identifier:
		return n == nil
	case *IntLiteral:
		return n == nil
	}
	return false
}
