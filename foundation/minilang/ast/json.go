// File: json.go
// Title: minilang AST JSON Renderer
// Description: Machine-readable rendering of a syntax tree. Every node
//              becomes an object with "type" and "pos" plus its own fields.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial JSON renderer

package ast

import (
	"encoding/json"
	"io"
)

// FprintJSON writes an indented JSON representation of node to w
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(node))
}

// ToJSON converts node into maps and slices ready for encoding/json
func ToJSON(node Node) interface{} {
	if IsNil(node) {
		return nil
	}
	b := &jsonBuilder{}
	node.Accept(b)
	return b.out
}

type jsonObject = map[string]interface{}

type jsonBuilder struct {
	out interface{}
}

func (b *jsonBuilder) build(n Node) interface{} {
	if IsNil(n) {
		return nil
	}
	sub := &jsonBuilder{}
	n.Accept(sub)
	return sub.out
}

func object(kind string, pos Position) jsonObject {
	return jsonObject{"type": kind, "pos": pos.String()}
}

func (b *jsonBuilder) VisitProgram(n *Program) {
	decls := make([]interface{}, 0, len(n.Decls))
	for _, d := range n.Decls {
		if d != nil {
			decls = append(decls, b.build(d))
		}
	}
	o := object("Program", n.Pos)
	o["decls"] = decls
	if n.Block != nil {
		o["block"] = b.build(n.Block)
	} else {
		o["block"] = nil
	}
	b.out = o
}

func (b *jsonBuilder) VisitVarDecl(n *VarDecl) {
	o := object("VarDecl", n.Pos)
	o["name"] = n.Name
	b.out = o
}

func (b *jsonBuilder) VisitBlock(n *Block) {
	stmts := make([]interface{}, 0, len(n.Statements))
	for _, s := range n.Statements {
		stmts = append(stmts, b.build(s))
	}
	o := object("Block", n.Pos)
	o["statements"] = stmts
	b.out = o
}

func (b *jsonBuilder) VisitPrint(n *Print) {
	o := object("Print", n.Pos)
	o["expr"] = b.build(n.Expr)
	b.out = o
}

func (b *jsonBuilder) VisitRead(n *Read) {
	o := object("Read", n.Pos)
	o["name"] = n.Name
	b.out = o
}

func (b *jsonBuilder) VisitBinaryExpr(n *BinaryExpr) {
	o := object("BinaryExpr", n.Pos)
	o["op"] = n.Op
	o["left"] = b.build(n.Left)
	o["right"] = b.build(n.Right)
	b.out = o
}

func (b *jsonBuilder) VisitIdentifier(n *Identifier) {
	o := object("Identifier", n.Pos)
	o["name"] = n.Name
	b.out = o
}

func (b *jsonBuilder) VisitIntLiteral(n *IntLiteral) {
	o := object("IntLiteral", n.Pos)
	o["value"] = n.Value
	b.out = o
}
