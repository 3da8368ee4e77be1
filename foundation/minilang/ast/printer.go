// File: printer.go
// Title: minilang AST Text Renderer
// Description: Renders a syntax tree as indented text: one labeled line per
//              node, two spaces per depth, children one level deeper than
//              their parent. Output depends only on the tree shape.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial renderer

package ast

import (
	"io"
	"strings"
)

const indentUnit = "  "

// Fprint writes the indented rendering of node to w. A nil node, including
// the nil *Program of a failed parse, writes nothing. The first write error
// is returned.
func Fprint(w io.Writer, node Node) error {
	if IsNil(node) {
		return nil
	}
	p := &printer{w: w}
	node.Accept(p)
	return p.err
}

// Render returns the indented rendering of node
func Render(node Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, node)
	return sb.String()
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) line(label string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, strings.Repeat(indentUnit, p.depth)+label+"\n")
}

// nested renders fn one level deeper
func (p *printer) nested(fn func()) {
	p.depth++
	fn()
	p.depth--
}

func (p *printer) child(n Node) {
	if !IsNil(n) {
		p.nested(func() { n.Accept(p) })
	}
}

func (p *printer) VisitProgram(n *Program) {
	p.line("Program")
	p.nested(func() {
		p.line("Variables:")
		p.nested(func() {
			for _, d := range n.Decls {
				if d != nil {
					d.Accept(p)
				}
			}
		})
		p.line("Block:")
		if n.Block != nil {
			p.child(n.Block)
		}
	})
}

func (p *printer) VisitVarDecl(n *VarDecl) {
	p.line("VarDecl: " + n.Name)
}

func (p *printer) VisitBlock(n *Block) {
	p.line("Block")
	for _, s := range n.Statements {
		p.child(s)
	}
}

func (p *printer) VisitPrint(n *Print) {
	p.line("Print")
	p.child(n.Expr)
}

func (p *printer) VisitRead(n *Read) {
	p.line("Read: " + n.Name)
}

func (p *printer) VisitBinaryExpr(n *BinaryExpr) {
	p.line("BinaryExpr: " + n.Op)
	p.child(n.Left)
	p.child(n.Right)
}

func (p *printer) VisitIdentifier(n *Identifier) {
	p.line("Identifier: " + n.Name)
}

func (p *printer) VisitIntLiteral(n *IntLiteral) {
	p.line("IntLiteral: " + n.Value)
}
