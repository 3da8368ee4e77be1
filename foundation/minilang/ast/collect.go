// File: collect.go
// Title: minilang AST Collectors
// Description: Small queries over a tree used by tests, the driver summary
//              and the terminal inspector.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial collectors

package ast

// Count returns the number of nodes in the tree rooted at node
func Count(node Node) int {
	n := 0
	Inspect(node, func(Node) bool {
		n++
		return true
	})
	return n
}

// Depth returns the nesting depth of the tree, 1 for a single node and 0 for
// nil
func Depth(node Node) int {
	if IsNil(node) {
		return 0
	}
	d := &depthVisitor{}
	node.Accept(d)
	return d.max
}

// Declared returns the declared variable names in declaration order,
// including repeats
func Declared(p *Program) []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Decls))
	for _, d := range p.Decls {
		if d != nil {
			names = append(names, d.Name)
		}
	}
	return names
}

// Uses returns every variable reference (Identifier and Read target) in
// source order, including repeats
func Uses(node Node) []string {
	var names []string
	Inspect(node, func(n Node) bool {
		switch n := n.(type) {
		case *Identifier:
			names = append(names, n.Name)
		case *Read:
			names = append(names, n.Name)
		}
		return true
	})
	return names
}

type depthVisitor struct {
	cur, max int
}

func (d *depthVisitor) enter(children func()) {
	d.cur++
	if d.cur > d.max {
		d.max = d.cur
	}
	children()
	d.cur--
}

func (d *depthVisitor) accept(n Node) {
	if !IsNil(n) {
		n.Accept(d)
	}
}

func (d *depthVisitor) VisitProgram(n *Program) {
	d.enter(func() {
		for _, v := range n.Decls {
			if v != nil {
				d.accept(v)
			}
		}
		if n.Block != nil {
			d.accept(n.Block)
		}
	})
}

func (d *depthVisitor) VisitVarDecl(*VarDecl) { d.enter(func() {}) }

func (d *depthVisitor) VisitBlock(n *Block) {
	d.enter(func() {
		for _, s := range n.Statements {
			d.accept(s)
		}
	})
}

func (d *depthVisitor) VisitPrint(n *Print) {
	d.enter(func() { d.accept(n.Expr) })
}

func (d *depthVisitor) VisitRead(*Read) { d.enter(func() {}) }

func (d *depthVisitor) VisitBinaryExpr(n *BinaryExpr) {
	d.enter(func() {
		d.accept(n.Left)
		d.accept(n.Right)
	})
}

func (d *depthVisitor) VisitIdentifier(*Identifier) { d.enter(func() {}) }
func (d *depthVisitor) VisitIntLiteral(*IntLiteral) { d.enter(func() {}) }
