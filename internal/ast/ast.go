// Package ast defines the Abstract Syntax Tree node types produced by
// the parser and consumed by the semantic analyzer and code generator.
package ast

import "github.com/cwbudde/go-pyjs/internal/token"

// Node is the base interface every AST node implements.
type Node interface {
	Pos() token.Position
	String() string
}

// Statement is a node that performs an action but does not itself
// produce a value.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// BaseNode carries the position shared by every node variant. It is
// embedded, never used standalone.
type BaseNode struct {
	Position token.Position
}

// Pos returns the node's source position.
func (b BaseNode) Pos() token.Position { return b.Position }

// Program is the AST root: an ordered sequence of top-level statements.
type Program struct {
	BaseNode
	Statements []Statement
}

func (p *Program) String() string {
	out := ""
	for _, s := range p.Statements {
		out += s.String() + "\n"
	}
	return out
}

// Block is an ordered sequence of statements. Every Block is reachable
// from exactly one parent; the AST is a tree, never a DAG.
type Block struct {
	BaseNode
	Statements []Statement
}

func (b *Block) String() string {
	out := ""
	for _, s := range b.Statements {
		out += s.String() + "\n"
	}
	return out
}

// statementNode lets a *Block stand in a Statement-typed switch (the
// analyzer and code generator both dispatch on a Block nested inside
// an `else` arm before it has been narrowed out of the general
// Statement/Node switches).
func (b *Block) statementNode() {}
