// Package ast defines the abstract syntax tree representation of Amoskeag
// expressions.
package ast

import "github.com/deepnoodle-ai/amoskeag/internal/token"

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Expr represents an expression node. Amoskeag programs are a single
// expression tree; there are no statements, blocks, or declarations
// outside of "let ... in ...".
type Expr interface {
	Node
	exprNode()
}

// BadExpr represents an expression containing a syntax error. The parser in
// this module stops at its first error and never produces a BadExpr; the
// validator rejects one if it appears in a tree built by other means.
type BadExpr struct {
	From token.Position
	To   token.Position
}

func (x *BadExpr) exprNode() {}

func (x *BadExpr) Pos() token.Position { return x.From }
func (x *BadExpr) End() token.Position { return x.To }
func (x *BadExpr) String() string      { return "<bad expression>" }
