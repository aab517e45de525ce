package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deepnoodle-ai/amoskeag/ast"
	"github.com/deepnoodle-ai/amoskeag/internal/token"
)

func TestNumberLitString(t *testing.T) {
	n := &ast.NumberLit{Literal: "3.14", Value: 3.14}
	assert.Equal(t, "3.14", n.String())
}

func TestStringLitString(t *testing.T) {
	s := &ast.StringLit{Value: "hi"}
	assert.Equal(t, `"hi"`, s.String())
}

func TestBoolLitEnd(t *testing.T) {
	b := &ast.BoolLit{ValuePos: token.Position{Char: 0}, Value: true}
	assert.Equal(t, 4, b.End().Char)
	b2 := &ast.BoolLit{ValuePos: token.Position{Char: 0}, Value: false}
	assert.Equal(t, 5, b2.End().Char)
}

func TestVarString(t *testing.T) {
	v := &ast.Var{Name: "user", Path: []string{"address", "city"}}
	assert.Equal(t, "user.address.city", v.String())

	bare := &ast.Var{Name: "x"}
	assert.Equal(t, "x", bare.String())
}

func TestSymbolLitString(t *testing.T) {
	s := &ast.SymbolLit{Name: "approve"}
	assert.Equal(t, ":approve", s.String())
}

func TestIfString(t *testing.T) {
	ifExpr := &ast.If{
		Cond: &ast.BoolLit{Value: true},
		Cons: &ast.NumberLit{Literal: "1"},
		Alt:  &ast.NumberLit{Literal: "2"},
	}
	assert.Equal(t, "if true then 1 else 2 end", ifExpr.String())
}

func TestLetString(t *testing.T) {
	letExpr := &ast.Let{
		Name:  "x",
		Value: &ast.NumberLit{Literal: "1"},
		Body:  &ast.Var{Name: "x"},
	}
	assert.Equal(t, "let x = 1 in x", letExpr.String())
}

func TestCallString(t *testing.T) {
	call := &ast.Call{
		FuncName: "max",
		Args: []ast.Expr{
			&ast.NumberLit{Literal: "1"},
			&ast.NumberLit{Literal: "2"},
		},
	}
	assert.Equal(t, "max(1, 2)", call.String())
}

func TestPipeString(t *testing.T) {
	p := &ast.Pipe{
		Lhs: &ast.NumberLit{Literal: "1"},
		Rhs: &ast.Call{FuncName: "abs"},
	}
	assert.Equal(t, "1 | abs()", p.String())
}

func TestArrayLitString(t *testing.T) {
	a := &ast.ArrayLit{Elements: []ast.Expr{
		&ast.NumberLit{Literal: "1"},
		&ast.NumberLit{Literal: "2"},
	}}
	assert.Equal(t, "[1, 2]", a.String())
}

func TestDictLitString(t *testing.T) {
	d := &ast.DictLit{Entries: []ast.DictEntry{
		{Key: &ast.StringLit{Value: "a"}, Value: &ast.NumberLit{Literal: "1"}},
	}}
	assert.Equal(t, `{"a": 1}`, d.String())
}

func TestUnaryString(t *testing.T) {
	u := &ast.Unary{Op: "not", X: &ast.BoolLit{Value: true}}
	assert.Equal(t, "(not true)", u.String())
}

func TestBinaryString(t *testing.T) {
	b := &ast.Binary{X: &ast.NumberLit{Literal: "1"}, Op: "+", Y: &ast.NumberLit{Literal: "2"}}
	assert.Equal(t, "(1 + 2)", b.String())
}
