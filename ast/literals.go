package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/amoskeag/internal/token"
)

// NumberLit is an expression node that holds a numeric literal.
type NumberLit struct {
	ValuePos token.Position
	Literal  string
	Value    float64
}

func (x *NumberLit) exprNode() {}

func (x *NumberLit) Pos() token.Position { return x.ValuePos }
func (x *NumberLit) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }
func (x *NumberLit) String() string      { return x.Literal }

// StringLit is an expression node that holds a string literal.
type StringLit struct {
	ValuePos token.Position
	Literal  string // the decoded token text, used only for End() span math
	Value    string // the string value
}

func (x *StringLit) exprNode() {}

func (x *StringLit) Pos() token.Position { return x.ValuePos }
func (x *StringLit) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }
func (x *StringLit) String() string      { return fmt.Sprintf("%q", x.Value) }

// BoolLit is an expression node that holds a boolean literal.
type BoolLit struct {
	ValuePos token.Position
	Value    bool
}

func (x *BoolLit) exprNode() {}

func (x *BoolLit) Pos() token.Position { return x.ValuePos }
func (x *BoolLit) End() token.Position {
	if x.Value {
		return x.ValuePos.Advance(4) // len("true")
	}
	return x.ValuePos.Advance(5) // len("false")
}

func (x *BoolLit) String() string {
	if x.Value {
		return "true"
	}
	return "false"
}

// NilLit is an expression node that holds the nil literal.
type NilLit struct {
	NilPos token.Position
}

func (x *NilLit) exprNode() {}

func (x *NilLit) Pos() token.Position { return x.NilPos }
func (x *NilLit) End() token.Position { return x.NilPos.Advance(3) } // len("nil")
func (x *NilLit) String() string      { return "nil" }

// SymbolLit is an expression node that holds a symbol literal, e.g. :approve
// or :"has.dots".
type SymbolLit struct {
	ColonPos token.Position // position of ":"
	Name     string
}

func (x *SymbolLit) exprNode() {}

func (x *SymbolLit) Pos() token.Position { return x.ColonPos }
func (x *SymbolLit) End() token.Position { return x.ColonPos.Advance(1 + len(x.Name)) }
func (x *SymbolLit) String() string      { return ":" + x.Name }

// ArrayLit is an expression node that builds an array value.
type ArrayLit struct {
	Lbracket token.Position
	Elements []Expr
	Rbracket token.Position
}

func (x *ArrayLit) exprNode() {}

func (x *ArrayLit) Pos() token.Position { return x.Lbracket }
func (x *ArrayLit) End() token.Position { return x.Rbracket.Advance(1) }

func (x *ArrayLit) String() string {
	var out bytes.Buffer
	elements := make([]string, 0, len(x.Elements))
	for _, el := range x.Elements {
		elements = append(elements, el.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")
	return out.String()
}

// DictEntry represents a single key-value pair in a dict literal.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// DictLit is an expression node that builds a dictionary value. Keys must be
// string-valued expressions and are checked for uniqueness during validation,
// not parsing.
type DictLit struct {
	Lbrace  token.Position
	Entries []DictEntry
	Rbrace  token.Position
}

func (x *DictLit) exprNode() {}

func (x *DictLit) Pos() token.Position { return x.Lbrace }
func (x *DictLit) End() token.Position { return x.Rbrace.Advance(1) }

func (x *DictLit) String() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(x.Entries))
	for _, e := range x.Entries {
		pairs = append(pairs, e.Key.String()+": "+e.Value.String())
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}
