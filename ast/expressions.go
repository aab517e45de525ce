package ast

import (
	"bytes"
	"strings"

	"github.com/deepnoodle-ai/amoskeag/internal/token"
)

// Var is an expression node that reads a variable by name and then walks a
// dotted path of dictionary keys, using safe navigation: any missing key or
// non-dictionary intermediate value yields Nil rather than an error.
type Var struct {
	NamePos token.Position
	Name    string
	Path    []string // may be empty for a bare identifier
	endPos  token.Position
}

func (x *Var) exprNode() {}

func (x *Var) Pos() token.Position { return x.NamePos }
func (x *Var) End() token.Position { return x.endPos }

// SetEnd records the end position once the parser has consumed the full
// dotted path; needed because path segments are appended incrementally.
func (x *Var) SetEnd(p token.Position) { x.endPos = p }

func (x *Var) String() string {
	if len(x.Path) == 0 {
		return x.Name
	}
	return x.Name + "." + strings.Join(x.Path, ".")
}

// Unary is a prefix operator expression: "-x" or "not x".
type Unary struct {
	OpPos token.Position
	Op    string // "-" or "not"
	X     Expr
}

func (x *Unary) exprNode() {}

func (x *Unary) Pos() token.Position { return x.OpPos }
func (x *Unary) End() token.Position { return x.X.End() }

func (x *Unary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Op)
	out.WriteString(" ")
	out.WriteString(x.X.String())
	out.WriteString(")")
	return out.String()
}

// Binary is an infix operator expression: "x + y", "x and y", etc.
type Binary struct {
	X     Expr
	OpPos token.Position
	Op    string
	Y     Expr
}

func (x *Binary) exprNode() {}

func (x *Binary) Pos() token.Position { return x.X.Pos() }
func (x *Binary) End() token.Position { return x.Y.End() }

func (x *Binary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// If is an expression node representing "if cond then cons else alt end".
// The "then" keyword is optional syntax with no semantic effect.
type If struct {
	IfPos token.Position
	Cond  Expr
	Cons  Expr
	Alt   Expr // never nil: bare "if" with no matching "else" is a parse error
	EndPos token.Position
}

func (x *If) exprNode() {}

func (x *If) Pos() token.Position { return x.IfPos }
func (x *If) End() token.Position { return x.EndPos.Advance(3) } // len("end")

func (x *If) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(x.Cond.String())
	out.WriteString(" then ")
	out.WriteString(x.Cons.String())
	out.WriteString(" else ")
	out.WriteString(x.Alt.String())
	out.WriteString(" end")
	return out.String()
}

// Let is an expression node representing "let name = value in body".
// Evaluating it binds Name to Value in a new child environment that shadows
// any outer binding of the same name, then evaluates Body in that scope.
type Let struct {
	LetPos token.Position
	Name   string
	Value  Expr
	Body   Expr
}

func (x *Let) exprNode() {}

func (x *Let) Pos() token.Position { return x.LetPos }
func (x *Let) End() token.Position { return x.Body.End() }

func (x *Let) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	out.WriteString(x.Name)
	out.WriteString(" = ")
	out.WriteString(x.Value.String())
	out.WriteString(" in ")
	out.WriteString(x.Body.String())
	return out.String()
}

// Call is an expression node describing invocation of a named builtin
// function. Amoskeag has no user-defined functions or first-class function
// values, so the callee is always a bare identifier resolved against the
// stdlib registry.
type Call struct {
	FuncNamePos token.Position
	FuncName    string
	Args        []Expr
	Rparen      token.Position
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return x.FuncNamePos }
func (x *Call) End() token.Position { return x.Rparen.Advance(1) }

func (x *Call) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, a.String())
	}
	out.WriteString(x.FuncName)
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// Pipe is an expression node representing "lhs | rhs". The parser desugars
// every Pipe node into a Call with Lhs prepended as the first argument
// before validation runs, so later stages never observe a Pipe node; it
// exists purely as an intermediate parse-time representation.
type Pipe struct {
	Lhs   Expr
	OpPos token.Position
	Rhs   Expr
}

func (x *Pipe) exprNode() {}

func (x *Pipe) Pos() token.Position { return x.Lhs.Pos() }
func (x *Pipe) End() token.Position { return x.Rhs.End() }

func (x *Pipe) String() string {
	var out bytes.Buffer
	out.WriteString(x.Lhs.String())
	out.WriteString(" | ")
	out.WriteString(x.Rhs.String())
	return out.String()
}
