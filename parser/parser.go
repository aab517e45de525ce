// Package parser implements a recursive-descent parser that turns a token
// stream from internal/lexer into an Amoskeag ast.Expr tree.
package parser

import (
	"fmt"

	"github.com/deepnoodle-ai/amoskeag/ast"
	"github.com/deepnoodle-ai/amoskeag/errs"
	"github.com/deepnoodle-ai/amoskeag/internal/lexer"
	"github.com/deepnoodle-ai/amoskeag/internal/token"
)

// DefaultMaxDepth bounds expression nesting to protect against stack
// overflow on pathological or adversarial source, per the resource model.
const DefaultMaxDepth = 100

// Option configures a Parser.
type Option func(*Parser)

// WithFilename attaches a filename to positions produced by the parser, for
// inclusion in diagnostics.
func WithFilename(name string) Option {
	return func(p *Parser) { p.filename = name }
}

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) { p.maxDepth = depth }
}

// Parser consumes a token stream and produces a single Amoskeag expression
// tree. A Parser is single-use: call Parse once.
type Parser struct {
	l        *lexer.Lexer
	source   string
	filename string
	maxDepth int

	curToken  token.Token
	peekToken token.Token
	depth     int
}

// Parse tokenizes and parses source, returning the resulting expression
// tree or the first CompileError encountered.
func Parse(source string, opts ...Option) (ast.Expr, error) {
	p := New(source, opts...)
	return p.Parse()
}

// New creates a Parser for source.
func New(source string, opts ...Option) *Parser {
	p := &Parser{source: source, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	l := lexer.New(source)
	if p.filename != "" {
		l.WithFilename(p.filename)
	}
	p.l = l
	return p
}

// Parse runs the parser to completion.
func (p *Parser) Parse() (ast.Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != token.EOF {
		return nil, p.errorf(errs.ParseUnexpectedToken, p.curToken.StartPosition,
			"unexpected token %q after end of expression", p.curToken.Literal)
	}
	return expr, nil
}

func (p *Parser) advance() error {
	p.curToken = p.peekToken
	tok, err := p.l.Next()
	if err != nil {
		if lexErr, ok := err.(*lexer.Error); ok {
			return errs.NewCompileError(lexErr.Code, lexErr.Message,
				errs.LocationFromPosition(lexErr.Position, p.source))
		}
		return err
	}
	p.peekToken = tok
	return nil
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorf(errs.ParseMaxDepth, p.curToken.StartPosition,
			"expression nesting exceeds maximum depth of %d", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

func (p *Parser) errorf(code errs.Code, pos token.Position, format string, args ...any) error {
	return errs.NewCompileError(code, fmt.Sprintf(format, args...), errs.LocationFromPosition(pos, p.source))
}

func (p *Parser) expect(t token.Type) error {
	if p.curToken.Type != t {
		return p.errorf(errs.ParseUnexpectedToken, p.curToken.StartPosition,
			"expected %q but found %q", t, p.curToken.Literal)
	}
	return p.advance()
}
