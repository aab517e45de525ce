package parser

import (
	"github.com/deepnoodle-ai/amoskeag/ast"
	"github.com/deepnoodle-ai/amoskeag/errs"
	"github.com/deepnoodle-ai/amoskeag/internal/token"
)

// parseExpr is the grammar's `expr := pipe` entry point.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parsePipe()
}

// parsePipe implements `pipe := or ("|" or)*`, desugaring each pipe stage
// into a Call as it is parsed so that no Pipe node survives past the parser.
func (p *Parser) parsePipe() (ast.Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == token.PIPE {
		opPos := p.curToken.StartPosition
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left, err = desugarPipe(left, right, opPos)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// desugarPipe rewrites "lhs | f(args)" into "f(lhs, args)" and
// "lhs | f" into "f(lhs)", per the pipe-desugaring rule.
func desugarPipe(lhs, rhs ast.Expr, opPos token.Position) (ast.Expr, error) {
	switch call := rhs.(type) {
	case *ast.Call:
		call.Args = append([]ast.Expr{lhs}, call.Args...)
		return call, nil
	case *ast.Var:
		if len(call.Path) != 0 {
			return nil, errs.NewCompileError(errs.ParseUnexpectedToken,
				"pipe target must be a function name, not a variable path",
				errs.SourceLocation{Line: opPos.LineNumber(), Column: opPos.ColumnNumber()})
		}
		return &ast.Call{FuncNamePos: call.NamePos, FuncName: call.Name, Args: []ast.Expr{lhs}, Rparen: call.End()}, nil
	default:
		return nil, errs.NewCompileError(errs.ParseUnexpectedToken,
			"pipe target must be a function name",
			errs.SourceLocation{Line: opPos.LineNumber(), Column: opPos.ColumnNumber()})
	}
}

// parseOr implements `or := and ("or" and)*`.
func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == token.OR {
		opPos := p.curToken.StartPosition
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{X: left, OpPos: opPos, Op: "or", Y: right}
	}
	return left, nil
}

// parseAnd implements `and := notexp ("and" notexp)*`.
func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == token.AND {
		opPos := p.curToken.StartPosition
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{X: left, OpPos: opPos, Op: "and", Y: right}
	}
	return left, nil
}

// parseNot implements `notexp := "not" notexp | cmp`.
func (p *Parser) parseNot() (ast.Expr, error) {
	if p.curToken.Type == token.NOT {
		opPos := p.curToken.StartPosition
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{OpPos: opPos, Op: "not", X: x}, nil
	}
	return p.parseCmp()
}

var cmpOps = map[token.Type]string{
	token.EQ:     "==",
	token.NOT_EQ: "!=",
	token.LT:     "<",
	token.GT:     ">",
	token.LT_EQ:  "<=",
	token.GT_EQ:  ">=",
}

// parseCmp implements `cmp := add (cmpop add)?`. Comparisons do not chain:
// "a < b < c" is a parse error.
func (p *Parser) parseCmp() (ast.Expr, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	op, ok := cmpOps[p.curToken.Type]
	if !ok {
		return left, nil
	}
	opPos := p.curToken.StartPosition
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	result := &ast.Binary{X: left, OpPos: opPos, Op: op, Y: right}
	if _, chained := cmpOps[p.curToken.Type]; chained {
		return nil, p.errorf(errs.ParseUnexpectedToken, p.curToken.StartPosition,
			"comparison operators do not chain; wrap with parentheses or use 'and'")
	}
	return result, nil
}

// parseAdd implements `add := mul (("+"|"-") mul)*`.
func (p *Parser) parseAdd() (ast.Expr, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == token.PLUS || p.curToken.Type == token.MINUS {
		op := string(p.curToken.Type)
		opPos := p.curToken.StartPosition
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{X: left, OpPos: opPos, Op: op, Y: right}
	}
	return left, nil
}

// parseMul implements `mul := unary (("*"|"/"|"%") unary)*`.
func (p *Parser) parseMul() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == token.ASTERISK || p.curToken.Type == token.SLASH || p.curToken.Type == token.PERCENT {
		op := string(p.curToken.Type)
		opPos := p.curToken.StartPosition
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{X: left, OpPos: opPos, Op: op, Y: right}
	}
	return left, nil
}

// parseUnary implements `unary := "-" unary | postfix`.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.curToken.Type == token.MINUS {
		opPos := p.curToken.StartPosition
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{OpPos: opPos, Op: "-", X: x}, nil
	}
	return p.parsePrimary()
}
