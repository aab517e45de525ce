package parser

import (
	"strconv"

	"github.com/deepnoodle-ai/amoskeag/ast"
	"github.com/deepnoodle-ai/amoskeag/errs"
	"github.com/deepnoodle-ai/amoskeag/internal/token"
)

// parsePrimary implements the `primary` production: literals, parenthesized
// expressions, array/dict literals, if/let expressions, and identifiers
// (bare variables, dotted variable paths, and calls).
func (p *Parser) parsePrimary() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.curToken.Type {
	case token.NUMBER:
		return p.parseNumberLit()
	case token.STRING:
		return p.parseStringLit()
	case token.TRUE, token.FALSE:
		return p.parseBoolLit()
	case token.NIL:
		return p.parseNilLit()
	case token.SYMBOL:
		return p.parseSymbolLit()
	case token.LPAREN:
		return p.parseGroupedExpr()
	case token.LBRACKET:
		return p.parseArrayLit()
	case token.LBRACE:
		return p.parseDictLit()
	case token.IF:
		return p.parseIf()
	case token.LET:
		return p.parseLet()
	case token.IDENT:
		return p.parseIdentOrCallOrVar()
	default:
		return nil, p.errorf(errs.ParseMissingExpr, p.curToken.StartPosition,
			"expected an expression but found %q", p.curToken.Literal)
	}
}

func (p *Parser) parseNumberLit() (ast.Expr, error) {
	tok := p.curToken
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, p.errorf(errs.LexMalformedNumber, tok.StartPosition, "invalid number literal %q", tok.Literal)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.NumberLit{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: value}, nil
}

func (p *Parser) parseStringLit() (ast.Expr, error) {
	tok := p.curToken
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.StringLit{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: tok.Literal}, nil
}

func (p *Parser) parseBoolLit() (ast.Expr, error) {
	tok := p.curToken
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.BoolLit{ValuePos: tok.StartPosition, Value: tok.Type == token.TRUE}, nil
}

func (p *Parser) parseNilLit() (ast.Expr, error) {
	tok := p.curToken
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.NilLit{NilPos: tok.StartPosition}, nil
}

func (p *Parser) parseSymbolLit() (ast.Expr, error) {
	tok := p.curToken
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.SymbolLit{ColonPos: tok.StartPosition, Name: tok.Literal}, nil
}

func (p *Parser) parseGroupedExpr() (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume "("
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != token.RPAREN {
		return nil, p.errorf(errs.ParseUnclosedDelim, p.curToken.StartPosition, "expected \")\" but found %q", p.curToken.Literal)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseArrayLit() (ast.Expr, error) {
	lbrack := p.curToken.StartPosition
	if err := p.advance(); err != nil {
		return nil, err
	}
	var elements []ast.Expr
	for p.curToken.Type != token.RBRACKET {
		el, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
		if p.curToken.Type == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if p.curToken.Type != token.RBRACKET {
		return nil, p.errorf(errs.ParseUnclosedDelim, p.curToken.StartPosition, "expected \"]\" but found %q", p.curToken.Literal)
	}
	rbrack := p.curToken.StartPosition
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.ArrayLit{Lbracket: lbrack, Elements: elements, Rbracket: rbrack}, nil
}

func (p *Parser) parseDictLit() (ast.Expr, error) {
	lbrace := p.curToken.StartPosition
	if err := p.advance(); err != nil {
		return nil, err
	}
	var entries []ast.DictEntry
	for p.curToken.Type != token.RBRACE {
		key, err := p.parseDictKey()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.DictEntry{Key: key, Value: value})
		if p.curToken.Type == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if p.curToken.Type != token.RBRACE {
		return nil, p.errorf(errs.ParseUnclosedDelim, p.curToken.StartPosition, "expected \"}\" but found %q", p.curToken.Literal)
	}
	rbrace := p.curToken.StartPosition
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.DictLit{Lbrace: lbrace, Entries: entries, Rbrace: rbrace}, nil
}

// parseDictKey accepts a string literal or a bare identifier, which denotes
// the string of that name.
func (p *Parser) parseDictKey() (ast.Expr, error) {
	switch p.curToken.Type {
	case token.STRING:
		return p.parseStringLit()
	case token.IDENT:
		tok := p.curToken
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringLit{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: tok.Literal}, nil
	default:
		return nil, p.errorf(errs.ParseUnexpectedToken, p.curToken.StartPosition,
			"expected a dictionary key but found %q", p.curToken.Literal)
	}
}

// parseIf implements `ifexpr := "if" expr expr ("else" "if" expr expr)* "else" expr "end"`,
// with "then" accepted as an optional no-op keyword after the condition.
func (p *Parser) parseIf() (ast.Expr, error) {
	ifPos := p.curToken.StartPosition
	if err := p.advance(); err != nil { // consume "if"
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type == token.THEN {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	cons, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.ELSE); err != nil {
		return nil, err
	}
	var alt ast.Expr
	if p.curToken.Type == token.IF {
		alt, err = p.parseIf()
		if err != nil {
			return nil, err
		}
		return &ast.If{IfPos: ifPos, Cond: cond, Cons: cons, Alt: alt, EndPos: alt.(*ast.If).EndPos}, nil
	}
	alt, err = p.parseExpr()
	if err != nil {
		return nil, err
	}
	endPos := p.curToken.StartPosition
	if err := p.expect(token.END); err != nil {
		return nil, err
	}
	return &ast.If{IfPos: ifPos, Cond: cond, Cons: cons, Alt: alt, EndPos: endPos}, nil
}

// parseLet implements `letexpr := "let" ident "=" expr "in" expr`.
func (p *Parser) parseLet() (ast.Expr, error) {
	letPos := p.curToken.StartPosition
	if err := p.advance(); err != nil { // consume "let"
		return nil, err
	}
	if p.curToken.Type != token.IDENT {
		return nil, p.errorf(errs.ParseUnexpectedToken, p.curToken.StartPosition,
			"expected an identifier after \"let\" but found %q", p.curToken.Literal)
	}
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.IN); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Let{LetPos: letPos, Name: name, Value: value, Body: body}, nil
}

// parseIdentOrCallOrVar implements the identifier branch of `primary`:
// `ident "(" args ")"` for a call, or `ident ("." ident)*` for a variable
// path, or a bare `ident` for a plain variable reference.
func (p *Parser) parseIdentOrCallOrVar() (ast.Expr, error) {
	tok := p.curToken
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.curToken.Type == token.LPAREN {
		return p.parseCall(tok)
	}
	v := &ast.Var{NamePos: tok.StartPosition, Name: tok.Literal}
	end := tok.StartPosition.Advance(len(tok.Literal))
	for p.curToken.Type == token.DOT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curToken.Type != token.IDENT {
			return nil, p.errorf(errs.ParseUnexpectedToken, p.curToken.StartPosition,
				"expected an identifier after \".\" but found %q", p.curToken.Literal)
		}
		v.Path = append(v.Path, p.curToken.Literal)
		end = p.curToken.StartPosition.Advance(len(p.curToken.Literal))
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	v.SetEnd(end)
	return v, nil
}

func (p *Parser) parseCall(nameTok token.Token) (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume "("
		return nil, err
	}
	var args []ast.Expr
	for p.curToken.Type != token.RPAREN {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curToken.Type == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if p.curToken.Type != token.RPAREN {
		return nil, p.errorf(errs.ParseUnclosedDelim, p.curToken.StartPosition, "expected \")\" but found %q", p.curToken.Literal)
	}
	rparen := p.curToken.StartPosition
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.Call{FuncNamePos: nameTok.StartPosition, FuncName: nameTok.Literal, Args: args, Rparen: rparen}, nil
}
