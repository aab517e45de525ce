// Package lexer turns Amoskeag source text into a stream of tokens.
package lexer

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/amoskeag/errs"
	"github.com/deepnoodle-ai/amoskeag/internal/token"
)

// Error is returned by Next when the input contains a lexical error.
type Error struct {
	Code     errs.Code
	Message  string
	Position token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message, e.Position.LineNumber(), e.Position.ColumnNumber())
}

// Lexer converts an input string into a sequence of tokens, one at a time.
type Lexer struct {
	input    string
	filename string
	pos      int  // byte offset of ch
	readPos  int  // byte offset of the next byte to read
	ch       byte // current byte under examination, 0 at EOF
	line     int
	lineStart int
}

// New returns a Lexer that reads tokens from input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// WithFilename attaches a filename to positions produced by this lexer.
func (l *Lexer) WithFilename(name string) *Lexer {
	l.filename = name
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) currentPosition() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.pos - l.lineStart,
		File:      l.filename,
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			if l.ch == '\n' {
				l.line++
				l.lineStart = l.pos + 1
			}
			l.readChar()
		}
		if l.ch == '#' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		break
	}
}

// Next scans and returns the next token in the input.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespaceAndComments()

	start := l.currentPosition()
	var tok token.Token
	tok.StartPosition = start

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
	case '(':
		tok = l.simple(token.LPAREN)
	case ')':
		tok = l.simple(token.RPAREN)
	case '[':
		tok = l.simple(token.LBRACKET)
	case ']':
		tok = l.simple(token.RBRACKET)
	case '{':
		tok = l.simple(token.LBRACE)
	case '}':
		tok = l.simple(token.RBRACE)
	case ',':
		tok = l.simple(token.COMMA)
	case '.':
		tok = l.simple(token.DOT)
	case '+':
		tok = l.simple(token.PLUS)
	case '-':
		tok = l.simple(token.MINUS)
	case '*':
		tok = l.simple(token.ASTERISK)
	case '/':
		tok = l.simple(token.SLASH)
	case '%':
		tok = l.simple(token.PERCENT)
	case '|':
		tok = l.simple(token.PIPE)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Literal: "=="}
			l.readChar()
		} else {
			tok = token.Token{Type: token.ASSIGN, Literal: "="}
			l.readChar()
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Literal: "!="}
			l.readChar()
		} else {
			msg := fmt.Sprintf("unexpected character %q", l.ch)
			l.readChar()
			return token.Token{Type: token.ILLEGAL}, &Error{Code: errs.LexUnexpectedChar, Message: msg, Position: start}
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LT_EQ, Literal: "<="}
		} else {
			tok = token.Token{Type: token.LT, Literal: "<"}
		}
		l.readChar()
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GT_EQ, Literal: ">="}
		} else {
			tok = token.Token{Type: token.GT, Literal: ">"}
		}
		l.readChar()
	case ':':
		return l.readSymbolOrColon(start)
	case '"', '\'':
		return l.readString(start, l.ch)
	default:
		if isDigit(l.ch) {
			return l.readNumber(start)
		}
		if isIdentStart(l.ch) {
			return l.readIdentifier(start)
		}
		bad := l.ch
		msg := fmt.Sprintf("unexpected character %q", bad)
		l.readChar()
		return token.Token{Type: token.ILLEGAL, Literal: string(bad)}, &Error{Code: errs.LexUnexpectedChar, Message: msg, Position: start}
	}

	tok.StartPosition = start
	tok.EndPosition = l.currentPosition()
	return tok, nil
}

// simple consumes the current character and returns a single-character
// token of the given type.
func (l *Lexer) simple(t token.Type) token.Token {
	lit := string(l.ch)
	l.readChar()
	return token.Token{Type: t, Literal: lit}
}

func (l *Lexer) readSymbolOrColon(start token.Position) (token.Token, error) {
	l.readChar() // consume ':'
	if l.ch == '"' {
		strTok, err := l.readString(start, '"')
		if err != nil {
			return strTok, err
		}
		return token.Token{
			Type:          token.SYMBOL,
			Literal:       strTok.Literal,
			StartPosition: start,
			EndPosition:   l.currentPosition(),
		}, nil
	}
	if isIdentStart(l.ch) {
		nameStart := l.pos
		for isIdentPart(l.ch) {
			l.readChar()
		}
		name := l.input[nameStart:l.pos]
		return token.Token{
			Type:          token.SYMBOL,
			Literal:       name,
			StartPosition: start,
			EndPosition:   l.currentPosition(),
		}, nil
	}
	return token.Token{
		Type:          token.COLON,
		Literal:       ":",
		StartPosition: start,
		EndPosition:   l.currentPosition(),
	}, nil
}

func (l *Lexer) readString(start token.Position, quote byte) (token.Token, error) {
	l.readChar() // consume opening quote
	var b strings.Builder
	for {
		if l.ch == 0 {
			return token.Token{Type: token.ILLEGAL}, &Error{Code: errs.LexUnterminatedString, Message: "unterminated string literal", Position: start}
		}
		if l.ch == quote {
			l.readChar()
			break
		}
		if l.ch == '\\' {
			l.readChar()
			escaped, err := l.readEscape(start)
			if err != nil {
				return token.Token{Type: token.ILLEGAL}, err
			}
			b.WriteByte(escaped)
			continue
		}
		if l.ch == '\n' {
			return token.Token{Type: token.ILLEGAL}, &Error{Code: errs.LexUnterminatedString, Message: "unterminated string literal", Position: start}
		}
		b.WriteByte(l.ch)
		l.readChar()
	}
	return token.Token{
		Type:          token.STRING,
		Literal:       b.String(),
		StartPosition: start,
		EndPosition:   l.currentPosition(),
	}, nil
}

func (l *Lexer) readEscape(start token.Position) (byte, error) {
	switch l.ch {
	case 'n':
		l.readChar()
		return '\n', nil
	case 't':
		l.readChar()
		return '\t', nil
	case 'r':
		l.readChar()
		return '\r', nil
	case '\\':
		l.readChar()
		return '\\', nil
	case '"':
		l.readChar()
		return '"', nil
	case '\'':
		l.readChar()
		return '\'', nil
	default:
		return 0, &Error{Code: errs.LexInvalidEscape, Message: fmt.Sprintf("invalid escape sequence '\\%c'", l.ch), Position: start}
	}
}

func (l *Lexer) readNumber(start token.Position) (token.Token, error) {
	begin := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		save := l.pos
		saveRead := l.readPos
		saveCh := l.ch
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if isDigit(l.ch) {
			for isDigit(l.ch) {
				l.readChar()
			}
		} else {
			// not a valid exponent; rewind
			l.pos, l.readPos, l.ch = save, saveRead, saveCh
		}
	}
	lit := l.input[begin:l.pos]
	if isIdentStart(l.ch) {
		return token.Token{Type: token.ILLEGAL, Literal: lit}, &Error{
			Code:     errs.LexMalformedNumber,
			Message:  fmt.Sprintf("malformed number literal %q", lit+string(l.ch)),
			Position: start,
		}
	}
	return token.Token{
		Type:          token.NUMBER,
		Literal:       lit,
		StartPosition: start,
		EndPosition:   l.currentPosition(),
	}, nil
}

func (l *Lexer) readIdentifier(start token.Position) (token.Token, error) {
	begin := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	lit := l.input[begin:l.pos]
	return token.Token{
		Type:          token.LookupIdentifier(lit),
		Literal:       lit,
		StartPosition: start,
		EndPosition:   l.currentPosition(),
	}, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
