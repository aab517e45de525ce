// Package errs implements the shared diagnostic machinery used by both
// compile-time and evaluation-time errors: error codes, source locations,
// and "did you mean" suggestions.
package errs

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/amoskeag/internal/token"
)

// SourceLocation pinpoints where a diagnostic occurred, along with enough of
// the surrounding source line to render a caret-annotated snippet.
type SourceLocation struct {
	File   string
	Line   int // 1-indexed
	Column int // 1-indexed
	Source string
}

// IsZero reports whether the location carries no position information.
func (l SourceLocation) IsZero() bool {
	return l.Line == 0 && l.Column == 0 && l.File == ""
}

// LocationFromPosition builds a SourceLocation from a lexer/parser position
// and the full source text it was found in.
func LocationFromPosition(pos token.Position, source string) SourceLocation {
	return SourceLocation{
		File:   pos.File,
		Line:   pos.LineNumber(),
		Column: pos.ColumnNumber(),
		Source: sourceLine(source, pos.LineStart),
	}
}

func sourceLine(source string, lineStart int) string {
	if lineStart < 0 || lineStart > len(source) {
		return ""
	}
	rest := source[lineStart:]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		return rest[:idx]
	}
	return rest
}

// Diagnostic is the shared payload embedded by both CompileError and
// EvalError: a code, a message, a location, and optional suggestions.
type Diagnostic struct {
	Code        Code
	Message     string
	Location    SourceLocation
	Suggestions []Suggestion
}

// Error renders a single-line message suitable for error-wrapping.
func (d *Diagnostic) Error() string {
	if d.Location.IsZero() {
		return fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s (%d:%d)", d.Code, d.Message, d.Location.Line, d.Location.Column)
}

// Detail renders a multi-line, source-snippet-annotated message, useful in
// test failures and logs where there is no CLI to do the rendering.
func (d *Diagnostic) Detail() string {
	var b strings.Builder
	b.WriteString(d.Error())
	b.WriteString("\n")
	if d.Location.Source != "" {
		b.WriteString(" | ")
		b.WriteString(d.Location.Source)
		b.WriteString("\n")
		if d.Location.Column > 0 {
			b.WriteString(" | ")
			b.WriteString(strings.Repeat(" ", d.Location.Column-1))
			b.WriteString("^\n")
		}
	}
	if len(d.Suggestions) > 0 {
		names := make([]string, len(d.Suggestions))
		for i, s := range d.Suggestions {
			names[i] = s.Value
		}
		fmt.Fprintf(&b, "did you mean: %s?\n", strings.Join(names, ", "))
	}
	return b.String()
}

// CompileError is returned by Compile when source fails lexing, parsing, or
// validation. It is always fatal to compilation: the first error aborts.
type CompileError struct {
	*Diagnostic
}

func NewCompileError(code Code, message string, loc SourceLocation, suggestions ...Suggestion) *CompileError {
	return &CompileError{&Diagnostic{Code: code, Message: message, Location: loc, Suggestions: suggestions}}
}

// EvalError is returned by Evaluate when evaluation of an otherwise
// well-formed compiled Program fails against the supplied data.
type EvalError struct {
	*Diagnostic
}

func NewEvalError(code Code, message string, loc SourceLocation) *EvalError {
	return &EvalError{&Diagnostic{Code: code, Message: message, Location: loc}}
}

// InputError is returned when host-supplied data violates a resource bound
// or contains a value outside the seven-variant domain.
type InputError struct {
	*Diagnostic
}

func NewInputError(message string) *InputError {
	return &InputError{&Diagnostic{Code: EvalInputError, Message: message}}
}
