package amoskeag

import (
	"github.com/gofrs/uuid"

	"github.com/deepnoodle-ai/amoskeag/ast"
)

// Program is the validated, compiled representation of Amoskeag source
// code. It is immutable after Compile returns and safe for concurrent use:
// multiple goroutines may call Evaluate on the same Program simultaneously,
// each against its own data.
type Program struct {
	id     uuid.UUID
	expr   ast.Expr
	source string
}

// ID returns the random identifier generated for this Program at compile
// time. It carries no semantic weight; it exists so a host can correlate
// structured log lines and cached programs across process boundaries.
func (p *Program) ID() uuid.UUID {
	return p.id
}

// Source returns the original source code that was compiled.
func (p *Program) Source() string {
	return p.source
}
