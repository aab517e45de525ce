// Package amoskeag implements a purely functional, sandboxed expression
// language: compile source text once against a host-supplied whitelist of
// allowed symbols, then evaluate the resulting Program any number of times
// against arbitrary JSON-shaped input data. Evaluation never performs I/O,
// never loops or recurses, and never mutates host data.
package amoskeag

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	"github.com/deepnoodle-ai/amoskeag/errs"
	"github.com/deepnoodle-ai/amoskeag/eval"
	"github.com/deepnoodle-ai/amoskeag/parser"
	"github.com/deepnoodle-ai/amoskeag/validate"
	"github.com/deepnoodle-ai/amoskeag/value"
)

// MaxAllowedSymbols bounds the number of symbols a host may whitelist for a
// single Program, per the compile-time resource bound.
const MaxAllowedSymbols = 10_000

// Compile parses source, statically validates it against allowedSymbols
// (the exhaustive set of :symbol literals the program may reference) and
// the built-in function registry, and returns an immutable Program ready
// for repeated Evaluate calls. A nil or empty allowedSymbols means the
// program may not reference any symbol literal.
func Compile(source string, allowedSymbols []string, opts ...CompileOption) (*Program, error) {
	cfg := collectCompileOptions(opts...)
	start := time.Now()

	if len(allowedSymbols) > MaxAllowedSymbols {
		msg := fmt.Sprintf("too many allowed symbols: got %d, max %d", len(allowedSymbols), MaxAllowedSymbols)
		return nil, errs.NewCompileError(errs.TooManySymbols, msg, errs.SourceLocation{})
	}

	expr, err := parser.Parse(source)
	if err != nil {
		cfg.logger.Debug().Err(err).Msg("amoskeag: parse failed")
		return nil, err
	}

	if err := validate.New(source, allowedSymbols).Validate(expr); err != nil {
		cfg.logger.Debug().Err(err).Msg("amoskeag: validation failed")
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug().
		Str("program_id", id.String()).
		Dur("elapsed", time.Since(start)).
		Msg("amoskeag: compiled program")

	return &Program{id: id, expr: expr, source: source}, nil
}

// Ingest converts host-supplied native Go data (as produced by
// encoding/json unmarshalling into `any`, or built up directly by a host)
// into the Value domain, enforcing the same resource bounds Evaluate
// applies internally. Hosts that want to validate or cache converted input
// ahead of time, independent of any particular Program, can call this
// directly instead of going through Evaluate.
func Ingest(data map[string]any) (value.Value, error) {
	return value.FromInterface(data)
}

// Evaluate runs the Program against data, a tree of Go native values
// (map[string]any, []any, string, float64/int, bool, nil) that is first
// converted to the Value domain and checked against the resource bounds
// documented on value.FromInterface. It returns the language-level result
// of evaluating the compiled expression against that data.
func (p *Program) Evaluate(ctx context.Context, data map[string]any, opts ...EvalOption) (value.Value, error) {
	cfg := collectEvalOptions(opts...)
	start := time.Now()

	root, err := value.FromInterface(data)
	if err != nil {
		cfg.logger.Warn().Err(err).Str("program_id", p.id.String()).Msg("amoskeag: invalid input data")
		return nil, err
	}
	dict, ok := root.(*value.Dictionary)
	if !ok {
		dict = value.NewDictionary(nil)
	}

	env := eval.NewRootEnvironment(dict.Entries)
	result, err := eval.Eval(ctx, p.expr, env, p.source)
	if err != nil {
		cfg.logger.Warn().Err(err).Str("program_id", p.id.String()).Msg("amoskeag: evaluation failed")
		return nil, err
	}

	cfg.logger.Debug().
		Str("program_id", p.id.String()).
		Dur("elapsed", time.Since(start)).
		Msg("amoskeag: evaluated program")

	return result, nil
}
