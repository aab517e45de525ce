// Package stdlib implements Amoskeag's built-in function library: pure
// Value -> Value functions across string, numeric, collection, logic,
// financial, and date families.
package stdlib

import "github.com/deepnoodle-ai/amoskeag/value"

// Func is the signature every built-in implements: a pure function from
// already-evaluated arguments to a Value or an error.
type Func func(args []value.Value) (value.Value, error)

// Spec describes one built-in's name, valid arities, and implementation.
// Arities lists every accepted argument count, e.g. {1, 2} for round/1 and
// round/2.
type Spec struct {
	Name    string
	Arities []int
	Fn      Func

	// NeedsExecutionTime marks a zero-argument built-in whose implicit
	// argument is supplied by the evaluator, not by source-level call
	// arguments: date_now() reads the environment's metadata.execution_time
	// slot and calls Fn with that single Value. No other built-in uses this.
	NeedsExecutionTime bool
}

// Variadic marks a Spec as accepting any number of arguments (used only by
// coalesce, the sole variadic built-in).
const Variadic = -1

func (s *Spec) acceptsArity(n int) bool {
	for _, a := range s.Arities {
		if a == Variadic || a == n {
			return true
		}
	}
	return false
}

// IsVariadic reports whether the Spec accepts any number of arguments.
func (s *Spec) IsVariadic() bool {
	return len(s.Arities) == 1 && s.Arities[0] == Variadic
}

// Registry is the fixed set of built-in functions known to the validator
// and evaluator.
var registry = map[string]*Spec{}

func register(name string, fn Func, arities ...int) {
	registry[name] = &Spec{Name: name, Arities: arities, Fn: fn}
}

// registerEnvAware registers a built-in whose value is supplied by the
// evaluator from the environment rather than from call arguments.
func registerEnvAware(name string, fn Func, arities ...int) {
	registry[name] = &Spec{Name: name, Arities: arities, Fn: fn, NeedsExecutionTime: true}
}

// Lookup returns the Spec for name, and false if name is not a built-in.
func Lookup(name string) (*Spec, bool) {
	s, ok := registry[name]
	return s, ok
}

// AcceptsArity reports whether name is a known built-in that accepts n
// arguments.
func AcceptsArity(name string, n int) bool {
	s, ok := registry[name]
	return ok && s.acceptsArity(n)
}

// Names returns every registered built-in name, used to build "did you
// mean" suggestions for unknown function names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
