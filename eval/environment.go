package eval

import "github.com/deepnoodle-ai/amoskeag/value"

// Environment is a persistent, shadowing chain of variable bindings: a
// single root frame built from host-supplied data, extended by one child
// frame per "let" binding. Lookup walks from the innermost frame outward.
type Environment struct {
	parent *Environment
	name   string
	value  value.Value
	root   map[string]value.Value
}

// NewRootEnvironment builds the base environment from host-supplied data.
func NewRootEnvironment(data map[string]value.Value) *Environment {
	if data == nil {
		data = map[string]value.Value{}
	}
	return &Environment{root: data}
}

// Extend returns a child environment that binds name to v, shadowing any
// outer binding of the same name, without mutating the receiver.
func (e *Environment) Extend(name string, v value.Value) *Environment {
	return &Environment{parent: e, name: name, value: v}
}

// Lookup returns the Value bound to name, and value.Nil if name is not
// bound anywhere in the chain — undefined variables are never an error
// (safe-navigation base case).
func (e *Environment) Lookup(name string) value.Value {
	for frame := e; frame != nil; frame = frame.parent {
		if frame.root != nil {
			if v, ok := frame.root[name]; ok {
				return v
			}
			continue
		}
		if frame.name == name {
			return frame.value
		}
	}
	return value.Nil
}
