package value

// NilType is the type of the single Nil value.
type NilType struct{}

// Nil is the single absent value. Both undefined-variable lookups and safe
// navigation through a missing key produce this instance.
var Nil = &NilType{}

func (n *NilType) Type() Type { return NIL }

func (n *NilType) Inspect() string { return "nil" }

func (n *NilType) Interface() any { return nil }

func (n *NilType) Equals(other Value) bool {
	_, ok := other.(*NilType)
	return ok
}

func (n *NilType) IsTruthy() bool { return false }

func (n *NilType) String() string { return "nil" }
