package value

import "strconv"

// Number wraps a finite float64. Non-finite numbers (NaN, +Inf, -Inf) are
// rejected at the data-ingest boundary and never constructed here.
type Number struct {
	Value float64
}

// NewNumber returns a Number wrapping v, normalizing -0 to 0 per the
// equality rule in the value domain.
func NewNumber(v float64) *Number {
	if v == 0 {
		v = 0
	}
	return &Number{Value: v}
}

func (n *Number) Type() Type { return NUMBER }

func (n *Number) Inspect() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Number) Interface() any { return n.Value }

func (n *Number) Equals(other Value) bool {
	o, ok := other.(*Number)
	if !ok {
		return false
	}
	a, b := n.Value, o.Value
	if a == 0 {
		a = 0
	}
	if b == 0 {
		b = 0
	}
	return a == b
}

func (n *Number) IsTruthy() bool { return true }

func (n *Number) String() string { return n.Inspect() }

// Compare returns -1, 0, or 1 comparing n to other, or an error if other is
// not a Number.
func (n *Number) Compare(other Value) (int, error) {
	o, ok := other.(*Number)
	if !ok {
		return 0, TypeErrorf("cannot compare number and %s", other.Type())
	}
	switch {
	case n.Value < o.Value:
		return -1, nil
	case n.Value > o.Value:
		return 1, nil
	default:
		return 0, nil
	}
}
