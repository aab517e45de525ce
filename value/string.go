package value

import "strconv"

// String wraps an immutable, UTF-8 string.
type String struct {
	Value string
}

func NewString(s string) *String { return &String{Value: s} }

func (s *String) Type() Type { return STRING }

func (s *String) Inspect() string { return strconv.Quote(s.Value) }

func (s *String) Interface() any { return s.Value }

func (s *String) Equals(other Value) bool {
	o, ok := other.(*String)
	return ok && s.Value == o.Value
}

func (s *String) IsTruthy() bool { return true }

func (s *String) String() string { return s.Value }

// Compare returns -1, 0, or 1 comparing s to other lexicographically by UTF-8
// byte value, or an error if other is not a String.
func (s *String) Compare(other Value) (int, error) {
	o, ok := other.(*String)
	if !ok {
		return 0, TypeErrorf("cannot compare string and %s", other.Type())
	}
	switch {
	case s.Value < o.Value:
		return -1, nil
	case s.Value > o.Value:
		return 1, nil
	default:
		return 0, nil
	}
}
