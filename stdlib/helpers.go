package stdlib

import (
	"fmt"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func asNumber(v value.Value) (float64, error) {
	n, ok := v.(*value.Number)
	if !ok {
		return 0, fmt.Errorf("type error: expected number, got %s", v.Type())
	}
	return n.Value, nil
}

func asString(v value.Value) (string, error) {
	s, ok := v.(*value.String)
	if !ok {
		return "", fmt.Errorf("type error: expected string, got %s", v.Type())
	}
	return s.Value, nil
}

func asArray(v value.Value) (*value.Array, error) {
	a, ok := v.(*value.Array)
	if !ok {
		return nil, fmt.Errorf("type error: expected array, got %s", v.Type())
	}
	return a, nil
}

func asDictionary(v value.Value) (*value.Dictionary, error) {
	d, ok := v.(*value.Dictionary)
	if !ok {
		return nil, fmt.Errorf("type error: expected dictionary, got %s", v.Type())
	}
	return d, nil
}

func numericElements(a *value.Array) ([]float64, error) {
	out := make([]float64, len(a.Elements))
	for i, el := range a.Elements {
		n, err := asNumber(el)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
