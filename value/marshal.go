package value

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/amoskeag/errs"
)

// Resource bounds enforced during ingestion, per the concurrency & resource
// model: a single oversized or malformed payload can violate several of
// these at once, so a full walk collects every violation before failing.
const (
	MaxNestingDepth  = 100
	MaxDictionaryKeys = 100_000
	MaxArrayElements = 1_000_000
)

const symbolTagKey = "__symbol__"

// FromJSON decodes JSON bytes into a Value, applying the same resource
// bounds and symbol-tagging convention as FromInterface.
func FromJSON(data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errs.NewInputError(fmt.Sprintf("invalid JSON input: %s", err))
	}
	return FromInterface(raw)
}

// FromInterface converts a native Go value (as produced by encoding/json
// unmarshalling into `any`, or supplied directly by a host) into a Value.
// It enforces the nesting-depth, dictionary-size, array-size, and
// finite-number bounds during a single recursive walk. If any bound is
// violated, all violations found are aggregated with go-multierror and
// returned together; no partial Value is ever returned.
func FromInterface(v any) (Value, error) {
	var merr *multierror.Error
	result := fromInterface(v, 0, &merr)
	if err := merr.ErrorOrNil(); err != nil {
		lines := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			lines = append(lines, e.Error())
		}
		return nil, errs.NewInputError(strings.Join(lines, "; "))
	}
	return result, nil
}

func fromInterface(v any, depth int, errs **multierror.Error) Value {
	if depth > MaxNestingDepth {
		*errs = multierror.Append(*errs, fmt.Errorf("nesting depth exceeds maximum of %d", MaxNestingDepth))
		return Nil
	}
	switch x := v.(type) {
	case nil:
		return Nil
	case bool:
		return NewBoolean(x)
	case string:
		return NewString(x)
	case float64:
		return numberFromFloat(x, errs)
	case int:
		return NewNumber(float64(x))
	case int64:
		return NewNumber(float64(x))
	case Symbol:
		return &x
	case *Symbol:
		return x
	case []any:
		return arrayFromSlice(x, depth, errs)
	case map[string]any:
		if name, ok := symbolTag(x); ok {
			return NewSymbol(name)
		}
		return dictionaryFromMap(x, depth, errs)
	default:
		*errs = multierror.Append(*errs, fmt.Errorf("unsupported input value of type %T", v))
		return Nil
	}
}

func numberFromFloat(f float64, errs **multierror.Error) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		*errs = multierror.Append(*errs, fmt.Errorf("non-finite number %v is not a valid input value", f))
		return Nil
	}
	return NewNumber(f)
}

func arrayFromSlice(items []any, depth int, errs **multierror.Error) Value {
	if len(items) > MaxArrayElements {
		*errs = multierror.Append(*errs, fmt.Errorf("array of %d elements exceeds maximum of %d", len(items), MaxArrayElements))
	}
	elements := make([]Value, len(items))
	for i, item := range items {
		elements[i] = fromInterface(item, depth+1, errs)
	}
	return NewArray(elements)
}

func dictionaryFromMap(m map[string]any, depth int, errs **multierror.Error) Value {
	if len(m) > MaxDictionaryKeys {
		*errs = multierror.Append(*errs, fmt.Errorf("dictionary of %d keys exceeds maximum of %d", len(m), MaxDictionaryKeys))
	}
	entries := make(map[string]Value, len(m))
	for k, item := range m {
		entries[k] = fromInterface(item, depth+1, errs)
	}
	return NewDictionary(entries)
}

func symbolTag(m map[string]any) (string, bool) {
	if len(m) != 1 {
		return "", false
	}
	raw, ok := m[symbolTagKey]
	if !ok {
		return "", false
	}
	name, ok := raw.(string)
	return name, ok
}

// ToJSON encodes a Value to its canonical JSON wire representation, tagging
// Symbols with the {"__symbol__": "<name>"} convention.
func ToJSON(v Value) ([]byte, error) {
	return json.Marshal(toInterface(v))
}

func toInterface(v Value) any {
	switch x := v.(type) {
	case *Symbol:
		return map[string]any{symbolTagKey: x.Name}
	case *Array:
		out := make([]any, len(x.Elements))
		for i, el := range x.Elements {
			out[i] = toInterface(el)
		}
		return out
	case *Dictionary:
		out := make(map[string]any, len(x.Entries))
		for k, el := range x.Entries {
			out[k] = toInterface(el)
		}
		return out
	default:
		return v.Interface()
	}
}
