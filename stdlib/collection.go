package stdlib

import (
	"sort"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func init() {
	register("size", collSize, 1)
	register("first", collFirst, 1)
	register("last", collLast, 1)
	register("at", collAt, 2)
	register("contains", collContains, 2)
	register("sort", collSort, 1)
	register("reverse", collReverse, 1)
	register("sum", collSum, 1)
	register("avg", collAvg, 1)
	register("keys", collKeys, 1)
	register("values", collValues, 1)
}

func collSize(args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case *value.String:
		return value.NewNumber(float64(len([]rune(v.Value)))), nil
	case *value.Array:
		return value.NewNumber(float64(len(v.Elements))), nil
	case *value.Dictionary:
		return value.NewNumber(float64(len(v.Entries))), nil
	default:
		return nil, typeErrorf("size: unsupported argument type %s", v.Type())
	}
}

func collFirst(args []value.Value) (value.Value, error) {
	arr, err := asArray(args[0])
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return value.Nil, nil
	}
	return arr.Elements[0], nil
}

func collLast(args []value.Value) (value.Value, error) {
	arr, err := asArray(args[0])
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return value.Nil, nil
	}
	return arr.Elements[len(arr.Elements)-1], nil
}

// collAt returns the 0-based element at index i, or Nil if out of range.
func collAt(args []value.Value) (value.Value, error) {
	arr, err := asArray(args[0])
	if err != nil {
		return nil, err
	}
	idx, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	i := int(idx)
	if i < 0 || i >= len(arr.Elements) {
		return value.Nil, nil
	}
	return arr.Elements[i], nil
}

func collContains(args []value.Value) (value.Value, error) {
	target := args[1]
	switch v := args[0].(type) {
	case *value.Array:
		for _, el := range v.Elements {
			if el.Equals(target) {
				return value.True, nil
			}
		}
		return value.False, nil
	case *value.Dictionary:
		key, err := asString(target)
		if err != nil {
			return nil, err
		}
		_, ok := v.Get(key)
		return value.NewBoolean(ok), nil
	case *value.String:
		needle, err := asString(target)
		if err != nil {
			return nil, err
		}
		return value.NewBoolean(containsSubstring(v.Value, needle)), nil
	default:
		return nil, typeErrorf("contains: unsupported argument type %s", v.Type())
	}
}

func containsSubstring(s, needle string) bool {
	return len(needle) == 0 || indexOf(s, needle) >= 0
}

func indexOf(s, needle string) int {
	for i := 0; i+len(needle) <= len(s); i++ {
		if s[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

// collSort sorts an array of all-numbers ascending, or all-strings
// lexicographically. Mixed-type arrays are a type error.
func collSort(args []value.Value) (value.Value, error) {
	arr, err := asArray(args[0])
	if err != nil {
		return nil, err
	}
	elements := append([]value.Value(nil), arr.Elements...)
	if len(elements) == 0 {
		return value.NewArray(elements), nil
	}
	switch elements[0].(type) {
	case *value.Number:
		nums, err := numericElements(&value.Array{Elements: elements})
		if err != nil {
			return nil, err
		}
		sort.Float64s(nums)
		out := make([]value.Value, len(nums))
		for i, n := range nums {
			out[i] = value.NewNumber(n)
		}
		return value.NewArray(out), nil
	case *value.String:
		strs := make([]string, len(elements))
		for i, el := range elements {
			s, err := asString(el)
			if err != nil {
				return nil, err
			}
			strs[i] = s
		}
		sort.Strings(strs)
		out := make([]value.Value, len(strs))
		for i, s := range strs {
			out[i] = value.NewString(s)
		}
		return value.NewArray(out), nil
	default:
		return nil, typeErrorf("sort: unsupported element type %s", elements[0].Type())
	}
}

func collReverse(args []value.Value) (value.Value, error) {
	arr, err := asArray(args[0])
	if err != nil {
		return nil, err
	}
	n := len(arr.Elements)
	out := make([]value.Value, n)
	for i, el := range arr.Elements {
		out[n-1-i] = el
	}
	return value.NewArray(out), nil
}

func collSum(args []value.Value) (value.Value, error) {
	arr, err := asArray(args[0])
	if err != nil {
		return nil, err
	}
	nums, err := numericElements(arr)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, n := range nums {
		total += n
	}
	return value.NewNumber(total), nil
}

func collAvg(args []value.Value) (value.Value, error) {
	arr, err := asArray(args[0])
	if err != nil {
		return nil, err
	}
	nums, err := numericElements(arr)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, argErrorf("avg: array must not be empty")
	}
	var total float64
	for _, n := range nums {
		total += n
	}
	return value.NewNumber(total / float64(len(nums))), nil
}

func collKeys(args []value.Value) (value.Value, error) {
	dict, err := asDictionary(args[0])
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dict.Entries))
	for k := range dict.Entries {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]value.Value, len(names))
	for i, k := range names {
		out[i] = value.NewString(k)
	}
	return value.NewArray(out), nil
}

func collValues(args []value.Value) (value.Value, error) {
	dict, err := asDictionary(args[0])
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dict.Entries))
	for k := range dict.Entries {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]value.Value, len(names))
	for i, k := range names {
		out[i] = dict.Entries[k]
	}
	return value.NewArray(out), nil
}
