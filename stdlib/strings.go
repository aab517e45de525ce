package stdlib

import (
	"strings"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func init() {
	register("upcase", strUpcase, 1)
	register("downcase", strDowncase, 1)
	register("capitalize", strCapitalize, 1)
	register("strip", strStrip, 1)
	register("lstrip", strLstrip, 1)
	register("rstrip", strRstrip, 1)
	register("split", strSplit, 2)
	register("join", strJoin, 2)
	register("replace", strReplace, 3)
	register("truncate", strTruncate, 2)
	register("prepend", strPrepend, 2)
	register("append", strAppend, 2)
}

func strUpcase(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewString(strings.ToUpper(s)), nil
}

func strDowncase(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewString(strings.ToLower(s)), nil
}

func strCapitalize(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	if s == "" {
		return value.NewString(""), nil
	}
	r := []rune(s)
	return value.NewString(strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))), nil
}

func strStrip(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewString(strings.TrimSpace(s)), nil
}

func strLstrip(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewString(strings.TrimLeft(s, " \t\n\r")), nil
}

func strRstrip(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewString(strings.TrimRight(s, " \t\n\r")), nil
}

func strSplit(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	sep, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	elements := make([]value.Value, len(parts))
	for i, p := range parts {
		elements[i] = value.NewString(p)
	}
	return value.NewArray(elements), nil
}

func strJoin(args []value.Value) (value.Value, error) {
	arr, err := asArray(args[0])
	if err != nil {
		return nil, err
	}
	sep, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		s, err := asString(el)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	return value.NewString(strings.Join(parts, sep)), nil
}

func strReplace(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	find, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	rep, err := asString(args[2])
	if err != nil {
		return nil, err
	}
	return value.NewString(strings.ReplaceAll(s, find, rep)), nil
}

// strTruncate truncates s to n runes, appending "..." when truncation
// occurred, matching the normative behavior documented for this built-in.
func strTruncate(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	n, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	limit := int(n)
	r := []rune(s)
	if limit < 0 || len(r) <= limit {
		return value.NewString(s), nil
	}
	return value.NewString(string(r[:limit]) + "..."), nil
}

func strPrepend(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	p, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	return value.NewString(p + s), nil
}

func strAppend(args []value.Value) (value.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	q, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	return value.NewString(s + q), nil
}
