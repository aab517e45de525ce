package value

import (
	"sort"
	"strconv"
	"strings"
)

// Dictionary is an immutable, unordered mapping from string key to Value,
// with at most one entry per key.
type Dictionary struct {
	Entries map[string]Value
}

func NewDictionary(entries map[string]Value) *Dictionary {
	if entries == nil {
		entries = map[string]Value{}
	}
	return &Dictionary{Entries: entries}
}

func (d *Dictionary) Type() Type { return DICTIONARY }

// sortedKeys returns the dictionary's keys in sorted order, used for
// deterministic Inspect/String output despite the type being logically
// unordered.
func (d *Dictionary) sortedKeys() []string {
	keys := make([]string, 0, len(d.Entries))
	for k := range d.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d *Dictionary) Inspect() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range d.sortedKeys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(k))
		b.WriteString(": ")
		b.WriteString(d.Entries[k].Inspect())
	}
	b.WriteString("}")
	return b.String()
}

func (d *Dictionary) Interface() any {
	out := make(map[string]any, len(d.Entries))
	for k, v := range d.Entries {
		out[k] = v.Interface()
	}
	return out
}

func (d *Dictionary) Equals(other Value) bool {
	o, ok := other.(*Dictionary)
	if !ok || len(d.Entries) != len(o.Entries) {
		return false
	}
	for k, v := range d.Entries {
		ov, ok := o.Entries[k]
		if !ok || !v.Equals(ov) {
			return false
		}
	}
	return true
}

func (d *Dictionary) IsTruthy() bool { return true }

func (d *Dictionary) String() string { return d.Inspect() }

// Get returns the value at key, and false if key is not present.
func (d *Dictionary) Get(key string) (Value, bool) {
	v, ok := d.Entries[key]
	return v, ok
}

func (d *Dictionary) Len() int { return len(d.Entries) }
