package stdlib

import (
	"strings"
	"time"

	"github.com/deepnoodle-ai/amoskeag/value"
)

func init() {
	registerEnvAware("date_now", dateNow, 0)
	register("date_format", dateFormat, 2)
}

// dateNow is called by the evaluator with the single Value it read from the
// environment's metadata.execution_time slot; date_now() itself takes no
// source-level arguments. It is the only host-provided, non-deterministic
// input Amoskeag permits, and only via that fixed slot.
func dateNow(args []value.Value) (value.Value, error) {
	return args[0], nil
}

// dateLayouts are the input formats date_format understands for its first
// argument, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// dateFormat renders a Value produced by date_now (or any similarly shaped
// date string) using the tokens YYYY MM DD HH mm ss MMM, translated to Go's
// reference-time layout. Longer tokens are substituted before their
// prefixes (MMM before MM) to avoid partial matches.
func dateFormat(args []value.Value) (value.Value, error) {
	dateStr, err := asString(args[0])
	if err != nil {
		return nil, typeErrorf("date_format: expected string date, got %s", args[0].Type())
	}
	format, err := asString(args[1])
	if err != nil {
		return nil, typeErrorf("date_format: expected string format, got %s", args[1].Type())
	}

	var t time.Time
	var parsed bool
	for _, layout := range dateLayouts {
		if p, err := time.Parse(layout, dateStr); err == nil {
			t = p
			parsed = true
			break
		}
	}
	if !parsed {
		return nil, argErrorf("date_format: could not parse date %q", dateStr)
	}

	layout := format
	for _, sub := range []struct{ token, layout string }{
		{"YYYY", "2006"},
		{"MMM", "Jan"},
		{"MM", "01"},
		{"DD", "02"},
		{"HH", "15"},
		{"mm", "04"},
		{"ss", "05"},
	} {
		layout = strings.ReplaceAll(layout, sub.token, sub.layout)
	}

	return value.NewString(t.Format(layout)), nil
}
