package rules

import (
	"sort"
	"strings"
)

// FieldErrors aggregates per-field rule failures. A form submission is
// blocked while the map is non-empty.
type FieldErrors map[string]string

// Check records the result of a rule for a named field. Passing results
// leave the map untouched; a second failure for the same field keeps
// the first message.
func (f FieldErrors) Check(field string, r Result) {
	if r.Valid {
		return
	}
	if _, ok := f[field]; !ok {
		f[field] = r.Error
	}
}

// OK reports whether no field failed.
func (f FieldErrors) OK() bool {
	return len(f) == 0
}

// Error renders the failures as "field: message" lines in field order,
// suitable for terminal output.
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, field+": "+f[field])
	}
	return strings.Join(lines, "\n")
}
