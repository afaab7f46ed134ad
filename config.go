// FILE: lixenwraith/cliconfig/config.go
package cliconfig

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Record is the configuration produced from a Schema: one value per option,
// kept in schema order. Records returned by Defaults and Parse are never
// modified afterwards and may be shared between goroutines.
type Record struct {
	schema *Schema
	values []Value // Indexed by option position in the schema
}

// Defaults builds the record holding every option's literal default,
// with no flags applied.
func (s *Schema) Defaults() *Record {
	r := &Record{
		schema: s,
		values: make([]Value, len(s.options)),
	}
	for i, opt := range s.options {
		r.values[i] = opt.Default
	}
	return r
}

// Schema returns the schema the record was built from.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Names returns the field names in schema order.
func (r *Record) Names() []string {
	return lo.Map(r.schema.options, func(opt OptionSpec, _ int) string {
		return opt.Name
	})
}

// Get returns the value of a field.
// The second return value indicates if the name is declared in the schema.
func (r *Record) Get(name string) (Value, bool) {
	pos, ok := r.schema.index[name]
	if !ok {
		return Value{}, false
	}
	return r.values[pos], true
}

// IsDefault reports whether the field still holds its literal default.
func (r *Record) IsDefault(name string) bool {
	pos, ok := r.schema.index[name]
	if !ok {
		return false
	}
	return r.values[pos] == r.schema.options[pos].Default
}

// Map returns the field values as their Go storage types, keyed by name.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for i, opt := range r.schema.options {
		out[opt.Name] = r.values[i].Any()
	}
	return out
}

// Equal reports whether both records come from the same schema and hold identical values.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.schema != other.schema || len(r.values) != len(other.values) {
		return false
	}
	for i := range r.values {
		if r.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	clone := &Record{
		schema: r.schema,
		values: make([]Value, len(r.values)),
	}
	copy(clone.values, r.values)
	return clone
}

// String formats the record as name=value pairs in schema order.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, opt := range r.schema.options {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%s", opt.Name, formatValue(r.values[i]))
	}
	b.WriteByte('}')
	return b.String()
}

// set overwrites a field by position. Only the parser calls it, on a record
// that has not been handed out yet.
func (r *Record) set(pos int, v Value) {
	r.values[pos] = v
}

func formatValue(v Value) string {
	if s, ok := v.Text(); ok {
		return fmt.Sprintf("%q", s)
	}
	return v.String()
}
