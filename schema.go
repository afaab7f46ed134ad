// FILE: lixenwraith/cliconfig/schema.go
package cliconfig

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// OptionSpec declares one option: its record field name, value kind,
// literal default and the flag spellings that select it.
type OptionSpec struct {
	Name    string // Record field name, dot-separated key segments (e.g. "retries", "server.port")
	Kind    Kind   // Value kind, must match Default
	Default Value  // Literal default
	Short   rune   // Short spelling without the dash; 0 means none
	Long    string // Long spelling without the dashes; "" means none
	Usage   string // Optional help text
}

// Text declares a Text option.
func Text(name, def string) OptionSpec {
	return OptionSpec{Name: name, Kind: KindText, Default: TextValue(def)}
}

// Integer declares an Integer option.
func Integer(name string, def int32) OptionSpec {
	return OptionSpec{Name: name, Kind: KindInteger, Default: IntegerValue(def)}
}

// Flag declares a Flag option defaulting to false.
func Flag(name string) OptionSpec {
	return OptionSpec{Name: name, Kind: KindFlag, Default: FlagValue(false)}
}

// WithShort sets the short spelling.
func (o OptionSpec) WithShort(c rune) OptionSpec {
	o.Short = c
	return o
}

// WithLong sets the long spelling.
func (o OptionSpec) WithLong(s string) OptionSpec {
	o.Long = s
	return o
}

// WithUsage sets the help text.
func (o OptionSpec) WithUsage(s string) OptionSpec {
	o.Usage = s
	return o
}

// Spellings returns the flag spellings as typed on the command line, short first.
func (o OptionSpec) Spellings() []string {
	var out []string
	if o.Short != 0 {
		out = append(out, "-"+string(o.Short))
	}
	if o.Long != "" {
		out = append(out, "--"+o.Long)
	}
	return out
}

// Schema is a validated, immutable list of options plus the dispatch table
// built from their spellings. It is safe for concurrent use.
type Schema struct {
	options []OptionSpec
	index   map[string]int // Option name -> position
	short   map[rune]int   // Short spelling -> position
	long    map[string]int // Long spelling -> position
}

// NewSchema validates the options and builds the dispatch table.
// Option order is preserved in records, usage text and encoded output.
func NewSchema(options ...OptionSpec) (*Schema, error) {
	s := &Schema{
		options: make([]OptionSpec, 0, len(options)),
		index:   make(map[string]int, len(options)),
		short:   make(map[rune]int),
		long:    make(map[string]int),
	}

	for _, opt := range options {
		if err := s.add(opt); err != nil {
			return nil, err
		}
	}

	if err := s.checkNesting(); err != nil {
		return nil, err
	}

	return s, nil
}

// MustSchema is like NewSchema but panics on error
func MustSchema(options ...OptionSpec) *Schema {
	s, err := NewSchema(options...)
	if err != nil {
		panic(fmt.Sprintf("cliconfig: %v", err))
	}
	return s
}

func (s *Schema) add(opt OptionSpec) error {
	if opt.Name == "" {
		return schemaError("", "option name cannot be empty")
	}
	for _, segment := range strings.Split(opt.Name, ".") {
		if !isValidKeySegment(segment) {
			return schemaError(opt.Name, "invalid name segment %q", segment)
		}
	}
	if _, dup := s.index[opt.Name]; dup {
		return schemaError(opt.Name, "duplicate option name")
	}

	if !opt.Kind.Valid() {
		return schemaError(opt.Name, "unknown kind %d", int(opt.Kind))
	}
	if opt.Default.Kind() != opt.Kind {
		return schemaError(opt.Name, "default %q has kind %s, want %s", opt.Default.String(), opt.Default.Kind(), opt.Kind)
	}

	if opt.Short == 0 && opt.Long == "" {
		return schemaError(opt.Name, "at least one of short or long spelling is required")
	}

	pos := len(s.options)

	if opt.Short != 0 {
		if opt.Short == '-' || opt.Short == utf8.RuneError || !unicode.IsPrint(opt.Short) || unicode.IsSpace(opt.Short) {
			return schemaError(opt.Name, "invalid short spelling %q", opt.Short)
		}
		if other, dup := s.short[opt.Short]; dup {
			return schemaError(opt.Name, "short spelling -%c already used by %q", opt.Short, s.options[other].Name)
		}
		s.short[opt.Short] = pos
	}

	if opt.Long != "" {
		if strings.HasPrefix(opt.Long, "-") || strings.ContainsAny(opt.Long, "= \t\n") {
			return schemaError(opt.Name, "invalid long spelling %q", opt.Long)
		}
		if other, dup := s.long[opt.Long]; dup {
			return schemaError(opt.Name, "long spelling --%s already used by %q", opt.Long, s.options[other].Name)
		}
		s.long[opt.Long] = pos
	}

	s.index[opt.Name] = pos
	s.options = append(s.options, opt)
	return nil
}

// checkNesting rejects a name that is also the parent of another name,
// since the two cannot both be encoded or scanned.
func (s *Schema) checkNesting() error {
	for _, opt := range s.options {
		prefix := opt.Name + "."
		for _, other := range s.options {
			if strings.HasPrefix(other.Name, prefix) {
				return schemaError(other.Name, "nested under option %q", opt.Name)
			}
		}
	}
	return nil
}

// Options returns a copy of the declared options in schema order.
func (s *Schema) Options() []OptionSpec {
	out := make([]OptionSpec, len(s.options))
	copy(out, s.options)
	return out
}

// Option returns the option declared under name.
func (s *Schema) Option(name string) (OptionSpec, bool) {
	pos, ok := s.index[name]
	if !ok {
		return OptionSpec{}, false
	}
	return s.options[pos], true
}

// Len returns the number of options.
func (s *Schema) Len() int {
	return len(s.options)
}

// Lookup is the dispatch table: it resolves a short or long flag token to its option.
func (s *Schema) Lookup(tok Token) (OptionSpec, bool) {
	pos, ok := s.dispatch(tok)
	if !ok {
		return OptionSpec{}, false
	}
	return s.options[pos], true
}

func (s *Schema) dispatch(tok Token) (int, bool) {
	switch tok.Kind {
	case TokenShort:
		pos, ok := s.short[tok.Short]
		return pos, ok
	case TokenLong:
		pos, ok := s.long[tok.Long]
		return pos, ok
	default:
		return 0, false
	}
}
