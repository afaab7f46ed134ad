// FILE: lixenwraith/cliconfig/loader.go
package cliconfig

import (
	"os"
)

// Parse builds a record from an explicit argument list. args[0] is the
// program name and is ignored, matching os.Args.
//
// Parsing is a single left-to-right pass. The first error stops it and no
// record is returned. A repeated flag overwrites the earlier value.
func (s *Schema) Parse(args []string) (*Record, error) {
	return s.parse(NewLexer(args))
}

// ParseEnv builds a record from the process arguments.
func (s *Schema) ParseEnv() (*Record, error) {
	return s.Parse(os.Args)
}

// ParseInto parses args and decodes the resulting record into target,
// a pointer to a struct tagged with `toml:"..."` names.
func (s *Schema) ParseInto(args []string, target any) error {
	rec, err := s.Parse(args)
	if err != nil {
		return err
	}
	return rec.Scan(target)
}

// parse is the matching loop shared by Parse and ParseEnv.
func (s *Schema) parse(lex *Lexer) (*Record, error) {
	rec := s.Defaults()

	for {
		tok := lex.Next()

		switch tok.Kind {
		case TokenEnd:
			return rec, nil

		case TokenShort, TokenLong:
			pos, ok := s.dispatch(tok)
			if !ok {
				return nil, unrecognized(tok.Raw)
			}
			opt := s.options[pos]

			if !opt.Kind.TakesValue() {
				rec.set(pos, FlagValue(true))
				continue
			}

			raw, ok := lex.Value()
			if !ok {
				return nil, missingValue(tok.Raw, opt.Name)
			}
			v, err := opt.Kind.Convert(raw)
			if err != nil {
				return nil, invalidValue(tok.Raw, opt.Name, raw, err)
			}
			rec.set(pos, v)

		default:
			// No positional arguments are declared
			return nil, unrecognized(tok.Raw)
		}
	}
}
