// File: lixenwraith/cliconfig/doc.go

// Package cliconfig turns a declarative list of options into a command-line
// parser: a typed record with one field per option, a default record built
// from literal defaults, and a parser that fills the record from arguments.
//
// Features:
//   - Three value kinds: Text (string), Integer (int32) and Flag (bool)
//   - Short (-c) and long (--config) spellings, values as the next argument
//   - Single left-to-right pass, last occurrence of a flag wins
//   - Structured errors: ErrUnrecognizedArgument, ErrMissingValue, ErrInvalidValue
//   - Schemas declared in code or derived from a tagged struct
//   - Decoding into structs with mapstructure, encoding to TOML, JSON or YAML
//
// Quick Start:
//
//	schema := cliconfig.MustSchema(
//	    cliconfig.Text("config_path", "~/.config.json").WithShort('c').WithLong("config"),
//	    cliconfig.Integer("max_retries", 3).WithShort('r').WithLong("retries"),
//	    cliconfig.Flag("debug").WithShort('d').WithLong("debug"),
//	    cliconfig.Flag("verbose").WithLong("verbose"),
//	)
//
//	rec, err := schema.ParseEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	retries, _ := rec.Int32("max_retries")
//
// Struct Declaration:
//
//	type Options struct {
//	    ConfigPath string `toml:"config_path" short:"c" long:"config"`
//	    MaxRetries int    `toml:"max_retries" short:"r" long:"retries"`
//	    Debug      bool   `toml:"debug" short:"d"`
//	}
//
//	opts := Options{ConfigPath: "~/.config.json", MaxRetries: 3}
//	if err := cliconfig.Quick(&opts); err != nil {
//	    log.Fatal(err)
//	}
//
// Grammar:
// Flags taking a value read it from the next argument ("-r 5", "--retries 5").
// There is no "--name=value" form, no clustering of short flags and no
// positional arguments. A bare "--" makes every later argument a value,
// which is then rejected as unrecognized.
//
// Thread Safety:
// A Schema is immutable once built and may be used by concurrent parses.
// Each parse owns its record; returned records are read-only.
package cliconfig
