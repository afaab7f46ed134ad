// File: lixenwraith/cliconfig/builder.go
package cliconfig

import (
	"fmt"
	"os"
)

// Builder provides a fluent interface for declaring options and parsing arguments
type Builder struct {
	options  []OptionSpec
	defaults any
	args     []string
}

// NewBuilder creates a new builder that parses the process arguments by default
func NewBuilder() *Builder {
	return &Builder{
		args: os.Args,
	}
}

// WithOption adds fully specified options
func (b *Builder) WithOption(opts ...OptionSpec) *Builder {
	b.options = append(b.options, opts...)
	return b
}

// WithText adds a Text option. Pass 0 or "" to omit a spelling.
func (b *Builder) WithText(name, def string, short rune, long string) *Builder {
	return b.WithOption(Text(name, def).WithShort(short).WithLong(long))
}

// WithInteger adds an Integer option. Pass 0 or "" to omit a spelling.
func (b *Builder) WithInteger(name string, def int32, short rune, long string) *Builder {
	return b.WithOption(Integer(name, def).WithShort(short).WithLong(long))
}

// WithFlag adds a Flag option defaulting to false. Pass 0 or "" to omit a spelling.
func (b *Builder) WithFlag(name string, short rune, long string) *Builder {
	return b.WithOption(Flag(name).WithShort(short).WithLong(long))
}

// WithDefaults declares options from a tagged struct, see SchemaFromStruct.
// The struct's options come before any added with WithOption.
func (b *Builder) WithDefaults(defaults any) *Builder {
	b.defaults = defaults
	return b
}

// WithArgs sets the argument list, including the program name at index 0
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// Schema validates the declared options
func (b *Builder) Schema() (*Schema, error) {
	var options []OptionSpec
	if b.defaults != nil {
		structOpts, err := structOptions(b.defaults)
		if err != nil {
			return nil, fmt.Errorf("failed to declare defaults: %w", err)
		}
		options = append(options, structOpts...)
	}
	options = append(options, b.options...)

	return NewSchema(options...)
}

// Build validates the schema and parses the arguments
func (b *Builder) Build() (*Record, error) {
	schema, err := b.Schema()
	if err != nil {
		return nil, err
	}
	return schema.Parse(b.args)
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Record {
	rec, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("cliconfig build failed: %v", err))
	}
	return rec
}

// BuildAndScan builds the record and decodes it into the provided target struct pointer
func (b *Builder) BuildAndScan(target any) error {
	rec, err := b.Build()
	if err != nil {
		return err
	}

	if err := rec.Scan(target); err != nil {
		return fmt.Errorf("failed to scan record into target: %w", err)
	}

	return nil
}
