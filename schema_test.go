package cliconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSchemaValidation tests the option invariants enforced at construction
func TestSchemaValidation(t *testing.T) {
	tests := []struct {
		name     string
		options  []OptionSpec
		errorMsg string
	}{
		{"EmptyName", []OptionSpec{Flag("").WithShort('a')}, "option name cannot be empty"},
		{"InvalidNameChar", []OptionSpec{Flag("bad!").WithShort('a')}, "invalid name segment"},
		{"LeadingDashName", []OptionSpec{Flag("-x").WithShort('a')}, "invalid name segment"},
		{"EmptyNameSegment", []OptionSpec{Flag("server..port").WithShort('a')}, "invalid name segment"},
		{"DuplicateName", []OptionSpec{Flag("a").WithShort('a'), Flag("a").WithShort('b')}, "duplicate option name"},
		{"NoSpelling", []OptionSpec{Flag("quiet")}, "at least one of short or long"},
		{"UnknownKind", []OptionSpec{{Name: "x", Short: 'x'}}, "unknown kind"},
		{"DefaultKindMismatch", []OptionSpec{{Name: "n", Kind: KindInteger, Default: TextValue("3"), Short: 'n'}}, "has kind text, want integer"},
		{"DashShort", []OptionSpec{Flag("a").WithShort('-')}, "invalid short spelling"},
		{"SpaceShort", []OptionSpec{Flag("a").WithShort(' ')}, "invalid short spelling"},
		{"DashLong", []OptionSpec{Flag("a").WithLong("-a")}, "invalid long spelling"},
		{"EqualsLong", []OptionSpec{Flag("a").WithLong("a=b")}, "invalid long spelling"},
		{"DuplicateShort", []OptionSpec{Flag("a").WithShort('x'), Flag("b").WithShort('x')}, "short spelling -x already used by \"a\""},
		{"DuplicateLong", []OptionSpec{Flag("a").WithLong("same"), Flag("b").WithLong("same")}, "long spelling --same already used by \"a\""},
		{"NestedName", []OptionSpec{Flag("server").WithShort('s'), Integer("server.port", 1).WithShort('p')}, "nested under option \"server\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := NewSchema(tt.options...)
			require.Error(t, err)
			assert.Nil(t, schema)
			assert.ErrorIs(t, err, ErrInvalidSchema)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}

	t.Run("ValidVariants", func(t *testing.T) {
		schema, err := NewSchema(
			Flag("short_only").WithShort('s'),
			Flag("long_only").WithLong("long-only"),
			Text("server.host", "localhost").WithLong("host"),
			Integer("server.port", 8080).WithShort('p'),
			Flag("unicode").WithShort('é'),
		)
		require.NoError(t, err)
		assert.Equal(t, 5, schema.Len())
	})

	t.Run("MustSchemaPanics", func(t *testing.T) {
		assert.Panics(t, func() { MustSchema(Flag("quiet")) })
		assert.NotPanics(t, func() { MustSchema(Flag("quiet").WithShort('q')) })
	})
}

// TestSchemaLookup tests the flag dispatch table
func TestSchemaLookup(t *testing.T) {
	schema := newTestSchema(t)

	tests := []struct {
		arg      string
		expected string
		found    bool
	}{
		{"-c", "config_path", true},
		{"--config", "config_path", true},
		{"-r", "max_retries", true},
		{"--retries", "max_retries", true},
		{"-d", "debug", true},
		{"--debug", "debug", true},
		{"--verbose", "verbose", true},
		{"-v", "", false},
		{"--config_path", "", false},
		{"config", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			opt, found := schema.Lookup(classify(tt.arg))
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, opt.Name)
		})
	}

	t.Run("Option", func(t *testing.T) {
		opt, ok := schema.Option("max_retries")
		require.True(t, ok)
		assert.Equal(t, KindInteger, opt.Kind)
		assert.Equal(t, []string{"-r", "--retries"}, opt.Spellings())

		_, ok = schema.Option("missing")
		assert.False(t, ok)
	})

	t.Run("OptionsIsCopy", func(t *testing.T) {
		opts := schema.Options()
		opts[0].Name = "mutated"
		_, ok := schema.Option("config_path")
		assert.True(t, ok)
		assert.Equal(t, "config_path", schema.Options()[0].Name)
	})
}

func TestOptionSpellings(t *testing.T) {
	assert.Equal(t, []string{"--verbose"}, Flag("verbose").WithLong("verbose").Spellings())
	assert.Equal(t, []string{"-q"}, Flag("quiet").WithShort('q').Spellings())
	assert.Nil(t, Flag("none").Spellings())
}
