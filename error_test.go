// FILE: lixenwraith/cliconfig/error_test.go
package cliconfig

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
		sentinel error
	}{
		{
			name:     "Unrecognized",
			err:      unrecognized("-x"),
			expected: `unrecognized argument "-x"`,
			sentinel: ErrUnrecognizedArgument,
		},
		{
			name:     "MissingValue",
			err:      missingValue("--retries", "max_retries"),
			expected: `missing value for option "max_retries" (--retries)`,
			sentinel: ErrMissingValue,
		},
		{
			name:     "InvalidValue",
			err:      invalidValue("-r", "max_retries", "abc", strconv.ErrSyntax),
			expected: `invalid value "abc" for option "max_retries" (-r): invalid syntax`,
			sentinel: ErrInvalidValue,
		},
		{
			name:     "InvalidValueWithoutCause",
			err:      invalidValue("-r", "max_retries", "abc", nil),
			expected: `invalid value "abc" for option "max_retries" (-r)`,
			sentinel: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.sentinel)

			var perr *ParseError
			assert.True(t, errors.As(error(tt.err), &perr))
		})
	}

	t.Run("SentinelsDoNotOverlap", func(t *testing.T) {
		err := missingValue("-c", "config_path")
		assert.NotErrorIs(t, err, ErrUnrecognizedArgument)
		assert.NotErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("CauseIsReachable", func(t *testing.T) {
		err := invalidValue("-r", "max_retries", "99999999999", strconv.ErrRange)
		assert.ErrorIs(t, err, strconv.ErrRange)
		assert.Len(t, err.Unwrap(), 2)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		err := &ParseError{}
		assert.Equal(t, "parse error", err.Error())
		assert.Empty(t, err.Unwrap())
	})
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "UnrecognizedArgument", UnrecognizedArgument.String())
	assert.Equal(t, "MissingValue", MissingValue.String())
	assert.Equal(t, "InvalidValue", InvalidValue.String())
	assert.Equal(t, "ErrorKind(9)", ErrorKind(9).String())
}

func TestSchemaError(t *testing.T) {
	err := schemaError("debug", "no spelling")
	assert.ErrorIs(t, err, ErrInvalidSchema)
	assert.EqualError(t, err, `invalid option schema: option "debug": no spelling`)

	err = schemaError("", "%d options", 0)
	assert.EqualError(t, err, "invalid option schema: 0 options")
}
