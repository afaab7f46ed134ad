// FILE: lixenwraith/cliconfig/error.go
package cliconfig

import (
	"errors"
	"fmt"
)

// Sentinel errors. Parse failures wrap one of the first three and can be
// matched with errors.Is; the concrete *ParseError carries the details.
var (
	// ErrUnrecognizedArgument reports a flag or bare token that matches no option
	ErrUnrecognizedArgument = errors.New("unrecognized argument")
	// ErrMissingValue reports a value-kind flag at the end of the input
	ErrMissingValue = errors.New("missing value")
	// ErrInvalidValue reports a value that cannot be converted to the option's kind
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidSchema reports a schema that violates an option invariant
	ErrInvalidSchema = errors.New("invalid option schema")
	// ErrUnsupportedFormat reports an unknown output format for Encode/Save
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	UnrecognizedArgument ErrorKind = iota + 1
	MissingValue
	InvalidValue
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedArgument:
		return "UnrecognizedArgument"
	case MissingValue:
		return "MissingValue"
	case InvalidValue:
		return "InvalidValue"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case UnrecognizedArgument:
		return ErrUnrecognizedArgument
	case MissingValue:
		return ErrMissingValue
	case InvalidValue:
		return ErrInvalidValue
	default:
		return nil
	}
}

// ParseError is returned by Parse and ParseEnv on the first failure.
type ParseError struct {
	Kind   ErrorKind
	Token  string // Offending token as typed (e.g. "-x", "--retries")
	Option string // Option name for MissingValue and InvalidValue
	Value  string // Raw value for InvalidValue
	Err    error  // Underlying conversion error, if any
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnrecognizedArgument:
		return fmt.Sprintf("unrecognized argument %q", e.Token)
	case MissingValue:
		return fmt.Sprintf("missing value for option %q (%s)", e.Option, e.Token)
	case InvalidValue:
		if e.Err != nil {
			return fmt.Sprintf("invalid value %q for option %q (%s): %v", e.Value, e.Option, e.Token, e.Err)
		}
		return fmt.Sprintf("invalid value %q for option %q (%s)", e.Value, e.Option, e.Token)
	default:
		return "parse error"
	}
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func unrecognized(token string) *ParseError {
	return &ParseError{Kind: UnrecognizedArgument, Token: token}
}

func missingValue(token, option string) *ParseError {
	return &ParseError{Kind: MissingValue, Token: token, Option: option}
}

func invalidValue(token, option, raw string, err error) *ParseError {
	return &ParseError{Kind: InvalidValue, Token: token, Option: option, Value: raw, Err: err}
}

// schemaError wraps ErrInvalidSchema with the offending option.
func schemaError(option, format string, args ...any) error {
	if option == "" {
		return fmt.Errorf("%w: %s", ErrInvalidSchema, fmt.Sprintf(format, args...))
	}
	return fmt.Errorf("%w: option %q: %s", ErrInvalidSchema, option, fmt.Sprintf(format, args...))
}
