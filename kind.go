// FILE: lixenwraith/cliconfig/kind.go
package cliconfig

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Kind is the value kind of an option. It determines the Go storage type of
// the record field and whether recognizing the flag consumes a following token.
type Kind int

const (
	// KindText stores a string and consumes one following token verbatim
	KindText Kind = iota + 1
	// KindInteger stores an int32 and consumes one following base-10 token
	KindInteger
	// KindFlag stores a bool and consumes nothing; recognition sets it to true
	KindFlag
)

// String returns the kind name used in usage text and error messages.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFlag:
		return "flag"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k == KindText || k == KindInteger || k == KindFlag
}

// TakesValue reports whether recognizing a flag of this kind consumes the next token.
func (k Kind) TakesValue() bool {
	return k == KindText || k == KindInteger
}

// Convert turns a raw token into a Value of this kind.
// Text is stored verbatim, Integer is parsed as a signed 32-bit base-10 number.
// Flag kinds never consume a token, so converting for them is an error.
func (k Kind) Convert(raw string) (Value, error) {
	switch k {
	case KindText:
		return TextValue(raw), nil
	case KindInteger:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return Value{}, err
		}
		return IntegerValue(int32(n)), nil
	case KindFlag:
		return Value{}, fmt.Errorf("kind %s does not take a value", k)
	default:
		return Value{}, fmt.Errorf("unknown kind %d", int(k))
	}
}

// ParseKind maps a kind name to a Kind. The short aliases str, int and bool are accepted.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "str", "string":
		return KindText, nil
	case "integer", "int":
		return KindInteger, nil
	case "flag", "bool":
		return KindFlag, nil
	default:
		return 0, fmt.Errorf("unknown option kind %q", s)
	}
}

// kindOf maps a reflect.Kind of a struct field to an option Kind.
// Integer fields are accepted in any signed width, the default must still fit in int32.
func kindOf(rk reflect.Kind) (Kind, bool) {
	switch rk {
	case reflect.String:
		return KindText, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInteger, true
	case reflect.Bool:
		return KindFlag, true
	default:
		return 0, false
	}
}
