// FILE: lixenwraith/cliconfig/value.go
package cliconfig

import (
	"fmt"
	"math"
	"strconv"
)

// Value holds the current value of one record field.
// Exactly one of the payload fields is meaningful, selected by kind.
type Value struct {
	kind    Kind
	text    string
	integer int32
	flag    bool
}

// TextValue returns a Text value.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// IntegerValue returns an Integer value.
func IntegerValue(n int32) Value {
	return Value{kind: KindInteger, integer: n}
}

// FlagValue returns a Flag value.
func FlagValue(b bool) Value {
	return Value{kind: KindFlag, flag: b}
}

func intValue(n int64) (Value, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return Value{}, fmt.Errorf("integer %d out of int32 range", n)
	}
	return IntegerValue(int32(n)), nil
}

// Kind returns the kind of the value. The zero Value has kind 0.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the string payload and whether v is a Text value.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// Integer returns the int32 payload and whether v is an Integer value.
func (v Value) Integer() (int32, bool) {
	return v.integer, v.kind == KindInteger
}

// Flag returns the bool payload and whether v is a Flag value.
func (v Value) Flag() (bool, bool) {
	return v.flag, v.kind == KindFlag
}

// Any returns the payload as its Go storage type (string, int32 or bool).
func (v Value) Any() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return v.integer
	case KindFlag:
		return v.flag
	default:
		return nil
	}
}

// String formats the payload.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return strconv.FormatInt(int64(v.integer), 10)
	case KindFlag:
		return strconv.FormatBool(v.flag)
	default:
		return "<invalid>"
	}
}
