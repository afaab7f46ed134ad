// File: lixenwraith/cliconfig/type.go
package cliconfig

import (
	"fmt"
)

// Text retrieves a field as a string.
// Integer and Flag fields are formatted rather than rejected.
func (r *Record) Text(name string) (string, error) {
	val, found := r.Get(name)
	if !found {
		return "", fmt.Errorf("option not declared: %s", name)
	}
	return val.String(), nil
}

// Int32 retrieves an Integer field.
func (r *Record) Int32(name string) (int32, error) {
	val, found := r.Get(name)
	if !found {
		return 0, fmt.Errorf("option not declared: %s", name)
	}
	n, ok := val.Integer()
	if !ok {
		return 0, fmt.Errorf("option %s has kind %s, not %s", name, val.Kind(), KindInteger)
	}
	return n, nil
}

// Int retrieves an Integer field widened to int.
func (r *Record) Int(name string) (int, error) {
	n, err := r.Int32(name)
	return int(n), err
}

// Bool retrieves a Flag field.
func (r *Record) Bool(name string) (bool, error) {
	val, found := r.Get(name)
	if !found {
		return false, fmt.Errorf("option not declared: %s", name)
	}
	b, ok := val.Flag()
	if !ok {
		return false, fmt.Errorf("option %s has kind %s, not %s", name, val.Kind(), KindFlag)
	}
	return b, nil
}

// MustText is like Text but panics on error.
func (r *Record) MustText(name string) string {
	s, err := r.Text(name)
	if err != nil {
		panic(err)
	}
	return s
}

// MustInt32 is like Int32 but panics on error.
func (r *Record) MustInt32(name string) int32 {
	n, err := r.Int32(name)
	if err != nil {
		panic(err)
	}
	return n
}

// MustBool is like Bool but panics on error.
func (r *Record) MustBool(name string) bool {
	b, err := r.Bool(name)
	if err != nil {
		panic(err)
	}
	return b
}
