package cliconfig

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var durationType = reflect.TypeOf(time.Duration(0))

// SchemaFromStruct derives a schema from a struct whose field values are the defaults.
//
// Field tags:
//
//	toml:"name"   option name (defaults to the field name); "-" skips the field
//	short:"c"     short spelling
//	long:"name"   long spelling (defaults to the full option name); "-" means none
//	usage:"text"  help text
//	kind:"text"   option kind (text, integer or flag); any field may be declared text
//
// string fields become Text options, signed integer fields Integer options
// (defaults must fit in int32) and bool fields Flag options. An explicit
// kind:"text" keeps wider integers out of the int32 range check. time.Duration
// fields are Text options holding the formatted duration; Scan parses them
// back. Nested structs contribute dot-separated names (e.g. "server.port").
func SchemaFromStruct(structWithDefaults any) (*Schema, error) {
	options, err := structOptions(structWithDefaults)
	if err != nil {
		return nil, err
	}
	return NewSchema(options...)
}

// structOptions collects the option declarations of a struct without validating them as a schema.
func structOptions(structWithDefaults any) ([]OptionSpec, error) {
	v := reflect.ValueOf(structWithDefaults)

	// Handle pointer or direct struct value
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("SchemaFromStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("SchemaFromStruct requires a struct or struct pointer, got %T", structWithDefaults)
	}

	var (
		options []OptionSpec
		errors  []string
	)
	collectFields(v, "", "", &options, &errors)

	if len(errors) > 0 {
		return nil, fmt.Errorf("failed to declare %d field(s): %s", len(errors), strings.Join(errors, "; "))
	}

	return options, nil
}

// collectFields walks exported fields recursively, appending one option per leaf field.
func collectFields(v reflect.Value, pathPrefix, fieldPath string, options *[]OptionSpec, errors *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("toml")
		if tag == "-" {
			continue
		}

		key := field.Name
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				key = parts[0]
			}
		}

		currentPath := pathPrefix + key

		isPtrToStruct := fieldValue.Kind() == reflect.Ptr && fieldValue.Type().Elem().Kind() == reflect.Struct
		if fieldValue.Kind() == reflect.Struct || isPtrToStruct {
			nestedValue := fieldValue
			if isPtrToStruct {
				if fieldValue.IsNil() {
					// No defaults to take from a nil pointer
					continue
				}
				nestedValue = fieldValue.Elem()
			}
			collectFields(nestedValue, currentPath+".", fieldPath+field.Name+".", options, errors)
			continue
		}

		opt, err := fieldOption(field, fieldValue, currentPath)
		if err != nil {
			*errors = append(*errors, fmt.Sprintf("field %s%s (option %s): %v", fieldPath, field.Name, currentPath, err))
			continue
		}
		*options = append(*options, opt)
	}
}

func fieldOption(field reflect.StructField, fieldValue reflect.Value, name string) (OptionSpec, error) {
	isDuration := fieldValue.Type() == durationType

	natural, ok := kindOf(fieldValue.Kind())
	if !ok {
		return OptionSpec{}, fmt.Errorf("unsupported field type %s", fieldValue.Type())
	}
	if isDuration {
		natural = KindText
	}

	kind := natural
	if tag, ok := field.Tag.Lookup("kind"); ok && tag != "" {
		declared, err := ParseKind(tag)
		if err != nil {
			return OptionSpec{}, err
		}
		// Any field can be carried as text; Scan converts it back
		if declared != natural && declared != KindText {
			return OptionSpec{}, fmt.Errorf("kind tag %q does not fit field type %s", tag, fieldValue.Type())
		}
		kind = declared
	}

	var (
		def Value
		err error
	)
	switch {
	case isDuration:
		def = TextValue(time.Duration(fieldValue.Int()).String())
	case kind == KindText && natural == KindInteger:
		def = TextValue(strconv.FormatInt(fieldValue.Int(), 10))
	case kind == KindText && natural == KindFlag:
		def = TextValue(strconv.FormatBool(fieldValue.Bool()))
	case kind == KindText:
		def = TextValue(fieldValue.String())
	case kind == KindInteger:
		def, err = intValue(fieldValue.Int())
	case kind == KindFlag:
		def = FlagValue(fieldValue.Bool())
	}
	if err != nil {
		return OptionSpec{}, err
	}

	opt := OptionSpec{
		Name:    name,
		Kind:    kind,
		Default: def,
		Long:    name,
		Usage:   field.Tag.Get("usage"),
	}

	if short, ok := field.Tag.Lookup("short"); ok && short != "" {
		if utf8.RuneCountInString(short) != 1 {
			return OptionSpec{}, fmt.Errorf("short tag %q must be a single character", short)
		}
		opt.Short, _ = utf8.DecodeRuneInString(short)
	}

	if long, ok := field.Tag.Lookup("long"); ok {
		switch long {
		case "-":
			opt.Long = ""
		case "":
		default:
			opt.Long = long
		}
	}

	return opt, nil
}
