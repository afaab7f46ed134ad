// File: lixenwraith/cliconfig/convenience.go
package cliconfig

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"text/tabwriter"
)

// Quick declares options from the struct target points to, using its current
// field values as defaults, parses the process arguments and writes the
// result back into the struct.
func Quick(target any) error {
	return QuickArgs(target, os.Args)
}

// QuickArgs is Quick with an explicit argument list (program name first)
func QuickArgs(target any, args []string) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("quick target must be non-nil struct pointer, got %T", target)
	}

	schema, err := SchemaFromStruct(target)
	if err != nil {
		return err
	}

	return schema.ParseInto(args, target)
}

// MustQuick is like Quick but panics on error
func MustQuick(target any) {
	if err := Quick(target); err != nil {
		panic(fmt.Sprintf("cliconfig initialization failed: %v", err))
	}
}

// Usage renders an option table for help output.
func (s *Schema) Usage(program string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [OPTION]...\n\nOptions:\n", program)

	tw := tabwriter.NewWriter(&b, 0, 4, 4, ' ', 0)
	for _, opt := range s.options {
		fmt.Fprintf(tw, "  %s\t%s\n", usageSpelling(opt), usageText(opt))
	}
	tw.Flush()

	return b.String()
}

func usageSpelling(opt OptionSpec) string {
	var spelling string
	switch {
	case opt.Short != 0 && opt.Long != "":
		spelling = fmt.Sprintf("-%c, --%s", opt.Short, opt.Long)
	case opt.Short != 0:
		spelling = fmt.Sprintf("-%c", opt.Short)
	default:
		spelling = "    --" + opt.Long
	}
	if opt.Kind.TakesValue() {
		spelling += " <" + opt.Kind.String() + ">"
	}
	return spelling
}

func usageText(opt OptionSpec) string {
	text := opt.Usage
	if !opt.Kind.TakesValue() {
		return text
	}
	def := fmt.Sprintf("(default %s)", formatValue(opt.Default))
	if text == "" {
		return def
	}
	return text + " " + def
}

// Debug returns a formatted string showing every field, its default and whether it differs
func (r *Record) Debug() string {
	var b strings.Builder
	b.WriteString("Record Debug Info:\n")

	for i, opt := range r.schema.options {
		b.WriteString(fmt.Sprintf("  %s (%s, %s):\n", opt.Name, opt.Kind, strings.Join(opt.Spellings(), "/")))
		b.WriteString(fmt.Sprintf("    Current: %s\n", formatValue(r.values[i])))
		b.WriteString(fmt.Sprintf("    Default: %s\n", formatValue(opt.Default)))
		b.WriteString(fmt.Sprintf("    Changed: %t\n", r.values[i] != opt.Default))
	}

	return b.String()
}
