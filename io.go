// FILE: lixenwraith/cliconfig/io.go
package cliconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding used by Encode and Save
type Format string

const (
	// FormatTOML encodes with BurntSushi/toml
	FormatTOML Format = "toml"
	// FormatJSON encodes with encoding/json, indented
	FormatJSON Format = "json"
	// FormatYAML encodes with yaml.v3
	FormatYAML Format = "yaml"
)

// ParseFormat maps a format name (case-insensitive, "yml" and "tml" accepted) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml", "tml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Marshal encodes the record. Dotted option names become nested tables.
func (r *Record) Marshal(format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the record to w in the given format.
func (r *Record) Encode(w io.Writer, format Format) error {
	nestedData := r.nested()

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(nestedData); err != nil {
			return fmt.Errorf("failed to marshal record to TOML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(nestedData); err != nil {
			return fmt.Errorf("failed to marshal record to JSON: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(nestedData); err != nil {
			return fmt.Errorf("failed to marshal record to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
	return nil
}

// Save writes the record to path atomically. The format is taken from the
// file extension (.toml, .json, .yaml/.yml).
func (r *Record) Save(path string) error {
	format := detectFileFormat(path)
	if format == "" {
		return fmt.Errorf("%w: cannot determine format for file '%s'", ErrUnsupportedFormat, path)
	}

	data, err := r.Marshal(format)
	if err != nil {
		return err
	}

	if err := atomicWriteFile(path, data); err != nil {
		return fmt.Errorf("failed to save record to '%s': %w", path, err)
	}
	return nil
}

// Dump writes the record to stdout in TOML format
func (r *Record) Dump() error {
	return r.Encode(os.Stdout, FormatTOML)
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}
