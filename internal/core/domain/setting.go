package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FileExtension is the suffix of every setting file in the configuration directory.
const FileExtension = ".json"

// MaxNameLength bounds setting names so "<name>.json" stays a legal file name.
const MaxNameLength = 250

// Setting is a named, JSON-valued configuration entry.
//
// Value holds the decoded JSON: string, json.Number, bool, nil,
// map[string]any or []any.
type Setting struct {
	Name  string `json:"key" yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

// ValidateName reports whether name can be stored as "<name>.json".
func ValidateName(name string) error {
	switch {
	case name == "":
		return ErrInvalidName.WithDetails("name is empty")
	case len(name) > MaxNameLength:
		return ErrInvalidName.WithDetails(fmt.Sprintf("name longer than %d bytes", MaxNameLength))
	case strings.HasPrefix(name, "."):
		return ErrInvalidName.WithDetails(fmt.Sprintf("%q starts with a dot", name))
	case strings.ContainsAny(name, `/\`):
		return ErrInvalidName.WithDetails(fmt.Sprintf("%q contains a path separator", name))
	case strings.ContainsRune(name, 0):
		return ErrInvalidName.WithDetails("name contains a NUL byte")
	case strings.HasSuffix(name, FileExtension):
		return ErrInvalidName.WithDetails(fmt.Sprintf("%q must not end in %s", name, FileExtension))
	}
	return nil
}

// FileName returns the file name a setting is stored under.
func FileName(name string) string {
	return name + FileExtension
}

// NameFromFile returns the setting name for a directory entry and whether
// the entry is a setting file at all.
func NameFromFile(file string) (string, bool) {
	if !strings.HasSuffix(file, FileExtension) || strings.HasPrefix(file, ".") {
		return "", false
	}
	name := strings.TrimSuffix(file, FileExtension)
	if ValidateName(name) != nil {
		return "", false
	}
	return name, true
}

// DecodeValue parses exactly one JSON document. Numbers are kept as
// json.Number so they re-encode with their original text.
func DecodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrInvalidValue.WithDetails("empty JSON document")
		}
		return nil, ErrInvalidValue.WithCause(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrInvalidValue.WithDetails("unexpected data after JSON value")
	}
	return v, nil
}

// EncodeValue renders v as compact JSON without HTML escaping and
// without a trailing newline.
func EncodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, ErrInvalidValue.WithCause(err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// RenderValue formats a setting value for display: strings are printed
// as-is, everything else as compact JSON.
func RenderValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	data, err := EncodeValue(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}
