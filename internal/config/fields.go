package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field is one configured PayPal form value.
type Field struct {
	Name  string
	Value string
}

// Fields keeps the configured PayPal fields in the order they were defined.
type Fields []Field

// UnmarshalText parses a query-encoded list such as
// "business=shop%40example.com&item_name=Baseball+Hat&a3=3.99".
func (f *Fields) UnmarshalText(text []byte) error {
	var out Fields
	for _, pair := range strings.Split(string(text), "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return fmt.Errorf("decode field name %q: %w", rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return fmt.Errorf("decode value of %q: %w", key, err)
		}
		if key == "" {
			return fmt.Errorf("empty field name in %q", pair)
		}
		out = out.Set(key, value)
	}
	*f = out
	return nil
}

// Get returns the value of name and whether it is set.
func (f Fields) Get(name string) (string, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// Set replaces the value of name in place, or appends it.
func (f Fields) Set(name, value string) Fields {
	for i := range f {
		if f[i].Name == name {
			f[i].Value = value
			return f
		}
	}
	return append(f, Field{Name: name, Value: value})
}

// Default appends name only when it is not configured yet.
func (f Fields) Default(name, value string) Fields {
	if _, ok := f.Get(name); ok {
		return f
	}
	return append(f, Field{Name: name, Value: value})
}

// Merge returns a copy of f with every field of other applied by Set.
func (f Fields) Merge(other Fields) Fields {
	out := make(Fields, len(f), len(f)+len(other))
	copy(out, f)
	for _, field := range other {
		out = out.Set(field.Name, field.Value)
	}
	return out
}

// LoadFieldsFile reads a YAML mapping of field names to values, keeping
// the order of the file.
func LoadFieldsFile(path string) (Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fields file: %w", err)
	}

	fields, err := ParseFieldsYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse fields file %s: %w", path, err)
	}
	return fields, nil
}

func ParseFieldsYAML(data []byte) (Fields, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of field names to values", root.Line)
	}

	var fields Fields
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: value of %q must be a scalar", value.Line, key.Value)
		}
		if _, ok := fields.Get(key.Value); ok {
			return nil, fmt.Errorf("line %d: field %q defined twice", key.Line, key.Value)
		}
		fields = append(fields, Field{Name: key.Value, Value: value.Value})
	}

	return fields, nil
}
