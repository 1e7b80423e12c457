package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/envkit/pkg/primitive"
)

// Field declares the primitive type expected for one key.
type Field struct {
	Key       string
	Primitive primitive.Primitive
}

// Schema is an ordered set of fields with unique keys.
// GetAll resolves fields in schema order.
type Schema struct {
	fields []Field
}

// NewSchema builds a schema from fields. A repeated key replaces the
// primitive of its first occurrence and keeps that position.
func NewSchema(fields ...Field) Schema {
	var s Schema
	for _, f := range fields {
		s.Add(f.Key, f.Primitive)
	}
	return s
}

// SchemaFromMap builds a schema from a map. Keys are ordered lexically.
func SchemaFromMap(m map[string]primitive.Primitive) Schema {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := Schema{fields: make([]Field, 0, len(keys))}
	for _, k := range keys {
		s.fields = append(s.fields, Field{Key: k, Primitive: m[k]})
	}
	return s
}

// ParseSchemaYAML decodes a flat YAML mapping of key to primitive tag,
// keeping document order:
//
//	PORT: number
//	DEBUG: boolean
//	APP_NAME: string
func ParseSchemaYAML(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("schema: line %d: expected a mapping of key to primitive", node.Line)
	}

	var out Schema
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return fmt.Errorf("schema: line %d: nested values are not supported", k.Line)
		}
		out.Add(k.Value, primitive.Primitive(v.Value))
	}
	*s = out
	return nil
}

// Add appends a field, or replaces the primitive of an existing key.
func (s *Schema) Add(key string, p primitive.Primitive) {
	for i := range s.fields {
		if s.fields[i].Key == key {
			s.fields[i].Primitive = p
			return
		}
	}
	s.fields = append(s.fields, Field{Key: key, Primitive: p})
}

// Fields returns a copy of the fields in order.
func (s Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Keys returns the field keys in order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.Key
	}
	return keys
}

func (s Schema) Len() int { return len(s.fields) }
