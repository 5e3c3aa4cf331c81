package encoders

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Set holds the encoders for every field of the encoder artifact.
type Set struct {
	encoders map[string]*CategoryEncoder
}

// NewSet builds a Set from field → classes.
func NewSet(fields map[string][]string) (*Set, error) {
	encs := make(map[string]*CategoryEncoder, len(fields))
	for field, classes := range fields {
		enc, err := NewCategoryEncoder(field, classes)
		if err != nil {
			return nil, err
		}
		encs[field] = enc
	}

	if _, ok := encs[FieldPlantName]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, FieldPlantName)
	}

	return &Set{encoders: encs}, nil
}

// Load reads an encoder artifact: a YAML (or JSON) mapping of field name to
// its sorted class list.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read encoders: %w", err)
	}

	var fields map[string][]string
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parse encoders: %w", err)
	}

	return NewSet(fields)
}

// Has reports whether an encoder was loaded for field.
func (s *Set) Has(field string) bool {
	_, ok := s.encoders[field]
	return ok
}

// Encoder returns the encoder for field.
func (s *Set) Encoder(field string) (*CategoryEncoder, error) {
	enc, ok := s.encoders[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return enc, nil
}

// Encode maps label to its code in field's encoder.
func (s *Set) Encode(field, label string) (int, error) {
	enc, err := s.Encoder(field)
	if err != nil {
		return 0, err
	}
	return enc.Encode(label)
}

// Decode maps code back to its label in field's encoder.
func (s *Set) Decode(field string, code int) (string, error) {
	enc, err := s.Encoder(field)
	if err != nil {
		return "", err
	}
	return enc.Decode(code)
}

// Categories returns field's labels in sorted order, or nil when the field has no encoder.
func (s *Set) Categories(field string) []string {
	enc, ok := s.encoders[field]
	if !ok {
		return nil
	}
	return enc.Classes()
}

// Fields returns the loaded field names in sorted order.
func (s *Set) Fields() []string {
	fields := make([]string, 0, len(s.encoders))
	for f := range s.encoders {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}
