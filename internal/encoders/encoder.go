// Package encoders maps the categorical labels users pick to the integer
// codes the classifier was trained on, and back.
//
// An encoder is the Go-side view of a fitted label encoder: its classes are
// stored in sorted order and a label's code is its index in that order.
// Encoders are loaded once and never mutated.
package encoders

import (
	"fmt"
	"slices"
	"strings"
)

// Field names used by the encoder artifact.
const (
	FieldPlantName = "Nama_Tanaman"
	FieldDisease   = "Penyakit"
)

// CategoryEncoder is a bidirectional label/code mapping for one field.
type CategoryEncoder struct {
	field   string
	classes []string
	codes   map[string]int
}

// NewCategoryEncoder builds an encoder from classes already in trained order.
// Classes must be strictly ascending; anything else would assign codes that
// disagree with the model. A class holding a carriage return is rejected
// because it cannot round-trip through the CSV history log.
func NewCategoryEncoder(field string, classes []string) (*CategoryEncoder, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: %s has no classes", ErrInvalidClasses, field)
	}

	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		if strings.ContainsRune(c, '\r') {
			return nil, fmt.Errorf("%w: %s: %q contains a carriage return", ErrInvalidClasses, field, c)
		}
		if i > 0 && classes[i-1] >= c {
			return nil, fmt.Errorf("%w: %s: %q follows %q", ErrInvalidClasses, field, c, classes[i-1])
		}
		codes[c] = i
	}

	return &CategoryEncoder{
		field:   field,
		classes: slices.Clone(classes),
		codes:   codes,
	}, nil
}

// Field returns the field name the encoder was fitted for.
func (e *CategoryEncoder) Field() string {
	return e.field
}

// Encode returns the code for label. Matching is exact.
func (e *CategoryEncoder) Encode(label string) (int, error) {
	code, ok := e.codes[label]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownCategory, e.field, label)
	}
	return code, nil
}

// Decode returns the label for code.
func (e *CategoryEncoder) Decode(code int) (string, error) {
	if code < 0 || code >= len(e.classes) {
		return "", fmt.Errorf("%w: %s %d", ErrUnknownCode, e.field, code)
	}
	return e.classes[code], nil
}

// Classes returns a copy of the labels in code order.
func (e *CategoryEncoder) Classes() []string {
	return slices.Clone(e.classes)
}

// Len returns the number of known classes.
func (e *CategoryEncoder) Len() int {
	return len(e.classes)
}
