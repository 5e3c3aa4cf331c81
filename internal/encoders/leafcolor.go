package encoders

import "fmt"

// LeafColor is one value of the fixed leaf color enumeration.
type LeafColor struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

var leafColors = []LeafColor{
	{Code: 0, Label: "Hijau"},
	{Code: 1, Label: "Kuning"},
	{Code: 2, Label: "Coklat"},
}

// LeafColors returns the enumeration in code order.
func LeafColors() []LeafColor {
	out := make([]LeafColor, len(leafColors))
	copy(out, leafColors)
	return out
}

// LeafColorLabel returns the label for a leaf color code.
func LeafColorLabel(code int) (string, error) {
	if code < 0 || code >= len(leafColors) {
		return "", fmt.Errorf("%w: leaf color %d", ErrUnknownCode, code)
	}
	return leafColors[code].Label, nil
}

// LeafColorCode returns the code for a leaf color label.
func LeafColorCode(label string) (int, error) {
	for _, c := range leafColors {
		if c.Label == label {
			return c.Code, nil
		}
	}
	return 0, fmt.Errorf("%w: leaf color %q", ErrUnknownCategory, label)
}
