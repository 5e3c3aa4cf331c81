package model

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tree is one decision tree exported as parallel node arrays.
// A node is a leaf when Left is -1; otherwise records whose feature value is
// less than or equal to Threshold descend Left, all others Right.
type Tree struct {
	Feature   []int       `yaml:"feature" json:"feature"`
	Threshold []float64   `yaml:"threshold" json:"threshold"`
	Left      []int       `yaml:"left" json:"left"`
	Right     []int       `yaml:"right" json:"right"`
	Value     [][]float64 `yaml:"value" json:"value"`
}

// Forest is a tree-ensemble classifier loaded from an exported artifact.
type Forest struct {
	Features []string `yaml:"features" json:"features"`
	Classes  []int    `yaml:"classes" json:"classes"`
	Trees    []Tree   `yaml:"trees" json:"trees"`
}

// LoadForest reads and validates a forest artifact (YAML or JSON).
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read forest: %w", err)
	}

	var f Forest
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parse forest: %w", ErrInvalidArtifact, err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks the structural shape of the forest. It does not check that
// Features matches Columns.
func (f *Forest) Validate() error {
	if len(f.Classes) == 0 {
		return fmt.Errorf("%w: no classes", ErrInvalidArtifact)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("%w: no trees", ErrInvalidArtifact)
	}

	for i, t := range f.Trees {
		if err := t.validate(len(f.Classes)); err != nil {
			return fmt.Errorf("%w: tree %d: %w", ErrInvalidArtifact, i, err)
		}
	}
	return nil
}

func (t *Tree) validate(classes int) error {
	n := len(t.Left)
	if n == 0 {
		return fmt.Errorf("no nodes")
	}
	if len(t.Right) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("node arrays differ in length")
	}

	for i := range n {
		if t.Left[i] == -1 {
			if len(t.Value[i]) != classes {
				return fmt.Errorf("leaf %d has %d values, want %d", i, len(t.Value[i]), classes)
			}
			continue
		}
		if t.Feature[i] < 0 || t.Feature[i] >= NumFeatures {
			return fmt.Errorf("node %d splits on feature %d", i, t.Feature[i])
		}
		// children always follow their parent in an exported tree; this also rules out cycles
		if t.Left[i] <= i || t.Left[i] >= n || t.Right[i] <= i || t.Right[i] >= n {
			return fmt.Errorf("node %d has out-of-range children", i)
		}
	}
	return nil
}

// Name returns the classifier name.
func (f *Forest) Name() string {
	return fmt.Sprintf("forest(%d trees)", len(f.Trees))
}

// Predict returns the class whose averaged leaf probability is highest.
// Ties resolve to the class listed first.
func (f *Forest) Predict(ctx context.Context, records []FeatureRecord) ([]int, error) {
	out := make([]int, len(records))
	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInference, err)
		}
		out[i] = f.Classes[f.argmax(r.Values())]
	}
	return out, nil
}

func (f *Forest) argmax(x [NumFeatures]int) int {
	proba := make([]float64, len(f.Classes))

	for i := range f.Trees {
		leaf := f.Trees[i].leaf(x)
		row := f.Trees[i].Value[leaf]

		var total float64
		for _, v := range row {
			total += v
		}
		if total == 0 {
			continue
		}
		for k, v := range row {
			proba[k] += v / total
		}
	}

	best := 0
	for k := 1; k < len(proba); k++ {
		if proba[k] > proba[best] {
			best = k
		}
	}
	return best
}

func (t *Tree) leaf(x [NumFeatures]int) int {
	node := 0
	for t.Left[node] != -1 {
		if float64(x[t.Feature[node]]) <= t.Threshold[node] {
			node = t.Left[node]
		} else {
			node = t.Right[node]
		}
	}
	return node
}
