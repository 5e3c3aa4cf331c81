package model

import (
	"context"
	"errors"
)

// Sentinel errors for classifier operations.
var (
	ErrInvalidArtifact = errors.New("invalid model artifact")
	ErrInference       = errors.New("inference failed")

	// ErrUpstream accompanies ErrInference when a remote classifier could
	// not be reached or answered outside its contract.
	ErrUpstream = errors.New("remote classifier failed")
)

// Classifier predicts one class code per feature record.
// Implementations must be deterministic for a fixed artifact.
type Classifier interface {
	Predict(ctx context.Context, records []FeatureRecord) ([]int, error)
	// Name identifies the classifier in logs and health output.
	Name() string
}
