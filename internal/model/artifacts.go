package model

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/verdant/internal/encoders"
)

// Artifacts are the immutable read-only resources prediction depends on.
type Artifacts struct {
	Encoders   *encoders.Set
	Classifier Classifier
}

// LoadArtifacts loads the encoders and the configured classifier.
// Both file loads run concurrently; the first failure is returned.
func LoadArtifacts(ctx context.Context, cfg *Config) (*Artifacts, error) {
	var a Artifacts
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		set, err := encoders.Load(cfg.EncodersPath)
		if err != nil {
			return fmt.Errorf("encoders: %w", err)
		}
		a.Encoders = set
		return nil
	})

	g.Go(func() error {
		c, err := NewClassifier(cfg)
		if err != nil {
			return fmt.Errorf("classifier: %w", err)
		}
		a.Classifier = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &a, nil
}

// NewClassifier builds the classifier selected by cfg.Kind.
func NewClassifier(cfg *Config) (Classifier, error) {
	switch cfg.Kind {
	case KindRemote:
		return NewRemote(cfg.BaseURL, cfg.TimeoutDuration()), nil
	case KindForest, "":
		return LoadForest(cfg.ForestPath)
	default:
		return nil, fmt.Errorf("unsupported classifier kind %q", cfg.Kind)
	}
}
