// Package history persists past predictions in an append-only log and derives
// filtered views, frequency summaries, and CSV exports from it.
package history

import "context"

// Store is the durable, append-only history log.
//
// Implementations never rewrite or remove prior entries. ReadAll returns the
// entries in insertion order; an absent log reads as empty. Failures to reach
// or decode the underlying storage are reported as ErrStoreUnavailable.
type Store interface {
	Append(ctx context.Context, e Entry) error
	ReadAll(ctx context.Context) ([]Entry, error)
}

// PlantReader is implemented by stores that can select a single plant's
// entries without reading the whole log.
type PlantReader interface {
	ReadPlant(ctx context.Context, plant string) ([]Entry, error)
}
