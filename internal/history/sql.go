package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JaimeStill/verdant/pkg/query"
	"github.com/JaimeStill/verdant/pkg/repository"
)

var projection = query.NewProjectionMap("prediction_history", "h").
	Project("plant_name", "plant").
	Project("leaf_color", "leafColor").
	Project("leaf_spot", "leafSpot").
	Project("leaf_wilt", "leafWilt").
	Project("stem_rot", "stemRot").
	Project("growth_stunted", "growthStunted").
	Project("disease", "disease")

// insertion order
var defaultSort = query.SortField{Field: "h.id"}

// SQLStore keeps the history log in the prediction_history table.
type SQLStore struct {
	db      *sql.DB
	dialect query.Dialect
	insert  string
}

// NewSQLStore returns a SQLStore for a PostgreSQL or SQLite connection.
func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	dialect := query.DialectFor(driver)
	return &SQLStore{
		db:      db,
		dialect: dialect,
		insert:  projection.Insert(dialect),
	}
}

func (s *SQLStore) Append(ctx context.Context, e Entry) error {
	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx, s.insert,
			e.PlantName, e.LeafColor, e.LeafSpot, e.LeafWilt, e.StemRot, e.GrowthStunted, e.Disease,
		)
	})
	if err != nil {
		return fmt.Errorf("%w: insert: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *SQLStore) ReadAll(ctx context.Context) ([]Entry, error) {
	return s.read(ctx, query.NewBuilder(projection, s.dialect, defaultSort))
}

// ReadPlant returns the entries recorded for plant, in insertion order.
func (s *SQLStore) ReadPlant(ctx context.Context, plant string) ([]Entry, error) {
	return s.read(ctx, query.NewBuilder(projection, s.dialect, defaultSort).WhereEquals("plant", plant))
}

func (s *SQLStore) read(ctx context.Context, b *query.Builder) ([]Entry, error) {
	q, args := b.Build()
	entries, err := repository.QueryMany(ctx, s.db, q, args, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("%w: select: %w", ErrStoreUnavailable, err)
	}
	return entries, nil
}

func scanEntry(sc repository.Scanner) (Entry, error) {
	var e Entry
	err := sc.Scan(
		&e.PlantName, &e.LeafColor, &e.LeafSpot, &e.LeafWilt,
		&e.StemRot, &e.GrowthStunted, &e.Disease,
	)
	return e, err
}
