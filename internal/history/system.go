package history

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/verdant/pkg/formatting"
	"github.com/JaimeStill/verdant/pkg/pagination"
	"github.com/JaimeStill/verdant/pkg/storage"
)

// View is the history as shown on the form page. Plants lists every plant in
// the log; Entries and Summary cover only the filtered subset.
type View struct {
	Filter  string   `json:"filter"`
	Entries []Entry  `json:"entries"`
	Plants  []string `json:"plants"`
	Summary Summary  `json:"summary"`
}

// Archive describes an export uploaded to blob storage.
type Archive struct {
	Key       string    `json:"key"`
	Entries   int       `json:"entries"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// System defines the public contract for history operations.
type System interface {
	Handler(pagination pagination.Config) *Handler

	Append(ctx context.Context, e Entry) error
	List(ctx context.Context, plant string) ([]Entry, error)
	View(ctx context.Context, plant string) (*View, error)
	Export(ctx context.Context, plant string) ([]byte, error)
	Archive(ctx context.Context, plant string) (*Archive, error)
	OpenArchive(ctx context.Context, key string) (io.ReadCloser, error)
}

type system struct {
	store  Store
	blobs  storage.System
	logger *slog.Logger
	now    func() time.Time
}

// New creates a history system over store. blobs may be nil, in which case
// archiving reports storage.ErrDisabled.
func New(store Store, blobs storage.System, logger *slog.Logger) System {
	return &system{
		store:  store,
		blobs:  blobs,
		logger: logger.With("system", "history"),
		now:    time.Now,
	}
}

func (s *system) Handler(pagination pagination.Config) *Handler {
	return NewHandler(s, s.logger, pagination)
}

func (s *system) Append(ctx context.Context, e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := s.store.Append(ctx, e); err != nil {
		return err
	}
	s.logger.Info("prediction recorded", "plant", e.PlantName, "disease", e.Disease)
	return nil
}

func (s *system) List(ctx context.Context, plant string) ([]Entry, error) {
	if pr, ok := s.store.(PlantReader); ok && plant != "" && plant != AllPlants {
		return pr.ReadPlant(ctx, plant)
	}

	entries, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByPlant(entries, plant), nil
}

func (s *system) View(ctx context.Context, plant string) (*View, error) {
	entries, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	if plant == "" {
		plant = AllPlants
	}
	filtered := FilterByPlant(entries, plant)

	return &View{
		Filter:  plant,
		Entries: filtered,
		Plants:  Plants(entries),
		Summary: SummarizeByDisease(filtered),
	}, nil
}

func (s *system) Export(ctx context.Context, plant string) ([]byte, error) {
	entries, err := s.List(ctx, plant)
	if err != nil {
		return nil, err
	}
	return Export(entries)
}

func (s *system) Archive(ctx context.Context, plant string) (*Archive, error) {
	if s.blobs == nil {
		return nil, storage.ErrDisabled
	}

	entries, err := s.List(ctx, plant)
	if err != nil {
		return nil, err
	}

	data, err := Export(entries)
	if err != nil {
		return nil, err
	}

	created := s.now().UTC()
	key := archiveKey(created, uuid.New())

	if err := s.blobs.Upload(ctx, key, bytes.NewReader(data), "text/csv"); err != nil {
		return nil, fmt.Errorf("archive history: %w", err)
	}

	s.logger.Info(
		"history archived",
		"key", key,
		"entries", len(entries),
		"size", formatting.FormatBytes(int64(len(data)), 1),
	)

	return &Archive{
		Key:       key,
		Entries:   len(entries),
		Size:      len(data),
		CreatedAt: created,
	}, nil
}

func (s *system) OpenArchive(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.blobs == nil {
		return nil, storage.ErrDisabled
	}
	return s.blobs.Download(ctx, key)
}

func archiveKey(t time.Time, id uuid.UUID) string {
	return fmt.Sprintf("exports/%s-%s/%s", t.Format("20060102T150405"), id, DefaultFilePath)
}
