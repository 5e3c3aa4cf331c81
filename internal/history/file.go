package history

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// DefaultFilePath is the history log location used when none is configured.
const DefaultFilePath = "riwayat_prediksi.csv"

// FileStore keeps the history log in a CSV file.
// The header row is written only when the file is absent or empty.
// Appends are serialized within the process; separate processes writing
// the same file are not coordinated.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFilePath
	}
	return &FileStore{path: path}
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Append(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrStoreUnavailable, s.path, err)
	}

	if err := writeRow(f, e); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrStoreUnavailable, s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrStoreUnavailable, s.path, err)
	}
	return nil
}

func writeRow(f *os.File, e Entry) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(Columns); err != nil {
			return err
		}
	}
	if err := cw.Write(e.Record()); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func (s *FileStore) ReadAll(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStoreUnavailable, s.path, err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrStoreUnavailable, s.path, err)
	}
	return entries, nil
}
