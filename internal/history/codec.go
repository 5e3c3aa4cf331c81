package history

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
)

// Encode writes entries as CSV with a header row. It stops at the first
// entry that fails Validate.
func Encode(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		if err := cw.Write(e.Record()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Decode reads CSV produced by Encode. An empty input yields no entries.
func Decode(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformed, err)
	}
	if !slices.Equal(header, Columns) {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrMalformed, header)
	}

	entries := make([]Entry, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		entries = append(entries, entryFromRecord(rec))
	}

	return entries, nil
}

// Export encodes entries as UTF-8 CSV using the log schema, header included.
func Export(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, entries); err != nil {
		return nil, fmt.Errorf("export history: %w", err)
	}
	return buf.Bytes(), nil
}
