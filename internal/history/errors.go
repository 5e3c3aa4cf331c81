package history

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/verdant/pkg/storage"
)

var (
	// ErrStoreUnavailable indicates the history log cannot be read or written.
	ErrStoreUnavailable = errors.New("history store unavailable")
	// ErrMalformed indicates history data that does not match the schema.
	ErrMalformed = errors.New("malformed history data")
	// ErrInvalidEntry indicates an entry the CSV log cannot store verbatim.
	ErrInvalidEntry = errors.New("invalid history entry")
)

// MapHTTPStatus maps history errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrStoreUnavailable) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, ErrMalformed) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrInvalidEntry) {
		return http.StatusBadRequest
	}
	return storage.MapHTTPStatus(err)
}
