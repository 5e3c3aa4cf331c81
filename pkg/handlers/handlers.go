// Package handlers holds the JSON request and response helpers shared by
// the API handlers.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

var (
	ErrBodyTooLarge = errors.New("request body too large")
	// ErrMalformedBody covers syntax errors, type mismatches and trailing data.
	ErrMalformedBody = errors.New("malformed request body")
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err at WARN, or ERROR for 5xx, and writes it as an
// ErrorBody carrying ClientMessage.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.Log(context.Background(), level, "request failed", "status", status, "error", err)
	RespondJSON(w, status, ErrorBody{Error: ClientMessage(status, err)})
}

// ClientMessage is the error text safe to show a caller. Client errors
// explain themselves; server errors collapse to the status text and leave
// the detail to the log.
func ClientMessage(status int, err error) string {
	if status >= http.StatusInternalServerError {
		return strings.ToLower(http.StatusText(status))
	}
	return err.Error()
}

// DecodeJSON reads exactly one JSON value of type T from the request body,
// capped at limit bytes when limit is positive.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request, limit int64) (T, error) {
	var v T

	body := r.Body
	if limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}
	dec := json.NewDecoder(body)

	if err := dec.Decode(&v); err != nil {
		return v, decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return v, fmt.Errorf("%w: more than one JSON value", ErrMalformedBody)
		}
		return v, decodeError(err)
	}
	return v, nil
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}

// DecodeStatus maps DecodeJSON errors to 413 or 400.
func DecodeStatus(err error) int {
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
