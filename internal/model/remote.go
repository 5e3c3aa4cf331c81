package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type predictRequest struct {
	Columns   []string `json:"columns"`
	Instances [][]int  `json:"instances"`
}

type predictResponse struct {
	Predictions []int `json:"predictions"`
}

// Remote delegates inference to an HTTP model server exposing POST /predict.
type Remote struct {
	baseURL    string
	httpClient *http.Client
}

// NewRemote creates a Remote classifier for baseURL.
func NewRemote(baseURL string, timeout time.Duration) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the classifier name.
func (r *Remote) Name() string {
	return "remote(" + r.baseURL + ")"
}

// Predict posts the records in Columns order and returns one code per record.
func (r *Remote) Predict(ctx context.Context, records []FeatureRecord) ([]int, error) {
	body := predictRequest{
		Columns:   Columns[:],
		Instances: make([][]int, len(records)),
	}
	for i, rec := range records {
		v := rec.Values()
		body.Instances[i] = v[:]
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/predict", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrUpstream, ErrInference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: %w: status %d: %s", ErrUpstream, ErrInference, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %w: decode response: %w", ErrUpstream, ErrInference, err)
	}

	if len(out.Predictions) != len(records) {
		return nil, fmt.Errorf(
			"%w: %w: got %d predictions for %d records",
			ErrUpstream, ErrInference, len(out.Predictions), len(records),
		)
	}

	return out.Predictions, nil
}
