package storage_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/JaimeStill/verdant/pkg/storage"
)

const azuriteConnString = "DefaultEndpointsProtocol=http;AccountName=verdantstore;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://127.0.0.1:10000/verdantstore;"

func azureConfig() *storage.Config {
	return &storage.Config{
		Provider:         storage.ProviderAzure,
		ContainerName:    "exports",
		ConnectionString: azuriteConnString,
	}
}

func minioConfig() *storage.Config {
	return &storage.Config{
		Provider:      storage.ProviderMinio,
		ContainerName: "exports",
		Endpoint:      "http://127.0.0.1:9000",
		AccessKey:     "minioadmin",
		SecretKey:     "minioadmin",
	}
}

func TestNewReturnsSystem(t *testing.T) {
	tests := []struct {
		name string
		cfg  *storage.Config
	}{
		{"azure", azureConfig()},
		{"minio", minioConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, err := storage.New(tt.cfg, slog.Default())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if sys == nil {
				t.Fatal("New() returned nil system")
			}
		})
	}
}

func TestNewInvalidConnectionString(t *testing.T) {
	cfg := azureConfig()
	cfg.ConnectionString = "not-a-connection-string"

	if _, err := storage.New(cfg, slog.Default()); err == nil {
		t.Fatal("expected error for invalid connection string, got nil")
	}
}

func TestNewDisabled(t *testing.T) {
	_, err := storage.New(&storage.Config{}, slog.Default())
	if !errors.Is(err, storage.ErrDisabled) {
		t.Errorf("New() error = %v, want ErrDisabled", err)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ErrNotFound maps to 404", storage.ErrNotFound, http.StatusNotFound},
		{"ErrEmptyKey maps to 400", storage.ErrEmptyKey, http.StatusBadRequest},
		{"ErrInvalidKey maps to 400", storage.ErrInvalidKey, http.StatusBadRequest},
		{"ErrDisabled maps to 501", storage.ErrDisabled, http.StatusNotImplemented},
		{"wrapped ErrNotFound maps to 404", fmt.Errorf("operation failed: %w", storage.ErrNotFound), http.StatusNotFound},
		{"unknown error maps to 500", fmt.Errorf("unexpected failure"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := storage.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeyValidation(t *testing.T) {
	keys := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"empty key", "", storage.ErrEmptyKey},
		{"path traversal", "exports/../secrets/key", storage.ErrInvalidKey},
		{"double dot in middle", "exports/..hidden/file.csv", storage.ErrInvalidKey},
		{"absolute", "/exports/riwayat.csv", storage.ErrInvalidKey},
		{"backslash", `exports\riwayat.csv`, storage.ErrInvalidKey},
	}

	providers := map[string]*storage.Config{
		"azure": azureConfig(),
		"minio": minioConfig(),
	}

	ctx := context.Background()

	for provider, cfg := range providers {
		sys, err := storage.New(cfg, slog.Default())
		if err != nil {
			t.Fatalf("%s: New() error = %v", provider, err)
		}

		for _, tt := range keys {
			t.Run(provider+"/"+tt.name, func(t *testing.T) {
				err := sys.Upload(ctx, tt.key, bytes.NewReader(nil), "text/csv")
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Upload() error = %v, want %v", err, tt.wantErr)
				}

				_, err = sys.Download(ctx, tt.key)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Download() error = %v, want %v", err, tt.wantErr)
				}

				err = sys.Delete(ctx, tt.key)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Delete() error = %v, want %v", err, tt.wantErr)
				}

				_, err = sys.Exists(ctx, tt.key)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Exists() error = %v, want %v", err, tt.wantErr)
				}
			})
		}
	}
}
