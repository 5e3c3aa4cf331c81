package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JaimeStill/verdant/internal/history"
)

func TestRedisStoreUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := history.NewRedisStore(client, "verdant:history")
	ctx := context.Background()

	if err := store.Append(ctx, entry("Padi", "Kuning", "Blas")); !errors.Is(err, history.ErrStoreUnavailable) {
		t.Errorf("append: got %v, want ErrStoreUnavailable", err)
	}
	if _, err := store.ReadAll(ctx); !errors.Is(err, history.ErrStoreUnavailable) {
		t.Errorf("read: got %v, want ErrStoreUnavailable", err)
	}
}
