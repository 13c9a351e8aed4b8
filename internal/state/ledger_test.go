package state

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentDigest(t *testing.T) {
	t.Run("should be stable for equal payloads", func(t *testing.T) {
		a, err := DocumentDigest(map[string]any{"_id": "product-a", "title": "A"})
		require.NoError(t, err)
		b, err := DocumentDigest(map[string]any{"title": "A", "_id": "product-a"})
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Len(t, a, 64)
	})

	t.Run("should change with the payload", func(t *testing.T) {
		a, err := DocumentDigest(map[string]any{"price": 12})
		require.NoError(t, err)
		b, err := DocumentDigest(map[string]any{"price": 13})
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("should fail on unmarshalable values", func(t *testing.T) {
		_, err := DocumentDigest(map[string]any{"ch": make(chan int)})
		assert.Error(t, err)
	})
}

func TestMemoryLedger(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()

	digest, err := ledger.Digest(ctx, "category-interior")
	require.NoError(t, err)
	assert.Empty(t, digest)

	require.NoError(t, ledger.Record(ctx, "category-interior", "abc"))
	digest, err = ledger.Digest(ctx, "category-interior")
	require.NoError(t, err)
	assert.Equal(t, "abc", digest)
}

func TestRedisLedger(t *testing.T) {
	t.Run("should wrap connection errors with the document id", func(t *testing.T) {
		rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
		defer rdb.Close()
		ledger := NewRedisLedger(rdb, "test:")

		_, err := ledger.Digest(context.Background(), "product-x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product-x")

		err = ledger.Record(context.Background(), "product-x", "abc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product-x")
	})
}
