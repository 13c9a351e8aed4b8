package state

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Ledger remembers the digest of the last payload written for each document id.
type Ledger interface {
	Digest(ctx context.Context, documentID string) (string, error)
	Record(ctx context.Context, documentID, digest string) error
}

type redisLedger struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewRedisLedger(redisClient *redis.Client, keyPrefix string) Ledger {
	return &redisLedger{
		redisClient: redisClient,
		keyPrefix:   keyPrefix,
	}
}

func (l *redisLedger) Digest(ctx context.Context, documentID string) (string, error) {
	val, err := l.redisClient.Get(ctx, l.keyPrefix+documentID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil // never published
		}
		return "", fmt.Errorf("failed to get digest for %s: %w", documentID, err)
	}
	return val, nil
}

func (l *redisLedger) Record(ctx context.Context, documentID, digest string) error {
	if err := l.redisClient.Set(ctx, l.keyPrefix+documentID, digest, 0).Err(); err != nil {
		return fmt.Errorf("failed to record digest for %s: %w", documentID, err)
	}
	return nil
}

// memoryLedger only lives as long as the process; it is used when Redis is not configured.
// Runs are sequential, so it is not safe for concurrent use.
type memoryLedger struct {
	digests map[string]string
}

func NewMemoryLedger() Ledger {
	return &memoryLedger{digests: make(map[string]string)}
}

func (l *memoryLedger) Digest(_ context.Context, documentID string) (string, error) {
	return l.digests[documentID], nil
}

func (l *memoryLedger) Record(_ context.Context, documentID, digest string) error {
	l.digests[documentID] = digest
	return nil
}

// DocumentDigest hashes the JSON payload that would be sent for doc.
func DocumentDigest(doc any) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
