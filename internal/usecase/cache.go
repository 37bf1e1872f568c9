package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache is satisfied by the redis adapter. Implementations degrade to
// no-ops when the backend is unreachable, so callers treat a miss and
// an outage the same way.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	analysisCacheTTL       = 10 * time.Minute
	recommendationCacheTTL = 5 * time.Minute
	jobListCacheTTL        = 2 * time.Minute
)

func jobListCacheKey(params any) string {
	b, _ := json.Marshal(params)
	sum := sha256.Sum256(b)
	return "jobs:list:" + hex.EncodeToString(sum[:])
}

func recommendationCacheKey(userID string) string {
	return "recommend:user:" + userID
}

func analysisCacheKey(kind string) string {
	return "analysis:" + kind
}
