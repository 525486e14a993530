package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"tweet-insights-srv/internal/search/repository"
	pkgRedis "tweet-insights-srv/pkg/redis"
)

// cacheKey hashes the lowercased query so arbitrary user input stays out of the key space.
func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(query)))
	return "suggest:" + hex.EncodeToString(sum[:])
}

func (r *implCacheRepository) GetSuggestions(ctx context.Context, query string) ([]string, error) {
	data, err := r.redis.Get(ctx, cacheKey(query))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, err
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(data), &suggestions); err != nil {
		r.l.Errorf(ctx, "search.repository.redis.GetSuggestions: Failed to unmarshal suggestions: %v", err)
		return nil, err
	}
	return suggestions, nil
}

func (r *implCacheRepository) SaveSuggestions(ctx context.Context, query string, suggestions []string, ttl time.Duration) error {
	data, err := json.Marshal(suggestions)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, cacheKey(query), data, ttl); err != nil {
		r.l.Errorf(ctx, "search.repository.redis.SaveSuggestions: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
