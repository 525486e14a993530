package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tweet-insights-srv/internal/dashboard"
	"tweet-insights-srv/internal/dashboard/repository"
	pkgRedis "tweet-insights-srv/pkg/redis"
)

func cacheKey(startDate, endDate string) string {
	return fmt.Sprintf("dashboard:%s:%s", startDate, endDate)
}

func (r *implCacheRepository) GetDashboard(ctx context.Context, startDate, endDate string) (dashboard.Payload, error) {
	data, err := r.redis.Get(ctx, cacheKey(startDate, endDate))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNil) {
			return dashboard.Payload{}, repository.ErrCacheMiss
		}
		return dashboard.Payload{}, err
	}

	var payload dashboard.Payload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		r.l.Errorf(ctx, "dashboard.repository.redis.GetDashboard: Failed to unmarshal payload: %v", err)
		return dashboard.Payload{}, err
	}
	return payload, nil
}

func (r *implCacheRepository) SaveDashboard(ctx context.Context, payload dashboard.Payload, ttl time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, cacheKey(payload.StartDate, payload.EndDate), data, ttl); err != nil {
		r.l.Errorf(ctx, "dashboard.repository.redis.SaveDashboard: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
