package cache

import (
	"context"
	"encoding/json"
	"leaguedash/api/dto"
	"leaguedash/pkg/redis"
	"time"
)

// The roster overview follows the same 2 minute refresh window the
// dashboard polls with.
const (
	rosterCacheDuration = 2 * time.Minute
	rosterKey           = "roster:overview"
)

// RosterCache is the public interface for the cached roster overview.
type RosterCache interface {
	GetOverview(ctx context.Context) (*dto.RosterOverview, error)
	SetOverview(ctx context.Context, overview *dto.RosterOverview) error
}

// Create a redis cache client.
type rosterCache struct {
	redis *redis.RedisClient
}

// NewRosterCache creates a new instance of the roster redis client.
func NewRosterCache(redis *redis.RedisClient) RosterCache {
	return &rosterCache{
		redis: redis,
	}
}

// GetOverview retrieves the cached roster overview.
// A cache miss returns nil without error.
func (rc *rosterCache) GetOverview(ctx context.Context) (*dto.RosterOverview, error) {
	jsonStr, err := rc.redis.Get(ctx, rosterKey)
	if err != nil {
		return nil, nil
	}

	var overview dto.RosterOverview
	if err := json.Unmarshal([]byte(jsonStr), &overview); err != nil {
		return nil, err
	}

	return &overview, nil
}

// SetOverview saves the roster overview in cache.
func (rc *rosterCache) SetOverview(ctx context.Context, overview *dto.RosterOverview) error {
	j, err := json.Marshal(overview)
	if err != nil {
		return err
	}
	return rc.redis.Set(ctx, rosterKey, string(j), rosterCacheDuration)
}
