package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"leaguedash/api/dto"
	"leaguedash/pkg/redis"
	"time"
)

// Default keys and durations for the match caches.
// Summaries follow the dashboard refresh window, the performance board of a
// finished match never changes so it can live longer.
const (
	matchSummaryCacheDuration = 2 * time.Minute
	matchSummaryKey           = "match:summary:%s:%s"

	performanceCacheDuration = time.Hour
	performanceKey           = "match:performance:%s"
)

// MatchCache is the public interface for the serialized match responses.
// Only DTOs are stored, never the core types.
type MatchCache interface {
	GetMatchSummary(ctx context.Context, matchId string, puuid string) (*dto.MatchSummary, error)
	SetMatchSummary(ctx context.Context, matchId string, puuid string, summary *dto.MatchSummary) error
	GetPerformanceBoard(ctx context.Context, matchId string) (*dto.PerformanceBoard, error)
	SetPerformanceBoard(ctx context.Context, board *dto.PerformanceBoard) error
}

// Create a redis cache client.
type matchCache struct {
	redis *redis.RedisClient
}

// NewMatchCache creates a new instance of the match redis client.
func NewMatchCache(redis *redis.RedisClient) MatchCache {
	return &matchCache{
		redis: redis,
	}
}

// GetMatchSummary retrieves a cached summary for a given match and player.
// A cache miss returns nil without error.
func (mc *matchCache) GetMatchSummary(ctx context.Context, matchId string, puuid string) (*dto.MatchSummary, error) {
	key := fmt.Sprintf(matchSummaryKey, matchId, puuid)
	return getJson[dto.MatchSummary](ctx, mc.redis, key)
}

// SetMatchSummary saves a given match summary in cache.
func (mc *matchCache) SetMatchSummary(ctx context.Context, matchId string, puuid string, summary *dto.MatchSummary) error {
	key := fmt.Sprintf(matchSummaryKey, matchId, puuid)
	return setJson(ctx, mc.redis, key, summary, matchSummaryCacheDuration)
}

// GetPerformanceBoard retrieves a cached performance board for a match.
func (mc *matchCache) GetPerformanceBoard(ctx context.Context, matchId string) (*dto.PerformanceBoard, error) {
	key := fmt.Sprintf(performanceKey, matchId)
	return getJson[dto.PerformanceBoard](ctx, mc.redis, key)
}

// SetPerformanceBoard saves a given performance board in cache.
func (mc *matchCache) SetPerformanceBoard(ctx context.Context, board *dto.PerformanceBoard) error {
	key := fmt.Sprintf(performanceKey, board.MatchId)
	return setJson(ctx, mc.redis, key, board, performanceCacheDuration)
}

// getJson retrieves and deserializes a single cached value.
func getJson[T any](ctx context.Context, client *redis.RedisClient, key string) (*T, error) {
	jsonStr, err := client.Get(ctx, key)
	if err != nil {
		// Misses are not failures for the caller.
		return nil, nil
	}

	var value T
	if err := json.Unmarshal([]byte(jsonStr), &value); err != nil {
		return nil, err
	}

	return &value, nil
}

// setJson serializes and saves a single value.
func setJson(ctx context.Context, client *redis.RedisClient, key string, value any, ttl time.Duration) error {
	j, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, string(j), ttl)
}
