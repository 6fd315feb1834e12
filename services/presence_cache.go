package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"steamstatus/status-bot/models"
	"steamstatus/status-bot/utils"
)

const presenceKeyPrefix = "presence:"

// PresenceCache keeps recent Steam player summaries in redis so that bursts of
// commands do not each hit the Steam Web API.
type PresenceCache struct {
	redis  *redis.Client
	logger *utils.Logger
	ttl    time.Duration
}

func NewPresenceCache(redisClient *redis.Client, ttl time.Duration, logger *utils.Logger) *PresenceCache {
	return &PresenceCache{
		redis:  redisClient,
		logger: logger,
		ttl:    ttl,
	}
}

// Get returns the cached summaries among ids. Missing or expired ids are absent.
func (pc *PresenceCache) Get(ctx context.Context, ids []string) (map[string]models.PlayerSummary, error) {
	out := make(map[string]models.PlayerSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = presenceKeyPrefix + id
	}

	values, err := pc.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read presence cache: %w", err)
	}

	for i, v := range values {
		data, ok := v.(string)
		if !ok {
			continue
		}
		var summary models.PlayerSummary
		if err := json.Unmarshal([]byte(data), &summary); err != nil {
			pc.logger.Warn("Dropping unreadable cached presence", "steam_id", ids[i], "error", err)
			continue
		}
		out[ids[i]] = summary
	}
	return out, nil
}

// Put stores summaries for the cache TTL.
func (pc *PresenceCache) Put(ctx context.Context, summaries []models.PlayerSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	pipe := pc.redis.Pipeline()
	for _, s := range summaries {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal presence data: %w", err)
		}
		pipe.Set(ctx, presenceKeyPrefix+s.SteamID, data, pc.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update presence cache: %w", err)
	}
	pc.logger.Debug("Cached presence", "players", len(summaries), "ttl", pc.ttl)
	return nil
}
