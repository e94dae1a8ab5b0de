package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/staffhq/staff-bot/internal/domain"
)

const lookupKeyPrefix = "staff:discord:"

// LookupCache keeps recently resolved Discord id -> staff file lookups in
// Redis. A nil client turns every call into a miss.
type LookupCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

// NewLookupCache builds the cache. client may be nil.
func NewLookupCache(client redis.Cmdable, ttl time.Duration, logger *zap.Logger) *LookupCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookupCache{client: client, ttl: ttl, logger: logger}
}

func (c *LookupCache) enabled() bool {
	return c != nil && c.client != nil
}

// Get returns the cached staff file, or false on a miss.
func (c *LookupCache) Get(ctx context.Context, discordID string) (*domain.StaffFile, bool) {
	if !c.enabled() {
		return nil, false
	}
	raw, err := c.client.Get(ctx, lookupKeyPrefix+discordID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("lookup cache read failed", zap.String("discord_id", discordID), zap.Error(err))
		}
		return nil, false
	}
	var staff domain.StaffFile
	if err := json.Unmarshal(raw, &staff); err != nil {
		c.logger.Warn("lookup cache entry corrupt", zap.String("discord_id", discordID), zap.Error(err))
		return nil, false
	}
	return &staff, true
}

// Set stores a resolved lookup.
func (c *LookupCache) Set(ctx context.Context, discordID string, staff *domain.StaffFile) {
	if !c.enabled() || staff == nil {
		return
	}
	raw, err := json.Marshal(staff)
	if err != nil {
		c.logger.Warn("lookup cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, lookupKeyPrefix+discordID, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("lookup cache write failed", zap.String("discord_id", discordID), zap.Error(err))
	}
}

// Invalidate drops a cached lookup after the underlying file changed.
func (c *LookupCache) Invalidate(ctx context.Context, discordID string) {
	if !c.enabled() || discordID == "" {
		return
	}
	if err := c.client.Del(ctx, lookupKeyPrefix+discordID).Err(); err != nil {
		c.logger.Warn("lookup cache invalidate failed", zap.String("discord_id", discordID), zap.Error(err))
	}
}
