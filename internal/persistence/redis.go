package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/staffhq/staff-bot/internal/config"
)

const (
	redisDialTimeout = 3 * time.Second
	redisIOTimeout   = time.Second
)

var errRedisDisabled = errors.New("redis not configured")

// Redis holds the optional lookup cache client. A Redis without a client
// means the cache is off and every lookup reads the database.
type Redis struct {
	Client *redis.Client
}

// NewRedis builds a client when REDIS_ADDR is set. An unreachable server is
// logged but not fatal: cache calls then fail fast and fall through.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		logger.Info("lookup cache disabled", zap.String("reason", "REDIS_ADDR empty"))
		return &Redis{}
	}

	r := &Redis{Client: redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  redisDialTimeout,
		ReadTimeout:  redisIOTimeout,
		WriteTimeout: redisIOTimeout,
	})}

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := r.Ping(ctx); err != nil {
		logger.Warn("redis unreachable; lookups will go to the database", zap.String("addr", addr), zap.Error(err))
	} else {
		logger.Info("lookup cache connected", zap.String("addr", addr), zap.Int("db", cfg.DB))
	}
	return r
}

// Enabled reports whether a client is configured.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// Cmdable returns the client as a redis.Cmdable, or a nil interface when the
// cache is disabled.
func (r *Redis) Cmdable() redis.Cmdable {
	if !r.Enabled() {
		return nil
	}
	return r.Client
}

// Ping checks the server answers.
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return errRedisDisabled
	}
	return r.Client.Ping(ctx).Err()
}

// Close releases the client.
func (r *Redis) Close() {
	if r.Enabled() {
		_ = r.Client.Close()
	}
}
