package jobs

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/worldforge/sim/backend/internal/config"
	"github.com/worldforge/sim/backend/pkg/logger"
)

// exportCooldown is how long a MarkExported entry lasts; while it does,
// RecentlyExported reports true and cmd/sim's serve hook skips
// re-enqueueing an export for the same run id, avoiding a flood of identical exports if a
// companion polls advance/snapshot faster than the worker drains its queue.
const exportCooldown = 30 * time.Second

// StatusCache is a direct go-redis client tracking recent export activity
// per run id, independent of the redis connection asynq itself opens
// internally for queue storage. Grounded on the teacher's
// internal/cache.RedisClient wrapper (pool-tuned redis.Options, a Get/Set
// pair logging through *logger.LoggerV2), trimmed to the one key shape
// this package needs.
type StatusCache struct {
	client *redis.Client
	log    *logger.LoggerV2
}

// NewStatusCache opens a go-redis client against cfg.
func NewStatusCache(cfg config.RedisConfig, log *logger.LoggerV2) (*StatusCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("jobs: connect status cache: %w", err)
	}
	return &StatusCache{client: client, log: log}, nil
}

func exportKey(runID string) string {
	return "sim:export:recent:" + runID
}

// MarkExported records that runID was just enqueued for export, valid for
// exportCooldown.
func (c *StatusCache) MarkExported(ctx context.Context, runID string) error {
	err := c.client.Set(ctx, exportKey(runID), time.Now().UTC().Format(time.RFC3339), exportCooldown).Err()
	if c.log != nil && err != nil {
		c.log.Warn().Err(err).Str("runId", runID).Msg("jobs: status cache set failed")
	}
	return err
}

// RecentlyExported reports whether runID was marked within the cooldown
// window. A cache failure is treated as "not recent" so a down cache
// degrades to over-exporting rather than silently dropping exports.
func (c *StatusCache) RecentlyExported(ctx context.Context, runID string) bool {
	n, err := c.client.Exists(ctx, exportKey(runID)).Result()
	if err != nil {
		if c.log != nil {
			c.log.Warn().Err(err).Str("runId", runID).Msg("jobs: status cache exists check failed")
		}
		return false
	}
	return n > 0
}

func (c *StatusCache) Close() error {
	return c.client.Close()
}
