package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/oguzk/jobport/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "job:views:"

// ViewCounter accumulates posting view counts outside the database so a
// popular posting does not turn every read into a row update.
type ViewCounter interface {
	Increment(ctx context.Context, jobID int64)
}

// RedisViewCounter keeps per-posting view deltas in Redis. The scheduler
// periodically drains the counters into the views_count column.
type RedisViewCounter struct {
	client *redis.Client
}

// NewRedisViewCounter creates a new RedisViewCounter
func NewRedisViewCounter(client *redis.Client) *RedisViewCounter {
	return &RedisViewCounter{client: client}
}

// Increment bumps the pending view counter for a posting. Failures are
// logged and swallowed so a Redis outage never breaks posting reads.
func (c *RedisViewCounter) Increment(ctx context.Context, jobID int64) {
	key := fmt.Sprintf("%s%d", viewKeyPrefix, jobID)
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		logger.Warn().Err(err).Int64("jobID", jobID).Msg("Failed to increment view counter")
	}
}

// Flush drains every pending counter and hands each (jobID, delta) pair to
// apply. Counters are read with GETDEL so a view is counted exactly once.
func (c *RedisViewCounter) Flush(ctx context.Context, apply func(ctx context.Context, jobID, delta int64) error) error {
	iter := c.client.Scan(ctx, 0, viewKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		val, err := c.client.GetDel(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return fmt.Errorf("error draining view counter %s: %w", key, err)
		}

		delta, err := strconv.ParseInt(val, 10, 64)
		if err != nil || delta <= 0 {
			logger.Warn().Str("key", key).Str("value", val).Msg("Dropping malformed view counter")
			continue
		}

		jobID, err := strconv.ParseInt(strings.TrimPrefix(key, viewKeyPrefix), 10, 64)
		if err != nil {
			logger.Warn().Str("key", key).Msg("Dropping view counter with malformed key")
			continue
		}

		if err := apply(ctx, jobID, delta); err != nil {
			// The counter was already drained; put the delta back so the
			// views survive until the next flush.
			if restoreErr := c.client.IncrBy(ctx, key, delta).Err(); restoreErr != nil {
				logger.Error().Err(restoreErr).Str("key", key).Int64("delta", delta).
					Msg("Failed to restore view counter after apply error")
			}
			return fmt.Errorf("error applying view counter %s: %w", key, err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("error scanning view counters: %w", err)
	}

	return nil
}
