// Package cache keeps assembled claim details in Redis so repeated reads of
// a claim skip the store. Entries are written after a read and deleted after
// every committed write that touches the claim.
//
// Invalidate also leaves a short-lived fence key behind. Set refuses to write
// while the fence exists or when the stored entry is newer, so a fill racing
// a committed write cannot resurrect the older snapshot.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
	"coverline/pkg/platform/sentinel"
)

const (
	claimKeyPrefix = "coverline:claim:"
	fenceKeyPrefix = "coverline:claim-fence:"

	defaultTTL      = 5 * time.Minute
	defaultFenceTTL = 10 * time.Second
)

// RedisCache implements the service ClaimCache port.
type RedisCache struct {
	client   *redis.Client
	ttl      time.Duration
	fenceTTL time.Duration
}

type Option func(*RedisCache)

// WithTTL overrides the entry lifetime. Non-positive values keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(c *RedisCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithFenceTTL sets how long fills stay blocked after an invalidation.
// Non-positive values keep the default.
func WithFenceTTL(ttl time.Duration) Option {
	return func(c *RedisCache) {
		if ttl > 0 {
			c.fenceTTL = ttl
		}
	}
}

// NewRedisCache wraps client. The client lifecycle stays with the caller.
func NewRedisCache(client *redis.Client, opts ...Option) *RedisCache {
	c := &RedisCache{
		client:   client,
		ttl:      defaultTTL,
		fenceTTL: defaultFenceTTL,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func claimKey(claimID id.ClaimID) string {
	return claimKeyPrefix + claimID.String()
}

func fenceKey(claimID id.ClaimID) string {
	return fenceKeyPrefix + claimID.String()
}

// Get returns sentinel.ErrNotFound on a miss or an expired entry.
func (c *RedisCache) Get(ctx context.Context, claimID id.ClaimID) (*models.ClaimDetails, error) {
	raw, err := c.client.Get(ctx, claimKey(claimID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("claim %s: %w", claimID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read cached claim %s: %w", claimID, err)
	}
	return decode(raw)
}

// Set stores details unless an invalidation fence is up or the cached entry
// is already newer. Skipped fills and lost WATCH races are not errors.
func (c *RedisCache) Set(ctx context.Context, details *models.ClaimDetails) error {
	if details == nil || details.Claim == nil {
		return nil
	}
	raw, err := encode(details)
	if err != nil {
		return err
	}
	claimID := details.Claim.ID
	key, fence := claimKey(claimID), fenceKey(claimID)

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		fenced, err := tx.Exists(ctx, fence).Result()
		if err != nil {
			return err
		}
		if fenced > 0 {
			return nil
		}
		current, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			if cached, decodeErr := decode(current); decodeErr == nil && newerThan(cached, details) {
				return nil
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}, key, fence)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cache claim %s: %w", claimID, err)
	}
	return nil
}

// newerThan reports whether a reflects a later write than b.
func newerThan(a, b *models.ClaimDetails) bool {
	if a.Claim.Version != b.Claim.Version {
		return a.Claim.Version > b.Claim.Version
	}
	return len(a.Documents) > len(b.Documents)
}

// Invalidate deletes every listed entry and fences it against racing fills,
// in one round trip.
func (c *RedisCache) Invalidate(ctx context.Context, claimIDs ...id.ClaimID) error {
	if len(claimIDs) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, claimID := range claimIDs {
			pipe.Set(ctx, fenceKey(claimID), 1, c.fenceTTL)
			pipe.Del(ctx, claimKey(claimID))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate %d cached claims: %w", len(claimIDs), err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
