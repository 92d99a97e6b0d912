package rbac

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const cacheKeyPrefix = "rbac:perms:"

// Cache fronts a PermissionSource with a Redis-backed, TTL-bounded cache.
// Concurrent misses for the same role are collapsed into one storage read.
// Storage stays the source of truth; cache failures degrade to lookups.
type Cache struct {
	source PermissionSource
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group
}

// NewCache constructs a Cache in front of source.
func NewCache(source PermissionSource, client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{source: source, client: client, ttl: ttl, logger: logger}
}

// PermissionsForRole returns the cached document for role, loading and
// caching it on miss. ErrRoleNotFound is never cached.
func (c *Cache) PermissionsForRole(ctx context.Context, role string) (PermissionSet, error) {
	if data, err := c.client.Get(ctx, cacheKeyPrefix+role).Bytes(); err == nil {
		var perms PermissionSet
		if err := json.Unmarshal(data, &perms); err == nil {
			return perms, nil
		}
		c.logger.Warn("discarding undecodable cached permissions", slog.String("role", role))
	}
	v, err, _ := c.group.Do(role, func() (any, error) {
		return c.load(ctx, role)
	})
	if err != nil {
		return nil, err
	}
	return v.(PermissionSet), nil
}

// Refresh reloads role from storage and rewrites the cache entry.
func (c *Cache) Refresh(ctx context.Context, role string) error {
	_, err := c.load(ctx, role)
	return err
}

func (c *Cache) load(ctx context.Context, role string) (PermissionSet, error) {
	perms, err := c.source.PermissionsForRole(ctx, role)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(perms)
	if err != nil {
		return perms, nil
	}
	if err := c.client.Set(ctx, cacheKeyPrefix+role, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache permissions", slog.String("role", role), slog.Any("error", err))
	}
	return perms, nil
}

var _ PermissionSource = (*Cache)(nil)
