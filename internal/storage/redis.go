package storage

import (
	"context"
	"encoding/json"
	"time"

	"pub-manager/internal/domain"

	"github.com/redis/go-redis/v9"
)

const menuKey = "menu:items"

type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

// GetMenu returns the cached menu list, or false on a miss. Per-guest
// filtering and pricing always happen on read, so one shared key is enough.
func (c *MenuCache) GetMenu(ctx context.Context) ([]domain.MenuItem, bool) {
	payload, err := c.Client.Get(ctx, menuKey).Bytes()
	if err != nil {
		return nil, false
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *MenuCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	payload, _ := json.Marshal(items)
	return c.Client.Set(ctx, menuKey, payload, c.TTL).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, menuKey).Err()
}
