package tests

import (
	"context"
	"testing"
	"time"

	"pub-manager/internal/domain"
	"pub-manager/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newMenuCache(t *testing.T) *storage.MenuCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return storage.NewMenuCache(client, time.Minute)
}

func TestMenuCache_RoundTrip(t *testing.T) {
	cache := newMenuCache(t)
	ctx := context.Background()

	_, ok := cache.GetMenu(ctx)
	assert.False(t, ok)

	items := []domain.MenuItem{
		{ID: 1, Name: "Onion Soup", Price: 300, Category: "French"},
		{ID: 2, Name: "Peanut Noodles", Price: 500, Category: "Chinese", HasAllergens: true},
	}
	assert.NoError(t, cache.SetMenu(ctx, items))

	got, ok := cache.GetMenu(ctx)
	assert.True(t, ok)
	assert.Equal(t, items, got)
}

func TestMenuCache_Invalidate(t *testing.T) {
	cache := newMenuCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.SetMenu(ctx, []domain.MenuItem{{ID: 1, Name: "Soup"}}))
	assert.NoError(t, cache.Invalidate(ctx))

	_, ok := cache.GetMenu(ctx)
	assert.False(t, ok)
}
