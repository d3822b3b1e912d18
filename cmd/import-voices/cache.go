package main

import (
	"context"

	"github.com/heartmarshall/amulet-backend/internal/adapter/cache"
	"github.com/heartmarshall/amulet-backend/internal/config"
)

// openCache connects to the shared Redis cache so an import refreshes the
// voice list the servers hand to clients. Without Redis each server caches
// in-process and expires the list on its own TTL.
func openCache(ctx context.Context, cfg config.CacheConfig) (cache.Store, func() error, error) {
	if cfg.RedisURL == "" {
		return cache.Noop{}, func() error { return nil }, nil
	}
	client, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedis(client, cfg.KeyPrefix), client.Close, nil
}
