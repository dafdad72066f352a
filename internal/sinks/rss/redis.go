package rss

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"roster/internal/sinks/metrics"
)

const (
	keyPrefix = "rss:"
	// released marks a tombstoned id so it is never handed out again.
	released = "\x00released"
)

// Redis stores rss:{id} -> username.
type Redis struct {
	client *redis.Client
	ids    IDSource
}

func NewRedis(client *redis.Client, ids IDSource) *Redis {
	return &Redis{client: client, ids: ids}
}

// Mint claims a fresh id with SETNX so concurrent mints cannot share one.
func (r *Redis) Mint(ctx context.Context, username string) (_ string, err error) {
	defer func(start time.Time) { metrics.Observe("rss", "mint", start, err) }(time.Now())

	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		id := r.ids.NewRssID()
		ok, err := r.client.SetNX(ctx, keyPrefix+id, username, 0).Result()
		if err != nil {
			return "", fmt.Errorf("mint rss id: %w", err)
		}
		if ok {
			return id, nil
		}
	}
	return "", ErrMintExhausted
}

// Release tombstones the id instead of deleting it.
func (r *Redis) Release(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { metrics.Observe("rss", "release", start, err) }(time.Now())

	if id == "" {
		return nil
	}
	if err := r.client.SetXX(ctx, keyPrefix+id, released, 0).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release rss id: %w", err)
	}
	return nil
}

func (r *Redis) Owner(ctx context.Context, id string) (string, bool, error) {
	v, err := r.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup rss id: %w", err)
	}
	if v == released {
		return "", false, nil
	}
	return v, true, nil
}
