package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"roster/internal/account/models"
	"roster/internal/sinks/metrics"
)

// Redis keeps one set per run at digest:{kind}:{day}:{domain}.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Subscribe(ctx context.Context, kind models.DigestKind, username, domain, day string) (err error) {
	defer func(start time.Time) { metrics.Observe("digest", "subscribe", start, err) }(time.Now())
	if err := r.client.SAdd(ctx, key(kind, day, domain), username).Err(); err != nil {
		return fmt.Errorf("subscribe %s digest: %w", kind, err)
	}
	return nil
}

func (r *Redis) Unsubscribe(ctx context.Context, kind models.DigestKind, username, domain, day string) (err error) {
	defer func(start time.Time) { metrics.Observe("digest", "unsubscribe", start, err) }(time.Now())
	if err := r.client.SRem(ctx, key(kind, day, domain), username).Err(); err != nil {
		return fmt.Errorf("unsubscribe %s digest: %w", kind, err)
	}
	return nil
}

func (r *Redis) Members(ctx context.Context, kind models.DigestKind, day, domain string) ([]string, error) {
	members, err := r.client.SMembers(ctx, key(kind, day, domain)).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s digest members: %w", kind, err)
	}
	return sorted(members), nil
}
