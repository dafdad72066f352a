package relationship

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"roster/internal/sinks/metrics"
)

// RedisLookup reads the set {kind}:{email}. The sets are written by the
// friendship and block services; this lookup only reads them.
type RedisLookup struct {
	client *redis.Client
	kind   Kind
}

func NewRedisLookup(client *redis.Client, kind Kind) *RedisLookup {
	return &RedisLookup{client: client, kind: kind}
}

func (l *RedisLookup) MembersFor(ctx context.Context, email string) (_ map[string]struct{}, err error) {
	defer func(start time.Time) { metrics.Observe("relationship", string(l.kind), start, err) }(time.Now())

	members, err := l.client.SMembers(ctx, key(l.kind, email)).Result()
	if err != nil {
		return nil, fmt.Errorf("lookup %s for %s: %w", l.kind, email, err)
	}
	out := make(map[string]struct{}, len(members))
	for _, m := range members {
		out[m] = struct{}{}
	}
	return out, nil
}
