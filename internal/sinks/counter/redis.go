package counter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"roster/internal/account/models"
	"roster/internal/sinks/metrics"
)

const keyPrefix = "counter:"

// Redis keeps one hash per account at counter:{email}.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// InitStatusCounter creates the field at zero. HSETNX leaves an existing
// value alone so re-running initialisation never resets a live count.
func (r *Redis) InitStatusCounter(ctx context.Context, email string) error {
	return r.init(ctx, email, FieldStatuses)
}

func (r *Redis) InitFollowerCounter(ctx context.Context, email string) error {
	return r.init(ctx, email, FieldFollowers)
}

func (r *Redis) InitFriendCounter(ctx context.Context, email string) error {
	return r.init(ctx, email, FieldFriends)
}

func (r *Redis) Increment(ctx context.Context, email, field string, delta int64) (err error) {
	defer func(start time.Time) { metrics.Observe("counter", "increment", start, err) }(time.Now())
	return r.client.HIncrBy(ctx, keyPrefix+email, field, delta).Err()
}

func (r *Redis) Read(ctx context.Context, email string) (_ models.Counters, err error) {
	defer func(start time.Time) { metrics.Observe("counter", "read", start, err) }(time.Now())

	raw, err := r.client.HGetAll(ctx, keyPrefix+email).Result()
	if err != nil {
		return models.Counters{}, fmt.Errorf("read counters: %w", err)
	}
	fields := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return models.Counters{}, fmt.Errorf("counter %s for %s is not an integer: %w", k, email, err)
		}
		fields[k] = n
	}
	return toCounters(fields), nil
}

func (r *Redis) init(ctx context.Context, email, field string) (err error) {
	defer func(start time.Time) { metrics.Observe("counter", "init_"+field, start, err) }(time.Now())
	return r.client.HSetNX(ctx, keyPrefix+email, field, 0).Err()
}
