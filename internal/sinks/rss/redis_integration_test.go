//go:build integration

package rss_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"roster/internal/account/token"
	"roster/internal/sinks/rss"
	"roster/pkg/testutil/containers"
)

type RedisRssSuite struct {
	suite.Suite
	redis    *containers.RedisContainer
	registry *rss.Redis
}

func TestRedisRssSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisRssSuite))
}

func (s *RedisRssSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.registry = rss.NewRedis(s.redis.Client, token.New())
}

func (s *RedisRssSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisRssSuite) TestMintReleaseLifecycle() {
	ctx := context.Background()
	id, err := s.registry.Mint(ctx, "alice")
	s.Require().NoError(err)
	s.NotEmpty(id)

	owner, ok, err := s.registry.Owner(ctx, id)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("alice", owner)

	s.Require().NoError(s.registry.Release(ctx, id))
	_, ok, err = s.registry.Owner(ctx, id)
	s.Require().NoError(err)
	s.False(ok)

	exists, err := s.redis.Client.Exists(ctx, "rss:"+id).Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists, "released id stays tombstoned")
}

func (s *RedisRssSuite) TestReleaseUnknownIsNoop() {
	s.NoError(s.registry.Release(context.Background(), "never-minted"))
}
