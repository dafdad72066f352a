package rss

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedIDs struct {
	ids []string
}

func (s *scriptedIDs) NewRssID() string {
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

func TestInMemory_MintAndRelease(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory(&scriptedIDs{ids: []string{"a", "a", "b", "a", "a", "a"}})

	id, err := s.Mint(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a", id)

	id, err = s.Mint(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "b", id, "collision retried")

	owner, ok, err := s.Owner(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", owner)

	require.NoError(t, s.Release(ctx, "a"))
	_, ok, err = s.Owner(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Mint(ctx, "carol")
	assert.ErrorIs(t, err, ErrMintExhausted, "released ids are never reissued")
}
