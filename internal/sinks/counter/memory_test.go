package counter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_InitIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()

	require.NoError(t, s.InitStatusCounter(ctx, "alice@acme.io"))
	require.NoError(t, s.Increment(ctx, "alice@acme.io", FieldStatuses, 3))
	require.NoError(t, s.InitStatusCounter(ctx, "alice@acme.io"))

	c, err := s.Read(ctx, "alice@acme.io")
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.Statuses, "re-init keeps the live count")
}

func TestInMemory_ReadAbsent(t *testing.T) {
	s := NewInMemory()
	c, err := s.Read(context.Background(), "nobody@acme.io")
	require.NoError(t, err)
	assert.Zero(t, c)
	assert.False(t, s.Has("nobody@acme.io", FieldStatuses))
}
