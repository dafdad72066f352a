package relationship

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_Lookups(t *testing.T) {
	ctx := context.Background()
	g := NewGraph()
	g.Add(Friends, "alice@acme.io", "bob@acme.io")
	g.Add(Blocked, "alice@acme.io", "mallory@acme.io")

	friends := g.Lookup(Friends)
	members, err := friends.MembersFor(ctx, "alice@acme.io")
	require.NoError(t, err)
	assert.Contains(t, members, "bob@acme.io")
	assert.NotContains(t, members, "mallory@acme.io")

	followers := g.Lookup(Followers)
	members, err = followers.MembersFor(ctx, "alice@acme.io")
	require.NoError(t, err)
	assert.Empty(t, members)

	g.Remove(Friends, "alice@acme.io", "bob@acme.io")
	members, err = friends.MembersFor(ctx, "alice@acme.io")
	require.NoError(t, err)
	assert.Empty(t, members)

	assert.Equal(t, int64(2), friends.Calls())
	assert.Equal(t, int64(1), followers.Calls())
}
