package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "roster/pkg/platform/audit"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	at := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, audit.Event{AccountID: "acc-1", Action: "account_created", Timestamp: at}))
	require.NoError(t, store.Append(ctx, audit.Event{AccountID: "acc-2", Action: "account_created", Timestamp: at}))
	require.NoError(t, store.Append(ctx, audit.Event{AccountID: "acc-1", Action: "account_deleted", Timestamp: at.Add(time.Minute)}))

	events, err := store.ListByAccount(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "account_created", events[0].Action)
	assert.Equal(t, "account_deleted", events[1].Action)

	events[0].Action = "mutated"
	again, err := store.ListByAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "account_created", again[0].Action, "callers get a copy")

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := store.ListByAccount(ctx, "acc-9")
	require.NoError(t, err)
	assert.Empty(t, none)
}
