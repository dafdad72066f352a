package search

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"roster/internal/account/models"
	"roster/pkg/platform/circuit"
	"roster/pkg/requestcontext"
)

func testAccount() *models.Account {
	return &models.Account{
		ID:        "acc-1",
		Email:     "alice@acme.io",
		Username:  "alice",
		Domain:    "acme.io",
		FirstName: "Alice",
		Activated: true,
	}
}

func TestInMemory_IndexReplacesByID(t *testing.T) {
	ctx := context.Background()
	idx := NewInMemory(WithOperationLog(8))
	a := testAccount()

	require.NoError(t, idx.Index(ctx, a))
	assert.Len(t, idx.FindByEmail("alice@acme.io"), 1)

	require.NoError(t, idx.Remove(ctx, a))
	a.Email = "alice@other.io"
	a.Domain = "other.io"
	require.NoError(t, idx.Index(ctx, a))

	assert.Equal(t, 1, idx.Len())
	assert.Empty(t, idx.FindByEmail("alice@acme.io"))
	assert.Empty(t, idx.FindByDomain("acme.io"))
	require.Len(t, idx.FindByDomain("other.io"), 1)

	log := idx.Log()
	require.Len(t, log, 3)
	assert.Equal(t, []Op{OpIndex, OpRemove, OpIndex}, []Op{log[0].Op, log[1].Op, log[2].Op})
}

func TestInMemory_OperationLog(t *testing.T) {
	ctx := context.Background()
	a := testAccount()

	t.Run("off by default", func(t *testing.T) {
		idx := NewInMemory()
		require.NoError(t, idx.Index(ctx, a))
		assert.Empty(t, idx.Log())
		assert.Equal(t, 1, idx.Len())
	})

	t.Run("keeps only the most recent operations", func(t *testing.T) {
		idx := NewInMemory(WithOperationLog(2))
		require.NoError(t, idx.Index(ctx, a))
		require.NoError(t, idx.Remove(ctx, a))
		require.NoError(t, idx.RemoveID(ctx, "acc-9"))

		log := idx.Log()
		require.Len(t, log, 2)
		assert.Equal(t, Document{Op: OpRemove, AccountID: a.ID, IndexedAt: log[0].IndexedAt}, log[0])
		assert.Equal(t, "acc-9", log[1].AccountID)
	})
}

func TestInMemory_IndexedIDs(t *testing.T) {
	ctx := context.Background()
	idx := NewInMemory()
	for _, id := range []string{"acc-3", "acc-1", "acc-2"} {
		a := testAccount()
		a.ID = id
		require.NoError(t, idx.Index(ctx, a))
	}
	require.NoError(t, idx.RemoveID(ctx, "acc-2"))

	ids, err := idx.IndexedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"acc-1", "acc-3"}, ids)
}

type fakeProducer struct {
	mu      sync.Mutex
	records []*kgo.Record
	err     error
}

func (f *fakeProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	f.mu.Lock()
	defer f.mu.Unlock()
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		if f.err == nil {
			f.records = append(f.records, r)
		}
		results = append(results, kgo.ProduceResult{Record: r, Err: f.err})
	}
	return results
}

func TestKafkaSink_Records(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)
	producer := &fakeProducer{}
	sink := NewKafkaSink(producer, "account-index")
	a := testAccount()

	require.NoError(t, sink.Index(ctx, a))
	require.NoError(t, sink.Remove(ctx, a))
	require.Len(t, producer.records, 2)

	indexRec := producer.records[0]
	assert.Equal(t, "account-index", indexRec.Topic)
	assert.Equal(t, "acc-1", string(indexRec.Key))

	var doc Document
	require.NoError(t, json.Unmarshal(indexRec.Value, &doc))
	assert.Equal(t, OpIndex, doc.Op)
	assert.Equal(t, "alice@acme.io", doc.Email)
	assert.Equal(t, now, doc.IndexedAt)

	removeRec := producer.records[1]
	assert.Equal(t, "acc-1", string(removeRec.Key), "same key as the index record")
	assert.Nil(t, removeRec.Value, "remove is a tombstone")

	decoded, err := DecodeRecord(removeRec)
	require.NoError(t, err)
	assert.Equal(t, OpRemove, decoded.Op)
	assert.Equal(t, "acc-1", decoded.AccountID)

	decoded, err = DecodeRecord(indexRec)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestKafkaSink_ProduceError(t *testing.T) {
	producer := &fakeProducer{err: kgo.ErrRecordTimeout}
	sink := NewKafkaSink(producer, "account-index")

	err := sink.Index(context.Background(), testAccount())
	require.Error(t, err)
	assert.ErrorIs(t, err, kgo.ErrRecordTimeout)
	assert.ErrorContains(t, err, "acc-1")
}

type flakySink struct {
	err error
}

func (f *flakySink) Index(context.Context, *models.Account) error  { return f.err }
func (f *flakySink) Remove(context.Context, *models.Account) error { return f.err }

func TestGuarded_TracksHealth(t *testing.T) {
	ctx := context.Background()
	inner := &flakySink{err: errors.New("broker down")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	g := NewGuarded(inner, circuit.New("search", circuit.WithFailureThreshold(2), circuit.WithSuccessThreshold(1)), logger)

	assert.Error(t, g.Index(ctx, testAccount()))
	assert.False(t, g.Degraded())
	assert.Error(t, g.Remove(ctx, testAccount()))
	assert.True(t, g.Degraded(), "opens after the threshold")

	inner.err = nil
	assert.NoError(t, g.Index(ctx, testAccount()))
	assert.False(t, g.Degraded(), "closes after a success")
}
