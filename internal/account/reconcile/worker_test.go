package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"roster/internal/account/models"
	"roster/internal/account/store"
	"roster/internal/sinks/counter"
	"roster/internal/sinks/search"
	"roster/pkg/platform/sentinel"
)

type WorkerSuite struct {
	suite.Suite
	accounts *store.InMemory
	search   *search.InMemory
	counters *counter.InMemory
	ctx      context.Context
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerSuite))
}

func (s *WorkerSuite) SetupTest() {
	s.accounts = store.NewInMemory()
	s.search = search.NewInMemory()
	s.counters = counter.NewInMemory()
	s.ctx = context.Background()
	for i := 1; i <= 5; i++ {
		s.Require().NoError(s.accounts.Save(s.ctx, &models.Account{
			ID:     fmt.Sprintf("acc-%d", i),
			Email:  fmt.Sprintf("user%d@acme.io", i),
			Domain: "acme.io",
		}))
	}
}

func (s *WorkerSuite) TestSweepRepairsEverySink() {
	s.Require().NoError(s.counters.Increment(s.ctx, "user1@acme.io", counter.FieldStatuses, 7))

	w, err := New(s.accounts, s.search, s.counters, WithBatchSize(2))
	s.Require().NoError(err)

	result, err := w.Sweep(s.ctx, TriggerManual)
	s.Require().NoError(err)
	s.Equal(5, result.Visited)
	s.False(result.Failed())
	s.Equal(5, s.search.Len())
	for i := 1; i <= 5; i++ {
		email := fmt.Sprintf("user%d@acme.io", i)
		s.True(s.counters.Has(email, counter.FieldFriends), email)
	}

	counts, err := s.counters.Read(s.ctx, "user1@acme.io")
	s.Require().NoError(err)
	s.Equal(int64(7), counts.Statuses, "existing counts survive")

	s.Run("a second sweep converges to the same index", func() {
		_, err := w.Sweep(s.ctx, TriggerManual)
		s.Require().NoError(err)
		s.Equal(5, s.search.Len())
	})
}

func (s *WorkerSuite) TestSweepPrunesOrphanedDocuments() {
	gone := &models.Account{ID: "acc-0", Email: "gone@acme.io", Domain: "acme.io"}
	s.Require().NoError(s.search.Index(s.ctx, gone))

	w, err := New(s.accounts, s.search, s.counters, WithBatchSize(2), WithPruner(s.search, s.accounts))
	s.Require().NoError(err)

	result, err := w.Sweep(s.ctx, TriggerManual)
	s.Require().NoError(err)
	s.Equal(5, result.Visited)
	s.Equal(1, result.Pruned)
	s.False(result.Failed())
	s.Equal(5, s.search.Len())
	_, found := s.search.Get("acc-0")
	s.False(found)
	s.Empty(s.search.FindByEmail("gone@acme.io"))

	s.Run("orphans survive without a pruner", func() {
		s.Require().NoError(s.search.Index(s.ctx, gone))
		plain, err := New(s.accounts, s.search, s.counters)
		s.Require().NoError(err)
		result, err := plain.Sweep(s.ctx, TriggerManual)
		s.Require().NoError(err)
		s.Zero(result.Pruned)
		s.Equal(6, s.search.Len())
	})
}

// lateFinder reports an account that the listing missed, as when it is
// created after its page was read.
type lateFinder struct {
	late string
	err  error
}

func (f lateFinder) FindByID(_ context.Context, id string) (*models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	if id == f.late {
		return &models.Account{ID: id}, nil
	}
	return nil, fmt.Errorf("find %s: %w", id, sentinel.ErrNotFound)
}

func (s *WorkerSuite) TestPruneKeepsAccountsCreatedDuringSweep() {
	s.Require().NoError(s.search.Index(s.ctx, &models.Account{ID: "acc-new", Email: "new@acme.io"}))

	w, err := New(s.accounts, s.search, s.counters, WithPruner(s.search, lateFinder{late: "acc-new"}))
	s.Require().NoError(err)

	result, err := w.Sweep(s.ctx, TriggerManual)
	s.Require().NoError(err)
	s.Zero(result.Pruned)
	_, found := s.search.Get("acc-new")
	s.True(found)
}

func (s *WorkerSuite) TestPruneCountsLookupFailures() {
	s.Require().NoError(s.search.Index(s.ctx, &models.Account{ID: "acc-0", Email: "gone@acme.io"}))

	w, err := New(s.accounts, s.search, s.counters, WithPruner(s.search, lateFinder{err: errors.New("timeout")}))
	s.Require().NoError(err)

	result, err := w.Sweep(s.ctx, TriggerManual)
	s.Require().NoError(err)
	s.Equal(1, result.PruneFailures)
	s.True(result.Failed())
	_, found := s.search.Get("acc-0")
	s.True(found, "a document is only removed once its account is known to be gone")
}

type flakyIndexer struct {
	calls atomic.Int64
	inner Indexer
}

func (f *flakyIndexer) Index(ctx context.Context, a *models.Account) error {
	if f.calls.Add(1)%2 == 0 {
		return errors.New("broker down")
	}
	return f.inner.Index(ctx, a)
}

func (s *WorkerSuite) TestSweepCarriesOnAfterSinkFailures() {
	w, err := New(s.accounts, &flakyIndexer{inner: s.search}, s.counters, WithBatchSize(10))
	s.Require().NoError(err)

	result, err := w.Sweep(s.ctx, TriggerInterval)
	s.Require().NoError(err)
	s.Equal(5, result.Visited)
	s.Equal(2, result.IndexFailures)
	s.True(result.Failed())
	s.Equal(3, s.search.Len())
}

type brokenLister struct{}

func (brokenLister) List(context.Context, string, int) ([]*models.Account, error) {
	return nil, errors.New("connection refused")
}

func (s *WorkerSuite) TestSweepStopsOnStoreFailure() {
	w, err := New(brokenLister{}, s.search, s.counters)
	s.Require().NoError(err)

	_, err = w.Sweep(s.ctx, TriggerManual)
	s.ErrorContains(err, "connection refused")
}

func (s *WorkerSuite) TestConcurrentSweepIsRejected() {
	w, err := New(s.accounts, s.search, s.counters)
	s.Require().NoError(err)

	w.running.Lock()
	_, err = w.Sweep(s.ctx, TriggerManual)
	w.running.Unlock()
	s.ErrorIs(err, ErrSweepRunning)
}

func (s *WorkerSuite) TestRunSweepsOnTrigger() {
	w, err := New(s.accounts, s.search, s.counters, WithInterval(time.Hour))
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	s.True(w.Trigger())
	s.Eventually(func() bool { return s.search.Len() == 5 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.Fail("worker did not stop")
	}
}

func TestTrigger_Coalesces(t *testing.T) {
	w, err := New(store.NewInMemory(), search.NewInMemory(), counter.NewInMemory())
	require.NoError(t, err)

	assert.True(t, w.Trigger())
	assert.False(t, w.Trigger(), "one pending trigger is enough")
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(nil, search.NewInMemory(), counter.NewInMemory())
	assert.Error(t, err)
}
