// Package reconcile repairs secondary stores from the account store. Sink
// updates run outside any transaction, so a failed index or counter write is
// only ever fixed by a later sweep.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"roster/internal/account/metrics"
	"roster/internal/account/models"
	"roster/pkg/platform/sentinel"
	"roster/pkg/requestcontext"
)

const (
	defaultBatchSize = 200
	defaultInterval  = 15 * time.Minute

	TriggerInterval = "interval"
	TriggerManual   = "manual"
)

// ErrSweepRunning is returned when a sweep is requested while one is active.
var ErrSweepRunning = errors.New("reconcile sweep already running")

type AccountLister interface {
	List(ctx context.Context, afterID string, limit int) ([]*models.Account, error)
}

type Indexer interface {
	Index(ctx context.Context, account *models.Account) error
}

// IndexPruner is an index that can enumerate its documents. Sweeps remove
// documents whose account no longer exists.
type IndexPruner interface {
	IndexedIDs(ctx context.Context) ([]string, error)
	RemoveID(ctx context.Context, accountID string) error
}

type AccountFinder interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
}

type CounterInitializer interface {
	InitStatusCounter(ctx context.Context, email string) error
	InitFollowerCounter(ctx context.Context, email string) error
	InitFriendCounter(ctx context.Context, email string) error
}

// Result summarises one sweep.
type Result struct {
	Trigger         string        `json:"trigger"`
	Visited         int           `json:"visited"`
	IndexFailures   int           `json:"index_failures"`
	CounterFailures int           `json:"counter_failures"`
	Pruned          int           `json:"pruned"`
	PruneFailures   int           `json:"prune_failures"`
	Duration        time.Duration `json:"duration"`
}

func (r Result) Failed() bool {
	return r.IndexFailures > 0 || r.CounterFailures > 0 || r.PruneFailures > 0
}

type Worker struct {
	accounts  AccountLister
	search    Indexer
	counters  CounterInitializer
	pruner    IndexPruner
	finder    AccountFinder
	batchSize int
	interval  time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer

	running sync.Mutex
	trigger chan struct{}
}

type Option func(*Worker)

func WithBatchSize(n int) Option {
	return func(w *Worker) {
		if n > 0 {
			w.batchSize = n
		}
	}
}

func WithInterval(d time.Duration) Option {
	return func(w *Worker) {
		if d > 0 {
			w.interval = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Worker) {
		w.metrics = m
	}
}

// WithPruner makes each sweep remove index documents for accounts that are
// gone. finder confirms the absence so accounts created mid-sweep are kept.
func WithPruner(index IndexPruner, finder AccountFinder) Option {
	return func(w *Worker) {
		if index != nil && finder != nil {
			w.pruner = index
			w.finder = finder
		}
	}
}

func New(accounts AccountLister, search Indexer, counters CounterInitializer, opts ...Option) (*Worker, error) {
	if accounts == nil || search == nil || counters == nil {
		return nil, errors.New("account lister, indexer and counter initializer are required")
	}
	w := &Worker{
		accounts:  accounts,
		search:    search,
		counters:  counters,
		batchSize: defaultBatchSize,
		interval:  defaultInterval,
		tracer:    otel.Tracer("roster/reconcile"),
		trigger:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run sweeps on every interval tick and whenever Trigger is called, until ctx
// is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if w.logger != nil {
		w.logger.InfoContext(ctx, "reconcile worker started", "interval", w.interval, "batch_size", w.batchSize)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.runLogged(ctx, TriggerInterval)
		case <-w.trigger:
			w.runLogged(ctx, TriggerManual)
		}
	}
}

// Trigger queues a sweep for Run. It reports false when one is already queued.
func (w *Worker) Trigger() bool {
	select {
	case w.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

func (w *Worker) runLogged(ctx context.Context, trigger string) {
	result, err := w.Sweep(ctx, trigger)
	if w.logger == nil {
		return
	}
	switch {
	case errors.Is(err, ErrSweepRunning):
		w.logger.InfoContext(ctx, "reconcile sweep skipped", "trigger", trigger)
	case err != nil:
		w.logger.ErrorContext(ctx, "reconcile sweep failed", "trigger", trigger, "visited", result.Visited, "error", err)
	default:
		w.logger.InfoContext(ctx, "reconcile sweep finished",
			"trigger", trigger,
			"visited", result.Visited,
			"index_failures", result.IndexFailures,
			"counter_failures", result.CounterFailures,
			"pruned", result.Pruned,
			"prune_failures", result.PruneFailures,
			"duration", result.Duration,
		)
	}
}

// Sweep re-indexes every account and re-runs counter initialisation, which
// leaves existing counts alone. With a pruner it then drops orphaned index
// documents. Per-account sink failures are counted and the sweep carries on;
// a store failure stops it.
func (w *Worker) Sweep(ctx context.Context, trigger string) (result Result, err error) {
	if !w.running.TryLock() {
		return Result{Trigger: trigger}, ErrSweepRunning
	}
	defer w.running.Unlock()

	ctx, span := w.tracer.Start(ctx, "reconcile.Sweep", trace.WithAttributes(attribute.String("reconcile.trigger", trigger)))
	start := time.Now()
	ctx = requestcontext.WithTime(ctx, start)
	result.Trigger = trigger
	defer func() {
		result.Duration = time.Since(start)
		span.SetAttributes(
			attribute.Int("reconcile.visited", result.Visited),
			attribute.Int("reconcile.index_failures", result.IndexFailures),
			attribute.Int("reconcile.counter_failures", result.CounterFailures),
			attribute.Int("reconcile.pruned", result.Pruned),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if w.metrics != nil {
			outcome := err
			if outcome == nil && result.Failed() {
				outcome = errors.New("sink failures")
			}
			w.metrics.ObserveReconcile(trigger, result.Visited, outcome, time.Now())
		}
	}()

	var visited map[string]struct{}
	if w.pruner != nil {
		visited = make(map[string]struct{})
	}
	afterID := ""
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		page, err := w.accounts.List(ctx, afterID, w.batchSize)
		if err != nil {
			return result, fmt.Errorf("list accounts after %q: %w", afterID, err)
		}
		for _, account := range page {
			w.repair(ctx, account, &result)
			if visited != nil {
				visited[account.ID] = struct{}{}
			}
		}
		if len(page) < w.batchSize {
			break
		}
		afterID = page[len(page)-1].ID
	}
	if w.pruner == nil {
		return result, nil
	}
	return result, w.prune(ctx, visited, &result)
}

func (w *Worker) prune(ctx context.Context, visited map[string]struct{}, result *Result) error {
	ids, err := w.pruner.IndexedIDs(ctx)
	if err != nil {
		return fmt.Errorf("list indexed accounts: %w", err)
	}
	for _, id := range ids {
		if _, ok := visited[id]; ok {
			continue
		}
		account, err := w.finder.FindByID(ctx, id)
		switch {
		case errors.Is(err, sentinel.ErrNotFound) || (err == nil && account == nil):
			if err := w.pruner.RemoveID(ctx, id); err != nil {
				result.PruneFailures++
				w.warn(ctx, "index", &models.Account{ID: id}, err)
				continue
			}
			result.Pruned++
		case err != nil:
			result.PruneFailures++
			w.warn(ctx, "index", &models.Account{ID: id}, err)
		}
	}
	return nil
}

func (w *Worker) repair(ctx context.Context, account *models.Account, result *Result) {
	result.Visited++
	if err := w.search.Index(ctx, account); err != nil {
		result.IndexFailures++
		w.warn(ctx, "index", account, err)
	}
	if err := errors.Join(
		w.counters.InitStatusCounter(ctx, account.Email),
		w.counters.InitFollowerCounter(ctx, account.Email),
		w.counters.InitFriendCounter(ctx, account.Email),
	); err != nil {
		result.CounterFailures++
		w.warn(ctx, "counter", account, err)
	}
}

func (w *Worker) warn(ctx context.Context, sink string, account *models.Account, err error) {
	if w.metrics != nil {
		w.metrics.IncrementSinkFailure(sink, "reconcile")
	}
	if w.logger != nil {
		w.logger.WarnContext(ctx, "reconcile could not repair account", "sink", sink, "account_id", account.ID, "error", err)
	}
}
