package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	accountmetrics "roster/internal/account/metrics"
	"roster/internal/account/password"
	"roster/internal/account/reconcile"
	"roster/internal/account/service"
	accountstore "roster/internal/account/store"
	"roster/internal/account/token"
	"roster/internal/account/visibility"
	"roster/internal/platform/config"
	"roster/internal/platform/kafka"
	"roster/internal/platform/postgres"
	"roster/internal/platform/redis"
	"roster/internal/sinks/counter"
	"roster/internal/sinks/digest"
	"roster/internal/sinks/relationship"
	"roster/internal/sinks/rss"
	"roster/internal/sinks/search"
	tenantmetrics "roster/internal/tenant/metrics"
	"roster/internal/tenant/quota"
	quotastore "roster/internal/tenant/store/quota"
	httptransport "roster/internal/transport/http"
	"roster/pkg/platform/audit"
	auditpublisher "roster/pkg/platform/audit/publisher"
	auditmemory "roster/pkg/platform/audit/store/memory"
	auditpostgres "roster/pkg/platform/audit/store/postgres"
	"roster/pkg/platform/circuit"
)

const auditBuffer = 256

type accountStore interface {
	service.AccountStore
	reconcile.AccountLister
}

type counterStore interface {
	service.CounterSink
	visibility.CountReader
}

// app holds the assembled account core. Every field is built at startup so
// that a bad backend or option fails the process before it serves traffic.
type app struct {
	backend    string
	accounts   *service.Service
	projector  *visibility.Projector
	reconciler *reconcile.Worker
	quotas     *quota.Service
	checks     []httptransport.Check
	closers    []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// build connects every configured backend. Missing DATABASE_URL, REDIS_URL or
// KAFKA_BROKERS select the in-memory implementation for that concern.
func build(ctx context.Context, cfg config.Config, log *slog.Logger) (_ *app, err error) {
	// Quota options are validated before anything is dialled.
	quotaOpts, err := quota.Load(cfg.Quota)
	if err != nil {
		return nil, fmt.Errorf("quota configuration: %w", err)
	}

	a := &app{backend: "memory"}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	var (
		accounts    accountStore = accountstore.NewInMemory()
		tenants     quota.Store  = quotastore.NewInMemory()
		auditEvents audit.Store  = auditmemory.NewInMemoryStore()
	)
	if cfg.Database.URL != "" {
		db, err := openDatabase(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = db.Close() })
		a.checks = append(a.checks, httptransport.Check{Name: "postgres", Probe: db.PingContext})
		a.backend = cfg.Database.Driver
		accounts = accountstore.NewPostgres(db)
		tenants = quotastore.NewPostgres(db)
		auditEvents = auditpostgres.New(db)
	}

	tokens := token.New()
	var (
		counters  counterStore            = counter.NewInMemory()
		digests   service.DigestScheduler = digest.NewInMemory()
		feeds     service.RssRegistry     = rss.NewInMemory(tokens)
		friends   visibility.RelationshipLookup
		followers visibility.RelationshipLookup
		blocked   visibility.RelationshipLookup
	)
	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rc != nil {
		a.closers = append(a.closers, func() { _ = rc.Close() })
		a.checks = append(a.checks, httptransport.Check{Name: "redis", Probe: rc.Health})
		counters = counter.NewRedis(rc.Client)
		digests = digest.NewRedis(rc.Client)
		feeds = rss.NewRedis(rc.Client, tokens)
		friends = relationship.NewRedisLookup(rc.Client, relationship.Friends)
		followers = relationship.NewRedisLookup(rc.Client, relationship.Followers)
		blocked = relationship.NewRedisLookup(rc.Client, relationship.Blocked)
	} else {
		graph := relationship.NewGraph()
		friends = graph.Lookup(relationship.Friends)
		followers = graph.Lookup(relationship.Followers)
		blocked = graph.Lookup(relationship.Blocked)
	}

	index, err := searchSink(ctx, cfg.Kafka, log, a)
	if err != nil {
		return nil, err
	}

	publisher := auditpublisher.NewPublisher(auditEvents,
		auditpublisher.WithAsyncBuffer(auditBuffer),
		auditpublisher.WithLogger(log),
	)
	a.closers = append(a.closers, publisher.Close)

	m := accountmetrics.New()
	a.accounts, err = service.New(accounts, password.NewEncoder(), tokens,
		service.Sinks{Search: index, Counters: counters, Digests: digests, Rss: feeds},
		service.WithLogger(log),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(m),
	)
	if err != nil {
		return nil, err
	}
	a.projector, err = visibility.New(friends, followers, blocked,
		visibility.WithCounts(counters),
		visibility.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	reconcileOpts := []reconcile.Option{
		reconcile.WithBatchSize(cfg.Reconcile.BatchSize),
		reconcile.WithInterval(cfg.Reconcile.Interval),
		reconcile.WithLogger(log),
		reconcile.WithMetrics(m),
	}
	// The Kafka index cannot be enumerated; its orphans need a tombstone.
	if mem, ok := index.(*search.InMemory); ok {
		reconcileOpts = append(reconcileOpts, reconcile.WithPruner(mem, accounts))
	}
	a.reconciler, err = reconcile.New(accounts, index, counters, reconcileOpts...)
	if err != nil {
		return nil, err
	}
	a.quotas = quota.NewService(tenants, quotaOpts,
		quota.WithLogger(log),
		quota.WithMetrics(tenantmetrics.New()),
	)
	return a, nil
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := postgres.Open(ctx, postgres.Config{
		Driver:       cfg.Driver,
		URL:          cfg.URL,
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	})
	if err != nil {
		return nil, err
	}
	if err := postgres.ApplySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// searchSink returns the Kafka-backed index when brokers are configured and
// registers its readiness check on a.
func searchSink(ctx context.Context, cfg config.KafkaConfig, log *slog.Logger, a *app) (search.Sink, error) {
	client, err := kafka.New(cfg)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return search.NewInMemory(), nil
	}
	a.closers = append(a.closers, client.Close)

	if err := kafka.EnsureTopic(ctx, client, cfg.IndexTopic, cfg.Partitions, cfg.Replicas, log); err != nil {
		return nil, err
	}
	guarded := search.NewGuarded(search.NewKafkaSink(client, cfg.IndexTopic), circuit.New("search"), log)
	a.checks = append(a.checks,
		httptransport.Check{Name: "kafka", Probe: func(ctx context.Context) error { return kafka.Health(ctx, client) }},
		httptransport.Check{Name: "search", Probe: func(context.Context) error {
			if guarded.Degraded() {
				return errors.New("search index writes are failing")
			}
			return nil
		}},
	)
	return guarded, nil
}
