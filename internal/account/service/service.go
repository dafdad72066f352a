package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks AccountStore,SearchSink,CounterSink,DigestScheduler,RssRegistry,PasswordEncoder,TokenIssuer,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"roster/internal/account/metrics"
	"roster/internal/account/models"
	"roster/pkg/attrs"
	pemail "roster/pkg/email"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/audit"
	"roster/pkg/platform/sentinel"
	"roster/pkg/requestcontext"
)

type AccountStore interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByActivationToken(ctx context.Context, token string) (*models.Account, error)
	FindByResetToken(ctx context.Context, token string) (*models.Account, error)
	Save(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, account *models.Account) error
}

type SearchSink interface {
	Index(ctx context.Context, account *models.Account) error
	Remove(ctx context.Context, account *models.Account) error
}

// CounterSink initialisers are idempotent: an existing counter keeps its value.
type CounterSink interface {
	InitStatusCounter(ctx context.Context, email string) error
	InitFollowerCounter(ctx context.Context, email string) error
	InitFriendCounter(ctx context.Context, email string) error
}

type DigestScheduler interface {
	Subscribe(ctx context.Context, kind models.DigestKind, username, domain, day string) error
	Unsubscribe(ctx context.Context, kind models.DigestKind, username, domain, day string) error
}

type RssRegistry interface {
	Mint(ctx context.Context, username string) (string, error)
	Release(ctx context.Context, id string) error
}

type PasswordEncoder interface {
	Encode(plaintext string) (string, error)
}

type TokenIssuer interface {
	NewActivationToken() string
	NewResetToken() string
	NewPassword() string
}

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

// Sinks groups the secondary stores kept in step with the account store.
type Sinks struct {
	Search   SearchSink
	Counters CounterSink
	Digests  DigestScheduler
	Rss      RssRegistry
}

// Service is the only writer of account state. Every operation writes the
// account store first and then updates the sinks outside any transaction;
// sink failures are logged and counted rather than returned, except where an
// operation says otherwise.
type Service struct {
	accounts       AccountStore
	search         SearchSink
	counters       CounterSink
	digests        DigestScheduler
	rss            RssRegistry
	encoder        PasswordEncoder
	tokens         TokenIssuer
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service. Every collaborator is required.
func New(accounts AccountStore, encoder PasswordEncoder, tokens TokenIssuer, sinks Sinks, opts ...Option) (*Service, error) {
	switch {
	case accounts == nil:
		return nil, errors.New("account store is required")
	case encoder == nil:
		return nil, errors.New("password encoder is required")
	case tokens == nil:
		return nil, errors.New("token issuer is required")
	case sinks.Search == nil:
		return nil, errors.New("search sink is required")
	case sinks.Counters == nil:
		return nil, errors.New("counter sink is required")
	case sinks.Digests == nil:
		return nil, errors.New("digest scheduler is required")
	case sinks.Rss == nil:
		return nil, errors.New("rss registry is required")
	}

	s := &Service{
		accounts: accounts,
		search:   sinks.Search,
		counters: sinks.Counters,
		digests:  sinks.Digests,
		rss:      sinks.Rss,
		encoder:  encoder,
		tokens:   tokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("roster/account")
	}
	return s, nil
}

const (
	outcomeOK     = "ok"
	outcomeAbsent = "absent"
	outcomeError  = "error"
)

func (s *Service) start(ctx context.Context, op string, kv ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "account."+op, trace.WithAttributes(kv...))
}

// finish ends the span and records the outcome. err wins over outcome.
func (s *Service) finish(span trace.Span, op string, start time.Time, outcome string, err error) {
	if err != nil {
		outcome = outcomeError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("account.outcome", outcome))
	span.End()
	if s.metrics != nil {
		s.metrics.ObserveOperation(op, outcome, start)
	}
}

// find collapses not-found into an absent result.
func (s *Service) find(ctx context.Context, lookup func(context.Context, string) (*models.Account, error), key string) (*models.Account, error) {
	if key == "" {
		return nil, nil
	}
	account, err := lookup(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load account")
	}
	return account, nil
}

// findByEmail looks an account up by address, normalised the way the stored
// email was on create.
func (s *Service) findByEmail(ctx context.Context, email string) (*models.Account, error) {
	return s.find(ctx, s.accounts.FindByEmail, pemail.Normalize(email))
}

// persist stamps UpdatedAt and saves. Constraint violations are logged and
// returned as conflicts with the store's error kept in the chain.
func (s *Service) persist(ctx context.Context, account *models.Account) error {
	account.UpdatedAt = requestcontext.Now(ctx)
	err := s.accounts.Save(ctx, account)
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel.ErrConflict) {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "account constraint violated",
				"account_id", account.ID,
				"email", account.Email,
				"error", err,
			)
		}
		s.logAudit(ctx, audit.EventConstraintViolated,
			"account_id", account.ID,
			"email", account.Email,
			"domain", account.Domain,
			"reason", err.Error(),
		)
		return dErrors.Wrap(err, dErrors.CodeConflict, "account violates a uniqueness constraint")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save account")
}

// sinkFailed records a secondary store update that did not land. The account
// store already holds the change; the reconcile sweep repairs the sink.
func (s *Service) sinkFailed(ctx context.Context, sink, op string, account *models.Account, err error) {
	trace.SpanFromContext(ctx).RecordError(err, trace.WithAttributes(attribute.String("sink", sink)))
	if s.logger != nil {
		s.logger.ErrorContext(ctx, "secondary store update failed",
			"sink", sink,
			"op", op,
			"account_id", account.ID,
			"error", err,
		)
	}
	if s.metrics != nil {
		s.metrics.IncrementSinkFailure(sink, op)
	}
}

func (s *Service) index(ctx context.Context, account *models.Account) {
	if err := s.search.Index(ctx, account); err != nil {
		s.sinkFailed(ctx, "search", "index", account, err)
	}
}

func (s *Service) unindex(ctx context.Context, account *models.Account) {
	if err := s.search.Remove(ctx, account); err != nil {
		s.sinkFailed(ctx, "search", "remove", account, err)
	}
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", string(event), "log_type", "audit")
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(event), args...)
	}
	if s.auditPublisher == nil {
		return
	}
	_ = s.auditPublisher.Emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		AccountID: attrs.ExtractString(attributes, "account_id"),
		Email:     attrs.ExtractString(attributes, "email"),
		Domain:    attrs.ExtractString(attributes, "domain"),
		Action:    string(event),
		Reason:    attrs.ExtractString(attributes, "reason"),
		RequestID: attrs.ExtractString(attributes, "request_id"),
		ActorID:   requestcontext.Actor(ctx),
	})
}
