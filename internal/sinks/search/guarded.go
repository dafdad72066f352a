package search

import (
	"context"
	"log/slog"

	"roster/internal/account/models"
	"roster/pkg/platform/circuit"
)

// Sink is the index contract the guard decorates.
type Sink interface {
	Index(ctx context.Context, a *models.Account) error
	Remove(ctx context.Context, a *models.Account) error
}

// Guarded tracks the health of the wrapped sink with a circuit breaker. Every
// call still reaches the sink; the breaker only decides when to log the
// transition and what /readyz reports.
type Guarded struct {
	sink    Sink
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewGuarded(sink Sink, breaker *circuit.Breaker, logger *slog.Logger) *Guarded {
	return &Guarded{sink: sink, breaker: breaker, logger: logger}
}

func (g *Guarded) Index(ctx context.Context, a *models.Account) error {
	return g.record(ctx, g.sink.Index(ctx, a))
}

func (g *Guarded) Remove(ctx context.Context, a *models.Account) error {
	return g.record(ctx, g.sink.Remove(ctx, a))
}

// Degraded reports whether recent calls have been failing.
func (g *Guarded) Degraded() bool {
	return g.breaker.IsOpen()
}

func (g *Guarded) record(ctx context.Context, err error) error {
	if err != nil {
		if _, change := g.breaker.RecordFailure(); change.Opened && g.logger != nil {
			g.logger.WarnContext(ctx, "search index degraded", "breaker", g.breaker.Name(), "error", err)
		}
		return err
	}
	if _, change := g.breaker.RecordSuccess(); change.Closed && g.logger != nil {
		g.logger.InfoContext(ctx, "search index recovered", "breaker", g.breaker.Name())
	}
	return nil
}
