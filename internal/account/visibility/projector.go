// Package visibility builds caller-relative views of accounts. It never
// mutates state.
package visibility

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"roster/internal/account/models"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/email"
)

// RelationshipLookup returns the set of emails in one of email's relationship
// sets.
type RelationshipLookup interface {
	MembersFor(ctx context.Context, email string) (map[string]struct{}, error)
}

// CountReader reads the live counters of an account.
type CountReader interface {
	Read(ctx context.Context, email string) (models.Counters, error)
}

type Projector struct {
	friends   RelationshipLookup
	followers RelationshipLookup
	blocked   RelationshipLookup
	counts    CountReader
	logger    *slog.Logger
}

type Option func(*Projector)

// WithCounts fills view counters from r instead of the stored account.
func WithCounts(r CountReader) Option {
	return func(p *Projector) {
		p.counts = r
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Projector) {
		p.logger = logger
	}
}

func New(friends, followers, blocked RelationshipLookup, opts ...Option) (*Projector, error) {
	if friends == nil || followers == nil || blocked == nil {
		return nil, errors.New("friends, followers and blocked lookups are required")
	}
	p := &Projector{friends: friends, followers: followers, blocked: blocked}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// relations are the caller's three sets.
type relations struct {
	friends   map[string]struct{}
	followers map[string]struct{}
	blocked   map[string]struct{}
}

// Project returns account as seen by callerEmail. Self projections issue no
// relationship lookups.
func (p *Projector) Project(ctx context.Context, account *models.Account, callerEmail string) (*models.View, error) {
	if account == nil {
		return nil, nil
	}
	callerEmail = email.Normalize(callerEmail)
	var rel *relations
	if account.Email != callerEmail {
		fetched, err := p.relationsFor(ctx, callerEmail)
		if err != nil {
			return nil, err
		}
		rel = fetched
	}
	return p.view(ctx, account, callerEmail, rel), nil
}

// ProjectAll projects a list of accounts for one caller. Each relationship
// set is fetched at most once, and not at all when every account is the
// caller's own.
func (p *Projector) ProjectAll(ctx context.Context, accounts []*models.Account, callerEmail string) ([]*models.View, error) {
	callerEmail = email.Normalize(callerEmail)
	var rel *relations
	views := make([]*models.View, 0, len(accounts))
	for _, account := range accounts {
		if account == nil {
			continue
		}
		if account.Email != callerEmail && rel == nil {
			fetched, err := p.relationsFor(ctx, callerEmail)
			if err != nil {
				return nil, err
			}
			rel = fetched
		}
		views = append(views, p.view(ctx, account, callerEmail, rel))
	}
	return views, nil
}

func (p *Projector) view(ctx context.Context, account *models.Account, callerEmail string, rel *relations) *models.View {
	v := models.NewView(account)
	if p.counts != nil {
		counts, err := p.counts.Read(ctx, account.Email)
		if err != nil {
			if p.logger != nil {
				p.logger.WarnContext(ctx, "counter read failed", "account_id", account.ID, "error", err)
			}
		} else {
			v.Counters = counts
		}
	}
	if account.Email == callerEmail {
		v.IsSelf = true
		return v
	}
	_, v.IsFriend = rel.friends[account.Email]
	_, v.IsFollower = rel.followers[account.Email]
	_, v.IsBlocked = rel.blocked[account.Email]
	return v
}

// relationsFor fetches the caller's three sets in parallel.
func (p *Projector) relationsFor(ctx context.Context, callerEmail string) (*relations, error) {
	rel := &relations{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		set, err := p.friends.MembersFor(ctx, callerEmail)
		rel.friends = set
		return err
	})
	g.Go(func() error {
		set, err := p.followers.MembersFor(ctx, callerEmail)
		rel.followers = set
		return err
	})
	g.Go(func() error {
		set, err := p.blocked.MembersFor(ctx, callerEmail)
		rel.blocked = set
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to load relationships")
	}
	return rel, nil
}
