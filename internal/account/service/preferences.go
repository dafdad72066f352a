package service

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"roster/internal/account/models"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/audit"
	"roster/pkg/requestcontext"
)

// ToggleRssPublication enables or disables the account's RSS feed and returns
// the resulting identifier, empty when disabled. Enabling an enabled feed
// keeps its identifier. A disabled identifier is released and never handed
// out again.
func (s *Service) ToggleRssPublication(ctx context.Context, email string, enable bool) (_ string, err error) {
	ctx, span := s.start(ctx, "ToggleRssPublication", attribute.Bool("rss.enable", enable))
	outcome := outcomeOK
	defer func(start time.Time) { s.finish(span, "toggle_rss", start, outcome, err) }(time.Now())

	account, err := s.findByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if account == nil {
		outcome = outcomeAbsent
		return "", nil
	}

	switch {
	case enable && account.RssEnabled():
		return account.RssID, nil
	case !enable && !account.RssEnabled():
		return "", nil
	case enable:
		id, err := s.rss.Mint(ctx, account.Username)
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to mint rss identifier")
		}
		account.RssID = id
	default:
		if err := s.rss.Release(ctx, account.RssID); err != nil {
			s.sinkFailed(ctx, "rss", "release", account, err)
		}
		account.RssID = ""
	}

	if err := s.persist(ctx, account); err != nil {
		return "", err
	}
	s.logAudit(ctx, audit.EventRssPublicationToggled,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
		"reason", strconv.FormatBool(enable),
	)
	return account.RssID, nil
}

// SetDigestSubscription turns a digest on or off. The membership is keyed by
// today's day of week, so a digest enabled on a Tuesday goes out on Tuesdays.
// The scheduler is updated before the flag is persisted; if it fails the
// flag is left unchanged.
func (s *Service) SetDigestSubscription(ctx context.Context, kind models.DigestKind, email string, enable bool) (_ *models.Account, err error) {
	ctx, span := s.start(ctx, "SetDigestSubscription",
		attribute.String("digest.kind", string(kind)),
		attribute.Bool("digest.enable", enable),
	)
	outcome := outcomeOK
	defer func(start time.Time) { s.finish(span, "set_digest", start, outcome, err) }(time.Now())

	if !kind.Valid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "unknown digest kind: "+string(kind))
	}
	account, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		outcome = outcomeAbsent
		return nil, nil
	}

	day := models.DigestDay(requestcontext.Now(ctx))
	span.SetAttributes(attribute.String("digest.day", day))
	if enable {
		err = s.digests.Subscribe(ctx, kind, account.Username, account.Domain, day)
	} else {
		err = s.digests.Unsubscribe(ctx, kind, account.Username, account.Domain, day)
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to update digest schedule")
	}

	switch kind {
	case models.DigestWeekly:
		account.WeeklyDigest = enable
	case models.DigestDaily:
		account.DailyDigest = enable
	}
	if err := s.persist(ctx, account); err != nil {
		return nil, err
	}
	s.logAudit(ctx, audit.EventDigestSubscriptionSet,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
		"reason", string(kind)+":"+strconv.FormatBool(enable)+":"+day,
	)
	return account, nil
}
