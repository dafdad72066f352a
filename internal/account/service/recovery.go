package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"roster/internal/account/models"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/audit"
	"roster/pkg/requestcontext"
)

// Activate redeems an activation token. Unknown and already used tokens
// return nil, nil.
func (s *Service) Activate(ctx context.Context, token string) (_ *models.Account, err error) {
	ctx, span := s.start(ctx, "Activate")
	outcome := outcomeOK
	defer func(start time.Time) { s.finish(span, "activate", start, outcome, err) }(time.Now())

	account, err := s.find(ctx, s.accounts.FindByActivationToken, token)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsPendingActivation() {
		outcome = outcomeAbsent
		return nil, nil
	}

	account.ActivationToken = ""
	account.Activated = true
	if err := s.persist(ctx, account); err != nil {
		return nil, err
	}
	s.logAudit(ctx, audit.EventAccountActivated,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
	)
	return account, nil
}

// RequestPasswordReset opens a recovery window for an active account. Unknown
// and not yet activated accounts return nil, nil and are left untouched.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (_ *models.Account, err error) {
	ctx, span := s.start(ctx, "RequestPasswordReset")
	outcome := outcomeOK
	defer func(start time.Time) { s.finish(span, "request_reset", start, outcome, err) }(time.Now())

	account, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.Activated {
		outcome = outcomeAbsent
		return nil, nil
	}

	now := requestcontext.Now(ctx)
	account.ResetToken = s.tokens.NewResetToken()
	account.ResetIssuedAt = &now
	if err := s.persist(ctx, account); err != nil {
		return nil, err
	}
	s.logAudit(ctx, audit.EventPasswordResetRequested,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
	)
	return account, nil
}

// CompleteReset sets a new password through an open recovery window. A token
// that is unknown and one issued more than models.ResetWindow ago both return
// nil, nil; only the logs and metrics tell them apart.
func (s *Service) CompleteReset(ctx context.Context, newPassword, token string) (_ *models.Account, err error) {
	ctx, span := s.start(ctx, "CompleteReset")
	outcome := outcomeOK
	defer func(start time.Time) { s.finish(span, "complete_reset", start, outcome, err) }(time.Now())

	account, err := s.find(ctx, s.accounts.FindByResetToken, token)
	if err != nil {
		return nil, err
	}
	if account == nil {
		outcome = outcomeAbsent
		return nil, nil
	}
	if now := requestcontext.Now(ctx); !account.ResetUsable(now) {
		outcome = "expired"
		span.AddEvent("reset token expired", trace.WithAttributes(attribute.String("account.id", account.ID)))
		if s.logger != nil {
			s.logger.InfoContext(ctx, "reset token expired",
				"account_id", account.ID,
				"issued_at", account.ResetIssuedAt,
			)
		}
		return nil, nil
	}

	hash, err := s.encoder.Encode(newPassword)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode password")
	}
	account.PasswordHash = hash
	account.ResetToken = ""
	account.ResetIssuedAt = nil
	if err := s.persist(ctx, account); err != nil {
		return nil, err
	}
	s.logAudit(ctx, audit.EventPasswordResetCompleted,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
	)
	return account, nil
}

// ChangePassword encodes and stores a new password. Unknown accounts return
// nil, nil.
func (s *Service) ChangePassword(ctx context.Context, email, newPassword string) (_ *models.Account, err error) {
	ctx, span := s.start(ctx, "ChangePassword")
	outcome := outcomeOK
	defer func(start time.Time) { s.finish(span, "change_password", start, outcome, err) }(time.Now())

	account, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		outcome = outcomeAbsent
		return nil, nil
	}
	hash, err := s.encoder.Encode(newPassword)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode password")
	}
	account.PasswordHash = hash
	if err := s.persist(ctx, account); err != nil {
		return nil, err
	}
	s.logAudit(ctx, audit.EventPasswordChanged,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
	)
	return account, nil
}
