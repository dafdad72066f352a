package service

import (
	"context"
	"errors"
	"time"

	"roster/internal/account/models"
	dErrors "roster/pkg/domain-errors"
	pemail "roster/pkg/email"
	"roster/pkg/platform/audit"
	"roster/pkg/platform/sentinel"
	pstrings "roster/pkg/platform/strings"
)

const lineBreakMarker = "<br>"

// UpdateProfile replaces the editable profile fields of the account with
// email. A changed email moves the account to the new address's domain. The
// search entry is removed and indexed again rather than updated in place.
func (s *Service) UpdateProfile(ctx context.Context, email string, update models.ProfileUpdate) (_ *models.Account, err error) {
	ctx, span := s.start(ctx, "UpdateProfile")
	outcome := outcomeOK
	defer func(start time.Time) { s.finish(span, "update_profile", start, outcome, err) }(time.Now())

	update.Normalize()
	if err := update.Validate(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid profile update")
	}
	account, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		outcome = outcomeAbsent
		return nil, nil
	}
	previous := account.Clone()

	domain := pemail.DomainFromEmail(update.Email)
	account.FirstName = update.FirstName
	account.LastName = update.LastName
	account.Email = update.Email
	account.Domain = domain
	account.Locale = update.Locale
	account.JobTitle = update.JobTitle
	account.JobDescription = pstrings.ReplaceLineBreaks(update.JobDescription, lineBreakMarker)
	account.PhoneNumber = update.PhoneNumber
	if err := s.persist(ctx, account); err != nil {
		return nil, err
	}

	s.unindex(ctx, previous)
	s.index(ctx, account)

	s.logAudit(ctx, audit.EventProfileUpdated,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
	)
	return account, nil
}

// UpdatePreferences stores the notification and publication flags. The search
// index is not touched.
func (s *Service) UpdatePreferences(ctx context.Context, email string, prefs models.Preferences) (_ *models.Account, err error) {
	ctx, span := s.start(ctx, "UpdatePreferences")
	outcome := outcomeOK
	defer func(start time.Time) { s.finish(span, "update_preferences", start, outcome, err) }(time.Now())

	account, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		outcome = outcomeAbsent
		return nil, nil
	}
	account.MentionEmail = prefs.MentionEmail
	account.RssID = prefs.RssID
	account.WeeklyDigest = prefs.WeeklyDigest
	account.DailyDigest = prefs.DailyDigest
	if err := s.persist(ctx, account); err != nil {
		return nil, err
	}
	s.logAudit(ctx, audit.EventPreferencesUpdated,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
	)
	return account, nil
}

// DeleteAccount removes the account and its search entry. Counters and digest
// memberships are left to their owners. Unknown accounts are ignored.
func (s *Service) DeleteAccount(ctx context.Context, email string) (err error) {
	ctx, span := s.start(ctx, "DeleteAccount")
	outcome := outcomeOK
	defer func(start time.Time) { s.finish(span, "delete", start, outcome, err) }(time.Now())

	account, err := s.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		outcome = outcomeAbsent
		return nil
	}
	if err := s.accounts.Delete(ctx, account); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			outcome = outcomeAbsent
			return nil
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete account")
	}
	s.unindex(ctx, account)

	s.logAudit(ctx, audit.EventAccountDeleted,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
	)
	return nil
}
