package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"roster/internal/account/models"
	dErrors "roster/pkg/domain-errors"
	pemail "roster/pkg/email"
	"roster/pkg/platform/audit"
	pstrings "roster/pkg/platform/strings"
	"roster/pkg/requestcontext"
)

// CreateAccount registers an account that is active at once. A generated
// password is set and a reset token is issued so the owner can choose their
// own password out of band. Counters are initialised before the account is
// written; if that fails nothing is persisted.
func (s *Service) CreateAccount(ctx context.Context, profile models.Profile, domain string) (_ *models.Account, err error) {
	ctx, span := s.start(ctx, "CreateAccount", attribute.String("account.domain", domain))
	defer func(start time.Time) { s.finish(span, "create", start, outcomeOK, err) }(time.Now())

	account, err := s.newAccount(ctx, profile, domain)
	if err != nil {
		return nil, err
	}
	hash, err := s.encoder.Encode(s.tokens.NewPassword())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode generated password")
	}
	now := requestcontext.Now(ctx)
	account.PasswordHash = hash
	account.Activated = true
	account.ResetToken = s.tokens.NewResetToken()
	account.ResetIssuedAt = &now

	if err := s.initCounters(ctx, account.Email); err != nil {
		s.sinkFailed(ctx, "counter", "init", account, err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to initialise account counters")
	}
	if err := s.persist(ctx, account); err != nil {
		return nil, err
	}
	s.index(ctx, account)

	s.logAudit(ctx, audit.EventAccountCreated,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
	)
	if s.metrics != nil {
		s.metrics.IncrementCreated(false)
	}
	return account, nil
}

// CreateAccountWithActivation provisions an invited account. It stays
// inactive until Activate is called with the issued token. Counters are left
// to the inviting flow.
func (s *Service) CreateAccountWithActivation(ctx context.Context, profile models.Profile, domain string) (_ *models.Account, err error) {
	ctx, span := s.start(ctx, "CreateAccountWithActivation", attribute.String("account.domain", domain))
	defer func(start time.Time) { s.finish(span, "create_with_activation", start, outcomeOK, err) }(time.Now())

	account, err := s.newAccount(ctx, profile, domain)
	if err != nil {
		return nil, err
	}
	plaintext := profile.Password
	if plaintext == "" {
		plaintext = s.tokens.NewPassword()
	}
	hash, err := s.encoder.Encode(plaintext)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode password")
	}
	account.PasswordHash = hash
	account.Activated = false
	account.ActivationToken = s.tokens.NewActivationToken()

	if err := s.persist(ctx, account); err != nil {
		return nil, err
	}
	s.index(ctx, account)

	s.logAudit(ctx, audit.EventAccountInvited,
		"account_id", account.ID,
		"email", account.Email,
		"domain", account.Domain,
	)
	if s.metrics != nil {
		s.metrics.IncrementCreated(true)
	}
	return account, nil
}

// newAccount validates profile and fills the fields both creation paths share.
func (s *Service) newAccount(ctx context.Context, profile models.Profile, domain string) (*models.Account, error) {
	profile.Normalize()
	if err := profile.Validate(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid profile")
	}
	username, emailDomain := pemail.UsernameFromEmail(profile.Email), pemail.DomainFromEmail(profile.Email)
	if domain = strings.TrimSpace(domain); domain != "" && !strings.EqualFold(domain, emailDomain) {
		return nil, dErrors.New(dErrors.CodeValidation, "email does not belong to domain "+domain)
	}

	locale := profile.Locale
	if locale == "" {
		locale = models.DefaultLocale
	}
	authorities := pstrings.DedupeAndTrim(profile.Authorities)
	if len(authorities) == 0 {
		authorities = []string{models.AuthorityUser}
	}

	now := requestcontext.Now(ctx)
	return &models.Account{
		ID:             uuid.NewString(),
		Email:          profile.Email,
		Username:       username,
		Domain:         emailDomain,
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		Locale:         locale,
		JobTitle:       profile.JobTitle,
		JobDescription: profile.JobDescription,
		PhoneNumber:    profile.PhoneNumber,
		Avatar:         profile.Avatar,
		Authorities:    authorities,
		CreatedAt:      now,
	}, nil
}

func (s *Service) initCounters(ctx context.Context, email string) error {
	if err := s.counters.InitStatusCounter(ctx, email); err != nil {
		return err
	}
	if err := s.counters.InitFollowerCounter(ctx, email); err != nil {
		return err
	}
	return s.counters.InitFriendCounter(ctx, email)
}
