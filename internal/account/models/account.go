package models

import (
	"slices"
	"time"
)

const (
	// DefaultLocale is assigned when a profile does not carry one.
	DefaultLocale = "en"

	// ResetWindow bounds how long a reset token stays usable after issuance.
	ResetWindow = 24 * time.Hour

	AuthorityUser  = "ROLE_USER"
	AuthorityAdmin = "ROLE_ADMIN"
)

// Account is one user identity within one tenant. Email is the natural key.
//
// Lifecycle state is derived from field presence rather than stored:
//   - pending activation: ActivationToken set, Activated false
//   - active: Activated true
//   - recovery open: Activated true, ResetToken set, ResetIssuedAt within ResetWindow
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Domain       string `json:"domain"`
	PasswordHash string `json:"-"`

	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Locale         string   `json:"locale"`
	JobTitle       string   `json:"job_title"`
	JobDescription string   `json:"job_description"`
	PhoneNumber    string   `json:"phone_number"`
	Avatar         string   `json:"avatar"`
	Authorities    []string `json:"authorities"`

	Activated       bool       `json:"activated"`
	ActivationToken string     `json:"-"`
	ResetToken      string     `json:"-"`
	ResetIssuedAt   *time.Time `json:"-"`

	MentionEmail bool `json:"mention_email"`
	WeeklyDigest bool `json:"weekly_digest"`
	DailyDigest  bool `json:"daily_digest"`
	// RssID is empty when RSS publication is disabled.
	RssID string `json:"rss_id"`

	// Counters are owned by the counter sink and only filled on read.
	Counters Counters `json:"counters"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Counters are derived per-account counts.
type Counters struct {
	Statuses        int64 `json:"statuses"`
	Friends         int64 `json:"friends"`
	Followers       int64 `json:"followers"`
	AttachmentBytes int64 `json:"attachment_bytes"`
}

func (a *Account) IsPendingActivation() bool {
	return !a.Activated && a.ActivationToken != ""
}

// ResetUsable reports whether the open reset token may still be redeemed at
// now. A token issued exactly ResetWindow ago is still usable.
func (a *Account) ResetUsable(now time.Time) bool {
	if a.ResetToken == "" || a.ResetIssuedAt == nil {
		return false
	}
	return !now.After(a.ResetIssuedAt.Add(ResetWindow))
}

func (a *Account) HasAuthority(authority string) bool {
	return slices.Contains(a.Authorities, authority)
}

func (a *Account) IsAdmin() bool {
	return a.HasAuthority(AuthorityAdmin)
}

// RssEnabled reports whether a publication identifier is set.
func (a *Account) RssEnabled() bool {
	return a.RssID != ""
}

// Clone returns a deep copy so stores never share mutable state with callers.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	c.Authorities = slices.Clone(a.Authorities)
	if a.ResetIssuedAt != nil {
		t := *a.ResetIssuedAt
		c.ResetIssuedAt = &t
	}
	return &c
}
