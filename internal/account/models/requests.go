package models

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"roster/pkg/email"
)

// Profile carries the caller-supplied fields for a new account.
type Profile struct {
	Email          string   `json:"email"`
	Password       string   `json:"password,omitempty"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Locale         string   `json:"locale"`
	JobTitle       string   `json:"job_title"`
	JobDescription string   `json:"job_description"`
	PhoneNumber    string   `json:"phone_number"`
	Avatar         string   `json:"avatar"`
	Authorities    []string `json:"authorities"`
}

func (p *Profile) Normalize() {
	p.Email = email.Normalize(p.Email)
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Locale = strings.TrimSpace(p.Locale)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
}

func (p Profile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&p.Password, validation.Length(8, 72)),
		validation.Field(&p.FirstName, validation.Length(0, 100)),
		validation.Field(&p.LastName, validation.Length(0, 100)),
		validation.Field(&p.Locale, validation.Length(0, 16)),
		validation.Field(&p.JobTitle, validation.Length(0, 200)),
		validation.Field(&p.PhoneNumber, validation.Length(0, 32)),
		validation.Field(&p.Avatar, validation.Length(0, 512)),
	)
}

// ProfileUpdate replaces the editable profile fields.
type ProfileUpdate struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Locale         string `json:"locale"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	PhoneNumber    string `json:"phone_number"`
}

func (u *ProfileUpdate) Normalize() {
	u.Email = email.Normalize(u.Email)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Locale = strings.TrimSpace(u.Locale)
	u.PhoneNumber = strings.TrimSpace(u.PhoneNumber)
}

func (u ProfileUpdate) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&u.FirstName, validation.Length(0, 100)),
		validation.Field(&u.LastName, validation.Length(0, 100)),
		validation.Field(&u.Locale, validation.Length(0, 16)),
		validation.Field(&u.JobTitle, validation.Length(0, 200)),
		validation.Field(&u.PhoneNumber, validation.Length(0, 32)),
	)
}

// Preferences are the non-searchable notification and publication flags.
type Preferences struct {
	MentionEmail bool   `json:"mention_email"`
	RssID        string `json:"rss_id"`
	WeeklyDigest bool   `json:"weekly_digest"`
	DailyDigest  bool   `json:"daily_digest"`
}
