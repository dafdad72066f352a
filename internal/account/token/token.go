// Package token mints the opaque random strings used for activation, password
// reset, generated passwords and RSS publication identifiers.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	activationBytes = 20
	resetBytes      = 20
	passwordBytes   = 15
	rssBytes        = 16
)

// Issuer is safe for concurrent use.
type Issuer struct {
	random io.Reader
}

type Option func(*Issuer)

// WithRandom replaces the entropy source. Tests only.
func WithRandom(r io.Reader) Option {
	return func(i *Issuer) {
		i.random = r
	}
}

func New(opts ...Option) *Issuer {
	i := &Issuer{random: rand.Reader}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Issuer) NewActivationToken() string { return i.mint(activationBytes) }

func (i *Issuer) NewResetToken() string { return i.mint(resetBytes) }

// NewPassword returns a throwaway password for accounts whose owner sets
// their own through the reset flow.
func (i *Issuer) NewPassword() string { return i.mint(passwordBytes) }

func (i *Issuer) NewRssID() string { return i.mint(rssBytes) }

// mint panics if the entropy source fails. There is no safe fallback for a
// broken randomness source.
func (i *Issuer) mint(n int) string {
	buf := make([]byte, n)
	if _, err := io.ReadFull(i.random, buf); err != nil {
		panic(fmt.Sprintf("token: read random bytes: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
