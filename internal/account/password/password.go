// Package password hashes account passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	dErrors "roster/pkg/domain-errors"
)

type Encoder struct {
	cost int
}

type Option func(*Encoder)

// WithCost overrides bcrypt.DefaultCost. Tests use bcrypt.MinCost.
func WithCost(cost int) Option {
	return func(e *Encoder) {
		e.cost = cost
	}
}

func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode returns a one-way hash of plaintext.
func (e *Encoder) Encode(plaintext string) (string, error) {
	if plaintext == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), e.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "password is too long")
		}
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hashed), nil
}

// Matches reports whether plaintext hashes to hash.
func (e *Encoder) Matches(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("could not verify password: %w", err)
}
