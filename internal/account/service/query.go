package service

import (
	"context"

	"roster/internal/account/models"
)

// GetAccount returns the account with email, or nil when there is none.
func (s *Service) GetAccount(ctx context.Context, email string) (*models.Account, error) {
	return s.findByEmail(ctx, email)
}

// GetAccountsByEmail loads accounts in the order given, skipping unknown
// addresses.
func (s *Service) GetAccountsByEmail(ctx context.Context, emails []string) ([]*models.Account, error) {
	accounts := make([]*models.Account, 0, len(emails))
	for _, email := range emails {
		account, err := s.findByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if account != nil {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

// IsAdmin reports whether email belongs to an account with the admin authority.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	account, err := s.findByEmail(ctx, email)
	if err != nil || account == nil {
		return false, err
	}
	return account.IsAdmin(), nil
}
