package quota

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"roster/internal/tenant/models"
	"roster/pkg/platform/sentinel"
)

// PostgresStore reads tenant_quotas.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Put upserts a row. Provisioning tools and integration tests use it.
func (s *PostgresStore) Put(ctx context.Context, q models.TenantQuota) error {
	query := `
		INSERT INTO tenant_quotas (domain, subscription_level, storage_size, admin_username)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (domain) DO UPDATE SET
			subscription_level = EXCLUDED.subscription_level,
			storage_size = EXCLUDED.storage_size,
			admin_username = EXCLUDED.admin_username
	`
	_, err := s.db.ExecContext(ctx, query, strings.ToLower(q.Domain), q.SubscriptionLevel, q.StorageSize, q.AdminUsername)
	if err != nil {
		return fmt.Errorf("put tenant quota: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByDomain(ctx context.Context, domain string) (*models.TenantQuota, error) {
	query := `
		SELECT domain, subscription_level, storage_size, admin_username
		FROM tenant_quotas
		WHERE domain = $1
	`
	var q models.TenantQuota
	err := s.db.QueryRowContext(ctx, query, strings.ToLower(domain)).
		Scan(&q.Domain, &q.SubscriptionLevel, &q.StorageSize, &q.AdminUsername)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find tenant quota by domain: %w", err)
	}
	return &q, nil
}
