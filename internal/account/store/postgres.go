package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"roster/internal/account/models"
	"roster/internal/platform/postgres"
	"roster/pkg/platform/sentinel"
)

const accountColumns = `
	id, email, username, domain, password_hash, first_name, last_name, locale,
	job_title, job_description, phone_number, avatar, authorities, activated,
	activation_token, reset_token, reset_issued_at, mention_email, weekly_digest,
	daily_digest, rss_id, created_at, updated_at`

// PostgresStore persists accounts in the accounts table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return s.findOne(ctx, "id", id)
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return s.findOne(ctx, "email", email)
}

func (s *PostgresStore) FindByActivationToken(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, sentinel.ErrNotFound
	}
	return s.findOne(ctx, "activation_token", token)
}

func (s *PostgresStore) FindByResetToken(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, sentinel.ErrNotFound
	}
	return s.findOne(ctx, "reset_token", token)
}

// findOne is only called with the fixed column names above.
func (s *PostgresStore) findOne(ctx context.Context, column, value string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + column + ` = $1`
	a, err := scanAccount(s.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find account by %s: %w", column, err)
	}
	return a, nil
}

// Save upserts by id. Unique violations on email, tokens or RSS id are
// reported as sentinel.ErrConflict naming the constraint.
func (s *PostgresStore) Save(ctx context.Context, a *models.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			username = EXCLUDED.username,
			domain = EXCLUDED.domain,
			password_hash = EXCLUDED.password_hash,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			locale = EXCLUDED.locale,
			job_title = EXCLUDED.job_title,
			job_description = EXCLUDED.job_description,
			phone_number = EXCLUDED.phone_number,
			avatar = EXCLUDED.avatar,
			authorities = EXCLUDED.authorities,
			activated = EXCLUDED.activated,
			activation_token = EXCLUDED.activation_token,
			reset_token = EXCLUDED.reset_token,
			reset_issued_at = EXCLUDED.reset_issued_at,
			mention_email = EXCLUDED.mention_email,
			weekly_digest = EXCLUDED.weekly_digest,
			daily_digest = EXCLUDED.daily_digest,
			rss_id = EXCLUDED.rss_id,
			updated_at = EXCLUDED.updated_at
	`
	authorities := a.Authorities
	if authorities == nil {
		authorities = []string{}
	}
	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.Email, a.Username, a.Domain, a.PasswordHash,
		a.FirstName, a.LastName, a.Locale, a.JobTitle, a.JobDescription,
		a.PhoneNumber, a.Avatar, pq.Array(authorities), a.Activated,
		nullString(a.ActivationToken), nullString(a.ResetToken), nullTime(a.ResetIssuedAt),
		a.MentionEmail, a.WeeklyDigest, a.DailyDigest, a.RssID,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("%s: %w", postgres.ConstraintName(err), sentinel.ErrConflict)
		}
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, a *models.Account) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, a.ID)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// List pages through accounts ordered by id, starting after afterID.
func (s *PostgresStore) List(ctx context.Context, afterID string, limit int) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id > $1 ORDER BY id LIMIT $2`
	rows, err := s.db.QueryContext(ctx, query, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []*models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		a               models.Account
		activationToken sql.NullString
		resetToken      sql.NullString
		resetIssuedAt   sql.NullTime
	)
	err := row.Scan(
		&a.ID, &a.Email, &a.Username, &a.Domain, &a.PasswordHash,
		&a.FirstName, &a.LastName, &a.Locale, &a.JobTitle, &a.JobDescription,
		&a.PhoneNumber, &a.Avatar, pq.Array(&a.Authorities), &a.Activated,
		&activationToken, &resetToken, &resetIssuedAt,
		&a.MentionEmail, &a.WeeklyDigest, &a.DailyDigest, &a.RssID,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.ActivationToken = activationToken.String
	a.ResetToken = resetToken.String
	if resetIssuedAt.Valid {
		t := resetIssuedAt.Time
		a.ResetIssuedAt = &t
	}
	return &a, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
