package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// CreateIfAbsent inserts a submission, relying on the identity unique
// constraint so concurrent duplicates collapse into one row.
func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, s *Submission) (bool, error) {
	query := `
		INSERT INTO contact_submissions (first_name, last_name, phone_number, email, subject, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT uq_contact_submissions_identity DO NOTHING
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		s.FirstName,
		s.LastName,
		s.PhoneNumber,
		s.Email,
		s.Subject,
		s.Message,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("inserting contact submission: %w", err)
	}

	return true, nil
}
