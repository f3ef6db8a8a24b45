package newsletter

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

// Create inserts a new subscriber.
func (r *PostgresRepository) Create(ctx context.Context, s *Subscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (email)
		VALUES ($1)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, s.Email).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadySubscribed
		}
		return fmt.Errorf("inserting newsletter subscriber: %w", err)
	}

	return nil
}
