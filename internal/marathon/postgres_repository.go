package marathon

import (
	"context"
	"fmt"

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

// Create inserts a new marathon inquiry.
func (r *PostgresRepository) Create(ctx context.Context, inq *Inquiry) error {
	query := `
		INSERT INTO marathon_inquiries (first_name, last_name, phone_number, email,
		                                fundraising_goal, marathon_reason, additional_names)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		inq.FirstName,
		inq.LastName,
		inq.PhoneNumber,
		inq.Email,
		inq.FundraisingGoal,
		inq.MarathonReason,
		inq.AdditionalNames,
	).Scan(&inq.ID, &inq.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting marathon inquiry: %w", err)
	}

	return nil
}
