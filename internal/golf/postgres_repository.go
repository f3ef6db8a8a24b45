package golf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTeamRepository implements TeamRepository using pgxpool.
type PostgresTeamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository creates a new TeamRepository backed by the given connection pool.
func NewTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &PostgresTeamRepository{pool: pool}
}

// Create inserts a new team record with its embedded teammate list.
func (r *PostgresTeamRepository) Create(ctx context.Context, t *Team) error {
	teammates := t.Teammates
	if teammates == nil {
		teammates = []Teammate{}
	}
	teammatesJSON, err := json.Marshal(teammates)
	if err != nil {
		return fmt.Errorf("encoding teammates: %w", err)
	}

	query := `
		INSERT INTO golf_teams (leader_first_name, leader_last_name, leader_phone_number, leader_email,
		                        team_name, payment_option, balance_remaining, team_is_paid, teammates)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err = r.pool.QueryRow(ctx, query,
		t.LeaderFirstName,
		t.LeaderLastName,
		t.LeaderPhoneNumber,
		t.LeaderEmail,
		t.TeamName,
		t.PaymentOption,
		t.BalanceRemaining,
		t.TeamIsPaid,
		teammatesJSON,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting golf team: %w", err)
	}

	t.Teammates = teammates
	return nil
}

// GetByID retrieves a single team by its UUID.
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*Team, error) {
	query := `
		SELECT id, leader_first_name, leader_last_name, leader_phone_number, leader_email,
		       team_name, payment_option, balance_remaining, team_is_paid, teammates, created_at
		FROM golf_teams
		WHERE id = $1`

	var t Team
	var teammatesJSON []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.LeaderFirstName,
		&t.LeaderLastName,
		&t.LeaderPhoneNumber,
		&t.LeaderEmail,
		&t.TeamName,
		&t.PaymentOption,
		&t.BalanceRemaining,
		&t.TeamIsPaid,
		&teammatesJSON,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("querying golf team: %w", err)
	}

	if err := json.Unmarshal(teammatesJSON, &t.Teammates); err != nil {
		return nil, fmt.Errorf("decoding teammates: %w", err)
	}
	if t.Teammates == nil {
		t.Teammates = []Teammate{}
	}

	return &t, nil
}

// PostgresParticipantRepository implements ParticipantRepository using pgxpool.
type PostgresParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewParticipantRepository creates a new ParticipantRepository backed by the given connection pool.
func NewParticipantRepository(pool *pgxpool.Pool) ParticipantRepository {
	return &PostgresParticipantRepository{pool: pool}
}

// Create inserts a new participant record.
func (r *PostgresParticipantRepository) Create(ctx context.Context, p *Participant) error {
	query := `
		INSERT INTO golf_participants (first_name, last_name, phone_number, email,
		                               team_id, team_name, is_paid, is_leader)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		p.FirstName,
		p.LastName,
		p.PhoneNumber,
		p.Email,
		p.TeamID,
		p.TeamName,
		p.IsPaid,
		p.IsLeader,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting golf participant: %w", err)
	}

	return nil
}

// ListByTeam retrieves all participants referencing teamID, leader first.
func (r *PostgresParticipantRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]Participant, error) {
	query := `
		SELECT id, first_name, last_name, phone_number, email, team_id, team_name,
		       is_paid, is_leader, created_at
		FROM golf_participants
		WHERE team_id = $1
		ORDER BY is_leader DESC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing golf participants: %w", err)
	}
	defer rows.Close()

	var participants []Participant
	for rows.Next() {
		var p Participant
		err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.PhoneNumber, &p.Email,
			&p.TeamID, &p.TeamName, &p.IsPaid, &p.IsLeader, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning golf participant row: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating golf participant rows: %w", err)
	}

	if participants == nil {
		participants = []Participant{}
	}

	return participants, nil
}
