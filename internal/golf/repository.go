package golf

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrTeamNotFound is returned when a team record is not found.
var ErrTeamNotFound = errors.New("golf team not found")

// TeamRepository provides create/find operations on the golf_teams table.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*Team, error)
}

// ParticipantRepository provides create/find operations on the golf_participants table.
// Create must be safe for concurrent use.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]Participant, error)
}
