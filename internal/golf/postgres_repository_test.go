package golf_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkmfoundation/site-api/internal/golf"
	"github.com/jkmfoundation/site-api/internal/testdb"
)

func setupPostgres(t *testing.T) *pgxpool.Pool {
	return testdb.Setup(t, "golf_participants", "golf_teams")
}

func TestPostgresTeam_CreateAndGet(t *testing.T) {
	pool := setupPostgres(t)

	ctx := context.Background()
	repo := golf.NewTeamRepository(pool)

	tm := &golf.Team{
		LeaderFirstName:   "Pat",
		LeaderLastName:    "Killeen",
		LeaderPhoneNumber: "555-0100",
		LeaderEmail:       "leader@example.org",
		TeamName:          "Fore Play",
		PaymentOption:     golf.PaymentOptionIndividual,
		BalanceRemaining:  250.5,
		TeamIsPaid:        false,
		Teammates: []golf.Teammate{
			{FirstName: "Sam", LastName: "Golfer", PhoneNumber: "555-0101", Email: "sam@example.org"},
			{FirstName: "Lee", LastName: "Golfer", PhoneNumber: "555-0102", Email: "lee@example.org"},
		},
	}

	require.NoError(t, repo.Create(ctx, tm))
	assert.NotEqual(t, uuid.Nil, tm.ID)
	assert.False(t, tm.CreatedAt.IsZero())

	found, err := repo.GetByID(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fore Play", found.TeamName)
	assert.Equal(t, 250.5, found.BalanceRemaining)
	assert.Equal(t, golf.PaymentOptionIndividual, found.PaymentOption)
	require.Len(t, found.Teammates, 2)
	assert.Equal(t, "Sam", found.Teammates[0].FirstName)
	assert.Equal(t, "Lee", found.Teammates[1].FirstName)
	assert.False(t, found.Teammates[0].IsPaid)
}

func TestPostgresTeam_CreateWithoutTeammates(t *testing.T) {
	pool := setupPostgres(t)

	ctx := context.Background()
	repo := golf.NewTeamRepository(pool)

	tm := &golf.Team{LeaderFirstName: "Solo", LeaderLastName: "Leader", LeaderPhoneNumber: "1",
		LeaderEmail: "solo@example.org", TeamName: "One", PaymentOption: golf.PaymentOptionTeam,
		BalanceRemaining: 400}
	require.NoError(t, repo.Create(ctx, tm))

	found, err := repo.GetByID(ctx, tm.ID)
	require.NoError(t, err)
	assert.NotNil(t, found.Teammates)
	assert.Empty(t, found.Teammates)
}

func TestPostgresTeam_GetByID_NotFound(t *testing.T) {
	pool := setupPostgres(t)

	_, err := golf.NewTeamRepository(pool).GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, golf.ErrTeamNotFound)
}

func TestPostgresParticipant_ListByTeam(t *testing.T) {
	pool := setupPostgres(t)

	ctx := context.Background()
	repo := golf.NewParticipantRepository(pool)
	teamID := uuid.New()

	mate := &golf.Participant{FirstName: "Sam", LastName: "Golfer", PhoneNumber: "1",
		Email: "sam@example.org", TeamID: teamID, TeamName: "Fore Play"}
	leader := &golf.Participant{FirstName: "Pat", LastName: "Killeen", PhoneNumber: "2",
		Email: "leader@example.org", TeamID: teamID, TeamName: "Fore Play", IsLeader: true}
	require.NoError(t, repo.Create(ctx, mate))
	require.NoError(t, repo.Create(ctx, leader))

	// Participants do not require an existing team row.
	ps, err := repo.ListByTeam(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.True(t, ps[0].IsLeader)
	assert.Equal(t, "Pat", ps[0].FirstName)
	assert.False(t, ps[1].IsLeader)

	empty, err := repo.ListByTeam(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPostgres_RegisterEndToEnd(t *testing.T) {
	pool := setupPostgres(t)

	ctx := context.Background()
	teams := golf.NewTeamRepository(pool)
	participants := golf.NewParticipantRepository(pool)
	svc := golf.NewService(teams, participants, &recordingNotifier{})

	result, err := svc.Register(ctx, sampleRegistration(3, golf.PaymentOptionTeam, 100))
	require.NoError(t, err)

	stored, err := teams.GetByID(ctx, result.TeamID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, stored.BalanceRemaining)
	assert.Len(t, stored.Teammates, 3)

	ps, err := participants.ListByTeam(ctx, result.TeamID)
	require.NoError(t, err)
	assert.Len(t, ps, 4)
	assert.Equal(t, 1, leaders(ps))
}
