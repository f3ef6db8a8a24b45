package golf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// PaymentNotifier sends payment-link emails. Implementations must not block
// on delivery; failures are theirs to log.
type PaymentNotifier interface {
	SendPaymentLink(ctx context.Context, email, kind string)
}

// Service registers golf teams.
type Service struct {
	teams        TeamRepository
	participants ParticipantRepository
	notifier     PaymentNotifier
}

// NewService creates a new registration Service.
func NewService(teams TeamRepository, participants ParticipantRepository, notifier PaymentNotifier) *Service {
	return &Service{
		teams:        teams,
		participants: participants,
		notifier:     notifier,
	}
}

// Register stores the team, one participant per member (leader included) and
// then triggers payment-link emails. Writes are not transactional: if a
// participant insert fails, the team and any sibling participants that
// succeeded stay in storage and the error is returned.
func (s *Service) Register(ctx context.Context, reg Registration) (*Result, error) {
	balance, paid := Balance(reg.InitialPayment)

	teammates := make([]Teammate, 0, len(reg.Teammates))
	for _, m := range reg.Teammates {
		teammates = append(teammates, Teammate{
			FirstName:   m.FirstName,
			LastName:    m.LastName,
			PhoneNumber: m.PhoneNumber,
			Email:       m.Email,
			IsPaid:      false,
		})
	}

	team := &Team{
		LeaderFirstName:   reg.LeaderFirstName,
		LeaderLastName:    reg.LeaderLastName,
		LeaderPhoneNumber: reg.LeaderPhoneNumber,
		LeaderEmail:       reg.LeaderEmail,
		TeamName:          reg.TeamName,
		PaymentOption:     reg.PaymentOption,
		BalanceRemaining:  balance,
		TeamIsPaid:        paid,
		Teammates:         teammates,
	}

	if err := s.teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}

	var g errgroup.Group
	for _, p := range participantsFor(team, reg) {
		g.Go(func() error {
			return s.participants.Create(ctx, p)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("creating participants for team %s: %w", team.ID, err)
	}

	slog.Info("golf team registered",
		"teamId", team.ID,
		"participants", len(reg.Teammates)+1,
		"paymentOption", reg.PaymentOption,
		"balanceRemaining", balance,
	)

	s.notifyPayment(ctx, reg)

	return &Result{TeamID: team.ID, BalanceRemaining: balance}, nil
}

func (s *Service) notifyPayment(ctx context.Context, reg Registration) {
	if reg.PaymentOption == PaymentOptionIndividual {
		for _, m := range reg.Teammates {
			s.notifier.SendPaymentLink(ctx, m.Email, PaymentOptionIndividual)
		}
		s.notifier.SendPaymentLink(ctx, reg.LeaderEmail, PaymentOptionIndividual)
		return
	}
	s.notifier.SendPaymentLink(ctx, reg.LeaderEmail, PaymentOptionTeam)
}

// participantsFor builds the teammate rows followed by the single leader row.
func participantsFor(team *Team, reg Registration) []*Participant {
	out := make([]*Participant, 0, len(reg.Teammates)+1)
	for _, m := range reg.Teammates {
		out = append(out, &Participant{
			FirstName:   m.FirstName,
			LastName:    m.LastName,
			PhoneNumber: m.PhoneNumber,
			Email:       m.Email,
			TeamID:      team.ID,
			TeamName:    team.TeamName,
		})
	}
	out = append(out, &Participant{
		FirstName:   reg.LeaderFirstName,
		LastName:    reg.LeaderLastName,
		PhoneNumber: reg.LeaderPhoneNumber,
		Email:       reg.LeaderEmail,
		TeamID:      team.ID,
		TeamName:    team.TeamName,
		IsLeader:    true,
	})
	return out
}

// Roster loads a team and its participants. It returns ErrTeamNotFound for an
// unknown id.
func (s *Service) Roster(ctx context.Context, teamID uuid.UUID) (*Roster, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	participants, err := s.participants.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}

	return &Roster{Team: team, Participants: participants}, nil
}
