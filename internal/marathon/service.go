package marathon

import (
	"context"
	"fmt"

	"github.com/jkmfoundation/site-api/internal/notify"
)

// Mailer dispatches email without waiting for delivery.
type Mailer interface {
	Dispatch(ctx context.Context, msg notify.Message)
	DispatchAdmin(ctx context.Context, msg notify.Message)
}

// Service handles marathon inquiries.
type Service struct {
	repo   Repository
	mailer Mailer
}

// NewService creates a new marathon Service.
func NewService(repo Repository, mailer Mailer) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// Submit stores the inquiry and emails the runner and the admin.
func (s *Service) Submit(ctx context.Context, inq *Inquiry) error {
	if err := s.repo.Create(ctx, inq); err != nil {
		return fmt.Errorf("storing marathon inquiry: %w", err)
	}

	s.mailer.Dispatch(ctx, notify.MarathonConfirmation(inq.Email, inq.FirstName))
	s.mailer.DispatchAdmin(ctx, notify.MarathonAdminNotice(notify.MarathonDetails{
		FirstName:       inq.FirstName,
		LastName:        inq.LastName,
		PhoneNumber:     inq.PhoneNumber,
		Email:           inq.Email,
		FundraisingGoal: inq.FundraisingGoal,
		MarathonReason:  inq.MarathonReason,
		AdditionalNames: inq.AdditionalNames,
	}))

	return nil
}
