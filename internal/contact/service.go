package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jkmfoundation/site-api/internal/notify"
)

// Mailer dispatches email without waiting for delivery.
type Mailer interface {
	Dispatch(ctx context.Context, msg notify.Message)
	DispatchAdmin(ctx context.Context, msg notify.Message)
}

// Service handles contact-form submissions.
type Service struct {
	repo   Repository
	mailer Mailer
}

// NewService creates a new contact Service.
func NewService(repo Repository, mailer Mailer) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// Submit stores the submission (a repeat of the same sender is not stored
// again) and emails a confirmation to the sender and a notice to the admin.
func (s *Service) Submit(ctx context.Context, sub *Submission) error {
	created, err := s.repo.CreateIfAbsent(ctx, sub)
	if err != nil {
		return fmt.Errorf("storing contact submission: %w", err)
	}
	if !created {
		slog.Debug("contact submission already stored", "email", sub.Email)
	}

	s.mailer.Dispatch(ctx, notify.ContactConfirmation(sub.Email, sub.FirstName))
	s.mailer.DispatchAdmin(ctx, notify.ContactAdminNotice(notify.ContactDetails{
		FirstName:   sub.FirstName,
		LastName:    sub.LastName,
		PhoneNumber: sub.PhoneNumber,
		Email:       sub.Email,
		Subject:     sub.Subject,
		Message:     sub.Message,
	}))

	return nil
}
