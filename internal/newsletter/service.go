package newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jkmfoundation/site-api/internal/notify"
)

// Mailer dispatches email without waiting for delivery.
type Mailer interface {
	Dispatch(ctx context.Context, msg notify.Message)
}

// Service manages newsletter subscriptions.
type Service struct {
	repo   Repository
	mailer Mailer
}

// NewService creates a new newsletter Service.
func NewService(repo Repository, mailer Mailer) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// NormalizeEmail trims and lower-cases an address so repeats match.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscribe adds email to the list and sends a welcome message. It returns
// ErrAlreadySubscribed, without sending anything, for a known address.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	sub := &Subscriber{Email: NormalizeEmail(email)}

	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			return err
		}
		return fmt.Errorf("storing subscriber: %w", err)
	}

	s.mailer.Dispatch(ctx, notify.NewsletterWelcome(sub.Email))
	return nil
}
