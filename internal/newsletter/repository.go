package newsletter

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadySubscribed is returned when the email is already on the list.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// Subscriber represents a row in the newsletter_subscribers table.
type Subscriber struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

// Repository persists newsletter subscribers.
type Repository interface {
	// Create inserts a subscriber. Returns ErrAlreadySubscribed if the email exists.
	Create(ctx context.Context, s *Subscriber) error
}
