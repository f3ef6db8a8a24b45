package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Submission represents a row in the contact_submissions table.
type Submission struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Subject     string
	Message     string
	CreatedAt   time.Time
}

// Repository persists contact-form submissions.
type Repository interface {
	// CreateIfAbsent inserts s unless a submission with the same first name,
	// last name, phone number and email exists. It reports whether a row was written.
	CreateIfAbsent(ctx context.Context, s *Submission) (bool, error)
}
