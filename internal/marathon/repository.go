package marathon

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Inquiry represents a row in the marathon_inquiries table.
type Inquiry struct {
	ID              uuid.UUID
	FirstName       string
	LastName        string
	PhoneNumber     string
	Email           string
	FundraisingGoal bool
	MarathonReason  string
	AdditionalNames string
	CreatedAt       time.Time
}

// Repository persists marathon inquiries.
type Repository interface {
	Create(ctx context.Context, inq *Inquiry) error
}
