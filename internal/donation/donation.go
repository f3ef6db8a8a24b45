package donation

import (
	"context"
	"fmt"
)

// Charge is the subset of a payment-provider charge needed for totals.
// Amounts are in the currency's minor unit.
type Charge struct {
	Amount         int64
	AmountRefunded int64
	Paid           bool
	Captured       bool
}

// ChargeLister lists every charge on the account.
type ChargeLister interface {
	ListCharges(ctx context.Context) ([]Charge, error)
}

// Service reports the running donation total.
type Service struct {
	charges ChargeLister
}

// NewService creates a new donation Service.
func NewService(charges ChargeLister) *Service {
	return &Service{charges: charges}
}

// Total returns the sum of captured charges net of refunds.
func (s *Service) Total(ctx context.Context) (int64, error) {
	charges, err := s.charges.ListCharges(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing charges: %w", err)
	}
	return Sum(charges), nil
}

// Sum adds amount minus refunds over paid, captured charges.
func Sum(charges []Charge) int64 {
	var total int64
	for _, c := range charges {
		if !c.Paid || !c.Captured {
			continue
		}
		total += c.Amount - c.AmountRefunded
	}
	return total
}
