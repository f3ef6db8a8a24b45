package donation

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const stripePageSize = 100

// StripeCharges lists charges through the Stripe API, following pagination.
type StripeCharges struct {
	api *client.API
}

// NewStripeCharges creates a ChargeLister authenticated with secretKey.
func NewStripeCharges(secretKey string) *StripeCharges {
	return &StripeCharges{api: client.New(secretKey, nil)}
}

// ListCharges returns every charge on the account.
func (s *StripeCharges) ListCharges(ctx context.Context) ([]Charge, error) {
	params := &stripe.ChargeListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(stripePageSize)

	var out []Charge
	iter := s.api.Charges.List(params)
	for iter.Next() {
		c := iter.Charge()
		out = append(out, Charge{
			Amount:         c.Amount,
			AmountRefunded: c.AmountRefunded,
			Paid:           c.Paid,
			Captured:       c.Captured,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("stripe charge list: %w", err)
	}

	return out, nil
}
