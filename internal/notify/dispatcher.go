package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Sender delivers a single message to the mail relay.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher sends transactional email without blocking the caller.
// Delivery failures are logged and never returned.
type Dispatcher struct {
	sender Sender
	links  PaymentLinks
	from   string
	admin  string
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. from is the default sender address and
// admin receives DispatchAdmin notices.
func NewDispatcher(sender Sender, links PaymentLinks, from, admin string) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		links:  links,
		from:   from,
		admin:  admin,
	}
}

// Dispatch submits msg on a detached goroutine. Cancellation of ctx does not
// abort the send.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	if msg.From == "" {
		msg.From = d.from
	}

	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.sender.Send(ctx, msg); err != nil {
			slog.Error("failed to send email", "error", err, "to", msg.To, "subject", msg.Subject)
			return
		}
		slog.Info("email sent", "to", msg.To, "subject", msg.Subject)
	}()
}

// DispatchAdmin sends msg to the foundation's admin inbox.
func (d *Dispatcher) DispatchAdmin(ctx context.Context, msg Message) {
	msg.To = d.admin
	d.Dispatch(ctx, msg)
}

// SendPaymentLink emails the checkout link for kind to email.
func (d *Dispatcher) SendPaymentLink(ctx context.Context, email, kind string) {
	link := d.links.Resolve(kind)
	if link == "" {
		slog.Warn("no payment link configured for kind", "kind", kind, "to", email)
	}
	d.Dispatch(ctx, PaymentLinkMessage(email, link))
}

// Wait blocks until every dispatched message has been attempted. It is meant
// for process shutdown, not the request path.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
