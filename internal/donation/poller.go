package donation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Totaler computes the donation total on demand.
type Totaler interface {
	Total(ctx context.Context) (int64, error)
}

// Poller keeps the last computed total in memory and refreshes it on an
// interval, so page loads do not each walk the full charge history.
type Poller struct {
	source   Totaler
	interval time.Duration

	mu        sync.RWMutex
	total     int64
	fetchedAt time.Time
}

// NewPoller creates a Poller that refreshes from source every interval.
func NewPoller(source Totaler, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		interval: interval,
	}
}

// Start schedules a refresh immediately and then every interval. It blocks
// until ctx is cancelled and returns an error only if the scheduler could not
// be set up.
func (p *Poller) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("creating donation scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(p.interval),
		gocron.NewTask(func() { p.refresh(ctx) }),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("scheduling donation refresh: %w", err)
	}

	sched.Start()
	slog.Info("donation poller started", "interval", p.interval.String())

	<-ctx.Done()
	if err := sched.Shutdown(); err != nil {
		slog.Warn("donation poller: scheduler shutdown", "error", err)
	}
	slog.Info("donation poller stopped")
	return nil
}

// Total returns the cached total. When nothing has been fetched yet, or the
// cached value missed two refreshes in a row, it asks the source directly and
// falls back to the stale value if that fails.
func (p *Poller) Total(ctx context.Context) (int64, error) {
	p.mu.RLock()
	cached, fetchedAt := p.total, p.fetchedAt
	p.mu.RUnlock()

	if !fetchedAt.IsZero() && time.Since(fetchedAt) <= 2*p.interval {
		return cached, nil
	}

	total, err := p.source.Total(ctx)
	if err != nil {
		if !fetchedAt.IsZero() {
			slog.Warn("donation total unavailable, serving stale value", "error", err, "fetchedAt", fetchedAt)
			return cached, nil
		}
		return 0, err
	}
	p.store(total)
	return total, nil
}

func (p *Poller) refresh(ctx context.Context) {
	total, err := p.source.Total(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Warn("donation poller: refresh failed, keeping last total", "error", err)
		}
		return
	}
	p.store(total)
	slog.Debug("donation poller: total refreshed", "totalDonations", total)
}

func (p *Poller) store(total int64) {
	p.mu.Lock()
	p.total = total
	p.fetchedAt = time.Now()
	p.mu.Unlock()
}
