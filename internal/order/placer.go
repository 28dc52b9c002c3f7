package order

import (
	"context"
	"time"
)

// Placer submits an order to the downstream order system. The call is
// at-most-once with no automatic retry; callers bound it with a context
// deadline.
type Placer interface {
	PlaceOrder(ctx context.Context, o *Order) error
}

// SimulatedPlacer stands in for the payment/order backend. It waits for
// the configured latency (honoring context cancellation) and then returns
// the configured outcome.
type SimulatedPlacer struct {
	Latency time.Duration
	// Fail, when non-nil, is returned as the submission outcome.
	Fail error
}

func (p *SimulatedPlacer) PlaceOrder(ctx context.Context, o *Order) error {
	if p.Latency > 0 {
		timer := time.NewTimer(p.Latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return p.Fail
}
