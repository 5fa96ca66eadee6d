package services

import (
	"context"
	"time"
)

// OrderGateway is the injected submission capability behind checkout, review
// and reservation flows. The shipped implementation only simulates latency;
// a real deployment would talk to an actual backend here.
type OrderGateway interface {
	Submit(ctx context.Context, payload any) error
}

// SimulatedGateway waits for a fixed delay, then succeeds. It respects the
// request context, so a client that navigates away mid-delay just ends the
// call instead of completing against a gone consumer.
type SimulatedGateway struct{ Delay time.Duration }

func (g SimulatedGateway) Submit(ctx context.Context, _ any) error {
	if g.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(g.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
