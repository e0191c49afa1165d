// Package fixture implements the data-source contracts with canned in-memory
// records, standing in for the backend until it exists. A configurable delay
// simulates network latency so the client-side loading states stay honest.
package fixture

import (
	"context"
	"time"

	"petsfeed/internal/domain/entity"
	"petsfeed/internal/errors"

	"github.com/paulmach/orb"
)

// simulateLatency blocks for the configured artificial delay, honouring
// context cancellation.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}

// locationPoint converts a coordinate pair to orb's lng/lat point order.
func locationPoint(loc entity.Location) orb.Point {
	return orb.Point{loc.Longitude, loc.Latitude}
}
