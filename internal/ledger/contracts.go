package ledger

import "time"

// FeePolicy computes the parking fee for a checked-out vehicle.
type FeePolicy interface {
	Fee(entry, exit time.Time) float64
}

// TimeProvider supplies the exit timestamp on checkout (swapped out in tests).
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
