package fees

import (
	"math"
	"time"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

// TimeProvider is the clock used by FeeToNow (swapped out in tests).
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Policy computes parking fees from entry/exit timestamps.
//
// Pricing tiers:
//   - up to 30 minutes: the flat minimum fee
//   - up to 24 hours: every started hour at the hourly rate, capped at the daily rate
//   - beyond 24 hours: full days at the daily rate plus every started remaining hour
//
// Any result below the minimum fee is raised to it, then rounded to two
// decimal places.
type Policy struct {
	MinimumFee float64
	HourlyRate float64
	DailyRate  float64

	timeProvider TimeProvider
}

// NewPolicy creates a fee policy with the given rates.
func NewPolicy(minimumFee, hourlyRate, dailyRate float64) *Policy {
	return &Policy{
		MinimumFee:   minimumFee,
		HourlyRate:   hourlyRate,
		DailyRate:    dailyRate,
		timeProvider: &RealTimeProvider{},
	}
}

// DefaultPolicy creates a fee policy with the standard rates.
func DefaultPolicy() *Policy {
	return NewPolicy(domain.DefaultMinimumFee, domain.DefaultHourlyRate, domain.DefaultDailyRate)
}

// Fee calculates the parking fee for the given interval.
// Returns 0 when either timestamp is missing or the exit precedes the entry.
func (p *Policy) Fee(entry, exit time.Time) float64 {
	if entry.IsZero() || exit.IsZero() {
		return 0
	}
	if exit.Before(entry) {
		return 0
	}

	hours := exit.Sub(entry).Hours()

	var fee float64
	switch {
	case hours <= 0.5:
		// First 30 minutes: minimum fee
		fee = p.MinimumFee
	case hours <= 24:
		// Every started hour, capped at the daily rate
		fee = math.Ceil(hours) * p.HourlyRate
		if fee > p.DailyRate {
			fee = p.DailyRate
		}
	default:
		days := math.Floor(hours / 24)
		remaining := math.Mod(hours, 24)
		fee = days*p.DailyRate + math.Ceil(remaining)*p.HourlyRate
	}

	if fee < p.MinimumFee {
		fee = p.MinimumFee
	}

	return Round2(fee)
}

// FeeToNow calculates the fee from the entry time up to the current time.
// Used to estimate the charge for a vehicle that is still parked.
func (p *Policy) FeeToNow(entry time.Time) float64 {
	return p.Fee(entry, p.timeProvider.Now())
}

// Hours returns the parked duration in hours, rounded to two decimal
// places. Returns 0 when either timestamp is missing.
func (p *Policy) Hours(entry, exit time.Time) float64 {
	if entry.IsZero() || exit.IsZero() {
		return 0
	}
	return Round2(exit.Sub(entry).Hours())
}

// Round2 rounds a monetary amount to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
