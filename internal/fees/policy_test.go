package fees

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func testPolicy() *Policy {
	return NewPolicy(2.0, 5.0, 50.0)
}

func TestFeeTiers(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	p := testPolicy()

	tests := []struct {
		name string
		exit time.Time
		want float64
	}{
		{"zero duration", entry, 2.0},
		{"within grace period", entry.Add(29 * time.Minute), 2.0},
		{"exactly 30 minutes", entry.Add(30 * time.Minute), 2.0},
		{"just past grace period", entry.Add(31 * time.Minute), 5.0},
		{"one hour", entry.Add(1 * time.Hour), 5.0},
		{"partial hour charged in full", entry.Add(90 * time.Minute), 10.0},
		{"ten hours", entry.Add(10 * time.Hour), 50.0},
		{"hourly fee capped at daily rate", entry.Add(23 * time.Hour), 50.0},
		{"exactly 24 hours", entry.Add(24 * time.Hour), 50.0},
		{"one day plus one hour", entry.Add(25 * time.Hour), 55.0},
		{"one day plus partial hour", entry.Add(24*time.Hour + 30*time.Minute), 55.0},
		{"two full days", entry.Add(48 * time.Hour), 100.0},
		{"two days plus three hours", entry.Add(51 * time.Hour), 115.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, p.Fee(entry, tt.exit), 1e-9)
		})
	}
}

func TestFeeBadInput(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	p := testPolicy()

	assert.Zero(t, p.Fee(time.Time{}, entry))
	assert.Zero(t, p.Fee(entry, time.Time{}))
	assert.Zero(t, p.Fee(time.Time{}, time.Time{}))

	// Exit before entry yields no fee at all, not the minimum.
	assert.Zero(t, p.Fee(entry, entry.Add(-time.Minute)))
}

func TestFeeMonotonic(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	p := testPolicy()

	prev := 0.0
	for m := 0; m <= 3*24*60; m += 17 {
		fee := p.Fee(entry, entry.Add(time.Duration(m)*time.Minute))
		require.GreaterOrEqual(t, fee, prev, "fee decreased at %d minutes", m)
		prev = fee
	}
}

func TestFeeRespectsMinimum(t *testing.T) {
	// With a tiny hourly rate the computed fee falls below the minimum
	// and must be raised to it.
	p := NewPolicy(2.0, 0.5, 50.0)
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	assert.InDelta(t, 2.0, p.Fee(entry, entry.Add(2*time.Hour)), 1e-9)
}

func TestFeeToNow(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	p := testPolicy()
	p.timeProvider = &fixedTimeProvider{now: entry.Add(3 * time.Hour)}

	assert.InDelta(t, 15.0, p.FeeToNow(entry), 1e-9)
}

func TestHours(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	p := testPolicy()

	assert.InDelta(t, 1.5, p.Hours(entry, entry.Add(90*time.Minute)), 1e-9)
	assert.InDelta(t, 0.25, p.Hours(entry, entry.Add(15*time.Minute)), 1e-9)
	assert.Zero(t, p.Hours(time.Time{}, entry))
	assert.Zero(t, p.Hours(entry, time.Time{}))
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 2.35, Round2(2.3456), 1e-9)
	assert.InDelta(t, 2.34, Round2(2.3449), 1e-9)
	assert.InDelta(t, 100.0, Round2(99.999), 1e-9)
}
