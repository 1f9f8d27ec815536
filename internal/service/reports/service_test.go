package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkms/PMS-ParkingService/internal/domain"
	"github.com/parkms/PMS-ParkingService/internal/fees"
	"github.com/parkms/PMS-ParkingService/internal/ledger"
	"github.com/parkms/PMS-ParkingService/internal/slots"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

// now is "today" for every test in this file.
var now = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, records []*domain.Vehicle) *Service {
	t.Helper()

	l := ledger.New(slots.NewRegistry(20), fees.DefaultPolicy())
	l.Restore(records)

	s := NewService(l, fees.DefaultPolicy(), testLogger{})
	s.timeProvider = &fixedTimeProvider{now: now}
	return s
}

func checkedOut(number string, slot int, entry, exit time.Time) *domain.Vehicle {
	return &domain.Vehicle{
		Number:     number,
		Type:       domain.TypeCar,
		SlotNumber: slot,
		EntryTime:  entry,
		ExitTime:   &exit,
		Status:     domain.StatusCheckedOut,
	}
}

func parked(number string, slot int, entry time.Time) *domain.Vehicle {
	return &domain.Vehicle{
		Number:     number,
		Type:       domain.TypeCar,
		SlotNumber: slot,
		EntryTime:  entry,
		Status:     domain.StatusActive,
	}
}

func TestTodayVehicles(t *testing.T) {
	s := newTestService(t, []*domain.Vehicle{
		parked("TODAY1", 1, now.Add(-2*time.Hour)),
		parked("YDAY11", 2, now.Add(-26*time.Hour)),
		checkedOut("TODAY2", 3, now.Add(-5*time.Hour), now.Add(-1*time.Hour)),
	})

	got := s.TodayVehicles(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, "TODAY1", got[0].Number)
	assert.Equal(t, "TODAY2", got[1].Number)
}

func TestRecentEntries(t *testing.T) {
	s := newTestService(t, []*domain.Vehicle{
		parked("FIRST1", 1, now.Add(-3*time.Hour)),
		parked("THIRD3", 2, now.Add(-1*time.Hour)),
		parked("SECOND2", 3, now.Add(-2*time.Hour)),
	})

	got := s.RecentEntries(context.Background(), 2)

	require.Len(t, got, 2)
	assert.Equal(t, "THIRD3", got[0].Number)
	assert.Equal(t, "SECOND2", got[1].Number)

	assert.Len(t, s.RecentEntries(context.Background(), 10), 3)
	assert.Empty(t, s.RecentEntries(context.Background(), 0))
	assert.Empty(t, s.RecentEntries(context.Background(), -1))
}

func TestFeeFor(t *testing.T) {
	s := newTestService(t, []*domain.Vehicle{
		// Checked out after 3h: actual fee 15.
		checkedOut("GONE99", 1, now.Add(-4*time.Hour), now.Add(-1*time.Hour)),
		// Still parked for 2h: estimate 10.
		parked("HERE11", 2, now.Add(-2*time.Hour)),
	})

	actual, err := s.FeeFor(context.Background(), "GONE99")
	require.NoError(t, err)
	assert.InDelta(t, 15.0, actual, 1e-9)

	estimate, err := s.FeeFor(context.Background(), "HERE11")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, estimate, 1e-9)

	_, err = s.FeeFor(context.Background(), "MISSING1")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestEarnings(t *testing.T) {
	s := newTestService(t, []*domain.Vehicle{
		// Checked out today after 2h: fee 10.
		checkedOut("TODAY1", 1, now.Add(-3*time.Hour), now.Add(-1*time.Hour)),
		// Checked out yesterday after 1h: fee 5.
		checkedOut("YDAY11", 2, now.Add(-27*time.Hour), now.Add(-26*time.Hour)),
		// Still parked: contributes nothing.
		parked("HERE11", 3, now.Add(-2*time.Hour)),
	})

	assert.InDelta(t, 10.0, s.TodayEarnings(context.Background()), 1e-9)
	assert.InDelta(t, 15.0, s.TotalEarnings(context.Background()), 1e-9)
}

func TestEarningsBreakdown(t *testing.T) {
	s := newTestService(t, []*domain.Vehicle{
		checkedOut("TODAY1", 1, now.Add(-3*time.Hour), now.Add(-1*time.Hour)),
		checkedOut("YDAY11", 2, now.Add(-27*time.Hour), now.Add(-26*time.Hour)),
		parked("HERE11", 3, now.Add(-2*time.Hour)),
	})

	full := s.EarningsBreakdown(context.Background(), false)
	require.Len(t, full.Entries, 2)
	// Ledger order is preserved, not sorted.
	assert.Equal(t, "TODAY1", full.Entries[0].Vehicle.Number)
	assert.Equal(t, "YDAY11", full.Entries[1].Vehicle.Number)
	assert.InDelta(t, 15.0, full.Total, 1e-9)

	today := s.EarningsBreakdown(context.Background(), true)
	require.Len(t, today.Entries, 1)
	assert.Equal(t, "TODAY1", today.Entries[0].Vehicle.Number)
	assert.InDelta(t, 10.0, today.Total, 1e-9)
}
