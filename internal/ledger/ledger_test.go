package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkms/PMS-ParkingService/internal/domain"
	"github.com/parkms/PMS-ParkingService/internal/fees"
	"github.com/parkms/PMS-ParkingService/internal/slots"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestLedger(t *testing.T, totalSlots int) *Ledger {
	t.Helper()
	return New(slots.NewRegistry(totalSlots), fees.DefaultPolicy())
}

func activeVehicle(number string, slot int, entry time.Time) *domain.Vehicle {
	return &domain.Vehicle{
		Number:     number,
		Type:       domain.TypeCar,
		SlotNumber: slot,
		EntryTime:  entry,
		Status:     domain.StatusActive,
	}
}

func TestAdmit(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, l.Admit(activeVehicle("KA01AB1234", 2, entry)))

	assert.True(t, l.IsSlotOccupied(2))
	assert.Len(t, l.Active(), 1)

	got, err := l.ByNumber("KA01AB1234")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Nil(t, got.ExitTime)
}

func TestAdmitNilVehicle(t *testing.T) {
	l := newTestLedger(t, 5)
	assert.ErrorIs(t, l.Admit(nil), ErrNilVehicle)
}

func TestAdmitDuplicateActiveNumber(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, l.Admit(activeVehicle("ka01ab1234", 1, entry)))

	// Same number in a different case is still a duplicate.
	err := l.Admit(activeVehicle("KA01AB1234", 2, entry))
	assert.ErrorIs(t, err, ErrDuplicateVehicle)
	assert.Len(t, l.All(), 1)
	assert.False(t, l.IsSlotOccupied(2))
}

func TestAdmitOccupiedSlotLeavesStateUnchanged(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, l.Admit(activeVehicle("AAA111", 3, entry)))

	err := l.Admit(activeVehicle("BBB222", 3, entry))

	assert.ErrorIs(t, err, ErrSlotOccupied)
	assert.Len(t, l.All(), 1)
	assert.Equal(t, 1, l.OccupiedSlots())
}

func TestAdmitUnknownSlot(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, l.Admit(activeVehicle("AAA111", 6, entry)), ErrSlotNotFound)
	assert.Empty(t, l.All())
}

func TestAdmitCheckedOutRecordDoesNotOccupySlot(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)
	exit := entry.Add(2 * time.Hour)

	v := &domain.Vehicle{
		Number:     "OLD777",
		Type:       domain.TypeVan,
		SlotNumber: 4,
		EntryTime:  entry,
		ExitTime:   &exit,
		Status:     domain.StatusCheckedOut,
	}
	require.NoError(t, l.Admit(v))

	assert.False(t, l.IsSlotOccupied(4))
	assert.Empty(t, l.Active())
	assert.Len(t, l.All(), 1)
}

func TestCheckout(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	l.timeProvider = &fixedTimeProvider{now: entry.Add(3 * time.Hour)}

	require.NoError(t, l.Admit(activeVehicle("KA01AB1234", 2, entry)))

	v, fee, err := l.Checkout("KA01AB1234")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCheckedOut, v.Status)
	require.NotNil(t, v.ExitTime)
	assert.Equal(t, entry.Add(3*time.Hour), *v.ExitTime)
	assert.InDelta(t, 15.0, fee, 1e-9)
	assert.False(t, l.IsSlotOccupied(2))

	// A second checkout of the same vehicle fails.
	_, _, err = l.Checkout("KA01AB1234")
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestCheckoutUnknownVehicle(t *testing.T) {
	l := newTestLedger(t, 5)
	_, _, err := l.Checkout("NOPE42")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestDelete(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, l.Admit(activeVehicle("AAA111", 1, entry)))

	require.NoError(t, l.Delete("AAA111"))

	assert.Empty(t, l.All())
	assert.False(t, l.IsSlotOccupied(1))
}

func TestDeleteUnknownVehicleLeavesLedgerUnchanged(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, l.Admit(activeVehicle("AAA111", 1, entry)))

	assert.ErrorIs(t, l.Delete("MISSING1"), ErrVehicleNotFound)
	assert.Len(t, l.All(), 1)
	assert.True(t, l.IsSlotOccupied(1))
}

func TestUpdateSlotReassignment(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, l.Admit(activeVehicle("AAA111", 1, entry)))

	updated := activeVehicle("AAA111", 3, entry)
	require.NoError(t, l.Update("AAA111", updated))

	assert.False(t, l.IsSlotOccupied(1))
	assert.True(t, l.IsSlotOccupied(3))

	got, err := l.ByNumber("AAA111")
	require.NoError(t, err)
	assert.Equal(t, 3, got.SlotNumber)
}

func TestUpdateToOccupiedSlotIsAtomic(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, l.Admit(activeVehicle("AAA111", 1, entry)))
	require.NoError(t, l.Admit(activeVehicle("BBB222", 2, entry)))

	err := l.Update("AAA111", activeVehicle("AAA111", 2, entry))
	assert.ErrorIs(t, err, ErrSlotOccupied)

	// The failed update must not have freed the old slot.
	assert.True(t, l.IsSlotOccupied(1))
	assert.True(t, l.IsSlotOccupied(2))

	got, err := l.ByNumber("AAA111")
	require.NoError(t, err)
	assert.Equal(t, 1, got.SlotNumber)
}

func TestUpdateKeepingOwnSlot(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, l.Admit(activeVehicle("AAA111", 1, entry)))

	// Changing the type while keeping the slot must not trip the
	// occupied-slot check against the record itself.
	updated := activeVehicle("AAA111", 1, entry)
	updated.Type = domain.TypeVan
	require.NoError(t, l.Update("AAA111", updated))

	got, err := l.ByNumber("AAA111")
	require.NoError(t, err)
	assert.Equal(t, domain.TypeVan, got.Type)
	assert.True(t, l.IsSlotOccupied(1))
}

func TestUpdateUnknownVehicle(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	err := l.Update("MISSING1", activeVehicle("MISSING1", 1, entry))
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestIsDuplicate(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, l.Admit(activeVehicle("abc123", 1, entry)))

	assert.True(t, l.IsDuplicate("ABC123"))
	assert.True(t, l.IsDuplicate("abc123"))
	assert.False(t, l.IsDuplicate("ABC123", "abc123"))
	assert.False(t, l.IsDuplicate("XYZ999"))
}

func TestIsDuplicateSeesCheckedOutRecords(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	l.timeProvider = &fixedTimeProvider{now: entry.Add(time.Hour)}

	require.NoError(t, l.Admit(activeVehicle("abc123", 1, entry)))
	_, _, err := l.Checkout("abc123")
	require.NoError(t, err)

	// The duplicate check spans both statuses, unlike admission.
	assert.True(t, l.IsDuplicate("ABC123"))
}

func TestRestoreRebuildsOccupancy(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	exit := entry.Add(time.Hour)

	l.Restore([]*domain.Vehicle{
		activeVehicle("AAA111", 2, entry),
		{
			Number:     "BBB222",
			Type:       domain.TypeBike,
			SlotNumber: 3,
			EntryTime:  entry,
			ExitTime:   &exit,
			Status:     domain.StatusCheckedOut,
		},
	})

	assert.Len(t, l.All(), 2)
	assert.True(t, l.IsSlotOccupied(2))
	assert.False(t, l.IsSlotOccupied(3))
	assert.Equal(t, []int{1, 3, 4, 5}, l.AvailableSlotNumbers())
}

func TestSnapshotsAreCopies(t *testing.T) {
	l := newTestLedger(t, 5)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, l.Admit(activeVehicle("AAA111", 1, entry)))

	all := l.All()
	all[0].SlotNumber = 99

	got, err := l.ByNumber("AAA111")
	require.NoError(t, err)
	assert.Equal(t, 1, got.SlotNumber)
}
