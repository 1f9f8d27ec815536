package ledger

import (
	"sync"
	"time"

	"github.com/parkms/PMS-ParkingService/internal/domain"
	"github.com/parkms/PMS-ParkingService/internal/slots"
)

// Ledger owns the vehicle collection and the slot occupancy flags.
// Every operation that spans a read-check-then-write sequence holds the
// mutex as a unit, so the ledger is safe to share across HTTP handlers.
//
// Invariants maintained:
//   - no two active vehicles share a number (case-insensitive)
//   - no two active vehicles share a slot
//   - a slot is occupied exactly when one active vehicle references it
//   - a vehicle has an exit time exactly when it is checked out
type Ledger struct {
	mu           sync.Mutex
	vehicles     []*domain.Vehicle
	slots        *slots.Registry
	fees         FeePolicy
	timeProvider TimeProvider
}

// New creates an empty ledger over the given slot registry and fee policy.
func New(registry *slots.Registry, policy FeePolicy) *Ledger {
	return &Ledger{
		slots:        registry,
		fees:         policy,
		timeProvider: &RealTimeProvider{},
	}
}

// Admit adds a vehicle record to the ledger.
// Fails when the record is nil, the target slot is unknown or occupied,
// or an active vehicle with the same number already exists. The slot is
// marked occupied only for active admissions; checked-out records (e.g.
// imported history) never occupy a slot.
func (l *Ledger) Admit(v *domain.Vehicle) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v == nil {
		return ErrNilVehicle
	}

	slot := l.slots.ByNumber(v.SlotNumber)
	if slot == nil {
		return ErrSlotNotFound
	}
	if slot.Occupied {
		return ErrSlotOccupied
	}
	if v.IsActive() && l.findActiveLocked(v.Number) != nil {
		return ErrDuplicateVehicle
	}

	l.vehicles = append(l.vehicles, v.Clone())
	if v.IsActive() {
		slot.Occupied = true
	}
	return nil
}

// Update replaces the record matching vehicleNumber with the supplied one.
// Replacement is positional, not a merge: the caller provides the complete
// new record. Slot reassignment is atomic: when the target slot is unknown
// or occupied the update fails and the old slot stays occupied.
func (l *Ledger) Update(vehicleNumber string, updated *domain.Vehicle) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if updated == nil {
		return ErrNilVehicle
	}

	idx := l.indexOfLocked(vehicleNumber)
	if idx < 0 {
		return ErrVehicleNotFound
	}
	current := l.vehicles[idx]

	target := l.slots.ByNumber(updated.SlotNumber)
	if target == nil {
		return ErrSlotNotFound
	}

	// The target slot must be free unless this record already holds it.
	holdsTarget := current.IsActive() && current.SlotNumber == updated.SlotNumber
	if updated.IsActive() && target.Occupied && !holdsTarget {
		return ErrSlotOccupied
	}

	if current.IsActive() {
		l.slots.SetOccupied(current.SlotNumber, false)
	}
	if updated.IsActive() {
		target.Occupied = true
	}
	l.vehicles[idx] = updated.Clone()
	return nil
}

// Delete removes the record matching vehicleNumber, freeing its slot when
// the record is still active.
func (l *Ledger) Delete(vehicleNumber string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOfLocked(vehicleNumber)
	if idx < 0 {
		return ErrVehicleNotFound
	}

	v := l.vehicles[idx]
	if v.IsActive() {
		l.slots.SetOccupied(v.SlotNumber, false)
	}
	l.vehicles = append(l.vehicles[:idx], l.vehicles[idx+1:]...)
	return nil
}

// Checkout stamps the exit time, flips the record to checked out, frees
// its slot and returns the computed fee. The record itself stays in the
// ledger for reporting.
func (l *Ledger) Checkout(vehicleNumber string) (*domain.Vehicle, float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOfLocked(vehicleNumber)
	if idx < 0 {
		return nil, 0, ErrVehicleNotFound
	}

	v := l.vehicles[idx]
	if v.IsCheckedOut() {
		return nil, 0, ErrAlreadyCheckedOut
	}

	// Second precision matches the persisted time format, so a record
	// survives a save/load round trip unchanged.
	exit := l.timeProvider.Now().Truncate(time.Second)
	v.ExitTime = &exit
	v.Status = domain.StatusCheckedOut
	l.slots.SetOccupied(v.SlotNumber, false)

	fee := l.fees.Fee(v.EntryTime, exit)
	return v.Clone(), fee, nil
}

// ByNumber returns a copy of the record matching vehicleNumber.
func (l *Ledger) ByNumber(vehicleNumber string) (*domain.Vehicle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOfLocked(vehicleNumber)
	if idx < 0 {
		return nil, ErrVehicleNotFound
	}
	return l.vehicles[idx].Clone(), nil
}

// All returns a snapshot copy of every record in ledger order.
func (l *Ledger) All() []*domain.Vehicle {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*domain.Vehicle, len(l.vehicles))
	for i, v := range l.vehicles {
		out[i] = v.Clone()
	}
	return out
}

// Active returns a snapshot copy of the currently parked vehicles.
func (l *Ledger) Active() []*domain.Vehicle {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*domain.Vehicle, 0, len(l.vehicles))
	for _, v := range l.vehicles {
		if v.IsActive() {
			out = append(out, v.Clone())
		}
	}
	return out
}

// IsDuplicate reports whether a record with the given number exists,
// comparing case-insensitively across both statuses. Numbers listed in
// excluding are skipped, so an edited record does not collide with itself.
func (l *Ledger) IsDuplicate(vehicleNumber string, excluding ...string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, v := range l.vehicles {
		if !v.SameNumber(vehicleNumber) {
			continue
		}
		excluded := false
		for _, ex := range excluding {
			if v.SameNumber(ex) {
				excluded = true
				break
			}
		}
		if !excluded {
			return true
		}
	}
	return false
}

// Restore replaces the ledger contents with records loaded from the store.
// Occupancy is rebuilt from scratch: only active records occupy their slot,
// and records pointing at unknown slots are kept without occupying anything.
func (l *Ledger) Restore(vehicles []*domain.Vehicle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.slots.Reset()
	l.vehicles = make([]*domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v == nil {
			continue
		}
		l.vehicles = append(l.vehicles, v.Clone())
		if v.IsActive() {
			l.slots.SetOccupied(v.SlotNumber, true)
		}
	}
}

// TotalSlots returns the configured lot size.
func (l *Ledger) TotalSlots() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.slots.Total()
}

// OccupiedSlots returns the number of occupied slots.
func (l *Ledger) OccupiedSlots() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.slots.CountOccupied()
}

// AvailableSlots returns the number of free slots.
func (l *Ledger) AvailableSlots() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.slots.CountAvailable()
}

// AvailableSlotNumbers returns the free slot numbers in ascending order.
func (l *Ledger) AvailableSlotNumbers() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.slots.AvailableNumbers()
}

// IsSlotOccupied reports whether the slot exists and is occupied.
func (l *Ledger) IsSlotOccupied(number int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.slots.IsOccupied(number)
}

// indexOfLocked returns the position of the record matching vehicleNumber,
// or -1. Matching ignores case, consistent with the uniqueness rule.
// Callers must hold the mutex.
func (l *Ledger) indexOfLocked(vehicleNumber string) int {
	for i, v := range l.vehicles {
		if v.SameNumber(vehicleNumber) {
			return i
		}
	}
	return -1
}

// findActiveLocked returns the active record matching vehicleNumber, or nil.
// Callers must hold the mutex.
func (l *Ledger) findActiveLocked(vehicleNumber string) *domain.Vehicle {
	for _, v := range l.vehicles {
		if v.IsActive() && v.SameNumber(vehicleNumber) {
			return v
		}
	}
	return nil
}
