package slots

import "github.com/parkms/PMS-ParkingService/internal/domain"

// Registry holds the fixed set of parking slots, numbered 1..total.
// It is a passive data holder: all mutation is gated through the vehicle
// ledger, which also provides the locking discipline.
type Registry struct {
	slots []*domain.Slot
}

// NewRegistry creates a registry with slots numbered 1..total, all free.
// A non-positive total falls back to the default lot size.
func NewRegistry(total int) *Registry {
	if total <= 0 {
		total = domain.DefaultTotalSlots
	}
	slots := make([]*domain.Slot, total)
	for i := range slots {
		slots[i] = &domain.Slot{Number: i + 1}
	}
	return &Registry{slots: slots}
}

// ByNumber returns the slot with the given number, or nil if the number
// is outside 1..total.
func (r *Registry) ByNumber(number int) *domain.Slot {
	for _, s := range r.slots {
		if s.Number == number {
			return s
		}
	}
	return nil
}

// SetOccupied sets the occupancy flag of a slot. Returns false when the
// slot number is unknown.
func (r *Registry) SetOccupied(number int, occupied bool) bool {
	s := r.ByNumber(number)
	if s == nil {
		return false
	}
	s.Occupied = occupied
	return true
}

// IsOccupied reports whether the slot exists and is occupied.
func (r *Registry) IsOccupied(number int) bool {
	s := r.ByNumber(number)
	return s != nil && s.Occupied
}

// AvailableNumbers returns the numbers of all free slots in ascending order.
func (r *Registry) AvailableNumbers() []int {
	numbers := make([]int, 0, len(r.slots))
	for _, s := range r.slots {
		if !s.Occupied {
			numbers = append(numbers, s.Number)
		}
	}
	return numbers
}

// CountOccupied returns the number of occupied slots.
func (r *Registry) CountOccupied() int {
	count := 0
	for _, s := range r.slots {
		if s.Occupied {
			count++
		}
	}
	return count
}

// CountAvailable returns the number of free slots.
func (r *Registry) CountAvailable() int {
	return r.Total() - r.CountOccupied()
}

// Total returns the configured number of slots.
func (r *Registry) Total() int {
	return len(r.slots)
}

// Snapshot returns a copy of all slots.
func (r *Registry) Snapshot() []domain.Slot {
	out := make([]domain.Slot, len(r.slots))
	for i, s := range r.slots {
		out[i] = *s
	}
	return out
}

// Reset frees every slot. Used when reloading the ledger from the store.
func (r *Registry) Reset() {
	for _, s := range r.slots {
		s.Occupied = false
	}
}
