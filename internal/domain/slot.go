package domain

// Slot represents a single numbered parking slot.
// Occupancy is owned by the vehicle ledger: the flag is true exactly when
// one active vehicle references the slot.
type Slot struct {
	Number   int
	Occupied bool
}

// IsFree returns true if no active vehicle occupies the slot.
func (s *Slot) IsFree() bool {
	return !s.Occupied
}
