package vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkms/PMS-ParkingService/internal/domain"
	"github.com/parkms/PMS-ParkingService/internal/ledger"
)

// Service coordinates vehicle record maintenance: updates and deletions
// (both Admin-only), lookups and slot statistics. Every successful
// mutation is followed by a full save of the ledger; a failed save is
// logged but does not undo the in-memory change.
type Service struct {
	ledger VehicleLedger
	store  VehicleStore
	logger Logger
}

// NewService creates a vehicle maintenance service.
func NewService(vehicleLedger VehicleLedger, store VehicleStore, logger Logger) *Service {
	return &Service{
		ledger: vehicleLedger,
		store:  store,
		logger: logger,
	}
}

// Update replaces the record matching vehicleNumber with the supplied one.
// The caller's role must permit editing; the new record is validated
// before it reaches the ledger.
func (s *Service) Update(ctx context.Context, role domain.Role, vehicleNumber string, updated *domain.Vehicle) error {
	s.logger.Info("Update: vehicle=%s role=%s", vehicleNumber, role)

	if !role.CanEdit() {
		s.logger.Warn("Update: role=%s denied for vehicle=%s", role, vehicleNumber)
		return ErrPermissionDenied
	}
	if err := validateRecord(updated); err != nil {
		s.logger.Warn("Update: invalid record for vehicle=%s: %v", vehicleNumber, err)
		return err
	}

	// The replacement may rename the vehicle; it must not collide with
	// any other record.
	if !updated.SameNumber(vehicleNumber) && s.ledger.IsDuplicate(updated.Number, vehicleNumber) {
		s.logger.Warn("Update: new number %s already exists", updated.Number)
		return ErrDuplicateVehicle
	}

	if err := s.ledger.Update(vehicleNumber, updated); err != nil {
		return s.mapLedgerError("Update", vehicleNumber, err)
	}

	s.persistAfter("Update")
	s.logger.Info("Update: vehicle=%s updated, slot=%d", updated.Number, updated.SlotNumber)
	return nil
}

// Delete removes the record matching vehicleNumber and frees its slot.
// The caller's role must permit deletion.
func (s *Service) Delete(ctx context.Context, role domain.Role, vehicleNumber string) error {
	s.logger.Info("Delete: vehicle=%s role=%s", vehicleNumber, role)

	if !role.CanDelete() {
		s.logger.Warn("Delete: role=%s denied for vehicle=%s", role, vehicleNumber)
		return ErrPermissionDenied
	}

	if err := s.ledger.Delete(vehicleNumber); err != nil {
		return s.mapLedgerError("Delete", vehicleNumber, err)
	}

	s.persistAfter("Delete")
	s.logger.Info("Delete: vehicle=%s removed", vehicleNumber)
	return nil
}

// ByNumber returns the record matching vehicleNumber.
func (s *Service) ByNumber(ctx context.Context, vehicleNumber string) (*domain.Vehicle, error) {
	v, err := s.ledger.ByNumber(vehicleNumber)
	if err != nil {
		if errors.Is(err, ledger.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("%w: ByNumber - ledger error: %v", ErrInternal, err)
	}
	return v, nil
}

// List returns all records, or only the active ones.
func (s *Service) List(ctx context.Context, onlyActive bool) []*domain.Vehicle {
	if onlyActive {
		return s.ledger.Active()
	}
	return s.ledger.All()
}

// IsDuplicate reports whether the number is already taken, optionally
// excluding the record being edited.
func (s *Service) IsDuplicate(ctx context.Context, vehicleNumber string, excluding ...string) bool {
	return s.ledger.IsDuplicate(vehicleNumber, excluding...)
}

// LotStatus describes the current slot occupancy.
type LotStatus struct {
	TotalSlots       int
	OccupiedSlots    int
	AvailableSlots   int
	AvailableNumbers []int
}

// Status returns the current slot occupancy counts and free slot numbers.
func (s *Service) Status(ctx context.Context) LotStatus {
	return LotStatus{
		TotalSlots:       s.ledger.TotalSlots(),
		OccupiedSlots:    s.ledger.OccupiedSlots(),
		AvailableSlots:   s.ledger.AvailableSlots(),
		AvailableNumbers: s.ledger.AvailableSlotNumbers(),
	}
}

// SaveAll persists the current ledger contents to the store.
func (s *Service) SaveAll(ctx context.Context) error {
	if err := s.store.Save(s.ledger.All()); err != nil {
		s.logger.Error("SaveAll: store error: %v", err)
		return fmt.Errorf("%w: SaveAll - store error: %v", ErrInternal, err)
	}
	s.logger.Info("SaveAll: ledger persisted")
	return nil
}

// persistAfter saves the ledger after a successful mutation. The ledger
// keeps operating in memory when the save fails; the failure is only
// logged.
func (s *Service) persistAfter(op string) {
	if err := s.store.Save(s.ledger.All()); err != nil {
		s.logger.Error("%s: failed to persist ledger: %v", op, err)
	}
}

// mapLedgerError translates ledger sentinels into service sentinels.
func (s *Service) mapLedgerError(op, vehicleNumber string, err error) error {
	switch {
	case errors.Is(err, ledger.ErrVehicleNotFound):
		s.logger.Warn("%s: vehicle=%s not found", op, vehicleNumber)
		return ErrVehicleNotFound
	case errors.Is(err, ledger.ErrSlotNotFound):
		s.logger.Warn("%s: vehicle=%s target slot not found", op, vehicleNumber)
		return ErrSlotNotFound
	case errors.Is(err, ledger.ErrSlotOccupied):
		s.logger.Warn("%s: vehicle=%s target slot occupied", op, vehicleNumber)
		return ErrSlotOccupied
	case errors.Is(err, ledger.ErrDuplicateVehicle):
		s.logger.Warn("%s: vehicle=%s duplicate number", op, vehicleNumber)
		return ErrDuplicateVehicle
	case errors.Is(err, ledger.ErrNilVehicle):
		return ErrInvalidInput
	default:
		s.logger.Error("%s: vehicle=%s ledger error: %v", op, vehicleNumber, err)
		return fmt.Errorf("%w: %s - ledger error: %v", ErrInternal, op, err)
	}
}

// validateRecord checks a complete replacement record.
func validateRecord(v *domain.Vehicle) error {
	if v == nil {
		return fmt.Errorf("%w: vehicle is required", ErrInvalidInput)
	}
	if !domain.IsValidVehicleNumber(v.Number) {
		return fmt.Errorf("%w: invalid vehicle number", ErrInvalidInput)
	}
	if err := v.Type.Validate(); err != nil {
		return fmt.Errorf("%w: invalid vehicle type", ErrInvalidInput)
	}
	if v.SlotNumber <= 0 {
		return fmt.Errorf("%w: slot number must be positive", ErrInvalidInput)
	}
	if err := v.Status.Validate(); err != nil {
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if v.EntryTime.IsZero() {
		return fmt.Errorf("%w: entry time is required", ErrInvalidInput)
	}
	if v.IsCheckedOut() != (v.ExitTime != nil) {
		return fmt.Errorf("%w: exit time must be set exactly when checked out", ErrInvalidInput)
	}
	return nil
}
