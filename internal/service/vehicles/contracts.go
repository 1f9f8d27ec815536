package vehicles

import (
	"github.com/parkms/PMS-ParkingService/internal/domain"
)

// VehicleLedger is the in-memory ledger the service mutates.
type VehicleLedger interface {
	Update(vehicleNumber string, updated *domain.Vehicle) error
	Delete(vehicleNumber string) error
	ByNumber(vehicleNumber string) (*domain.Vehicle, error)
	All() []*domain.Vehicle
	Active() []*domain.Vehicle
	IsDuplicate(vehicleNumber string, excluding ...string) bool
	TotalSlots() int
	OccupiedSlots() int
	AvailableSlots() int
	AvailableSlotNumbers() []int
}

// VehicleStore persists the ledger contents.
type VehicleStore interface {
	Save(vehicles []*domain.Vehicle) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
