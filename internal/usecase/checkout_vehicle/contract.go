package checkout_vehicle

import (
	"time"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

// VehicleLedger is the slice of the ledger the use case needs.
type VehicleLedger interface {
	Checkout(vehicleNumber string) (*domain.Vehicle, float64, error)
	All() []*domain.Vehicle
	OccupiedSlots() int
	AvailableSlots() int
}

// VehicleStore persists the ledger contents.
type VehicleStore interface {
	Save(vehicles []*domain.Vehicle) error
}

// FeeCalculator reports the parked duration for the response.
type FeeCalculator interface {
	Hours(entry, exit time.Time) float64
}

// MetricsRecorder receives domain metrics for successful checkouts.
// A nil recorder disables metrics collection.
type MetricsRecorder interface {
	RecordCheckout(fee float64)
	SetOccupancy(occupied, available int)
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
