package admit_vehicle

import (
	"time"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

// VehicleLedger is the slice of the ledger the use case needs.
type VehicleLedger interface {
	Admit(v *domain.Vehicle) error
	All() []*domain.Vehicle
	OccupiedSlots() int
	AvailableSlots() int
}

// VehicleStore persists the ledger contents.
type VehicleStore interface {
	Save(vehicles []*domain.Vehicle) error
}

// MetricsRecorder receives domain metrics for successful admissions.
// A nil recorder disables metrics collection.
type MetricsRecorder interface {
	RecordAdmission()
	SetOccupancy(occupied, available int)
}

// TimeProvider supplies the entry timestamp (swapped out in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
