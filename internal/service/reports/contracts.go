package reports

import (
	"time"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

// VehicleLedger is the read side of the ledger the reports aggregate over.
type VehicleLedger interface {
	ByNumber(vehicleNumber string) (*domain.Vehicle, error)
	All() []*domain.Vehicle
}

// FeePolicy computes parking fees from entry/exit timestamps.
type FeePolicy interface {
	Fee(entry, exit time.Time) float64
}

// TimeProvider supplies "now" for today-filters and fee estimates.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
