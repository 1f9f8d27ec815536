package get_vehicle

import (
	"context"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

type VehicleService interface {
	ByNumber(ctx context.Context, vehicleNumber string) (*domain.Vehicle, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
