package delete_vehicle

import (
	"context"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

type VehicleService interface {
	Delete(ctx context.Context, role domain.Role, vehicleNumber string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
