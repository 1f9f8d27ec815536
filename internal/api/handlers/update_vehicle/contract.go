package update_vehicle

import (
	"context"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

type VehicleService interface {
	Update(ctx context.Context, role domain.Role, vehicleNumber string, updated *domain.Vehicle) error
	ByNumber(ctx context.Context, vehicleNumber string) (*domain.Vehicle, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
