package list_vehicles

import (
	"context"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

type VehicleService interface {
	List(ctx context.Context, onlyActive bool) []*domain.Vehicle
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
