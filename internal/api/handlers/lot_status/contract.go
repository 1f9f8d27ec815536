package lot_status

import (
	"context"

	"github.com/parkms/PMS-ParkingService/internal/service/vehicles"
)

type VehicleService interface {
	Status(ctx context.Context) vehicles.LotStatus
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
