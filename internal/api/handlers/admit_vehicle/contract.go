package admit_vehicle

import (
	"context"

	admitVehicle "github.com/parkms/PMS-ParkingService/internal/usecase/admit_vehicle"
)

type AdmitVehicleUseCase interface {
	Execute(ctx context.Context, req *admitVehicle.Request) (*admitVehicle.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
