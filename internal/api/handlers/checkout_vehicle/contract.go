package checkout_vehicle

import (
	"context"

	checkoutVehicle "github.com/parkms/PMS-ParkingService/internal/usecase/checkout_vehicle"
)

type CheckoutVehicleUseCase interface {
	Execute(ctx context.Context, req *checkoutVehicle.Request) (*checkoutVehicle.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
