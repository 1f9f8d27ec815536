package today_vehicles

import (
	"context"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

type ReportService interface {
	TodayVehicles(ctx context.Context) []*domain.Vehicle
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
