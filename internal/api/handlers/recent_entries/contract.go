package recent_entries

import (
	"context"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

type ReportService interface {
	RecentEntries(ctx context.Context, n int) []*domain.Vehicle
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
