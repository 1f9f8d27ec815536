package earnings_report

import (
	"context"

	"github.com/parkms/PMS-ParkingService/internal/service/reports/models"
)

type ReportService interface {
	EarningsBreakdown(ctx context.Context, todayOnly bool) models.EarningsReport
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
