package get_fee

import (
	"context"
)

type ReportService interface {
	FeeFor(ctx context.Context, vehicleNumber string) (float64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
