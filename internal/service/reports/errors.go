package reports

import "errors"

var (
	// ErrVehicleNotFound is returned when no record matches the vehicle number.
	ErrVehicleNotFound = errors.New("reports.service: vehicle not found")
)
