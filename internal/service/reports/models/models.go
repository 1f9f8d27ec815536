package models

import "github.com/parkms/PMS-ParkingService/internal/domain"

// VehicleEarning pairs a checked-out vehicle with the fee it paid.
type VehicleEarning struct {
	Vehicle *domain.Vehicle
	Fee     float64
}

// EarningsReport is a per-vehicle earnings breakdown plus the total.
type EarningsReport struct {
	TodayOnly bool
	Total     float64
	Entries   []VehicleEarning
}
