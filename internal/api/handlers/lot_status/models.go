package lot_status

import (
	"github.com/parkms/PMS-ParkingService/internal/service/vehicles"
)

// LotStatusResponse HTTP response model
type LotStatusResponse struct {
	TotalSlots       int   `json:"totalSlots"`
	OccupiedSlots    int   `json:"occupiedSlots"`
	AvailableSlots   int   `json:"availableSlots"`
	AvailableNumbers []int `json:"availableNumbers"`
}

// FromLotStatus converts the service model into the HTTP response.
func FromLotStatus(status vehicles.LotStatus) *LotStatusResponse {
	return &LotStatusResponse{
		TotalSlots:       status.TotalSlots,
		OccupiedSlots:    status.OccupiedSlots,
		AvailableSlots:   status.AvailableSlots,
		AvailableNumbers: status.AvailableNumbers,
	}
}
