package get_vehicle

import (
	"github.com/parkms/PMS-ParkingService/internal/domain"
)

// VehicleResponse HTTP response model
type VehicleResponse struct {
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleType   string  `json:"vehicleType"`
	SlotNumber    int     `json:"slotNumber"`
	EntryTime     string  `json:"entryTime"`
	ExitTime      *string `json:"exitTime,omitempty"`
	Status        string  `json:"status"`
}

// FromDomain converts a vehicle record into the HTTP response.
func FromDomain(v *domain.Vehicle) *VehicleResponse {
	resp := &VehicleResponse{
		VehicleNumber: v.Number,
		VehicleType:   string(v.Type),
		SlotNumber:    v.SlotNumber,
		EntryTime:     v.EntryTime.Format(domain.TimeFormat),
		Status:        string(v.Status),
	}
	if v.ExitTime != nil {
		formatted := v.ExitTime.Format(domain.TimeFormat)
		resp.ExitTime = &formatted
	}
	return resp
}
