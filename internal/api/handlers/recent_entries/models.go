package recent_entries

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

// RecentEntriesResponse HTTP response model
type RecentEntriesResponse struct {
	Vehicles []*VehicleResponse `json:"vehicles"`
	Count    int                `json:"count"`
}

// FromDomainList converts vehicle records into the HTTP response.
func FromDomainList(records []*domain.Vehicle) *RecentEntriesResponse {
	vehicles := make([]*VehicleResponse, 0, len(records))
	for _, v := range records {
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
		vehicles = append(vehicles, resp)
	}

	return &RecentEntriesResponse{
		Vehicles: vehicles,
		Count:    len(vehicles),
	}
}
