package update_vehicle

import (
	"time"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

// UpdateVehicleRequest HTTP request model. All fields describe the
// desired final state of the record.
type UpdateVehicleRequest struct {
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleType   string  `json:"vehicleType"`
	SlotNumber    int     `json:"slotNumber"`
	EntryTime     string  `json:"entryTime"`          // "2025-03-10 09:30:00"
	ExitTime      *string `json:"exitTime,omitempty"` // required when status is OUT
	Status        string  `json:"status"`
}

// VehicleResponse HTTP response model
type VehicleResponse struct {
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleType   string  `json:"vehicleType"`
	SlotNumber    int     `json:"slotNumber"`
	EntryTime     string  `json:"entryTime"`
	ExitTime      *string `json:"exitTime,omitempty"`
	Status        string  `json:"status"`
}

// ToDomain converts the HTTP request into a vehicle record, parsing
// the type, status and timestamps.
func (r *UpdateVehicleRequest) ToDomain() (*domain.Vehicle, error) {
	vehicleType, err := domain.ParseVehicleType(r.VehicleType)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseVehicleStatus(r.Status)
	if err != nil {
		return nil, err
	}

	entry, err := time.ParseInLocation(domain.TimeFormat, r.EntryTime, time.Local)
	if err != nil {
		return nil, err
	}

	var exit *time.Time
	if r.ExitTime != nil && *r.ExitTime != "" {
		parsed, err := time.ParseInLocation(domain.TimeFormat, *r.ExitTime, time.Local)
		if err != nil {
			return nil, err
		}
		exit = &parsed
	}

	return &domain.Vehicle{
		Number:     r.VehicleNumber,
		Type:       vehicleType,
		SlotNumber: r.SlotNumber,
		EntryTime:  entry,
		ExitTime:   exit,
		Status:     status,
	}, nil
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
