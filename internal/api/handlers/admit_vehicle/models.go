package admit_vehicle

import (
	"time"

	"github.com/parkms/PMS-ParkingService/internal/domain"
	admitVehicle "github.com/parkms/PMS-ParkingService/internal/usecase/admit_vehicle"
)

// AdmitVehicleRequest HTTP request model
type AdmitVehicleRequest struct {
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleType   string  `json:"vehicleType"`
	SlotNumber    int     `json:"slotNumber"`
	EntryTime     *string `json:"entryTime,omitempty"` // "2025-03-10 09:30:00"
}

// AdmitVehicleResponse HTTP response model
type AdmitVehicleResponse struct {
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType"`
	SlotNumber    int    `json:"slotNumber"`
	EntryTime     string `json:"entryTime"`
	Status        string `json:"status"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the optional entry time.
func (r *AdmitVehicleRequest) ToUseCaseRequest() (*admitVehicle.Request, error) {
	req := &admitVehicle.Request{
		VehicleNumber: r.VehicleNumber,
		VehicleType:   r.VehicleType,
		SlotNumber:    r.SlotNumber,
	}

	if r.EntryTime != nil && *r.EntryTime != "" {
		entry, err := time.ParseInLocation(domain.TimeFormat, *r.EntryTime, time.Local)
		if err != nil {
			return nil, err
		}
		req.EntryTime = &entry
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *admitVehicle.Response) *AdmitVehicleResponse {
	return &AdmitVehicleResponse{
		VehicleNumber: resp.VehicleNumber,
		VehicleType:   resp.VehicleType,
		SlotNumber:    resp.SlotNumber,
		EntryTime:     resp.EntryTime.Format(domain.TimeFormat),
		Status:        resp.Status,
	}
}
