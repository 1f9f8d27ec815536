package checkout_vehicle

import (
	"github.com/parkms/PMS-ParkingService/internal/domain"
	checkoutVehicle "github.com/parkms/PMS-ParkingService/internal/usecase/checkout_vehicle"
)

// CheckoutVehicleResponse HTTP response model
type CheckoutVehicleResponse struct {
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleType   string  `json:"vehicleType"`
	SlotNumber    int     `json:"slotNumber"`
	EntryTime     string  `json:"entryTime"`
	ExitTime      string  `json:"exitTime"`
	HoursParked   float64 `json:"hoursParked"`
	Fee           float64 `json:"fee"`
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *checkoutVehicle.Response) *CheckoutVehicleResponse {
	return &CheckoutVehicleResponse{
		VehicleNumber: resp.VehicleNumber,
		VehicleType:   resp.VehicleType,
		SlotNumber:    resp.SlotNumber,
		EntryTime:     resp.EntryTime.Format(domain.TimeFormat),
		ExitTime:      resp.ExitTime.Format(domain.TimeFormat),
		HoursParked:   resp.HoursParked,
		Fee:           resp.Fee,
	}
}
