package admit_vehicle

import (
	"fmt"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

// validateRequest checks the admission parameters before they touch the
// ledger. The vehicle type is parsed leniently (any letter casing) and
// returned in its canonical form.
func validateRequest(req *Request) (domain.VehicleType, error) {
	if req == nil {
		return "", fmt.Errorf("%w: request is required", ErrInternal)
	}

	if !domain.IsValidVehicleNumber(req.VehicleNumber) {
		return "", fmt.Errorf("%w: must be %d-%d alphanumeric characters",
			ErrInvalidVehicleNumber, domain.MinVehicleNumberLength, domain.MaxVehicleNumberLength)
	}

	vType, err := domain.ParseVehicleType(req.VehicleType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidVehicleType, req.VehicleType)
	}

	if req.SlotNumber <= 0 {
		return "", fmt.Errorf("%w: must be positive", ErrInvalidSlotNumber)
	}

	return vType, nil
}
