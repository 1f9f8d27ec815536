package admit_vehicle

import "errors"

var (
	// ErrInvalidVehicleNumber is returned when the vehicle number fails the format check.
	ErrInvalidVehicleNumber = errors.New("admit_vehicle: invalid vehicle number")

	// ErrInvalidVehicleType is returned for an unknown vehicle type.
	ErrInvalidVehicleType = errors.New("admit_vehicle: invalid vehicle type")

	// ErrInvalidSlotNumber is returned for a non-positive slot number.
	ErrInvalidSlotNumber = errors.New("admit_vehicle: invalid slot number")

	// ErrDuplicateVehicle is returned when an active vehicle with the same number exists.
	ErrDuplicateVehicle = errors.New("admit_vehicle: duplicate active vehicle number")

	// ErrSlotNotFound is returned when the slot number is outside the lot.
	ErrSlotNotFound = errors.New("admit_vehicle: slot not found")

	// ErrSlotOccupied is returned when the requested slot is already taken.
	ErrSlotOccupied = errors.New("admit_vehicle: slot already occupied")

	// ErrInternal is returned for internal errors.
	ErrInternal = errors.New("admit_vehicle: internal error")
)
