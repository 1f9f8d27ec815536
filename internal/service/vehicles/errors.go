package vehicles

import "errors"

var (
	// ErrVehicleNotFound is returned when no record matches the vehicle number.
	ErrVehicleNotFound = errors.New("vehicles.service: vehicle not found")

	// ErrDuplicateVehicle is returned when an active vehicle with the same number exists.
	ErrDuplicateVehicle = errors.New("vehicles.service: duplicate vehicle number")

	// ErrSlotNotFound is returned when the target slot number is outside the lot.
	ErrSlotNotFound = errors.New("vehicles.service: slot not found")

	// ErrSlotOccupied is returned when the target slot is already taken.
	ErrSlotOccupied = errors.New("vehicles.service: slot already occupied")

	// ErrAlreadyCheckedOut is returned when the vehicle has already left.
	ErrAlreadyCheckedOut = errors.New("vehicles.service: vehicle already checked out")

	// ErrPermissionDenied is returned when the caller role may not perform the operation.
	ErrPermissionDenied = errors.New("vehicles.service: permission denied")

	// ErrInvalidInput is returned for malformed vehicle data.
	ErrInvalidInput = errors.New("vehicles.service: invalid input data")

	// ErrInternal is returned for internal service errors.
	ErrInternal = errors.New("vehicles.service: internal error")
)
