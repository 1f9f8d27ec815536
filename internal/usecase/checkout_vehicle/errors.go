package checkout_vehicle

import "errors"

var (
	// ErrVehicleNotFound is returned when no record matches the vehicle number.
	ErrVehicleNotFound = errors.New("checkout_vehicle: vehicle not found")

	// ErrAlreadyCheckedOut is returned when the vehicle has already left.
	ErrAlreadyCheckedOut = errors.New("checkout_vehicle: vehicle already checked out")

	// ErrInternal is returned for internal errors.
	ErrInternal = errors.New("checkout_vehicle: internal error")
)
