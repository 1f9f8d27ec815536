package ledger

import "errors"

var (
	// ErrNilVehicle is returned when a nil vehicle record is supplied.
	ErrNilVehicle = errors.New("ledger: nil vehicle")

	// ErrVehicleNotFound is returned when no record matches the vehicle number.
	ErrVehicleNotFound = errors.New("ledger: vehicle not found")

	// ErrDuplicateVehicle is returned when an active vehicle with the same number already exists.
	ErrDuplicateVehicle = errors.New("ledger: duplicate active vehicle number")

	// ErrSlotNotFound is returned when the target slot number is outside the lot.
	ErrSlotNotFound = errors.New("ledger: slot not found")

	// ErrSlotOccupied is returned when the target slot is already taken.
	ErrSlotOccupied = errors.New("ledger: slot already occupied")

	// ErrAlreadyCheckedOut is returned when checking out a vehicle twice.
	ErrAlreadyCheckedOut = errors.New("ledger: vehicle already checked out")
)
