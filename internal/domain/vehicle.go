package domain

import (
	"errors"
	"strings"
	"time"
)

// VehicleStatus represents the parking status of a vehicle.
// The underlying values match the tokens used in the persisted data file.
type VehicleStatus string

const (
	// StatusActive marks a vehicle that is currently parked.
	StatusActive VehicleStatus = "IN"
	// StatusCheckedOut marks a vehicle that has left and been billed.
	StatusCheckedOut VehicleStatus = "OUT"
)

// ErrUnknownStatus is returned when a string cannot be parsed as a vehicle status.
var ErrUnknownStatus = errors.New("unknown vehicle status")

// Validate returns nil if the status is one of the known values.
func (s VehicleStatus) Validate() error {
	switch s {
	case StatusActive, StatusCheckedOut:
		return nil
	default:
		return ErrUnknownStatus
	}
}

// ParseVehicleStatus parses the persisted status token.
func ParseVehicleStatus(s string) (VehicleStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(StatusActive):
		return StatusActive, nil
	case string(StatusCheckedOut):
		return StatusCheckedOut, nil
	default:
		return "", ErrUnknownStatus
	}
}

// VehicleType represents the category of a parked vehicle.
type VehicleType string

const (
	TypeCar  VehicleType = "Car"
	TypeBike VehicleType = "Bike"
	TypeVan  VehicleType = "Van"
)

// ErrUnknownVehicleType is returned when a string cannot be parsed as a vehicle type.
var ErrUnknownVehicleType = errors.New("unknown vehicle type")

// Validate returns nil if the type is one of the known values.
func (t VehicleType) Validate() error {
	switch t {
	case TypeCar, TypeBike, TypeVan:
		return nil
	default:
		return ErrUnknownVehicleType
	}
}

// ParseVehicleType parses a vehicle type, accepting any letter casing.
func ParseVehicleType(s string) (VehicleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "car":
		return TypeCar, nil
	case "bike":
		return TypeBike, nil
	case "van":
		return TypeVan, nil
	default:
		return "", ErrUnknownVehicleType
	}
}

// Vehicle represents a vehicle record in the parking ledger.
// Number is the identifier; it is unique (case-insensitively) among
// active vehicles. ExitTime is set exactly when Status is StatusCheckedOut.
type Vehicle struct {
	Number     string
	Type       VehicleType
	SlotNumber int
	EntryTime  time.Time
	ExitTime   *time.Time
	Status     VehicleStatus
}

// IsActive returns true if the vehicle is currently parked.
func (v *Vehicle) IsActive() bool {
	return v.Status == StatusActive
}

// IsCheckedOut returns true if the vehicle has been checked out.
func (v *Vehicle) IsCheckedOut() bool {
	return v.Status == StatusCheckedOut
}

// SameNumber reports whether the given identifier refers to this vehicle,
// ignoring letter case and surrounding whitespace.
func (v *Vehicle) SameNumber(number string) bool {
	return strings.EqualFold(strings.TrimSpace(v.Number), strings.TrimSpace(number))
}

// Clone returns an independent copy of the vehicle record.
func (v *Vehicle) Clone() *Vehicle {
	if v == nil {
		return nil
	}
	c := *v
	if v.ExitTime != nil {
		exit := *v.ExitTime
		c.ExitTime = &exit
	}
	return &c
}
