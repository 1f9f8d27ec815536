package domain

import (
	"regexp"
	"strings"
)

// Default configuration values
const (
	DefaultTotalSlots = 50

	DefaultHourlyRate = 5.0
	DefaultDailyRate  = 50.0
	DefaultMinimumFee = 2.0
)

// Business validation constants
const (
	MinVehicleNumberLength = 3
	MaxVehicleNumberLength = 15
)

// Time format constants
const (
	TimeFormat = "2006-01-02 15:04:05" // matches the persisted data file
	DateFormat = "2006-01-02"          // YYYY-MM-DD
)

// vehicleNumberPattern accepts 3-15 alphanumeric characters.
var vehicleNumberPattern = regexp.MustCompile(`^[A-Za-z0-9]{3,15}$`)

// IsValidVehicleNumber reports whether the given string is an acceptable
// vehicle number: alphanumeric, between 3 and 15 characters.
func IsValidVehicleNumber(number string) bool {
	return vehicleNumberPattern.MatchString(strings.TrimSpace(number))
}
