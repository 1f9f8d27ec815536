package admit_vehicle

import "time"

// Request carries the admission parameters.
type Request struct {
	VehicleNumber string
	VehicleType   string
	SlotNumber    int
	// EntryTime is optional; when nil the current time is stamped.
	EntryTime *time.Time
}

// Response describes the admitted vehicle.
type Response struct {
	VehicleNumber string
	VehicleType   string
	SlotNumber    int
	EntryTime     time.Time
	Status        string
}
