package checkout_vehicle

import "time"

// Request identifies the vehicle to check out.
type Request struct {
	VehicleNumber string
}

// Response describes the completed checkout and the resulting bill.
type Response struct {
	VehicleNumber string
	VehicleType   string
	SlotNumber    int
	EntryTime     time.Time
	ExitTime      time.Time
	HoursParked   float64
	Fee           float64
}
