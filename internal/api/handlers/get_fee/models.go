package get_fee

// FeeResponse HTTP response model
type FeeResponse struct {
	VehicleNumber string  `json:"vehicleNumber"`
	Fee           float64 `json:"fee"`
}
