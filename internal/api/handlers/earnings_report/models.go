package earnings_report

import (
	"github.com/parkms/PMS-ParkingService/internal/domain"
	"github.com/parkms/PMS-ParkingService/internal/service/reports/models"
)

// EarningEntryResponse HTTP response model for one checked-out vehicle.
type EarningEntryResponse struct {
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleType   string  `json:"vehicleType"`
	SlotNumber    int     `json:"slotNumber"`
	EntryTime     string  `json:"entryTime"`
	ExitTime      string  `json:"exitTime"`
	Fee           float64 `json:"fee"`
}

// EarningsResponse HTTP response model
type EarningsResponse struct {
	Period  string                  `json:"period"`
	Total   float64                 `json:"total"`
	Entries []*EarningEntryResponse `json:"entries"`
}

// FromReport converts the earnings breakdown into the HTTP response.
func FromReport(report models.EarningsReport) *EarningsResponse {
	period := "all"
	if report.TodayOnly {
		period = "today"
	}

	entries := make([]*EarningEntryResponse, 0, len(report.Entries))
	for _, e := range report.Entries {
		entry := &EarningEntryResponse{
			VehicleNumber: e.Vehicle.Number,
			VehicleType:   string(e.Vehicle.Type),
			SlotNumber:    e.Vehicle.SlotNumber,
			EntryTime:     e.Vehicle.EntryTime.Format(domain.TimeFormat),
			Fee:           e.Fee,
		}
		if e.Vehicle.ExitTime != nil {
			entry.ExitTime = e.Vehicle.ExitTime.Format(domain.TimeFormat)
		}
		entries = append(entries, entry)
	}

	return &EarningsResponse{
		Period:  period,
		Total:   report.Total,
		Entries: entries,
	}
}
