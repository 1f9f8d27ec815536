package reports

import (
	"context"
	"sort"
	"time"

	"github.com/parkms/PMS-ParkingService/internal/domain"
	"github.com/parkms/PMS-ParkingService/internal/fees"
	"github.com/parkms/PMS-ParkingService/internal/service/reports/models"
)

// Service provides read-only aggregations over the ledger: today's
// vehicles, recent entries, fee lookups and earnings summaries. It never
// mutates state.
type Service struct {
	ledger       VehicleLedger
	fees         FeePolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a reporting service.
func NewService(vehicleLedger VehicleLedger, feePolicy FeePolicy, logger Logger) *Service {
	return &Service{
		ledger:       vehicleLedger,
		fees:         feePolicy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// TodayVehicles returns all records whose entry time falls on the current
// calendar date, in ledger order.
func (s *Service) TodayVehicles(ctx context.Context) []*domain.Vehicle {
	now := s.timeProvider.Now()

	out := make([]*domain.Vehicle, 0)
	for _, v := range s.ledger.All() {
		if sameDay(v.EntryTime, now) {
			out = append(out, v)
		}
	}
	return out
}

// RecentEntries returns up to n records sorted by entry time, most recent
// first.
func (s *Service) RecentEntries(ctx context.Context, n int) []*domain.Vehicle {
	all := s.ledger.All()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].EntryTime.After(all[j].EntryTime)
	})

	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// FeeFor returns the actual fee for a checked-out vehicle, or the
// estimated fee up to now for one that is still parked.
func (s *Service) FeeFor(ctx context.Context, vehicleNumber string) (float64, error) {
	v, err := s.ledger.ByNumber(vehicleNumber)
	if err != nil {
		s.logger.Warn("FeeFor: vehicle=%s not found", vehicleNumber)
		return 0, ErrVehicleNotFound
	}

	if v.IsCheckedOut() && v.ExitTime != nil {
		return s.fees.Fee(v.EntryTime, *v.ExitTime), nil
	}
	return s.fees.Fee(v.EntryTime, s.timeProvider.Now()), nil
}

// TodayEarnings sums the fees of vehicles checked out today.
func (s *Service) TodayEarnings(ctx context.Context) float64 {
	return s.sumEarnings(true)
}

// TotalEarnings sums the fees of all checked-out vehicles.
func (s *Service) TotalEarnings(ctx context.Context) float64 {
	return s.sumEarnings(false)
}

// EarningsBreakdown returns the per-vehicle fees of checked-out vehicles,
// optionally limited to today's checkouts, preserving ledger order.
func (s *Service) EarningsBreakdown(ctx context.Context, todayOnly bool) models.EarningsReport {
	now := s.timeProvider.Now()

	report := models.EarningsReport{
		TodayOnly: todayOnly,
		Entries:   make([]models.VehicleEarning, 0),
	}
	for _, v := range s.ledger.All() {
		if !checkedOutIn(v, todayOnly, now) {
			continue
		}
		fee := s.fees.Fee(v.EntryTime, *v.ExitTime)
		report.Entries = append(report.Entries, models.VehicleEarning{Vehicle: v, Fee: fee})
		report.Total += fee
	}
	report.Total = fees.Round2(report.Total)
	return report
}

func (s *Service) sumEarnings(todayOnly bool) float64 {
	now := s.timeProvider.Now()

	total := 0.0
	for _, v := range s.ledger.All() {
		if !checkedOutIn(v, todayOnly, now) {
			continue
		}
		total += s.fees.Fee(v.EntryTime, *v.ExitTime)
	}
	return fees.Round2(total)
}

// checkedOutIn reports whether the vehicle has been checked out, today
// when todayOnly is set.
func checkedOutIn(v *domain.Vehicle, todayOnly bool, now time.Time) bool {
	if !v.IsCheckedOut() || v.ExitTime == nil {
		return false
	}
	return !todayOnly || sameDay(*v.ExitTime, now)
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
