package checkout_vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkms/PMS-ParkingService/internal/ledger"
)

// UseCase checks a vehicle out of the lot: the ledger stamps the exit
// time, frees the slot and computes the fee; the use case persists the
// result and assembles the bill.
type UseCase struct {
	ledger  VehicleLedger
	store   VehicleStore
	fees    FeeCalculator
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase creates the checkout use case. metrics may be nil when
// metrics collection is disabled.
func NewUseCase(vehicleLedger VehicleLedger, store VehicleStore, fees FeeCalculator, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		ledger:  vehicleLedger,
		store:   store,
		fees:    fees,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute runs the checkout.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckoutVehicle: number=%s", req.VehicleNumber)

	v, fee, err := uc.ledger.Checkout(req.VehicleNumber)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrVehicleNotFound):
			uc.logger.Warn("CheckoutVehicle: number=%s not found", req.VehicleNumber)
			return nil, ErrVehicleNotFound
		case errors.Is(err, ledger.ErrAlreadyCheckedOut):
			uc.logger.Warn("CheckoutVehicle: number=%s already checked out", req.VehicleNumber)
			return nil, ErrAlreadyCheckedOut
		default:
			uc.logger.Error("CheckoutVehicle: ledger error for number=%s: %v", req.VehicleNumber, err)
			return nil, fmt.Errorf("%w: ledger error: %v", ErrInternal, err)
		}
	}

	// The checkout stands even when the save fails; the ledger keeps
	// operating in memory.
	if err := uc.store.Save(uc.ledger.All()); err != nil {
		uc.logger.Error("CheckoutVehicle: failed to persist ledger: %v", err)
	}

	if uc.metrics != nil {
		uc.metrics.RecordCheckout(fee)
		uc.metrics.SetOccupancy(uc.ledger.OccupiedSlots(), uc.ledger.AvailableSlots())
	}

	uc.logger.Info("CheckoutVehicle: number=%s checked out, fee=%.2f", v.Number, fee)
	return &Response{
		VehicleNumber: v.Number,
		VehicleType:   string(v.Type),
		SlotNumber:    v.SlotNumber,
		EntryTime:     v.EntryTime,
		ExitTime:      *v.ExitTime,
		HoursParked:   uc.fees.Hours(v.EntryTime, *v.ExitTime),
		Fee:           fee,
	}, nil
}
