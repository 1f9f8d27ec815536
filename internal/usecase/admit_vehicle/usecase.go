package admit_vehicle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parkms/PMS-ParkingService/internal/domain"
	"github.com/parkms/PMS-ParkingService/internal/ledger"
)

// UseCase admits a vehicle into the lot: validates the request, appends
// the record to the ledger (which reserves the slot) and persists the
// result.
type UseCase struct {
	ledger       VehicleLedger
	store        VehicleStore
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the admission use case. metrics may be nil when
// metrics collection is disabled.
func NewUseCase(vehicleLedger VehicleLedger, store VehicleStore, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		ledger:       vehicleLedger,
		store:        store,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the admission.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	vType, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("AdmitVehicle: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("AdmitVehicle: number=%s type=%s slot=%d", req.VehicleNumber, vType, req.SlotNumber)

	// Second precision keeps the stamped time identical across a
	// save/load round trip of the data file.
	entry := uc.timeProvider.Now().Truncate(time.Second)
	if req.EntryTime != nil {
		entry = req.EntryTime.Truncate(time.Second)
	}

	v := &domain.Vehicle{
		Number:     strings.TrimSpace(req.VehicleNumber),
		Type:       vType,
		SlotNumber: req.SlotNumber,
		EntryTime:  entry,
		Status:     domain.StatusActive,
	}

	if err := uc.ledger.Admit(v); err != nil {
		switch {
		case errors.Is(err, ledger.ErrDuplicateVehicle):
			uc.logger.Warn("AdmitVehicle: number=%s already parked", v.Number)
			return nil, ErrDuplicateVehicle
		case errors.Is(err, ledger.ErrSlotNotFound):
			uc.logger.Warn("AdmitVehicle: slot=%d not found", v.SlotNumber)
			return nil, ErrSlotNotFound
		case errors.Is(err, ledger.ErrSlotOccupied):
			uc.logger.Warn("AdmitVehicle: slot=%d already occupied", v.SlotNumber)
			return nil, ErrSlotOccupied
		default:
			uc.logger.Error("AdmitVehicle: ledger error for number=%s: %v", v.Number, err)
			return nil, fmt.Errorf("%w: ledger error: %v", ErrInternal, err)
		}
	}

	// The ledger keeps operating in memory when the save fails.
	if err := uc.store.Save(uc.ledger.All()); err != nil {
		uc.logger.Error("AdmitVehicle: failed to persist ledger: %v", err)
	}

	if uc.metrics != nil {
		uc.metrics.RecordAdmission()
		uc.metrics.SetOccupancy(uc.ledger.OccupiedSlots(), uc.ledger.AvailableSlots())
	}

	uc.logger.Info("AdmitVehicle: number=%s admitted to slot=%d", v.Number, v.SlotNumber)
	return &Response{
		VehicleNumber: v.Number,
		VehicleType:   string(v.Type),
		SlotNumber:    v.SlotNumber,
		EntryTime:     v.EntryTime,
		Status:        string(v.Status),
	}, nil
}
