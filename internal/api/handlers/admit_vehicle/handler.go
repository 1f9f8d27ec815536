package admit_vehicle

import (
	"errors"
	"net/http"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
	admitVehicle "github.com/parkms/PMS-ParkingService/internal/usecase/admit_vehicle"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidEntryTime     = "invalid entry time, expected YYYY-MM-DD HH:MM:SS"
	msgInvalidVehicleNumber = "invalid vehicle number, expected 3-15 alphanumeric characters"
	msgInvalidVehicleType   = "unknown vehicle type"
	msgInvalidSlotNumber    = "invalid slot number"
	msgDuplicateVehicle     = "an active vehicle with this number is already parked"
	msgSlotNotFound         = "slot not found"
	msgSlotOccupied         = "slot is already occupied"
)

type Handler struct {
	useCase AdmitVehicleUseCase
	logger  Logger
}

func NewHandler(useCase AdmitVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdmitVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /vehicles - Failed to parse entry time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, admitVehicle.ErrInvalidVehicleNumber):
			h.logger.Warn("POST /vehicles - Invalid vehicle number: number=%q", req.VehicleNumber)
			handlers.RespondBadRequest(w, msgInvalidVehicleNumber)

		case errors.Is(err, admitVehicle.ErrInvalidVehicleType):
			h.logger.Warn("POST /vehicles - Invalid vehicle type: type=%q", req.VehicleType)
			handlers.RespondBadRequest(w, msgInvalidVehicleType)

		case errors.Is(err, admitVehicle.ErrInvalidSlotNumber):
			h.logger.Warn("POST /vehicles - Invalid slot number: slot=%d", req.SlotNumber)
			handlers.RespondBadRequest(w, msgInvalidSlotNumber)

		case errors.Is(err, admitVehicle.ErrDuplicateVehicle):
			h.logger.Warn("POST /vehicles - Duplicate vehicle: number=%s", req.VehicleNumber)
			handlers.RespondConflict(w, msgDuplicateVehicle)

		case errors.Is(err, admitVehicle.ErrSlotNotFound):
			h.logger.Warn("POST /vehicles - Slot not found: slot=%d", req.SlotNumber)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, admitVehicle.ErrSlotOccupied):
			h.logger.Warn("POST /vehicles - Slot occupied: slot=%d", req.SlotNumber)
			handlers.RespondConflict(w, msgSlotOccupied)

		default:
			h.logger.Error("POST /vehicles - Failed to admit vehicle: number=%s, error=%v",
				req.VehicleNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle admitted: number=%s, slot=%d",
		result.VehicleNumber, result.SlotNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
