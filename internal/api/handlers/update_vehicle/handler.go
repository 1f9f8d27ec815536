package update_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
	"github.com/parkms/PMS-ParkingService/internal/api/middleware"
	"github.com/parkms/PMS-ParkingService/internal/service/vehicles"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRecord      = "invalid vehicle record"
	msgMissingRole        = "missing caller role"
	msgForbidden          = "access denied"
	msgNotFound           = "vehicle not found"
	msgDuplicateVehicle   = "an active vehicle with this number already exists"
	msgSlotNotFound       = "slot not found"
	msgSlotOccupied       = "slot is already occupied"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/vehicles/{vehicleNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleNumber := vars["vehicleNumber"]

	role, ok := middleware.GetRole(r.Context())
	if !ok {
		h.logger.Warn("PUT /vehicles/{number} - Missing caller role")
		handlers.RespondUnauthorized(w, msgMissingRole)
		return
	}

	var req UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vehicles/{number} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("PUT /vehicles/{number} - Failed to parse record: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecord)
		return
	}

	if err := h.service.Update(r.Context(), role, vehicleNumber, updated); err != nil {
		switch {
		case errors.Is(err, vehicles.ErrPermissionDenied):
			h.logger.Warn("PUT /vehicles/{number} - Access denied: number=%s, role=%s", vehicleNumber, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("PUT /vehicles/{number} - Vehicle not found: number=%s", vehicleNumber)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrDuplicateVehicle):
			h.logger.Warn("PUT /vehicles/{number} - Duplicate vehicle: number=%s", req.VehicleNumber)
			handlers.RespondConflict(w, msgDuplicateVehicle)

		case errors.Is(err, vehicles.ErrSlotNotFound):
			h.logger.Warn("PUT /vehicles/{number} - Slot not found: slot=%d", req.SlotNumber)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, vehicles.ErrSlotOccupied):
			h.logger.Warn("PUT /vehicles/{number} - Slot occupied: slot=%d", req.SlotNumber)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("PUT /vehicles/{number} - Invalid record: number=%s, error=%v", vehicleNumber, err)
			handlers.RespondBadRequest(w, msgInvalidRecord)

		default:
			h.logger.Error("PUT /vehicles/{number} - Failed to update vehicle: number=%s, error=%v",
				vehicleNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	current, err := h.service.ByNumber(r.Context(), updated.Number)
	if err != nil {
		h.logger.Error("PUT /vehicles/{number} - Failed to reload vehicle: number=%s, error=%v",
			updated.Number, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /vehicles/{number} - Vehicle updated: number=%s", updated.Number)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(current))
}
