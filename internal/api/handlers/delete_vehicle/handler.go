package delete_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
	"github.com/parkms/PMS-ParkingService/internal/api/middleware"
	"github.com/parkms/PMS-ParkingService/internal/service/vehicles"
)

const (
	msgMissingRole = "missing caller role"
	msgForbidden   = "access denied"
	msgNotFound    = "vehicle not found"
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

// Handle DELETE /api/v1/vehicles/{vehicleNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleNumber := vars["vehicleNumber"]

	role, ok := middleware.GetRole(r.Context())
	if !ok {
		h.logger.Warn("DELETE /vehicles/{number} - Missing caller role")
		handlers.RespondUnauthorized(w, msgMissingRole)
		return
	}

	if err := h.service.Delete(r.Context(), role, vehicleNumber); err != nil {
		switch {
		case errors.Is(err, vehicles.ErrPermissionDenied):
			h.logger.Warn("DELETE /vehicles/{number} - Access denied: number=%s, role=%s", vehicleNumber, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("DELETE /vehicles/{number} - Vehicle not found: number=%s", vehicleNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /vehicles/{number} - Failed to delete vehicle: number=%s, error=%v",
				vehicleNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vehicles/{number} - Vehicle deleted: number=%s", vehicleNumber)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
