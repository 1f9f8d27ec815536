package get_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
	"github.com/parkms/PMS-ParkingService/internal/service/vehicles"
)

const msgNotFound = "vehicle not found"

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

// Handle GET /api/v1/vehicles/{vehicleNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleNumber := vars["vehicleNumber"]

	vehicle, err := h.service.ByNumber(r.Context(), vehicleNumber)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{number} - Vehicle not found: number=%s", vehicleNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /vehicles/{number} - Failed to get vehicle: number=%s, error=%v",
				vehicleNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{number} - Vehicle retrieved: number=%s", vehicleNumber)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(vehicle))
}
