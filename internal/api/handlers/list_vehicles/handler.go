package list_vehicles

import (
	"net/http"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
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

// Handle GET /api/v1/vehicles?active=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") == "true"

	records := h.service.List(r.Context(), onlyActive)

	h.logger.Info("GET /vehicles - Vehicles listed: count=%d, active_only=%t", len(records), onlyActive)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(records))
}
