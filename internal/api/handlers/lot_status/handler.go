package lot_status

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

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := h.service.Status(r.Context())

	h.logger.Info("GET /slots - Lot status: occupied=%d, available=%d",
		status.OccupiedSlots, status.AvailableSlots)
	handlers.RespondJSON(w, http.StatusOK, FromLotStatus(status))
}
