package today_vehicles

import (
	"net/http"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/today
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	records := h.service.TodayVehicles(r.Context())

	h.logger.Info("GET /reports/today - Today's vehicles listed: count=%d", len(records))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(records))
}
