package recent_entries

import (
	"net/http"
	"strconv"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
)

const (
	msgInvalidLimit = "invalid limit, expected a positive integer"

	defaultLimit = 10
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

// Handle GET /api/v1/reports/recent?limit=n
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /reports/recent - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	records := h.service.RecentEntries(r.Context(), limit)

	h.logger.Info("GET /reports/recent - Recent entries listed: count=%d, limit=%d", len(records), limit)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(records))
}
