package earnings_report

import (
	"net/http"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
)

const msgInvalidPeriod = "invalid period, expected 'today' or 'all'"

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

// Handle GET /api/v1/reports/earnings?period=today|all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var todayOnly bool
	switch r.URL.Query().Get("period") {
	case "", "all":
		todayOnly = false
	case "today":
		todayOnly = true
	default:
		h.logger.Warn("GET /reports/earnings - Invalid period: %q", r.URL.Query().Get("period"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	report := h.service.EarningsBreakdown(r.Context(), todayOnly)

	h.logger.Info("GET /reports/earnings - Earnings reported: today_only=%t, total=%.2f, entries=%d",
		todayOnly, report.Total, len(report.Entries))
	handlers.RespondJSON(w, http.StatusOK, FromReport(report))
}
