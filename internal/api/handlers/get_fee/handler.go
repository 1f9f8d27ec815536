package get_fee

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
	"github.com/parkms/PMS-ParkingService/internal/service/reports"
)

const msgNotFound = "vehicle not found"

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

// Handle GET /api/v1/vehicles/{vehicleNumber}/fee
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleNumber := vars["vehicleNumber"]

	fee, err := h.service.FeeFor(r.Context(), vehicleNumber)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{number}/fee - Vehicle not found: number=%s", vehicleNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /vehicles/{number}/fee - Failed to compute fee: number=%s, error=%v",
				vehicleNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{number}/fee - Fee computed: number=%s, fee=%.2f", vehicleNumber, fee)
	handlers.RespondJSON(w, http.StatusOK, &FeeResponse{
		VehicleNumber: vehicleNumber,
		Fee:           fee,
	})
}
