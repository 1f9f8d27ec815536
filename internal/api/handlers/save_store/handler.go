package save_store

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

// Handle POST /api/v1/store/save
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SaveAll(r.Context()); err != nil {
		h.logger.Error("POST /store/save - Failed to persist ledger: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /store/save - Ledger persisted")
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
