package checkout_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkms/PMS-ParkingService/internal/api/handlers"
	checkoutVehicle "github.com/parkms/PMS-ParkingService/internal/usecase/checkout_vehicle"
)

const (
	msgVehicleNotFound    = "vehicle not found"
	msgAlreadyCheckedOut  = "vehicle is already checked out"
	msgMissingVehicleNumb = "missing vehicle number"
)

type Handler struct {
	useCase CheckoutVehicleUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{vehicleNumber}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleNumber := vars["vehicleNumber"]
	if vehicleNumber == "" {
		h.logger.Warn("POST /vehicles/{number}/checkout - Missing vehicle number")
		handlers.RespondBadRequest(w, msgMissingVehicleNumb)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkoutVehicle.Request{VehicleNumber: vehicleNumber})
	if err != nil {
		switch {
		case errors.Is(err, checkoutVehicle.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{number}/checkout - Vehicle not found: number=%s", vehicleNumber)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, checkoutVehicle.ErrAlreadyCheckedOut):
			h.logger.Warn("POST /vehicles/{number}/checkout - Already checked out: number=%s", vehicleNumber)
			handlers.RespondConflict(w, msgAlreadyCheckedOut)

		default:
			h.logger.Error("POST /vehicles/{number}/checkout - Failed to check out: number=%s, error=%v",
				vehicleNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{number}/checkout - Vehicle checked out: number=%s, fee=%.2f",
		result.VehicleNumber, result.Fee)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
