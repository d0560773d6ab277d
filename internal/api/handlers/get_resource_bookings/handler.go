package get_resource_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/bookings"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgNotFound          = "ресурс не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.ParseInt64(mux.Vars(r)["resourceId"], "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/bookings - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	list, err := h.service.GetResourceBookings(r.Context(), resourceID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/bookings - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /resources/{id}/bookings - Failed to get bookings: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/bookings - Bookings retrieved successfully: resource_id=%d, count=%d",
		resourceID, len(list.Bookings))
	handlers.RespondJSON(w, http.StatusOK, list)
}
