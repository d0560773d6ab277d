package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/bookings"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/bookings/models"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidInterval   = "параметры start и end обязательны и должны быть целыми числами"
	msgInvalidTimeRange  = "start должен быть меньше end"
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

// Handle GET /api/v1/resources/{resourceId}/availability?start=&end=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.ParseInt64(mux.Vars(r)["resourceId"], "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	start, end, err := handlers.ParseInterval(r)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid interval: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	resp, err := h.service.CheckAvailability(r.Context(), &models.CheckAvailabilityRequest{
		ResourceID: resourceID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/availability - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidTimeRange):
			h.logger.Warn("GET /resources/{id}/availability - Invalid time range: start=%d, end=%d", start, end)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /resources/{id}/availability - Failed to check availability: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/availability - resource_id=%d, start=%d, end=%d, available=%t",
		resourceID, start, end, resp.Available)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
