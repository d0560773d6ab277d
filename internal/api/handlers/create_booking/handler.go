package create_booking

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ResourceScheduler/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "поля start и end обязательны"
	msgInvalidTimeRange   = "start должен быть меньше end"
	msgNoCapacity         = "нет свободных ресурсов на выбранный интервал"
)

type Handler struct {
	useCase  CreateBookingUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: start=%d, end=%d", *req.Start, *req.End)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrNoCapacity):
			h.logger.Warn("POST /bookings - No capacity: start=%d, end=%d", *req.Start, *req.End)
			handlers.RespondConflict(w, msgNoCapacity)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: start=%d, end=%d, error=%v",
				*req.Start, *req.End, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, resource_id=%d",
		result.ID, result.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
