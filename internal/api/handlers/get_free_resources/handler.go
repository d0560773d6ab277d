package get_free_resources

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers"
	getFreeResources "github.com/m04kA/SMC-ResourceScheduler/internal/usecase/get_free_resources"
)

const (
	msgInvalidInterval  = "параметры start и end обязательны и должны быть целыми числами"
	msgInvalidTimeRange = "start должен быть меньше end"
)

type Handler struct {
	useCase GetFreeResourcesUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeResourcesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/free-resources?start=&end=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, end, err := handlers.ParseInterval(r)
	if err != nil {
		h.logger.Warn("GET /free-resources - Invalid interval: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeResources.Request{Start: start, End: end})
	if err != nil {
		switch {
		case errors.Is(err, getFreeResources.ErrInvalidTimeRange):
			h.logger.Warn("GET /free-resources - Invalid time range: start=%d, end=%d", start, end)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /free-resources - Failed to get free resources: start=%d, end=%d, error=%v",
				start, end, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /free-resources - start=%d, end=%d, free=%d", start, end, len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
