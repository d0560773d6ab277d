package create_resource

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "имя ресурса не должно превышать 100 символов"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /resources - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resource, err := h.service.AddResource(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /resources - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)

		default:
			h.logger.Error("POST /resources - Failed to add resource: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources - Resource created successfully: resource_id=%d", resource.ID)
	handlers.RespondJSON(w, http.StatusCreated, resource)
}
