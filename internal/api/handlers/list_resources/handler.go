package list_resources

import (
	"net/http"

	"github.com/m04kA/SMC-ResourceScheduler/internal/api/handlers"
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

// Handle GET /api/v1/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListResources(r.Context())
	if err != nil {
		h.logger.Error("GET /resources - Failed to list resources: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources - Resources retrieved successfully: count=%d", len(list.Resources))
	handlers.RespondJSON(w, http.StatusOK, list)
}
