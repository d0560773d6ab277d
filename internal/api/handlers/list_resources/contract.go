package list_resources

import (
	"context"

	"github.com/m04kA/SMC-ResourceScheduler/internal/service/catalog/models"
)

type CatalogService interface {
	ListResources(ctx context.Context) (*models.ResourceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
