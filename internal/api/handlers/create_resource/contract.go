package create_resource

import (
	"context"

	"github.com/m04kA/SMC-ResourceScheduler/internal/service/catalog/models"
)

type CatalogService interface {
	AddResource(ctx context.Context, req *models.CreateResourceRequest) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
