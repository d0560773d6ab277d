package get_free_resources

import (
	"context"

	getFreeResources "github.com/m04kA/SMC-ResourceScheduler/internal/usecase/get_free_resources"
)

type GetFreeResourcesUseCase interface {
	Execute(ctx context.Context, req *getFreeResources.Request) (*getFreeResources.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
