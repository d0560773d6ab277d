package catalog

import (
	"context"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
)

// ResourcePool интерфейс пула ресурсов
type ResourcePool interface {
	Add(name string) domain.Resource
	Get(id domain.ResourceID) (domain.Resource, error)
	List() []domain.Resource
}

// ResourceRepository интерфейс каталога ресурсов в БД
type ResourceRepository interface {
	Create(ctx context.Context, name string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
