package get_free_resources

import "github.com/m04kA/SMC-ResourceScheduler/internal/domain"

// BookingEngine интерфейс движка бронирования
type BookingEngine interface {
	FreeResources(start, end int64) ([]domain.ResourceID, error)
}

// ResourcePool интерфейс пула ресурсов
type ResourcePool interface {
	Get(id domain.ResourceID) (domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
