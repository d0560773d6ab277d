package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
	"github.com/m04kA/SMC-ResourceScheduler/internal/integrations/events"
)

// BookingEngine интерфейс движка бронирования
type BookingEngine interface {
	Schedule(start, end int64) (domain.Booking, error)
}

// ResourcePool интерфейс пула ресурсов (для денормализации имени)
type ResourcePool interface {
	Get(id domain.ResourceID) (domain.Resource, error)
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
