package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
	"github.com/m04kA/SMC-ResourceScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/engine"
)

// UseCase use case для создания бронирования
type UseCase struct {
	engine       BookingEngine
	pool         ResourcePool
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine BookingEngine,
	pool ResourcePool,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:       engine,
		pool:         pool,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Выбор ресурса и проверка пересечений атомарны внутри движка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: start=%d, end=%d", req.Start, req.End)

	// 1. Бронируем первый свободный ресурс
	booking, err := uc.engine.Schedule(req.Start, req.End)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidRange):
			uc.logger.Warn("CreateBooking: invalid range: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		case errors.Is(err, engine.ErrNoCapacity):
			uc.logger.Warn("CreateBooking: no capacity for [%d, %d)", req.Start, req.End)
			return nil, fmt.Errorf("%w: %v", ErrNoCapacity, err)
		default:
			uc.logger.Error("CreateBooking: failed to schedule: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 2. Денормализуем имя ресурса. Ошибка здесь не отменяет бронирование.
	var resourceName string
	if resource, err := uc.pool.Get(booking.ResourceID); err != nil {
		uc.logger.Warn("CreateBooking: resource id=%d lookup failed: %v", booking.ResourceID, err)
	} else {
		resourceName = resource.Name
	}

	// 3. Публикуем событие
	event := events.NewBookingEvent(domain.EventBookingScheduled, booking, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d on resource id=%d", booking.ID, booking.ResourceID)

	return &Response{
		ID:           int64(booking.ID),
		ResourceID:   int64(booking.ResourceID),
		ResourceName: resourceName,
		Start:        booking.Start,
		End:          booking.End,
		Status:       string(domain.StatusActive),
	}, nil
}
