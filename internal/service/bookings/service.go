package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
	"github.com/m04kA/SMC-ResourceScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/bookings/models"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/engine"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/resources"
)

type Service struct {
	engine       BookingEngine
	pool         ResourcePool
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

func NewService(engine BookingEngine, pool ResourcePool, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		engine:       engine,
		pool:         pool,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает активное бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, ok := s.engine.Get(domain.BookingID(id))
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
	}

	resource, err := s.pool.Get(booking.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - resource id=%d: %v", ErrInternal, booking.ResourceID, err)
	}

	return models.FromDomainBooking(booking, resource.Name), nil
}

// Cancel отменяет бронирование.
// Повторная отмена не ошибка: возвращается Cancelled=false.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.CancelBookingResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	// Снимок до отмены нужен для события
	booking, found := s.engine.Get(domain.BookingID(id))

	resp := &models.CancelBookingResponse{
		BookingID: id,
		Cancelled: s.engine.Cancel(domain.BookingID(id)),
	}

	if !resp.Cancelled || !found {
		s.logger.Info("Cancel: booking id=%d was not active", id)
		return resp, nil
	}
	resp.Status = string(domain.StatusCancelled)

	s.publish(ctx, events.NewBookingEvent(domain.EventBookingCancelled, booking, s.timeProvider.Now()))

	return resp, nil
}

// CheckAvailability проверяет, свободен ли ресурс на интервале
func (s *Service) CheckAvailability(ctx context.Context, req *models.CheckAvailabilityRequest) (*models.AvailabilityResponse, error) {
	available, err := s.engine.CanBook(domain.ResourceID(req.ResourceID), req.Start, req.End)
	if err != nil {
		return nil, mapEngineError(err)
	}

	return &models.AvailabilityResponse{
		ResourceID: req.ResourceID,
		Start:      req.Start,
		End:        req.End,
		Available:  available,
	}, nil
}

// GetResourceBookings возвращает активные бронирования ресурса по возрастанию start
func (s *Service) GetResourceBookings(ctx context.Context, resourceID int64) (*models.BookingListResponse, error) {
	resource, err := s.pool.Get(domain.ResourceID(resourceID))
	if err != nil {
		if errors.Is(err, resources.ErrResourceNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrResourceNotFound, resourceID)
		}
		return nil, fmt.Errorf("%w: GetResourceBookings - pool: %v", ErrInternal, err)
	}

	list, err := s.engine.Bookings(resource.ID)
	if err != nil {
		return nil, mapEngineError(err)
	}

	return models.FromDomainBookingList(resource, list), nil
}

// publish отправляет событие. Ошибка только логируется: отмена уже применена.
func (s *Service) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish %s for booking id=%d: %v", event.Type, event.BookingID, err)
	}
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrUnknownResource):
		return fmt.Errorf("%w: %v", ErrResourceNotFound, err)
	case errors.Is(err, engine.ErrInvalidRange):
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
