package engine

import "github.com/m04kA/SMC-ResourceScheduler/internal/domain"

// ResourcePool источник ресурсов для движка.
// IDs должен возвращать стабильный порядок (порядок создания).
type ResourcePool interface {
	Exists(id domain.ResourceID) bool
	IDs() []domain.ResourceID
}

// Observer получает уведомления о мутациях движка.
// Вызывается синхронно, реализация не должна блокироваться.
type Observer interface {
	BookingScheduled(b domain.Booking)
	BookingRejected(reason string)
	BookingCancelled(b domain.Booking)
}

type noopObserver struct{}

func (noopObserver) BookingScheduled(domain.Booking) {}
func (noopObserver) BookingRejected(string)          {}
func (noopObserver) BookingCancelled(domain.Booking) {}
