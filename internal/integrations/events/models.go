package events

import (
	"time"

	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
)

// Event событие жизненного цикла бронирования
type Event struct {
	Type       string    `json:"type"`
	BookingID  int64     `json:"bookingId"`
	ResourceID int64     `json:"resourceId"`
	Start      int64     `json:"start"`
	End        int64     `json:"end"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewBookingEvent строит событие из бронирования
func NewBookingEvent(eventType string, b domain.Booking, at time.Time) Event {
	return Event{
		Type:       eventType,
		BookingID:  int64(b.ID),
		ResourceID: int64(b.ResourceID),
		Start:      b.Start,
		End:        b.End,
		OccurredAt: at.UTC(),
	}
}
