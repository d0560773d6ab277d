package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-ResourceScheduler/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID int64) (*models.CancelBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
