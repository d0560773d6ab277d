package create_booking

import (
	createBooking "github.com/m04kA/SMC-ResourceScheduler/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Указатели, чтобы отличать отсутствующее поле от нуля.
type CreateBookingRequest struct {
	Start *int64 `json:"start" validate:"required"`
	End   *int64 `json:"end" validate:"required"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	ResourceID   int64  `json:"resourceId"`
	ResourceName string `json:"resourceName,omitempty"`
	Start        int64  `json:"start"`
	End          int64  `json:"end"`
	Status       string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Start: *r.Start,
		End:   *r.End,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		ResourceID:   resp.ResourceID,
		ResourceName: resp.ResourceName,
		Start:        resp.Start,
		End:          resp.End,
		Status:       resp.Status,
	}
}
