package models

import (
	"github.com/m04kA/SMC-ResourceScheduler/internal/domain"
)

// Request модели

// CheckAvailabilityRequest запрос на проверку доступности ресурса
type CheckAvailabilityRequest struct {
	ResourceID int64 `json:"resourceId"`
	Start      int64 `json:"start"`
	End        int64 `json:"end"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	ResourceID   int64  `json:"resourceId"`
	ResourceName string `json:"resourceName,omitempty"`
	Start        int64  `json:"start"`
	End          int64  `json:"end"`
	Duration     int64  `json:"duration"`
	Status       string `json:"status"`
}

// BookingListResponse ответ со списком бронирований ресурса
type BookingListResponse struct {
	ResourceID int64             `json:"resourceId"`
	Bookings   []BookingResponse `json:"bookings"`
}

// CancelBookingResponse результат отмены.
// Cancelled = false означает, что бронирование уже отменено или не существовало.
type CancelBookingResponse struct {
	BookingID int64  `json:"bookingId"`
	Cancelled bool   `json:"cancelled"`
	Status    string `json:"status,omitempty"`
}

// AvailabilityResponse результат проверки доступности
type AvailabilityResponse struct {
	ResourceID int64 `json:"resourceId"`
	Start      int64 `json:"start"`
	End        int64 `json:"end"`
	Available  bool  `json:"available"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b domain.Booking, resourceName string) *BookingResponse {
	return &BookingResponse{
		ID:           int64(b.ID),
		ResourceID:   int64(b.ResourceID),
		ResourceName: resourceName,
		Start:        b.Start,
		End:          b.End,
		Duration:     b.Duration(),
		Status:       string(domain.StatusActive),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(resource domain.Resource, bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		ResourceID: int64(resource.ID),
		Bookings:   make([]BookingResponse, len(bookings)),
	}

	for i, b := range bookings {
		resp.Bookings[i] = *FromDomainBooking(b, resource.Name)
	}

	return resp
}
