package create_booking

import "errors"

var (
	// ErrInvalidTimeRange возвращается, когда start >= end
	ErrInvalidTimeRange = errors.New("create_booking: start must be before end")

	// ErrNoCapacity возвращается, когда ни один ресурс не свободен на интервале
	ErrNoCapacity = errors.New("create_booking: no resource is free for the interval")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
