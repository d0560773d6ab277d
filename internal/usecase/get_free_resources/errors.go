package get_free_resources

import "errors"

var (
	// ErrInvalidTimeRange возвращается, когда start >= end
	ErrInvalidTimeRange = errors.New("get_free_resources: start must be before end")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_resources: internal error")
)
