package engine

import "errors"

var (
	// ErrInvalidRange возвращается, когда start >= end
	ErrInvalidRange = errors.New("engine: invalid range")

	// ErrNoCapacity возвращается, когда ни один ресурс не может принять интервал
	ErrNoCapacity = errors.New("engine: no capacity")

	// ErrUnknownResource возвращается при обращении к ресурсу, не созданному пулом
	ErrUnknownResource = errors.New("engine: unknown resource")
)
