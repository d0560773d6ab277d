package resources

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не зарегистрирован в пуле
	ErrResourceNotFound = errors.New("resources: resource not found")
)
