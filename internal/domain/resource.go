package domain

// ResourceID identifies a bookable resource (room, box, device).
type ResourceID int64

// Resource represents an interchangeable unit that holds non-overlapping bookings
type Resource struct {
	ID   ResourceID
	Name string // Отображаемое имя (опционально)
}

// HasName returns true if the resource has a display name
func (r Resource) HasName() bool {
	return r.Name != ""
}
