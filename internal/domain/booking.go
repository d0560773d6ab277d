package domain

// BookingID identifies a booking. IDs are never reused.
type BookingID int64

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a committed half-open interval [Start, End) on one resource
type Booking struct {
	ID         BookingID
	ResourceID ResourceID
	Start      int64 // Единицы времени задаёт вызывающая сторона (например, минуты от epoch)
	End        int64
}

// Duration returns the length of the booked interval
func (b Booking) Duration() int64 {
	return b.End - b.Start
}

// Overlaps returns true if the booking intersects [start, end).
// Touching endpoints are not an overlap.
func (b Booking) Overlaps(start, end int64) bool {
	return b.Start < end && start < b.End
}

// ValidRange reports whether [start, end) is a non-empty interval
func ValidRange(start, end int64) bool {
	return start < end
}
