package domain

// Resource source kinds
const (
	ResourceSourceConfig   = "config"
	ResourceSourceDatabase = "database"
)

// Business validation constants
const (
	MaxResourceNameLength = 100
)

// Event types published after engine mutations
const (
	EventBookingScheduled = "booking.scheduled"
	EventBookingCancelled = "booking.cancelled"
)

// Rejection reasons reported by the engine observer
const (
	RejectReasonInvalidRange = "invalid_range"
	RejectReasonNoCapacity   = "no_capacity"
)
