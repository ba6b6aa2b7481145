package models

import (
	"time"
)

// Participant is a roster member who opted in to daily standups
type Participant struct {
	// ID is the chat platform user ID of the participant
	ID string

	// Name is the display name captured at registration
	Name string

	// Active is false once the participant unregisters; rows are never hard-deleted
	Active bool

	// Timezone is an optional IANA timezone for personal status display
	Timezone string

	// RegisteredAt is when the participant first registered
	RegisteredAt time.Time
}
