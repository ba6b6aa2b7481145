package models

import (
	"time"
)

// PartialSession is the checkpoint of an in-progress standup. There is at most one
// per participant regardless of date.
type PartialSession struct {
	// ParticipantID is the participant the checkpoint belongs to
	ParticipantID string

	// ParticipantName is the display name when the session started
	ParticipantName string

	// StandupDate is the logical date the session was started for. A checkpoint
	// whose date differs from the current logical date is stale.
	StandupDate string

	// CurrentStep is the outstanding question
	CurrentStep StandupStep

	// Answers holds what has been answered so far
	Answers StandupAnswers

	// IsLate is fixed when the session starts and carried to the final response
	IsLate bool

	// StartedAt is when the checkpoint was first written
	StartedAt time.Time

	// UpdatedAt is when the checkpoint was last written
	UpdatedAt time.Time
}
