package roster

import (
	"time"

	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
)

// Config holds the dependencies of the roster service
type Config struct {
	Repository standup.Repository
	Clock      clock.Clock
}

// RegisterStatus describes what Register did
type RegisterStatus string

const (
	RegisterStatusRegistered    RegisterStatus = "registered"
	RegisterStatusReactivated   RegisterStatus = "reactivated"
	RegisterStatusAlreadyActive RegisterStatus = "already_active"
)

// RegisterInput contains parameters for registering
type RegisterInput struct {
	ParticipantID string
	Name          string
}

// RegisterOutput contains the registered participant
type RegisterOutput struct {
	Status      RegisterStatus
	Participant *models.Participant
}

// UnregisterInput contains parameters for unregistering
type UnregisterInput struct {
	ParticipantID string
}

// UnregisterOutput reports whether an active participant was removed
type UnregisterOutput struct {
	Unregistered bool
}

// SetTimezoneInput contains a participant's personal timezone
type SetTimezoneInput struct {
	ParticipantID string
	Timezone      string
}

// SetTimezoneOutput contains the updated participant
type SetTimezoneOutput struct {
	Participant *models.Participant
}

// StatusInput contains parameters for a status check
type StatusInput struct {
	ParticipantID string
}

// StatusOutput is a participant's view of today's standup
type StatusOutput struct {
	Registered  bool
	Participant *models.Participant

	// StandupDate is the current logical date
	StandupDate string

	// Response is today's response, nil if not submitted
	Response *models.StandupResponse

	// InWindow reports whether the collection window is open
	InWindow bool

	// Settings are the settings the status was computed with
	Settings *models.Settings

	// LocalTime is the current time in the participant's timezone, or in the
	// standup timezone when they have none
	LocalTime time.Time
}

// ListInput contains parameters for listing the roster
type ListInput struct {
}

// ListOutput contains the active roster
type ListOutput struct {
	Participants []*models.Participant
}

// Count returns the number of active participants
func (o *ListOutput) Count() int {
	return len(o.Participants)
}
