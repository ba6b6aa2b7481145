package settings

import (
	"time"

	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/charmbracelet/log"
)

// Config holds the dependencies of the settings service
type Config struct {
	Repository standup.Repository
	Clock      clock.Clock

	// Logger is optional; defaults to the charmbracelet default logger
	Logger *log.Logger
}

// GetInput contains parameters for reading settings
type GetInput struct {
}

// GetOutput contains the settings and values derived from them
type GetOutput struct {
	Settings *models.Settings

	// ReminderTime is the HH:MM of the mid-window reminder
	ReminderTime string

	// LocalTime is the current time in the standup timezone
	LocalTime time.Time

	// StandupDate is the current logical date
	StandupDate string

	// InWindow reports whether the collection window is open
	InWindow bool
}

// SetWindowInput contains a new collection window. An empty timezone keeps the
// current one.
type SetWindowInput struct {
	StartTime string
	EndTime   string
	Timezone  string
}

// SetTimezoneInput contains the new standup timezone
type SetTimezoneInput struct {
	Timezone string
}

// SetSummaryChannelInput contains the digest destination; empty clears it
type SetSummaryChannelInput struct {
	ChannelID string
}

// SetReminderEnabledInput toggles the reminder pass
type SetReminderEnabledInput struct {
	Enabled bool
}

// UpdateOutput contains the settings after an update
type UpdateOutput struct {
	Settings *models.Settings
}
