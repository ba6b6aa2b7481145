package models

const (
	// DefaultStartTime is the collection window start used until an operator changes it
	DefaultStartTime = "09:00"

	// DefaultEndTime is the collection window end used until an operator changes it
	DefaultEndTime = "17:00"

	// DefaultTimezone is the timezone used until an operator changes it
	DefaultTimezone = "UTC"
)

// Settings is the process-wide standup configuration. It lives in the store and is
// re-read on every scheduler tick and session event.
type Settings struct {
	// StartTime is the local HH:MM at which collection starts
	StartTime string

	// EndTime is the local HH:MM at which collection ends. It may be earlier than
	// StartTime, in which case the window wraps past midnight.
	EndTime string

	// Timezone is the IANA timezone name the window is evaluated in
	Timezone string

	// SummaryChannelID is where the daily digest is posted (optional)
	SummaryChannelID string

	// ReminderEnabled controls the mid-window reminder pass
	ReminderEnabled bool
}

// DefaultSettings returns the settings a fresh store is seeded with
func DefaultSettings() *Settings {
	return &Settings{
		StartTime:       DefaultStartTime,
		EndTime:         DefaultEndTime,
		Timezone:        DefaultTimezone,
		ReminderEnabled: true,
	}
}
