package settings

// SettingsError is a custom error type for settings-related errors
type SettingsError string

// Error implements the error interface
func (e SettingsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidTime     SettingsError = "time must be HH:MM in 24-hour format"
	ErrInvalidTimezone SettingsError = "unknown timezone"
	ErrEmptyWindow     SettingsError = "start and end time must differ"
	ErrNilConfig       SettingsError = "config cannot be nil"
	ErrNilRepository   SettingsError = "standup repository cannot be nil"
	ErrNilClock        SettingsError = "clock cannot be nil"
)
