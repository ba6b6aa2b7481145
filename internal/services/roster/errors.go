package roster

// RosterError is a custom error type for roster-related errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotRegistered   RosterError = "participant is not registered"
	ErrEmptyID         RosterError = "participant ID cannot be empty"
	ErrEmptyName       RosterError = "participant name cannot be empty"
	ErrInvalidTimezone RosterError = "unknown timezone"
	ErrNilConfig       RosterError = "config cannot be nil"
	ErrNilRepository   RosterError = "standup repository cannot be nil"
	ErrNilClock        RosterError = "clock cannot be nil"
)
