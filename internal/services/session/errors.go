package session

import "fmt"

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotRegistered    SessionError = "participant is not registered"
	ErrAlreadyResponded SessionError = "already responded for this standup date"
	ErrNoResponse       SessionError = "no response for this standup date"
	ErrWindowClosed     SessionError = "the collection window is closed"
	ErrInvalidField     SessionError = "unknown response field"
	ErrInvalidMood      SessionError = "mood must be between 1 and 5"
	ErrInvalidBlocker   SessionError = "unknown blocker category"
	ErrEmptyAnswer      SessionError = "answer cannot be empty"
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrNilRepository    SessionError = "standup repository cannot be nil"
	ErrNilMessenger     SessionError = "messenger cannot be nil"
	ErrNilClock         SessionError = "clock cannot be nil"
)

// DeliveryError means a participant could not be reached, for example because
// they disabled direct messages. The participant is skipped.
type DeliveryError struct {
	ParticipantID string
	Err           error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.ParticipantID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
