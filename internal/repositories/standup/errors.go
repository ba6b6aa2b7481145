package standup

import (
	"errors"
	"fmt"
)

var (
	// ErrParticipantNotFound is returned when a participant is not on the roster
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrResponseNotFound is returned when no response exists for a participant and date
	ErrResponseNotFound = errors.New("response not found")

	// ErrPartialNotFound is returned when a participant has no in-progress session
	ErrPartialNotFound = errors.New("partial session not found")
)

// StorageError wraps a failure of the underlying store. Read paths may retry it;
// write paths abort the current operation and wait for the next trigger.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err was caused by the store
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
