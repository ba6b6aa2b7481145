package summary

import "fmt"

// GenerationError means the external model failed to produce a digest
type GenerationError struct {
	StandupDate string
	Err         error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("summary generation for %s failed: %v", e.StandupDate, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
