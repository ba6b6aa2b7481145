package roster

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standupbot/internal/services/roster Service

import (
	"context"
)

// Service manages standup roster membership
type Service interface {
	// Register adds a participant or reactivates an unregistered one
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Unregister deactivates a participant, keeping their response history
	Unregister(ctx context.Context, input *UnregisterInput) (*UnregisterOutput, error)

	// SetTimezone stores a participant's personal timezone
	SetTimezone(ctx context.Context, input *SetTimezoneInput) (*SetTimezoneOutput, error)

	// Status reports a participant's registration and today's response
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)

	// List returns the active roster
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}
