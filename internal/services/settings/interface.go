package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standupbot/internal/services/settings Service

import (
	"context"
)

// Service administers the process-wide standup settings. Changes are picked up
// by the scheduler on its next tick.
type Service interface {
	// Get returns the current settings
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// SetWindow changes the collection start/end and optionally the timezone
	SetWindow(ctx context.Context, input *SetWindowInput) (*UpdateOutput, error)

	// SetTimezone changes the timezone the window is evaluated in
	SetTimezone(ctx context.Context, input *SetTimezoneInput) (*UpdateOutput, error)

	// SetSummaryChannel changes where the daily digest is posted
	SetSummaryChannel(ctx context.Context, input *SetSummaryChannelInput) (*UpdateOutput, error)

	// SetReminderEnabled turns the mid-window reminder on or off
	SetReminderEnabled(ctx context.Context, input *SetReminderEnabledInput) (*UpdateOutput, error)
}
