package standup

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/standupbot/internal/repositories/standup Repository

import (
	"context"

	"github.com/KirkDiggler/standupbot/internal/models"
)

// RosterRepository persists roster membership
type RosterRepository interface {
	// SaveParticipant creates or replaces a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant by ID, active or not
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// SetParticipantActive flips the active flag of an existing participant
	SetParticipantActive(ctx context.Context, input *SetParticipantActiveInput) error

	// IsActive reports whether a participant is registered and active
	IsActive(ctx context.Context, input *IsActiveInput) (bool, error)

	// ListActiveParticipants returns every active participant ordered by name
	ListActiveParticipants(ctx context.Context, input *ListActiveParticipantsInput) (*ListActiveParticipantsOutput, error)
}

// ResponseRepository persists finalized standup responses
type ResponseRepository interface {
	// UpsertResponse inserts the response for (participant, date) or updates the
	// existing one and stamps its edit time. The participant's partial session is
	// always cleared.
	UpsertResponse(ctx context.Context, input *UpsertResponseInput) (*UpsertResponseOutput, error)

	// GetResponse retrieves the response of a participant for a date
	GetResponse(ctx context.Context, input *GetResponseInput) (*models.StandupResponse, error)

	// UpdateResponse merges the answered fields of a patch into an existing response
	UpdateResponse(ctx context.Context, input *UpdateResponseInput) (*models.StandupResponse, error)

	// ListResponses returns the responses for a date ordered by submission time
	ListResponses(ctx context.Context, input *ListResponsesInput) (*ListResponsesOutput, error)

	// NonResponders returns active participants without a response for a date
	NonResponders(ctx context.Context, input *NonRespondersInput) (*NonRespondersOutput, error)
}

// PartialRepository persists in-progress session checkpoints
type PartialRepository interface {
	// UpsertPartial merges answered fields into the participant's checkpoint,
	// creating it if absent. A checkpoint for another date is replaced.
	UpsertPartial(ctx context.Context, input *UpsertPartialInput) (*models.PartialSession, error)

	// GetPartial retrieves the participant's checkpoint regardless of date
	GetPartial(ctx context.Context, input *GetPartialInput) (*models.PartialSession, error)

	// DeletePartial removes the participant's checkpoint
	DeletePartial(ctx context.Context, input *DeletePartialInput) error
}

// SettingsRepository persists the singleton settings row
type SettingsRepository interface {
	// GetSettings returns the stored settings, or the defaults if none were saved
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.Settings, error)

	// SaveSettings replaces the stored settings
	SaveSettings(ctx context.Context, input *SaveSettingsInput) error
}

// TriggerRepository records which scheduler events already fired
type TriggerRepository interface {
	// ClaimTrigger marks a trigger as fired for a date. It returns false if the
	// trigger was already claimed.
	ClaimTrigger(ctx context.Context, input *ClaimTriggerInput) (bool, error)
}

// Repository is the complete standup store
type Repository interface {
	RosterRepository
	ResponseRepository
	PartialRepository
	SettingsRepository
	TriggerRepository
}
