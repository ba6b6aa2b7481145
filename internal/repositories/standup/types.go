package standup

import (
	"time"

	"github.com/KirkDiggler/standupbot/internal/models"
)

// SaveParticipantInput contains parameters for saving a participant
type SaveParticipantInput struct {
	Participant *models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	ParticipantID string
}

// SetParticipantActiveInput contains parameters for (de)activating a participant
type SetParticipantActiveInput struct {
	ParticipantID string
	Active        bool

	// Name refreshes the display name when non-empty
	Name string
}

// IsActiveInput contains parameters for checking roster membership
type IsActiveInput struct {
	ParticipantID string
}

// ListActiveParticipantsInput contains parameters for listing the roster
type ListActiveParticipantsInput struct {
}

// ListActiveParticipantsOutput contains the active roster
type ListActiveParticipantsOutput struct {
	Participants []*models.Participant
}

// UpsertResponseInput contains the finalized answers of a participant
type UpsertResponseInput struct {
	ParticipantID   string
	ParticipantName string
	StandupDate     string

	Yesterday       string
	Today           string
	Technical       string
	BlockerCategory models.BlockerCategory
	BlockerDetail   string
	Mood            *int

	// IsLate is only recorded when the response is created
	IsLate bool

	// Now is the submission (or edit) time; zero means time.Now
	Now time.Time
}

// UpsertResponseOutput contains the stored response
type UpsertResponseOutput struct {
	Response *models.StandupResponse

	// Created is false when an existing response was updated
	Created bool
}

// GetResponseInput contains parameters for retrieving a response
type GetResponseInput struct {
	ParticipantID string
	StandupDate   string
}

// UpdateResponseInput contains a partial update of a response
type UpdateResponseInput struct {
	ParticipantID string
	StandupDate   string
	Patch         models.StandupAnswers

	// Now is the edit time; zero means time.Now
	Now time.Time
}

// ListResponsesInput contains parameters for listing responses
type ListResponsesInput struct {
	StandupDate string
}

// ListResponsesOutput contains responses ordered by submission time
type ListResponsesOutput struct {
	Responses []*models.StandupResponse
}

// NonRespondersInput contains parameters for listing non-responders
type NonRespondersInput struct {
	StandupDate string
}

// NonRespondersOutput contains the active participants that have not responded
type NonRespondersOutput struct {
	Participants []*models.Participant
}

// UpsertPartialInput contains a checkpoint of an in-progress session
type UpsertPartialInput struct {
	ParticipantID   string
	ParticipantName string
	StandupDate     string
	Step            models.StandupStep
	Answers         models.StandupAnswers

	// IsLate is only recorded when the checkpoint is created
	IsLate bool

	// Now is the checkpoint time; zero means time.Now
	Now time.Time
}

// GetPartialInput contains parameters for retrieving a checkpoint
type GetPartialInput struct {
	ParticipantID string
}

// DeletePartialInput contains parameters for removing a checkpoint
type DeletePartialInput struct {
	ParticipantID string
}

// GetSettingsInput contains parameters for reading settings
type GetSettingsInput struct {
}

// SaveSettingsInput contains the settings to store
type SaveSettingsInput struct {
	Settings *models.Settings
}

// ClaimTriggerInput contains parameters for claiming a scheduler trigger
type ClaimTriggerInput struct {
	Kind        models.TriggerKind
	StandupDate string
}
