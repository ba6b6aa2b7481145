package messaging

import (
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/services/report"
	"github.com/KirkDiggler/standupbot/internal/services/roster"
	"github.com/KirkDiggler/standupbot/internal/services/scheduler"
	"github.com/KirkDiggler/standupbot/internal/services/settings"
)

// GetPromptMessageInput contains the state of the question being asked
type GetPromptMessageInput struct {
	// Step is the outstanding question
	Step models.StandupStep

	// Answered is the number of questions answered so far
	Answered int

	// Intro prefixes the welcome text of a started or resumed session
	Intro bool

	// Resumed means the session continues a checkpoint
	Resumed bool

	// Reminder marks prompts sent by the reminder pass
	Reminder bool

	// IsLate means the window was closed when the session started
	IsLate bool

	// BlockerCategory is the category picked before the detail question
	BlockerCategory models.BlockerCategory
}

// GetPromptMessageOutput contains the prompt text
type GetPromptMessageOutput struct {
	Message string
}

// GetCompletionMessageInput contains the finalized response
type GetCompletionMessageInput struct {
	Response *models.StandupResponse
}

// GetCompletionMessageOutput contains the confirmation text
type GetCompletionMessageOutput struct {
	Message string
}

// GetRegisterMessageInput contains the outcome of a registration
type GetRegisterMessageInput struct {
	Name   string
	Status roster.RegisterStatus
}

// GetRegisterMessageOutput contains the registration reply
type GetRegisterMessageOutput struct {
	Message string
}

// GetStatusMessageInput contains a participant's status
type GetStatusMessageInput struct {
	Status *roster.StatusOutput
}

// GetStatusMessageOutput contains the status text
type GetStatusMessageOutput struct {
	Message string
}

// GetStatsMessageInput contains the figures of a date
type GetStatsMessageInput struct {
	Stats *report.StatsOutput
}

// GetStatsMessageOutput contains the stats text
type GetStatsMessageOutput struct {
	Message string
}

// GetResponsesMessageInput contains the responses of a date
type GetResponsesMessageInput struct {
	StandupDate string
	Responses   []*models.StandupResponse
}

// GetResponsesMessageOutput contains the responses text
type GetResponsesMessageOutput struct {
	Message string
}

// GetSettingsMessageInput contains the current configuration
type GetSettingsMessageInput struct {
	Settings *settings.GetOutput
}

// GetSettingsMessageOutput contains the configuration text
type GetSettingsMessageOutput struct {
	Message string
}

// GetBatchMessageInput contains the outcome of a forced pass
type GetBatchMessageInput struct {
	Reminder bool
	Output   *scheduler.BatchOutput
}

// GetBatchMessageOutput contains the batch text
type GetBatchMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the error text
type GetErrorMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed seeds the sign-off picker; zero seeds from the current time
	Seed int64
}
