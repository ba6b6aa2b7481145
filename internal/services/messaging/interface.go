package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standupbot/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPromptMessage returns the text asking a session's outstanding question
	GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error)

	// GetCompletionMessage returns the confirmation of a finalized response
	GetCompletionMessage(ctx context.Context, input *GetCompletionMessageInput) (*GetCompletionMessageOutput, error)

	// GetRegisterMessage returns the reply to a registration
	GetRegisterMessage(ctx context.Context, input *GetRegisterMessageInput) (*GetRegisterMessageOutput, error)

	// GetStatusMessage returns a participant's personal status
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)

	// GetStatsMessage returns the operator view of a date's figures
	GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error)

	// GetResponsesMessage returns the responses of a date
	GetResponsesMessage(ctx context.Context, input *GetResponsesMessageInput) (*GetResponsesMessageOutput, error)

	// GetSettingsMessage returns the current configuration
	GetSettingsMessage(ctx context.Context, input *GetSettingsMessageInput) (*GetSettingsMessageOutput, error)

	// GetBatchMessage returns the outcome of a forced collection or reminder pass
	GetBatchMessage(ctx context.Context, input *GetBatchMessageInput) (*GetBatchMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
