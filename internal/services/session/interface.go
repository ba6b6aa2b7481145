package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standupbot/internal/services/session Service
//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/KirkDiggler/standupbot/internal/services/session Messenger

import (
	"context"
)

// Service drives the per-participant standup interview
type Service interface {
	// StartSession starts or resumes a participant's session for the current
	// logical date and sends the outstanding question
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// HandleText feeds a free-text answer into the participant's session
	HandleText(ctx context.Context, input *HandleTextInput) (*AnswerOutput, error)

	// SelectBlocker records the blocker category choice
	SelectBlocker(ctx context.Context, input *SelectBlockerInput) (*AnswerOutput, error)

	// SubmitMood records the mood score (or its skip) and finalizes the response
	SubmitMood(ctx context.Context, input *SubmitMoodInput) (*AnswerOutput, error)

	// SubmitNoUpdate finalizes a "no update today" response, with or without a session
	SubmitNoUpdate(ctx context.Context, input *SubmitNoUpdateInput) (*SubmitNoUpdateOutput, error)

	// EditResponse changes one field of today's response while the window is open
	EditResponse(ctx context.Context, input *EditResponseInput) (*EditResponseOutput, error)
}

// Messenger delivers session output to a participant's private channel
type Messenger interface {
	// SendPrompt asks the participant the prompt's question
	SendPrompt(ctx context.Context, prompt *Prompt) error

	// SendCompletion confirms a finalized response
	SendCompletion(ctx context.Context, completion *Completion) error
}
