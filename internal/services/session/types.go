package session

import (
	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/charmbracelet/log"
)

// Config holds the dependencies of the session engine
type Config struct {
	// Repository is the standup store
	Repository standup.Repository

	// Messenger delivers prompts to participants
	Messenger Messenger

	// Clock provides the current time
	Clock clock.Clock

	// Logger is optional; defaults to the charmbracelet default logger
	Logger *log.Logger
}

// StartStatus describes what StartSession did
type StartStatus string

const (
	// StartStatusStarted means a new session began at the first question
	StartStatusStarted StartStatus = "started"

	// StartStatusResumed means a checkpointed session continued where it stopped
	StartStatusResumed StartStatus = "resumed"

	// StartStatusNotRegistered means the participant is not on the active roster
	StartStatusNotRegistered StartStatus = "not_registered"

	// StartStatusAlreadyResponded means a response exists for the logical date
	StartStatusAlreadyResponded StartStatus = "already_responded"
)

// IsStarted reports whether a prompt was sent
func (s StartStatus) IsStarted() bool {
	return s == StartStatusStarted || s == StartStatusResumed
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	ParticipantID string

	// Reminder marks prompts sent by the mid-window reminder pass
	Reminder bool
}

// StartSessionOutput describes the started session
type StartSessionOutput struct {
	Status      StartStatus
	StandupDate string
	Step        models.StandupStep
	IsLate      bool
}

// HandleTextInput contains a free-text message from a participant
type HandleTextInput struct {
	ParticipantID string
	Text          string
}

// SelectBlockerInput contains the chosen blocker category
type SelectBlockerInput struct {
	ParticipantID string
	Category      models.BlockerCategory
}

// SubmitMoodInput contains the mood score; nil skips it
type SubmitMoodInput struct {
	ParticipantID string
	Mood          *int
}

// AnswerOutput describes the effect of an answer
type AnswerOutput struct {
	// Handled is false when the participant has no active session
	Handled bool

	// Step is the outstanding question after the answer
	Step models.StandupStep

	// Completed is true when the answer finalized the response
	Completed bool

	// Response is set when Completed is true
	Response *models.StandupResponse
}

// SubmitNoUpdateInput contains parameters for the no-update shortcut
type SubmitNoUpdateInput struct {
	ParticipantID string
}

// SubmitNoUpdateOutput contains the finalized no-update response
type SubmitNoUpdateOutput struct {
	Response *models.StandupResponse
}

// EditResponseInput contains a single field edit
type EditResponseInput struct {
	ParticipantID string
	Field         models.ResponseField
	Value         string
}

// EditResponseOutput contains the edited response
type EditResponseOutput struct {
	Response *models.StandupResponse
}

// Prompt is one question sent to a participant
type Prompt struct {
	ParticipantID string
	StandupDate   string
	Step          models.StandupStep

	// Intro is set on the first prompt of a started or resumed session
	Intro bool

	// Resumed is set when the session continues from a checkpoint
	Resumed bool

	// Reminder is set when the reminder pass started the session
	Reminder bool

	// IsLate is set when the session started outside the collection window
	IsLate bool

	// BlockerCategory is the chosen category, shown when asking for details
	BlockerCategory models.BlockerCategory
}

// Answered is the number of questions answered before this prompt
func (p *Prompt) Answered() int {
	return int(p.Step)
}

// Completion confirms a finalized response to the participant
type Completion struct {
	ParticipantID string
	Response      *models.StandupResponse
}
