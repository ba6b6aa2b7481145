package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/common/logger"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/KirkDiggler/standupbot/internal/window"
	"github.com/charmbracelet/log"
)

// service implements the Service interface
type service struct {
	repo      standup.Repository
	messenger Messenger
	clock     clock.Clock
	logger    *log.Logger

	locks participantLocks

	mu       sync.Mutex
	sessions map[string]*activeSession
}

// NewService creates a new session engine
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		repo:      cfg.Repository,
		messenger: cfg.Messenger,
		clock:     cfg.Clock,
		logger:    logger.OrDefault(cfg.Logger),
		sessions:  make(map[string]*activeSession),
	}, nil
}

// currentWindow reads settings fresh from the store
func (s *service) currentWindow(ctx context.Context) (*window.Window, error) {
	settings, err := s.repo.GetSettings(ctx, &standup.GetSettingsInput{})
	if err != nil {
		return nil, err
	}
	return window.FromSettings(settings)
}

func (s *service) getSession(participantID string) *activeSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[participantID]
}

func (s *service) setSession(session *activeSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.participantID] = session
}

func (s *service) dropSession(participantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, participantID)
}

// StartSession starts or resumes a participant's session for the current logical date
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("participant ID cannot be empty")
	}

	unlock := s.locks.lock(input.ParticipantID)
	defer unlock()

	w, err := s.currentWindow(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	date := w.LogicalDate(now)

	participant, err := s.repo.GetParticipant(ctx, &standup.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil && !errors.Is(err, standup.ErrParticipantNotFound) {
		return nil, err
	}
	if participant == nil || !participant.Active {
		return &StartSessionOutput{Status: StartStatusNotRegistered, StandupDate: date}, nil
	}

	// Checked against the store so it holds across restarts
	_, err = s.repo.GetResponse(ctx, &standup.GetResponseInput{
		ParticipantID: input.ParticipantID,
		StandupDate:   date,
	})
	if err == nil {
		s.dropSession(input.ParticipantID)
		return &StartSessionOutput{Status: StartStatusAlreadyResponded, StandupDate: date}, nil
	}
	if !errors.Is(err, standup.ErrResponseNotFound) {
		return nil, err
	}

	session, resumed, err := s.loadSession(ctx, participant, date, !w.Contains(now))
	if err != nil {
		return nil, err
	}

	s.setSession(session)

	prompt := session.prompt()
	prompt.Intro = true
	prompt.Resumed = resumed
	prompt.Reminder = input.Reminder

	if err := s.messenger.SendPrompt(ctx, prompt); err != nil {
		s.dropSession(input.ParticipantID)
		return nil, &DeliveryError{ParticipantID: input.ParticipantID, Err: err}
	}

	status := StartStatusStarted
	if resumed {
		status = StartStatusResumed
	}

	s.logger.Debug("session started",
		"participant", input.ParticipantID,
		"date", date,
		"status", status,
		"step", session.step,
		"late", session.isLate,
		"reminder", input.Reminder)

	return &StartSessionOutput{
		Status:      status,
		StandupDate: date,
		Step:        session.step,
		IsLate:      session.isLate,
	}, nil
}

// loadSession picks up an in-memory or checkpointed session for date, or
// checkpoints a fresh one at the first question
func (s *service) loadSession(ctx context.Context, participant *models.Participant, date string, isLate bool) (*activeSession, bool, error) {
	if existing := s.getSession(participant.ID); existing != nil && existing.standupDate == date {
		return existing, existing.step != models.StepYesterday, nil
	}

	partial, err := s.repo.GetPartial(ctx, &standup.GetPartialInput{ParticipantID: participant.ID})
	if err != nil && !errors.Is(err, standup.ErrPartialNotFound) {
		return nil, false, err
	}

	if partial != nil && partial.StandupDate == date {
		return &activeSession{
			participantID:   participant.ID,
			participantName: participant.Name,
			standupDate:     date,
			step:            resumeStep(partial.CurrentStep, partial.Answers),
			answers:         partial.Answers,
			isLate:          partial.IsLate,
		}, true, nil
	}

	if partial != nil {
		s.logger.Info("discarding stale partial session",
			"participant", participant.ID,
			"partial_date", partial.StandupDate,
			"date", date)
		if err := s.repo.DeletePartial(ctx, &standup.DeletePartialInput{ParticipantID: participant.ID}); err != nil {
			return nil, false, err
		}
	}

	session := &activeSession{
		participantID:   participant.ID,
		participantName: participant.Name,
		standupDate:     date,
		step:            models.StepYesterday,
		isLate:          isLate,
	}

	if err := s.checkpoint(ctx, session, models.StandupAnswers{}); err != nil {
		return nil, false, err
	}

	return session, false, nil
}

// checkpoint persists the session at its current step with the answers delta
func (s *service) checkpoint(ctx context.Context, session *activeSession, delta models.StandupAnswers) error {
	_, err := s.repo.UpsertPartial(ctx, &standup.UpsertPartialInput{
		ParticipantID:   session.participantID,
		ParticipantName: session.participantName,
		StandupDate:     session.standupDate,
		Step:            session.step,
		Answers:         delta,
		IsLate:          session.isLate,
		Now:             s.clock.Now(),
	})
	return err
}

// HandleText feeds a free-text answer into the participant's session
func (s *service) HandleText(ctx context.Context, input *HandleTextInput) (*AnswerOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("participant ID cannot be empty")
	}

	unlock := s.locks.lock(input.ParticipantID)
	defer unlock()

	session := s.getSession(input.ParticipantID)
	if session == nil {
		return &AnswerOutput{Handled: false}, nil
	}

	text := strings.TrimSpace(input.Text)
	next, ok := nextStep(session.step, inputText)
	if !ok || text == "" {
		// Not a free-text question (or nothing usable); ask again
		if err := s.send(ctx, session.prompt()); err != nil {
			return nil, err
		}
		return &AnswerOutput{Handled: true, Step: session.step}, nil
	}

	return s.advance(ctx, session, next, textAnswer(session.step, text))
}

// SelectBlocker records the blocker category choice
func (s *service) SelectBlocker(ctx context.Context, input *SelectBlockerInput) (*AnswerOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("participant ID cannot be empty")
	}
	if !input.Category.IsValid() {
		return nil, ErrInvalidBlocker
	}

	unlock := s.locks.lock(input.ParticipantID)
	defer unlock()

	session := s.getSession(input.ParticipantID)
	if session == nil {
		return &AnswerOutput{Handled: false}, nil
	}

	category := input.Category
	delta := models.StandupAnswers{BlockerCategory: &category}

	kind := inputBlocker
	if category.IsNone() {
		kind = inputNoBlocker
		none := models.NoneText
		delta.BlockerDetail = &none
	}

	next, ok := nextStep(session.step, kind)
	if !ok {
		if err := s.send(ctx, session.prompt()); err != nil {
			return nil, err
		}
		return &AnswerOutput{Handled: true, Step: session.step}, nil
	}

	return s.advance(ctx, session, next, delta)
}

// SubmitMood records the mood score (or its skip) and finalizes the response
func (s *service) SubmitMood(ctx context.Context, input *SubmitMoodInput) (*AnswerOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("participant ID cannot be empty")
	}

	kind := inputSkip
	if input.Mood != nil {
		if *input.Mood < 1 || *input.Mood > 5 {
			return nil, ErrInvalidMood
		}
		kind = inputMood
	}

	unlock := s.locks.lock(input.ParticipantID)
	defer unlock()

	session := s.getSession(input.ParticipantID)
	if session == nil {
		return &AnswerOutput{Handled: false}, nil
	}

	next, ok := nextStep(session.step, kind)
	if !ok {
		if err := s.send(ctx, session.prompt()); err != nil {
			return nil, err
		}
		return &AnswerOutput{Handled: true, Step: session.step}, nil
	}

	var delta models.StandupAnswers
	if input.Mood != nil {
		mood := *input.Mood
		delta.Mood = &mood
	}

	return s.advance(ctx, session, next, delta)
}

// advance applies delta, checkpoints, and either prompts for next or finalizes.
// The in-memory session only moves once the store accepted the checkpoint.
func (s *service) advance(ctx context.Context, session *activeSession, next models.StandupStep, delta models.StandupAnswers) (*AnswerOutput, error) {
	updated := *session
	updated.answers.Merge(delta)
	updated.step = next

	if next == models.StepComplete {
		return s.finalize(ctx, &updated)
	}

	if err := s.checkpoint(ctx, &updated, delta); err != nil {
		s.logger.Error("failed to checkpoint session",
			"participant", session.participantID,
			"date", session.standupDate,
			"step", next,
			"error", err)
		return nil, err
	}

	s.setSession(&updated)

	if err := s.send(ctx, updated.prompt()); err != nil {
		return nil, err
	}

	return &AnswerOutput{Handled: true, Step: next}, nil
}

// finalize stores the response, ends the session and confirms it
func (s *service) finalize(ctx context.Context, session *activeSession) (*AnswerOutput, error) {
	output, err := s.repo.UpsertResponse(ctx, &standup.UpsertResponseInput{
		ParticipantID:   session.participantID,
		ParticipantName: session.participantName,
		StandupDate:     session.standupDate,
		Yesterday:       valueOr(session.answers.Yesterday, models.NoUpdateText),
		Today:           valueOr(session.answers.Today, models.NoUpdateText),
		Technical:       valueOr(session.answers.Technical, models.NoneText),
		BlockerCategory: categoryOr(session.answers.BlockerCategory),
		BlockerDetail:   valueOr(session.answers.BlockerDetail, models.NoneText),
		Mood:            session.answers.Mood,
		IsLate:          session.isLate,
		Now:             s.clock.Now(),
	})
	if err != nil {
		s.logger.Error("failed to finalize response",
			"participant", session.participantID,
			"date", session.standupDate,
			"error", err)
		return nil, err
	}

	s.dropSession(session.participantID)

	s.logger.Info("standup response finalized",
		"participant", session.participantID,
		"date", session.standupDate,
		"created", output.Created,
		"late", output.Response.IsLate)

	err = s.messenger.SendCompletion(ctx, &Completion{
		ParticipantID: session.participantID,
		Response:      output.Response,
	})
	if err != nil {
		// The response is stored; only the confirmation was lost
		s.logger.Warn("failed to confirm response",
			"participant", session.participantID,
			"date", session.standupDate,
			"error", err)
	}

	return &AnswerOutput{
		Handled:   true,
		Step:      models.StepComplete,
		Completed: true,
		Response:  output.Response,
	}, nil
}

func (s *service) send(ctx context.Context, prompt *Prompt) error {
	if err := s.messenger.SendPrompt(ctx, prompt); err != nil {
		s.logger.Warn("failed to deliver prompt",
			"participant", prompt.ParticipantID,
			"date", prompt.StandupDate,
			"step", prompt.Step,
			"error", err)
		return &DeliveryError{ParticipantID: prompt.ParticipantID, Err: err}
	}
	return nil
}

// SubmitNoUpdate finalizes a "no update today" response. Free text the
// participant already answered today is kept.
func (s *service) SubmitNoUpdate(ctx context.Context, input *SubmitNoUpdateInput) (*SubmitNoUpdateOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("participant ID cannot be empty")
	}

	unlock := s.locks.lock(input.ParticipantID)
	defer unlock()

	w, err := s.currentWindow(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	date := w.LogicalDate(now)

	participant, err := s.repo.GetParticipant(ctx, &standup.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil && !errors.Is(err, standup.ErrParticipantNotFound) {
		return nil, err
	}
	if participant == nil || !participant.Active {
		return nil, ErrNotRegistered
	}

	_, err = s.repo.GetResponse(ctx, &standup.GetResponseInput{
		ParticipantID: input.ParticipantID,
		StandupDate:   date,
	})
	if err == nil {
		return nil, ErrAlreadyResponded
	}
	if !errors.Is(err, standup.ErrResponseNotFound) {
		return nil, err
	}

	var answers models.StandupAnswers
	isLate := !w.Contains(now)

	if session := s.getSession(input.ParticipantID); session != nil && session.standupDate == date {
		answers = session.answers
		isLate = session.isLate
	} else {
		partial, err := s.repo.GetPartial(ctx, &standup.GetPartialInput{ParticipantID: input.ParticipantID})
		if err != nil && !errors.Is(err, standup.ErrPartialNotFound) {
			return nil, err
		}
		if partial != nil && partial.StandupDate == date {
			answers = partial.Answers
			isLate = partial.IsLate
		}
	}

	output, err := s.repo.UpsertResponse(ctx, &standup.UpsertResponseInput{
		ParticipantID:   participant.ID,
		ParticipantName: participant.Name,
		StandupDate:     date,
		Yesterday:       valueOr(answers.Yesterday, models.NoUpdateText),
		Today:           valueOr(answers.Today, models.NoUpdateText),
		Technical:       models.NoneText,
		BlockerCategory: models.BlockerNone,
		BlockerDetail:   models.NoneText,
		IsLate:          isLate,
		Now:             now,
	})
	if err != nil {
		return nil, err
	}

	s.dropSession(input.ParticipantID)

	s.logger.Info("no-update response recorded",
		"participant", participant.ID,
		"date", date,
		"late", output.Response.IsLate)

	return &SubmitNoUpdateOutput{
		Response: output.Response,
	}, nil
}

// EditResponse changes one field of today's response while the window is open
func (s *service) EditResponse(ctx context.Context, input *EditResponseInput) (*EditResponseOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("participant ID cannot be empty")
	}

	patch, err := buildPatch(input.Field, input.Value)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(input.ParticipantID)
	defer unlock()

	active, err := s.repo.IsActive(ctx, &standup.IsActiveInput{ParticipantID: input.ParticipantID})
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrNotRegistered
	}

	w, err := s.currentWindow(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if !w.Contains(now) {
		return nil, ErrWindowClosed
	}

	response, err := s.repo.UpdateResponse(ctx, &standup.UpdateResponseInput{
		ParticipantID: input.ParticipantID,
		StandupDate:   w.LogicalDate(now),
		Patch:         patch,
		Now:           now,
	})
	if err != nil {
		if errors.Is(err, standup.ErrResponseNotFound) {
			return nil, ErrNoResponse
		}
		return nil, err
	}

	s.logger.Info("standup response edited",
		"participant", input.ParticipantID,
		"date", response.StandupDate,
		"field", input.Field)

	return &EditResponseOutput{
		Response: response,
	}, nil
}

// buildPatch validates an edit and turns it into an answers patch
func buildPatch(field models.ResponseField, value string) (models.StandupAnswers, error) {
	var patch models.StandupAnswers

	if !field.IsValid() {
		return patch, ErrInvalidField
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return patch, ErrEmptyAnswer
	}

	switch field {
	case models.FieldYesterday:
		patch.Yesterday = &value
	case models.FieldToday:
		patch.Today = &value
	case models.FieldTechnical:
		patch.Technical = &value
	case models.FieldBlockerDetail:
		patch.BlockerDetail = &value
	case models.FieldBlockerCategory:
		category, ok := models.ParseBlockerCategory(value)
		if !ok {
			return patch, ErrInvalidBlocker
		}
		patch.BlockerCategory = &category
	case models.FieldMood:
		mood, err := strconv.Atoi(value)
		if err != nil || mood < 1 || mood > 5 {
			return patch, fmt.Errorf("%w: %q", ErrInvalidMood, value)
		}
		patch.Mood = &mood
	}

	return patch, nil
}

func valueOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func categoryOr(category *models.BlockerCategory) models.BlockerCategory {
	if category == nil {
		return models.BlockerNone
	}
	return *category
}
