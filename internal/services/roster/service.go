package roster

import (
	"context"
	"errors"
	"strings"

	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/KirkDiggler/standupbot/internal/window"
)

// service implements the Service interface
type service struct {
	repo  standup.Repository
	clock clock.Clock
}

// NewService creates a new roster service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		repo:  cfg.Repository,
		clock: cfg.Clock,
	}, nil
}

// getParticipant returns nil when the participant has never registered
func (s *service) getParticipant(ctx context.Context, id string) (*models.Participant, error) {
	participant, err := s.repo.GetParticipant(ctx, &standup.GetParticipantInput{ParticipantID: id})
	if errors.Is(err, standup.ErrParticipantNotFound) {
		return nil, nil
	}
	return participant, err
}

// Register adds a participant or reactivates an unregistered one
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrEmptyID
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	existing, err := s.getParticipant(ctx, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		participant := &models.Participant{
			ID:           input.ParticipantID,
			Name:         name,
			Active:       true,
			RegisteredAt: s.clock.Now().UTC(),
		}
		if err := s.repo.SaveParticipant(ctx, &standup.SaveParticipantInput{Participant: participant}); err != nil {
			return nil, err
		}
		return &RegisterOutput{Status: RegisterStatusRegistered, Participant: participant}, nil
	}

	if existing.Active {
		return &RegisterOutput{Status: RegisterStatusAlreadyActive, Participant: existing}, nil
	}

	err = s.repo.SetParticipantActive(ctx, &standup.SetParticipantActiveInput{
		ParticipantID: input.ParticipantID,
		Active:        true,
		Name:          name,
	})
	if err != nil {
		return nil, err
	}

	existing.Active = true
	existing.Name = name

	return &RegisterOutput{Status: RegisterStatusReactivated, Participant: existing}, nil
}

// Unregister deactivates a participant
func (s *service) Unregister(ctx context.Context, input *UnregisterInput) (*UnregisterOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrEmptyID
	}

	active, err := s.repo.IsActive(ctx, &standup.IsActiveInput{ParticipantID: input.ParticipantID})
	if err != nil {
		return nil, err
	}
	if !active {
		return &UnregisterOutput{Unregistered: false}, nil
	}

	err = s.repo.SetParticipantActive(ctx, &standup.SetParticipantActiveInput{
		ParticipantID: input.ParticipantID,
		Active:        false,
	})
	if err != nil {
		return nil, err
	}

	return &UnregisterOutput{Unregistered: true}, nil
}

// SetTimezone stores a participant's personal timezone
func (s *service) SetTimezone(ctx context.Context, input *SetTimezoneInput) (*SetTimezoneOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrEmptyID
	}

	timezone := strings.TrimSpace(input.Timezone)
	if timezone == "" {
		return nil, ErrInvalidTimezone
	}
	if _, err := window.LoadLocation(timezone); err != nil {
		return nil, ErrInvalidTimezone
	}

	participant, err := s.getParticipant(ctx, input.ParticipantID)
	if err != nil {
		return nil, err
	}
	if participant == nil || !participant.Active {
		return nil, ErrNotRegistered
	}

	participant.Timezone = timezone
	if err := s.repo.SaveParticipant(ctx, &standup.SaveParticipantInput{Participant: participant}); err != nil {
		return nil, err
	}

	return &SetTimezoneOutput{Participant: participant}, nil
}

// Status reports a participant's registration and today's response
func (s *service) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrEmptyID
	}

	settings, err := s.repo.GetSettings(ctx, &standup.GetSettingsInput{})
	if err != nil {
		return nil, err
	}

	w, err := window.FromSettings(settings)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	output := &StatusOutput{
		StandupDate: w.LogicalDate(now),
		InWindow:    w.Contains(now),
		Settings:    settings,
		LocalTime:   w.Local(now),
	}

	participant, err := s.getParticipant(ctx, input.ParticipantID)
	if err != nil {
		return nil, err
	}
	if participant == nil || !participant.Active {
		return output, nil
	}

	output.Registered = true
	output.Participant = participant

	if participant.Timezone != "" {
		if loc, err := window.LoadLocation(participant.Timezone); err == nil {
			output.LocalTime = now.In(loc)
		}
	}

	response, err := s.repo.GetResponse(ctx, &standup.GetResponseInput{
		ParticipantID: input.ParticipantID,
		StandupDate:   output.StandupDate,
	})
	if err != nil && !errors.Is(err, standup.ErrResponseNotFound) {
		return nil, err
	}
	output.Response = response

	return output, nil
}

// List returns the active roster
func (s *service) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	output, err := s.repo.ListActiveParticipants(ctx, &standup.ListActiveParticipantsInput{})
	if err != nil {
		return nil, err
	}
	return &ListOutput{Participants: output.Participants}, nil
}
