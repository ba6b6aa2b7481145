package settings

import (
	"context"
	"errors"
	"strings"

	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/common/logger"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/KirkDiggler/standupbot/internal/window"
	"github.com/charmbracelet/log"
)

// service implements the Service interface
type service struct {
	repo   standup.Repository
	clock  clock.Clock
	logger *log.Logger
}

// NewService creates a new settings service
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
		repo:   cfg.Repository,
		clock:  cfg.Clock,
		logger: logger.OrDefault(cfg.Logger),
	}, nil
}

// Get returns the current settings
func (s *service) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	settings, err := s.repo.GetSettings(ctx, &standup.GetSettingsInput{})
	if err != nil {
		return nil, err
	}

	w, err := window.FromSettings(settings)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	return &GetOutput{
		Settings:     settings,
		ReminderTime: w.ReminderTime().String(),
		LocalTime:    w.Local(now),
		StandupDate:  w.LogicalDate(now),
		InWindow:     w.Contains(now),
	}, nil
}

// SetWindow changes the collection window
func (s *service) SetWindow(ctx context.Context, input *SetWindowInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, ErrInvalidTime
	}

	start, err := window.ParseTimeOfDay(strings.TrimSpace(input.StartTime))
	if err != nil {
		return nil, ErrInvalidTime
	}
	end, err := window.ParseTimeOfDay(strings.TrimSpace(input.EndTime))
	if err != nil {
		return nil, ErrInvalidTime
	}

	return s.update(ctx, func(settings *models.Settings) {
		settings.StartTime = start.String()
		settings.EndTime = end.String()
		if tz := strings.TrimSpace(input.Timezone); tz != "" {
			settings.Timezone = tz
		}
	})
}

// SetTimezone changes the standup timezone
func (s *service) SetTimezone(ctx context.Context, input *SetTimezoneInput) (*UpdateOutput, error) {
	if input == nil || strings.TrimSpace(input.Timezone) == "" {
		return nil, ErrInvalidTimezone
	}

	return s.update(ctx, func(settings *models.Settings) {
		settings.Timezone = strings.TrimSpace(input.Timezone)
	})
}

// SetSummaryChannel changes the digest destination
func (s *service) SetSummaryChannel(ctx context.Context, input *SetSummaryChannelInput) (*UpdateOutput, error) {
	channelID := ""
	if input != nil {
		channelID = strings.TrimSpace(input.ChannelID)
	}

	return s.update(ctx, func(settings *models.Settings) {
		settings.SummaryChannelID = channelID
	})
}

// SetReminderEnabled toggles the reminder pass
func (s *service) SetReminderEnabled(ctx context.Context, input *SetReminderEnabledInput) (*UpdateOutput, error) {
	enabled := input != nil && input.Enabled

	return s.update(ctx, func(settings *models.Settings) {
		settings.ReminderEnabled = enabled
	})
}

// update applies mutate to the stored settings, validates the result and saves it
func (s *service) update(ctx context.Context, mutate func(*models.Settings)) (*UpdateOutput, error) {
	current, err := s.repo.GetSettings(ctx, &standup.GetSettingsInput{})
	if err != nil {
		return nil, err
	}

	updated := *current
	mutate(&updated)

	if _, err := window.FromSettings(&updated); err != nil {
		return nil, translateWindowError(err)
	}

	if err := s.repo.SaveSettings(ctx, &standup.SaveSettingsInput{Settings: &updated}); err != nil {
		return nil, err
	}

	s.logger.Info("settings updated",
		"start", updated.StartTime,
		"end", updated.EndTime,
		"timezone", updated.Timezone,
		"summary_channel", updated.SummaryChannelID,
		"reminders", updated.ReminderEnabled)

	return &UpdateOutput{Settings: &updated}, nil
}

func translateWindowError(err error) error {
	switch {
	case errors.Is(err, window.ErrInvalidTimezone):
		return ErrInvalidTimezone
	case errors.Is(err, window.ErrEmptyWindow):
		return ErrEmptyWindow
	case errors.Is(err, window.ErrInvalidTime):
		return ErrInvalidTime
	default:
		return err
	}
}
