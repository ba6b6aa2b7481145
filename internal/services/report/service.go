package report

import (
	"context"

	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/KirkDiggler/standupbot/internal/window"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	repo  standup.Repository
	clock clock.Clock
}

// NewService creates a new report service
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

// resolveDate validates date, or returns the current logical date when empty
func (s *service) resolveDate(ctx context.Context, date string) (string, error) {
	if date != "" {
		if err := window.ValidateDate(date); err != nil {
			return "", ErrInvalidDate
		}
		return date, nil
	}

	settings, err := s.repo.GetSettings(ctx, &standup.GetSettingsInput{})
	if err != nil {
		return "", err
	}

	w, err := window.FromSettings(settings)
	if err != nil {
		return "", err
	}

	return w.LogicalDate(s.clock.Now()), nil
}

// Stats returns the aggregate view of a logical date
func (s *service) Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error) {
	if input == nil {
		input = &StatsInput{}
	}

	date, err := s.resolveDate(ctx, input.StandupDate)
	if err != nil {
		return nil, err
	}

	var (
		registered []*models.Participant
		responses  []*models.StandupResponse
		missing    []*models.Participant
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		output, err := s.repo.ListActiveParticipants(gctx, &standup.ListActiveParticipantsInput{})
		if err != nil {
			return err
		}
		registered = output.Participants
		return nil
	})
	g.Go(func() error {
		output, err := s.repo.ListResponses(gctx, &standup.ListResponsesInput{StandupDate: date})
		if err != nil {
			return err
		}
		responses = output.Responses
		return nil
	})
	g.Go(func() error {
		output, err := s.repo.NonResponders(gctx, &standup.NonRespondersInput{StandupDate: date})
		if err != nil {
			return err
		}
		missing = output.Participants
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &StatsOutput{
		StandupDate:     date,
		RegisteredCount: len(registered),
		RespondedCount:  len(responses),
		MissingCount:    len(missing),
		NonResponders:   missing,
		Blocked:         []*models.StandupResponse{},
		Responses:       responses,
	}

	for _, response := range responses {
		if response.IsBlocked() {
			stats.Blocked = append(stats.Blocked, response)
		}
		if response.IsLate {
			stats.LateCount++
		}
	}
	stats.BlockedCount = len(stats.Blocked)

	return stats, nil
}

// Responses returns the finalized responses of a logical date
func (s *service) Responses(ctx context.Context, input *ResponsesInput) (*ResponsesOutput, error) {
	if input == nil {
		input = &ResponsesInput{}
	}

	date, err := s.resolveDate(ctx, input.StandupDate)
	if err != nil {
		return nil, err
	}

	output, err := s.repo.ListResponses(ctx, &standup.ListResponsesInput{StandupDate: date})
	if err != nil {
		return nil, err
	}

	return &ResponsesOutput{
		StandupDate: date,
		Responses:   output.Responses,
	}, nil
}

// NonResponders returns the active participants missing a response
func (s *service) NonResponders(ctx context.Context, input *NonRespondersInput) (*NonRespondersOutput, error) {
	if input == nil {
		input = &NonRespondersInput{}
	}

	date, err := s.resolveDate(ctx, input.StandupDate)
	if err != nil {
		return nil, err
	}

	output, err := s.repo.NonResponders(ctx, &standup.NonRespondersInput{StandupDate: date})
	if err != nil {
		return nil, err
	}

	return &NonRespondersOutput{
		StandupDate:  date,
		Participants: output.Participants,
	}, nil
}
