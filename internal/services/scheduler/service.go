package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/common/logger"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/KirkDiggler/standupbot/internal/services/report"
	"github.com/KirkDiggler/standupbot/internal/services/session"
	"github.com/KirkDiggler/standupbot/internal/services/summary"
	"github.com/KirkDiggler/standupbot/internal/window"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// maxCatchUp bounds how many skipped minutes Run evaluates after a stall
const maxCatchUp = 5

// service implements the Service interface
type service struct {
	repo      standup.Repository
	sessions  session.Service
	reports   report.Service
	summaries summary.Service
	publisher Publisher
	clock     clock.Clock
	logger    *log.Logger

	interval      time.Duration
	pace          time.Duration
	maxConcurrent int
}

// NewService creates a new scheduler
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Sessions == nil {
		return nil, ErrNilSessions
	}
	if cfg.Reports == nil {
		return nil, ErrNilReports
	}
	if cfg.Summaries == nil {
		return nil, ErrNilSummaries
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &service{
		repo:          cfg.Repository,
		sessions:      cfg.Sessions,
		reports:       cfg.Reports,
		summaries:     cfg.Summaries,
		publisher:     cfg.Publisher,
		clock:         cfg.Clock,
		logger:        logger.OrDefault(cfg.Logger),
		interval:      cfg.Interval,
		pace:          cfg.Pace,
		maxConcurrent: cfg.MaxConcurrent,
	}

	if s.interval <= 0 {
		s.interval = DefaultInterval
	}
	if s.pace <= 0 {
		s.pace = DefaultPace
	}
	if s.maxConcurrent <= 0 {
		s.maxConcurrent = DefaultMaxConcurrent
	}

	return s, nil
}

// Run evaluates the triggers on every interval until ctx is cancelled. Minutes
// skipped by a stalled ticker are evaluated on the next tick.
func (s *service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", "interval", s.interval)

	last := s.clock.Now()
	s.tick(ctx, last)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return nil
		case <-ticker.C:
			now := s.clock.Now()
			for _, minute := range pendingMinutes(last, now) {
				s.tick(ctx, minute)
			}
			last = now
		}
	}
}

// pendingMinutes returns the minute starts after last up to and including now
func pendingMinutes(last, now time.Time) []time.Time {
	var minutes []time.Time
	for t := last.Truncate(time.Minute).Add(time.Minute); !t.After(now); t = t.Add(time.Minute) {
		minutes = append(minutes, t)
	}
	if len(minutes) > maxCatchUp {
		minutes = minutes[len(minutes)-maxCatchUp:]
	}
	return minutes
}

func (s *service) tick(ctx context.Context, now time.Time) {
	output, err := s.Tick(ctx, now)
	if err != nil {
		s.logger.Error("scheduler tick failed", "time", now.Format(time.RFC3339), "error", err)
	}
	if output != nil && len(output.Fired) > 0 {
		s.logger.Debug("scheduler tick fired", "time", now.Format(time.RFC3339), "triggers", output.Fired)
	}
}

// Tick evaluates the triggers for the minute containing now
func (s *service) Tick(ctx context.Context, now time.Time) (*TickOutput, error) {
	settings, err := s.repo.GetSettings(ctx, &standup.GetSettingsInput{})
	if err != nil {
		return nil, err
	}

	w, err := window.FromSettings(settings)
	if err != nil {
		return nil, err
	}

	current := window.Of(w.Local(now))
	output := &TickOutput{}
	var errs []error

	if current == w.Start() {
		date := w.LogicalDate(now)
		fired, err := s.claim(ctx, models.TriggerCollection, date)
		if err != nil {
			errs = append(errs, err)
		} else if fired {
			output.Fired = append(output.Fired, models.TriggerCollection)
			output.Collection, err = s.runBatch(ctx, date, false)
			if err != nil {
				errs = append(errs, fmt.Errorf("collection for %s: %w", date, err))
			}
		}
	}

	// The hour-truncated midpoint can land on the start minute or before the
	// window opens; neither may prompt anyone
	if settings.ReminderEnabled && current == w.ReminderTime() && current != w.Start() && w.Contains(now) {
		date := w.LogicalDate(now)
		fired, err := s.claim(ctx, models.TriggerReminder, date)
		if err != nil {
			errs = append(errs, err)
		} else if fired {
			output.Fired = append(output.Fired, models.TriggerReminder)
			output.Reminder, err = s.runBatch(ctx, date, true)
			if err != nil {
				errs = append(errs, fmt.Errorf("reminder for %s: %w", date, err))
			}
		}
	}

	if current == w.End() {
		date := w.ClosingDate(now)
		fired, err := s.claim(ctx, models.TriggerSummary, date)
		if err != nil {
			errs = append(errs, err)
		} else if fired {
			output.Fired = append(output.Fired, models.TriggerSummary)
			output.Summary, err = s.Summarize(ctx, &SummarizeInput{StandupDate: date, Publish: true})
			if err != nil {
				// The trigger stays claimed, so nothing retries this date on its own
				s.logger.Error("summary not delivered, run it manually", "date", date, "error", err)
				errs = append(errs, fmt.Errorf("summary for %s: %w", date, err))
			}
		}
	}

	return output, errors.Join(errs...)
}

func (s *service) claim(ctx context.Context, kind models.TriggerKind, date string) (bool, error) {
	claimed, err := s.repo.ClaimTrigger(ctx, &standup.ClaimTriggerInput{
		Kind:        kind,
		StandupDate: date,
	})
	if err != nil {
		return false, fmt.Errorf("claim %s trigger for %s: %w", kind, date, err)
	}
	if !claimed {
		s.logger.Debug("trigger already fired", "trigger", kind, "date", date)
	}
	return claimed, nil
}

// currentDate returns the logical date of the clock's current time
func (s *service) currentDate(ctx context.Context) (string, error) {
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

// CollectNow starts sessions for every current non-responder
func (s *service) CollectNow(ctx context.Context, input *CollectInput) (*BatchOutput, error) {
	date, err := s.currentDate(ctx)
	if err != nil {
		return nil, err
	}
	return s.runBatch(ctx, date, false)
}

// RemindNow re-prompts every current non-responder
func (s *service) RemindNow(ctx context.Context, input *RemindInput) (*BatchOutput, error) {
	date, err := s.currentDate(ctx)
	if err != nil {
		return nil, err
	}
	return s.runBatch(ctx, date, true)
}

type startResult int

const (
	resultStarted startResult = iota
	resultSkipped
	resultFailed
)

// runBatch starts a session for every non-responder of date. Starts are paced
// and bounded; a failing participant is counted and never stops the batch.
func (s *service) runBatch(ctx context.Context, date string, reminder bool) (*BatchOutput, error) {
	pass := "collection"
	if reminder {
		pass = "reminder"
	}

	missing, err := s.repo.NonResponders(ctx, &standup.NonRespondersInput{StandupDate: date})
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting "+pass+" pass", "date", date, "participants", len(missing.Participants))

	var (
		mu     sync.Mutex
		output = &BatchOutput{StandupDate: date}
	)

	g := new(errgroup.Group)
	g.SetLimit(s.maxConcurrent)

	pace := time.NewTicker(s.pace)
	defer pace.Stop()

dispatch:
	for i, participant := range missing.Participants {
		if ctx.Err() != nil {
			s.logger.Warn(pass+" pass cancelled", "date", date, "remaining", len(missing.Participants)-i)
			break
		}
		if i > 0 {
			select {
			case <-ctx.Done():
				s.logger.Warn(pass+" pass cancelled", "date", date, "remaining", len(missing.Participants)-i)
				break dispatch
			case <-pace.C:
			}
		}

		g.Go(func() error {
			result := s.startOne(ctx, participant, date, reminder)

			mu.Lock()
			defer mu.Unlock()
			switch result {
			case resultStarted:
				output.Started++
			case resultSkipped:
				output.Skipped++
			default:
				output.Failed++
			}
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info(pass+" pass finished",
		"date", date,
		"started", output.Started,
		"skipped", output.Skipped,
		"failed", output.Failed)

	return output, nil
}

func (s *service) startOne(ctx context.Context, participant *models.Participant, date string, reminder bool) startResult {
	output, err := s.sessions.StartSession(ctx, &session.StartSessionInput{
		ParticipantID: participant.ID,
		Reminder:      reminder,
	})
	if err != nil {
		var deliveryErr *session.DeliveryError
		if errors.As(err, &deliveryErr) {
			s.logger.Warn("could not reach participant",
				"participant", participant.ID,
				"name", participant.Name,
				"date", date,
				"error", deliveryErr.Err)
		} else {
			s.logger.Error("failed to start session",
				"participant", participant.ID,
				"date", date,
				"reminder", reminder,
				"error", err)
		}
		return resultFailed
	}

	if !output.Status.IsStarted() {
		return resultSkipped
	}
	return resultStarted
}

// Summarize generates the digest of a date
func (s *service) Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	if input == nil {
		input = &SummarizeInput{}
	}

	stats, err := s.reports.Stats(ctx, &report.StatsInput{StandupDate: input.StandupDate})
	if err != nil {
		return nil, err
	}

	generated, err := s.summaries.Generate(ctx, &summary.GenerateInput{
		StandupDate:   stats.StandupDate,
		Responses:     stats.Responses,
		NonResponders: stats.NonResponders,
	})
	if err != nil {
		return nil, err
	}

	output := &SummarizeOutput{
		StandupDate: stats.StandupDate,
		Text:        generated.Text,
		Stats:       stats,
		Failed:      generated.Err != nil,
	}

	if !input.Publish {
		return output, nil
	}

	settings, err := s.repo.GetSettings(ctx, &standup.GetSettingsInput{})
	if err != nil {
		return nil, err
	}

	err = s.publisher.PublishSummary(ctx, &Publication{
		ChannelID:   settings.SummaryChannelID,
		StandupDate: stats.StandupDate,
		Text:        output.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("publish summary: %w", err)
	}

	s.logger.Info("summary published",
		"date", stats.StandupDate,
		"responded", stats.RespondedCount,
		"missing", stats.MissingCount,
		"failed", output.Failed)

	return output, nil
}
