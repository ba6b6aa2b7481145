package scheduler_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/common/logger"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/KirkDiggler/standupbot/internal/services/report"
	"github.com/KirkDiggler/standupbot/internal/services/roster"
	"github.com/KirkDiggler/standupbot/internal/services/scheduler"
	"github.com/KirkDiggler/standupbot/internal/services/scheduler/mocks"
	"github.com/KirkDiggler/standupbot/internal/services/session"
	sessionMocks "github.com/KirkDiggler/standupbot/internal/services/session/mocks"
	"github.com/KirkDiggler/standupbot/internal/services/summary"
	summaryMocks "github.com/KirkDiggler/standupbot/internal/services/summary/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StandupFlowTestSuite drives a whole day against a real store
type StandupFlowTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client

	mockCtrl      *gomock.Controller
	clock         *clock.Fixed
	mockMessenger *sessionMocks.MockMessenger
	mockModel     *summaryMocks.MockModel
	mockPublisher *mocks.MockPublisher

	repo      standup.Repository
	roster    roster.Service
	sessions  session.Service
	reports   report.Service
	scheduler scheduler.Service
	ctx       context.Context

	prompts     []*session.Prompt
	completions []*session.Completion
}

func (s *StandupFlowTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.mockCtrl = gomock.NewController(s.T())
	s.clock = clock.NewFixed(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	s.mockMessenger = sessionMocks.NewMockMessenger(s.mockCtrl)
	s.mockModel = summaryMocks.NewMockModel(s.mockCtrl)
	s.mockPublisher = mocks.NewMockPublisher(s.mockCtrl)
	s.ctx = context.Background()
	s.prompts = nil
	s.completions = nil

	s.mockMessenger.EXPECT().SendPrompt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt *session.Prompt) error {
			s.prompts = append(s.prompts, prompt)
			return nil
		}).AnyTimes()
	s.mockMessenger.EXPECT().SendCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, completion *session.Completion) error {
			s.completions = append(s.completions, completion)
			return nil
		}).AnyTimes()

	repo, err := standup.NewRedis(&standup.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.repo = repo

	s.roster, err = roster.NewService(&roster.Config{Repository: repo, Clock: s.clock})
	s.Require().NoError(err)

	s.sessions, err = session.NewService(&session.Config{
		Repository: repo,
		Messenger:  s.mockMessenger,
		Clock:      s.clock,
		Logger:     logger.Discard(),
	})
	s.Require().NoError(err)

	s.reports, err = report.NewService(&report.Config{Repository: repo, Clock: s.clock})
	s.Require().NoError(err)

	summaries, err := summary.NewService(&summary.Config{Model: s.mockModel, Logger: logger.Discard()})
	s.Require().NoError(err)

	s.scheduler, err = scheduler.NewService(&scheduler.Config{
		Repository: repo,
		Sessions:   s.sessions,
		Reports:    s.reports,
		Summaries:  summaries,
		Publisher:  s.mockPublisher,
		Clock:      s.clock,
		Logger:     logger.Discard(),
		Pace:       time.Millisecond,
	})
	s.Require().NoError(err)
}

func (s *StandupFlowTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestStandupFlowSuite(t *testing.T) {
	suite.Run(t, new(StandupFlowTestSuite))
}

func (s *StandupFlowTestSuite) at(hour, minute int) time.Time {
	now := time.Date(2024, 1, 15, hour, minute, 0, 0, time.UTC)
	s.clock.Set(now)
	return now
}

func (s *StandupFlowTestSuite) lastPrompt() *session.Prompt {
	s.Require().NotEmpty(s.prompts)
	return s.prompts[len(s.prompts)-1]
}

func (s *StandupFlowTestSuite) answer(text string) {
	output, err := s.sessions.HandleText(s.ctx, &session.HandleTextInput{ParticipantID: "p1", Text: text})
	s.Require().NoError(err)
	s.Require().True(output.Handled)
}

func (s *StandupFlowTestSuite) TestParticipantDay() {
	s.at(8, 0)
	registered, err := s.roster.Register(s.ctx, &roster.RegisterInput{ParticipantID: "p1", Name: "Priya"})
	s.Require().NoError(err)
	s.Equal(roster.RegisterStatusRegistered, registered.Status)

	tick, err := s.scheduler.Tick(s.ctx, s.at(9, 0))
	s.Require().NoError(err)
	s.Equal([]models.TriggerKind{models.TriggerCollection}, tick.Fired)
	s.Equal(1, tick.Collection.Started)
	s.Equal(models.StepYesterday, s.lastPrompt().Step)
	s.True(s.lastPrompt().Intro)

	s.at(9, 5)
	s.answer("Wrote the parser")
	s.answer("Wire the scheduler")
	s.answer("Moved the store to Redis transactions")
	s.Equal(models.StepBlockerCategory, s.lastPrompt().Step)

	selected, err := s.sessions.SelectBlocker(s.ctx, &session.SelectBlockerInput{
		ParticipantID: "p1",
		Category:      models.BlockerDependency,
	})
	s.Require().NoError(err)
	s.Equal(models.StepBlockerDetail, selected.Step)

	s.answer("waiting on design review")
	s.Equal(models.StepMood, s.lastPrompt().Step)

	mood := 3
	final, err := s.sessions.SubmitMood(s.ctx, &session.SubmitMoodInput{ParticipantID: "p1", Mood: &mood})
	s.Require().NoError(err)
	s.True(final.Completed)
	s.Require().Len(s.completions, 1)

	stored, err := s.repo.GetResponse(s.ctx, &standup.GetResponseInput{ParticipantID: "p1", StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.False(stored.IsLate)
	s.Require().NotNil(stored.Mood)
	s.Equal(3, *stored.Mood)
	s.Equal(models.BlockerDependency, stored.BlockerCategory)
	s.Equal("waiting on design review", stored.BlockerDetail)

	_, err = s.repo.GetPartial(s.ctx, &standup.GetPartialInput{ParticipantID: "p1"})
	s.ErrorIs(err, standup.ErrPartialNotFound)

	stats, err := s.reports.Stats(s.ctx, &report.StatsInput{})
	s.Require().NoError(err)
	s.Equal("2024-01-15", stats.StandupDate)
	s.Equal(1, stats.RespondedCount)
	s.Equal(0, stats.MissingCount)
	s.Equal(1, stats.BlockedCount)

	// Nobody is left to remind
	promptsBefore := len(s.prompts)
	tick, err = s.scheduler.Tick(s.ctx, s.at(13, 0))
	s.Require().NoError(err)
	s.Equal([]models.TriggerKind{models.TriggerReminder}, tick.Fired)
	s.Equal(0, tick.Reminder.Total())
	s.Len(s.prompts, promptsBefore)

	s.mockModel.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string) (string, error) {
			s.Contains(prompt, "**Priya** [Mood: 3/5]")
			s.Contains(prompt, "- Priya [Dependency]: waiting on design review")
			return "## ⚠️ Blockers\n- **Priya**: design review", nil
		})
	s.mockPublisher.EXPECT().PublishSummary(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, publication *scheduler.Publication) error {
			s.Equal("2024-01-15", publication.StandupDate)
			s.True(strings.HasPrefix(publication.Text, "📅 **Daily Standup Summary - 2024-01-15**"))
			return nil
		})

	tick, err = s.scheduler.Tick(s.ctx, s.at(17, 0))
	s.Require().NoError(err)
	s.Equal([]models.TriggerKind{models.TriggerSummary}, tick.Fired)
	s.False(tick.Summary.Failed)

	// A restart replaying the summary minute finds the durable marker
	tick, err = s.scheduler.Tick(s.ctx, s.at(17, 0))
	s.Require().NoError(err)
	s.Empty(tick.Fired)
}

func (s *StandupFlowTestSuite) TestSessionResumesAfterRestart() {
	s.at(8, 0)
	_, err := s.roster.Register(s.ctx, &roster.RegisterInput{ParticipantID: "p1", Name: "Priya"})
	s.Require().NoError(err)

	_, err = s.scheduler.Tick(s.ctx, s.at(9, 0))
	s.Require().NoError(err)

	s.answer("Wrote the parser")
	s.answer("Wire the scheduler")
	s.answer("None")
	_, err = s.sessions.SelectBlocker(s.ctx, &session.SelectBlockerInput{ParticipantID: "p1", Category: models.BlockerTechnical})
	s.Require().NoError(err)

	// A new engine has no in-memory sessions, only the checkpoint
	restarted, err := session.NewService(&session.Config{
		Repository: s.repo,
		Messenger:  s.mockMessenger,
		Clock:      s.clock,
		Logger:     logger.Discard(),
	})
	s.Require().NoError(err)

	s.at(10, 0)
	ignored, err := restarted.HandleText(s.ctx, &session.HandleTextInput{ParticipantID: "p1", Text: "hello"})
	s.Require().NoError(err)
	s.False(ignored.Handled)

	resumed, err := restarted.StartSession(s.ctx, &session.StartSessionInput{ParticipantID: "p1", Reminder: true})
	s.Require().NoError(err)
	s.Equal(session.StartStatusResumed, resumed.Status)
	s.Equal(models.StepBlockerDetail, resumed.Step)
	s.True(s.lastPrompt().Resumed)
	s.True(s.lastPrompt().Reminder)
}
