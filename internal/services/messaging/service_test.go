package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	"github.com/KirkDiggler/standupbot/internal/services/report"
	"github.com/KirkDiggler/standupbot/internal/services/roster"
	"github.com/KirkDiggler/standupbot/internal/services/scheduler"
	"github.com/KirkDiggler/standupbot/internal/services/session"
	"github.com/KirkDiggler/standupbot/internal/services/settings"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestPromptIntro() {
	output, err := s.service.GetPromptMessage(s.ctx, &GetPromptMessageInput{
		Step:  models.StepYesterday,
		Intro: true,
	})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(output.Message, "👋 **Daily Standup Time!**"))
	s.Contains(output.Message, "📊 Progress: 0/6 questions answered")
	s.True(strings.HasSuffix(output.Message, "(Describe completed tasks)"))
}

func (s *MessagingServiceTestSuite) TestPromptResumedReminder() {
	output, err := s.service.GetPromptMessage(s.ctx, &GetPromptMessageInput{
		Step:            models.StepBlockerDetail,
		Answered:        4,
		Intro:           true,
		Resumed:         true,
		Reminder:        true,
		IsLate:          true,
		BlockerCategory: models.BlockerTechnical,
	})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(output.Message, "⏰ **Reminder:** 👋 **Welcome back!**"))
	s.Contains(output.Message, "marked late")
	s.Contains(output.Message, "📊 Progress: 4/6 questions answered")
	s.Contains(output.Message, "You selected 'Technical' blocker.")
}

func (s *MessagingServiceTestSuite) TestPromptWithoutIntro() {
	output, err := s.service.GetPromptMessage(s.ctx, &GetPromptMessageInput{Step: models.StepMood, Answered: 5})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(output.Message, "📊 Progress: 5/6"))
	s.Contains(output.Message, "How are you feeling today?")
}

func (s *MessagingServiceTestSuite) TestPromptRejectsComplete() {
	_, err := s.service.GetPromptMessage(s.ctx, &GetPromptMessageInput{Step: models.StepComplete})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestCompletion() {
	mood := 4
	output, err := s.service.GetCompletionMessage(s.ctx, &GetCompletionMessageInput{Response: &models.StandupResponse{
		Yesterday:       strings.Repeat("a", 150),
		Today:           "Wire the scheduler",
		Technical:       models.NoneText,
		BlockerCategory: models.BlockerNone,
		BlockerDetail:   models.NoneText,
		Mood:            &mood,
	}})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(output.Message, "✅ **Standup Complete!**"))
	s.Contains(output.Message, "**Yesterday:** "+strings.Repeat("a", 100)+"…")
	s.Contains(output.Message, "**Mood:** 🙂 (4/5)")
	s.Contains(output.Message, "**Blocker:** [None] None")
}

func (s *MessagingServiceTestSuite) TestCompletionNoUpdate() {
	output, err := s.service.GetCompletionMessage(s.ctx, &GetCompletionMessageInput{Response: &models.StandupResponse{
		Yesterday: models.NoUpdateText,
		Today:     models.NoUpdateText,
	}})
	s.Require().NoError(err)
	s.Equal("✅ **Noted!** You've been marked as having no update today.", output.Message)
}

func (s *MessagingServiceTestSuite) TestRegister() {
	for status, want := range map[roster.RegisterStatus]string{
		roster.RegisterStatusRegistered:    "✅",
		roster.RegisterStatusReactivated:   "✅",
		roster.RegisterStatusAlreadyActive: "ℹ️",
	} {
		output, err := s.service.GetRegisterMessage(s.ctx, &GetRegisterMessageInput{Name: "Alice", Status: status})
		s.Require().NoError(err)
		s.True(strings.HasPrefix(output.Message, want), string(status))
		s.Contains(output.Message, "Alice")
	}
}

func (s *MessagingServiceTestSuite) TestStatus() {
	output, err := s.service.GetStatusMessage(s.ctx, &GetStatusMessageInput{Status: &roster.StatusOutput{
		Registered:  true,
		Participant: &models.Participant{ID: "u1", Timezone: "Asia/Kolkata"},
		StandupDate: "2024-01-15",
		Response:    &models.StandupResponse{IsLate: true},
		InWindow:    true,
		Settings:    models.DefaultSettings(),
		LocalTime:   time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
	}})
	s.Require().NoError(err)
	s.Contains(output.Message, "2024-01-15")
	s.Contains(output.Message, "✅ Submitted (late)")
	s.Contains(output.Message, "09:00-17:00 UTC (open)")
	s.Contains(output.Message, "Asia/Kolkata")

	output, err = s.service.GetStatusMessage(s.ctx, &GetStatusMessageInput{Status: &roster.StatusOutput{}})
	s.Require().NoError(err)
	s.Contains(output.Message, "not registered")
}

func (s *MessagingServiceTestSuite) TestStatsTruncatesLists() {
	var missing []*models.Participant
	for i := 0; i < 12; i++ {
		missing = append(missing, &models.Participant{Name: fmt.Sprintf("user%02d", i)})
	}

	output, err := s.service.GetStatsMessage(s.ctx, &GetStatsMessageInput{Stats: &report.StatsOutput{
		StandupDate:     "2024-01-15",
		RegisteredCount: 14,
		RespondedCount:  2,
		MissingCount:    12,
		BlockedCount:    1,
		NonResponders:   missing,
		Blocked: []*models.StandupResponse{
			{ParticipantName: "Alice", BlockerCategory: models.BlockerDependency, BlockerDetail: "waiting on design review"},
		},
	}})
	s.Require().NoError(err)
	s.Contains(output.Message, "✅ Responded: 2 (14%)")
	s.Contains(output.Message, "user09 …and 2 more")
	s.NotContains(output.Message, "user10")
	s.Contains(output.Message, "- **Alice** [Dependency]: waiting on design review")
}

func (s *MessagingServiceTestSuite) TestResponses() {
	output, err := s.service.GetResponsesMessage(s.ctx, &GetResponsesMessageInput{StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Equal("📋 No responses for 2024-01-15 yet.", output.Message)

	output, err = s.service.GetResponsesMessage(s.ctx, &GetResponsesMessageInput{
		StandupDate: "2024-01-15",
		Responses: []*models.StandupResponse{{
			ParticipantName: "Alice",
			Yesterday:       "Parser",
			SubmittedAt:     time.Date(2024, 1, 15, 9, 12, 0, 0, time.UTC),
			IsLate:          true,
		}},
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "**Alice** (09:12) (LATE)")
	s.Contains(output.Message, "- Yesterday: Parser")
}

func (s *MessagingServiceTestSuite) TestSettings() {
	output, err := s.service.GetSettingsMessage(s.ctx, &GetSettingsMessageInput{Settings: &settings.GetOutput{
		Settings:     &models.Settings{StartTime: "09:00", EndTime: "17:00", Timezone: "UTC", SummaryChannelID: "c1", ReminderEnabled: true},
		ReminderTime: "13:00",
		LocalTime:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		StandupDate:  "2024-01-15",
		InWindow:     true,
	}})
	s.Require().NoError(err)
	s.Contains(output.Message, "Collection: 09:00-17:00")
	s.Contains(output.Message, "Reminder: on at 13:00")
	s.Contains(output.Message, "<#c1>")
}

func (s *MessagingServiceTestSuite) TestBatch() {
	output, err := s.service.GetBatchMessage(s.ctx, &GetBatchMessageInput{
		Reminder: true,
		Output:   &scheduler.BatchOutput{StandupDate: "2024-01-15", Started: 3, Skipped: 1, Failed: 1},
	})
	s.Require().NoError(err)
	s.Equal("⏰ Reminders sent for 2024-01-15: 3 started, 1 skipped, 1 failed.", output.Message)

	output, err = s.service.GetBatchMessage(s.ctx, &GetBatchMessageInput{Output: &scheduler.BatchOutput{StandupDate: "2024-01-15"}})
	s.Require().NoError(err)
	s.Contains(output.Message, "Everyone has already responded")
}

func (s *MessagingServiceTestSuite) TestErrors() {
	cases := map[error]string{
		session.ErrWindowClosed:                                           "window is closed",
		session.ErrInvalidMood:                                            "1 to 5",
		settings.ErrInvalidTime:                                           "HH:MM",
		fmt.Errorf("edit: %w", session.ErrNoResponse):                     "don't have a response",
		&session.DeliveryError{ParticipantID: "u1", Err: errors.New("x")}: "couldn't DM you",
		&standup.StorageError{Op: "get", Err: errors.New("timeout")}:      "Storage is unavailable",
	}
	for err, want := range cases {
		output, e := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: err})
		s.Require().NoError(e)
		s.Contains(output.Message, want, err.Error())
	}

	output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: errors.New("boom")})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(output.Message, "❌"))
}
