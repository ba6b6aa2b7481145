package settings

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/standupbot/internal/common/clock/mocks"
	"github.com/KirkDiggler/standupbot/internal/common/logger"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	standupMocks "github.com/KirkDiggler/standupbot/internal/repositories/standup/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *standupMocks.MockRepository
	mockClock *clockMocks.MockClock
	service   Service
	ctx       context.Context
}

func (s *SettingsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = standupMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := NewService(&Config{
		Repository: s.mockRepo,
		Clock:      s.mockClock,
		Logger:     logger.Discard(),
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestSettingsServiceSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

func (s *SettingsServiceTestSuite) expectCurrent() {
	s.mockRepo.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(models.DefaultSettings(), nil)
}

func (s *SettingsServiceTestSuite) TestGet() {
	s.mockClock.EXPECT().Now().Return(time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC))
	s.mockRepo.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(&models.Settings{
		StartTime:       "22:00",
		EndTime:         "02:00",
		Timezone:        "UTC",
		ReminderEnabled: true,
	}, nil)

	output, err := s.service.Get(s.ctx, &GetInput{})
	s.Require().NoError(err)
	s.Equal("00:00", output.ReminderTime)
	s.Equal("2024-01-01", output.StandupDate)
	s.True(output.InWindow)
}

func (s *SettingsServiceTestSuite) TestSetWindowNormalizesTimes() {
	s.expectCurrent()
	s.mockRepo.EXPECT().SaveSettings(gomock.Any(), &standup.SaveSettingsInput{Settings: &models.Settings{
		StartTime:       "08:30",
		EndTime:         "16:00",
		Timezone:        "Asia/Kolkata",
		ReminderEnabled: true,
	}}).Return(nil)

	output, err := s.service.SetWindow(s.ctx, &SetWindowInput{
		StartTime: "8:30",
		EndTime:   "16:00",
		Timezone:  "Asia/Kolkata",
	})
	s.Require().NoError(err)
	s.Equal("08:30", output.Settings.StartTime)
}

func (s *SettingsServiceTestSuite) TestSetWindowKeepsTimezone() {
	s.expectCurrent()
	s.mockRepo.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.SetWindow(s.ctx, &SetWindowInput{StartTime: "22:00", EndTime: "02:00"})
	s.Require().NoError(err)
	s.Equal("UTC", output.Settings.Timezone)
}

func (s *SettingsServiceTestSuite) TestSetWindowValidation() {
	_, err := s.service.SetWindow(s.ctx, &SetWindowInput{StartTime: "25:00", EndTime: "17:00"})
	s.Equal(ErrInvalidTime, err)

	_, err = s.service.SetWindow(s.ctx, &SetWindowInput{StartTime: "09:00", EndTime: "9:60"})
	s.Equal(ErrInvalidTime, err)
}

func (s *SettingsServiceTestSuite) TestSetWindowRejectsEmptyWindow() {
	s.expectCurrent()

	_, err := s.service.SetWindow(s.ctx, &SetWindowInput{StartTime: "09:00", EndTime: "9:00"})
	s.Equal(ErrEmptyWindow, err)
}

func (s *SettingsServiceTestSuite) TestSetTimezone() {
	s.expectCurrent()
	s.mockRepo.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.SetTimezone(s.ctx, &SetTimezoneInput{Timezone: "Europe/Berlin"})
	s.Require().NoError(err)
	s.Equal("Europe/Berlin", output.Settings.Timezone)
}

func (s *SettingsServiceTestSuite) TestSetTimezoneRejectsUnknownZone() {
	s.expectCurrent()

	_, err := s.service.SetTimezone(s.ctx, &SetTimezoneInput{Timezone: "Mars/Olympus"})
	s.Equal(ErrInvalidTimezone, err)
}

func (s *SettingsServiceTestSuite) TestSetSummaryChannel() {
	s.expectCurrent()
	s.mockRepo.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.SetSummaryChannel(s.ctx, &SetSummaryChannelInput{ChannelID: "c42"})
	s.Require().NoError(err)
	s.Equal("c42", output.Settings.SummaryChannelID)
}

func (s *SettingsServiceTestSuite) TestSetReminderEnabled() {
	s.expectCurrent()
	s.mockRepo.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.SetReminderEnabled(s.ctx, &SetReminderEnabledInput{Enabled: false})
	s.Require().NoError(err)
	s.False(output.Settings.ReminderEnabled)
}
