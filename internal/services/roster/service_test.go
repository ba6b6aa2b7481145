package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/standupbot/internal/common/clock/mocks"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
	standupMocks "github.com/KirkDiggler/standupbot/internal/repositories/standup/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RosterServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *standupMocks.MockRepository
	mockClock *clockMocks.MockClock
	service   Service
	ctx       context.Context
	now       time.Time
}

func (s *RosterServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = standupMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	svc, err := NewService(&Config{
		Repository: s.mockRepo,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestRosterServiceSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}

func (s *RosterServiceTestSuite) TestNewServiceValidation() {
	_, err := NewService(nil)
	s.Equal(ErrNilConfig, err)

	_, err = NewService(&Config{Clock: s.mockClock})
	s.Equal(ErrNilRepository, err)

	_, err = NewService(&Config{Repository: s.mockRepo})
	s.Equal(ErrNilClock, err)
}

func (s *RosterServiceTestSuite) TestRegisterNewParticipant() {
	s.mockRepo.EXPECT().GetParticipant(gomock.Any(), &standup.GetParticipantInput{ParticipantID: "u1"}).
		Return(nil, standup.ErrParticipantNotFound)
	s.mockRepo.EXPECT().SaveParticipant(gomock.Any(), &standup.SaveParticipantInput{
		Participant: &models.Participant{ID: "u1", Name: "Alice", Active: true, RegisteredAt: s.now},
	}).Return(nil)

	output, err := s.service.Register(s.ctx, &RegisterInput{ParticipantID: "u1", Name: " Alice "})
	s.Require().NoError(err)
	s.Equal(RegisterStatusRegistered, output.Status)
	s.Equal("Alice", output.Participant.Name)
}

func (s *RosterServiceTestSuite) TestRegisterAlreadyActive() {
	s.mockRepo.EXPECT().GetParticipant(gomock.Any(), gomock.Any()).
		Return(&models.Participant{ID: "u1", Name: "Alice", Active: true}, nil)

	output, err := s.service.Register(s.ctx, &RegisterInput{ParticipantID: "u1", Name: "Alice"})
	s.Require().NoError(err)
	s.Equal(RegisterStatusAlreadyActive, output.Status)
}

func (s *RosterServiceTestSuite) TestRegisterReactivatesWithNewName() {
	s.mockRepo.EXPECT().GetParticipant(gomock.Any(), gomock.Any()).
		Return(&models.Participant{ID: "u1", Name: "alice_old", Active: false}, nil)
	s.mockRepo.EXPECT().SetParticipantActive(gomock.Any(), &standup.SetParticipantActiveInput{
		ParticipantID: "u1",
		Active:        true,
		Name:          "Alice",
	}).Return(nil)

	output, err := s.service.Register(s.ctx, &RegisterInput{ParticipantID: "u1", Name: "Alice"})
	s.Require().NoError(err)
	s.Equal(RegisterStatusReactivated, output.Status)
	s.True(output.Participant.Active)
	s.Equal("Alice", output.Participant.Name)
}

func (s *RosterServiceTestSuite) TestRegisterValidation() {
	_, err := s.service.Register(s.ctx, &RegisterInput{Name: "Alice"})
	s.Equal(ErrEmptyID, err)

	_, err = s.service.Register(s.ctx, &RegisterInput{ParticipantID: "u1", Name: "  "})
	s.Equal(ErrEmptyName, err)
}

func (s *RosterServiceTestSuite) TestRegisterStorageError() {
	storageErr := &standup.StorageError{Op: "get participant", Err: errors.New("connection refused")}
	s.mockRepo.EXPECT().GetParticipant(gomock.Any(), gomock.Any()).Return(nil, storageErr)

	_, err := s.service.Register(s.ctx, &RegisterInput{ParticipantID: "u1", Name: "Alice"})
	s.True(standup.IsStorageError(err))
}

func (s *RosterServiceTestSuite) TestUnregister() {
	s.mockRepo.EXPECT().IsActive(gomock.Any(), &standup.IsActiveInput{ParticipantID: "u1"}).Return(true, nil)
	s.mockRepo.EXPECT().SetParticipantActive(gomock.Any(), &standup.SetParticipantActiveInput{
		ParticipantID: "u1",
		Active:        false,
	}).Return(nil)

	output, err := s.service.Unregister(s.ctx, &UnregisterInput{ParticipantID: "u1"})
	s.Require().NoError(err)
	s.True(output.Unregistered)
}

func (s *RosterServiceTestSuite) TestUnregisterNotActive() {
	s.mockRepo.EXPECT().IsActive(gomock.Any(), gomock.Any()).Return(false, nil)

	output, err := s.service.Unregister(s.ctx, &UnregisterInput{ParticipantID: "u1"})
	s.Require().NoError(err)
	s.False(output.Unregistered)
}

func (s *RosterServiceTestSuite) TestSetTimezone() {
	s.mockRepo.EXPECT().GetParticipant(gomock.Any(), gomock.Any()).
		Return(&models.Participant{ID: "u1", Name: "Alice", Active: true}, nil)
	s.mockRepo.EXPECT().SaveParticipant(gomock.Any(), &standup.SaveParticipantInput{
		Participant: &models.Participant{ID: "u1", Name: "Alice", Active: true, Timezone: "Asia/Kolkata"},
	}).Return(nil)

	output, err := s.service.SetTimezone(s.ctx, &SetTimezoneInput{ParticipantID: "u1", Timezone: "Asia/Kolkata"})
	s.Require().NoError(err)
	s.Equal("Asia/Kolkata", output.Participant.Timezone)
}

func (s *RosterServiceTestSuite) TestSetTimezoneRejectsUnknownZone() {
	_, err := s.service.SetTimezone(s.ctx, &SetTimezoneInput{ParticipantID: "u1", Timezone: "Mars/Olympus"})
	s.Equal(ErrInvalidTimezone, err)
}

func (s *RosterServiceTestSuite) TestSetTimezoneNotRegistered() {
	s.mockRepo.EXPECT().GetParticipant(gomock.Any(), gomock.Any()).Return(nil, standup.ErrParticipantNotFound)

	_, err := s.service.SetTimezone(s.ctx, &SetTimezoneInput{ParticipantID: "u1", Timezone: "UTC"})
	s.Equal(ErrNotRegistered, err)
}

func (s *RosterServiceTestSuite) TestStatusWithResponse() {
	response := &models.StandupResponse{ID: "r1", ParticipantID: "u1", StandupDate: "2024-01-15"}

	s.mockRepo.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(models.DefaultSettings(), nil)
	s.mockRepo.EXPECT().GetParticipant(gomock.Any(), gomock.Any()).
		Return(&models.Participant{ID: "u1", Name: "Alice", Active: true, Timezone: "America/New_York"}, nil)
	s.mockRepo.EXPECT().GetResponse(gomock.Any(), &standup.GetResponseInput{ParticipantID: "u1", StandupDate: "2024-01-15"}).
		Return(response, nil)

	output, err := s.service.Status(s.ctx, &StatusInput{ParticipantID: "u1"})
	s.Require().NoError(err)
	s.True(output.Registered)
	s.True(output.InWindow)
	s.Equal("2024-01-15", output.StandupDate)
	s.Equal(response, output.Response)
	s.Equal(5, output.LocalTime.Hour())
}

func (s *RosterServiceTestSuite) TestStatusWithoutResponse() {
	s.mockRepo.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(models.DefaultSettings(), nil)
	s.mockRepo.EXPECT().GetParticipant(gomock.Any(), gomock.Any()).
		Return(&models.Participant{ID: "u1", Name: "Alice", Active: true}, nil)
	s.mockRepo.EXPECT().GetResponse(gomock.Any(), gomock.Any()).Return(nil, standup.ErrResponseNotFound)

	output, err := s.service.Status(s.ctx, &StatusInput{ParticipantID: "u1"})
	s.Require().NoError(err)
	s.True(output.Registered)
	s.Nil(output.Response)
	s.Equal(10, output.LocalTime.Hour())
}

func (s *RosterServiceTestSuite) TestStatusNotRegistered() {
	s.mockRepo.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(models.DefaultSettings(), nil)
	s.mockRepo.EXPECT().GetParticipant(gomock.Any(), gomock.Any()).
		Return(&models.Participant{ID: "u1", Name: "Alice", Active: false}, nil)

	output, err := s.service.Status(s.ctx, &StatusInput{ParticipantID: "u1"})
	s.Require().NoError(err)
	s.False(output.Registered)
	s.Nil(output.Participant)
}

func (s *RosterServiceTestSuite) TestList() {
	participants := []*models.Participant{{ID: "u1", Name: "Alice", Active: true}, {ID: "u2", Name: "Bob", Active: true}}
	s.mockRepo.EXPECT().ListActiveParticipants(gomock.Any(), gomock.Any()).
		Return(&standup.ListActiveParticipantsOutput{Participants: participants}, nil)

	output, err := s.service.List(s.ctx, &ListInput{})
	s.Require().NoError(err)
	s.Equal(2, output.Count())
	s.Equal(participants, output.Participants)
}
