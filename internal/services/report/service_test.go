package report

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

type ReportServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *standupMocks.MockRepository
	mockClock *clockMocks.MockClock
	service   Service
	ctx       context.Context
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = standupMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := NewService(&Config{
		Repository: s.mockRepo,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) TestStats() {
	mood := 3
	responses := []*models.StandupResponse{
		{ParticipantID: "u1", BlockerCategory: models.BlockerNone, BlockerDetail: "None", Mood: &mood},
		{ParticipantID: "u2", BlockerCategory: models.BlockerDependency, BlockerDetail: "waiting on design review", IsLate: true},
		{ParticipantID: "u3", BlockerCategory: models.BlockerNone, BlockerDetail: "none"},
	}
	missing := []*models.Participant{{ID: "u4", Name: "Dave"}}

	s.mockRepo.EXPECT().ListActiveParticipants(gomock.Any(), gomock.Any()).Return(&standup.ListActiveParticipantsOutput{
		Participants: []*models.Participant{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}, {ID: "u4"}},
	}, nil)
	s.mockRepo.EXPECT().ListResponses(gomock.Any(), &standup.ListResponsesInput{StandupDate: "2024-01-15"}).
		Return(&standup.ListResponsesOutput{Responses: responses}, nil)
	s.mockRepo.EXPECT().NonResponders(gomock.Any(), &standup.NonRespondersInput{StandupDate: "2024-01-15"}).
		Return(&standup.NonRespondersOutput{Participants: missing}, nil)

	stats, err := s.service.Stats(s.ctx, &StatsInput{StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Equal("2024-01-15", stats.StandupDate)
	s.Equal(4, stats.RegisteredCount)
	s.Equal(3, stats.RespondedCount)
	s.Equal(1, stats.MissingCount)
	s.Equal(1, stats.BlockedCount)
	s.Equal(1, stats.LateCount)
	s.Equal(75, stats.ResponseRate())
	s.Require().Len(stats.Blocked, 1)
	s.Equal("u2", stats.Blocked[0].ParticipantID)
	s.Equal(missing, stats.NonResponders)
}

func (s *ReportServiceTestSuite) TestStatsDefaultsToCurrentLogicalDate() {
	s.mockRepo.EXPECT().GetSettings(gomock.Any(), gomock.Any()).Return(&models.Settings{
		StartTime: "22:00",
		EndTime:   "02:00",
		Timezone:  "UTC",
	}, nil)
	s.mockClock.EXPECT().Now().Return(time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC))

	s.mockRepo.EXPECT().ListActiveParticipants(gomock.Any(), gomock.Any()).
		Return(&standup.ListActiveParticipantsOutput{}, nil)
	s.mockRepo.EXPECT().ListResponses(gomock.Any(), &standup.ListResponsesInput{StandupDate: "2024-01-01"}).
		Return(&standup.ListResponsesOutput{}, nil)
	s.mockRepo.EXPECT().NonResponders(gomock.Any(), &standup.NonRespondersInput{StandupDate: "2024-01-01"}).
		Return(&standup.NonRespondersOutput{}, nil)

	stats, err := s.service.Stats(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal("2024-01-01", stats.StandupDate)
	s.Equal(0, stats.ResponseRate())
	s.Empty(stats.Blocked)
}

func (s *ReportServiceTestSuite) TestStatsPropagatesStorageError() {
	storeErr := &standup.StorageError{Op: "list responses", Err: errors.New("connection refused")}

	s.mockRepo.EXPECT().ListActiveParticipants(gomock.Any(), gomock.Any()).
		Return(&standup.ListActiveParticipantsOutput{}, nil).AnyTimes()
	s.mockRepo.EXPECT().ListResponses(gomock.Any(), gomock.Any()).Return(nil, storeErr)
	s.mockRepo.EXPECT().NonResponders(gomock.Any(), gomock.Any()).
		Return(&standup.NonRespondersOutput{}, nil).AnyTimes()

	_, err := s.service.Stats(s.ctx, &StatsInput{StandupDate: "2024-01-15"})
	s.Require().Error(err)
	s.True(standup.IsStorageError(err))
}

func (s *ReportServiceTestSuite) TestInvalidDate() {
	_, err := s.service.Responses(s.ctx, &ResponsesInput{StandupDate: "15/01/2024"})
	s.ErrorIs(err, ErrInvalidDate)

	_, err = s.service.NonResponders(s.ctx, &NonRespondersInput{StandupDate: "yesterday"})
	s.ErrorIs(err, ErrInvalidDate)
}

func (s *ReportServiceTestSuite) TestResponsesAndNonResponders() {
	s.mockRepo.EXPECT().ListResponses(gomock.Any(), &standup.ListResponsesInput{StandupDate: "2024-01-15"}).
		Return(&standup.ListResponsesOutput{Responses: []*models.StandupResponse{{ID: "r1"}}}, nil)
	s.mockRepo.EXPECT().NonResponders(gomock.Any(), &standup.NonRespondersInput{StandupDate: "2024-01-15"}).
		Return(&standup.NonRespondersOutput{Participants: []*models.Participant{{ID: "u9"}}}, nil)

	responses, err := s.service.Responses(s.ctx, &ResponsesInput{StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Len(responses.Responses, 1)

	missing, err := s.service.NonResponders(s.ctx, &NonRespondersInput{StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Equal("2024-01-15", missing.StandupDate)
	s.Len(missing.Participants, 1)
}
