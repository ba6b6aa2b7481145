package standup

import (
	"testing"
	"time"

	uuidMocks "github.com/KirkDiggler/standupbot/internal/common/uuid/mocks"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepositoryTestSuite struct {
	repositoryContractSuite
	mr     *miniredis.Miniredis
	client *redis.Client
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.setupContract(repo)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := NewRedis(&Config{})
	s.Error(err)

	_, err = NewRedis(nil)
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestClaimTriggerExpires() {
	claimed, err := s.repo.ClaimTrigger(s.ctx, &ClaimTriggerInput{Kind: models.TriggerReminder, StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.True(claimed)

	s.Equal(triggerTTL, s.mr.TTL("trigger:reminder:2024-01-15"))

	s.mr.FastForward(triggerTTL + time.Second)

	claimed, err = s.repo.ClaimTrigger(s.ctx, &ClaimTriggerInput{Kind: models.TriggerReminder, StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.True(claimed)
}

func (s *RedisRepositoryTestSuite) TestStoreUnavailable() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	client := redis.NewClient(&redis.Options{
		Addr:       mr.Addr(),
		MaxRetries: -1,
	})
	defer client.Close()

	repo, err := NewRedis(&Config{RedisClient: client})
	s.Require().NoError(err)
	mr.Close()

	_, err = repo.ListActiveParticipants(s.ctx, &ListActiveParticipantsInput{})
	s.Require().Error(err)
	s.True(IsStorageError(err))

	_, err = repo.UpsertResponse(s.ctx, &UpsertResponseInput{
		ParticipantID: "u1", StandupDate: "2024-01-15",
	})
	s.Require().Error(err)
	s.True(IsStorageError(err))
}

func (s *RedisRepositoryTestSuite) TestResponseIDFromGenerator() {
	ctrl := gomock.NewController(s.T())
	generator := uuidMocks.NewMockUUID(ctrl)
	generator.EXPECT().NewUUID().Return("response-1").MinTimes(1)

	repo, err := NewRedis(&Config{
		RedisClient:   s.client,
		UUIDGenerator: generator,
	})
	s.Require().NoError(err)
	s.setupContract(repo)

	s.register("u1", "Alice")
	created := s.finalize("u1", "Alice", "2024-01-15", s.testNow)
	s.Equal("response-1", created.Response.ID)

	// Re-submission keeps the stored ID without asking the generator again
	updated := s.finalize("u1", "Alice", "2024-01-15", s.testNow.Add(time.Minute))
	s.Equal("response-1", updated.Response.ID)
}
