package standup

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/stretchr/testify/suite"
)

// repositoryContractSuite holds the behaviour every Repository backend must
// share. Backend suites embed it and set repo in their SetupTest.
type repositoryContractSuite struct {
	suite.Suite
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *repositoryContractSuite) setupContract(repo Repository) {
	s.repo = repo
	s.ctx = context.Background()
	s.testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
}

func (s *repositoryContractSuite) register(id, name string) {
	err := s.repo.SaveParticipant(s.ctx, &SaveParticipantInput{
		Participant: &models.Participant{
			ID:           id,
			Name:         name,
			Active:       true,
			RegisteredAt: s.testNow,
		},
	})
	s.Require().NoError(err)
}

func (s *repositoryContractSuite) finalize(id, name, date string, now time.Time) *UpsertResponseOutput {
	mood := 3
	output, err := s.repo.UpsertResponse(s.ctx, &UpsertResponseInput{
		ParticipantID:   id,
		ParticipantName: name,
		StandupDate:     date,
		Yesterday:       "Wrote the parser",
		Today:           "Wire the scheduler",
		Technical:       "None",
		BlockerCategory: models.BlockerDependency,
		BlockerDetail:   "Waiting on API keys",
		Mood:            &mood,
		Now:             now,
	})
	s.Require().NoError(err)
	return output
}

func strPtr(s string) *string {
	return &s
}

func (s *repositoryContractSuite) TestSaveAndGetParticipant() {
	s.register("u1", "Alice")

	participant, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{ParticipantID: "u1"})
	s.Require().NoError(err)
	s.Equal("Alice", participant.Name)
	s.True(participant.Active)
	s.True(participant.RegisteredAt.Equal(s.testNow))

	_, err = s.repo.GetParticipant(s.ctx, &GetParticipantInput{ParticipantID: "missing"})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *repositoryContractSuite) TestSetParticipantActive() {
	s.register("u1", "Alice")

	err := s.repo.SetParticipantActive(s.ctx, &SetParticipantActiveInput{ParticipantID: "u1", Active: false})
	s.Require().NoError(err)

	active, err := s.repo.IsActive(s.ctx, &IsActiveInput{ParticipantID: "u1"})
	s.Require().NoError(err)
	s.False(active)

	// Reactivation refreshes the display name
	err = s.repo.SetParticipantActive(s.ctx, &SetParticipantActiveInput{ParticipantID: "u1", Active: true, Name: "Alice B"})
	s.Require().NoError(err)

	participant, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{ParticipantID: "u1"})
	s.Require().NoError(err)
	s.True(participant.Active)
	s.Equal("Alice B", participant.Name)

	err = s.repo.SetParticipantActive(s.ctx, &SetParticipantActiveInput{ParticipantID: "missing", Active: true})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *repositoryContractSuite) TestIsActiveUnknownParticipant() {
	active, err := s.repo.IsActive(s.ctx, &IsActiveInput{ParticipantID: "nobody"})
	s.Require().NoError(err)
	s.False(active)
}

func (s *repositoryContractSuite) TestListActiveParticipantsSortedByName() {
	s.register("u2", "Bob")
	s.register("u1", "Alice")
	s.register("u3", "Carol")

	err := s.repo.SetParticipantActive(s.ctx, &SetParticipantActiveInput{ParticipantID: "u3", Active: false})
	s.Require().NoError(err)

	output, err := s.repo.ListActiveParticipants(s.ctx, &ListActiveParticipantsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Participants, 2)
	s.Equal("Alice", output.Participants[0].Name)
	s.Equal("Bob", output.Participants[1].Name)
}

func (s *repositoryContractSuite) TestUpsertResponseIsIdempotent() {
	s.register("u1", "Alice")

	first := s.finalize("u1", "Alice", "2024-01-15", s.testNow)
	s.True(first.Created)
	s.NotEmpty(first.Response.ID)
	s.Nil(first.Response.EditedAt)

	later := s.testNow.Add(time.Hour)
	second := s.finalize("u1", "Alice", "2024-01-15", later)
	s.False(second.Created)
	s.Equal(first.Response.ID, second.Response.ID)
	s.True(second.Response.SubmittedAt.Equal(s.testNow))
	s.Require().NotNil(second.Response.EditedAt)
	s.True(second.Response.EditedAt.Equal(later))

	output, err := s.repo.ListResponses(s.ctx, &ListResponsesInput{StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Len(output.Responses, 1)
}

func (s *repositoryContractSuite) TestUpsertResponseKeepsIsLateFromCreation() {
	mood := 4
	_, err := s.repo.UpsertResponse(s.ctx, &UpsertResponseInput{
		ParticipantID: "u1", ParticipantName: "Alice", StandupDate: "2024-01-15",
		Yesterday: "a", Today: "b", Technical: "None",
		BlockerCategory: models.BlockerNone, BlockerDetail: "None",
		Mood: &mood, IsLate: true, Now: s.testNow,
	})
	s.Require().NoError(err)

	output, err := s.repo.UpsertResponse(s.ctx, &UpsertResponseInput{
		ParticipantID: "u1", ParticipantName: "Alice", StandupDate: "2024-01-15",
		Yesterday: "a2", Today: "b2", Technical: "None",
		BlockerCategory: models.BlockerNone, BlockerDetail: "None",
		IsLate: false, Now: s.testNow.Add(time.Minute),
	})
	s.Require().NoError(err)
	s.True(output.Response.IsLate)
	s.Equal("a2", output.Response.Yesterday)
	s.Nil(output.Response.Mood)
}

func (s *repositoryContractSuite) TestUpsertResponseClearsPartial() {
	_, err := s.repo.UpsertPartial(s.ctx, &UpsertPartialInput{
		ParticipantID: "u1", ParticipantName: "Alice", StandupDate: "2024-01-15",
		Step: models.StepMood, Answers: models.StandupAnswers{Yesterday: strPtr("a")},
		Now: s.testNow,
	})
	s.Require().NoError(err)

	s.finalize("u1", "Alice", "2024-01-15", s.testNow)

	_, err = s.repo.GetPartial(s.ctx, &GetPartialInput{ParticipantID: "u1"})
	s.ErrorIs(err, ErrPartialNotFound)
}

func (s *repositoryContractSuite) TestGetResponse() {
	s.finalize("u1", "Alice", "2024-01-15", s.testNow)

	response, err := s.repo.GetResponse(s.ctx, &GetResponseInput{ParticipantID: "u1", StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Equal("Wrote the parser", response.Yesterday)
	s.Equal(models.BlockerDependency, response.BlockerCategory)
	s.Require().NotNil(response.Mood)
	s.Equal(3, *response.Mood)
	s.False(response.IsLate)

	_, err = s.repo.GetResponse(s.ctx, &GetResponseInput{ParticipantID: "u1", StandupDate: "2024-01-16"})
	s.ErrorIs(err, ErrResponseNotFound)
}

func (s *repositoryContractSuite) TestUpdateResponseAppliesPatch() {
	created := s.finalize("u1", "Alice", "2024-01-15", s.testNow)

	edited := s.testNow.Add(30 * time.Minute)
	response, err := s.repo.UpdateResponse(s.ctx, &UpdateResponseInput{
		ParticipantID: "u1",
		StandupDate:   "2024-01-15",
		Patch:         models.StandupAnswers{Today: strPtr("Review PRs")},
		Now:           edited,
	})
	s.Require().NoError(err)
	s.Equal(created.Response.ID, response.ID)
	s.Equal("Review PRs", response.Today)
	s.Equal("Wrote the parser", response.Yesterday)
	s.Require().NotNil(response.EditedAt)
	s.True(response.EditedAt.Equal(edited))

	stored, err := s.repo.GetResponse(s.ctx, &GetResponseInput{ParticipantID: "u1", StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Equal("Review PRs", stored.Today)

	_, err = s.repo.UpdateResponse(s.ctx, &UpdateResponseInput{
		ParticipantID: "u2",
		StandupDate:   "2024-01-15",
		Patch:         models.StandupAnswers{Today: strPtr("x")},
	})
	s.ErrorIs(err, ErrResponseNotFound)
}

func (s *repositoryContractSuite) TestListResponsesOrderedBySubmission() {
	s.finalize("u2", "Bob", "2024-01-15", s.testNow.Add(time.Minute))
	s.finalize("u1", "Alice", "2024-01-15", s.testNow)
	s.finalize("u3", "Carol", "2024-01-14", s.testNow)

	output, err := s.repo.ListResponses(s.ctx, &ListResponsesInput{StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Require().Len(output.Responses, 2)
	s.Equal("u1", output.Responses[0].ParticipantID)
	s.Equal("u2", output.Responses[1].ParticipantID)

	empty, err := s.repo.ListResponses(s.ctx, &ListResponsesInput{StandupDate: "2023-12-31"})
	s.Require().NoError(err)
	s.Empty(empty.Responses)
}

func (s *repositoryContractSuite) TestNonResponders() {
	s.register("u1", "Alice")
	s.register("u2", "Bob")
	s.register("u3", "Carol")
	s.register("u4", "Dave")
	s.register("u5", "Eve")

	s.finalize("u1", "Alice", "2024-01-15", s.testNow)
	s.finalize("u3", "Carol", "2024-01-15", s.testNow)
	s.finalize("u5", "Eve", "2024-01-15", s.testNow)

	// Responses from people outside the roster do not count
	s.finalize("ghost", "Ghost", "2024-01-15", s.testNow)

	output, err := s.repo.NonResponders(s.ctx, &NonRespondersInput{StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Require().Len(output.Participants, 2)
	s.Equal("u2", output.Participants[0].ID)
	s.Equal("u4", output.Participants[1].ID)

	// Inactive participants are never missing
	err = s.repo.SetParticipantActive(s.ctx, &SetParticipantActiveInput{ParticipantID: "u4", Active: false})
	s.Require().NoError(err)

	output, err = s.repo.NonResponders(s.ctx, &NonRespondersInput{StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Require().Len(output.Participants, 1)
	s.Equal("u2", output.Participants[0].ID)
}

func (s *repositoryContractSuite) TestUpsertPartialCoalescesAnswers() {
	_, err := s.repo.UpsertPartial(s.ctx, &UpsertPartialInput{
		ParticipantID: "u1", ParticipantName: "Alice", StandupDate: "2024-01-15",
		Step: models.StepToday, Answers: models.StandupAnswers{Yesterday: strPtr("a")},
		IsLate: true, Now: s.testNow,
	})
	s.Require().NoError(err)

	partial, err := s.repo.UpsertPartial(s.ctx, &UpsertPartialInput{
		ParticipantID: "u1", ParticipantName: "Alice", StandupDate: "2024-01-15",
		Step: models.StepTechnical, Answers: models.StandupAnswers{Today: strPtr("b")},
		Now: s.testNow.Add(time.Minute),
	})
	s.Require().NoError(err)
	s.Equal(models.StepTechnical, partial.CurrentStep)
	s.True(partial.IsLate)

	stored, err := s.repo.GetPartial(s.ctx, &GetPartialInput{ParticipantID: "u1"})
	s.Require().NoError(err)
	s.Require().NotNil(stored.Answers.Yesterday)
	s.Require().NotNil(stored.Answers.Today)
	s.Equal("a", *stored.Answers.Yesterday)
	s.Equal("b", *stored.Answers.Today)
	s.Nil(stored.Answers.Technical)
	s.Nil(stored.Answers.Mood)
	s.True(stored.IsLate)
	s.True(stored.StartedAt.Equal(s.testNow))
	s.True(stored.UpdatedAt.Equal(s.testNow.Add(time.Minute)))
}

func (s *repositoryContractSuite) TestUpsertPartialReplacesStaleDate() {
	_, err := s.repo.UpsertPartial(s.ctx, &UpsertPartialInput{
		ParticipantID: "u1", ParticipantName: "Alice", StandupDate: "2024-01-14",
		Step: models.StepToday, Answers: models.StandupAnswers{Yesterday: strPtr("old")},
		Now: s.testNow,
	})
	s.Require().NoError(err)

	partial, err := s.repo.UpsertPartial(s.ctx, &UpsertPartialInput{
		ParticipantID: "u1", ParticipantName: "Alice", StandupDate: "2024-01-15",
		Step: models.StepYesterday,
		Now:  s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Equal("2024-01-15", partial.StandupDate)
	s.Nil(partial.Answers.Yesterday)
}

func (s *repositoryContractSuite) TestUpsertPartialStoresBlockerAndMood() {
	category := models.BlockerTechnical
	mood := 5
	_, err := s.repo.UpsertPartial(s.ctx, &UpsertPartialInput{
		ParticipantID: "u1", ParticipantName: "Alice", StandupDate: "2024-01-15",
		Step: models.StepMood,
		Answers: models.StandupAnswers{
			BlockerCategory: &category,
			BlockerDetail:   strPtr("CI is red"),
			Mood:            &mood,
		},
		Now: s.testNow,
	})
	s.Require().NoError(err)

	stored, err := s.repo.GetPartial(s.ctx, &GetPartialInput{ParticipantID: "u1"})
	s.Require().NoError(err)
	s.Require().NotNil(stored.Answers.BlockerCategory)
	s.Equal(models.BlockerTechnical, *stored.Answers.BlockerCategory)
	s.Require().NotNil(stored.Answers.Mood)
	s.Equal(5, *stored.Answers.Mood)
	s.Equal(models.StepMood, stored.CurrentStep)
}

func (s *repositoryContractSuite) TestDeletePartial() {
	_, err := s.repo.UpsertPartial(s.ctx, &UpsertPartialInput{
		ParticipantID: "u1", ParticipantName: "Alice", StandupDate: "2024-01-15",
		Step: models.StepYesterday, Now: s.testNow,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.DeletePartial(s.ctx, &DeletePartialInput{ParticipantID: "u1"}))

	_, err = s.repo.GetPartial(s.ctx, &GetPartialInput{ParticipantID: "u1"})
	s.ErrorIs(err, ErrPartialNotFound)

	// Deleting a missing checkpoint is not an error
	s.NoError(s.repo.DeletePartial(s.ctx, &DeletePartialInput{ParticipantID: "u1"}))
}

func (s *repositoryContractSuite) TestSettingsDefaultThenSaved() {
	settings, err := s.repo.GetSettings(s.ctx, &GetSettingsInput{})
	s.Require().NoError(err)
	s.Equal(*models.DefaultSettings(), *settings)

	err = s.repo.SaveSettings(s.ctx, &SaveSettingsInput{
		Settings: &models.Settings{
			StartTime:        "22:00",
			EndTime:          "02:00",
			Timezone:         "America/New_York",
			SummaryChannelID: "chan-1",
			ReminderEnabled:  false,
		},
	})
	s.Require().NoError(err)

	settings, err = s.repo.GetSettings(s.ctx, &GetSettingsInput{})
	s.Require().NoError(err)
	s.Equal("22:00", settings.StartTime)
	s.Equal("02:00", settings.EndTime)
	s.Equal("America/New_York", settings.Timezone)
	s.Equal("chan-1", settings.SummaryChannelID)
	s.False(settings.ReminderEnabled)
}

func (s *repositoryContractSuite) TestClaimTriggerOnce() {
	claimed, err := s.repo.ClaimTrigger(s.ctx, &ClaimTriggerInput{Kind: models.TriggerCollection, StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.True(claimed)

	claimed, err = s.repo.ClaimTrigger(s.ctx, &ClaimTriggerInput{Kind: models.TriggerCollection, StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.False(claimed)

	// Other kinds and dates are independent
	claimed, err = s.repo.ClaimTrigger(s.ctx, &ClaimTriggerInput{Kind: models.TriggerSummary, StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.True(claimed)

	claimed, err = s.repo.ClaimTrigger(s.ctx, &ClaimTriggerInput{Kind: models.TriggerCollection, StandupDate: "2024-01-16"})
	s.Require().NoError(err)
	s.True(claimed)
}

func (s *repositoryContractSuite) TestConcurrentUpsertsCreateOneResponse() {
	const workers = 8

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		ids     = map[string]bool{}
		errs    []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			output, err := s.repo.UpsertResponse(s.ctx, &UpsertResponseInput{
				ParticipantID: "u1", ParticipantName: "Alice", StandupDate: "2024-01-15",
				Yesterday: "a", Today: "b", Technical: "None",
				BlockerCategory: models.BlockerNone, BlockerDetail: "None",
				Now: s.testNow,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if output.Created {
				created++
			}
			ids[output.Response.ID] = true
		}()
	}
	wg.Wait()

	s.Empty(errs)
	s.Equal(1, created)
	s.Len(ids, 1)

	output, err := s.repo.ListResponses(s.ctx, &ListResponsesInput{StandupDate: "2024-01-15"})
	s.Require().NoError(err)
	s.Len(output.Responses, 1)
}
