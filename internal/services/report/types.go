package report

import (
	"github.com/KirkDiggler/standupbot/internal/common/clock"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/KirkDiggler/standupbot/internal/repositories/standup"
)

// Config holds the dependencies of the report service
type Config struct {
	// Repository is the standup store
	Repository standup.Repository

	// Clock resolves the current logical date when none is given
	Clock clock.Clock
}

// StatsInput contains parameters for Stats; an empty date means the current one
type StatsInput struct {
	StandupDate string
}

// StatsOutput is the aggregate view of one logical date
type StatsOutput struct {
	StandupDate     string
	RegisteredCount int
	RespondedCount  int
	MissingCount    int
	BlockedCount    int
	LateCount       int

	// NonResponders are the active participants without a response
	NonResponders []*models.Participant

	// Blocked are the responses reporting a blocker
	Blocked []*models.StandupResponse

	// Responses are every finalized response in submission order
	Responses []*models.StandupResponse
}

// ResponseRate returns responded/registered as a percentage
func (s *StatsOutput) ResponseRate() int {
	if s.RegisteredCount == 0 {
		return 0
	}
	return s.RespondedCount * 100 / s.RegisteredCount
}

// ResponsesInput contains parameters for Responses; an empty date means the current one
type ResponsesInput struct {
	StandupDate string
}

// ResponsesOutput contains the responses of a date
type ResponsesOutput struct {
	StandupDate string
	Responses   []*models.StandupResponse
}

// NonRespondersInput contains parameters for NonResponders; an empty date means the current one
type NonRespondersInput struct {
	StandupDate string
}

// NonRespondersOutput contains the missing participants of a date
type NonRespondersOutput struct {
	StandupDate  string
	Participants []*models.Participant
}
