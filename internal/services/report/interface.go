package report

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standupbot/internal/services/report Service

import (
	"context"
)

// Service composes read-only views over the standup store
type Service interface {
	// Stats returns the aggregate view of a logical date
	Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error)

	// Responses returns the finalized responses of a logical date
	Responses(ctx context.Context, input *ResponsesInput) (*ResponsesOutput, error)

	// NonResponders returns the active participants missing a response
	NonResponders(ctx context.Context, input *NonRespondersInput) (*NonRespondersOutput, error)
}
