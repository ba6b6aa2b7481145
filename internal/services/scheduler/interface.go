package scheduler

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standupbot/internal/services/scheduler Service
//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/KirkDiggler/standupbot/internal/services/scheduler Publisher

import (
	"context"
	"time"
)

// Service fires the daily collection, reminder and summary events
type Service interface {
	// Run evaluates Tick on every interval until ctx is cancelled
	Run(ctx context.Context) error

	// Tick evaluates the triggers for the minute containing now. Each trigger
	// fires at most once per logical date.
	Tick(ctx context.Context, now time.Time) (*TickOutput, error)

	// CollectNow starts sessions for every current non-responder
	CollectNow(ctx context.Context, input *CollectInput) (*BatchOutput, error)

	// RemindNow re-prompts every current non-responder
	RemindNow(ctx context.Context, input *RemindInput) (*BatchOutput, error)

	// Summarize generates the digest of a date, publishing it when requested
	Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error)
}

// Publisher delivers the daily digest
type Publisher interface {
	// PublishSummary posts the digest. An empty channel ID lets the publisher
	// choose a fallback destination.
	PublishSummary(ctx context.Context, publication *Publication) error
}
