package summary

//go:generate mockgen -package=mocks -destination=mocks/mock_model.go github.com/KirkDiggler/standupbot/internal/services/summary Model
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standupbot/internal/services/summary Service

import (
	"context"
)

// Model is a text generation backend
type Model interface {
	// Generate returns the model's completion of prompt
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service turns a day's responses into a digest
type Service interface {
	// Generate builds the digest for a date. Generation failures are rendered
	// into the returned text and never returned as an error.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}
