package summary

import (
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/charmbracelet/log"
)

// Config holds the dependencies of the summary service
type Config struct {
	// Model generates the digest; when nil a plain digest is rendered instead
	Model Model

	// Logger is optional; defaults to the charmbracelet default logger
	Logger *log.Logger
}

// GenerateInput contains the data of one logical date
type GenerateInput struct {
	StandupDate   string
	Responses     []*models.StandupResponse
	NonResponders []*models.Participant
}

// GenerateOutput contains the digest text
type GenerateOutput struct {
	Text string

	// Err is set when the model failed and Text holds the fallback message
	Err *GenerationError
}
