package summary

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model name is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiConfig holds configuration for the Gemini model
type GeminiConfig struct {
	APIKey string
	Model  string
}

// geminiModel implements Model with the Gemini API
type geminiModel struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed Model
func NewGemini(ctx context.Context, cfg *GeminiConfig) (*geminiModel, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	return &geminiModel{
		client: client,
		model:  model,
	}, nil
}

// Generate sends prompt to Gemini and returns the response text
func (g *geminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
