package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/standupbot/internal/common/logger"
	"github.com/charmbracelet/log"
)

// service implements the Service interface
type service struct {
	model  Model
	logger *log.Logger
}

// NewService creates a new summary service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	return &service{
		model:  cfg.Model,
		logger: logger.OrDefault(cfg.Logger),
	}, nil
}

// Header returns the first line of every generated digest
func Header(date string) string {
	return fmt.Sprintf("📅 **Daily Standup Summary - %s**", date)
}

// EmptyText is the digest of a date without responses
func EmptyText(date string) string {
	return fmt.Sprintf("📋 **No responses collected for %s**", date)
}

// ErrorText is the digest delivered when generation failed
func ErrorText(err error) string {
	return fmt.Sprintf("❌ Error generating summary: %v", err)
}

// Generate builds the digest for a date
func (s *service) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil || input.StandupDate == "" {
		return nil, errors.New("standup date cannot be empty")
	}

	if len(input.Responses) == 0 {
		return &GenerateOutput{Text: EmptyText(input.StandupDate)}, nil
	}

	if s.model == nil {
		return &GenerateOutput{Text: Header(input.StandupDate) + "\n\n" + plainDigest(input)}, nil
	}

	text, err := s.model.Generate(ctx, buildPrompt(input))
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("model returned an empty summary")
	}
	if err != nil {
		genErr := &GenerationError{StandupDate: input.StandupDate, Err: err}
		s.logger.Error("failed to generate summary", "date", input.StandupDate, "error", err)
		return &GenerateOutput{Text: ErrorText(err), Err: genErr}, nil
	}

	return &GenerateOutput{Text: Header(input.StandupDate) + "\n\n" + text}, nil
}

// plainDigest renders the responses without a model
func plainDigest(input *GenerateInput) string {
	var b strings.Builder

	b.WriteString("## 📝 Updates\n")
	for _, r := range input.Responses {
		writeResponse(&b, r)
	}

	b.WriteString("\n## ⚠️ Blockers\n")
	blocked := 0
	for _, r := range input.Responses {
		if !r.IsBlocked() {
			continue
		}
		blocked++
		fmt.Fprintf(&b, "- **%s** — [%s]: %s\n", r.ParticipantName, blockerCategory(r), r.BlockerDetail)
	}
	if blocked == 0 {
		b.WriteString("✅ No blockers reported\n")
	}

	b.WriteString("\n## ❌ Missing Responses\n")
	if missing := missingList(input.NonResponders); missing != "" {
		b.WriteString(missing + "\n")
	} else {
		b.WriteString("✅ All registered users responded\n")
	}

	return b.String()
}
