package standup

import (
	"errors"
	"time"

	"github.com/KirkDiggler/standupbot/internal/models"
)

func validateParticipantID(id string) error {
	if id == "" {
		return errors.New("participant ID cannot be empty")
	}
	return nil
}

func validateUpsertResponse(input *UpsertResponseInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return err
	}
	if input.StandupDate == "" {
		return errors.New("standup date cannot be empty")
	}
	return nil
}

func validateUpsertPartial(input *UpsertPartialInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return err
	}
	if input.StandupDate == "" {
		return errors.New("standup date cannot be empty")
	}
	if !input.Step.IsValid() {
		return errors.New("invalid step")
	}
	return nil
}

func nowOr(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

// applyPatch merges the answered fields of patch into a finalized response
func applyPatch(response *models.StandupResponse, patch models.StandupAnswers) {
	if patch.Yesterday != nil {
		response.Yesterday = *patch.Yesterday
	}
	if patch.Today != nil {
		response.Today = *patch.Today
	}
	if patch.Technical != nil {
		response.Technical = *patch.Technical
	}
	if patch.BlockerCategory != nil {
		response.BlockerCategory = *patch.BlockerCategory
	}
	if patch.BlockerDetail != nil {
		response.BlockerDetail = *patch.BlockerDetail
	}
	if patch.Mood != nil {
		mood := *patch.Mood
		response.Mood = &mood
	}
}
