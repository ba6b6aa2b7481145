package standup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/redis/go-redis/v9"
)

func responseKey(standupDate, participantID string) string {
	return responseKeyPrefix + standupDate + ":" + participantID
}

func dateResponsesKey(standupDate string) string {
	return dateResponsesPrefix + standupDate
}

// UpsertResponse stores the finalized response for (participant, date). The
// existence check and the write happen in one WATCH transaction so duplicate
// submissions for the same key cannot both create a response.
func (r *redisRepository) UpsertResponse(ctx context.Context, input *UpsertResponseInput) (*UpsertResponseOutput, error) {
	if err := validateUpsertResponse(input); err != nil {
		return nil, err
	}

	now := nowOr(input.Now)
	key := responseKey(input.StandupDate, input.ParticipantID)
	output := &UpsertResponseOutput{}

	err := r.withRetries(ctx, "upsert response", func(tx *redis.Tx) error {
		existing, err := r.getResponse(ctx, tx, input.StandupDate, input.ParticipantID)
		if err != nil && !errors.Is(err, ErrResponseNotFound) {
			return err
		}

		var response *models.StandupResponse
		created := existing == nil
		if created {
			response = &models.StandupResponse{
				ID:              r.uuid.NewUUID(),
				ParticipantID:   input.ParticipantID,
				ParticipantName: input.ParticipantName,
				StandupDate:     input.StandupDate,
				SubmittedAt:     now,
				IsLate:          input.IsLate,
			}
		} else {
			response = existing
			editedAt := now
			response.EditedAt = &editedAt
		}

		response.Yesterday = input.Yesterday
		response.Today = input.Today
		response.Technical = input.Technical
		response.BlockerCategory = input.BlockerCategory
		response.BlockerDetail = input.BlockerDetail
		response.Mood = input.Mood

		responseJSON, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, responseJSON, 0)
			pipe.ZAddNX(ctx, dateResponsesKey(input.StandupDate), redis.Z{
				Score:  float64(response.SubmittedAt.UnixNano()),
				Member: input.ParticipantID,
			})
			pipe.Del(ctx, partialKey(input.ParticipantID))
			return nil
		})
		if err != nil {
			return err
		}

		output.Response = response
		output.Created = created
		return nil
	}, key)
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetResponse retrieves the response of a participant for a date
func (r *redisRepository) GetResponse(ctx context.Context, input *GetResponseInput) (*models.StandupResponse, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return nil, err
	}

	return r.getResponse(ctx, r.client, input.StandupDate, input.ParticipantID)
}

func (r *redisRepository) getResponse(ctx context.Context, cmd redis.Cmdable, standupDate, participantID string) (*models.StandupResponse, error) {
	responseJSON, err := cmd.Get(ctx, responseKey(standupDate, participantID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrResponseNotFound
		}
		return nil, storageError("get response", err)
	}

	var response models.StandupResponse
	if err := json.Unmarshal([]byte(responseJSON), &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &response, nil
}

// UpdateResponse merges a patch into an existing response and stamps its edit time
func (r *redisRepository) UpdateResponse(ctx context.Context, input *UpdateResponseInput) (*models.StandupResponse, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return nil, err
	}

	now := nowOr(input.Now)
	key := responseKey(input.StandupDate, input.ParticipantID)
	var updated *models.StandupResponse

	err := r.withRetries(ctx, "update response", func(tx *redis.Tx) error {
		response, err := r.getResponse(ctx, tx, input.StandupDate, input.ParticipantID)
		if err != nil {
			return err
		}

		applyPatch(response, input.Patch)
		response.EditedAt = &now

		responseJSON, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, responseJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = response
		return nil
	}, key)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ListResponses returns the responses for a date ordered by submission time
func (r *redisRepository) ListResponses(ctx context.Context, input *ListResponsesInput) (*ListResponsesOutput, error) {
	if input == nil || input.StandupDate == "" {
		return nil, errors.New("input and standup date cannot be empty")
	}

	participantIDs, err := r.client.ZRange(ctx, dateResponsesKey(input.StandupDate), 0, -1).Result()
	if err != nil {
		return nil, storageError("list responses", err)
	}

	if len(participantIDs) == 0 {
		return &ListResponsesOutput{
			Responses: []*models.StandupResponse{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(participantIDs))
	for _, participantID := range participantIDs {
		commands = append(commands, pipe.Get(ctx, responseKey(input.StandupDate, participantID)))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, storageError("list responses", err)
	}

	responses := make([]*models.StandupResponse, 0, len(participantIDs))
	for i, cmd := range commands {
		responseJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, storageError("get response "+participantIDs[i], err)
		}

		var response models.StandupResponse
		if err := json.Unmarshal([]byte(responseJSON), &response); err != nil {
			return nil, fmt.Errorf("failed to unmarshal response: %w", err)
		}
		responses = append(responses, &response)
	}

	return &ListResponsesOutput{
		Responses: responses,
	}, nil
}

// NonResponders returns active participants without a response for a date
func (r *redisRepository) NonResponders(ctx context.Context, input *NonRespondersInput) (*NonRespondersOutput, error) {
	if input == nil || input.StandupDate == "" {
		return nil, errors.New("input and standup date cannot be empty")
	}

	pipe := r.client.Pipeline()
	activeCmd := pipe.SMembers(ctx, activeParticipantsKey)
	respondedCmd := pipe.ZRange(ctx, dateResponsesKey(input.StandupDate), 0, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, storageError("list non-responders", err)
	}

	responded := make(map[string]bool)
	for _, participantID := range respondedCmd.Val() {
		responded[participantID] = true
	}

	var missing []string
	for _, participantID := range activeCmd.Val() {
		if !responded[participantID] {
			missing = append(missing, participantID)
		}
	}

	participants, err := r.getParticipants(ctx, missing)
	if err != nil {
		return nil, err
	}

	return &NonRespondersOutput{
		Participants: participants,
	}, nil
}
