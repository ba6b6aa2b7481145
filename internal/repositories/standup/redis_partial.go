package standup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/redis/go-redis/v9"
)

func partialKey(participantID string) string {
	return partialKeyPrefix + participantID
}

// UpsertPartial merges answered fields into the participant's checkpoint
func (r *redisRepository) UpsertPartial(ctx context.Context, input *UpsertPartialInput) (*models.PartialSession, error) {
	if err := validateUpsertPartial(input); err != nil {
		return nil, err
	}

	now := nowOr(input.Now)
	key := partialKey(input.ParticipantID)
	var saved *models.PartialSession

	err := r.withRetries(ctx, "upsert partial", func(tx *redis.Tx) error {
		partial, err := r.getPartial(ctx, tx, input.ParticipantID)
		if err != nil && !errors.Is(err, ErrPartialNotFound) {
			return err
		}

		// A checkpoint from another logical date never leaks answers into this one
		if partial == nil || partial.StandupDate != input.StandupDate {
			partial = &models.PartialSession{
				ParticipantID:   input.ParticipantID,
				ParticipantName: input.ParticipantName,
				StandupDate:     input.StandupDate,
				IsLate:          input.IsLate,
				StartedAt:       now,
			}
		}

		partial.Answers.Merge(input.Answers)
		partial.CurrentStep = input.Step
		partial.UpdatedAt = now

		partialJSON, err := json.Marshal(partial)
		if err != nil {
			return fmt.Errorf("failed to marshal partial session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, partialJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		saved = partial
		return nil
	}, key)
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// GetPartial retrieves the participant's checkpoint
func (r *redisRepository) GetPartial(ctx context.Context, input *GetPartialInput) (*models.PartialSession, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return nil, err
	}

	return r.getPartial(ctx, r.client, input.ParticipantID)
}

func (r *redisRepository) getPartial(ctx context.Context, cmd redis.Cmdable, participantID string) (*models.PartialSession, error) {
	partialJSON, err := cmd.Get(ctx, partialKey(participantID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPartialNotFound
		}
		return nil, storageError("get partial", err)
	}

	var partial models.PartialSession
	if err := json.Unmarshal([]byte(partialJSON), &partial); err != nil {
		return nil, fmt.Errorf("failed to unmarshal partial session: %w", err)
	}

	return &partial, nil
}

// DeletePartial removes the participant's checkpoint
func (r *redisRepository) DeletePartial(ctx context.Context, input *DeletePartialInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return err
	}

	if err := r.client.Del(ctx, partialKey(input.ParticipantID)).Err(); err != nil {
		return storageError("delete partial", err)
	}

	return nil
}
