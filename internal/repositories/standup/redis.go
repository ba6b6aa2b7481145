package standup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/standupbot/internal/common/uuid"
	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix  = "participant:"
	activeParticipantsKey = "participants:active"
	responseKeyPrefix     = "response:"
	dateResponsesPrefix   = "responses:"
	partialKeyPrefix      = "partial:"
	settingsKey           = "settings"
	triggerKeyPrefix      = "trigger:"

	// maxTxRetries bounds optimistic transaction retries on a contended key
	maxTxRetries = 25
)

// Config holds configuration for the Redis standup repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator creates response IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID

	// DefaultSettings are returned until settings are saved; defaults to models.DefaultSettings
	DefaultSettings *models.Settings
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client          *redis.Client
	uuid            uuid.UUID
	defaultSettings models.Settings
}

// NewRedis creates a new Redis-backed standup repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.New()
	}

	defaults := models.DefaultSettings()
	if cfg.DefaultSettings != nil {
		defaults = cfg.DefaultSettings
	}

	return &redisRepository{
		client:          cfg.RedisClient,
		uuid:            generator,
		defaultSettings: *defaults,
	}, nil
}

func participantKey(participantID string) string {
	return participantKeyPrefix + participantID
}

// SaveParticipant persists a participant and its roster membership
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	participant := input.Participant
	if err := validateParticipantID(participant.ID); err != nil {
		return err
	}

	participantJSON, err := json.Marshal(participant)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, participantKey(participant.ID), participantJSON, 0)
	if participant.Active {
		pipe.SAdd(ctx, activeParticipantsKey, participant.ID)
	} else {
		pipe.SRem(ctx, activeParticipantsKey, participant.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return storageError("save participant", err)
	}

	return nil
}

// GetParticipant retrieves a participant by ID
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return nil, err
	}

	return r.getParticipant(ctx, r.client, input.ParticipantID)
}

func (r *redisRepository) getParticipant(ctx context.Context, cmd redis.Cmdable, participantID string) (*models.Participant, error) {
	participantJSON, err := cmd.Get(ctx, participantKey(participantID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrParticipantNotFound
		}
		return nil, storageError("get participant", err)
	}

	var participant models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &participant, nil
}

// SetParticipantActive flips the active flag of an existing participant
func (r *redisRepository) SetParticipantActive(ctx context.Context, input *SetParticipantActiveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return err
	}

	key := participantKey(input.ParticipantID)
	return r.withRetries(ctx, "set participant active", func(tx *redis.Tx) error {
		participant, err := r.getParticipant(ctx, tx, input.ParticipantID)
		if err != nil {
			return err
		}

		participant.Active = input.Active
		if input.Name != "" {
			participant.Name = input.Name
		}

		participantJSON, err := json.Marshal(participant)
		if err != nil {
			return fmt.Errorf("failed to marshal participant: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, participantJSON, 0)
			if input.Active {
				pipe.SAdd(ctx, activeParticipantsKey, input.ParticipantID)
			} else {
				pipe.SRem(ctx, activeParticipantsKey, input.ParticipantID)
			}
			return nil
		})
		return err
	}, key)
}

// IsActive reports whether a participant is registered and active
func (r *redisRepository) IsActive(ctx context.Context, input *IsActiveInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return false, err
	}

	active, err := r.client.SIsMember(ctx, activeParticipantsKey, input.ParticipantID).Result()
	if err != nil {
		return false, storageError("check active participant", err)
	}

	return active, nil
}

// ListActiveParticipants returns every active participant ordered by name
func (r *redisRepository) ListActiveParticipants(ctx context.Context, input *ListActiveParticipantsInput) (*ListActiveParticipantsOutput, error) {
	participantIDs, err := r.client.SMembers(ctx, activeParticipantsKey).Result()
	if err != nil {
		return nil, storageError("list active participants", err)
	}

	participants, err := r.getParticipants(ctx, participantIDs)
	if err != nil {
		return nil, err
	}

	return &ListActiveParticipantsOutput{
		Participants: participants,
	}, nil
}

// getParticipants loads participant records in one pipeline, skipping IDs whose
// record has vanished
func (r *redisRepository) getParticipants(ctx context.Context, participantIDs []string) ([]*models.Participant, error) {
	if len(participantIDs) == 0 {
		return []*models.Participant{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(participantIDs))
	for _, participantID := range participantIDs {
		commands = append(commands, pipe.Get(ctx, participantKey(participantID)))
	}

	// redis.Nil for individual keys is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, storageError("get participants", err)
	}

	participants := make([]*models.Participant, 0, len(participantIDs))
	for i, cmd := range commands {
		participantJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, storageError("get participant "+participantIDs[i], err)
		}

		var participant models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", participantIDs[i], err)
		}
		participants = append(participants, &participant)
	}

	sortParticipants(participants)
	return participants, nil
}

// withRetries runs fn in an optimistic WATCH transaction, retrying when a
// watched key changes underneath it
func (r *redisRepository) withRetries(ctx context.Context, op string, fn func(tx *redis.Tx) error, keys ...string) error {
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, fn, keys...)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if isDomainError(err) {
			return err
		}
		return storageError(op, err)
	}
	return storageError(op, errors.New("too many concurrent updates"))
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrParticipantNotFound) ||
		errors.Is(err, ErrResponseNotFound) ||
		errors.Is(err, ErrPartialNotFound) ||
		IsStorageError(err)
}

func sortParticipants(participants []*models.Participant) {
	sort.Slice(participants, func(i, j int) bool {
		if participants[i].Name == participants[j].Name {
			return participants[i].ID < participants[j].ID
		}
		return participants[i].Name < participants[j].Name
	})
}
