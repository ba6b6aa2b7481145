package standup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/standupbot/internal/models"
	"github.com/redis/go-redis/v9"
)

// triggerTTL keeps claimed trigger markers around long enough to cover any
// window, then lets them expire
const triggerTTL = 8 * 24 * time.Hour

// GetSettings returns the stored settings, or the defaults if none were saved
func (r *redisRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.Settings, error) {
	settingsJSON, err := r.client.Get(ctx, settingsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			defaults := r.defaultSettings
			return &defaults, nil
		}
		return nil, storageError("get settings", err)
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(settingsJSON), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings replaces the stored settings
func (r *redisRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	settingsJSON, err := json.Marshal(input.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := r.client.Set(ctx, settingsKey, settingsJSON, 0).Err(); err != nil {
		return storageError("save settings", err)
	}

	return nil
}

// ClaimTrigger marks a trigger as fired for a date using SET NX
func (r *redisRepository) ClaimTrigger(ctx context.Context, input *ClaimTriggerInput) (bool, error) {
	if input == nil || input.Kind == "" || input.StandupDate == "" {
		return false, errors.New("trigger kind and standup date cannot be empty")
	}

	key := fmt.Sprintf("%s%s:%s", triggerKeyPrefix, input.Kind, input.StandupDate)
	claimed, err := r.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), triggerTTL).Result()
	if err != nil {
		return false, storageError("claim trigger", err)
	}

	return claimed, nil
}
