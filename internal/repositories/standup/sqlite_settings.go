package standup

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/KirkDiggler/standupbot/internal/models"
)

// GetSettings returns the stored settings, or the defaults if none were saved
func (s *sqliteRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.Settings, error) {
	var (
		settings        models.Settings
		reminderEnabled int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT start_time, end_time, timezone, summary_channel_id, reminder_enabled
		FROM settings WHERE id = 1`).Scan(
		&settings.StartTime, &settings.EndTime, &settings.Timezone,
		&settings.SummaryChannelID, &reminderEnabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			defaults := s.defaultSettings
			return &defaults, nil
		}
		return nil, storageError("get settings", err)
	}

	settings.ReminderEnabled = reminderEnabled == 1
	return &settings, nil
}

// SaveSettings replaces the stored settings
func (s *sqliteRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}
	settings := input.Settings

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO settings (id, start_time, end_time, timezone, summary_channel_id, reminder_enabled)
		VALUES (1, ?, ?, ?, ?, ?)`,
		settings.StartTime, settings.EndTime, settings.Timezone,
		settings.SummaryChannelID, boolToInt(settings.ReminderEnabled))
	if err != nil {
		return storageError("save settings", err)
	}

	return nil
}

// ClaimTrigger marks a trigger as fired for a date
func (s *sqliteRepository) ClaimTrigger(ctx context.Context, input *ClaimTriggerInput) (bool, error) {
	if input == nil || input.Kind == "" || input.StandupDate == "" {
		return false, errors.New("trigger kind and standup date cannot be empty")
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO trigger_claims (kind, standup_date, claimed_at)
		VALUES (?, ?, ?)`,
		string(input.Kind), input.StandupDate, time.Now().UTC().UnixNano())
	if err != nil {
		return false, storageError("claim trigger", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storageError("claim trigger", err)
	}

	return affected == 1, nil
}
