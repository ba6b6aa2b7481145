package standup

import (
	"context"
	"database/sql"
	"errors"

	"github.com/KirkDiggler/standupbot/internal/models"
)

const partialColumns = `user_id, user_name, standup_date, current_step, yesterday, today, technical,
	blocker_category, blocker_detail, mood, is_late, started_at, updated_at`

func scanPartial(row scanner) (*models.PartialSession, error) {
	var (
		p                           models.PartialSession
		step                        int
		yesterday, today, technical sql.NullString
		category, detail            sql.NullString
		mood                        sql.NullInt64
		isLate                      int
		startedAt, updatedAt        int64
	)
	err := row.Scan(&p.ParticipantID, &p.ParticipantName, &p.StandupDate, &step,
		&yesterday, &today, &technical, &category, &detail, &mood,
		&isLate, &startedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	p.CurrentStep = models.StandupStep(step)
	p.Answers = models.StandupAnswers{
		Yesterday:     stringPtr(yesterday),
		Today:         stringPtr(today),
		Technical:     stringPtr(technical),
		BlockerDetail: stringPtr(detail),
		Mood:          intPtr(mood),
	}
	if category.Valid {
		c := models.BlockerCategory(category.String)
		p.Answers.BlockerCategory = &c
	}
	p.IsLate = isLate == 1
	p.StartedAt = fromUnix(startedAt)
	p.UpdatedAt = fromUnix(updatedAt)
	return &p, nil
}

// UpsertPartial merges answered fields into the participant's checkpoint
func (s *sqliteRepository) UpsertPartial(ctx context.Context, input *UpsertPartialInput) (*models.PartialSession, error) {
	if err := validateUpsertPartial(input); err != nil {
		return nil, err
	}

	now := nowOr(input.Now)
	var saved *models.PartialSession

	err := s.withTx(ctx, "upsert partial", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+partialColumns+`
			FROM partial_sessions WHERE user_id = ?`, input.ParticipantID)

		partial, err := scanPartial(row)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
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

		var category sql.NullString
		if partial.Answers.BlockerCategory != nil {
			category = sql.NullString{String: string(*partial.Answers.BlockerCategory), Valid: true}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO partial_sessions (`+partialColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			partial.ParticipantID, partial.ParticipantName, partial.StandupDate, int(partial.CurrentStep),
			nullString(partial.Answers.Yesterday), nullString(partial.Answers.Today),
			nullString(partial.Answers.Technical), category,
			nullString(partial.Answers.BlockerDetail), nullInt(partial.Answers.Mood),
			boolToInt(partial.IsLate), toUnix(partial.StartedAt), toUnix(partial.UpdatedAt))
		if err != nil {
			return err
		}

		saved = partial
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// GetPartial retrieves the participant's checkpoint
func (s *sqliteRepository) GetPartial(ctx context.Context, input *GetPartialInput) (*models.PartialSession, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+partialColumns+`
		FROM partial_sessions WHERE user_id = ?`, input.ParticipantID)

	partial, err := scanPartial(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPartialNotFound
		}
		return nil, storageError("get partial", err)
	}

	return partial, nil
}

// DeletePartial removes the participant's checkpoint
func (s *sqliteRepository) DeletePartial(ctx context.Context, input *DeletePartialInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM partial_sessions WHERE user_id = ?`, input.ParticipantID); err != nil {
		return storageError("delete partial", err)
	}

	return nil
}
