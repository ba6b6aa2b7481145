package standup

import (
	"context"
	"database/sql"
	"errors"

	"github.com/KirkDiggler/standupbot/internal/models"
)

const responseColumns = `id, user_id, user_name, standup_date, yesterday, today, technical,
	blocker_category, blocker_detail, mood, submitted_at, edited_at, is_late`

func scanResponse(row scanner) (*models.StandupResponse, error) {
	var (
		r           models.StandupResponse
		category    string
		mood        sql.NullInt64
		submittedAt int64
		editedAt    sql.NullInt64
		isLate      int
	)
	err := row.Scan(&r.ID, &r.ParticipantID, &r.ParticipantName, &r.StandupDate,
		&r.Yesterday, &r.Today, &r.Technical, &category, &r.BlockerDetail,
		&mood, &submittedAt, &editedAt, &isLate)
	if err != nil {
		return nil, err
	}

	r.BlockerCategory = models.BlockerCategory(category)
	r.Mood = intPtr(mood)
	r.SubmittedAt = fromUnix(submittedAt)
	if editedAt.Valid {
		t := fromUnix(editedAt.Int64)
		r.EditedAt = &t
	}
	r.IsLate = isLate == 1
	return &r, nil
}

func getResponseTx(ctx context.Context, tx *sql.Tx, standupDate, participantID string) (*models.StandupResponse, error) {
	row := tx.QueryRowContext(ctx, `SELECT `+responseColumns+`
		FROM responses WHERE user_id = ? AND standup_date = ?`, participantID, standupDate)

	response, err := scanResponse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResponseNotFound
		}
		return nil, err
	}
	return response, nil
}

func writeResponseTx(ctx context.Context, tx *sql.Tx, r *models.StandupResponse) error {
	var editedAt sql.NullInt64
	if r.EditedAt != nil {
		editedAt = sql.NullInt64{Int64: toUnix(*r.EditedAt), Valid: true}
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO responses (`+responseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, standup_date) DO UPDATE SET
			yesterday = excluded.yesterday,
			today = excluded.today,
			technical = excluded.technical,
			blocker_category = excluded.blocker_category,
			blocker_detail = excluded.blocker_detail,
			mood = excluded.mood,
			edited_at = excluded.edited_at`,
		r.ID, r.ParticipantID, r.ParticipantName, r.StandupDate,
		r.Yesterday, r.Today, r.Technical, string(r.BlockerCategory), r.BlockerDetail,
		nullInt(r.Mood), toUnix(r.SubmittedAt), editedAt, boolToInt(r.IsLate))
	return err
}

// UpsertResponse stores the finalized response for (participant, date) and
// clears the participant's checkpoint in the same transaction
func (s *sqliteRepository) UpsertResponse(ctx context.Context, input *UpsertResponseInput) (*UpsertResponseOutput, error) {
	if err := validateUpsertResponse(input); err != nil {
		return nil, err
	}

	now := nowOr(input.Now)
	output := &UpsertResponseOutput{}

	err := s.withTx(ctx, "upsert response", func(tx *sql.Tx) error {
		existing, err := getResponseTx(ctx, tx, input.StandupDate, input.ParticipantID)
		if err != nil && !errors.Is(err, ErrResponseNotFound) {
			return err
		}

		response := existing
		created := existing == nil
		if created {
			response = &models.StandupResponse{
				ID:              s.uuid.NewUUID(),
				ParticipantID:   input.ParticipantID,
				ParticipantName: input.ParticipantName,
				StandupDate:     input.StandupDate,
				SubmittedAt:     now,
				IsLate:          input.IsLate,
			}
		} else {
			editedAt := now
			response.EditedAt = &editedAt
		}

		response.Yesterday = input.Yesterday
		response.Today = input.Today
		response.Technical = input.Technical
		response.BlockerCategory = input.BlockerCategory
		response.BlockerDetail = input.BlockerDetail
		response.Mood = input.Mood

		if err := writeResponseTx(ctx, tx, response); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM partial_sessions WHERE user_id = ?`, input.ParticipantID); err != nil {
			return err
		}

		output.Response = response
		output.Created = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetResponse retrieves the response of a participant for a date
func (s *sqliteRepository) GetResponse(ctx context.Context, input *GetResponseInput) (*models.StandupResponse, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+responseColumns+`
		FROM responses WHERE user_id = ? AND standup_date = ?`, input.ParticipantID, input.StandupDate)

	response, err := scanResponse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResponseNotFound
		}
		return nil, storageError("get response", err)
	}

	return response, nil
}

// UpdateResponse merges a patch into an existing response and stamps its edit time
func (s *sqliteRepository) UpdateResponse(ctx context.Context, input *UpdateResponseInput) (*models.StandupResponse, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return nil, err
	}

	now := nowOr(input.Now)
	var updated *models.StandupResponse

	err := s.withTx(ctx, "update response", func(tx *sql.Tx) error {
		response, err := getResponseTx(ctx, tx, input.StandupDate, input.ParticipantID)
		if err != nil {
			return err
		}

		applyPatch(response, input.Patch)
		response.EditedAt = &now

		if err := writeResponseTx(ctx, tx, response); err != nil {
			return err
		}

		updated = response
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ListResponses returns the responses for a date ordered by submission time
func (s *sqliteRepository) ListResponses(ctx context.Context, input *ListResponsesInput) (*ListResponsesOutput, error) {
	if input == nil || input.StandupDate == "" {
		return nil, errors.New("input and standup date cannot be empty")
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+responseColumns+`
		FROM responses WHERE standup_date = ?
		ORDER BY submitted_at, user_id`, input.StandupDate)
	if err != nil {
		return nil, storageError("list responses", err)
	}
	defer rows.Close()

	responses := []*models.StandupResponse{}
	for rows.Next() {
		response, err := scanResponse(rows)
		if err != nil {
			return nil, storageError("list responses", err)
		}
		responses = append(responses, response)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list responses", err)
	}

	return &ListResponsesOutput{
		Responses: responses,
	}, nil
}

// NonResponders returns active participants without a response for a date
func (s *sqliteRepository) NonResponders(ctx context.Context, input *NonRespondersInput) (*NonRespondersOutput, error) {
	if input == nil || input.StandupDate == "" {
		return nil, errors.New("input and standup date cannot be empty")
	}

	participants, err := s.queryParticipants(ctx, "list non-responders", `
		SELECT p.user_id, p.name, p.active, p.timezone, p.registered_at
		FROM participants p
		LEFT JOIN responses r ON r.user_id = p.user_id AND r.standup_date = ?
		WHERE p.active = 1 AND r.id IS NULL
		ORDER BY p.name, p.user_id`, input.StandupDate)
	if err != nil {
		return nil, err
	}

	return &NonRespondersOutput{
		Participants: participants,
	}, nil
}
