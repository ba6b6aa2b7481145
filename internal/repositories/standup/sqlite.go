package standup

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KirkDiggler/standupbot/internal/common/uuid"
	"github.com/KirkDiggler/standupbot/internal/models"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// SQLiteConfig holds configuration for the SQLite standup repository
type SQLiteConfig struct {
	// Path is the database file; ":memory:" opens a private in-memory database
	Path string

	// UUIDGenerator creates response IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID

	// DefaultSettings are returned until settings are saved; defaults to models.DefaultSettings
	DefaultSettings *models.Settings
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db              *sql.DB
	uuid            uuid.UUID
	defaultSettings models.Settings
}

// NewSQLite opens (and creates if needed) a SQLite-backed standup repository
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("database path cannot be empty")
	}

	dsn := cfg.Path
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection serializes writers, which keeps read-modify-write
	// transactions atomic and an in-memory database shared.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.New()
	}

	defaults := models.DefaultSettings()
	if cfg.DefaultSettings != nil {
		defaults = cfg.DefaultSettings
	}

	return &sqliteRepository{
		db:              db,
		uuid:            generator,
		defaultSettings: *defaults,
	}, nil
}

// Close releases the database
func (s *sqliteRepository) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction, passing domain errors through and wrapping
// driver failures in a StorageError
func (s *sqliteRepository) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError(op, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		if isDomainError(err) {
			return err
		}
		return storageError(op, err)
	}

	if err := tx.Commit(); err != nil {
		return storageError(op, err)
	}

	return nil
}

func toUnix(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromUnix(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}

// SaveParticipant creates or replaces a participant
func (s *sqliteRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}
	p := input.Participant
	if err := validateParticipantID(p.ID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO participants (user_id, name, active, timezone, registered_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			name = excluded.name,
			active = excluded.active,
			timezone = excluded.timezone,
			registered_at = excluded.registered_at`,
		p.ID, p.Name, boolToInt(p.Active), p.Timezone, toUnix(p.RegisteredAt))
	if err != nil {
		return storageError("save participant", err)
	}

	return nil
}

// GetParticipant retrieves a participant by ID
func (s *sqliteRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, name, active, timezone, registered_at
		FROM participants WHERE user_id = ?`, input.ParticipantID)

	participant, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, storageError("get participant", err)
	}

	return participant, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row scanner) (*models.Participant, error) {
	var (
		p            models.Participant
		active       int
		registeredAt int64
	)
	if err := row.Scan(&p.ID, &p.Name, &active, &p.Timezone, &registeredAt); err != nil {
		return nil, err
	}
	p.Active = active == 1
	p.RegisteredAt = fromUnix(registeredAt)
	return &p, nil
}

// SetParticipantActive flips the active flag of an existing participant
func (s *sqliteRepository) SetParticipantActive(ctx context.Context, input *SetParticipantActiveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE participants
		SET active = ?, name = CASE WHEN ? = '' THEN name ELSE ? END
		WHERE user_id = ?`,
		boolToInt(input.Active), input.Name, input.Name, input.ParticipantID)
	if err != nil {
		return storageError("set participant active", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageError("set participant active", err)
	}
	if affected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

// IsActive reports whether a participant is registered and active
func (s *sqliteRepository) IsActive(ctx context.Context, input *IsActiveInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}
	if err := validateParticipantID(input.ParticipantID); err != nil {
		return false, err
	}

	var active int
	err := s.db.QueryRowContext(ctx, `SELECT active FROM participants WHERE user_id = ?`, input.ParticipantID).Scan(&active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, storageError("is active", err)
	}

	return active == 1, nil
}

// ListActiveParticipants returns every active participant ordered by name
func (s *sqliteRepository) ListActiveParticipants(ctx context.Context, input *ListActiveParticipantsInput) (*ListActiveParticipantsOutput, error) {
	participants, err := s.queryParticipants(ctx, "list active participants", `
		SELECT user_id, name, active, timezone, registered_at
		FROM participants WHERE active = 1
		ORDER BY name, user_id`)
	if err != nil {
		return nil, err
	}

	return &ListActiveParticipantsOutput{
		Participants: participants,
	}, nil
}

func (s *sqliteRepository) queryParticipants(ctx context.Context, op, query string, args ...any) ([]*models.Participant, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(op, err)
	}
	defer rows.Close()

	participants := []*models.Participant{}
	for rows.Next() {
		participant, err := scanParticipant(rows)
		if err != nil {
			return nil, storageError(op, err)
		}
		participants = append(participants, participant)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(op, err)
	}

	return participants, nil
}
