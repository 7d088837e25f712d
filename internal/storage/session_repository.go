package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	domerrors "github.com/adityaraj161616/campus-chatbot-go/internal/errors"
	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
	"github.com/adityaraj161616/campus-chatbot-go/internal/intent"
	"github.com/adityaraj161616/campus-chatbot-go/internal/session"
)

// CreateSession inserts a fresh session row at version 1.
func (db *DB) CreateSession(ctx context.Context, state *session.State) error {
	query := `
		INSERT INTO sessions (session_id, language, current_intent, awaiting_step,
			selected_program, selected_branch, selected_semester, last_scholarship,
			step_started_at, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
	`
	now := time.Now().UTC()
	state.Version = 1
	state.CreatedAt = now
	state.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx, query,
		state.SessionID, string(state.Language),
		string(state.CurrentIntent), string(state.AwaitingStep),
		state.SelectedProgram, state.SelectedBranch, state.SelectedSemester,
		state.LastScholarship, unixOrZero(state.StepStartedAt),
		now.Unix(), now.Unix())
	if err != nil {
		slog.ErrorContext(ctx, "failed to create session",
			"session_id", state.SessionID,
			"error", err)
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession loads a session's dialogue state.
// Returns ErrSessionNotFound when the session does not exist.
func (db *DB) GetSession(ctx context.Context, sessionID string) (*session.State, error) {
	query := `
		SELECT session_id, language, current_intent, awaiting_step,
			selected_program, selected_branch, selected_semester, last_scholarship,
			step_started_at, version, created_at, updated_at
		FROM sessions WHERE session_id = ?
	`

	var s session.State
	var language, currentIntent, awaitingStep string
	var stepStartedAt, createdAt, updatedAt int64
	err := db.conn.QueryRowContext(ctx, query, sessionID).Scan(
		&s.SessionID, &language, &currentIntent, &awaitingStep,
		&s.SelectedProgram, &s.SelectedBranch, &s.SelectedSemester,
		&s.LastScholarship, &stepStartedAt, &s.Version, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, domerrors.ErrSessionNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to query session",
			"session_id", sessionID,
			"error", err)
		return nil, fmt.Errorf("query session: %w", err)
	}

	s.Language = i18n.Parse(language)
	s.CurrentIntent = intent.Intent(currentIntent)
	s.AwaitingStep = session.Step(awaitingStep)
	if stepStartedAt > 0 {
		s.StepStartedAt = time.Unix(stepStartedAt, 0).UTC()
	}
	s.CreatedAt = time.Unix(createdAt, 0).UTC()
	s.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &s, nil
}

// UpdateSession writes back a session's full state in one statement, guarded
// by the version the caller read. On success the state's version increments.
// Returns ErrVersionConflict when another turn updated the row first, and
// ErrSessionNotFound when the row is gone.
func (db *DB) UpdateSession(ctx context.Context, state *session.State) error {
	query := `
		UPDATE sessions SET
			language = ?, current_intent = ?, awaiting_step = ?,
			selected_program = ?, selected_branch = ?, selected_semester = ?,
			last_scholarship = ?, step_started_at = ?,
			version = version + 1, updated_at = ?
		WHERE session_id = ? AND version = ?
	`
	now := time.Now().UTC()
	start := time.Now()
	res, err := db.conn.ExecContext(ctx, query,
		string(state.Language), string(state.CurrentIntent), string(state.AwaitingStep),
		state.SelectedProgram, state.SelectedBranch, state.SelectedSemester,
		state.LastScholarship, unixOrZero(state.StepStartedAt),
		now.Unix(), state.SessionID, state.Version)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update session",
			"session_id", state.SessionID,
			"error", err)
		return fmt.Errorf("failed to update session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if affected == 0 {
		var exists int
		err := db.conn.QueryRowContext(ctx,
			"SELECT 1 FROM sessions WHERE session_id = ?", state.SessionID).Scan(&exists)
		if err == sql.ErrNoRows {
			return domerrors.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}
		slog.WarnContext(ctx, "session version conflict",
			"session_id", state.SessionID,
			"stale_version", state.Version)
		return domerrors.ErrVersionConflict
	}

	state.Version++
	state.UpdatedAt = now

	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "UpdateSession",
			"duration_ms", duration.Milliseconds(),
			"session_id", state.SessionID)
	}
	return nil
}

// DeleteExpiredSessions removes sessions idle longer than the configured TTL.
// Returns the number of sessions removed.
func (db *DB) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-db.sessionTTL).Unix()

	res, err := db.conn.ExecContext(ctx, "DELETE FROM sessions WHERE updated_at < ?", cutoff)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete expired sessions", "error", err)
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	if deleted > 0 {
		slog.InfoContext(ctx, "expired sessions removed", "count", deleted)
	}
	return deleted, nil
}

// CountSessions returns the total number of sessions.
func (db *DB) CountSessions(ctx context.Context) (int, error) {
	return db.countRows(ctx, "sessions")
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
