package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates all necessary tables and indexes.
// Note: WAL mode is configured in db.go.
func InitSchema(db *sql.DB) error {
	if err := createProgramsTable(db); err != nil {
		return err
	}

	if err := createBranchesTable(db); err != nil {
		return err
	}

	if err := createClassTimetablesTable(db); err != nil {
		return err
	}

	if err := createScholarshipsTable(db); err != nil {
		return err
	}

	if err := createCircularsTable(db); err != nil {
		return err
	}

	return createSessionsTable(db)
}

// Localized text columns (name, description, title, content) hold JSON
// objects keyed by language code, decoded into i18n.Text.

func createProgramsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS programs (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		duration INTEGER NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_programs_is_active ON programs(is_active);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create programs table: %w", err)
	}

	return nil
}

func createBranchesTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS branches (
		program_code TEXT NOT NULL REFERENCES programs(code),
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		semester_fee INTEGER NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (program_code, code)
	);
	CREATE INDEX IF NOT EXISTS idx_branches_program_code ON branches(program_code);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create branches table: %w", err)
	}

	return nil
}

func createClassTimetablesTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS class_timetables (
		program_code TEXT NOT NULL REFERENCES programs(code),
		semester INTEGER NOT NULL CHECK(semester BETWEEN 1 AND 12),
		timetable TEXT NOT NULL,
		academic_year TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (program_code, semester)
	);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create class_timetables table: %w", err)
	}

	return nil
}

func createScholarshipsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS scholarships (
		name_en TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		eligibility TEXT NOT NULL,
		application_process TEXT NOT NULL,
		amount TEXT,
		deadline INTEGER,
		is_active INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_scholarships_is_active ON scholarships(is_active);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create scholarships table: %w", err)
	}

	return nil
}

func createCircularsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS circulars (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		category TEXT NOT NULL CHECK(category IN ('exam', 'scholarship', 'fees', 'general', 'holiday', 'event')),
		priority INTEGER NOT NULL DEFAULT 5,
		published_date INTEGER NOT NULL,
		last_date INTEGER,
		is_active INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_circulars_priority_published ON circulars(priority DESC, published_date DESC);
	CREATE INDEX IF NOT EXISTS idx_circulars_is_active ON circulars(is_active);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create circulars table: %w", err)
	}

	return nil
}

// createSessionsTable creates the dialogue state table. The version column
// backs optimistic concurrency: writers carry the version they read, and a
// mismatch means another turn won the race.
func createSessionsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		session_id TEXT PRIMARY KEY,
		language TEXT NOT NULL,
		current_intent TEXT NOT NULL DEFAULT '',
		awaiting_step TEXT NOT NULL DEFAULT '',
		selected_program TEXT NOT NULL DEFAULT '',
		selected_branch TEXT NOT NULL DEFAULT '',
		selected_semester INTEGER NOT NULL DEFAULT 0,
		last_scholarship TEXT NOT NULL DEFAULT '',
		step_started_at INTEGER NOT NULL DEFAULT 0,
		version INTEGER NOT NULL DEFAULT 1,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at);
	`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}

	return nil
}
