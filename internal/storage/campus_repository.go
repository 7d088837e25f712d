package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

func marshalText(t i18n.Text) (string, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("marshal localized text: %w", err)
	}
	return string(b), nil
}

func unmarshalText(s string) (i18n.Text, error) {
	var t i18n.Text
	if err := json.Unmarshal([]byte(s), &t); err != nil {
		return i18n.Text{}, fmt.Errorf("unmarshal localized text: %w", err)
	}
	return t, nil
}

// SaveProgram inserts or updates a program record
func (db *DB) SaveProgram(ctx context.Context, program *Program) error {
	name, err := marshalText(program.Name)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO programs (code, name, duration, is_active)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			name = excluded.name,
			duration = excluded.duration,
			is_active = excluded.is_active
	`
	start := time.Now()
	_, err = db.conn.ExecContext(ctx, query, program.Code, name, program.Duration, program.IsActive)
	if err != nil {
		slog.ErrorContext(ctx, "failed to save program",
			"program_code", program.Code,
			"error", err)
		return fmt.Errorf("failed to save program: %w", err)
	}

	// Warn on slow queries (>100ms)
	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "SaveProgram",
			"duration_ms", duration.Milliseconds(),
			"program_code", program.Code)
	}
	return nil
}

// ListActivePrograms returns all active programs ordered by code.
func (db *DB) ListActivePrograms(ctx context.Context) ([]Program, error) {
	query := `SELECT code, name, duration, is_active FROM programs WHERE is_active = 1 ORDER BY code`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query programs", "error", err)
		return nil, fmt.Errorf("query programs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var programs []Program
	for rows.Next() {
		var p Program
		var name string
		if err := rows.Scan(&p.Code, &name, &p.Duration, &p.IsActive); err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		if p.Name, err = unmarshalText(name); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// GetProgram retrieves an active program by its uppercase code.
// Returns nil when no such program exists.
func (db *DB) GetProgram(ctx context.Context, code string) (*Program, error) {
	query := `SELECT code, name, duration, is_active FROM programs WHERE code = ? AND is_active = 1`

	var p Program
	var name string
	err := db.conn.QueryRowContext(ctx, query, code).Scan(&p.Code, &name, &p.Duration, &p.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to query program",
			"program_code", code,
			"error", err)
		return nil, fmt.Errorf("query program: %w", err)
	}

	if p.Name, err = unmarshalText(name); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveBranch inserts or updates a branch record
func (db *DB) SaveBranch(ctx context.Context, branch *Branch) error {
	name, err := marshalText(branch.Name)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO branches (program_code, code, name, semester_fee, is_active)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(program_code, code) DO UPDATE SET
			name = excluded.name,
			semester_fee = excluded.semester_fee,
			is_active = excluded.is_active
	`
	start := time.Now()
	_, err = db.conn.ExecContext(ctx, query, branch.ProgramCode, branch.Code, name, branch.SemesterFee, branch.IsActive)
	if err != nil {
		slog.ErrorContext(ctx, "failed to save branch",
			"program_code", branch.ProgramCode,
			"branch_code", branch.Code,
			"error", err)
		return fmt.Errorf("failed to save branch: %w", err)
	}

	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "SaveBranch",
			"duration_ms", duration.Milliseconds(),
			"branch_code", branch.Code)
	}
	return nil
}

// ListActiveBranches returns the active branches of a program ordered by code.
func (db *DB) ListActiveBranches(ctx context.Context, programCode string) ([]Branch, error) {
	query := `
		SELECT program_code, code, name, semester_fee, is_active
		FROM branches WHERE program_code = ? AND is_active = 1 ORDER BY code
	`

	rows, err := db.conn.QueryContext(ctx, query, programCode)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query branches",
			"program_code", programCode,
			"error", err)
		return nil, fmt.Errorf("query branches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var branches []Branch
	for rows.Next() {
		var b Branch
		var name string
		if err := rows.Scan(&b.ProgramCode, &b.Code, &name, &b.SemesterFee, &b.IsActive); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		if b.Name, err = unmarshalText(name); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

// FindBranch resolves free-form branch input against a program's branches.
// Matching tries, in order: normalized code equality (uppercase, spaces to
// underscores), localized name containment in any language, and finally
// case-insensitive code equality. Returns nil when nothing matches.
func (db *DB) FindBranch(ctx context.Context, programCode, input string) (*Branch, error) {
	branches, err := db.ListActiveBranches(ctx, programCode)
	if err != nil {
		return nil, err
	}

	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(input)), " ", "_")
	for i := range branches {
		if branches[i].Code == normalized {
			return &branches[i], nil
		}
	}

	lowerInput := strings.ToLower(strings.TrimSpace(input))
	if lowerInput == "" {
		return nil, nil
	}
	for i := range branches {
		for _, name := range branches[i].Name.Values() {
			if strings.Contains(strings.ToLower(name), lowerInput) {
				return &branches[i], nil
			}
		}
		if strings.ToLower(branches[i].Code) == lowerInput {
			return &branches[i], nil
		}
	}

	return nil, nil
}

// SaveClassTimetable inserts or updates a class timetable record
func (db *DB) SaveClassTimetable(ctx context.Context, tt *ClassTimetable) error {
	week, err := json.Marshal(tt.Week)
	if err != nil {
		return fmt.Errorf("marshal timetable: %w", err)
	}

	query := `
		INSERT INTO class_timetables (program_code, semester, timetable, academic_year, is_active)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(program_code, semester) DO UPDATE SET
			timetable = excluded.timetable,
			academic_year = excluded.academic_year,
			is_active = excluded.is_active
	`
	start := time.Now()
	_, err = db.conn.ExecContext(ctx, query, tt.ProgramCode, tt.Semester, string(week), tt.AcademicYear, tt.IsActive)
	if err != nil {
		slog.ErrorContext(ctx, "failed to save class timetable",
			"program_code", tt.ProgramCode,
			"semester", tt.Semester,
			"error", err)
		return fmt.Errorf("failed to save class timetable: %w", err)
	}

	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "SaveClassTimetable",
			"duration_ms", duration.Milliseconds(),
			"program_code", tt.ProgramCode)
	}
	return nil
}

// GetClassTimetable retrieves the active timetable for a program semester.
// Returns nil when no timetable has been published.
func (db *DB) GetClassTimetable(ctx context.Context, programCode string, semester int) (*ClassTimetable, error) {
	query := `
		SELECT program_code, semester, timetable, academic_year, is_active
		FROM class_timetables WHERE program_code = ? AND semester = ? AND is_active = 1
	`

	var tt ClassTimetable
	var week string
	var academicYear sql.NullString
	err := db.conn.QueryRowContext(ctx, query, programCode, semester).Scan(
		&tt.ProgramCode, &tt.Semester, &week, &academicYear, &tt.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to query class timetable",
			"program_code", programCode,
			"semester", semester,
			"error", err)
		return nil, fmt.Errorf("query class timetable: %w", err)
	}

	if err := json.Unmarshal([]byte(week), &tt.Week); err != nil {
		return nil, fmt.Errorf("unmarshal timetable: %w", err)
	}
	tt.AcademicYear = academicYear.String
	return &tt, nil
}

// SaveScholarship inserts or updates a scholarship record
func (db *DB) SaveScholarship(ctx context.Context, s *Scholarship) error {
	name, err := marshalText(s.Name)
	if err != nil {
		return err
	}
	description, err := marshalText(s.Description)
	if err != nil {
		return err
	}
	eligibility, err := marshalText(s.Eligibility)
	if err != nil {
		return err
	}
	application, err := marshalText(s.ApplicationProcess)
	if err != nil {
		return err
	}

	var deadline interface{}
	if !s.Deadline.IsZero() {
		deadline = s.Deadline.Unix()
	}

	query := `
		INSERT INTO scholarships (name_en, name, description, eligibility, application_process, amount, deadline, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name_en) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			eligibility = excluded.eligibility,
			application_process = excluded.application_process,
			amount = excluded.amount,
			deadline = excluded.deadline,
			is_active = excluded.is_active
	`
	start := time.Now()
	_, err = db.conn.ExecContext(ctx, query, s.NameEN, name, description, eligibility, application, s.Amount, deadline, s.IsActive)
	if err != nil {
		slog.ErrorContext(ctx, "failed to save scholarship",
			"scholarship", s.NameEN,
			"error", err)
		return fmt.Errorf("failed to save scholarship: %w", err)
	}

	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "SaveScholarship",
			"duration_ms", duration.Milliseconds(),
			"scholarship", s.NameEN)
	}
	return nil
}

// ListActiveScholarships returns all active scholarships ordered by name.
func (db *DB) ListActiveScholarships(ctx context.Context) ([]Scholarship, error) {
	query := `
		SELECT name_en, name, description, eligibility, application_process, amount, deadline, is_active
		FROM scholarships WHERE is_active = 1 ORDER BY name_en
	`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query scholarships", "error", err)
		return nil, fmt.Errorf("query scholarships: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var scholarships []Scholarship
	for rows.Next() {
		var s Scholarship
		var name, description, eligibility, application string
		var amount sql.NullString
		var deadline sql.NullInt64
		if err := rows.Scan(&s.NameEN, &name, &description, &eligibility, &application, &amount, &deadline, &s.IsActive); err != nil {
			return nil, fmt.Errorf("scan scholarship: %w", err)
		}
		if s.Name, err = unmarshalText(name); err != nil {
			return nil, err
		}
		if s.Description, err = unmarshalText(description); err != nil {
			return nil, err
		}
		if s.Eligibility, err = unmarshalText(eligibility); err != nil {
			return nil, err
		}
		if s.ApplicationProcess, err = unmarshalText(application); err != nil {
			return nil, err
		}
		s.Amount = amount.String
		if deadline.Valid {
			s.Deadline = time.Unix(deadline.Int64, 0).UTC()
		}
		scholarships = append(scholarships, s)
	}
	return scholarships, rows.Err()
}

// SaveCircular inserts or updates a circular record.
// A zero ID inserts a new row.
func (db *DB) SaveCircular(ctx context.Context, c *Circular) error {
	title, err := marshalText(c.Title)
	if err != nil {
		return err
	}
	content, err := marshalText(c.Content)
	if err != nil {
		return err
	}

	var lastDate interface{}
	if !c.LastDate.IsZero() {
		lastDate = c.LastDate.Unix()
	}

	start := time.Now()
	if c.ID == 0 {
		query := `
			INSERT INTO circulars (title, content, category, priority, published_date, last_date, is_active)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`
		res, err := db.conn.ExecContext(ctx, query, title, content, c.Category, c.Priority, c.PublishedDate.Unix(), lastDate, c.IsActive)
		if err != nil {
			slog.ErrorContext(ctx, "failed to save circular",
				"category", c.Category,
				"error", err)
			return fmt.Errorf("failed to save circular: %w", err)
		}
		if id, err := res.LastInsertId(); err == nil {
			c.ID = id
		}
	} else {
		query := `
			UPDATE circulars SET title = ?, content = ?, category = ?, priority = ?,
				published_date = ?, last_date = ?, is_active = ?
			WHERE id = ?
		`
		if _, err := db.conn.ExecContext(ctx, query, title, content, c.Category, c.Priority, c.PublishedDate.Unix(), lastDate, c.IsActive, c.ID); err != nil {
			slog.ErrorContext(ctx, "failed to update circular",
				"circular_id", c.ID,
				"error", err)
			return fmt.Errorf("failed to update circular: %w", err)
		}
	}

	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow database operation",
			"operation", "SaveCircular",
			"duration_ms", duration.Milliseconds())
	}
	return nil
}

// ListLatestCirculars returns the newest active circulars, highest priority
// first and most recent within the same priority.
func (db *DB) ListLatestCirculars(ctx context.Context, limit int) ([]Circular, error) {
	query := `
		SELECT id, title, content, category, priority, published_date, last_date, is_active
		FROM circulars WHERE is_active = 1
		ORDER BY priority DESC, published_date DESC
		LIMIT ?
	`

	rows, err := db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query circulars", "error", err)
		return nil, fmt.Errorf("query circulars: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var circulars []Circular
	for rows.Next() {
		var c Circular
		var title, content string
		var published int64
		var lastDate sql.NullInt64
		if err := rows.Scan(&c.ID, &title, &content, &c.Category, &c.Priority, &published, &lastDate, &c.IsActive); err != nil {
			return nil, fmt.Errorf("scan circular: %w", err)
		}
		if c.Title, err = unmarshalText(title); err != nil {
			return nil, err
		}
		if c.Content, err = unmarshalText(content); err != nil {
			return nil, err
		}
		c.PublishedDate = time.Unix(published, 0).UTC()
		if lastDate.Valid {
			c.LastDate = time.Unix(lastDate.Int64, 0).UTC()
		}
		circulars = append(circulars, c)
	}
	return circulars, rows.Err()
}

// CountPrograms returns the total number of programs.
func (db *DB) CountPrograms(ctx context.Context) (int, error) {
	return db.countRows(ctx, "programs")
}

// CountScholarships returns the total number of scholarships.
func (db *DB) CountScholarships(ctx context.Context) (int, error) {
	return db.countRows(ctx, "scholarships")
}

// CountCirculars returns the total number of circulars.
func (db *DB) CountCirculars(ctx context.Context) (int, error) {
	return db.countRows(ctx, "circulars")
}

func (db *DB) countRows(ctx context.Context, table string) (int, error) {
	var count int
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}
