// Package storage provides repository interfaces for data access abstraction.
// These interfaces enable dependency inversion and facilitate testing by
// decoupling flow handlers from concrete storage implementations.
package storage

import (
	"context"

	"github.com/adityaraj161616/campus-chatbot-go/internal/session"
)

// ProgramRepository defines the interface for program and branch data operations.
type ProgramRepository interface {
	GetProgram(ctx context.Context, code string) (*Program, error)
	ListActivePrograms(ctx context.Context) ([]Program, error)
	SaveProgram(ctx context.Context, program *Program) error
	ListActiveBranches(ctx context.Context, programCode string) ([]Branch, error)
	FindBranch(ctx context.Context, programCode, input string) (*Branch, error)
	SaveBranch(ctx context.Context, branch *Branch) error
	CountPrograms(ctx context.Context) (int, error)
}

// TimetableRepository defines the interface for class timetable data operations.
type TimetableRepository interface {
	GetClassTimetable(ctx context.Context, programCode string, semester int) (*ClassTimetable, error)
	SaveClassTimetable(ctx context.Context, tt *ClassTimetable) error
}

// ScholarshipRepository defines the interface for scholarship data operations.
type ScholarshipRepository interface {
	ListActiveScholarships(ctx context.Context) ([]Scholarship, error)
	SaveScholarship(ctx context.Context, s *Scholarship) error
	CountScholarships(ctx context.Context) (int, error)
}

// CircularRepository defines the interface for circular data operations.
type CircularRepository interface {
	ListLatestCirculars(ctx context.Context, limit int) ([]Circular, error)
	SaveCircular(ctx context.Context, c *Circular) error
	CountCirculars(ctx context.Context) (int, error)
}

// SessionRepository defines the interface for dialogue state persistence.
type SessionRepository interface {
	// CreateSession inserts a fresh session row at version 1.
	CreateSession(ctx context.Context, state *session.State) error

	// GetSession loads a session's dialogue state.
	// Returns ErrSessionNotFound when the session does not exist.
	GetSession(ctx context.Context, sessionID string) (*session.State, error)

	// UpdateSession writes the full state back in one guarded statement.
	// Returns ErrVersionConflict when the caller's version is stale.
	UpdateSession(ctx context.Context, state *session.State) error

	// DeleteExpiredSessions removes sessions idle longer than the TTL.
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// CountSessions returns the total number of sessions.
	CountSessions(ctx context.Context) (int, error)
}

// HealthRepository defines the interface for health check operations.
type HealthRepository interface {
	// Ready checks if the database is ready to serve queries.
	Ready(ctx context.Context) error
}

// Repository is the aggregate interface that combines all repository interfaces.
// The DB type implements this interface, providing a single entry point for
// all data operations.
type Repository interface {
	ProgramRepository
	TimetableRepository
	ScholarshipRepository
	CircularRepository
	SessionRepository
	HealthRepository
	Close() error
}

// Ensure DB implements all repository interfaces at compile time.
var (
	_ ProgramRepository     = (*DB)(nil)
	_ TimetableRepository   = (*DB)(nil)
	_ ScholarshipRepository = (*DB)(nil)
	_ CircularRepository    = (*DB)(nil)
	_ SessionRepository     = (*DB)(nil)
	_ HealthRepository      = (*DB)(nil)
	_ Repository            = (*DB)(nil)
)
