package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

// setupTestDB creates an isolated in-memory database for a test.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewTestDB()
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// TestNew_FileSystemDatabase tests database creation with file system persistence
func TestNew_FileSystemDatabase(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir() // Automatically cleaned up after test
	dbPath := filepath.Join(tmpDir, "test.db")

	ctx := context.Background()
	db, err := New(dbPath, 24*time.Hour)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Verify database files exist
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("Database file not created: %s", dbPath)
	}

	// Test write operation
	program := &Program{
		Code:     "BTECH",
		Name:     i18n.Text{EN: "B.Tech", HI: "बी.टेक"},
		Duration: 8,
		IsActive: true,
	}

	if err := db.SaveProgram(ctx, program); err != nil {
		t.Fatalf("SaveProgram failed: %v", err)
	}

	// Verify WAL file created after write
	walPath := dbPath + "-wal"
	if _, err := os.Stat(walPath); os.IsNotExist(err) {
		t.Errorf("WAL file not created after write: %s", walPath)
	}

	// Test read operation
	retrieved, err := db.GetProgram(ctx, program.Code)
	if err != nil {
		t.Fatalf("GetProgram failed: %v", err)
	}

	if retrieved == nil {
		t.Fatal("Expected program, got nil")
		return
	}

	if retrieved.Code != program.Code {
		t.Errorf("Expected code %s, got %s", program.Code, retrieved.Code)
	}
	if retrieved.Name.HI != program.Name.HI {
		t.Errorf("Expected Hindi name %q, got %q", program.Name.HI, retrieved.Name.HI)
	}
}

// TestNew_NestedDirectory tests database creation with nested directory path
func TestNew_NestedDirectory(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "sub1", "sub2", "test.db")

	db, err := New(dbPath, 24*time.Hour)
	if err != nil {
		t.Fatalf("Failed to create database with nested path: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Verify directory created
	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Errorf("Nested directory not created: %s", filepath.Dir(dbPath))
	}

	// Verify database file exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("Database file not created in nested directory: %s", dbPath)
	}
}

// TestReady_DatabaseConnectivity tests the readiness probe query
func TestReady_DatabaseConnectivity(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Ready(ctx); err != nil {
		t.Errorf("Ready failed on healthy database: %v", err)
	}
}

// TestClose_CleanShutdown tests clean database shutdown
func TestClose_CleanShutdown(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	ctx := context.Background()
	db, err := New(dbPath, 24*time.Hour)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}

	// Write some data
	program := &Program{
		Code:     "MBA",
		Name:     i18n.Text{EN: "MBA"},
		Duration: 4,
		IsActive: true,
	}

	if err := db.SaveProgram(ctx, program); err != nil {
		t.Fatalf("SaveProgram failed: %v", err)
	}

	// Close database
	if err := db.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}

	// Verify no corruption: reopen and read
	db2, err := New(dbPath, 24*time.Hour)
	if err != nil {
		t.Fatalf("Failed to reopen database after close: %v", err)
	}
	defer func() { _ = db2.Close() }()

	retrieved, err := db2.GetProgram(ctx, program.Code)
	if err != nil {
		t.Fatalf("GetProgram failed after reopen: %v", err)
	}

	if retrieved == nil || retrieved.Code != program.Code {
		t.Error("Data lost after close and reopen")
	}
}
