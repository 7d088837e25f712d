package storage

import (
	"context"
	"testing"
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

func seedTestPrograms(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()
	programs := []Program{
		{Code: "BTECH", Name: i18n.Text{EN: "B.Tech", HI: "बी.टेक"}, Duration: 8, IsActive: true},
		{Code: "MBA", Name: i18n.Text{EN: "MBA"}, Duration: 4, IsActive: true},
		{Code: "BARCH", Name: i18n.Text{EN: "B.Arch"}, Duration: 10, IsActive: false},
	}
	for i := range programs {
		if err := db.SaveProgram(ctx, &programs[i]); err != nil {
			t.Fatalf("SaveProgram failed: %v", err)
		}
	}
}

func seedTestBranches(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()
	branches := []Branch{
		{
			ProgramCode: "BTECH", Code: "CSE",
			Name:        i18n.Text{EN: "Computer Science and Engineering", HI: "कंप्यूटर विज्ञान और इंजीनियरिंग"},
			SemesterFee: 125000, IsActive: true,
		},
		{
			ProgramCode: "BTECH", Code: "ME",
			Name:        i18n.Text{EN: "Mechanical Engineering"},
			SemesterFee: 105000, IsActive: true,
		},
		{
			ProgramCode: "BTECH", Code: "EEE",
			Name:        i18n.Text{EN: "Electrical and Electronics Engineering"},
			SemesterFee: 110000, IsActive: false,
		},
	}
	for i := range branches {
		if err := db.SaveBranch(ctx, &branches[i]); err != nil {
			t.Fatalf("SaveBranch failed: %v", err)
		}
	}
}

func TestGetProgram(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	seedTestPrograms(t, db)
	ctx := context.Background()

	p, err := db.GetProgram(ctx, "BTECH")
	if err != nil {
		t.Fatalf("GetProgram failed: %v", err)
	}
	if p == nil {
		t.Fatal("Expected program, got nil")
	}
	if p.Duration != 8 {
		t.Errorf("Duration = %d, want 8", p.Duration)
	}
	if p.Name.Get(i18n.Hindi) != "बी.टेक" {
		t.Errorf("Hindi name = %q", p.Name.Get(i18n.Hindi))
	}
}

func TestGetProgram_InactiveExcluded(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	seedTestPrograms(t, db)

	p, err := db.GetProgram(context.Background(), "BARCH")
	if err != nil {
		t.Fatalf("GetProgram failed: %v", err)
	}
	if p != nil {
		t.Error("Inactive program should not be returned")
	}
}

func TestGetProgram_NotFound(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	p, err := db.GetProgram(context.Background(), "PHD")
	if err != nil {
		t.Fatalf("GetProgram failed: %v", err)
	}
	if p != nil {
		t.Error("Expected nil for missing program")
	}
}

func TestListActivePrograms(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	seedTestPrograms(t, db)

	programs, err := db.ListActivePrograms(context.Background())
	if err != nil {
		t.Fatalf("ListActivePrograms failed: %v", err)
	}
	if len(programs) != 2 {
		t.Fatalf("Expected 2 active programs, got %d", len(programs))
	}
	// Ordered by code
	if programs[0].Code != "BTECH" || programs[1].Code != "MBA" {
		t.Errorf("Unexpected order: %s, %s", programs[0].Code, programs[1].Code)
	}
}

func TestSaveProgram_Upsert(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()

	p := &Program{Code: "BCA", Name: i18n.Text{EN: "BCA"}, Duration: 6, IsActive: true}
	if err := db.SaveProgram(ctx, p); err != nil {
		t.Fatalf("SaveProgram failed: %v", err)
	}

	p.Duration = 8
	if err := db.SaveProgram(ctx, p); err != nil {
		t.Fatalf("SaveProgram upsert failed: %v", err)
	}

	got, err := db.GetProgram(ctx, "BCA")
	if err != nil {
		t.Fatalf("GetProgram failed: %v", err)
	}
	if got.Duration != 8 {
		t.Errorf("Duration = %d after upsert, want 8", got.Duration)
	}
}

func TestListActiveBranches(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	seedTestPrograms(t, db)
	seedTestBranches(t, db)

	branches, err := db.ListActiveBranches(context.Background(), "BTECH")
	if err != nil {
		t.Fatalf("ListActiveBranches failed: %v", err)
	}
	if len(branches) != 2 {
		t.Fatalf("Expected 2 active branches, got %d", len(branches))
	}
	if branches[0].Code != "CSE" {
		t.Errorf("First branch = %s, want CSE", branches[0].Code)
	}
	if branches[0].SemesterFee != 125000 {
		t.Errorf("SemesterFee = %d", branches[0].SemesterFee)
	}
}

func TestFindBranch(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	seedTestPrograms(t, db)
	seedTestBranches(t, db)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		wantCode string
	}{
		{"exact code", "CSE", "CSE"},
		{"lowercase code", "cse", "CSE"},
		{"padded code", "  CSE  ", "CSE"},
		{"english name substring", "computer science", "CSE"},
		{"hindi name substring", "कंप्यूटर विज्ञान", "CSE"},
		{"full english name", "Mechanical Engineering", "ME"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := db.FindBranch(ctx, "BTECH", tt.input)
			if err != nil {
				t.Fatalf("FindBranch failed: %v", err)
			}
			if b == nil {
				t.Fatalf("FindBranch(%q) = nil, want %s", tt.input, tt.wantCode)
			}
			if b.Code != tt.wantCode {
				t.Errorf("FindBranch(%q) = %s, want %s", tt.input, b.Code, tt.wantCode)
			}
		})
	}
}

func TestFindBranch_NoMatch(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	seedTestPrograms(t, db)
	seedTestBranches(t, db)

	b, err := db.FindBranch(context.Background(), "BTECH", "astrophysics")
	if err != nil {
		t.Fatalf("FindBranch failed: %v", err)
	}
	if b != nil {
		t.Errorf("Expected no match, got %s", b.Code)
	}
}

func TestFindBranch_InactiveExcluded(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	seedTestPrograms(t, db)
	seedTestBranches(t, db)

	b, err := db.FindBranch(context.Background(), "BTECH", "EEE")
	if err != nil {
		t.Fatalf("FindBranch failed: %v", err)
	}
	if b != nil {
		t.Error("Inactive branch should not match")
	}
}

func TestClassTimetable_RoundTrip(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	seedTestPrograms(t, db)
	ctx := context.Background()

	tt := &ClassTimetable{
		ProgramCode: "BTECH", Semester: 1, AcademicYear: "2026-27", IsActive: true,
		Week: Week{
			Monday: []TimetableEntry{
				{Time: "9:00-10:00", Subject: "Mathematics-I", Faculty: "Dr. Sharma", Venue: "Lecture Hall 1"},
			},
			Saturday: []TimetableEntry{
				{Time: "10:00-11:00", Subject: "Library"},
			},
		},
	}
	if err := db.SaveClassTimetable(ctx, tt); err != nil {
		t.Fatalf("SaveClassTimetable failed: %v", err)
	}

	got, err := db.GetClassTimetable(ctx, "BTECH", 1)
	if err != nil {
		t.Fatalf("GetClassTimetable failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected timetable, got nil")
	}
	if len(got.Week.Monday) != 1 || got.Week.Monday[0].Subject != "Mathematics-I" {
		t.Errorf("Monday = %+v", got.Week.Monday)
	}
	if got.AcademicYear != "2026-27" {
		t.Errorf("AcademicYear = %q", got.AcademicYear)
	}

	days := got.Week.Ordered()
	if len(days) != 2 || days[0].Day != "Monday" || days[1].Day != "Saturday" {
		t.Errorf("Ordered days = %+v", days)
	}
}

func TestGetClassTimetable_NotPublished(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	seedTestPrograms(t, db)

	got, err := db.GetClassTimetable(context.Background(), "BTECH", 7)
	if err != nil {
		t.Fatalf("GetClassTimetable failed: %v", err)
	}
	if got != nil {
		t.Error("Expected nil for unpublished timetable")
	}
}

func TestListActiveScholarships(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()

	scholarships := []Scholarship{
		{
			NameEN: "Merit-cum-Means Scholarship",
			Name:   i18n.Text{EN: "Merit-cum-Means Scholarship", HI: "मेरिट-कम-मीन्स छात्रवृत्ति"},
			Description: i18n.Text{EN: "Covers up to 50% of tuition fees."},
			Eligibility: i18n.Text{EN: "Minimum 75% marks."},
			ApplicationProcess: i18n.Text{EN: "Submit the form at the scholarship cell."},
			Amount:   "Up to 50% of tuition fees",
			Deadline: time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC),
			IsActive: true,
		},
		{
			NameEN:             "Alumni Grant",
			Name:               i18n.Text{EN: "Alumni Grant"},
			Description:        i18n.Text{EN: "Discontinued grant."},
			Eligibility:        i18n.Text{EN: "None."},
			ApplicationProcess: i18n.Text{EN: "Closed."},
			IsActive:           false,
		},
	}
	for i := range scholarships {
		if err := db.SaveScholarship(ctx, &scholarships[i]); err != nil {
			t.Fatalf("SaveScholarship failed: %v", err)
		}
	}

	got, err := db.ListActiveScholarships(ctx)
	if err != nil {
		t.Fatalf("ListActiveScholarships failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 active scholarship, got %d", len(got))
	}
	if got[0].NameEN != "Merit-cum-Means Scholarship" {
		t.Errorf("NameEN = %q", got[0].NameEN)
	}
	if got[0].Deadline.IsZero() {
		t.Error("Deadline should round-trip")
	}
	if got[0].Name.Get(i18n.Hindi) != "मेरिट-कम-मीन्स छात्रवृत्ति" {
		t.Errorf("Hindi name = %q", got[0].Name.Get(i18n.Hindi))
	}
}

func TestListLatestCirculars_OrderAndLimit(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	circulars := []Circular{
		{Title: i18n.Text{EN: "Old low"}, Content: i18n.Text{EN: "c"}, Category: "general", Priority: 3, PublishedDate: base, IsActive: true},
		{Title: i18n.Text{EN: "Exam schedule"}, Content: i18n.Text{EN: "c"}, Category: "exam", Priority: 9, PublishedDate: base.AddDate(0, 0, 1), IsActive: true},
		{Title: i18n.Text{EN: "Newer exam note"}, Content: i18n.Text{EN: "c"}, Category: "exam", Priority: 9, PublishedDate: base.AddDate(0, 0, 5), IsActive: true},
		{Title: i18n.Text{EN: "Hidden"}, Content: i18n.Text{EN: "c"}, Category: "general", Priority: 10, PublishedDate: base, IsActive: false},
		{Title: i18n.Text{EN: "Holiday"}, Content: i18n.Text{EN: "c"}, Category: "holiday", Priority: 5, PublishedDate: base, IsActive: true},
	}
	for i := range circulars {
		if err := db.SaveCircular(ctx, &circulars[i]); err != nil {
			t.Fatalf("SaveCircular failed: %v", err)
		}
	}

	got, err := db.ListLatestCirculars(ctx, 3)
	if err != nil {
		t.Fatalf("ListLatestCirculars failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 circulars, got %d", len(got))
	}
	// Priority DESC, then published date DESC within the same priority.
	if got[0].Title.EN != "Newer exam note" {
		t.Errorf("First = %q", got[0].Title.EN)
	}
	if got[1].Title.EN != "Exam schedule" {
		t.Errorf("Second = %q", got[1].Title.EN)
	}
	if got[2].Title.EN != "Holiday" {
		t.Errorf("Third = %q", got[2].Title.EN)
	}
}

func TestSaveCircular_AssignsID(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	c := &Circular{
		Title: i18n.Text{EN: "New notice"}, Content: i18n.Text{EN: "Body"},
		Category: "general", Priority: 5,
		PublishedDate: time.Now().UTC(), IsActive: true,
	}
	if err := db.SaveCircular(context.Background(), c); err != nil {
		t.Fatalf("SaveCircular failed: %v", err)
	}
	if c.ID == 0 {
		t.Error("Expected assigned ID after insert")
	}
}

func TestSeedIfEmpty(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()

	if err := SeedIfEmpty(ctx, db); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}

	count, err := db.CountPrograms(ctx)
	if err != nil {
		t.Fatalf("CountPrograms failed: %v", err)
	}
	if count == 0 {
		t.Fatal("Expected seeded programs")
	}

	// Second call must be a no-op.
	if err := SeedIfEmpty(ctx, db); err != nil {
		t.Fatalf("SeedIfEmpty rerun failed: %v", err)
	}
	count2, err := db.CountPrograms(ctx)
	if err != nil {
		t.Fatalf("CountPrograms failed: %v", err)
	}
	if count2 != count {
		t.Errorf("Seed rerun changed program count: %d -> %d", count, count2)
	}

	// Seeded references must resolve end to end.
	b, err := db.FindBranch(ctx, "BTECH", "cse")
	if err != nil {
		t.Fatalf("FindBranch failed: %v", err)
	}
	if b == nil {
		t.Error("Seeded BTECH CSE branch not found")
	}
	tt, err := db.GetClassTimetable(ctx, "BTECH", 1)
	if err != nil {
		t.Fatalf("GetClassTimetable failed: %v", err)
	}
	if tt == nil {
		t.Error("Seeded BTECH semester 1 timetable not found")
	}
}
