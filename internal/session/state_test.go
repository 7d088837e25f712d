package session

import (
	"testing"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
	"github.com/adityaraj161616/campus-chatbot-go/internal/intent"
)

func TestNew(t *testing.T) {
	t.Parallel()

	s := New("sess-1", i18n.Hindi)
	if s.SessionID != "sess-1" {
		t.Errorf("SessionID = %q", s.SessionID)
	}
	if s.Language != i18n.Hindi {
		t.Errorf("Language = %q", s.Language)
	}
	if s.InFlow() {
		t.Error("new state should be idle")
	}
	if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}
}

func TestStartFlowDiscardsPriorInputs(t *testing.T) {
	t.Parallel()

	s := New("sess-1", i18n.English)
	s.StartFlow(intent.SemesterFees, StepProgram)
	s.SelectedProgram = "BTECH"
	s.AwaitingStep = StepBranch

	s.StartFlow(intent.ExamTimetable, StepProgram)

	if s.CurrentIntent != intent.ExamTimetable {
		t.Errorf("CurrentIntent = %q", s.CurrentIntent)
	}
	if s.AwaitingStep != StepProgram {
		t.Errorf("AwaitingStep = %q", s.AwaitingStep)
	}
	if s.SelectedProgram != "" {
		t.Errorf("SelectedProgram = %q, want cleared", s.SelectedProgram)
	}
	if s.StepStartedAt.IsZero() {
		t.Error("StepStartedAt should be set")
	}
}

func TestClearFlow(t *testing.T) {
	t.Parallel()

	s := New("sess-1", i18n.Tamil)
	s.StartFlow(intent.Scholarships, StepScholarshipFollowup)
	s.LastScholarship = "Merit-cum-Means Scholarship"
	s.SelectedSemester = 3

	s.ClearFlow()

	if s.InFlow() {
		t.Error("state should be idle after ClearFlow")
	}
	if s.LastScholarship != "" || s.SelectedSemester != 0 {
		t.Error("flow inputs should be cleared")
	}
	if s.Language != i18n.Tamil {
		t.Error("language must survive ClearFlow")
	}
}
