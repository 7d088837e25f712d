// Package session defines the persisted dialogue state for a chat session.
package session

import (
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
	"github.com/adityaraj161616/campus-chatbot-go/internal/intent"
)

// Step names the piece of input an active flow is waiting for.
type Step string

const (
	StepProgram             Step = "program"
	StepBranch              Step = "branch"
	StepSemester            Step = "semester"
	StepScholarshipFollowup Step = "scholarship_followup"
)

// State is the durable dialogue state for one session. Every chat turn
// loads it, mutates it in memory, and writes it back in a single update
// guarded by the Version field.
type State struct {
	SessionID string
	Language  i18n.Language

	// Active flow. Both empty when the session is idle.
	CurrentIntent intent.Intent
	AwaitingStep  Step

	// Collected flow inputs.
	SelectedProgram  string
	SelectedBranch   string
	SelectedSemester int

	// LastScholarship holds the English name of the most recently
	// discussed scholarship, so bare follow-ups like "eligibility"
	// resolve against it.
	LastScholarship string

	StepStartedAt time.Time

	// Version increments on every successful write. A stale write
	// fails with ErrVersionConflict instead of clobbering newer state.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns an idle session state.
func New(sessionID string, lang i18n.Language) *State {
	now := time.Now().UTC()
	return &State{
		SessionID: sessionID,
		Language:  lang,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// InFlow reports whether a guided flow is active and waiting for input.
func (s *State) InFlow() bool {
	return s.CurrentIntent != "" && s.AwaitingStep != ""
}

// ClearFlow resets all flow fields, returning the session to idle.
func (s *State) ClearFlow() {
	s.CurrentIntent = ""
	s.AwaitingStep = ""
	s.SelectedProgram = ""
	s.SelectedBranch = ""
	s.SelectedSemester = 0
	s.LastScholarship = ""
}

// StartFlow begins a new flow at the given step, discarding any prior
// flow inputs.
func (s *State) StartFlow(in intent.Intent, step Step) {
	s.ClearFlow()
	s.CurrentIntent = in
	s.AwaitingStep = step
	s.StepStartedAt = time.Now().UTC()
}
