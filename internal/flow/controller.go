// Package flow implements the guided multi-turn dialogue flows: semester
// fees, exam timetables, scholarships and circulars. A Controller takes one
// user turn plus the session's dialogue state, mutates the state in memory
// and returns the reply; persisting the state is the caller's job so the
// whole turn lands in a single guarded write.
package flow

import (
	"context"
	"log/slog"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
	"github.com/adityaraj161616/campus-chatbot-go/internal/intent"
	"github.com/adityaraj161616/campus-chatbot-go/internal/session"
	"github.com/adityaraj161616/campus-chatbot-go/internal/sliceutil"
	"github.com/adityaraj161616/campus-chatbot-go/internal/storage"
)

// Option is one selectable choice offered to the user.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Reply is the outcome of one dialogue turn.
type Reply struct {
	Message          string
	Options          []Option
	RequiresNextStep bool
}

// Repository is the subset of storage the flows read from.
type Repository interface {
	ListActivePrograms(ctx context.Context) ([]storage.Program, error)
	GetProgram(ctx context.Context, code string) (*storage.Program, error)
	ListActiveBranches(ctx context.Context, programCode string) ([]storage.Branch, error)
	FindBranch(ctx context.Context, programCode, input string) (*storage.Branch, error)
	GetClassTimetable(ctx context.Context, programCode string, semester int) (*storage.ClassTimetable, error)
	ListActiveScholarships(ctx context.Context) ([]storage.Scholarship, error)
	ListLatestCirculars(ctx context.Context, limit int) ([]storage.Circular, error)
}

// TimetableTranslator localizes timetable cells before rendering.
type TimetableTranslator interface {
	Timetable(ctx context.Context, week storage.Week, target i18n.Language) storage.Week
}

// circularsLimit caps how many circulars one reply lists.
const circularsLimit = 5

// Controller routes turns to the four flows.
type Controller struct {
	repo       Repository
	timetables TimetableTranslator
}

// NewController creates a flow controller. timetables may be nil, in which
// case timetable cells stay in English for non-English sessions.
func NewController(repo Repository, timetables TimetableTranslator) *Controller {
	return &Controller{repo: repo, timetables: timetables}
}

// HandleTurn processes one user message against the session state.
// detected is the intent found in the message, or empty.
//
// Routing order:
//  1. A new intent while a different flow is active abandons that flow,
//     including all collected inputs, and starts the new one in the same turn.
//  2. An active flow consumes the message as its next step input.
//  3. No flow and no intent yields the fallback message.
//  4. Otherwise the detected intent starts its flow.
func (c *Controller) HandleTurn(ctx context.Context, state *session.State, message string, detected intent.Intent) (*Reply, error) {
	if state.CurrentIntent != "" && detected != "" && detected != state.CurrentIntent {
		slog.InfoContext(ctx, "topic change, abandoning active flow",
			"previous_intent", state.CurrentIntent,
			"new_intent", detected)
		state.ClearFlow()
		return c.startFlow(ctx, state, message, detected)
	}

	if state.InFlow() {
		return c.continueFlow(ctx, state, message)
	}

	if detected == "" {
		return &Reply{Message: Fallback(state.Language)}, nil
	}

	return c.startFlow(ctx, state, message, detected)
}

func (c *Controller) startFlow(ctx context.Context, state *session.State, message string, detected intent.Intent) (*Reply, error) {
	switch detected {
	case intent.SemesterFees:
		return c.startFees(ctx, state)
	case intent.ExamTimetable:
		return c.startTimetable(ctx, state)
	case intent.Scholarships:
		return c.handleScholarships(ctx, state, message)
	case intent.Circulars:
		return c.handleCirculars(ctx, state)
	default:
		return &Reply{Message: Fallback(state.Language)}, nil
	}
}

func (c *Controller) continueFlow(ctx context.Context, state *session.State, message string) (*Reply, error) {
	switch state.CurrentIntent {
	case intent.SemesterFees:
		return c.continueFees(ctx, state, message)
	case intent.ExamTimetable:
		return c.continueTimetable(ctx, state, message)
	case intent.Scholarships:
		return c.handleScholarships(ctx, state, message)
	default:
		// Unknown persisted state, reset rather than loop forever.
		slog.WarnContext(ctx, "unknown flow state, resetting",
			"intent", state.CurrentIntent,
			"step", state.AwaitingStep)
		state.ClearFlow()
		return &Reply{Message: Fallback(state.Language)}, nil
	}
}

// programOptions builds the selectable program list. Seed data can carry the
// same code across academic years, only the first row per code becomes an
// option.
func programOptions(programs []storage.Program, lang i18n.Language) []Option {
	programs = sliceutil.Deduplicate(programs, func(p storage.Program) string { return p.Code })
	opts := make([]Option, len(programs))
	for i, p := range programs {
		opts[i] = Option{ID: p.Code, Label: p.Name.Get(lang), Value: p.Code}
	}
	return opts
}

func branchOptions(branches []storage.Branch, lang i18n.Language) []Option {
	branches = sliceutil.Deduplicate(branches, func(b storage.Branch) string { return b.Code })
	opts := make([]Option, len(branches))
	for i, b := range branches {
		opts[i] = Option{ID: b.Code, Label: b.Name.Get(lang), Value: b.Code}
	}
	return opts
}
