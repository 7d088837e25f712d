package flow

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
	"github.com/adityaraj161616/campus-chatbot-go/internal/intent"
	"github.com/adityaraj161616/campus-chatbot-go/internal/session"
	"github.com/adityaraj161616/campus-chatbot-go/internal/storage"
	"github.com/adityaraj161616/campus-chatbot-go/internal/stringutil"
)

// firstInteger pulls the first digit run out of inputs like "sem 3" or "3rd".
var firstInteger = regexp.MustCompile(`\d+`)

// defaultMaxSemester bounds semester input when a program's duration is unset.
const defaultMaxSemester = 8

// startTimetable begins the timetable flow by asking for the program.
func (c *Controller) startTimetable(ctx context.Context, state *session.State) (*Reply, error) {
	programs, err := c.repo.ListActivePrograms(ctx)
	if err != nil {
		return nil, err
	}

	state.StartFlow(intent.ExamTimetable, session.StepProgram)
	return &Reply{
		Message:          Translation("selectProgramTimetable", state.Language),
		Options:          programOptions(programs, state.Language),
		RequiresNextStep: true,
	}, nil
}

func (c *Controller) continueTimetable(ctx context.Context, state *session.State, message string) (*Reply, error) {
	switch state.AwaitingStep {
	case session.StepProgram:
		return c.timetableProgramStep(ctx, state, message)
	case session.StepSemester:
		return c.timetableSemesterStep(ctx, state, message)
	default:
		state.ClearFlow()
		return &Reply{Message: Fallback(state.Language)}, nil
	}
}

func (c *Controller) timetableProgramStep(ctx context.Context, state *session.State, message string) (*Reply, error) {
	code := strings.ToUpper(strings.TrimSpace(message))

	program, err := c.repo.GetProgram(ctx, code)
	if err != nil {
		return nil, err
	}
	if program == nil {
		programs, err := c.repo.ListActivePrograms(ctx)
		if err != nil {
			return nil, err
		}
		return &Reply{
			Message:          Translation("invalidSelection", state.Language),
			Options:          programOptions(programs, state.Language),
			RequiresNextStep: true,
		}, nil
	}

	state.SelectedProgram = program.Code
	state.AwaitingStep = session.StepSemester
	return &Reply{
		Message:          Translation("selectSemester", state.Language),
		Options:          semesterOptions(program, state.Language),
		RequiresNextStep: true,
	}, nil
}

// timetableSemesterStep parses the semester and answers with the schedule.
// Valid or not published, the flow always ends here; only an out-of-range
// semester keeps it open for another try.
func (c *Controller) timetableSemesterStep(ctx context.Context, state *session.State, message string) (*Reply, error) {
	program, err := c.repo.GetProgram(ctx, state.SelectedProgram)
	if err != nil {
		return nil, err
	}
	if program == nil {
		state.ClearFlow()
		return &Reply{Message: Fallback(state.Language)}, nil
	}

	maxSemester := program.Duration
	if maxSemester <= 0 {
		maxSemester = defaultMaxSemester
	}

	semester, ok := parseSemester(message, maxSemester)
	if !ok {
		return &Reply{
			Message:          Translation("invalidSelection", state.Language),
			Options:          semesterOptions(program, state.Language),
			RequiresNextStep: true,
		}, nil
	}

	state.ClearFlow()

	timetable, err := c.repo.GetClassTimetable(ctx, program.Code, semester)
	if err != nil {
		return nil, err
	}
	if timetable == nil {
		return &Reply{Message: Translation("noTimetablePublished", state.Language)}, nil
	}

	week := timetable.Week
	if state.Language != i18n.English && c.timetables != nil {
		week = c.timetables.Timetable(ctx, week, state.Language)
	}
	return &Reply{
		Message: classTimetableMessage(state.Language, program.Name.Get(state.Language), semester, week),
	}, nil
}

// parseSemester extracts the first integer from the input and bounds it.
// A bare number, the common case when the user taps an option, skips the
// regex scan.
func parseSemester(message string, maxSemester int) (int, bool) {
	match := strings.TrimSpace(message)
	if !stringutil.IsNumeric(match) {
		match = firstInteger.FindString(message)
	}
	if match == "" {
		return 0, false
	}
	semester, err := strconv.Atoi(match)
	if err != nil || semester < 1 || semester > maxSemester {
		return 0, false
	}
	return semester, true
}

func semesterOptions(program *storage.Program, lang i18n.Language) []Option {
	duration := program.Duration
	if duration <= 0 {
		duration = defaultMaxSemester
	}
	opts := make([]Option, duration)
	label := Translation("semester", lang)
	for i := 1; i <= duration; i++ {
		opts[i-1] = Option{
			ID:    fmt.Sprintf("SEM%d", i),
			Label: fmt.Sprintf("%s %d", label, i),
			Value: strconv.Itoa(i),
		}
	}
	return opts
}
