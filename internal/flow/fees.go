package flow

import (
	"context"
	"strings"

	"github.com/adityaraj161616/campus-chatbot-go/internal/intent"
	"github.com/adityaraj161616/campus-chatbot-go/internal/session"
)

// startFees begins the fees flow by asking for the program.
func (c *Controller) startFees(ctx context.Context, state *session.State) (*Reply, error) {
	programs, err := c.repo.ListActivePrograms(ctx)
	if err != nil {
		return nil, err
	}

	state.StartFlow(intent.SemesterFees, session.StepProgram)
	return &Reply{
		Message:          Translation("selectProgram", state.Language),
		Options:          programOptions(programs, state.Language),
		RequiresNextStep: true,
	}, nil
}

func (c *Controller) continueFees(ctx context.Context, state *session.State, message string) (*Reply, error) {
	switch state.AwaitingStep {
	case session.StepProgram:
		return c.feesProgramStep(ctx, state, message)
	case session.StepBranch:
		return c.feesBranchStep(ctx, state, message)
	default:
		state.ClearFlow()
		return &Reply{Message: Fallback(state.Language)}, nil
	}
}

// feesProgramStep validates the program choice and moves to branch selection.
// An invalid choice re-offers the program options without losing the flow.
func (c *Controller) feesProgramStep(ctx context.Context, state *session.State, message string) (*Reply, error) {
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
	state.AwaitingStep = session.StepBranch

	branches, err := c.repo.ListActiveBranches(ctx, program.Code)
	if err != nil {
		return nil, err
	}
	return &Reply{
		Message:          Translation("selectBranch", state.Language),
		Options:          branchOptions(branches, state.Language),
		RequiresNextStep: true,
	}, nil
}

// feesBranchStep resolves the branch and answers with the fee. Completion
// clears every flow field, so the session state and the final answer commit
// together in the caller's single write.
func (c *Controller) feesBranchStep(ctx context.Context, state *session.State, message string) (*Reply, error) {
	branch, err := c.repo.FindBranch(ctx, state.SelectedProgram, message)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		branches, err := c.repo.ListActiveBranches(ctx, state.SelectedProgram)
		if err != nil {
			return nil, err
		}
		return &Reply{
			Message:          Translation("invalidSelection", state.Language),
			Options:          branchOptions(branches, state.Language),
			RequiresNextStep: true,
		}, nil
	}

	program, err := c.repo.GetProgram(ctx, state.SelectedProgram)
	if err != nil {
		return nil, err
	}
	if program == nil {
		state.ClearFlow()
		return &Reply{Message: Fallback(state.Language)}, nil
	}

	state.ClearFlow()
	return &Reply{
		Message: feesResponseMessage(state.Language, *program, *branch),
	}, nil
}
