package flow

import (
	"context"

	"github.com/adityaraj161616/campus-chatbot-go/internal/session"
)

// handleCirculars answers in a single turn. There is nothing to collect, so
// any lingering flow state is cleared before replying.
func (c *Controller) handleCirculars(ctx context.Context, state *session.State) (*Reply, error) {
	state.ClearFlow()

	circulars, err := c.repo.ListLatestCirculars(ctx, circularsLimit)
	if err != nil {
		return nil, err
	}
	if len(circulars) == 0 {
		return &Reply{Message: Translation("noCirculars", state.Language)}, nil
	}
	return &Reply{Message: circularsMessage(state.Language, circulars)}, nil
}
